package service

import (
	"Agora/internal/pkg/apiclient"
	"errors"
	"fmt"
)

const (
	ExitOK         = 0
	ExitUnexpected = 1
	ExitUsage      = 2
	ExitInvalid    = 3
	ExitRemote     = 4
	ExitNetwork    = 5
	ExitBusy       = 6
)

var (
	ErrEmptyContent    = errors.New("Post content is required")
	ErrContentTooLong  = errors.New("Post content is too long")
	ErrInvalidFileType = errors.New("Only images (JPG, PNG, GIF) and videos (MP4, MOV, AVI) are allowed")
	ErrFileTooLarge    = errors.New("Maximum size is 10MB")
	ErrNameRequired    = errors.New("Name is required")
	ErrTitleRequired   = errors.New("Title is required")
	ErrInvalidEmail    = errors.New("Please enter a valid email")
	ErrInvalidPhone    = errors.New("Please enter a valid phone number")
	ErrUnknownField    = errors.New("未知的表单字段")
	ErrComposerBusy    = errors.New("帖子正在提交中")
	ErrMediaIndex      = errors.New("媒体下标越界")
	ErrNotLoggedIn     = errors.New("尚未登录")
	ErrEmptyToken      = errors.New("凭据不能为空")
	ErrUnknownCommand  = errors.New("未知命令")
	ErrInvalidArgs     = errors.New("命令参数错误")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ExitCodeMap = map[error]int{
	ErrEmptyContent:    ExitInvalid,
	ErrContentTooLong:  ExitInvalid,
	ErrInvalidFileType: ExitInvalid,
	ErrFileTooLarge:    ExitInvalid,
	ErrNameRequired:    ExitInvalid,
	ErrTitleRequired:   ExitInvalid,
	ErrInvalidEmail:    ExitInvalid,
	ErrInvalidPhone:    ExitInvalid,
	ErrUnknownField:    ExitUsage,
	ErrComposerBusy:    ExitBusy,
	ErrMediaIndex:      ExitUsage,
	ErrNotLoggedIn:     ExitRemote,
	ErrEmptyToken:      ExitUsage,
	ErrUnknownCommand:  ExitUsage,
	ErrInvalidArgs:     ExitUsage,
	UnExpectedError:    ExitUnexpected,
}

// ValidationError 本地校验失败，不会发出任何网络请求
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MediaRejectedError 候选文件未通过类型或大小校验
type MediaRejectedError struct {
	FileName string
	Err      error
}

func (e *MediaRejectedError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidFileType):
		return fmt.Sprintf("Invalid file type: %s. %s.", e.FileName, e.Err)
	case errors.Is(e.Err, ErrFileTooLarge):
		return fmt.Sprintf("File too large: %s. %s.", e.FileName, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.FileName, e.Err)
	}
}

func (e *MediaRejectedError) Unwrap() error {
	return e.Err
}

// ExitCode 将错误映射为命令行退出码
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for target, code := range ExitCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	switch {
	case apiclient.IsNetworkError(err):
		return ExitNetwork
	case apiclient.IsRequestError(err), apiclient.IsDecodeError(err):
		return ExitRemote
	}
	return ExitUnexpected
}
