package service

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

type ComposerState string

const (
	StateDraft      ComposerState = "draft"
	StateValidating ComposerState = "validating"
	StateUploading  ComposerState = "uploading"
	StateCreating   ComposerState = "creating"
	StateSuccess    ComposerState = "success"
	StateError      ComposerState = "error"
)

// PostCreator 创建帖子的远端调用
type PostCreator interface {
	CreatePost(ctx context.Context, content, mediaURL, mediaType string) (*model.Post, error)
}

var postRules = util.RuleTable{
	"content": {
		Normalize: strings.TrimSpace,
		Rules: []util.Rule{
			{Tag: "required", Err: &ValidationError{Field: "content", Err: ErrEmptyContent}},
			{Tag: fmt.Sprintf("max=%d", consts.MaxContentLength), Err: &ValidationError{Field: "content", Err: ErrContentTooLong}},
		},
	},
}

// Composer 发帖表单状态机，提交过程中拒绝任何修改
type Composer struct {
	mu       sync.Mutex
	media    MediaService
	uploads  UploadService
	posts    PostCreator
	state    ComposerState
	draft    model.DraftPost
	progress map[int]int
	err      error
	notice   string
}

func NewComposer(media MediaService, uploads UploadService, posts PostCreator) *Composer {
	return &Composer{
		media:    media,
		uploads:  uploads,
		posts:    posts,
		state:    StateDraft,
		progress: make(map[int]int),
	}
}

// beginEdit 调用方需持有锁
func (s *Composer) beginEdit() error {
	switch s.state {
	case StateDraft:
		return nil
	case StateError, StateSuccess:
		s.state = StateDraft
		s.err = nil
		s.notice = ""
		return nil
	default:
		return ErrComposerBusy
	}
}

func (s *Composer) SetContent(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginEdit(); err != nil {
		return err
	}
	s.draft.Content = content
	return nil
}

// AddFiles 暂存通过校验的文件，返回被拒绝的文件
func (s *Composer) AddFiles(ctx context.Context, files []*model.MediaFile) ([]error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginEdit(); err != nil {
		return nil, err
	}
	staged, rejected := s.media.Stage(ctx, files)
	s.draft.Media = append(s.draft.Media, staged...)
	return rejected, nil
}

func (s *Composer) RemoveMedia(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginEdit(); err != nil {
		return err
	}
	media, err := s.media.Unstage(ctx, s.draft.Media, index)
	if err != nil {
		return err
	}
	s.draft.Media = media
	return nil
}

// Clear 清空草稿并释放全部预览引用
func (s *Composer) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginEdit(); err != nil {
		return err
	}
	s.media.Release(ctx, s.draft.Media)
	s.draft = model.DraftPost{}
	return nil
}

// Submit 校验 -> 上传 -> 创建，失败时保留草稿以便重试
func (s *Composer) Submit(ctx context.Context) (*model.Post, error) {
	s.mu.Lock()
	switch s.state {
	case StateDraft, StateError, StateSuccess:
	default:
		s.mu.Unlock()
		return nil, ErrComposerBusy
	}
	s.state = StateValidating
	s.err = nil
	s.notice = ""

	if err := postRules.Check("content", s.draft.Content); err != nil {
		s.state = StateError
		s.err = err
		s.mu.Unlock()
		return nil, err
	}
	content := strings.TrimSpace(s.draft.Content)
	media := slices.Clone(s.draft.Media)
	s.mu.Unlock()

	var results []*model.UploadResult
	if len(media) > 0 {
		s.mu.Lock()
		s.state = StateUploading
		s.mu.Unlock()

		var err error
		results, err = s.uploads.UploadAll(ctx, media, s.reportProgress)
		if err != nil {
			return nil, s.fail(ctx, err)
		}
	}

	s.mu.Lock()
	s.state = StateCreating
	s.mu.Unlock()

	var mediaURL, mediaType string
	if len(results) > 0 {
		mediaURL, mediaType = results[0].MediaURL, results[0].MediaType
	}
	post, err := s.posts.CreatePost(ctx, content, mediaURL, mediaType)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.media.Release(ctx, s.draft.Media)
	s.draft = model.DraftPost{}
	s.progress = make(map[int]int)
	s.state = StateSuccess
	s.notice = consts.PostCreatedNotice
	log.InfoContext(ctx, "post created", "post_id", post.ID, "media", len(media))
	return post, nil
}

func (s *Composer) fail(ctx context.Context, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateError
	s.err = err
	s.progress = make(map[int]int)
	log.WarnContext(ctx, "post submission failed", "err", err)
	return err
}

func (s *Composer) reportProgress(index, percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[index] = percent
}

func (s *Composer) State() ComposerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft 返回草稿快照
func (s *Composer) Draft() model.DraftPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.DraftPost{
		Content: s.draft.Content,
		Media:   slices.Clone(s.draft.Media),
	}
}

func (s *Composer) Progress() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.progress)
}

func (s *Composer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Composer) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

func (s *Composer) CharCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return utf8.RuneCountInString(s.draft.Content)
}

func (s *Composer) IsOverLimit() bool {
	return s.CharCount() > consts.MaxContentLength
}

// CanSubmit 空闲且内容合法时才可提交
func (s *Composer) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateDraft, StateError, StateSuccess:
	default:
		return false
	}
	return postRules.Check("content", s.draft.Content) == nil
}

// Preview 渲染后的帖子正文 HTML
func (s *Composer) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return util.FormatPreview(strings.TrimSpace(s.draft.Content))
}
