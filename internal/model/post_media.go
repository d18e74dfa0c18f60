package model

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/util"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// KindOf image/ 前缀为图片，其余均视为视频
func KindOf(contentType string) MediaKind {
	if strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return MediaImage
	}
	return MediaVideo
}

// MediaFile 用户选择的原始文件，Path 与 Data 二选一
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Path        string
	Data        []byte
}

// Open 打开文件内容用于上传或生成缩略图
func (f *MediaFile) Open() (io.ReadCloser, error) {
	if f.Path != "" {
		return os.Open(f.Path)
	}
	if f.Data != nil {
		return io.NopCloser(bytes.NewReader(f.Data)), nil
	}
	return nil, errors.New("media file has no content")
}

// OpenMediaFile 从磁盘加载候选文件，类型由内容嗅探得出
func OpenMediaFile(path string) (*MediaFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	contentType, err := util.SniffMediaType(f)
	if err != nil {
		return nil, err
	}
	return &MediaFile{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Path:        path,
	}, nil
}

// StagedMedia 已通过校验、等待上传的媒体，Preview 必须且只能被释放一次
type StagedMedia struct {
	File    *MediaFile
	Preview string
	Kind    MediaKind
}

type UploadResult struct {
	MediaURL  string
	MediaType string
}

// DraftPost 编辑中的帖子，只有 Media[0] 会随帖子持久化
type DraftPost struct {
	Content string
	Media   []*StagedMedia
}
