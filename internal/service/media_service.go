package service

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/preview"
	"Agora/internal/pkg/util"
	"context"
	"slices"
)

type MediaService interface {
	Stage(ctx context.Context, candidates []*model.MediaFile) ([]*model.StagedMedia, []error)
	Unstage(ctx context.Context, media []*model.StagedMedia, index int) ([]*model.StagedMedia, error)
	Release(ctx context.Context, media []*model.StagedMedia)
}

type MediaServiceImpl struct {
	previews *preview.Registry
	maxSize  int64
}

func NewMediaService(previews *preview.Registry, maxSize int64) MediaService {
	if maxSize <= 0 {
		maxSize = consts.MaxMediaSize
	}
	return &MediaServiceImpl{
		previews: previews,
		maxSize:  maxSize,
	}
}

// Stage 逐个校验候选文件，被拒绝的文件不影响同批次的其他文件
func (s *MediaServiceImpl) Stage(ctx context.Context, candidates []*model.MediaFile) ([]*model.StagedMedia, []error) {
	var staged []*model.StagedMedia
	var rejected []error

	for _, file := range candidates {
		contentType := util.NormalizeMediaType(file.ContentType)
		if _, ok := consts.AllowedMediaTypes[contentType]; !ok {
			rejected = append(rejected, &MediaRejectedError{FileName: file.Name, Err: ErrInvalidFileType})
			continue
		}
		if file.Size > s.maxSize {
			rejected = append(rejected, &MediaRejectedError{FileName: file.Name, Err: ErrFileTooLarge})
			continue
		}
		file.ContentType = contentType

		kind := model.KindOf(contentType)
		staged = append(staged, &model.StagedMedia{
			File:    file,
			Preview: s.previews.Allocate(ctx, file, kind),
			Kind:    kind,
		})
	}
	return staged, rejected
}

// Unstage 先释放预览引用再移除条目
func (s *MediaServiceImpl) Unstage(ctx context.Context, media []*model.StagedMedia, index int) ([]*model.StagedMedia, error) {
	if index < 0 || index >= len(media) {
		return media, ErrMediaIndex
	}
	s.previews.Revoke(ctx, media[index].Preview)

	out := slices.Clone(media[:index])
	return append(out, media[index+1:]...), nil
}

func (s *MediaServiceImpl) Release(ctx context.Context, media []*model.StagedMedia) {
	for _, m := range media {
		s.previews.Revoke(ctx, m.Preview)
	}
}
