package service

import (
	"Agora/internal/model"
	"context"
	log "log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// MediaUploader 单文件上传后端，API 或对象存储
type MediaUploader interface {
	UploadMedia(ctx context.Context, file *model.MediaFile) (*model.UploadResult, error)
}

// ProgressSink 上传进度回调，percent 只会是 0 或 100，可能被并发调用
type ProgressSink func(index, percent int)

type UploadService interface {
	UploadAll(ctx context.Context, staged []*model.StagedMedia, sink ProgressSink) ([]*model.UploadResult, error)
}

type UploadServiceImpl struct {
	uploader    MediaUploader
	maxParallel int64
}

// NewUploadService maxParallel <= 0 时不限制并发
func NewUploadService(uploader MediaUploader, maxParallel int) UploadService {
	return &UploadServiceImpl{
		uploader:    uploader,
		maxParallel: int64(maxParallel),
	}
}

// UploadAll 并发上传，结果与输入顺序一致，任一失败即整体失败
func (s *UploadServiceImpl) UploadAll(ctx context.Context, staged []*model.StagedMedia, sink ProgressSink) ([]*model.UploadResult, error) {
	if len(staged) == 0 {
		return []*model.UploadResult{}, nil
	}
	if sink == nil {
		sink = func(int, int) {}
	}

	var sem *semaphore.Weighted
	if s.maxParallel > 0 {
		sem = semaphore.NewWeighted(s.maxParallel)
	}

	results := make([]*model.UploadResult, len(staged))
	g, gCtx := errgroup.WithContext(ctx)
	for i, m := range staged {
		g.Go(func() error {
			if sem != nil {
				if err := sem.Acquire(gCtx, 1); err != nil {
					return errors.Wrapf(err, "failed to upload %s", m.File.Name)
				}
				defer sem.Release(1)
			}

			sink(i, 0)
			res, err := s.uploader.UploadMedia(gCtx, m.File)
			if err != nil {
				return errors.Wrapf(err, "failed to upload %s", m.File.Name)
			}
			results[i] = res
			sink(i, 100)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WarnContext(ctx, "media upload aborted", "files", len(staged), "err", err)
		return nil, err
	}
	return results, nil
}
