package job

import (
	"Agora/internal/pkg/logger"
	"Agora/internal/service"
	"context"
	log "log/slog"
)

// FeedRefreshJob 定时重新加载当前页并交给渲染回调
type FeedRefreshJob struct {
	feed   *service.Feed
	render func(ctx context.Context, feed *service.Feed)
}

func NewFeedRefreshJob(feed *service.Feed, render func(ctx context.Context, feed *service.Feed)) *FeedRefreshJob {
	return &FeedRefreshJob{
		feed:   feed,
		render: render,
	}
}

func (s *FeedRefreshJob) Run() {
	ctx := logger.WithTrace(context.Background())
	log.DebugContext(ctx, "start feed refresh job")

	if err := s.feed.Reload(ctx); err != nil {
		log.ErrorContext(ctx, "feed refresh failed", "err", err)
		return
	}
	if s.render != nil {
		s.render(ctx, s.feed)
	}
}
