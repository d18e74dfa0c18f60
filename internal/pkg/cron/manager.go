package cron

import (
	"Agora/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	spec           string
	feedRefreshJob *job.FeedRefreshJob
}

// NewCronManager spec 支持标准 5 段表达式与 @every 描述符
func NewCronManager(spec string, feedRefreshJob *job.FeedRefreshJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		spec:           spec,
		feedRefreshJob: feedRefreshJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.spec, s.feedRefreshJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("feed watch started", "schedule", s.spec)
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	<-s.engine.Stop().Done()
	log.Info("feed watch stopped")
}
