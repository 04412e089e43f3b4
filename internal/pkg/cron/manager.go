package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"osohub/internal/api/config"
	"osohub/internal/job"
)

type Manager struct {
	engine           *cron.Cron
	cfg              config.CronConfig
	likeReconcileJob *job.LikeCountReconcileJob
}

func NewCronManager(cfg config.CronConfig, likeReconcileJob *job.LikeCountReconcileJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		cfg:              cfg,
		likeReconcileJob: likeReconcileJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	spec := s.cfg.LikeReconcileSpec
	if spec == "" {
		spec = "@hourly"
	}
	if _, err := s.engine.AddJob(spec, s.likeReconcileJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
