package cron

import (
	"Sokdak/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	postViewJob *job.PostViewJob
	viewSpec    string
}

func NewCronManager(postViewJob *job.PostViewJob, viewSpec string) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		postViewJob: postViewJob,
		viewSpec:    viewSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.viewSpec, s.postViewJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	ctx := s.engine.Stop()
	<-ctx.Done()
	log.Info("Cron 定时任务引擎停止")
}
