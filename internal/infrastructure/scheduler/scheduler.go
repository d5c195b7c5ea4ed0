// Package scheduler runs the periodic platform stats refresh.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"serviya/internal/domain/entity"
	"serviya/pkg/logger"
)

type StatsRefresher interface {
	RefreshStats(ctx context.Context) (*entity.PlatformStats, error)
}

type Scheduler struct {
	cron      *cron.Cron
	refresher StatsRefresher
	spec      string // e.g. "@every 10m"
}

func New(refresher StatsRefresher, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cron.DefaultLogger)),
		refresher: refresher,
		spec:      spec,
	}
}

// Start registers the refresh job and runs one refresh right away.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	logger.Info("stats scheduler started, spec: %s", s.spec)

	go s.refresh(ctx)
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Info("stats scheduler stopped")
}

func (s *Scheduler) refresh(ctx context.Context) {
	stats, err := s.refresher.RefreshStats(ctx)
	if err != nil {
		logger.Error("stats refresh failed: %v", err)
		return
	}
	logger.Debug("stats refreshed: users=%d services=%d hires=%d", stats.Users, stats.Services, stats.Hires)
}
