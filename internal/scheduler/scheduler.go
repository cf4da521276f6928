package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pftrack/finance-service/internal/service"
)

// Scheduler runs the periodic insight generation sweep
type Scheduler struct {
	cron *cron.Cron
	svc  *service.Service
	log  *logrus.Logger
}

// New creates a scheduler around the given service
func New(svc *service.Service, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		svc:  svc,
		log:  log,
	}
}

// Start registers the insight sweep at the given cron spec and starts the
// scheduler
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.log.Info("Starting scheduled insight generation")
		s.svc.GenerateInsightsForAllUsers(time.Now())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule insight generation: %w", err)
	}
	s.cron.Start()
	s.log.Infof("Insight generation scheduled: %s", spec)
	return nil
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
