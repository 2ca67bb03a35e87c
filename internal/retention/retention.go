package retention

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

// Service prunes old broadcast history records on a cron schedule so the
// history table stays bounded.
type Service struct {
	store storage.Store
	log   logx.Logger

	schedule string
	keep     time.Duration

	cron *cron.Cron
	now  func() time.Time
}

func New(store storage.Store, schedule string, keep time.Duration, log logx.Logger) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{
		store:    store,
		log:      log,
		schedule: schedule,
		keep:     keep,
		now:      time.Now,
	}
}

// Start registers the prune job and starts the scheduler. Returns an error
// only for an invalid cron expression.
func (s *Service) Start() error {
	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.PruneOnce(ctx)
	})
	if err != nil {
		return err
	}
	s.cron = c
	c.Start()
	s.log.Info("retention started",
		logx.String("schedule", s.schedule),
		logx.Duration("keep", s.keep),
	)
	return nil
}

func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
}

// PruneOnce removes records older than the retention window. Exposed for the
// scheduler callback and tests.
func (s *Service) PruneOnce(ctx context.Context) {
	cutoff := s.now().Add(-s.keep)
	n, err := s.store.PruneBroadcasts(ctx, cutoff)
	if err != nil {
		s.log.Warn("history prune failed", logx.Err(err))
		return
	}
	if n > 0 {
		s.log.Info("history pruned",
			logx.Int64("removed", n),
			logx.Time("cutoff", cutoff),
		)
	}
}
