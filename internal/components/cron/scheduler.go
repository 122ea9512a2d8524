package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/schoolforge/sitebuilder-backend/internal/components/domain"
)

const seedTimeout = 30 * time.Second

// Seeder converges the catalog to its built-in entries.
type Seeder interface {
	SeedDefaults(ctx context.Context) ([]domain.Descriptor, error)
}

type Scheduler struct {
	cron   *cron.Cron
	seeder Seeder
	log    zerolog.Logger
}

func NewScheduler(seeder Seeder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		seeder: seeder,
		log:    log.With().Str("component", "catalog_cron").Logger(),
	}
}

// Start schedules catalog reseeding with a six-field (seconds first) cron
// expression and starts the scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return fmt.Errorf("schedule catalog seed %q: %w", spec, err)
	}

	s.cron.Start()
	s.log.Info().Str("spec", spec).Msg("catalog cron started")
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce seeds the catalog and logs the outcome.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	start := time.Now()
	items, err := s.seeder.SeedDefaults(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("catalog seed failed")
		return
	}
	s.log.Info().
		Int("components", len(items)).
		Dur("took", time.Since(start)).
		Msg("catalog seeded")
}
