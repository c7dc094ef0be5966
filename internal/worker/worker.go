package worker

import (
	"context"
	"discovery/internal/config"
	"discovery/internal/suggestions"
	"discovery/pkg/logger"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the job client.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// SweepInterval is how often the suggestion sweep runs. Zero disables it.
	SweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:    cfg.Worker.MaxWorkers,
		SweepInterval: cfg.Suggestions.SweepInterval,
	}
}

// Workers registers every job kind handled by the service.
func Workers(suggester suggestions.Suggester) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewGenerateWorker(suggester))
	river.AddWorker(workers, NewSweepWorker(suggester))

	return workers
}

// PeriodicJobs returns the jobs River schedules on its own.
func PeriodicJobs(options Options) []*river.PeriodicJob {
	if options.SweepInterval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return suggestions.SweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// Start creates and starts a River client processing suggestion jobs.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	suggester suggestions.Suggester,
	options Options,
) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(options.MaxWorkers, 1)},
		},
		Workers:      Workers(suggester),
		PeriodicJobs: PeriodicJobs(options),
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
