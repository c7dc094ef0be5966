package worker

import (
	"context"
	"discovery/internal/suggestions"
	"discovery/pkg/logger"
	"discovery/pkg/metrics"
	"discovery/pkg/serrors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// GenerateWorker regenerates the suggestion batch of one user.
type GenerateWorker struct {
	river.WorkerDefaults[suggestions.GenerateArgs]

	suggester suggestions.Suggester
}

// NewGenerateWorker constructs a GenerateWorker backed by suggester.
func NewGenerateWorker(suggester suggestions.Suggester) *GenerateWorker {
	return &GenerateWorker{suggester: suggester}
}

// Work runs the suggestion pipeline. Curator failures never reach this point
// since the pipeline falls back to deterministic curation, so errors here come
// from storage and are retried by River. Invalid input and missing users
// cancel the job.
func (w *GenerateWorker) Work(ctx context.Context, job *river.Job[suggestions.GenerateArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("userID", job.Args.UserID),
	)

	batch, err := w.suggester.Generate(ctx, job.Args.UserID)
	if err != nil {
		logger.Error(ctx, "error in generating suggestions", zap.Error(err))
		if k := serrors.KindOf(err); k == serrors.ErrBadRequest || k == serrors.ErrNotFound {
			metrics.JobsProcessed.WithLabelValues(job.Kind, "canceled").Inc()

			return river.JobCancel(err) //nolint: wrapcheck
		}
		metrics.JobsProcessed.WithLabelValues(job.Kind, "error").Inc()

		return fmt.Errorf("could not generate suggestions: %w", err)
	}

	metrics.JobsProcessed.WithLabelValues(job.Kind, "ok").Inc()
	logger.Debug(ctx, "suggestions job finished", zap.String("source", string(batch.Source)))

	return nil
}

// SweepWorker enqueues refreshes for recently active users.
type SweepWorker struct {
	river.WorkerDefaults[suggestions.SweepArgs]

	suggester suggestions.Suggester
}

// NewSweepWorker constructs a SweepWorker backed by suggester.
func NewSweepWorker(suggester suggestions.Suggester) *SweepWorker {
	return &SweepWorker{suggester: suggester}
}

func (w *SweepWorker) Work(ctx context.Context, job *river.Job[suggestions.SweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if _, err := w.suggester.Sweep(ctx); err != nil {
		metrics.JobsProcessed.WithLabelValues(job.Kind, "error").Inc()
		logger.Error(ctx, "error in sweeping suggestions", zap.Error(err))

		return fmt.Errorf("could not sweep suggestions: %w", err)
	}
	metrics.JobsProcessed.WithLabelValues(job.Kind, "ok").Inc()

	return nil
}
