package suggestions

import (
	"discovery/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// GenerateArgs asks a worker to regenerate the suggestions of one user.
type GenerateArgs struct {
	// UserID is the unique key of the job, so a user never has two
	// generations waiting at once.
	UserID domain.UserID `json:"userId" river:"unique"`

	maxAttempts int
	period      time.Duration
}

// Kind returns the River job kind used to register and dispatch the worker.
func (args GenerateArgs) Kind() string { return "GenerateSuggestions" }

// InsertOpts makes the job unique per user while it is queued or running.
// With a period, a job completed in the same period also counts, so a user
// gets at most one generation per period.
func (args GenerateArgs) InsertOpts() river.InsertOpts {
	states := []rivertype.JobState{
		rivertype.JobStateAvailable,
		rivertype.JobStatePending,
		rivertype.JobStateRunning,
		rivertype.JobStateRetryable,
		rivertype.JobStateScheduled,
	}
	if args.period > 0 {
		states = append(states, rivertype.JobStateCompleted)
	}

	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.period,
			ByState:  states,
		},
	}
}

// SweepArgs is the periodic job that refreshes suggestions of active users.
type SweepArgs struct{}

// Kind returns the River job kind of the sweep.
func (SweepArgs) Kind() string { return "SweepSuggestions" }

// InsertOpts keeps a single sweep in flight.
func (SweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
