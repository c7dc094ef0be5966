package worker_test

import (
	"context"
	"discovery/internal/suggestions"
	mocksuggestions "discovery/internal/suggestions/mock"
	"discovery/internal/worker"
	"discovery/pkg/domain"
	"discovery/pkg/logger"
	"discovery/pkg/serrors"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeGenerateJob(id int64, userID domain.UserID) *river.Job[suggestions.GenerateArgs] {
	return &river.Job[suggestions.GenerateArgs]{
		JobRow: &rivertype.JobRow{ID: id, Kind: suggestions.GenerateArgs{}.Kind(), Attempt: 1},
		Args:   suggestions.GenerateArgs{UserID: userID},
	}
}

func TestGenerateWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocksuggestions.NewMockSuggester(ctrl)
	w := worker.NewGenerateWorker(mock)
	userID := domain.UserID(uuid.New())

	mock.EXPECT().Generate(gomock.Any(), userID).Return(&domain.SuggestionBatch{
		UserID: userID,
		Source: domain.SuggestionSourceAI,
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeGenerateJob(1, userID)))
}

func TestGenerateWorker_Work_ErrorIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocksuggestions.NewMockSuggester(ctrl)
	w := worker.NewGenerateWorker(mock)

	mock.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	err := w.Work(context.Background(), makeGenerateJob(2, domain.UserID(uuid.New())))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestGenerateWorker_Work_BadRequestCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocksuggestions.NewMockSuggester(ctrl)
	w := worker.NewGenerateWorker(mock)

	mock.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrBadRequest, "bad user"))

	err := w.Work(context.Background(), makeGenerateJob(3, domain.UserID(uuid.New())))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestSweepWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocksuggestions.NewMockSuggester(ctrl)
	w := worker.NewSweepWorker(mock)
	job := &river.Job[suggestions.SweepArgs]{JobRow: &rivertype.JobRow{ID: 4, Kind: "SweepSuggestions"}}

	mock.EXPECT().Sweep(gomock.Any()).Return(7, nil)
	require.NoError(t, w.Work(context.Background(), job))

	mock.EXPECT().Sweep(gomock.Any()).Return(0, errors.New("db down"))
	require.Error(t, w.Work(context.Background(), job))
}

func TestPeriodicJobs(t *testing.T) {
	require.Empty(t, worker.PeriodicJobs(worker.Options{}))
	require.Len(t, worker.PeriodicJobs(worker.Options{SweepInterval: time.Hour}), 1)
}

func TestSuggestionJobArgs(t *testing.T) {
	args := suggestions.GenerateArgs{UserID: domain.UserID(uuid.New())}
	opts := args.InsertOpts()
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Contains(t, opts.UniqueOpts.ByState, rivertype.JobStateRunning)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)

	require.Equal(t, 1, suggestions.SweepArgs{}.InsertOpts().MaxAttempts)
}
