package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRouteCompleter struct{ mock.Mock }

func (m *MockRouteCompleter) Handle(ctx context.Context, cmd commands.CompleteArrivedRoutesCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func newTestJob(handler RouteCompleter, schedule string) (*RouteCompletionJob, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewRouteCompletionJob(handler, schedule, logger), &buf
}

func TestRouteCompletionJob_Run(t *testing.T) {
	asOf := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should pass the current time to the command", func(t *testing.T) {
		handler := new(MockRouteCompleter)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CompleteArrivedRoutesCommand) bool {
			return cmd.AsOf().Equal(asOf)
		})).Return(int64(2), nil).Once()
		job, logs := newTestJob(handler, "")
		job.now = func() time.Time { return asOf }

		job.Run(t.Context())

		handler.AssertExpectations(t)
		assert.Contains(t, logs.String(), "Routes completed")
		assert.Contains(t, logs.String(), "component=route-completion")
	})

	t.Run("should stay quiet when nothing arrived", func(t *testing.T) {
		handler := new(MockRouteCompleter)
		handler.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
		job, logs := newTestJob(handler, "")
		job.now = func() time.Time { return asOf }

		job.Run(t.Context())

		assert.NotContains(t, logs.String(), "Routes completed")
	})

	t.Run("should log handler failures", func(t *testing.T) {
		handler := new(MockRouteCompleter)
		handler.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()
		job, logs := newTestJob(handler, "")
		job.now = func() time.Time { return asOf }

		job.Run(t.Context())

		assert.Contains(t, logs.String(), "Route completion job failed")
		assert.Contains(t, logs.String(), "db down")
	})
}

func TestRouteCompletionJob_Start(t *testing.T) {
	t.Run("should default the schedule", func(t *testing.T) {
		job, _ := newTestJob(new(MockRouteCompleter), "")

		assert.Equal(t, DefaultRouteCompletionSchedule, job.schedule)
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job, _ := newTestJob(new(MockRouteCompleter), "every now and then")

		require.Error(t, job.Start())
	})

	t.Run("should tick on its schedule", func(t *testing.T) {
		handler := new(MockRouteCompleter)
		ticked := make(chan struct{}, 1)
		handler.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Run(func(mock.Arguments) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		})
		job, _ := newTestJob(handler, "* * * * * *")

		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-ticked:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run")
		}
	})
}

func TestJobManager(t *testing.T) {
	handler := new(MockRouteCompleter)
	handler.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
	jm := NewJobManager(handler, "", slog.New(slog.DiscardHandler))

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	bad := NewJobManager(handler, "not a schedule", slog.New(slog.DiscardHandler))
	require.ErrorContains(t, bad.StartAll(), "route completion job")
}
