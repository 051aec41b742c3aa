package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStatusHandler struct{ mock.Mock }

func (m *MockOrderStatusHandler) Handle(ctx context.Context, query queries.LookupOrderStatusQuery) (order.Record, error) {
	args := m.Called(ctx, query.OrderID())
	return args.Get(0).(order.Record), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recorder struct {
	mu      sync.Mutex
	records []order.Record
}

func (r *recorder) add(rec order.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

func (r *recorder) statuses() []order.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Status, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Status)
	}
	return out
}

func TestStatusPollJob_Watch(t *testing.T) {
	job := jobs.NewStatusPollJob(new(MockOrderStatusHandler), "", nil, discardLogger())

	require.NoError(t, job.Watch(" 1 "))
	require.NoError(t, job.Watch("1"))
	require.NoError(t, job.Watch("2"))
	require.ErrorIs(t, job.Watch(""), queries.ErrOrderIDIsRequired)

	assert.Equal(t, []string{"1", "2"}, job.Watched())

	job.Unwatch("1")
	assert.Equal(t, []string{"2"}, job.Watched())
}

func TestStatusPollJob_Poll_StopsWatchingFinalOrders(t *testing.T) {
	ctx := t.Context()
	handler := new(MockOrderStatusHandler)
	handler.On("Handle", ctx, "1").Return(order.Record{OrderID: "1", Status: order.Processing}, nil).Once()
	handler.On("Handle", ctx, "1").Return(order.Record{OrderID: "1", Status: order.Completed}, nil).Once()
	handler.On("Handle", ctx, "2").Return(order.Record{OrderID: "2", Status: order.Failed}, nil).Once()

	rec := &recorder{}
	job := jobs.NewStatusPollJob(handler, "", rec.add, discardLogger())
	require.NoError(t, job.Watch("1"))
	require.NoError(t, job.Watch("2"))

	job.Poll(ctx)
	assert.Equal(t, []string{"1"}, job.Watched())

	job.Poll(ctx)
	assert.Empty(t, job.Watched())

	job.Poll(ctx)
	assert.Equal(t, []order.Status{order.Processing, order.Failed, order.Completed}, rec.statuses())
	handler.AssertExpectations(t)
}

func TestStatusPollJob_Poll_KeepsWatchingAfterLookupFailure(t *testing.T) {
	ctx := t.Context()
	handler := new(MockOrderStatusHandler)
	handler.On("Handle", ctx, "1").Return(order.Record{}, ports.ErrLookupFailed).Once()

	rec := &recorder{}
	job := jobs.NewStatusPollJob(handler, "", rec.add, discardLogger())
	require.NoError(t, job.Watch("1"))

	job.Poll(ctx)

	assert.Equal(t, []string{"1"}, job.Watched())
	assert.Empty(t, rec.statuses())
}

func TestStatusPollJob_StartRunsOnSchedule(t *testing.T) {
	handler := new(MockOrderStatusHandler)
	handler.On("Handle", mock.Anything, "1").Return(order.Record{OrderID: "1", Status: order.Completed}, nil).Once()

	done := make(chan order.Record, 1)
	job := jobs.NewStatusPollJob(handler, "* * * * * *", func(r order.Record) { done <- r }, discardLogger())
	require.NoError(t, job.Watch("1"))

	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case r := <-done:
		assert.Equal(t, order.Completed, r.Status)
	case <-time.After(3 * time.Second):
		t.Fatal("poll did not run")
	}
}

func TestStatusPollJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewStatusPollJob(new(MockOrderStatusHandler), "not a schedule", nil, discardLogger())
	require.Error(t, job.Start())
}

type stubJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (s *stubJob) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}

func (s *stubJob) Stop() { s.stopped = true }

func TestJobManager_StartAllRollsBackOnFailure(t *testing.T) {
	first := &stubJob{}
	second := &stubJob{startErr: errors.New("bad schedule")}

	jm := jobs.NewJobManager()
	jm.Add("first", first)
	jm.Add("second", second)

	err := jm.StartAll()

	require.ErrorContains(t, err, "failed to start second job")
	assert.True(t, first.started)
	assert.True(t, first.stopped)
	assert.False(t, second.stopped)
}

func TestJobManager_StopAll(t *testing.T) {
	a, b := &stubJob{}, &stubJob{}
	jm := jobs.NewJobManager()
	jm.Add("a", a)
	jm.Add("b", b)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.True(t, a.stopped)
	assert.True(t, b.stopped)
}
