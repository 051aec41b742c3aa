package jobs

import (
	"context"
	"log/slog"
	"sync"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultStatusPollSchedule polls every two seconds.
const DefaultStatusPollSchedule = "*/2 * * * * *"

type OrderStatusHandler interface {
	Handle(ctx context.Context, query queries.LookupOrderStatusQuery) (order.Record, error)
}

// StatusPollJob refreshes the status of watched orders on a cron schedule.
// Every successful lookup is reported to onUpdate; an order stops being
// watched once its status is terminal.
type StatusPollJob struct {
	handler  OrderStatusHandler
	schedule string
	onUpdate func(order.Record)
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	watched []queries.LookupOrderStatusQuery
}

// NewStatusPollJob creates a poller. The schedule uses the six field cron
// format with seconds.
func NewStatusPollJob(
	handler OrderStatusHandler,
	schedule string,
	onUpdate func(order.Record),
	logger *slog.Logger,
) *StatusPollJob {
	if schedule == "" {
		schedule = DefaultStatusPollSchedule
	}
	return &StatusPollJob{
		handler:  handler,
		schedule: schedule,
		onUpdate: onUpdate,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "status_poll_job"),
	}
}

// Watch adds an order to the polled set. Watching the same id twice is a no-op.
func (j *StatusPollJob) Watch(orderID string) error {
	query, err := queries.NewLookupOrderStatusQuery(orderID)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	for _, q := range j.watched {
		if q.OrderID() == query.OrderID() {
			return nil
		}
	}
	j.watched = append(j.watched, query)
	return nil
}

func (j *StatusPollJob) Unwatch(orderID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, q := range j.watched {
		if q.OrderID() == orderID {
			j.watched = append(j.watched[:i], j.watched[i+1:]...)
			return
		}
	}
}

// Watched returns the ids still being polled.
func (j *StatusPollJob) Watched() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	ids := make([]string, 0, len(j.watched))
	for _, q := range j.watched {
		ids = append(ids, q.OrderID())
	}
	return ids
}

// Poll runs one pass over the watched orders. Failed lookups are logged and
// retried on the next pass.
func (j *StatusPollJob) Poll(ctx context.Context) {
	j.mu.Lock()
	pending := make([]queries.LookupOrderStatusQuery, len(j.watched))
	copy(pending, j.watched)
	j.mu.Unlock()

	for _, query := range pending {
		record, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.WarnContext(ctx, "Order status poll failed", "order_id", query.OrderID(), "error", err)
			continue
		}

		if j.onUpdate != nil {
			j.onUpdate(record)
		}
		if record.IsFinal() {
			j.Unwatch(query.OrderID())
			j.logger.InfoContext(ctx, "Order reached final status", "order_id", query.OrderID(), "status", record.Status)
		}
	}
}

// Start schedules Poll. Overlapping runs are skipped.
func (j *StatusPollJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Poll(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status poll job started", "schedule", j.schedule)
	return nil
}

// Stop halts scheduling and waits for a running poll to finish.
func (j *StatusPollJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status poll job stopped")
}
