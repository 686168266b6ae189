// Package recorder persists audit records off the request path. Records are
// queued on a bounded channel, written by a small worker pool with retry on
// transient storage errors, and drained explicitly during shutdown so
// in-flight writes are not dropped. Persistence failures are logged and
// never reach the caller.
package recorder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"flowgate/internal/core/ports"
	"flowgate/internal/core/postgres"
	"flowgate/internal/domain"
	"flowgate/internal/metrics"
)

// persistTimeout bounds one record's write, retries and backoff included.
const persistTimeout = 30 * time.Second

type Config struct {
	QueueSize int
	Workers   int
	Policy    postgres.RetryPolicy
}

type Recorder struct {
	logs    ports.LogRepository
	bus     ports.EventBus
	policy  postgres.RetryPolicy
	workers int
	queue   chan *domain.WorkflowLog
	wg      sync.WaitGroup
	logger  *slog.Logger
}

// New creates a recorder. bus may be nil when no event fan-out is wanted.
func New(logs ports.LogRepository, bus ports.EventBus, cfg Config, logger *slog.Logger) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.Policy.MaxAttempts <= 0 {
		cfg.Policy = postgres.DefaultRetryPolicy
	}
	return &Recorder{
		logs:    logs,
		bus:     bus,
		policy:  cfg.Policy,
		workers: cfg.Workers,
		queue:   make(chan *domain.WorkflowLog, cfg.QueueSize),
		logger:  logger,
	}
}

// Start launches the worker pool.
func (r *Recorder) Start() {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.loop()
	}
}

func (r *Recorder) loop() {
	defer r.wg.Done()
	for record := range r.queue {
		r.persist(record)
		metrics.SetRecorderQueueDepth(len(r.queue))
	}
}

// Enqueue hands a record to the worker pool without blocking. When the
// queue is full the record is dropped and counted; an audit backlog must
// not stall caller-facing responses.
func (r *Recorder) Enqueue(record *domain.WorkflowLog) {
	select {
	case r.queue <- record:
		metrics.SetRecorderQueueDepth(len(r.queue))
	default:
		metrics.IncRecorderFailure()
		r.logger.Error("recorder queue full, dropping audit record",
			"log_id", record.ID, "workflow_id", record.WorkflowID)
	}
}

// Drain stops accepting records and waits for the queue to empty, up to the
// context deadline. Call during graceful shutdown, after the HTTP server
// has stopped accepting requests.
func (r *Recorder) Drain(ctx context.Context) error {
	close(r.queue)

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) persist(record *domain.WorkflowLog) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	attempts := 0
	err := r.policy.Do(ctx, func() error {
		attempts++
		if attempts > 1 {
			metrics.IncRecorderRetry()
		}
		return r.logs.Create(ctx, record)
	})
	if err != nil {
		metrics.IncRecorderFailure()
		r.logger.Error("failed to persist audit record",
			"log_id", record.ID, "workflow_id", record.WorkflowID,
			"attempts", attempts, "error", err)
		return
	}

	if r.bus == nil {
		return
	}
	event := domain.ExecutionFinishedEvent{
		LogID:         record.ID,
		UserID:        record.UserID,
		WorkflowID:    record.WorkflowID,
		RequestMethod: record.RequestMethod,
		Status:        record.Status,
		ExecutionTime: record.ExecutionTime,
	}
	if err := r.bus.PublishExecutionFinished(ctx, event); err != nil {
		r.logger.Warn("failed to publish execution event",
			"log_id", record.ID, "error", err)
	}
}
