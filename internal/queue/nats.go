package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"doc-insight/internal/retry"
)

// Subject layout: one subject per task type, one queue group per task type,
// so adding a worker binary scales consumption without re-delivery.
const (
	subjectPrefix     = "tasks."
	workerGroupPrefix = "workers-"
)

// Redelivery policy for failed document tasks.
const (
	defaultMaxAttempts = 5
	redeliveryBase     = time.Second
)

type natsQueue struct {
	log *slog.Logger
	nc  *nats.Conn
}

// NewNATS builds a queue on top of core NATS. Delayed redelivery is done by
// re-publishing with a NotBefore stamp rather than JetStream scheduling.
func NewNATS(log *slog.Logger, nc *nats.Conn) Queue {
	return &natsQueue{log: log, nc: nc}
}

func (q *natsQueue) Enqueue(_ context.Context, task Task) error {
	if task.Type == "" {
		return errors.New("task type required")
	}
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	body, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return q.nc.Publish(subjectFor(task.Type), body)
}

func (q *natsQueue) Worker(ctx context.Context, taskType TaskType, handler Handler) error {
	sub, err := q.nc.QueueSubscribe(subjectFor(taskType), workerGroupPrefix+string(taskType), func(msg *nats.Msg) {
		q.consume(ctx, msg.Data, handler)
	})
	if err != nil {
		return err
	}
	q.log.Info("worker subscribed", "task_type", taskType)
	<-ctx.Done()
	return sub.Unsubscribe()
}

func (q *natsQueue) consume(ctx context.Context, data []byte, handler Handler) {
	var task Task
	if err := json.Unmarshal(data, &task); err != nil {
		q.log.Error("dropping undecodable task", "err", err)
		return
	}

	// Redelivered tasks carry their own delay.
	if wait := time.Until(task.NotBefore); wait > 0 {
		time.Sleep(wait)
	}

	if err := handler(ctx, task); err != nil {
		q.redeliver(ctx, task, err)
	}
}

func (q *natsQueue) redeliver(ctx context.Context, task Task, handlerErr error) {
	task.Attempts++
	if task.MaxAttempts == 0 {
		task.MaxAttempts = defaultMaxAttempts
	}
	log := q.log.With("task_id", task.ID, "task_type", task.Type, "attempt", task.Attempts)

	if task.Attempts >= task.MaxAttempts {
		log.Error("task permanently failed", "err", handlerErr)
		return
	}
	task.NotBefore = time.Now().Add(retry.ExponentialBackoff(task.Attempts, redeliveryBase))
	if err := q.Enqueue(ctx, task); err != nil {
		log.Error("failed to re-enqueue task", "handler_err", handlerErr, "enqueue_err", err)
		return
	}
	log.Warn("task failed, re-enqueued", "err", handlerErr)
}

func subjectFor(taskType TaskType) string {
	return subjectPrefix + string(taskType)
}
