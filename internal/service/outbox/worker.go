package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

const (
	defaultPollInterval = 1 * time.Second
	defaultBatchSize    = 50
	defaultMaxAttempts  = 3
	defaultRetryDelay   = 100 * time.Millisecond
)

var (
	publishResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_outbox_publish_total",
		Help: "Outbox publish outcomes grouped by result.",
	}, []string{"result"})
	backlogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orderdesk_outbox_backlog",
		Help: "Current number of pending outbox events.",
	})
	backlogAge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orderdesk_outbox_backlog_age_seconds",
		Help: "Age in seconds of the oldest pending outbox event.",
	})
)

// Config задаёт параметры polling-воркера. Нулевые значения заменяются дефолтами.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	RetryDelay   time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultRetryDelay
	}
	return c
}

// Worker дренирует transactional outbox: периодически забирает pending-события
// и публикует их в брокер. После исчерпания retry событие уходит в DLQ (если
// DLQ-publisher задан) и помечается failed.
type Worker struct {
	repo      domain.OutboxRepository
	publisher domain.OutboxPublisher
	dlq       domain.OutboxPublisher
	logger    *log.Entry
	cfg       Config
}

// NewWorker создаёт воркер. dlq может быть nil: тогда исчерпавшие retry события
// только помечаются failed.
func NewWorker(repo domain.OutboxRepository, publisher, dlq domain.OutboxPublisher, logger *log.Entry, cfg Config) *Worker {
	if logger == nil {
		logger = log.WithField("component", "outbox-worker")
	}
	return &Worker{
		repo:      repo,
		publisher: publisher,
		dlq:       dlq,
		logger:    logger,
		cfg:       cfg.withDefaults(),
	}
}

// Run крутит polling-цикл до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.repo == nil || w.publisher == nil {
		w.logger.Warn("outbox worker disabled: repository or publisher is not configured")
		return
	}

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.Drain(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Drain(ctx)
		}
	}
}

// Drain выполняет один polling-цикл и возвращает число опубликованных событий.
func (w *Worker) Drain(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}

	w.updateBacklogGauges()

	events, err := w.repo.PullPending(w.cfg.BatchSize)
	if err != nil {
		w.logger.WithError(err).Warn("failed to pull pending outbox events")
		return 0
	}

	published := 0
	for _, event := range events {
		if ctx.Err() != nil {
			break
		}
		if w.deliver(ctx, event) {
			published++
		}
	}

	if published > 0 {
		w.logger.WithField("published", published).Debug("outbox events published")
	}
	w.updateBacklogGauges()
	return published
}

// deliver публикует одно событие с retry; сообщает, ушло ли оно в брокер.
func (w *Worker) deliver(ctx context.Context, event domain.OutboxMessage) bool {
	var lastErr error
	for attempt := 1; attempt <= w.cfg.MaxAttempts; attempt++ {
		err := w.publisher.Publish(event)
		if err == nil {
			publishResults.WithLabelValues("sent").Inc()
			if markErr := w.repo.MarkSent(event.ID); markErr != nil {
				w.logger.WithError(markErr).WithField("outbox_id", event.ID).Warn("failed to mark outbox event sent")
			}
			return true
		}
		lastErr = err
		publishResults.WithLabelValues("retry").Inc()

		if attempt < w.cfg.MaxAttempts && w.cfg.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(w.cfg.RetryDelay << (attempt - 1)):
			}
		}
	}

	publishResults.WithLabelValues("failed").Inc()
	w.logger.WithError(lastErr).WithFields(log.Fields{
		"outbox_id":  event.ID,
		"event_type": event.EventType,
	}).Error("outbox publish failed after retries")

	if err := w.sendToDLQ(event, lastErr); err != nil {
		w.logger.WithError(err).WithField("outbox_id", event.ID).Warn("failed to publish outbox event to DLQ")
	}
	if err := w.repo.MarkFailed(event.ID); err != nil {
		w.logger.WithError(err).WithField("outbox_id", event.ID).Warn("failed to mark outbox event failed")
	}
	return false
}

func (w *Worker) sendToDLQ(event domain.OutboxMessage, cause error) error {
	if w.dlq == nil {
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"outbox_id":      event.ID,
		"aggregate_type": event.AggregateType,
		"aggregate_id":   event.AggregateID,
		"event_type":     event.EventType,
		"payload":        json.RawMessage(event.Payload),
		"error":          cause.Error(),
		"failed_at":      time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal dlq payload: %w", err)
	}

	return w.dlq.Publish(domain.OutboxMessage{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       payload,
	})
}

func (w *Worker) updateBacklogGauges() {
	stats, err := w.repo.Stats()
	if err != nil {
		w.logger.WithError(err).Warn("failed to read outbox backlog stats")
		return
	}

	backlogSize.Set(float64(stats.PendingCount))
	if stats.PendingCount == 0 || stats.OldestPendingAt.IsZero() {
		backlogAge.Set(0)
		return
	}
	age := time.Since(stats.OldestPendingAt).Seconds()
	if age < 0 {
		age = 0
	}
	backlogAge.Set(age)
}
