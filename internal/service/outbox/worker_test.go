package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/memory"
)

// stubPublisher фейлит первые failures публикаций, дальше принимает всё.
type stubPublisher struct {
	mu        sync.Mutex
	failures  int
	published []domain.OutboxMessage
}

func (p *stubPublisher) Publish(event domain.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failures > 0 {
		p.failures--
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func (p *stubPublisher) messages() []domain.OutboxMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.OutboxMessage(nil), p.published...)
}

func testLogger() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return logger.WithField("component", "test")
}

func enqueue(t *testing.T, repo domain.OutboxRepository, eventType string) domain.OutboxMessage {
	t.Helper()
	msg, err := repo.Enqueue(domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   "order-1",
		EventType:     eventType,
		Payload:       []byte(`{"status":"pending"}`),
	})
	require.NoError(t, err)
	return msg
}

func TestWorkerDrainPublishesPending(t *testing.T) {
	repo := memory.NewOutboxRepository()
	publisher := &stubPublisher{}
	worker := NewWorker(repo, publisher, nil, testLogger(), Config{RetryDelay: time.Millisecond})

	enqueue(t, repo, "order.created")
	enqueue(t, repo, "order.confirmed")

	published := worker.Drain(context.Background())
	require.Equal(t, 2, published)
	require.Len(t, publisher.messages(), 2)

	stats, err := repo.Stats()
	require.NoError(t, err)
	require.Zero(t, stats.PendingCount)
}

func TestWorkerRetriesTransientFailure(t *testing.T) {
	repo := memory.NewOutboxRepository()
	publisher := &stubPublisher{failures: 2}
	worker := NewWorker(repo, publisher, nil, testLogger(), Config{MaxAttempts: 3, RetryDelay: time.Millisecond})

	enqueue(t, repo, "order.created")

	published := worker.Drain(context.Background())
	require.Equal(t, 1, published)
	require.Len(t, publisher.messages(), 1)
}

func TestWorkerSendsToDLQAfterExhaustedRetries(t *testing.T) {
	repo := memory.NewOutboxRepository()
	publisher := &stubPublisher{failures: 100}
	dlq := &stubPublisher{}
	worker := NewWorker(repo, publisher, dlq, testLogger(), Config{MaxAttempts: 2, RetryDelay: time.Millisecond})

	msg := enqueue(t, repo, "order.created")

	published := worker.Drain(context.Background())
	require.Zero(t, published)

	dead := dlq.messages()
	require.Len(t, dead, 1)
	require.Equal(t, msg.ID, dead[0].ID)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(dead[0].Payload, &envelope))
	require.Equal(t, "order.created", envelope["event_type"])
	require.Contains(t, envelope["error"], "broker unavailable")

	// Событие помечено failed и повторно не забирается.
	stats, err := repo.Stats()
	require.NoError(t, err)
	require.Zero(t, stats.PendingCount)
}

func TestWorkerRunStopsOnContextCancel(t *testing.T) {
	repo := memory.NewOutboxRepository()
	publisher := &stubPublisher{}
	worker := NewWorker(repo, publisher, nil, testLogger(), Config{PollInterval: 5 * time.Millisecond, RetryDelay: time.Millisecond})

	enqueue(t, repo, "order.created")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(publisher.messages()) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
