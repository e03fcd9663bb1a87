package domain

import "time"

// CustomerLookup — read-only порт для проверки существования клиента.
// Реализуется CustomerRepository, но координатору заказов нужна только читающая часть.
type CustomerLookup interface {
	// GetByID возвращает клиента или ErrCustomerNotFound.
	GetByID(id string) (Customer, error)
}

// ProductLookup — read-only порт для резолва товара и snapshot его цены.
type ProductLookup interface {
	// GetByID возвращает товар или ErrProductNotFound.
	GetByID(id string) (Product, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(msg OutboxMessage) (OutboxMessage, error)
	PullPending(limit int) ([]OutboxMessage, error)
	Stats() (OutboxStats, error)
	MarkSent(id string) error
	MarkFailed(id string) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(event TimelineEvent) error
	List(orderID string) ([]TimelineEvent, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}

// TimelineEvent описывает событие в жизненном цикле заказа.
type TimelineEvent struct {
	OrderID  string
	Type     string
	Detail   string
	Occurred time.Time
}
