package kafka

import "time"

// EventType определяет тип события заказа.
type EventType string

const (
	EventTypeOrderCreated     EventType = "order.created"
	EventTypeOrderItemAdded   EventType = "order.item_added"
	EventTypeOrderItemRemoved EventType = "order.item_removed"
	EventTypeOrderItemUpdated EventType = "order.item_updated"
	EventTypeOrderConfirmed   EventType = "order.confirmed"
	EventTypeOrderShipped     EventType = "order.shipped"
	EventTypeOrderDelivered   EventType = "order.delivered"
	EventTypeOrderCancelled   EventType = "order.cancelled"
	EventTypeOrderDeleted     EventType = "order.deleted"
)

// Topics для Kafka.
const (
	TopicOrderEvents     = "orderdesk.order.events"
	TopicDeadLetterQueue = "orderdesk.dlq"
)

// OrderEvent представляет событие жизненного цикла заказа.
type OrderEvent struct {
	EventType  EventType              `json:"event_type"`
	OrderID    string                 `json:"order_id"`
	CustomerID string                 `json:"customer_id"`
	Status     string                 `json:"status"`
	Timestamp  time.Time              `json:"timestamp"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// NewOrderEvent создаёт событие заказа с текущей меткой времени.
func NewOrderEvent(eventType EventType, orderID, customerID, status string, metadata map[string]interface{}) *OrderEvent {
	return &OrderEvent{
		EventType:  eventType,
		OrderID:    orderID,
		CustomerID: customerID,
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Metadata:   metadata,
	}
}
