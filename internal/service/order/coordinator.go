package order

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderdesk/internal/metrics"
)

const defaultListLimit = 100

// Coordinator связывает чистую доменную логику Order с внешними lookup'ами
// и персистентностью. Каждая операция: загрузка агрегата → резолв ссылок →
// доменный вызов → сохранение. Доменные ошибки пробрасываются без изменений.
type Coordinator struct {
	orders    domain.OrderRepository
	customers domain.CustomerLookup
	products  domain.ProductLookup
	outbox    domain.OutboxRepository
	timeline  domain.TimelineRepository
	logger    *log.Entry
	metrics   *metrics.OrderMetrics
}

// NewCoordinator конструирует координатор заказов с метриками.
func NewCoordinator(
	orders domain.OrderRepository,
	customers domain.CustomerLookup,
	products domain.ProductLookup,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	logger *log.Entry,
) *Coordinator {
	c := newCoordinator(orders, customers, products, outbox, timeline, logger)
	c.metrics = metrics.NewOrderMetrics()
	return c
}

// NewCoordinatorWithoutMetrics конструирует координатор без метрик (для тестов).
func NewCoordinatorWithoutMetrics(
	orders domain.OrderRepository,
	customers domain.CustomerLookup,
	products domain.ProductLookup,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	logger *log.Entry,
) *Coordinator {
	return newCoordinator(orders, customers, products, outbox, timeline, logger)
}

func newCoordinator(
	orders domain.OrderRepository,
	customers domain.CustomerLookup,
	products domain.ProductLookup,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	logger *log.Entry,
) *Coordinator {
	if logger == nil {
		logger = log.New().WithField("component", "order-coordinator")
	}
	return &Coordinator{
		orders:    orders,
		customers: customers,
		products:  products,
		outbox:    outbox,
		timeline:  timeline,
		logger:    logger,
	}
}

// Create создаёт заказ для существующего клиента.
func (c *Coordinator) Create(customerID string) (domain.Order, error) {
	defer c.observe("create", time.Now())

	customer, err := c.customers.GetByID(customerID)
	if err != nil {
		return domain.Order{}, c.reject("create", err)
	}

	order, err := domain.NewOrder(customer.ID)
	if err != nil {
		return domain.Order{}, c.reject("create", err)
	}

	if err := c.orders.Add(*order); err != nil {
		c.logger.WithError(err).WithField("order_id", order.ID).Error("failed to persist new order")
		return domain.Order{}, err
	}

	if c.metrics != nil {
		c.metrics.RecordOrderCreated()
	}
	c.recordEvent(*order, kafka.EventTypeOrderCreated, "")
	return *order, nil
}

// Get возвращает заказ по идентификатору.
func (c *Coordinator) Get(orderID string) (domain.Order, error) {
	return c.orders.GetByID(orderID)
}

// Timeline возвращает события жизненного цикла заказа.
func (c *Coordinator) Timeline(orderID string) ([]domain.TimelineEvent, error) {
	if c.timeline == nil {
		return nil, nil
	}
	return c.timeline.List(orderID)
}

// List возвращает все заказы.
func (c *Coordinator) List() ([]domain.Order, error) {
	return c.orders.ListAll()
}

// ListByCustomer возвращает заказы клиента.
func (c *Coordinator) ListByCustomer(customerID string, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return c.orders.ListByCustomer(customerID, limit)
}

// AddItem добавляет товар в заказ. Цена позиции берётся ТОЛЬКО из каталога:
// запрос клиента цену не несёт, snapshot делается в момент добавления.
func (c *Coordinator) AddItem(orderID, productID string, quantity int32) (domain.Order, error) {
	defer c.observe("add_item", time.Now())

	order, err := c.orders.GetByID(orderID)
	if err != nil {
		return domain.Order{}, c.reject("add_item", err)
	}

	product, err := c.products.GetByID(productID)
	if err != nil {
		return domain.Order{}, c.reject("add_item", err)
	}

	if _, err := order.AddItem(product.ID, quantity, product.PriceMinor); err != nil {
		return domain.Order{}, c.reject("add_item", err)
	}

	saved, err := c.save(order, "add_item")
	if err != nil {
		return domain.Order{}, err
	}
	c.recordEvent(saved, kafka.EventTypeOrderItemAdded, product.ID)
	return saved, nil
}

// RemoveItem удаляет позицию из заказа.
func (c *Coordinator) RemoveItem(orderID, itemID string) (domain.Order, error) {
	defer c.observe("remove_item", time.Now())

	order, err := c.orders.GetByID(orderID)
	if err != nil {
		return domain.Order{}, c.reject("remove_item", err)
	}

	if err := order.RemoveItem(itemID); err != nil {
		return domain.Order{}, c.reject("remove_item", err)
	}

	saved, err := c.save(order, "remove_item")
	if err != nil {
		return domain.Order{}, err
	}
	c.recordEvent(saved, kafka.EventTypeOrderItemRemoved, itemID)
	return saved, nil
}

// UpdateItemQuantity меняет количество в позиции заказа.
func (c *Coordinator) UpdateItemQuantity(orderID, itemID string, quantity int32) (domain.Order, error) {
	defer c.observe("update_item", time.Now())

	order, err := c.orders.GetByID(orderID)
	if err != nil {
		return domain.Order{}, c.reject("update_item", err)
	}

	if err := order.UpdateItemQuantity(itemID, quantity); err != nil {
		return domain.Order{}, c.reject("update_item", err)
	}

	saved, err := c.save(order, "update_item")
	if err != nil {
		return domain.Order{}, err
	}
	c.recordEvent(saved, kafka.EventTypeOrderItemUpdated, itemID)
	return saved, nil
}

// Confirm подтверждает заказ.
func (c *Coordinator) Confirm(orderID string) (domain.Order, error) {
	return c.mutateStatus(orderID, "confirm", kafka.EventTypeOrderConfirmed, func(o *domain.Order) error {
		return o.Confirm()
	})
}

// Ship отмечает отгрузку заказа.
func (c *Coordinator) Ship(orderID string) (domain.Order, error) {
	return c.mutateStatus(orderID, "ship", kafka.EventTypeOrderShipped, func(o *domain.Order) error {
		return o.Ship()
	})
}

// Deliver отмечает доставку заказа.
func (c *Coordinator) Deliver(orderID string) (domain.Order, error) {
	return c.mutateStatus(orderID, "deliver", kafka.EventTypeOrderDelivered, func(o *domain.Order) error {
		return o.Deliver()
	})
}

// Cancel отменяет заказ.
func (c *Coordinator) Cancel(orderID string) (domain.Order, error) {
	return c.mutateStatus(orderID, "cancel", kafka.EventTypeOrderCancelled, func(o *domain.Order) error {
		return o.Cancel()
	})
}

// Delete удаляет заказ вместе с позициями.
func (c *Coordinator) Delete(orderID string) error {
	defer c.observe("delete", time.Now())

	order, err := c.orders.GetByID(orderID)
	if err != nil {
		return c.reject("delete", err)
	}

	if err := c.orders.Remove(order.ID); err != nil {
		c.logger.WithError(err).WithField("order_id", order.ID).Error("failed to remove order")
		return err
	}

	c.recordEvent(order, kafka.EventTypeOrderDeleted, "")
	return nil
}

// mutateStatus выполняет переход статуса: загрузка → доменный вызов → сохранение.
func (c *Coordinator) mutateStatus(orderID, operation string, event kafka.EventType, mutate func(*domain.Order) error) (domain.Order, error) {
	defer c.observe(operation, time.Now())

	order, err := c.orders.GetByID(orderID)
	if err != nil {
		return domain.Order{}, c.reject(operation, err)
	}

	if err := mutate(&order); err != nil {
		return domain.Order{}, c.reject(operation, err)
	}

	saved, err := c.save(order, operation)
	if err != nil {
		return domain.Order{}, err
	}

	if c.metrics != nil {
		c.metrics.RecordStatusChange(string(saved.Status))
	}
	c.recordEvent(saved, event, "")
	return saved, nil
}

// save сохраняет агрегат и перечитывает его, чтобы вернуть актуальную версию.
func (c *Coordinator) save(order domain.Order, operation string) (domain.Order, error) {
	if err := c.orders.Save(order); err != nil {
		c.logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"order_id":  order.ID,
		}).Error("failed to save order")
		return domain.Order{}, err
	}
	return c.orders.GetByID(order.ID)
}

// reject классифицирует отклонённую операцию для метрик и отдаёт ошибку как есть.
func (c *Coordinator) reject(operation string, err error) error {
	c.logger.WithError(err).WithField("operation", operation).Debug("order operation rejected")
	if c.metrics == nil {
		return err
	}
	switch {
	case domain.IsValidation(err):
		c.metrics.RecordRuleViolation("validation")
	case domain.IsBusinessRule(err):
		c.metrics.RecordRuleViolation("business_rule")
	case domain.IsNotFound(err):
		c.metrics.RecordRuleViolation("not_found")
	}
	return err
}

func (c *Coordinator) observe(operation string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordOperationDuration(operation, time.Since(start))
	}
}

// recordEvent пишет событие в timeline и enqueue'ит его в outbox.
// Сбой записи события не отменяет уже сохранённую операцию: только warn в лог.
func (c *Coordinator) recordEvent(order domain.Order, event kafka.EventType, subject string) {
	now := time.Now().UTC()

	if c.timeline != nil {
		err := c.timeline.Append(domain.TimelineEvent{
			OrderID:  order.ID,
			Type:     string(event),
			Detail:   subject,
			Occurred: now,
		})
		if err != nil {
			c.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to append timeline event")
		} else if c.metrics != nil {
			c.metrics.RecordTimelineEvent()
		}
	}

	if c.outbox != nil {
		payload, err := json.Marshal(map[string]interface{}{
			"order_id":    order.ID,
			"customer_id": order.CustomerID,
			"status":      string(order.Status),
			"total_minor": order.Total(),
			"subject":     subject,
			"occurred_at": now,
		})
		if err != nil {
			c.logger.WithError(err).Warn("failed to marshal outbox payload")
			return
		}
		_, err = c.outbox.Enqueue(domain.OutboxMessage{
			AggregateType: "order",
			AggregateID:   order.ID,
			EventType:     string(event),
			Payload:       payload,
		})
		if err != nil {
			c.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to enqueue outbox event")
		} else if c.metrics != nil {
			c.metrics.RecordOutboxEvent()
		}
	}
}
