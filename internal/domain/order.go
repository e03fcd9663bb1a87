package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, состав ещё редактируется.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed — состав зафиксирован, заказ готов к отгрузке.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — заказ доставлен клиенту; терминальный статус.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён до доставки; терминальный статус.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// transitions — единственное место, где задана таблица допустимых переходов.
// Все мутаторы статуса обязаны проходить через transition().
var transitions = map[OrderStatus]map[OrderStatus]struct{}{
	OrderStatusPending: {
		OrderStatusConfirmed: {},
		OrderStatusCancelled: {},
	},
	OrderStatusConfirmed: {
		OrderStatusShipped:   {},
		OrderStatusCancelled: {},
	},
	OrderStatusShipped: {
		OrderStatusDelivered: {},
		OrderStatusCancelled: {},
	},
}

// canTransition сообщает, допустим ли переход from → to.
func canTransition(from, to OrderStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Order — агрегат заказа: владеет позициями и контролирует переходы статуса.
type Order struct {
	ID         string
	CustomerID string
	Status     OrderStatus
	Items      []OrderItem
	// Version служит для optimistic locking на уровне репозитория.
	Version   int64
	OrderDate time.Time
	UpdatedAt time.Time

	// productIndex ускоряет проверку уникальности ProductID до O(1).
	// Ленивая инициализация: после гидрации из хранилища индекс пуст
	// и перестраивается при первой мутации позиций.
	productIndex map[string]struct{}
}

// NewOrder создаёт заказ для клиента: свежий ID, статус pending, пустые позиции.
func NewOrder(customerID string) (*Order, error) {
	if isBlank(customerID) {
		return nil, ErrCustomerRequired
	}

	now := time.Now().UTC()
	return &Order{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		Status:       OrderStatusPending,
		Items:        []OrderItem{},
		Version:      0,
		OrderDate:    now,
		UpdatedAt:    now,
		productIndex: make(map[string]struct{}),
	}, nil
}

// Clone возвращает независимую копию агрегата: собственный слайс позиций
// и отложенный productIndex, который перестроится при первой мутации.
// Копия через присваивание структуры делит productIndex с оригиналом,
// поэтому снимать копию агрегата можно только через Clone.
func (o Order) Clone() Order {
	clone := o
	clone.Items = make([]OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	clone.productIndex = nil
	return clone
}

// ensureIndex перестраивает productIndex, если он рассинхронизирован с Items.
func (o *Order) ensureIndex() {
	if o.productIndex != nil && len(o.productIndex) == len(o.Items) {
		return
	}
	o.productIndex = make(map[string]struct{}, len(o.Items))
	for _, item := range o.Items {
		o.productIndex[item.ProductID] = struct{}{}
	}
}

// AddItem добавляет позицию с переданным snapshot цены.
// Требует статус pending и отсутствие позиции с тем же ProductID.
func (o *Order) AddItem(productID string, quantity int32, unitPriceMinor int64) (OrderItem, error) {
	if o.Status != OrderStatusPending {
		return OrderItem{}, fmt.Errorf("%w: cannot add item in status %q", ErrInvalidTransition, o.Status)
	}

	o.ensureIndex()
	if _, exists := o.productIndex[productID]; exists {
		return OrderItem{}, fmt.Errorf("%w: product %s", ErrDuplicateItem, productID)
	}

	item, err := NewOrderItem("", o.ID, productID, quantity, unitPriceMinor)
	if err != nil {
		return OrderItem{}, err
	}

	o.Items = append(o.Items, item)
	o.productIndex[productID] = struct{}{}
	o.UpdatedAt = time.Now().UTC()
	return item, nil
}

// RemoveItem удаляет позицию по её ID. Требует статус pending.
func (o *Order) RemoveItem(itemID string) error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: cannot remove item in status %q", ErrInvalidTransition, o.Status)
	}

	for idx, item := range o.Items {
		if item.ID != itemID {
			continue
		}
		o.ensureIndex()
		delete(o.productIndex, item.ProductID)
		o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
		o.UpdatedAt = time.Now().UTC()
		return nil
	}

	return fmt.Errorf("%w: item %s", ErrItemNotFound, itemID)
}

// UpdateItemQuantity меняет количество в существующей позиции. Требует статус pending.
func (o *Order) UpdateItemQuantity(itemID string, newQuantity int32) error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: cannot update item in status %q", ErrInvalidTransition, o.Status)
	}

	for idx := range o.Items {
		if o.Items[idx].ID != itemID {
			continue
		}
		if err := o.Items[idx].UpdateQuantity(newQuantity); err != nil {
			return err
		}
		o.UpdatedAt = time.Now().UTC()
		return nil
	}

	return fmt.Errorf("%w: item %s", ErrItemNotFound, itemID)
}

// Total возвращает сумму заказа: Σ quantity × unitPrice. Для пустого заказа — 0.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Total()
	}
	return total
}

// Item возвращает позицию по ID.
func (o *Order) Item(itemID string) (OrderItem, error) {
	for _, item := range o.Items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return OrderItem{}, fmt.Errorf("%w: item %s", ErrItemNotFound, itemID)
}

// transition выполняет переход статуса, сверяясь с таблицей transitions.
func (o *Order) transition(to OrderStatus) error {
	if !canTransition(o.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// Confirm фиксирует заказ. Требует статус pending и хотя бы одну позицию.
func (o *Order) Confirm() error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, OrderStatusConfirmed)
	}
	if len(o.Items) == 0 {
		return ErrEmptyOrder
	}
	return o.transition(OrderStatusConfirmed)
}

// Ship отмечает отгрузку. Требует статус confirmed.
func (o *Order) Ship() error {
	return o.transition(OrderStatusShipped)
}

// Deliver отмечает доставку. Требует статус shipped.
func (o *Order) Deliver() error {
	return o.transition(OrderStatusDelivered)
}

// Cancel отменяет заказ из любого нетерминального статуса.
func (o *Order) Cancel() error {
	switch o.Status {
	case OrderStatusDelivered:
		return ErrAlreadyDelivered
	case OrderStatusCancelled:
		return ErrAlreadyCancelled
	}
	return o.transition(OrderStatusCancelled)
}
