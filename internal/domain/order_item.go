package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem представляет одну позицию заказа.
// Позиция существует только внутри агрегата Order и создаётся через Order.AddItem.
type OrderItem struct {
	// ID позиции нужен для однозначной идентификации и аудита.
	ID string
	// OrderID — обратная ссылка на владеющий заказ.
	OrderID string
	// ProductID — внешний идентификатор товара; неизменяем после создания.
	ProductID string
	// Quantity — количество единиц товара, строго положительное.
	Quantity int32
	// UnitPriceMinor — цена за единицу в минимальных денежных единицах,
	// зафиксированная в момент добавления позиции (snapshot).
	UnitPriceMinor int64
	// CreatedAt фиксирует момент добавления позиции в заказ.
	CreatedAt time.Time
}

// NewOrderItem конструирует позицию заказа, проверяя количество и цену.
// Пустой id заменяется свежим uuid.
func NewOrderItem(id, orderID, productID string, quantity int32, unitPriceMinor int64) (OrderItem, error) {
	if !validQty(quantity) {
		return OrderItem{}, ErrQuantityInvalid
	}
	if !validPriceMinor(unitPriceMinor) {
		return OrderItem{}, ErrPriceInvalid
	}
	if id == "" {
		id = uuid.NewString()
	}

	return OrderItem{
		ID:             id,
		OrderID:        orderID,
		ProductID:      productID,
		Quantity:       quantity,
		UnitPriceMinor: unitPriceMinor,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// Total возвращает стоимость позиции: количество × цена за единицу.
func (i OrderItem) Total() int64 {
	return int64(i.Quantity) * i.UnitPriceMinor
}

// UpdateQuantity заменяет количество, проверяя, что новое значение положительное.
func (i *OrderItem) UpdateQuantity(newQuantity int32) error {
	if !validQty(newQuantity) {
		return ErrQuantityInvalid
	}
	i.Quantity = newQuantity
	return nil
}
