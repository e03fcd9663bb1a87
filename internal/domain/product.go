package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product представляет продаваемый товар каталога.
type Product struct {
	ID          string
	Name        string
	Description string
	// PriceMinor — текущая цена за единицу в минимальных денежных единицах.
	// Именно она снимается как snapshot при добавлении товара в заказ.
	PriceMinor int64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewProduct создаёт товар с валидацией названия и цены.
// Пустой id заменяется свежим uuid.
func NewProduct(id, name, description string, priceMinor int64) (*Product, error) {
	if isBlank(name) {
		return nil, ErrNameRequired
	}
	if !validPriceMinor(priceMinor) {
		return nil, ErrPriceInvalid
	}
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC()
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		PriceMinor:  priceMinor,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ChangePrice заменяет цену товара. Неактивный товар менять нельзя.
func (p *Product) ChangePrice(newPriceMinor int64) error {
	if !p.IsActive {
		return ErrProductInactive
	}
	if !validPriceMinor(newPriceMinor) {
		return ErrPriceInvalid
	}
	p.PriceMinor = newPriceMinor
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateInfo обновляет название и описание товара.
func (p *Product) UpdateInfo(name, description string) error {
	if isBlank(name) {
		return ErrNameRequired
	}
	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// ApplyDiscount снижает цену на percentage процентов (0 < percentage < 100).
func (p *Product) ApplyDiscount(percentage int64) error {
	if !p.IsActive {
		return ErrProductInactive
	}
	if percentage <= 0 || percentage >= 100 {
		return ErrDiscountInvalid
	}

	newPrice := p.PriceMinor * (100 - percentage) / 100
	if !validPriceMinor(newPrice) {
		return ErrPriceInvalid
	}
	p.PriceMinor = newPrice
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate снимает товар с продажи.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
}

// Activate возвращает товар в продажу.
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now().UTC()
}
