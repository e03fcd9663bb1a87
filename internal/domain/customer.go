package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer представляет клиента, который может оформлять заказы.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer создаёт клиента с валидацией обязательных полей.
// Пустой id заменяется свежим uuid.
func NewCustomer(id, firstName, lastName, email string) (*Customer, error) {
	if isBlank(firstName) || isBlank(lastName) {
		return nil, ErrNameRequired
	}
	if isBlank(email) {
		return nil, ErrEmailRequired
	}
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC()
	return &Customer{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateInfo обновляет контактные данные клиента.
func (c *Customer) UpdateInfo(firstName, lastName, email string) error {
	if isBlank(firstName) || isBlank(lastName) {
		return ErrNameRequired
	}
	if isBlank(email) {
		return ErrEmailRequired
	}
	c.FirstName = firstName
	c.LastName = lastName
	c.Email = email
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate блокирует клиента.
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now().UTC()
}

// Activate разблокирует клиента.
func (c *Customer) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now().UTC()
}
