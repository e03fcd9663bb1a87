package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supplier представляет поставщика товаров.
type Supplier struct {
	ID           string
	CompanyName  string
	ContactEmail string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSupplier создаёт поставщика с валидацией названия компании и email.
// Пустой id заменяется свежим uuid.
func NewSupplier(id, companyName, contactEmail, phone string) (*Supplier, error) {
	if isBlank(companyName) {
		return nil, ErrNameRequired
	}
	if isBlank(contactEmail) {
		return nil, ErrEmailRequired
	}
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC()
	return &Supplier{
		ID:           id,
		CompanyName:  companyName,
		ContactEmail: contactEmail,
		Phone:        phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateInfo обновляет контактные данные поставщика.
func (s *Supplier) UpdateInfo(companyName, contactEmail, phone string) error {
	if isBlank(companyName) {
		return ErrNameRequired
	}
	if isBlank(contactEmail) {
		return ErrEmailRequired
	}
	s.CompanyName = companyName
	s.ContactEmail = contactEmail
	s.Phone = phone
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate помечает поставщика неактивным.
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now().UTC()
}

// Activate возвращает поставщика в работу.
func (s *Supplier) Activate() {
	s.IsActive = true
	s.UpdatedAt = time.Now().UTC()
}
