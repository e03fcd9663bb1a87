package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

func TestNewCustomer(t *testing.T) {
	customer, err := domain.NewCustomer("", "Ivan", "Petrov", "ivan@example.com")
	if err != nil {
		t.Fatalf("new customer failed: %v", err)
	}
	if customer.ID == "" {
		t.Fatal("expected generated customer id")
	}
	if !customer.IsActive {
		t.Fatal("new customer must be active")
	}

	cases := []struct {
		name  string
		first string
		last  string
		email string
		want  error
	}{
		{"no first name", "", "Petrov", "x@example.com", domain.ErrNameRequired},
		{"no last name", "Ivan", " ", "x@example.com", domain.ErrNameRequired},
		{"no email", "Ivan", "Petrov", "", domain.ErrEmailRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := domain.NewCustomer("", tc.first, tc.last, tc.email); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCustomerUpdateInfo(t *testing.T) {
	customer, _ := domain.NewCustomer("", "Ivan", "Petrov", "ivan@example.com")

	if err := customer.UpdateInfo("Ivan", "Sidorov", "sidorov@example.com"); err != nil {
		t.Fatalf("update info failed: %v", err)
	}
	if customer.LastName != "Sidorov" || customer.Email != "sidorov@example.com" {
		t.Fatal("expected updated customer info")
	}
	if err := customer.UpdateInfo("Ivan", "Sidorov", ""); !errors.Is(err, domain.ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
}

func TestCustomerActivation(t *testing.T) {
	customer, _ := domain.NewCustomer("", "Ivan", "Petrov", "ivan@example.com")

	customer.Deactivate()
	if customer.IsActive {
		t.Fatal("expected inactive customer")
	}
	customer.Activate()
	if !customer.IsActive {
		t.Fatal("expected active customer")
	}
}
