package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

func TestNewSupplier(t *testing.T) {
	supplier, err := domain.NewSupplier("", "Acme LLC", "sales@acme.example", "+7 900 000-00-00")
	if err != nil {
		t.Fatalf("new supplier failed: %v", err)
	}
	if supplier.ID == "" {
		t.Fatal("expected generated supplier id")
	}
	if !supplier.IsActive {
		t.Fatal("new supplier must be active")
	}

	fixed, err := domain.NewSupplier("supplier-1", "Acme LLC", "sales@acme.example", "")
	if err != nil {
		t.Fatalf("new supplier failed: %v", err)
	}
	if fixed.ID != "supplier-1" {
		t.Fatalf("expected explicit supplier id, got %s", fixed.ID)
	}

	if _, err := domain.NewSupplier("", "", "sales@acme.example", ""); !errors.Is(err, domain.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := domain.NewSupplier("", "Acme LLC", " ", ""); !errors.Is(err, domain.ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
}

func TestSupplierUpdateInfo(t *testing.T) {
	supplier, _ := domain.NewSupplier("", "Acme LLC", "sales@acme.example", "")

	if err := supplier.UpdateInfo("Acme Group", "info@acme.example", "+7 900 111-11-11"); err != nil {
		t.Fatalf("update info failed: %v", err)
	}
	if supplier.CompanyName != "Acme Group" || supplier.Phone != "+7 900 111-11-11" {
		t.Fatal("expected updated supplier info")
	}
	if err := supplier.UpdateInfo("Acme Group", "", ""); !errors.Is(err, domain.ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}

	supplier.Deactivate()
	if supplier.IsActive {
		t.Fatal("expected inactive supplier")
	}
}
