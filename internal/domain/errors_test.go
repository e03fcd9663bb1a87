package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err          error
		validation   bool
		businessRule bool
		notFound     bool
	}{
		{domain.ErrCustomerRequired, true, false, false},
		{domain.ErrQuantityInvalid, true, false, false},
		{domain.ErrPriceInvalid, true, false, false},
		{domain.ErrInvalidTransition, false, true, false},
		{domain.ErrEmptyOrder, false, true, false},
		{domain.ErrDuplicateItem, false, true, false},
		{domain.ErrItemNotFound, false, true, false},
		{domain.ErrAlreadyDelivered, false, true, false},
		{domain.ErrAlreadyCancelled, false, true, false},
		{domain.ErrOrderNotFound, false, false, true},
		{domain.ErrCustomerNotFound, false, false, true},
		{domain.ErrProductNotFound, false, false, true},
		{domain.ErrOrderVersionConflict, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			if got := domain.IsValidation(tc.err); got != tc.validation {
				t.Fatalf("IsValidation = %v, want %v", got, tc.validation)
			}
			if got := domain.IsBusinessRule(tc.err); got != tc.businessRule {
				t.Fatalf("IsBusinessRule = %v, want %v", got, tc.businessRule)
			}
			if got := domain.IsNotFound(tc.err); got != tc.notFound {
				t.Fatalf("IsNotFound = %v, want %v", got, tc.notFound)
			}
		})
	}
}

// Классификация должна работать и для обёрнутых ошибок с контекстом.
func TestErrorKinds_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, "pending", "delivered")
	if !domain.IsBusinessRule(wrapped) {
		t.Fatal("wrapped transition error must stay a business-rule error")
	}
	if !errors.Is(wrapped, domain.ErrInvalidTransition) {
		t.Fatal("wrapped error must match its sentinel")
	}
}

func TestIsVersionConflict(t *testing.T) {
	if !domain.IsVersionConflict(domain.ErrOrderVersionConflict) {
		t.Fatal("expected version conflict match")
	}
	if domain.IsVersionConflict(domain.ErrOrderNotFound) {
		t.Fatal("unexpected version conflict match")
	}
}
