package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

func TestNewOrderItem(t *testing.T) {
	item, err := domain.NewOrderItem("", "order-1", "product-1", 3, 250)
	if err != nil {
		t.Fatalf("new order item failed: %v", err)
	}
	if item.ID == "" {
		t.Fatal("expected generated item id")
	}
	if item.Total() != 750 {
		t.Fatalf("expected total 750, got %d", item.Total())
	}

	withID, err := domain.NewOrderItem("item-42", "order-1", "product-1", 1, 100)
	if err != nil {
		t.Fatalf("new order item failed: %v", err)
	}
	if withID.ID != "item-42" {
		t.Fatalf("expected supplied id to be kept, got %s", withID.ID)
	}
}

func TestNewOrderItem_Validation(t *testing.T) {
	cases := []struct {
		name  string
		qty   int32
		price int64
		want  error
	}{
		{"zero qty", 0, 100, domain.ErrQuantityInvalid},
		{"negative qty", -2, 100, domain.ErrQuantityInvalid},
		{"zero price", 1, 0, domain.ErrPriceInvalid},
		{"negative price", 1, -50, domain.ErrPriceInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := domain.NewOrderItem("", "order-1", "product-1", tc.qty, tc.price); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOrderItemUpdateQuantity(t *testing.T) {
	item, err := domain.NewOrderItem("", "order-1", "product-1", 1, 100)
	if err != nil {
		t.Fatalf("new order item failed: %v", err)
	}

	if err := item.UpdateQuantity(4); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if item.Quantity != 4 || item.Total() != 400 {
		t.Fatalf("expected qty 4 and total 400, got %d/%d", item.Quantity, item.Total())
	}

	if err := item.UpdateQuantity(0); !errors.Is(err, domain.ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
	if item.Quantity != 4 {
		t.Fatal("failed update must keep previous quantity")
	}
}
