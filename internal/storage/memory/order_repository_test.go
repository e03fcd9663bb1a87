package memory_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/memory"
)

func newOrder(t *testing.T) domain.Order {
	t.Helper()

	order, err := domain.NewOrder("customer-1")
	if err != nil {
		t.Fatalf("new order failed: %v", err)
	}
	if _, err := order.AddItem("product-1", 5, 100); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	return *order
}

func TestOrderRepository_AddGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(t)

	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Add(order); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	stored, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID || stored.CustomerID != order.CustomerID {
		t.Fatal("stored order does not match")
	}
	if stored.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending, got %s", stored.Status)
	}

	if _, err := repo.GetByID("missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

// Save должен заменять агрегат целиком, включая позиции (round-trip из спеки хранения).
func TestOrderRepository_SaveRoundTrip(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(t)
	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	stored, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, err := stored.AddItem("product-2", 1, 4200); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := repo.Save(stored); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(reloaded.Items) != 2 {
		t.Fatalf("expected 2 items after save, got %d", len(reloaded.Items))
	}
	if reloaded.Items[0].ProductID != "product-1" || reloaded.Items[1].ProductID != "product-2" {
		t.Fatal("expected item order to be preserved")
	}
	if reloaded.Version != stored.Version+1 {
		t.Fatalf("expected version increment, got %d", reloaded.Version)
	}
	if reloaded.Total() != 4700 {
		t.Fatalf("expected total 4700, got %d", reloaded.Total())
	}
}

func TestOrderRepository_SaveVersionConflict(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(t)
	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order.Version = 42
	if err := repo.Save(order); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}

	missing := newOrder(t)
	if err := repo.Save(missing); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

// Мутация заказа, полученного из Get, не должна менять хранимую копию.
func TestOrderRepository_Isolation(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(t)
	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	loaded, _ := repo.GetByID(order.ID)
	if _, err := loaded.AddItem("product-ghost", 1, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	stored, _ := repo.GetByID(order.ID)
	if len(stored.Items) != 1 {
		t.Fatalf("stored copy mutated: %d items", len(stored.Items))
	}
}

// Две копии одного заказа из Get не должны делить индекс уникальности:
// мутации одной копии не влияют на проверку дублей в другой.
func TestOrderRepository_IsolationOfProductIndex(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(t)
	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	first, _ := repo.GetByID(order.ID)
	second, _ := repo.GetByID(order.ID)

	if err := first.RemoveItem(first.Items[0].ID); err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	if _, err := first.AddItem("product-2", 1, 100); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	// У второй копии product-1 всё ещё в составе — повторное добавление запрещено.
	if _, err := second.AddItem("product-1", 1, 100); !errors.Is(err, domain.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
	if len(second.Items) != 1 {
		t.Fatalf("expected 1 item in second copy, got %d", len(second.Items))
	}

	stored, _ := repo.GetByID(order.ID)
	if len(stored.Items) != 1 || stored.Items[0].ProductID != "product-1" {
		t.Fatal("stored copy mutated by clones")
	}
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	repo := memory.NewOrderRepository()

	first := newOrder(t)
	second := newOrder(t)
	other, _ := domain.NewOrder("customer-2")

	for _, o := range []domain.Order{first, second, *other} {
		if err := repo.Add(o); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	orders, err := repo.ListByCustomer("customer-1", 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	limited, err := repo.ListByCustomer("customer-1", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 order with limit, got %d", len(limited))
	}

	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(all))
	}
}

func TestOrderRepository_Remove(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(t)
	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := repo.Remove(order.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := repo.GetByID(order.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound after remove, got %v", err)
	}
	if err := repo.Remove(order.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
