package order

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/memory"
)

type fixture struct {
	coordinator *Coordinator
	customers   domain.CustomerRepository
	products    domain.ProductRepository
	outbox      domain.OutboxRepository
	timeline    domain.TimelineRepository

	customerID string
	productID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	orders := memory.NewOrderRepository()
	customers := memory.NewCustomerRepository()
	products := memory.NewProductRepository()
	outbox := memory.NewOutboxRepository()
	timeline := memory.NewTimelineRepository()

	logger := log.New()
	logger.SetLevel(log.PanicLevel)

	customer, err := domain.NewCustomer("", "Ivan", "Petrov", "ivan@example.com")
	require.NoError(t, err)
	require.NoError(t, customers.Add(*customer))

	product, err := domain.NewProduct("", "Keyboard", "Mechanical keyboard", 250000)
	require.NoError(t, err)
	require.NoError(t, products.Add(*product))

	return &fixture{
		coordinator: NewCoordinatorWithoutMetrics(orders, customers, products, outbox, timeline, logger.WithField("component", "test")),
		customers:   customers,
		products:    products,
		outbox:      outbox,
		timeline:    timeline,
		customerID:  customer.ID,
		productID:   product.ID,
	}
}

func TestCoordinatorCreate(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.Equal(t, f.customerID, order.CustomerID)

	events, err := f.timeline.List(order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, string(kafka.EventTypeOrderCreated), events[0].Type)
}

func TestCoordinatorCreateUnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.coordinator.Create("missing")
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCoordinatorAddItemSnapshotsCatalogPrice(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	order, err = f.coordinator.AddItem(order.ID, f.productID, 2)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Equal(t, int64(250000), order.Items[0].UnitPriceMinor)
	require.Equal(t, int64(500000), order.Total())

	// Цена в каталоге меняется — уже добавленная позиция хранит snapshot.
	product, err := f.products.GetByID(f.productID)
	require.NoError(t, err)
	require.NoError(t, product.ChangePrice(990000))
	require.NoError(t, f.products.Save(product))

	order, err = f.coordinator.Get(order.ID)
	require.NoError(t, err)
	require.Equal(t, int64(250000), order.Items[0].UnitPriceMinor)
}

func TestCoordinatorAddItemUnknownProduct(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	_, err = f.coordinator.AddItem(order.ID, "missing", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCoordinatorAddDuplicateProduct(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	_, err = f.coordinator.AddItem(order.ID, f.productID, 1)
	require.NoError(t, err)

	_, err = f.coordinator.AddItem(order.ID, f.productID, 1)
	require.ErrorIs(t, err, domain.ErrDuplicateItem)
}

func TestCoordinatorRemoveAndUpdateItem(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	order, err = f.coordinator.AddItem(order.ID, f.productID, 1)
	require.NoError(t, err)
	itemID := order.Items[0].ID

	order, err = f.coordinator.UpdateItemQuantity(order.ID, itemID, 5)
	require.NoError(t, err)
	require.Equal(t, int32(5), order.Items[0].Quantity)

	order, err = f.coordinator.RemoveItem(order.ID, itemID)
	require.NoError(t, err)
	require.Empty(t, order.Items)

	_, err = f.coordinator.RemoveItem(order.ID, itemID)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCoordinatorLifecycle(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	_, err = f.coordinator.Confirm(order.ID)
	require.ErrorIs(t, err, domain.ErrEmptyOrder)

	_, err = f.coordinator.AddItem(order.ID, f.productID, 1)
	require.NoError(t, err)

	order, err = f.coordinator.Confirm(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusConfirmed, order.Status)

	order, err = f.coordinator.Ship(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusShipped, order.Status)

	order, err = f.coordinator.Deliver(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusDelivered, order.Status)

	_, err = f.coordinator.Cancel(order.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyDelivered)

	events, err := f.coordinator.Timeline(order.ID)
	require.NoError(t, err)
	require.Len(t, events, 5) // created, item_added, confirmed, shipped, delivered
}

func TestCoordinatorCancel(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	order, err = f.coordinator.Cancel(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusCancelled, order.Status)

	_, err = f.coordinator.Cancel(order.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	// Отменённый заказ больше не принимает позиции.
	_, err = f.coordinator.AddItem(order.ID, f.productID, 1)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCoordinatorDelete(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	require.NoError(t, f.coordinator.Delete(order.ID))

	_, err = f.coordinator.Get(order.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	err = f.coordinator.Delete(order.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCoordinatorOutboxAccumulatesEvents(t *testing.T) {
	f := newFixture(t)

	order, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	_, err = f.coordinator.AddItem(order.ID, f.productID, 1)
	require.NoError(t, err)

	_, err = f.coordinator.Confirm(order.ID)
	require.NoError(t, err)

	pending, err := f.outbox.PullPending(10)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	require.Equal(t, string(kafka.EventTypeOrderCreated), pending[0].EventType)
	require.Equal(t, string(kafka.EventTypeOrderConfirmed), pending[2].EventType)
	for _, msg := range pending {
		require.Equal(t, "order", msg.AggregateType)
		require.Equal(t, order.ID, msg.AggregateID)
	}
}

func TestCoordinatorListByCustomer(t *testing.T) {
	f := newFixture(t)

	first, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)
	second, err := f.coordinator.Create(f.customerID)
	require.NoError(t, err)

	orders, err := f.coordinator.ListByCustomer(f.customerID, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	limited, err := f.coordinator.ListByCustomer(f.customerID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	all, err := f.coordinator.List()
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids := map[string]bool{first.ID: false, second.ID: false}
	for _, o := range orders {
		ids[o.ID] = true
	}
	require.True(t, ids[first.ID])
	require.True(t, ids[second.ID])
}
