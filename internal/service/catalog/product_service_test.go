package catalog

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/memory"
)

func newProductService() *ProductService {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return NewProductService(memory.NewProductRepository(), logger.WithField("component", "test"))
}

func TestProductServiceCreateAndGet(t *testing.T) {
	svc := newProductService()

	product, err := svc.Create("Monitor", "27-inch display", 1500000)
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)
	require.True(t, product.IsActive)

	got, err := svc.Get(product.ID)
	require.NoError(t, err)
	require.Equal(t, product.Name, got.Name)

	_, err = svc.Get("missing")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductServiceCreateValidation(t *testing.T) {
	svc := newProductService()

	_, err := svc.Create("", "no name", 100)
	require.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.Create("Monitor", "bad price", 0)
	require.ErrorIs(t, err, domain.ErrPriceInvalid)
}

func TestProductServicePriceOperations(t *testing.T) {
	svc := newProductService()

	product, err := svc.Create("Monitor", "27-inch display", 1000000)
	require.NoError(t, err)

	product, err = svc.ChangePrice(product.ID, 800000)
	require.NoError(t, err)
	require.Equal(t, int64(800000), product.PriceMinor)

	product, err = svc.ApplyDiscount(product.ID, 25)
	require.NoError(t, err)
	require.Equal(t, int64(600000), product.PriceMinor)

	// Неактивный товар цену не меняет.
	product, err = svc.Deactivate(product.ID)
	require.NoError(t, err)
	require.False(t, product.IsActive)

	_, err = svc.ChangePrice(product.ID, 500000)
	require.ErrorIs(t, err, domain.ErrProductInactive)

	product, err = svc.Activate(product.ID)
	require.NoError(t, err)
	require.True(t, product.IsActive)
}

func TestProductServiceDelete(t *testing.T) {
	svc := newProductService()

	product, err := svc.Create("Monitor", "27-inch display", 1000000)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(product.ID))
	_, err = svc.Get(product.ID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSupplierServiceLifecycle(t *testing.T) {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	svc := NewSupplierService(memory.NewSupplierRepository(), logger.WithField("component", "test"))

	supplier, err := svc.Create("Acme Ltd", "sales@acme.example", "+7 900 000-00-00")
	require.NoError(t, err)
	require.True(t, supplier.IsActive)

	supplier, err = svc.UpdateInfo(supplier.ID, "Acme Group", "info@acme.example", "+7 900 000-00-01")
	require.NoError(t, err)
	require.Equal(t, "Acme Group", supplier.CompanyName)

	supplier, err = svc.Deactivate(supplier.ID)
	require.NoError(t, err)
	require.False(t, supplier.IsActive)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.Delete(supplier.ID))
	_, err = svc.Get(supplier.ID)
	require.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
