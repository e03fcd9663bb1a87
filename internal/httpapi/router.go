package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/health"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/catalog"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/customer"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/order"
)

const requestTimeout = 15 * time.Second

// Services — прикладные сервисы, которые публикует HTTP API.
type Services struct {
	Orders    *order.Coordinator
	Products  *catalog.ProductService
	Suppliers *catalog.SupplierService
	Customers *customer.Service
}

// NewRouter собирает chi-router со стандартным middleware-стеком,
// health-пробами и REST-маршрутами всех сервисов.
func NewRouter(services Services, healthHandler *health.Handler, logger *log.Entry) *chi.Mux {
	if logger == nil {
		logger = log.WithField("component", "httpapi")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/livez", health.Liveness)
	if healthHandler != nil {
		r.Get("/readyz", healthHandler.Readiness)
		r.Get("/healthz", healthHandler.Readiness)
	} else {
		r.Get("/healthz", health.Liveness)
	}

	var customerOrders http.HandlerFunc
	if services.Orders != nil {
		ordersHandler := NewOrdersHandler(services.Orders, logger.WithField("handler", "orders"))
		ordersHandler.Register(r)
		customerOrders = ordersHandler.CustomerOrders
	}
	if services.Products != nil {
		NewProductsHandler(services.Products, logger.WithField("handler", "products")).Register(r)
	}
	if services.Suppliers != nil {
		NewSuppliersHandler(services.Suppliers, logger.WithField("handler", "suppliers")).Register(r)
	}
	if services.Customers != nil {
		NewCustomersHandler(services.Customers, logger.WithField("handler", "customers")).Register(r, customerOrders)
	}

	return r
}
