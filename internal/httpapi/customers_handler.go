package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/customer"
)

// CustomersHandler обслуживает REST-операции над клиентами.
type CustomersHandler struct {
	customers *customer.Service
	logger    *log.Entry
}

// NewCustomersHandler создаёт handler клиентов.
func NewCustomersHandler(customers *customer.Service, logger *log.Entry) *CustomersHandler {
	if logger == nil {
		logger = log.WithField("component", "customers-handler")
	}
	return &CustomersHandler{customers: customers, logger: logger}
}

// Register вешает маршруты клиентов на router. customerOrders, если задан,
// публикует заказы клиента внутри того же поддерева.
func (h *CustomersHandler) Register(r chi.Router, customerOrders http.HandlerFunc) {
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.updateInfo)
			r.Delete("/", h.remove)
			r.Post("/activate", h.activate)
			r.Post("/deactivate", h.deactivate)
			if customerOrders != nil {
				r.Get("/orders", customerOrders)
			}
		})
	})
}

type customerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (h *CustomersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.customers.Create(req.FirstName, req.LastName, req.Email)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerView(created))
}

func (h *CustomersHandler) get(w http.ResponseWriter, r *http.Request) {
	found, err := h.customers.Get(chi.URLParam(r, "customerID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerView(found))
}

func (h *CustomersHandler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	views := make([]customerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, toCustomerView(c))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *CustomersHandler) updateInfo(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.customers.UpdateInfo(chi.URLParam(r, "customerID"), req.FirstName, req.LastName, req.Email)
	h.respond(w, c, err)
}

func (h *CustomersHandler) activate(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.Activate(chi.URLParam(r, "customerID"))
	h.respond(w, c, err)
}

func (h *CustomersHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.Deactivate(chi.URLParam(r, "customerID"))
	h.respond(w, c, err)
}

func (h *CustomersHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.Delete(chi.URLParam(r, "customerID")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomersHandler) respond(w http.ResponseWriter, c domain.Customer, err error) {
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerView(c))
}
