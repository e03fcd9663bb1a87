package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/order"
)

// OrdersHandler обслуживает REST-операции над заказами.
type OrdersHandler struct {
	coordinator *order.Coordinator
	logger      *log.Entry
}

// NewOrdersHandler создаёт handler заказов.
func NewOrdersHandler(coordinator *order.Coordinator, logger *log.Entry) *OrdersHandler {
	if logger == nil {
		logger = log.WithField("component", "orders-handler")
	}
	return &OrdersHandler{coordinator: coordinator, logger: logger}
}

// Register вешает маршруты заказов на router.
func (h *OrdersHandler) Register(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Route("/{orderID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Delete("/", h.remove)
			r.Get("/timeline", h.timeline)
			r.Post("/items", h.addItem)
			r.Put("/items/{itemID}", h.updateItem)
			r.Delete("/items/{itemID}", h.removeItem)
			r.Post("/confirm", h.confirm)
			r.Post("/ship", h.ship)
			r.Post("/deliver", h.deliver)
			r.Post("/cancel", h.cancel)
		})
	})
}

type createOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.coordinator.Create(req.CustomerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderView(created))
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	found, err := h.coordinator.Get(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(found))
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.coordinator.List()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderViews(orders))
}

// CustomerOrders отдаёт заказы клиента; маршрут живёт в поддереве /customers.
func (h *OrdersHandler) CustomerOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	orders, err := h.coordinator.ListByCustomer(chi.URLParam(r, "customerID"), limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderViews(orders))
}

func (h *OrdersHandler) timeline(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if _, err := h.coordinator.Get(orderID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	events, err := h.coordinator.Timeline(orderID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimelineViews(events))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

func (h *OrdersHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.coordinator.AddItem(chi.URLParam(r, "orderID"), req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(updated))
}

type updateItemRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *OrdersHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.coordinator.UpdateItemQuantity(chi.URLParam(r, "orderID"), chi.URLParam(r, "itemID"), req.Quantity)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(updated))
}

func (h *OrdersHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	updated, err := h.coordinator.RemoveItem(chi.URLParam(r, "orderID"), chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(updated))
}

func (h *OrdersHandler) confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.coordinator.Confirm)
}

func (h *OrdersHandler) ship(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.coordinator.Ship)
}

func (h *OrdersHandler) deliver(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.coordinator.Deliver)
}

func (h *OrdersHandler) cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.coordinator.Cancel)
}

func (h *OrdersHandler) transition(w http.ResponseWriter, r *http.Request, op func(string) (domain.Order, error)) {
	updated, err := op(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(updated))
}

func (h *OrdersHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.coordinator.Delete(chi.URLParam(r, "orderID")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
