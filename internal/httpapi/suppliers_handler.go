package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/catalog"
)

// SuppliersHandler обслуживает REST-операции над поставщиками.
type SuppliersHandler struct {
	suppliers *catalog.SupplierService
	logger    *log.Entry
}

// NewSuppliersHandler создаёт handler поставщиков.
func NewSuppliersHandler(suppliers *catalog.SupplierService, logger *log.Entry) *SuppliersHandler {
	if logger == nil {
		logger = log.WithField("component", "suppliers-handler")
	}
	return &SuppliersHandler{suppliers: suppliers, logger: logger}
}

// Register вешает маршруты поставщиков на router.
func (h *SuppliersHandler) Register(r chi.Router) {
	r.Route("/suppliers", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Route("/{supplierID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.updateInfo)
			r.Delete("/", h.remove)
			r.Post("/activate", h.activate)
			r.Post("/deactivate", h.deactivate)
		})
	})
}

type supplierRequest struct {
	CompanyName  string `json:"company_name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

func (h *SuppliersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.suppliers.Create(req.CompanyName, req.ContactEmail, req.Phone)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSupplierView(created))
}

func (h *SuppliersHandler) get(w http.ResponseWriter, r *http.Request) {
	found, err := h.suppliers.Get(chi.URLParam(r, "supplierID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toSupplierView(found))
}

func (h *SuppliersHandler) list(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.List()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	views := make([]supplierView, 0, len(suppliers))
	for _, s := range suppliers {
		views = append(views, toSupplierView(s))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *SuppliersHandler) updateInfo(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.suppliers.UpdateInfo(chi.URLParam(r, "supplierID"), req.CompanyName, req.ContactEmail, req.Phone)
	h.respond(w, s, err)
}

func (h *SuppliersHandler) activate(w http.ResponseWriter, r *http.Request) {
	s, err := h.suppliers.Activate(chi.URLParam(r, "supplierID"))
	h.respond(w, s, err)
}

func (h *SuppliersHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	s, err := h.suppliers.Deactivate(chi.URLParam(r, "supplierID"))
	h.respond(w, s, err)
}

func (h *SuppliersHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.suppliers.Delete(chi.URLParam(r, "supplierID")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SuppliersHandler) respond(w http.ResponseWriter, s domain.Supplier, err error) {
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toSupplierView(s))
}
