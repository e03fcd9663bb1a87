package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/catalog"
)

// ProductsHandler обслуживает REST-операции над каталогом товаров.
type ProductsHandler struct {
	products *catalog.ProductService
	logger   *log.Entry
}

// NewProductsHandler создаёт handler каталога.
func NewProductsHandler(products *catalog.ProductService, logger *log.Entry) *ProductsHandler {
	if logger == nil {
		logger = log.WithField("component", "products-handler")
	}
	return &ProductsHandler{products: products, logger: logger}
}

// Register вешает маршруты каталога на router.
func (h *ProductsHandler) Register(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.updateInfo)
			r.Delete("/", h.remove)
			r.Put("/price", h.changePrice)
			r.Post("/discount", h.applyDiscount)
			r.Post("/activate", h.activate)
			r.Post("/deactivate", h.deactivate)
		})
	})
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceMinor  int64  `json:"price_minor"`
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.products.Create(req.Name, req.Description, req.PriceMinor)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductView(created))
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	found, err := h.products.Get(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(found))
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}
	writeJSON(w, http.StatusOK, views)
}

type updateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ProductsHandler) updateInfo(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.products.UpdateInfo(chi.URLParam(r, "productID"), req.Name, req.Description)
	h.respond(w, p, err)
}

type changePriceRequest struct {
	PriceMinor int64 `json:"price_minor"`
}

func (h *ProductsHandler) changePrice(w http.ResponseWriter, r *http.Request) {
	var req changePriceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.products.ChangePrice(chi.URLParam(r, "productID"), req.PriceMinor)
	h.respond(w, p, err)
}

type applyDiscountRequest struct {
	Percentage int64 `json:"percentage"`
}

func (h *ProductsHandler) applyDiscount(w http.ResponseWriter, r *http.Request) {
	var req applyDiscountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.products.ApplyDiscount(chi.URLParam(r, "productID"), req.Percentage)
	h.respond(w, p, err)
}

func (h *ProductsHandler) activate(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.Activate(chi.URLParam(r, "productID"))
	h.respond(w, p, err)
}

func (h *ProductsHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.Deactivate(chi.URLParam(r, "productID"))
	h.respond(w, p, err)
}

func (h *ProductsHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(chi.URLParam(r, "productID")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductsHandler) respond(w http.ResponseWriter, product domain.Product, err error) {
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}
