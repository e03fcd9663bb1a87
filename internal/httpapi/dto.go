package httpapi

import (
	"time"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// orderView — JSON-представление заказа вместе с позициями и суммой.
type orderView struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Status     string          `json:"status"`
	Items      []orderItemView `json:"items"`
	TotalMinor int64           `json:"total_minor"`
	Version    int64           `json:"version"`
	OrderDate  time.Time       `json:"order_date"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type orderItemView struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Quantity       int32     `json:"quantity"`
	UnitPriceMinor int64     `json:"unit_price_minor"`
	TotalMinor     int64     `json:"total_minor"`
	CreatedAt      time.Time `json:"created_at"`
}

type timelineEventView struct {
	Type       string    `json:"type"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type productView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceMinor  int64     `json:"price_minor"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type customerView struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type supplierView struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toOrderView(order domain.Order) orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ID:             item.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
			TotalMinor:     item.Total(),
			CreatedAt:      item.CreatedAt,
		})
	}
	return orderView{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Status:     string(order.Status),
		Items:      items,
		TotalMinor: order.Total(),
		Version:    order.Version,
		OrderDate:  order.OrderDate,
		UpdatedAt:  order.UpdatedAt,
	}
}

func toOrderViews(orders []domain.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}
	return views
}

func toTimelineViews(events []domain.TimelineEvent) []timelineEventView {
	views := make([]timelineEventView, 0, len(events))
	for _, event := range events {
		views = append(views, timelineEventView{
			Type:       event.Type,
			Detail:     event.Detail,
			OccurredAt: event.Occurred,
		})
	}
	return views
}

func toProductView(product domain.Product) productView {
	return productView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		PriceMinor:  product.PriceMinor,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toCustomerView(customer domain.Customer) customerView {
	return customerView{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		IsActive:  customer.IsActive,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

func toSupplierView(supplier domain.Supplier) supplierView {
	return supplierView{
		ID:           supplier.ID,
		CompanyName:  supplier.CompanyName,
		ContactEmail: supplier.ContactEmail,
		Phone:        supplier.Phone,
		IsActive:     supplier.IsActive,
		CreatedAt:    supplier.CreatedAt,
		UpdatedAt:    supplier.UpdatedAt,
	}
}
