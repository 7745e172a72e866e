package dto

import (
	"time"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// LineItemRequest is a requested product line. Missing quantity means one.
type LineItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

// CreateOrderRequest describes order placement payload.
type CreateOrderRequest struct {
	Items         []LineItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
}

// LineItems converts request lines into domain line items.
func (r CreateOrderRequest) LineItems() []model.LineItem {
	items := make([]model.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		items = append(items, model.LineItem{ProductID: item.ProductID, Quantity: quantity})
	}
	return items
}

// PaymentRequest selects the settlement channel.
type PaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// OrderItemResponse represents a stored order line.
type OrderItemResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// OrderResponse represents an order with its items.
type OrderResponse struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"user_id"`
	TotalAmount   string              `json:"total_amount"`
	Status        string              `json:"status"`
	PaymentMethod *string             `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}

// PaymentResponse reports the outcome of a payment request.
type PaymentResponse struct {
	Message      string `json:"message"`
	OrderID      int64  `json:"order_id"`
	Status       string `json:"status"`
	PaymentURL   string `json:"payment_url,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}
