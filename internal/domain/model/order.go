package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCanceled
}

// PaymentMethod is the settlement channel chosen for an order.
type PaymentMethod string

const (
	PaymentMethodUnset PaymentMethod = ""
	PaymentMethodCard  PaymentMethod = "CARD"
	PaymentMethodVenmo PaymentMethod = "VENMO"
	PaymentMethodCash  PaymentMethod = "CASH"
)

// ParsePaymentMethod maps user input onto a known method, ignoring case and
// surrounding whitespace. The empty string yields PaymentMethodUnset.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch m := PaymentMethod(strings.ToUpper(strings.TrimSpace(raw))); m {
	case PaymentMethodUnset, PaymentMethodCard, PaymentMethodVenmo, PaymentMethodCash:
		return m, true
	default:
		return PaymentMethodUnset, false
	}
}

// PaymentStatus tracks settlement independently from order status.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// LineItem is a requested product and quantity submitted at order creation.
type LineItem struct {
	ProductID int64
	Quantity  int
}

// Order describes a shop order placed by a user. TotalAmount is fixed at
// creation and never recomputed.
type Order struct {
	ID            int64
	UserID        int64
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	Items         []OrderItem
}

// OrderItem is a single order line with the unit price snapshotted at creation.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns unit price multiplied by quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PaymentTransition is the state an order moves to when a payment is processed.
type PaymentTransition struct {
	Status        OrderStatus
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
}

// PaymentResult is returned to the caller after a payment attempt.
type PaymentResult struct {
	Message      string
	OrderID      int64
	Status       OrderStatus
	PaymentURL   string
	ClientSecret string
}
