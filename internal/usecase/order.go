package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
)

// PaymentGateway hands out external payment artifacts for an order.
type PaymentGateway interface {
	VenmoLink(ctx context.Context, order *model.Order) (string, error)
	CardIntent(ctx context.Context, order *model.Order) (string, error)
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	gateway  PaymentGateway
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, gateway PaymentGateway) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, gateway: gateway}
}

// Create prices the requested items against the active catalog and stores a
// pending order. Items with a non-positive product id or quantity are skipped.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, items []model.LineItem, paymentMethod string) (*model.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order has no items: %w", domainErrors.ErrInvalidRequest)
	}

	method, ok := model.ParsePaymentMethod(paymentMethod)
	if !ok {
		return nil, fmt.Errorf("unsupported payment method: %w", domainErrors.ErrInvalidRequest)
	}

	order := model.Order{
		UserID:        userID,
		Status:        model.OrderStatusPending,
		PaymentMethod: method,
		PaymentStatus: model.PaymentStatusPending,
		TotalAmount:   decimal.Zero,
	}

	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity < 1 {
			continue
		}

		product, err := u.products.GetActive(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}

		line := model.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		}
		order.Items = append(order.Items, line)
		order.TotalAmount = order.TotalAmount.Add(line.Subtotal())
	}

	if order.TotalAmount.IsZero() {
		return nil, fmt.Errorf("empty total: %w", domainErrors.ErrInvalidRequest)
	}

	return u.orders.Create(ctx, order)
}

// ListByUser returns user orders newest first with their items.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Get returns the order when it belongs to the user.
func (u *OrderUseCase) Get(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return u.orders.GetForUser(ctx, userID, orderID)
}

// ProcessPayment moves a pending order forward according to the chosen method.
// Cash settles immediately; Venmo and card stay pending and return the
// artifact the client needs to finish payment.
func (u *OrderUseCase) ProcessPayment(ctx context.Context, userID, orderID int64, method string) (*model.PaymentResult, error) {
	order, err := u.orders.GetForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != model.OrderStatusPending {
		return nil, fmt.Errorf("order already processed: %w", domainErrors.ErrInvalidState)
	}

	parsed, ok := model.ParsePaymentMethod(method)
	if !ok || parsed == model.PaymentMethodUnset {
		return nil, fmt.Errorf("unsupported payment method: %w", domainErrors.ErrInvalidRequest)
	}

	result := &model.PaymentResult{OrderID: order.ID}
	transition := model.PaymentTransition{
		Status:        model.OrderStatusPending,
		PaymentMethod: parsed,
		PaymentStatus: model.PaymentStatusPending,
	}

	switch parsed {
	case model.PaymentMethodCash:
		transition.Status = model.OrderStatusPaid
		transition.PaymentStatus = model.PaymentStatusCompleted
		result.Message = "Cash payment completed"
	case model.PaymentMethodVenmo:
		link, err := u.gateway.VenmoLink(ctx, order)
		if err != nil {
			return nil, fmt.Errorf("venmo link: %w", err)
		}
		result.PaymentURL = link
		result.Message = "Venmo payment link created"
	case model.PaymentMethodCard:
		secret, err := u.gateway.CardIntent(ctx, order)
		if err != nil {
			return nil, fmt.Errorf("card intent: %w", err)
		}
		result.ClientSecret = secret
		result.Message = "Card payment intent created"
	}

	applied, err := u.orders.TransitionPayment(ctx, userID, order.ID, transition)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("order already processed: %w", domainErrors.ErrInvalidState)
	}

	result.Status = transition.Status
	return result, nil
}

// List returns a page of all orders for administrators.
func (u *OrderUseCase) List(ctx context.Context, page model.Page) ([]model.Order, error) {
	return u.orders.List(ctx, page)
}
