package repository

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create stores the order with its items atomically and returns the
	// persisted copy with identifiers filled in.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetForUser(ctx context.Context, userID, orderID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	List(ctx context.Context, page model.Page) ([]model.Order, error)
	// TransitionPayment applies the transition only while the order is
	// still pending. It reports false when no row qualified.
	TransitionPayment(ctx context.Context, userID, orderID int64, transition model.PaymentTransition) (bool, error)
}
