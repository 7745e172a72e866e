package test

import (
	"context"
	"fmt"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// PaymentGatewayStub returns deterministic payment artifacts.
type PaymentGatewayStub struct {
	VenmoFn func(context.Context, *model.Order) (string, error)
	CardFn  func(context.Context, *model.Order) (string, error)
}

// VenmoLink returns a link referencing the order id.
func (s PaymentGatewayStub) VenmoLink(ctx context.Context, order *model.Order) (string, error) {
	if s.VenmoFn != nil {
		return s.VenmoFn(ctx, order)
	}
	return fmt.Sprintf("https://pay.test/venmo?order=%d", order.ID), nil
}

// CardIntent returns a fixed client secret.
func (s PaymentGatewayStub) CardIntent(ctx context.Context, order *model.Order) (string, error) {
	if s.CardFn != nil {
		return s.CardFn(ctx, order)
	}
	return "secret-test", nil
}
