package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// ErrMissingSecret indicates card intents cannot be created.
var ErrMissingSecret = errors.New("card client secret is not configured")

// StubGateway produces payment handles without calling a processor. Venmo
// links point at the configured pay page, card intents reuse a fixed client
// secret.
type StubGateway struct {
	venmoURL     *url.URL
	clientSecret string
	logger       *slog.Logger
}

// NewStubGateway validates the Venmo base URL and builds the gateway.
func NewStubGateway(venmoURL, clientSecret string, logger *slog.Logger) (*StubGateway, error) {
	parsed, err := url.Parse(venmoURL)
	if err != nil {
		return nil, fmt.Errorf("parse venmo url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("venmo url must be absolute")
	}
	return &StubGateway{venmoURL: parsed, clientSecret: clientSecret, logger: logger}, nil
}

// VenmoLink returns the pay page URL tagged with the order id and amount.
func (g *StubGateway) VenmoLink(ctx context.Context, order *model.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	link := *g.venmoURL
	query := link.Query()
	query.Set("order", strconv.FormatInt(order.ID, 10))
	query.Set("amount", order.TotalAmount.StringFixed(2))
	link.RawQuery = query.Encode()

	g.logger.Info("venmo link issued", slog.Int64("order_id", order.ID))
	return link.String(), nil
}

// CardIntent returns the client secret the frontend confirms the card with.
func (g *StubGateway) CardIntent(ctx context.Context, order *model.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.clientSecret == "" {
		return "", ErrMissingSecret
	}
	g.logger.Info("card intent issued", slog.Int64("order_id", order.ID))
	return g.clientSecret, nil
}
