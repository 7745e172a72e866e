package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/reservashop/internal/config"
	"github.com/polkiloo/reservashop/internal/usecase"
)

// Module exposes the payment gateway implementation to fx graph.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGateway(p gatewayParams) (usecase.PaymentGateway, error) {
	return NewStubGateway(p.Config.VenmoPayURL, p.Config.CardClientSecret, p.Logger)
}
