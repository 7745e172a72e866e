package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/reservashop/internal/adapter/payment"
	"github.com/polkiloo/reservashop/internal/app"
	"github.com/polkiloo/reservashop/internal/config"
	"github.com/polkiloo/reservashop/internal/logger"
	"github.com/polkiloo/reservashop/internal/pkg/auth"
	"github.com/polkiloo/reservashop/internal/server/http/router"
	"github.com/polkiloo/reservashop/internal/storage/postgres"
	"github.com/polkiloo/reservashop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
