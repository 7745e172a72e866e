package repository

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// StatsRepository computes aggregate figures for the admin dashboard.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}
