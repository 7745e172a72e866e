package usecase

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
)

// AdminUseCase serves aggregate views for administrators.
type AdminUseCase struct {
	stats repository.StatsRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(stats repository.StatsRepository) *AdminUseCase {
	return &AdminUseCase{stats: stats}
}

// Dashboard returns counters across reservations, orders, users and reviews.
func (u *AdminUseCase) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return u.stats.Dashboard(ctx)
}
