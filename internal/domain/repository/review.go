package repository

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// ReviewRepository describes review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review model.Review) (*model.Review, error)
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	List(ctx context.Context, page model.Page) ([]model.Review, error)
}
