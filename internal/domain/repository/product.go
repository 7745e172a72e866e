package repository

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// ProductRepository describes catalog persistence.
type ProductRepository interface {
	GetActive(ctx context.Context, id int64) (*model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)
	Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error)
	Deactivate(ctx context.Context, id int64) error
}
