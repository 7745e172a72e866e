package repository

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// GalleryRepository describes gallery persistence.
type GalleryRepository interface {
	Create(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error)
	GetActive(ctx context.Context, id int64) (*model.GalleryItem, error)
	ListActive(ctx context.Context, page model.Page) ([]model.GalleryItem, error)
	Deactivate(ctx context.Context, id int64) error
}
