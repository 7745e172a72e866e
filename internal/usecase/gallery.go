package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
)

// GalleryUseCase manages published photos.
type GalleryUseCase struct {
	gallery repository.GalleryRepository
}

// NewGalleryUseCase constructs GalleryUseCase.
func NewGalleryUseCase(gallery repository.GalleryRepository) *GalleryUseCase {
	return &GalleryUseCase{gallery: gallery}
}

func (u *GalleryUseCase) List(ctx context.Context, page model.Page) ([]model.GalleryItem, error) {
	return u.gallery.ListActive(ctx, page)
}

func (u *GalleryUseCase) Get(ctx context.Context, id int64) (*model.GalleryItem, error) {
	return u.gallery.GetActive(ctx, id)
}

// Create publishes an image. The URL must be absolute http or https.
func (u *GalleryUseCase) Create(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error) {
	imageURL = strings.TrimSpace(imageURL)
	if !validImageURL(imageURL) {
		return nil, fmt.Errorf("image_url must be an absolute http(s) URL: %w", domainErrors.ErrInvalidRequest)
	}
	return u.gallery.Create(ctx, imageURL, strings.TrimSpace(caption))
}

// Delete hides the item from public listings.
func (u *GalleryUseCase) Delete(ctx context.Context, id int64) error {
	return u.gallery.Deactivate(ctx, id)
}
