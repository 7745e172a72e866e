package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
)

// CatalogUseCase exposes the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// ListActive returns orderable products, newest first.
func (u *CatalogUseCase) ListActive(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// GetActive returns a single orderable product.
func (u *CatalogUseCase) GetActive(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetActive(ctx, id)
}

// Create adds a product to the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	input, err := normalizeProduct(input)
	if err != nil {
		return nil, err
	}
	return u.products.Create(ctx, input)
}

// Update replaces editable product fields.
func (u *CatalogUseCase) Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	input, err := normalizeProduct(input)
	if err != nil {
		return nil, err
	}
	return u.products.Update(ctx, id, input)
}

// Deactivate hides the product. Existing orders keep their snapshot prices.
func (u *CatalogUseCase) Deactivate(ctx context.Context, id int64) error {
	return u.products.Deactivate(ctx, id)
}

func normalizeProduct(input model.ProductInput) (model.ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" {
		return input, fmt.Errorf("product name is required: %w", domainErrors.ErrInvalidRequest)
	}
	if input.Price.IsNegative() {
		return input, fmt.Errorf("product price must not be negative: %w", domainErrors.ErrInvalidRequest)
	}
	input.Price = input.Price.Round(2)
	return input, nil
}
