package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
)

type galleryRepository struct {
	storage *Storage
}

const galleryColumns = `id, image_url, caption, is_active, created_at`

func scanGalleryItem(row pgx.Row) (*model.GalleryItem, error) {
	var g model.GalleryItem
	if err := row.Scan(&g.ID, &g.ImageURL, &g.Caption, &g.IsActive, &g.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &g, nil
}

func (r *galleryRepository) Create(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error) {
	const query = `INSERT INTO gallery (image_url, caption) VALUES ($1, $2) RETURNING ` + galleryColumns
	return scanGalleryItem(r.storage.pool.QueryRow(ctx, query, imageURL, caption))
}

func (r *galleryRepository) GetActive(ctx context.Context, id int64) (*model.GalleryItem, error) {
	const query = `SELECT ` + galleryColumns + ` FROM gallery WHERE id=$1 AND is_active`
	return scanGalleryItem(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *galleryRepository) ListActive(ctx context.Context, page model.Page) ([]model.GalleryItem, error) {
	const query = `SELECT ` + galleryColumns + ` FROM gallery WHERE is_active ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.GalleryItem{}
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *galleryRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE gallery SET is_active=FALSE WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
