package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

const productColumns = `id, name, description, price, is_active, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.IsActive, &p.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepository) GetActive(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1 AND is_active`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, price) VALUES ($1, $2, $3)
                   RETURNING ` + productColumns
	return scanProduct(r.storage.pool.QueryRow(ctx, query, input.Name, input.Description, input.Price))
}

func (r *productRepository) Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	const query = `UPDATE products SET name=$1, description=$2, price=$3 WHERE id=$4
                   RETURNING ` + productColumns
	return scanProduct(r.storage.pool.QueryRow(ctx, query, input.Name, input.Description, input.Price, id))
}

func (r *productRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE products SET is_active=FALSE WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
