package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

type reviewRepository struct {
	storage *Storage
}

const reviewSelect = `SELECT r.id, r.user_id, u.name, r.reservation_id, r.order_id, r.rating, r.comment, r.created_at
                      FROM reviews r JOIN users u ON u.id = r.user_id`

func scanReview(row pgx.Row) (*model.Review, error) {
	var r model.Review
	if err := row.Scan(&r.ID, &r.UserID, &r.UserName, &r.ReservationID, &r.OrderID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &r, nil
}

func (r *reviewRepository) Create(ctx context.Context, review model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (user_id, reservation_id, order_id, rating, comment)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, (SELECT name FROM users WHERE id = $1)`
	err := r.storage.pool.QueryRow(ctx, query, review.UserID, review.ReservationID, review.OrderID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt, &review.UserName)
	if err != nil {
		return nil, mapError(err)
	}
	return &review, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	const query = reviewSelect + ` WHERE r.id=$1`
	return scanReview(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *reviewRepository) List(ctx context.Context, page model.Page) ([]model.Review, error) {
	const query = reviewSelect + ` ORDER BY r.created_at DESC, r.id DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
