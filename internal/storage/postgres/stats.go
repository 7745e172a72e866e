package postgres

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

type statsRepository struct {
	storage *Storage
}

func (r *statsRepository) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	const query = `SELECT
            (SELECT COUNT(*) FROM reservations),
            (SELECT COUNT(*) FROM reservations WHERE status='BOOKED'),
            (SELECT COUNT(*) FROM orders),
            (SELECT COUNT(*) FROM orders WHERE status='PENDING'),
            (SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status='PAID'),
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM reviews),
            (SELECT COALESCE(AVG(rating), 0)::float8 FROM reviews)`

	var d model.Dashboard
	err := r.storage.pool.QueryRow(ctx, query).Scan(
		&d.Reservations.Total,
		&d.Reservations.Booked,
		&d.Orders.Total,
		&d.Orders.Pending,
		&d.Orders.Revenue,
		&d.Users.Total,
		&d.Reviews.Total,
		&d.Reviews.AverageRating,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
