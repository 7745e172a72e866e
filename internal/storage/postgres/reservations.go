package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

type reservationRepository struct {
	storage *Storage
}

const reservationColumns = `id, user_id, reserved_at, status, memo, created_at`

func scanReservation(row pgx.Row) (*model.Reservation, error) {
	var r model.Reservation
	if err := row.Scan(&r.ID, &r.UserID, &r.ReservedAt, &r.Status, &r.Memo, &r.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &r, nil
}

func (r *reservationRepository) Create(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error) {
	const query = `INSERT INTO reservations (user_id, reserved_at, status, memo) VALUES ($1, $2, $3, $4)
                   RETURNING ` + reservationColumns
	return scanReservation(r.storage.pool.QueryRow(ctx, query, userID, reservedAt, model.ReservationStatusBooked, memo))
}

func (r *reservationRepository) GetForUser(ctx context.Context, userID, id int64) (*model.Reservation, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE id=$1 AND user_id=$2`
	return scanReservation(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Reservation, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id=$1 ORDER BY reserved_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *reservationRepository) List(ctx context.Context, page model.Page) ([]model.Reservation, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, page.Limit, page.Skip)
}

func (r *reservationRepository) Update(ctx context.Context, reservation model.Reservation) (*model.Reservation, error) {
	const query = `UPDATE reservations SET reserved_at=$1, memo=$2, status=$3 WHERE id=$4 AND user_id=$5
                   RETURNING ` + reservationColumns
	return scanReservation(r.storage.pool.QueryRow(ctx, query,
		reservation.ReservedAt, reservation.Memo, reservation.Status, reservation.ID, reservation.UserID))
}

func (r *reservationRepository) list(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
