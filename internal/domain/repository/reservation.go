package repository

import (
	"context"
	"time"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// ReservationRepository describes reservation persistence.
type ReservationRepository interface {
	Create(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error)
	GetForUser(ctx context.Context, userID, id int64) (*model.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Reservation, error)
	List(ctx context.Context, page model.Page) ([]model.Reservation, error)
	Update(ctx context.Context, reservation model.Reservation) (*model.Reservation, error)
}
