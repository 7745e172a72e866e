package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
)

// ReservationUseCase manages user time-slot bookings.
type ReservationUseCase struct {
	reservations repository.ReservationRepository
}

// NewReservationUseCase constructs ReservationUseCase.
func NewReservationUseCase(reservations repository.ReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{reservations: reservations}
}

// Create books a slot for the user.
func (u *ReservationUseCase) Create(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error) {
	if reservedAt.IsZero() {
		return nil, fmt.Errorf("reserved_at is required: %w", domainErrors.ErrInvalidRequest)
	}
	return u.reservations.Create(ctx, userID, reservedAt.UTC(), strings.TrimSpace(memo))
}

// List returns the user's reservations ordered by slot time, latest first.
func (u *ReservationUseCase) List(ctx context.Context, userID int64) ([]model.Reservation, error) {
	return u.reservations.ListByUser(ctx, userID)
}

// Get returns a reservation owned by the user.
func (u *ReservationUseCase) Get(ctx context.Context, userID, id int64) (*model.Reservation, error) {
	return u.reservations.GetForUser(ctx, userID, id)
}

// Update applies the non-nil patch fields.
func (u *ReservationUseCase) Update(ctx context.Context, userID, id int64, patch model.ReservationPatch) (*model.Reservation, error) {
	reservation, err := u.reservations.GetForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.ReservedAt != nil && !patch.ReservedAt.IsZero() {
		reservation.ReservedAt = patch.ReservedAt.UTC()
	}
	if patch.Memo != nil {
		reservation.Memo = strings.TrimSpace(*patch.Memo)
	}
	if patch.Status != nil {
		if _, ok := model.ParseReservationStatus(string(*patch.Status)); !ok {
			return nil, fmt.Errorf("unknown reservation status %q: %w", *patch.Status, domainErrors.ErrInvalidRequest)
		}
		reservation.Status = *patch.Status
	}

	return u.reservations.Update(ctx, *reservation)
}

// Cancel marks the reservation as canceled.
func (u *ReservationUseCase) Cancel(ctx context.Context, userID, id int64) error {
	status := model.ReservationStatusCanceled
	_, err := u.Update(ctx, userID, id, model.ReservationPatch{Status: &status})
	return err
}

// ListAll returns a page of every reservation for administrators.
func (u *ReservationUseCase) ListAll(ctx context.Context, page model.Page) ([]model.Reservation, error) {
	return u.reservations.List(ctx, page)
}
