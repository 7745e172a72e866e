package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
)

// ReviewInput carries a new review.
type ReviewInput struct {
	Rating        int
	Comment       string
	ReservationID *int64
	OrderID       *int64
}

// ReviewUseCase manages customer reviews.
type ReviewUseCase struct {
	reviews      repository.ReviewRepository
	reservations repository.ReservationRepository
	orders       repository.OrderRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, reservations repository.ReservationRepository, orders repository.OrderRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, reservations: reservations, orders: orders}
}

// Create stores a review. Referenced reservations and orders must belong to the author.
func (u *ReviewUseCase) Create(ctx context.Context, userID int64, in ReviewInput) (*model.Review, error) {
	if in.Rating < model.MinRating || in.Rating > model.MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d: %w", model.MinRating, model.MaxRating, domainErrors.ErrInvalidRequest)
	}

	if in.ReservationID != nil {
		if _, err := u.reservations.GetForUser(ctx, userID, *in.ReservationID); err != nil {
			return nil, fmt.Errorf("reservation %d: %w", *in.ReservationID, err)
		}
	}

	if in.OrderID != nil {
		if _, err := u.orders.GetForUser(ctx, userID, *in.OrderID); err != nil {
			return nil, fmt.Errorf("order %d: %w", *in.OrderID, err)
		}
	}

	return u.reviews.Create(ctx, model.Review{
		UserID:        userID,
		ReservationID: in.ReservationID,
		OrderID:       in.OrderID,
		Rating:        in.Rating,
		Comment:       strings.TrimSpace(in.Comment),
	})
}

// List returns reviews newest first with author names.
func (u *ReviewUseCase) List(ctx context.Context, page model.Page) ([]model.Review, error) {
	return u.reviews.List(ctx, page)
}

// Get returns a single review.
func (u *ReviewUseCase) Get(ctx context.Context, id int64) (*model.Review, error) {
	return u.reviews.GetByID(ctx, id)
}
