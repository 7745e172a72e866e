package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left by a user, optionally tied to a reservation or order.
type Review struct {
	ID            int64
	UserID        int64
	UserName      string
	ReservationID *int64
	OrderID       *int64
	Rating        int
	Comment       string
	CreatedAt     time.Time
}
