package dto

import "time"

// CreateReservationRequest describes booking payload.
type CreateReservationRequest struct {
	ReservedAt time.Time `json:"reserved_at"`
	Memo       string    `json:"memo"`
}

// UpdateReservationRequest carries optional reservation changes.
type UpdateReservationRequest struct {
	ReservedAt *time.Time `json:"reserved_at"`
	Memo       *string    `json:"memo"`
	Status     *string    `json:"status"`
}

// ReservationResponse represents a booked slot.
type ReservationResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ReservedAt time.Time `json:"reserved_at"`
	Status     string    `json:"status"`
	Memo       string    `json:"memo"`
	CreatedAt  time.Time `json:"created_at"`
}
