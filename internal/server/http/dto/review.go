package dto

import "time"

// ReviewRequest describes review submission payload.
type ReviewRequest struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	ReservationID *int64 `json:"reservation_id"`
	OrderID       *int64 `json:"order_id"`
}

// ReviewResponse represents a review with its author name.
type ReviewResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	UserName      string    `json:"user_name"`
	ReservationID *int64    `json:"reservation_id"`
	OrderID       *int64    `json:"order_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
