package model

import "time"

// ReservationStatus describes reservation lifecycle.
type ReservationStatus string

const (
	ReservationStatusBooked   ReservationStatus = "BOOKED"
	ReservationStatusCanceled ReservationStatus = "CANCELED"
	ReservationStatusDone     ReservationStatus = "DONE"
)

// ParseReservationStatus validates a status supplied by a client.
func ParseReservationStatus(raw string) (ReservationStatus, bool) {
	switch s := ReservationStatus(raw); s {
	case ReservationStatusBooked, ReservationStatusCanceled, ReservationStatusDone:
		return s, true
	default:
		return "", false
	}
}

// Reservation is a time slot booked by a user.
type Reservation struct {
	ID         int64
	UserID     int64
	ReservedAt time.Time
	Status     ReservationStatus
	Memo       string
	CreatedAt  time.Time
}

// ReservationPatch lists the fields a user may change. Nil fields are kept.
type ReservationPatch struct {
	ReservedAt *time.Time
	Memo       *string
	Status     *ReservationStatus
}
