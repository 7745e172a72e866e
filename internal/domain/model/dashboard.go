package model

import "github.com/shopspring/decimal"

// Dashboard aggregates statistics for administrators.
type Dashboard struct {
	Reservations struct {
		Total  int64
		Booked int64
	}
	Orders struct {
		Total   int64
		Pending int64
		Revenue decimal.Decimal
	}
	Users struct {
		Total int64
	}
	Reviews struct {
		Total         int64
		AverageRating float64
	}
}

// Page bounds list queries.
type Page struct {
	Skip  int
	Limit int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// NewPage normalizes skip and limit into allowed bounds.
func NewPage(skip, limit int) Page {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Page{Skip: skip, Limit: limit}
}
