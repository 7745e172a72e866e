package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Inactive products are hidden and cannot be ordered.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
}

// ProductInput holds editable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}
