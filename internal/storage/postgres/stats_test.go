package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
)

func TestStatsRepositoryDashboard(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &statsRepository{storage: storage}

	columns := []string{"reservations", "booked", "orders", "pending", "revenue", "users", "reviews", "avg"}
	mock.ExpectQuery("FROM reservations").WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow(int64(12), int64(4), int64(9), int64(2), "13500.00", int64(30), int64(5), 4.2))

	d, err := repo.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Reservations.Total != 12 || d.Reservations.Booked != 4 || d.Orders.Pending != 2 || d.Users.Total != 30 {
		t.Fatalf("unexpected counters: %+v", d)
	}
	if !d.Orders.Revenue.Equal(decimal.NewFromInt(13500)) || d.Reviews.AverageRating != 4.2 {
		t.Fatalf("unexpected aggregates: %+v", d)
	}

	mock.ExpectQuery("FROM reservations").WillReturnError(errors.New("query"))
	if _, err := repo.Dashboard(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
