package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/metrics"
	pkgAuth "github.com/polkiloo/reservashop/internal/pkg/auth"
	testhelpers "github.com/polkiloo/reservashop/internal/test"
	"github.com/polkiloo/reservashop/internal/usecase"
)

type healthStub struct {
	err error
}

func (h healthStub) HealthCheck(context.Context) error { return h.err }

type facadeFixture struct {
	facade       *ShopFacade
	users        *testhelpers.UserRepositoryStub
	attempts     *testhelpers.LoginAttemptRepositoryStub
	orders       *testhelpers.OrderRepositoryStub
	reservations *testhelpers.ReservationRepositoryStub
	reviews      *testhelpers.ReviewRepositoryStub
	gallery      *testhelpers.GalleryRepositoryStub
}

func newFacade(health HealthChecker) facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	users := testhelpers.NewUserRepositoryStub()
	attempts := &testhelpers.LoginAttemptRepositoryStub{}
	products := testhelpers.NewProductRepositoryStub(
		model.Product{ID: 1, Name: "Massage", Price: decimal.RequireFromString("4500"), IsActive: true},
		model.Product{ID: 6, Name: "Facial", Price: decimal.RequireFromString("8000"), IsActive: true},
	)
	orders := &testhelpers.OrderRepositoryStub{}
	reservations := &testhelpers.ReservationRepositoryStub{}
	reviews := &testhelpers.ReviewRepositoryStub{}
	gallery := &testhelpers.GalleryRepositoryStub{}
	stats := &testhelpers.StatsRepositoryStub{Stats: &model.Dashboard{}}
	strategy := testhelpers.StrategyStub{
		TTLVal: 2 * time.Hour,
		ParseFn: func(token string) (int64, error) {
			if token != "token" {
				return 0, pkgAuth.ErrInvalidToken
			}
			return 1, nil
		},
	}
	gateway := testhelpers.PaymentGatewayStub{}

	facade := NewShopFacade(FacadeParams{
		Auth:         usecase.NewAuthUseCase(users, attempts, testhelpers.HasherStub{}, strategy, logger),
		Catalog:      usecase.NewCatalogUseCase(products),
		Orders:       usecase.NewOrderUseCase(orders, products, gateway),
		Reservations: usecase.NewReservationUseCase(reservations),
		Reviews:      usecase.NewReviewUseCase(reviews, reservations, orders),
		Gallery:      usecase.NewGalleryUseCase(gallery),
		Admin:        usecase.NewAdminUseCase(stats),
		Tokens:       strategy,
		Health:       health,
	})
	return facadeFixture{
		facade:       facade,
		users:        users,
		attempts:     attempts,
		orders:       orders,
		reservations: reservations,
		reviews:      reviews,
		gallery:      gallery,
	}
}

func TestShopFacadeAuth(t *testing.T) {
	fix := newFacade(healthStub{})
	ctx := context.Background()

	user, err := fix.facade.Register(ctx, "Ann@Example.com", "secret", "Ann", "555")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.Email != "ann@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	_, token, err := fix.facade.Login(ctx, "ann@example.com", "secret", model.ClientInfo{IPAddress: "10.0.0.1"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if len(fix.attempts.Attempts) != 1 || !fix.attempts.Attempts[0].Success {
		t.Fatalf("expected successful attempt recorded, got %+v", fix.attempts.Attempts)
	}

	authorized, err := fix.facade.Authorize(ctx, token)
	if err != nil {
		t.Fatalf("authorize returned error: %v", err)
	}
	if authorized.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authorized.ID)
	}

	if _, err := fix.facade.Authorize(ctx, "forged"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}

	fix.users.ByID[user.ID].IsActive = false
	if _, err := fix.facade.Authorize(ctx, token); !errors.Is(err, domainErrors.ErrInactiveUser) {
		t.Fatalf("expected inactive user, got %v", err)
	}

	if fix.facade.TokenTTL() != 2*time.Hour {
		t.Fatalf("unexpected token ttl %s", fix.facade.TokenTTL())
	}

	users, err := fix.facade.Users(ctx, model.NewPage(0, 10))
	if err != nil || len(users) != 1 {
		t.Fatalf("expected one user, got %v %v", users, err)
	}
}

func TestShopFacadeOrderFlow(t *testing.T) {
	fix := newFacade(healthStub{})
	ctx := context.Background()

	successBefore := testutil.ToFloat64(metrics.OrdersTotal.WithLabelValues(metrics.OutcomeSuccess))
	rejectedBefore := testutil.ToFloat64(metrics.OrdersTotal.WithLabelValues(metrics.OutcomeRejected))
	cashBefore := testutil.ToFloat64(metrics.PaymentsTotal.WithLabelValues("cash", metrics.OutcomeSuccess))
	replayBefore := testutil.ToFloat64(metrics.PaymentsTotal.WithLabelValues("cash", metrics.OutcomeRejected))

	order, err := fix.facade.CreateOrder(ctx, 1, []model.LineItem{{ProductID: 1, Quantity: 1}, {ProductID: 6, Quantity: 1}}, "")
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.TotalAmount.StringFixed(2) != "12500.00" || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order %+v", order)
	}

	if _, err := fix.facade.CreateOrder(ctx, 1, nil, ""); !errors.Is(err, domainErrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}

	result, err := fix.facade.PayOrder(ctx, 1, order.ID, "cash")
	if err != nil {
		t.Fatalf("pay returned error: %v", err)
	}
	if result.Status != model.OrderStatusPaid {
		t.Fatalf("expected PAID, got %s", result.Status)
	}

	if _, err := fix.facade.PayOrder(ctx, 1, order.ID, "cash"); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state on replay, got %v", err)
	}

	stored, err := fix.facade.Order(ctx, 1, order.ID)
	if err != nil {
		t.Fatalf("get order returned error: %v", err)
	}
	if stored.PaymentStatus != model.PaymentStatusCompleted {
		t.Fatalf("expected completed payment, got %s", stored.PaymentStatus)
	}
	if _, err := fix.facade.Order(ctx, 2, order.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign order to be hidden, got %v", err)
	}

	listed, err := fix.facade.Orders(ctx, 1)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v %v", listed, err)
	}
	all, err := fix.facade.AllOrders(ctx, model.NewPage(0, 10))
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one order in admin listing, got %v %v", all, err)
	}

	if got := testutil.ToFloat64(metrics.OrdersTotal.WithLabelValues(metrics.OutcomeSuccess)) - successBefore; got != 1 {
		t.Fatalf("expected one successful order observation, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.OrdersTotal.WithLabelValues(metrics.OutcomeRejected)) - rejectedBefore; got != 1 {
		t.Fatalf("expected one rejected order observation, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.PaymentsTotal.WithLabelValues("cash", metrics.OutcomeSuccess)) - cashBefore; got != 1 {
		t.Fatalf("expected one successful cash payment, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.PaymentsTotal.WithLabelValues("cash", metrics.OutcomeRejected)) - replayBefore; got != 1 {
		t.Fatalf("expected one rejected cash payment, got %v", got)
	}
}

func TestShopFacadeUnsupportedPaymentLabel(t *testing.T) {
	fix := newFacade(healthStub{})
	ctx := context.Background()

	order, err := fix.facade.CreateOrder(ctx, 1, []model.LineItem{{ProductID: 1, Quantity: 2}}, "card")
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}

	before := testutil.ToFloat64(metrics.PaymentsTotal.WithLabelValues("unsupported", metrics.OutcomeRejected))
	if _, err := fix.facade.PayOrder(ctx, 1, order.ID, "bogus"); !errors.Is(err, domainErrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	if got := testutil.ToFloat64(metrics.PaymentsTotal.WithLabelValues("unsupported", metrics.OutcomeRejected)) - before; got != 1 {
		t.Fatalf("expected unsupported payment observation, got %v", got)
	}

	stored, _ := fix.facade.Order(ctx, 1, order.ID)
	if stored.Status != model.OrderStatusPending || stored.PaymentMethod != model.PaymentMethodCard {
		t.Fatalf("expected order unchanged, got %+v", stored)
	}
}

func TestShopFacadeCatalog(t *testing.T) {
	fix := newFacade(healthStub{})
	ctx := context.Background()

	created, err := fix.facade.CreateProduct(ctx, model.ProductInput{Name: "Tea", Price: decimal.RequireFromString("3.499")})
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}
	if _, err := fix.facade.UpdateProduct(ctx, created.ID, model.ProductInput{Name: "Green tea", Price: decimal.RequireFromString("4")}); err != nil {
		t.Fatalf("update product returned error: %v", err)
	}
	if err := fix.facade.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("delete product returned error: %v", err)
	}

	products, err := fix.facade.Products(ctx)
	if err != nil {
		t.Fatalf("list products returned error: %v", err)
	}
	for _, p := range products {
		if p.ID == created.ID {
			t.Fatal("expected deactivated product to be hidden")
		}
	}
}

func TestShopFacadeReservationsAndReviews(t *testing.T) {
	fix := newFacade(healthStub{})
	ctx := context.Background()

	reservation, err := fix.facade.CreateReservation(ctx, 1, time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC), "birthday")
	if err != nil {
		t.Fatalf("create reservation returned error: %v", err)
	}
	if _, err := fix.facade.Reservation(ctx, 1, reservation.ID); err != nil {
		t.Fatalf("get reservation returned error: %v", err)
	}
	memo := "anniversary"
	updated, err := fix.facade.UpdateReservation(ctx, 1, reservation.ID, model.ReservationPatch{Memo: &memo})
	if err != nil || updated.Memo != memo {
		t.Fatalf("unexpected update result %+v %v", updated, err)
	}
	if err := fix.facade.CancelReservation(ctx, 1, reservation.ID); err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	mine, err := fix.facade.Reservations(ctx, 1)
	if err != nil || len(mine) != 1 || mine[0].Status != model.ReservationStatusCanceled {
		t.Fatalf("expected canceled reservation, got %+v %v", mine, err)
	}
	all, err := fix.facade.AllReservations(ctx, model.NewPage(0, 10))
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one reservation in admin listing, got %v %v", all, err)
	}

	review, err := fix.facade.CreateReview(ctx, 1, model.Review{Rating: 4, Comment: " nice ", ReservationID: &reservation.ID})
	if err != nil {
		t.Fatalf("create review returned error: %v", err)
	}
	if review.Comment != "nice" || review.UserID != 1 {
		t.Fatalf("unexpected review %+v", review)
	}
	if _, err := fix.facade.CreateReview(ctx, 2, model.Review{Rating: 4, ReservationID: &reservation.ID}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign reservation to be rejected, got %v", err)
	}
	if _, err := fix.facade.Review(ctx, review.ID); err != nil {
		t.Fatalf("get review returned error: %v", err)
	}
	reviews, err := fix.facade.Reviews(ctx, model.NewPage(0, 10))
	if err != nil || len(reviews) != 1 {
		t.Fatalf("expected one review, got %v %v", reviews, err)
	}
}

func TestShopFacadeGalleryAndAdmin(t *testing.T) {
	fix := newFacade(healthStub{err: errors.New("db down")})
	ctx := context.Background()

	item, err := fix.facade.AddGalleryItem(ctx, "https://cdn.example.com/a.jpg", "patio")
	if err != nil {
		t.Fatalf("add gallery item returned error: %v", err)
	}
	if _, err := fix.facade.GalleryItem(ctx, item.ID); err != nil {
		t.Fatalf("get gallery item returned error: %v", err)
	}
	items, err := fix.facade.GalleryItems(ctx, model.NewPage(0, 10))
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one gallery item, got %v %v", items, err)
	}
	if err := fix.facade.RemoveGalleryItem(ctx, item.ID); err != nil {
		t.Fatalf("remove gallery item returned error: %v", err)
	}
	if _, err := fix.facade.GalleryItem(ctx, item.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected removed item to be hidden, got %v", err)
	}

	if _, err := fix.facade.Dashboard(ctx); err != nil {
		t.Fatalf("dashboard returned error: %v", err)
	}
	if err := fix.facade.HealthCheck(ctx); err == nil {
		t.Fatal("expected health check failure to propagate")
	}
}

func TestOutcomeOf(t *testing.T) {
	cases := map[error]string{
		domainErrors.ErrInvalidRequest: metrics.OutcomeRejected,
		domainErrors.ErrInvalidState:   metrics.OutcomeRejected,
		domainErrors.ErrNotFound:       metrics.OutcomeRejected,
		errors.New("boom"):             metrics.OutcomeFailed,
	}
	for err, want := range cases {
		if got := outcomeOf(err); got != want {
			t.Fatalf("outcomeOf(%v) = %s, want %s", err, got, want)
		}
	}
}
