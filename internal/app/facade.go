package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/metrics"
	pkgAuth "github.com/polkiloo/reservashop/internal/pkg/auth"
	"github.com/polkiloo/reservashop/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// FacadeParams lists the use cases aggregated by ShopFacade.
type FacadeParams struct {
	fx.In

	Auth         *usecase.AuthUseCase
	Catalog      *usecase.CatalogUseCase
	Orders       *usecase.OrderUseCase
	Reservations *usecase.ReservationUseCase
	Reviews      *usecase.ReviewUseCase
	Gallery      *usecase.GalleryUseCase
	Admin        *usecase.AdminUseCase
	Tokens       pkgAuth.Strategy
	Health       HealthChecker
}

// ShopFacade is the single entry point used by HTTP handlers.
type ShopFacade struct {
	auth         *usecase.AuthUseCase
	catalog      *usecase.CatalogUseCase
	orders       *usecase.OrderUseCase
	reservations *usecase.ReservationUseCase
	reviews      *usecase.ReviewUseCase
	gallery      *usecase.GalleryUseCase
	admin        *usecase.AdminUseCase
	tokens       pkgAuth.Strategy
	health       HealthChecker
}

func NewShopFacade(p FacadeParams) *ShopFacade {
	return &ShopFacade{
		auth:         p.Auth,
		catalog:      p.Catalog,
		orders:       p.Orders,
		reservations: p.Reservations,
		reviews:      p.Reviews,
		gallery:      p.Gallery,
		admin:        p.Admin,
		tokens:       p.Tokens,
		health:       p.Health,
	}
}

func (f *ShopFacade) Register(ctx context.Context, email, password, name, phone string) (*model.User, error) {
	return f.auth.Register(ctx, usecase.RegisterInput{Email: email, Password: password, Name: name, Phone: phone})
}

func (f *ShopFacade) Login(ctx context.Context, email, password string, client model.ClientInfo) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password, client)
}

// Authorize resolves a bearer token into the active user it was issued for.
func (f *ShopFacade) Authorize(ctx context.Context, token string) (*model.User, error) {
	userID, err := f.auth.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return f.auth.CurrentUser(ctx, userID)
}

func (f *ShopFacade) TokenTTL() time.Duration {
	return f.tokens.TTL()
}

func (f *ShopFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListActive(ctx)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	return f.catalog.Create(ctx, input)
}

func (f *ShopFacade) UpdateProduct(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	return f.catalog.Update(ctx, id, input)
}

func (f *ShopFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.Deactivate(ctx, id)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, userID int64, items []model.LineItem, paymentMethod string) (*model.Order, error) {
	order, err := f.orders.Create(ctx, userID, items, paymentMethod)
	if err != nil {
		metrics.ObserveOrder(outcomeOf(err), decimal.Zero)
		return nil, err
	}
	metrics.ObserveOrder(metrics.OutcomeSuccess, order.TotalAmount)
	return order, nil
}

func (f *ShopFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *ShopFacade) PayOrder(ctx context.Context, userID, orderID int64, method string) (*model.PaymentResult, error) {
	result, err := f.orders.ProcessPayment(ctx, userID, orderID, method)
	label := strings.ToLower(strings.TrimSpace(method))
	if _, ok := model.ParsePaymentMethod(method); !ok {
		label = "unsupported"
	}
	if err != nil {
		metrics.ObservePayment(label, outcomeOf(err))
		return nil, err
	}
	metrics.ObservePayment(label, metrics.OutcomeSuccess)
	return result, nil
}

func (f *ShopFacade) CreateReservation(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error) {
	return f.reservations.Create(ctx, userID, reservedAt, memo)
}

func (f *ShopFacade) Reservations(ctx context.Context, userID int64) ([]model.Reservation, error) {
	return f.reservations.List(ctx, userID)
}

func (f *ShopFacade) Reservation(ctx context.Context, userID, id int64) (*model.Reservation, error) {
	return f.reservations.Get(ctx, userID, id)
}

func (f *ShopFacade) UpdateReservation(ctx context.Context, userID, id int64, patch model.ReservationPatch) (*model.Reservation, error) {
	return f.reservations.Update(ctx, userID, id, patch)
}

func (f *ShopFacade) CancelReservation(ctx context.Context, userID, id int64) error {
	return f.reservations.Cancel(ctx, userID, id)
}

func (f *ShopFacade) CreateReview(ctx context.Context, userID int64, review model.Review) (*model.Review, error) {
	return f.reviews.Create(ctx, userID, usecase.ReviewInput{
		Rating:        review.Rating,
		Comment:       review.Comment,
		ReservationID: review.ReservationID,
		OrderID:       review.OrderID,
	})
}

func (f *ShopFacade) Reviews(ctx context.Context, page model.Page) ([]model.Review, error) {
	return f.reviews.List(ctx, page)
}

func (f *ShopFacade) Review(ctx context.Context, id int64) (*model.Review, error) {
	return f.reviews.Get(ctx, id)
}

func (f *ShopFacade) GalleryItems(ctx context.Context, page model.Page) ([]model.GalleryItem, error) {
	return f.gallery.List(ctx, page)
}

func (f *ShopFacade) GalleryItem(ctx context.Context, id int64) (*model.GalleryItem, error) {
	return f.gallery.Get(ctx, id)
}

func (f *ShopFacade) AddGalleryItem(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error) {
	return f.gallery.Create(ctx, imageURL, caption)
}

func (f *ShopFacade) RemoveGalleryItem(ctx context.Context, id int64) error {
	return f.gallery.Delete(ctx, id)
}

func (f *ShopFacade) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return f.admin.Dashboard(ctx)
}

func (f *ShopFacade) AllReservations(ctx context.Context, page model.Page) ([]model.Reservation, error) {
	return f.reservations.ListAll(ctx, page)
}

func (f *ShopFacade) AllOrders(ctx context.Context, page model.Page) ([]model.Order, error) {
	return f.orders.List(ctx, page)
}

func (f *ShopFacade) Users(ctx context.Context, page model.Page) ([]model.User, error) {
	return f.auth.ListUsers(ctx, page)
}

func (f *ShopFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// outcomeOf separates caller mistakes from infrastructure failures.
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidRequest),
		errors.Is(err, domainErrors.ErrInvalidState),
		errors.Is(err, domainErrors.ErrNotFound):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
