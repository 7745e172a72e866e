package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, name, phone string) (*model.User, error)
	Login(ctx context.Context, email, password string, client model.ClientInfo) (*model.User, string, error)
	Authorize(ctx context.Context, token string) (*model.User, error)
	TokenTTL() time.Duration
}

// CatalogFacade exposes the product catalog.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64, items []model.LineItem, paymentMethod string) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
	PayOrder(ctx context.Context, userID, orderID int64, method string) (*model.PaymentResult, error)
}

// ReservationFacade covers user reservation management.
type ReservationFacade interface {
	CreateReservation(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error)
	Reservations(ctx context.Context, userID int64) ([]model.Reservation, error)
	Reservation(ctx context.Context, userID, id int64) (*model.Reservation, error)
	UpdateReservation(ctx context.Context, userID, id int64, patch model.ReservationPatch) (*model.Reservation, error)
	CancelReservation(ctx context.Context, userID, id int64) error
}

// ReviewFacade covers review submission and browsing.
type ReviewFacade interface {
	CreateReview(ctx context.Context, userID int64, review model.Review) (*model.Review, error)
	Reviews(ctx context.Context, page model.Page) ([]model.Review, error)
	Review(ctx context.Context, id int64) (*model.Review, error)
}

// GalleryFacade covers the photo gallery.
type GalleryFacade interface {
	GalleryItems(ctx context.Context, page model.Page) ([]model.GalleryItem, error)
	GalleryItem(ctx context.Context, id int64) (*model.GalleryItem, error)
	AddGalleryItem(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error)
	RemoveGalleryItem(ctx context.Context, id int64) error
}

// AdminFacade exposes administrative views.
type AdminFacade interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	AllReservations(ctx context.Context, page model.Page) ([]model.Reservation, error)
	AllOrders(ctx context.Context, page model.Page) ([]model.Order, error)
	Users(ctx context.Context, page model.Page) ([]model.User, error)
}

// HealthFacade reports dependency health.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	ReservationFacade
	ReviewFacade
	GalleryFacade
	AdminFacade
	HealthFacade
}
