package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// ShopFacadeStub provides controllable behaviour for every HTTP-facing operation.
// Unset functions fall back to canned successful responses.
type ShopFacadeStub struct {
	RegisterFn  func(ctx context.Context, email, password, name, phone string) (*model.User, error)
	LoginFn     func(ctx context.Context, email, password string, client model.ClientInfo) (*model.User, string, error)
	AuthorizeFn func(ctx context.Context, token string) (*model.User, error)
	TTL         time.Duration

	ProductsFn      func(ctx context.Context) ([]model.Product, error)
	CreateProductFn func(ctx context.Context, input model.ProductInput) (*model.Product, error)
	UpdateProductFn func(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error)
	DeleteProductFn func(ctx context.Context, id int64) error

	CreateOrderFn func(ctx context.Context, userID int64, items []model.LineItem, method string) (*model.Order, error)
	OrdersFn      func(ctx context.Context, userID int64) ([]model.Order, error)
	OrderFn       func(ctx context.Context, userID, orderID int64) (*model.Order, error)
	PayOrderFn    func(ctx context.Context, userID, orderID int64, method string) (*model.PaymentResult, error)

	CreateReservationFn func(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error)
	ReservationsFn      func(ctx context.Context, userID int64) ([]model.Reservation, error)
	ReservationFn       func(ctx context.Context, userID, id int64) (*model.Reservation, error)
	UpdateReservationFn func(ctx context.Context, userID, id int64, patch model.ReservationPatch) (*model.Reservation, error)
	CancelReservationFn func(ctx context.Context, userID, id int64) error

	CreateReviewFn func(ctx context.Context, userID int64, review model.Review) (*model.Review, error)
	ReviewsFn      func(ctx context.Context, page model.Page) ([]model.Review, error)
	ReviewFn       func(ctx context.Context, id int64) (*model.Review, error)

	GalleryItemsFn      func(ctx context.Context, page model.Page) ([]model.GalleryItem, error)
	GalleryItemFn       func(ctx context.Context, id int64) (*model.GalleryItem, error)
	AddGalleryItemFn    func(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error)
	RemoveGalleryItemFn func(ctx context.Context, id int64) error

	DashboardFn       func(ctx context.Context) (*model.Dashboard, error)
	AllReservationsFn func(ctx context.Context, page model.Page) ([]model.Reservation, error)
	AllOrdersFn       func(ctx context.Context, page model.Page) ([]model.Order, error)
	UsersFn           func(ctx context.Context, page model.Page) ([]model.User, error)

	HealthFn func(ctx context.Context) error
}

// Register creates a regular user by default.
func (s ShopFacadeStub) Register(ctx context.Context, email, password, name, phone string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, name, phone)
	}
	return &model.User{ID: 1, Email: email, Name: name, Phone: phone, Role: model.RoleUser, IsActive: true}, nil
}

// Login returns a fixed session token by default.
func (s ShopFacadeStub) Login(ctx context.Context, email, password string, client model.ClientInfo) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password, client)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser, IsActive: true}, "session-token", nil
}

// Authorize resolves every token to a regular user by default.
func (s ShopFacadeStub) Authorize(ctx context.Context, token string) (*model.User, error) {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(ctx, token)
	}
	return &model.User{ID: 1, Role: model.RoleUser, IsActive: true}, nil
}

// TokenTTL returns configured TTL or one hour.
func (s ShopFacadeStub) TokenTTL() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return time.Hour
}

func (s ShopFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Coffee", Price: decimal.RequireFromString("4.5"), IsActive: true}}, nil
}

func (s ShopFacadeStub) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, input)
	}
	return &model.Product{ID: 1, Name: input.Name, Description: input.Description, Price: input.Price, IsActive: true}, nil
}

func (s ShopFacadeStub) UpdateProduct(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, input)
	}
	return &model.Product{ID: id, Name: input.Name, Description: input.Description, Price: input.Price, IsActive: true}, nil
}

func (s ShopFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// CreateOrder echoes the requested lines as a pending order.
func (s ShopFacadeStub) CreateOrder(ctx context.Context, userID int64, items []model.LineItem, method string) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, userID, items, method)
	}
	order := &model.Order{
		ID:            1,
		UserID:        userID,
		TotalAmount:   decimal.Zero,
		Status:        model.OrderStatusPending,
		PaymentMethod: model.PaymentMethod(method),
		PaymentStatus: model.PaymentStatusPending,
	}
	for i, item := range items {
		order.Items = append(order.Items, model.OrderItem{ID: int64(i + 1), OrderID: 1, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return order, nil
}

func (s ShopFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending}}, nil
}

func (s ShopFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending}, nil
}

// PayOrder settles the order as cash by default.
func (s ShopFacadeStub) PayOrder(ctx context.Context, userID, orderID int64, method string) (*model.PaymentResult, error) {
	if s.PayOrderFn != nil {
		return s.PayOrderFn(ctx, userID, orderID, method)
	}
	return &model.PaymentResult{Message: "payment completed", OrderID: orderID, Status: model.OrderStatusPaid}, nil
}

func (s ShopFacadeStub) CreateReservation(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error) {
	if s.CreateReservationFn != nil {
		return s.CreateReservationFn(ctx, userID, reservedAt, memo)
	}
	return &model.Reservation{ID: 1, UserID: userID, ReservedAt: reservedAt, Status: model.ReservationStatusBooked, Memo: memo}, nil
}

func (s ShopFacadeStub) Reservations(ctx context.Context, userID int64) ([]model.Reservation, error) {
	if s.ReservationsFn != nil {
		return s.ReservationsFn(ctx, userID)
	}
	return []model.Reservation{{ID: 1, UserID: userID, Status: model.ReservationStatusBooked}}, nil
}

func (s ShopFacadeStub) Reservation(ctx context.Context, userID, id int64) (*model.Reservation, error) {
	if s.ReservationFn != nil {
		return s.ReservationFn(ctx, userID, id)
	}
	return &model.Reservation{ID: id, UserID: userID, Status: model.ReservationStatusBooked}, nil
}

func (s ShopFacadeStub) UpdateReservation(ctx context.Context, userID, id int64, patch model.ReservationPatch) (*model.Reservation, error) {
	if s.UpdateReservationFn != nil {
		return s.UpdateReservationFn(ctx, userID, id, patch)
	}
	reservation := &model.Reservation{ID: id, UserID: userID, Status: model.ReservationStatusBooked}
	if patch.Status != nil {
		reservation.Status = *patch.Status
	}
	if patch.Memo != nil {
		reservation.Memo = *patch.Memo
	}
	if patch.ReservedAt != nil {
		reservation.ReservedAt = *patch.ReservedAt
	}
	return reservation, nil
}

func (s ShopFacadeStub) CancelReservation(ctx context.Context, userID, id int64) error {
	if s.CancelReservationFn != nil {
		return s.CancelReservationFn(ctx, userID, id)
	}
	return nil
}

func (s ShopFacadeStub) CreateReview(ctx context.Context, userID int64, review model.Review) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, userID, review)
	}
	review.ID = 1
	review.UserID = userID
	return &review, nil
}

func (s ShopFacadeStub) Reviews(ctx context.Context, page model.Page) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx, page)
	}
	return []model.Review{{ID: 1, UserID: 1, UserName: "Ann", Rating: 5}}, nil
}

func (s ShopFacadeStub) Review(ctx context.Context, id int64) (*model.Review, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, id)
	}
	return &model.Review{ID: id, UserID: 1, UserName: "Ann", Rating: 5}, nil
}

func (s ShopFacadeStub) GalleryItems(ctx context.Context, page model.Page) ([]model.GalleryItem, error) {
	if s.GalleryItemsFn != nil {
		return s.GalleryItemsFn(ctx, page)
	}
	return []model.GalleryItem{{ID: 1, ImageURL: "https://cdn.example.com/1.jpg", IsActive: true}}, nil
}

func (s ShopFacadeStub) GalleryItem(ctx context.Context, id int64) (*model.GalleryItem, error) {
	if s.GalleryItemFn != nil {
		return s.GalleryItemFn(ctx, id)
	}
	return &model.GalleryItem{ID: id, ImageURL: "https://cdn.example.com/1.jpg", IsActive: true}, nil
}

func (s ShopFacadeStub) AddGalleryItem(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error) {
	if s.AddGalleryItemFn != nil {
		return s.AddGalleryItemFn(ctx, imageURL, caption)
	}
	return &model.GalleryItem{ID: 1, ImageURL: imageURL, Caption: caption, IsActive: true}, nil
}

func (s ShopFacadeStub) RemoveGalleryItem(ctx context.Context, id int64) error {
	if s.RemoveGalleryItemFn != nil {
		return s.RemoveGalleryItemFn(ctx, id)
	}
	return nil
}

func (s ShopFacadeStub) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &model.Dashboard{}, nil
}

func (s ShopFacadeStub) AllReservations(ctx context.Context, page model.Page) ([]model.Reservation, error) {
	if s.AllReservationsFn != nil {
		return s.AllReservationsFn(ctx, page)
	}
	return nil, nil
}

func (s ShopFacadeStub) AllOrders(ctx context.Context, page model.Page) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, page)
	}
	return nil, nil
}

func (s ShopFacadeStub) Users(ctx context.Context, page model.Page) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, page)
	}
	return nil, nil
}

// HealthCheck reports healthy unless overridden.
func (s ShopFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
