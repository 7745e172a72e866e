package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = s.Next
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	user.CreatedAt = time.Unix(s.Next, 0).UTC()
	s.Next++
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns users ordered by id.
func (s *UserRepositoryStub) List(ctx context.Context, page model.Page) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return paginate(users, page), nil
}

// LoginAttemptRepositoryStub records audit entries.
type LoginAttemptRepositoryStub struct {
	Attempts []model.LoginAttempt
	Err      error
}

// Record stores the attempt unless an error is configured.
func (s *LoginAttemptRepositoryStub) Record(ctx context.Context, attempt model.LoginAttempt) error {
	if s.Err != nil {
		return s.Err
	}
	s.Attempts = append(s.Attempts, attempt)
	return nil
}

// ProductRepositoryStub keeps a catalog in memory.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub seeds the stub with the supplied products.
func NewProductRepositoryStub(products ...model.Product) *ProductRepositoryStub {
	s := &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
	for _, p := range products {
		s.Products[p.ID] = &p
		if p.ID >= s.Next {
			s.Next = p.ID + 1
		}
	}
	return s
}

// GetActive returns active product or not found.
func (s *ProductRepositoryStub) GetActive(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok || !p.IsActive {
		return nil, domainErrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

// ListActive returns active products, highest id first.
func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Product
	for _, p := range s.Products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Create stores new active product.
func (s *ProductRepositoryStub) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Products == nil {
		s.Products = make(map[int64]*model.Product)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	p := &model.Product{ID: s.Next, Name: input.Name, Description: input.Description, Price: input.Price, IsActive: true}
	s.Next++
	s.Products[p.ID] = p
	copied := *p
	return &copied, nil
}

// Update replaces editable fields of an existing product.
func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	p.Name, p.Description, p.Price = input.Name, input.Description, input.Price
	copied := *p
	return &copied, nil
}

// Deactivate flags the product inactive.
func (s *ProductRepositoryStub) Deactivate(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	p.IsActive = false
	return nil
}

// OrderRepositoryStub stores orders in memory. The mutex makes the
// conditional payment transition safe under concurrent tests.
type OrderRepositoryStub struct {
	CreateFn     func(context.Context, model.Order) (*model.Order, error)
	TransitionFn func(context.Context, int64, int64, model.PaymentTransition) (bool, error)
	Err          error

	mu     sync.Mutex
	Orders []model.Order
	Next   int64
}

// Create assigns identifiers and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Next == 0 {
		s.Next = 1
	}
	order.ID = s.Next
	order.CreatedAt = time.Unix(s.Next, 0).UTC()
	s.Next++
	items := make([]model.OrderItem, len(order.Items))
	for i, item := range order.Items {
		item.ID = int64(i + 1)
		item.OrderID = order.ID
		items[i] = item
	}
	order.Items = items
	s.Orders = append(s.Orders, order)
	return cloneOrder(order), nil
}

// GetForUser returns the order when it belongs to userID.
func (s *OrderRepositoryStub) GetForUser(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == orderID && o.UserID == userID {
			return cloneOrder(o), nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns user orders newest first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for i := len(s.Orders) - 1; i >= 0; i-- {
		if s.Orders[i].UserID == userID {
			out = append(out, *cloneOrder(s.Orders[i]))
		}
	}
	return out, nil
}

// List returns every order newest first.
func (s *OrderRepositoryStub) List(ctx context.Context, page model.Page) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.Orders))
	for i := len(s.Orders) - 1; i >= 0; i-- {
		out = append(out, *cloneOrder(s.Orders[i]))
	}
	return paginate(out, page), nil
}

// TransitionPayment applies the transition while the order is pending.
func (s *OrderRepositoryStub) TransitionPayment(ctx context.Context, userID, orderID int64, t model.PaymentTransition) (bool, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, userID, orderID, t)
	}
	if s.Err != nil {
		return false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		o := &s.Orders[i]
		if o.ID != orderID || o.UserID != userID || o.Status != model.OrderStatusPending {
			continue
		}
		o.Status, o.PaymentMethod, o.PaymentStatus = t.Status, t.PaymentMethod, t.PaymentStatus
		return true, nil
	}
	return false, nil
}

// Snapshot returns a copy of the stored order regardless of owner.
func (s *OrderRepositoryStub) Snapshot(orderID int64) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == orderID {
			return *cloneOrder(o), true
		}
	}
	return model.Order{}, false
}

func cloneOrder(o model.Order) *model.Order {
	copied := o
	copied.Items = append([]model.OrderItem(nil), o.Items...)
	return &copied
}

// ReservationRepositoryStub keeps reservations in memory.
type ReservationRepositoryStub struct {
	Reservations []model.Reservation
	Next         int64
	Err          error
}

// Create stores a booked reservation.
func (s *ReservationRepositoryStub) Create(ctx context.Context, userID int64, reservedAt time.Time, memo string) (*model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	r := model.Reservation{
		ID:         s.Next,
		UserID:     userID,
		ReservedAt: reservedAt,
		Status:     model.ReservationStatusBooked,
		Memo:       memo,
		CreatedAt:  time.Unix(s.Next, 0).UTC(),
	}
	s.Next++
	s.Reservations = append(s.Reservations, r)
	return &r, nil
}

// GetForUser returns the reservation when owned by userID.
func (s *ReservationRepositoryStub) GetForUser(ctx context.Context, userID, id int64) (*model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.Reservations {
		if r.ID == id && r.UserID == userID {
			copied := r
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns user reservations, latest slot first.
func (s *ReservationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Reservation
	for _, r := range s.Reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReservedAt.After(out[j].ReservedAt) })
	return out, nil
}

// List returns every reservation, most recently created first.
func (s *ReservationRepositoryStub) List(ctx context.Context, page model.Page) ([]model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Reservation, 0, len(s.Reservations))
	for i := len(s.Reservations) - 1; i >= 0; i-- {
		out = append(out, s.Reservations[i])
	}
	return paginate(out, page), nil
}

// Update overwrites the stored reservation.
func (s *ReservationRepositoryStub) Update(ctx context.Context, reservation model.Reservation) (*model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Reservations {
		if s.Reservations[i].ID == reservation.ID && s.Reservations[i].UserID == reservation.UserID {
			s.Reservations[i] = reservation
			copied := reservation
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ReviewRepositoryStub keeps reviews in memory.
type ReviewRepositoryStub struct {
	Reviews []model.Review
	Names   map[int64]string
	Next    int64
	Err     error
}

// Create stores the review and fills the author name from Names.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review model.Review) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	review.ID = s.Next
	review.CreatedAt = time.Unix(s.Next, 0).UTC()
	review.UserName = s.Names[review.UserID]
	s.Next++
	s.Reviews = append(s.Reviews, review)
	return &review, nil
}

// GetByID returns review by identifier.
func (s *ReviewRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.Reviews {
		if r.ID == id {
			copied := r
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns reviews newest first.
func (s *ReviewRepositoryStub) List(ctx context.Context, page model.Page) ([]model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Review, 0, len(s.Reviews))
	for i := len(s.Reviews) - 1; i >= 0; i-- {
		out = append(out, s.Reviews[i])
	}
	return paginate(out, page), nil
}

// GalleryRepositoryStub keeps gallery items in memory.
type GalleryRepositoryStub struct {
	Items []model.GalleryItem
	Next  int64
	Err   error
}

// Create stores an active item.
func (s *GalleryRepositoryStub) Create(ctx context.Context, imageURL, caption string) (*model.GalleryItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	item := model.GalleryItem{ID: s.Next, ImageURL: imageURL, Caption: caption, IsActive: true, CreatedAt: time.Unix(s.Next, 0).UTC()}
	s.Next++
	s.Items = append(s.Items, item)
	return &item, nil
}

// GetActive returns an active item.
func (s *GalleryRepositoryStub) GetActive(ctx context.Context, id int64) (*model.GalleryItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.Items {
		if item.ID == id && item.IsActive {
			copied := item
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive returns active items newest first.
func (s *GalleryRepositoryStub) ListActive(ctx context.Context, page model.Page) ([]model.GalleryItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.GalleryItem
	for i := len(s.Items) - 1; i >= 0; i-- {
		if s.Items[i].IsActive {
			out = append(out, s.Items[i])
		}
	}
	return paginate(out, page), nil
}

// Deactivate hides an item.
func (s *GalleryRepositoryStub) Deactivate(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].IsActive = false
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// StatsRepositoryStub returns a configured dashboard.
type StatsRepositoryStub struct {
	Stats *model.Dashboard
	Err   error
}

// Dashboard returns configured statistics or an empty dashboard.
func (s *StatsRepositoryStub) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Stats != nil {
		return s.Stats, nil
	}
	d := &model.Dashboard{}
	d.Orders.Revenue = decimal.Zero
	return d, nil
}

func paginate[T any](items []T, page model.Page) []T {
	if page.Limit == 0 {
		page = model.NewPage(page.Skip, page.Limit)
	}
	if page.Skip >= len(items) {
		return []T{}
	}
	end := page.Skip + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Skip:end]
}

var (
	_ repository.UserRepository         = (*UserRepositoryStub)(nil)
	_ repository.LoginAttemptRepository = (*LoginAttemptRepositoryStub)(nil)
	_ repository.ProductRepository      = (*ProductRepositoryStub)(nil)
	_ repository.OrderRepository        = (*OrderRepositoryStub)(nil)
	_ repository.ReservationRepository  = (*ReservationRepositoryStub)(nil)
	_ repository.ReviewRepository       = (*ReviewRepositoryStub)(nil)
	_ repository.GalleryRepository      = (*GalleryRepositoryStub)(nil)
	_ repository.StatsRepository        = (*StatsRepositoryStub)(nil)
)
