package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	LoginAttempts() LoginAttemptRepository
	Products() ProductRepository
	Orders() OrderRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Gallery() GalleryRepository
	Stats() StatsRepository
}
