package repository

import (
	"context"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, page model.Page) ([]model.User, error)
}

// LoginAttemptRepository stores the login audit trail.
type LoginAttemptRepository interface {
	Record(ctx context.Context, attempt model.LoginAttempt) error
}
