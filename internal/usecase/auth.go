package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/domain/repository"
	pkgAuth "github.com/polkiloo/reservashop/internal/pkg/auth"
)

const (
	failureBadCredentials = "invalid email or password"
	failureInactive       = "inactive user"
)

// RegisterInput carries account fields submitted on sign up.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users    repository.UserRepository
	attempts repository.LoginAttemptRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	logger   *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, attempts repository.LoginAttemptRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, attempts: attempts, hasher: hasher, tokens: strategy, logger: logger}
}

// Register creates a new regular user.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         model.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns auth token. Every attempt is
// written to the login audit trail.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string, client model.ClientInfo) (*model.User, string, error) {
	email = normalizeEmail(email)
	attempt := model.LoginAttempt{IPAddress: client.IPAddress, UserAgent: client.UserAgent}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, "", err
	}
	if usr != nil {
		attempt.UserID = &usr.ID
	}

	if usr == nil || password == "" || u.hasher.Compare(usr.PasswordHash, password) != nil {
		attempt.FailureReason = failureBadCredentials
		u.record(ctx, attempt)
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if !usr.IsActive {
		attempt.FailureReason = failureInactive
		u.record(ctx, attempt)
		return nil, "", domainErrors.ErrInactiveUser
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	attempt.Success = true
	u.record(ctx, attempt)
	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// CurrentUser loads the acting user and rejects deactivated accounts.
func (u *AuthUseCase) CurrentUser(ctx context.Context, id int64) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !usr.IsActive {
		return nil, domainErrors.ErrInactiveUser
	}
	return usr, nil
}

// ListUsers returns a page of users for administrators.
func (u *AuthUseCase) ListUsers(ctx context.Context, page model.Page) ([]model.User, error) {
	return u.users.List(ctx, page)
}

// record never fails the login flow; audit write errors are only logged.
func (u *AuthUseCase) record(ctx context.Context, attempt model.LoginAttempt) {
	if err := u.attempts.Record(ctx, attempt); err != nil {
		u.logger.Warn("record login attempt", slog.String("error", err.Error()))
	}
}
