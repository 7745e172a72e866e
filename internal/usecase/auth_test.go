package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	pkgAuth "github.com/polkiloo/reservashop/internal/pkg/auth"
	testhelpers "github.com/polkiloo/reservashop/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newAuthUseCase() (*AuthUseCase, *testhelpers.UserRepositoryStub, *testhelpers.LoginAttemptRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	attempts := &testhelpers.LoginAttemptRepositoryStub{}
	return NewAuthUseCase(users, attempts, testhelpers.HasherStub{}, newStrategyStub(), discardLogger()), users, attempts
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	uc, repo, _ := newAuthUseCase()

	ctx := context.Background()
	user, err := uc.Register(ctx, RegisterInput{Email: " Alice@Example.com ", Password: "password", Name: " Alice ", Phone: "010"})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleUser || !user.IsActive {
		t.Fatalf("unexpected role or state: %+v", user)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", stored.Name)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	ctx := context.Background()
	in := RegisterInput{Email: "bob@example.com", Password: "secret", Name: "Bob"}
	if _, err := uc.Register(ctx, in); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, err := uc.Register(ctx, in); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc, _, _ := newAuthUseCase()
	cases := []RegisterInput{
		{Email: "", Password: "password", Name: "n"},
		{Email: "user@example.com", Password: "", Name: "n"},
		{Email: "user@example.com", Password: "password", Name: "  "},
		{Email: "not-an-email", Password: "password", Name: "n"},
	}
	for _, in := range cases {
		if _, err := uc.Register(context.Background(), in); err != domainErrors.ErrInvalidCredentials {
			t.Fatalf("input %+v: expected invalid credentials error, got %v", in, err)
		}
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.LoginAttemptRepositoryStub{}, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub(), discardLogger())
	if _, err := uc.Register(context.Background(), RegisterInput{Email: "u@example.com", Password: "pass", Name: "U"}); err == nil {
		t.Fatal("expected hashing error")
	}
}

func TestAuthUseCaseRegisterRepositoryError(t *testing.T) {
	uc, repo, _ := newAuthUseCase()
	repo.Err = fmt.Errorf("db down")
	if _, err := uc.Register(context.Background(), RegisterInput{Email: "u@example.com", Password: "pass", Name: "U"}); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	uc, _, attempts := newAuthUseCase()

	ctx := context.Background()
	if _, err := uc.Register(ctx, RegisterInput{Email: "carol@example.com", Password: "123456", Name: "Carol"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	client := model.ClientInfo{IPAddress: "10.0.0.1", UserAgent: "test"}
	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad", client); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "CAROL@example.com", "123456", client)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1" || user.ID != 1 {
		t.Fatalf("unexpected token %q for user %d", token, user.ID)
	}

	if len(attempts.Attempts) != 2 {
		t.Fatalf("expected two recorded attempts, got %d", len(attempts.Attempts))
	}
	failed, ok := attempts.Attempts[0], attempts.Attempts[1]
	if failed.Success || failed.FailureReason == "" || failed.UserID == nil || *failed.UserID != 1 {
		t.Fatalf("unexpected failed attempt %+v", failed)
	}
	if !ok.Success || ok.IPAddress != "10.0.0.1" || ok.UserAgent != "test" {
		t.Fatalf("unexpected successful attempt %+v", ok)
	}
}

func TestAuthUseCaseAuthenticateUnknownUser(t *testing.T) {
	uc, _, attempts := newAuthUseCase()
	if _, _, err := uc.Authenticate(context.Background(), "absent@example.com", "pass", model.ClientInfo{}); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if len(attempts.Attempts) != 1 || attempts.Attempts[0].UserID != nil {
		t.Fatalf("expected anonymous failed attempt, got %+v", attempts.Attempts)
	}
}

func TestAuthUseCaseAuthenticateInactive(t *testing.T) {
	uc, repo, attempts := newAuthUseCase()
	ctx := context.Background()
	user, err := uc.Register(ctx, RegisterInput{Email: "dave@example.com", Password: "pw", Name: "Dave"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.ByID[user.ID].IsActive = false

	if _, _, err := uc.Authenticate(ctx, "dave@example.com", "pw", model.ClientInfo{}); err != domainErrors.ErrInactiveUser {
		t.Fatalf("expected inactive user error, got %v", err)
	}
	if attempts.Attempts[0].FailureReason != failureInactive {
		t.Fatalf("unexpected failure reason %q", attempts.Attempts[0].FailureReason)
	}
}

func TestAuthUseCaseAuthenticateAuditFailureIsIgnored(t *testing.T) {
	uc, _, attempts := newAuthUseCase()
	ctx := context.Background()
	if _, err := uc.Register(ctx, RegisterInput{Email: "erin@example.com", Password: "pw", Name: "Erin"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	attempts.Err = fmt.Errorf("audit table missing")

	if _, _, err := uc.Authenticate(ctx, "erin@example.com", "pw", model.ClientInfo{}); err != nil {
		t.Fatalf("audit failure must not block login: %v", err)
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	uc, repo, _ := newAuthUseCase()
	repo.Err = fmt.Errorf("db down")
	if _, _, err := uc.Authenticate(context.Background(), "user@example.com", "pass", model.ClientInfo{}); err == nil || errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateIssueTokenError(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{IssueFn: func(int64) (string, error) {
		return "", fmt.Errorf("cannot issue token")
	}}
	uc := NewAuthUseCase(users, &testhelpers.LoginAttemptRepositoryStub{}, testhelpers.HasherStub{}, strategy, discardLogger())
	ctx := context.Background()
	if _, err := uc.Register(ctx, RegisterInput{Email: "f@example.com", Password: "pw", Name: "F"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "f@example.com", "pw", model.ClientInfo{}); err == nil {
		t.Fatal("expected token issuing error")
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseCurrentUser(t *testing.T) {
	uc, repo, _ := newAuthUseCase()
	ctx := context.Background()
	user, err := uc.Register(ctx, RegisterInput{Email: "g@example.com", Password: "pw", Name: "G"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := uc.CurrentUser(ctx, user.ID)
	if err != nil || got.Email != "g@example.com" {
		t.Fatalf("unexpected current user %+v, %v", got, err)
	}

	if _, err := uc.CurrentUser(ctx, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	repo.ByID[user.ID].IsActive = false
	if _, err := uc.CurrentUser(ctx, user.ID); !errors.Is(err, domainErrors.ErrInactiveUser) {
		t.Fatalf("expected inactive user, got %v", err)
	}
}

func TestAuthUseCaseListUsers(t *testing.T) {
	uc, _, _ := newAuthUseCase()
	ctx := context.Background()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := uc.Register(ctx, RegisterInput{Email: email, Password: "pw", Name: "x"}); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}

	users, err := uc.ListUsers(ctx, model.NewPage(1, 5))
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 || users[0].Email != "b@example.com" {
		t.Fatalf("unexpected page %+v", users)
	}
}
