package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	pkgAuth "github.com/polkiloo/reservashop/internal/pkg/auth"
	"github.com/polkiloo/reservashop/internal/server/http/dto"
)

const (
	// UserContextKey is a gin context key for the authenticated user.
	UserContextKey = "user"
	authCookieName = "reservashop_token"
)

// Authorizer resolves a bearer token into an active user.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(authorizer Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			unauthorized(c, "not authenticated")
			return
		}

		user, err := authorizer.Authorize(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, pkgAuth.ErrInvalidToken), errors.Is(err, domainErrors.ErrNotFound):
			unauthorized(c, "could not validate credentials")
			return
		case errors.Is(err, domainErrors.ErrInactiveUser):
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
			return
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// AdminRequired rejects authenticated users without the admin role. It must
// run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Detail: domainErrors.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired or nil.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: detail})
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie living as long as the token.
func SetAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, int(ttl.Seconds()), "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
