package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/server/http/dto"
	"github.com/polkiloo/reservashop/internal/server/http/middleware"
)

const tokenType = "bearer"

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}

// Login handles POST /auth/login with JSON or form credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	client := model.ClientInfo{IPAddress: c.ClientIP(), UserAgent: c.Request.UserAgent()}
	user, token, err := h.facade.Login(c.Request.Context(), req.Identifier(), req.Password, client)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token, h.facade.TokenTTL())
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   tokenType,
		User:        toUserResponse(*user),
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
