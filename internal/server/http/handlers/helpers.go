package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/reservashop/internal/domain/errors"
	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/server/http/dto"
	"github.com/polkiloo/reservashop/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// respondError maps domain errors onto HTTP statuses with a detail body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrInvalidRequest),
		errors.Is(err, domainErrors.ErrInvalidState),
		errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, domainErrors.ErrInactiveUser):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrForbidden):
		status = http.StatusForbidden
	}

	detail := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		detail = "internal server error"
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: detail})
}

func badRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Detail: detail})
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// pageQuery reads skip/limit query parameters.
func pageQuery(c *gin.Context) (model.Page, bool) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		badRequest(c, "skip must be an integer")
		return model.Page{}, false
	}
	limit, err := queryInt(c, "limit", model.DefaultPageLimit)
	if err != nil {
		badRequest(c, "limit must be an integer")
		return model.Page{}, false
	}
	return model.NewPage(skip, limit), true
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
