package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/server/http/dto"
)

// ReviewHandler serves reviews.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), CurrentUserID(c), model.Review{
		Rating:        req.Rating,
		Comment:       req.Comment,
		ReservationID: req.ReservationID,
		OrderID:       req.OrderID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(*review))
}

// List handles GET /reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	reviews, err := h.facade.Reviews(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, toReviewResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /reviews/:id.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.facade.Review(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(*review))
}

func toReviewResponse(r model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		UserName:      r.UserName,
		ReservationID: r.ReservationID,
		OrderID:       r.OrderID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}
