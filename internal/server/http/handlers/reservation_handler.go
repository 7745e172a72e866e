package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/server/http/dto"
)

// ReservationHandler manages the caller's reservations.
type ReservationHandler struct {
	facade ReservationFacade
}

// NewReservationHandler constructs ReservationHandler.
func NewReservationHandler(facade ReservationFacade) *ReservationHandler {
	return &ReservationHandler{facade: facade}
}

// Create handles POST /reservations.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	reservation, err := h.facade.CreateReservation(c.Request.Context(), CurrentUserID(c), req.ReservedAt, req.Memo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(*reservation))
}

// List handles GET /reservations.
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.facade.Reservations(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

// Get handles GET /reservations/:id.
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.facade.Reservation(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(*reservation))
}

// Update handles PATCH /reservations/:id.
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	patch := model.ReservationPatch{ReservedAt: req.ReservedAt, Memo: req.Memo}
	if req.Status != nil {
		status := model.ReservationStatus(*req.Status)
		patch.Status = &status
	}

	reservation, err := h.facade.UpdateReservation(c.Request.Context(), CurrentUserID(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(*reservation))
}

// Cancel handles DELETE /reservations/:id.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.CancelReservation(c.Request.Context(), CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "reservation canceled"})
}

func toReservationResponses(reservations []model.Reservation) []dto.ReservationResponse {
	response := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		response = append(response, toReservationResponse(r))
	}
	return response
}

func toReservationResponse(r model.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		ReservedAt: r.ReservedAt,
		Status:     string(r.Status),
		Memo:       r.Memo,
		CreatedAt:  r.CreatedAt,
	}
}
