package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/reservashop/internal/server/http/dto"
)

// AdminHandler serves administrative views.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var resp dto.DashboardResponse
	resp.Reservations.Total = d.Reservations.Total
	resp.Reservations.Pending = d.Reservations.Booked
	resp.Orders.Total = d.Orders.Total
	resp.Orders.Pending = d.Orders.Pending
	resp.Orders.TotalRevenue = d.Orders.Revenue.StringFixed(2)
	resp.Users.Total = d.Users.Total
	resp.Reviews.Total = d.Reviews.Total
	resp.Reviews.AverageRating = d.Reviews.AverageRating
	c.JSON(http.StatusOK, resp)
}

// Reservations handles GET /admin/reservations.
func (h *AdminHandler) Reservations(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	reservations, err := h.facade.AllReservations(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

// Orders handles GET /admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	orders, err := h.facade.AllOrders(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	users, err := h.facade.Users(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}
