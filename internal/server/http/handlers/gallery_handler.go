package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/reservashop/internal/domain/model"
	"github.com/polkiloo/reservashop/internal/server/http/dto"
)

// GalleryHandler serves the photo gallery.
type GalleryHandler struct {
	facade GalleryFacade
}

// NewGalleryHandler constructs GalleryHandler.
func NewGalleryHandler(facade GalleryFacade) *GalleryHandler {
	return &GalleryHandler{facade: facade}
}

// List handles GET /gallery.
func (h *GalleryHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	items, err := h.facade.GalleryItems(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.GalleryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toGalleryResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /gallery/:id.
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.facade.GalleryItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGalleryResponse(*item))
}

// Create handles POST /gallery.
func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	item, err := h.facade.AddGalleryItem(c.Request.Context(), req.ImageURL, req.Caption)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGalleryResponse(*item))
}

// Delete handles DELETE /gallery/:id.
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.RemoveGalleryItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "gallery item deleted"})
}

func toGalleryResponse(item model.GalleryItem) dto.GalleryResponse {
	return dto.GalleryResponse{
		ID:        item.ID,
		ImageURL:  item.ImageURL,
		Caption:   item.Caption,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
	}
}
