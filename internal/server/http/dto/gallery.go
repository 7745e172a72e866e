package dto

import "time"

// GalleryRequest describes gallery upload payload.
type GalleryRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

// GalleryResponse represents a gallery photo.
type GalleryResponse struct {
	ID        int64     `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
