package model

import "time"

// GalleryItem is a published photo.
type GalleryItem struct {
	ID        int64
	ImageURL  string
	Caption   string
	IsActive  bool
	CreatedAt time.Time
}
