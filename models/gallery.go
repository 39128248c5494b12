package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImage is one image in the public gallery, hosted on Cloudinary.
type GalleryImage struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	URL          string    `json:"url" gorm:"not null"`
	PublicID     string    `json:"public_id" gorm:"not null;uniqueIndex"`
	Caption      string    `json:"caption"`
	Category     string    `json:"category" gorm:"not null;default:'general';index"` // food, interior, events, general
	DisplayOrder int       `json:"display_order" gorm:"default:0;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

type GalleryImageRequest struct {
	URL          string `json:"url" binding:"required,url"`
	PublicID     string `json:"public_id" binding:"required"`
	Caption      string `json:"caption"`
	Category     string `json:"category" binding:"omitempty,oneof=food interior events general"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

type UpdateGalleryImageRequest struct {
	Caption      *string `json:"caption"`
	Category     *string `json:"category" binding:"omitempty,oneof=food interior events general"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}
