package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQ struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Question     string    `json:"question" gorm:"not null"`
	Answer       string    `json:"answer" gorm:"not null"`
	DisplayOrder int       `json:"display_order" gorm:"default:0;index"`
	IsPublished  bool      `json:"is_published" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (FAQ) TableName() string {
	return "faqs"
}

type FAQRequest struct {
	Question     string `json:"question" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
	IsPublished  *bool  `json:"is_published"`
}

type UpdateFAQRequest struct {
	Question     *string `json:"question"`
	Answer       *string `json:"answer"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
	IsPublished  *bool   `json:"is_published"`
}

// ReorderFAQsRequest carries the full new ordering: every entry gets its
// position written in one transaction.
type ReorderFAQsRequest struct {
	Positions []FAQPosition `json:"positions" binding:"required,min=1,dive"`
}

type FAQPosition struct {
	ID           uuid.UUID `json:"id" binding:"required"`
	DisplayOrder int       `json:"display_order" binding:"min=0"`
}
