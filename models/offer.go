package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Offer is a time-bounded promotion shown on the public site.
type Offer struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string     `json:"title" gorm:"not null;index"`
	Description  string     `json:"description" gorm:"not null"`
	DiscountText string     `json:"discount_text"` // free-text, e.g. "2-for-1 cocktails"
	Image        *MenuImage `json:"image,omitempty" gorm:"type:jsonb"`
	ValidFrom    time.Time  `json:"valid_from" gorm:"not null;index"`
	ValidTo      time.Time  `json:"valid_to" gorm:"not null;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Offer) TableName() string {
	return "offers"
}

type OfferRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	DiscountText string     `json:"discount_text"`
	Image        *MenuImage `json:"image,omitempty"`
	ValidFrom    time.Time  `json:"valid_from" binding:"required"`
	ValidTo      time.Time  `json:"valid_to" binding:"required,gtfield=ValidFrom"`
	IsActive     *bool      `json:"is_active"`
}

type UpdateOfferRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	DiscountText *string    `json:"discount_text"`
	Image        *MenuImage `json:"image,omitempty"`
	ValidFrom    *time.Time `json:"valid_from"`
	ValidTo      *time.Time `json:"valid_to"`
	IsActive     *bool      `json:"is_active"`
}
