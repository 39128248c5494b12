package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpeningHours maps weekday name to an "HH:MM-HH:MM" range, or "closed".
type OpeningHours map[string]string

// Branch is one physical restaurant location. Branch slugs feed the QR menu
// URLs, so they must stay URL-safe and unique.
type Branch struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string       `json:"name" gorm:"not null"`
	Slug         string       `json:"slug" gorm:"not null;uniqueIndex"`
	Address      string       `json:"address" gorm:"not null"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	OpeningHours OpeningHours `json:"opening_hours" gorm:"type:jsonb;not null;default:'{}'"`
	IsActive     bool         `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Branch) TableName() string {
	return "branches"
}

type BranchRequest struct {
	Name         string            `json:"name" binding:"required"`
	Slug         string            `json:"slug" binding:"required,lowercase,excludesall= "`
	Address      string            `json:"address" binding:"required"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email" binding:"omitempty,email"`
	OpeningHours map[string]string `json:"opening_hours"`
	IsActive     *bool             `json:"is_active"`
}

type UpdateBranchRequest struct {
	Name         *string            `json:"name"`
	Address      *string            `json:"address"`
	Phone        *string            `json:"phone"`
	Email        *string            `json:"email" binding:"omitempty,email"`
	OpeningHours *map[string]string `json:"opening_hours"`
	IsActive     *bool              `json:"is_active"`
}

func (h *OpeningHours) Scan(value interface{}) error {
	if value == nil {
		*h = make(OpeningHours)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OpeningHours")
	}
	return json.Unmarshal(bytes, h)
}

func (h OpeningHours) Value() (driver.Value, error) {
	if h == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(h)
}
