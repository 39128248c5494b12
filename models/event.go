package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventInquiry is a private-event request (birthdays, corporate bookings, ...).
type EventInquiry struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BranchID      *uuid.UUID `json:"branch_id,omitempty" gorm:"type:uuid;index"`
	ContactName   string     `json:"contact_name" gorm:"not null"`
	ContactEmail  string     `json:"contact_email" gorm:"not null"`
	ContactPhone  string     `json:"contact_phone"`
	EventType     string     `json:"event_type" gorm:"not null;index"` // birthday, corporate, wedding, other
	GuestCount    int        `json:"guest_count" gorm:"not null;check:guest_count > 0"`
	PreferredDate time.Time  `json:"preferred_date" gorm:"not null;index"`
	Notes         *string    `json:"notes,omitempty"`
	Status        string     `json:"status" gorm:"not null;default:'new';check:status IN ('new', 'contacted', 'booked', 'declined');index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (e *EventInquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (EventInquiry) TableName() string {
	return "event_inquiries"
}

type EventInquiryRequest struct {
	BranchID      *uuid.UUID `json:"branch_id,omitempty"`
	ContactName   string     `json:"contact_name" binding:"required"`
	ContactEmail  string     `json:"contact_email" binding:"required,email"`
	ContactPhone  string     `json:"contact_phone"`
	EventType     string     `json:"event_type" binding:"required,oneof=birthday corporate wedding other"`
	GuestCount    int        `json:"guest_count" binding:"required,min=1"`
	PreferredDate time.Time  `json:"preferred_date" binding:"required"`
	Notes         *string    `json:"notes,omitempty"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted booked declined"`
}
