package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation is a table booking made from the public site or by staff.
type Reservation struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BranchID       uuid.UUID  `json:"branch_id" gorm:"type:uuid;not null;index:idx_reservations_branch"`
	CustomerName   string     `json:"customer_name" gorm:"not null;index"`
	CustomerEmail  string     `json:"customer_email" gorm:"index"`
	CustomerPhone  string     `json:"customer_phone" gorm:"not null;index"`
	PartySize      int        `json:"party_size" gorm:"not null;check:party_size > 0"`
	ReservedFor    time.Time  `json:"reserved_for" gorm:"not null;index"`
	Status         string     `json:"status" gorm:"not null;default:'pending';check:status IN ('pending', 'confirmed', 'seated', 'completed', 'cancelled');index"`
	SpecialRequest *string    `json:"special_request,omitempty"`
	AdminNotes     *string    `json:"admin_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Reservation) TableName() string {
	return "reservations"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ReservationRequest struct {
	BranchID       uuid.UUID `json:"branch_id" binding:"required"`
	CustomerName   string    `json:"customer_name" binding:"required"`
	CustomerEmail  string    `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone  string    `json:"customer_phone" binding:"required"`
	PartySize      int       `json:"party_size" binding:"required,min=1,max=50"`
	ReservedFor    time.Time `json:"reserved_for" binding:"required"`
	SpecialRequest *string   `json:"special_request,omitempty"`
}

type UpdateReservationStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending confirmed seated completed cancelled"`
	AdminNotes *string `json:"admin_notes,omitempty"` // required if status=cancelled
}

type AdminReservationSearchQuery struct {
	Q        string  `form:"q"`      // name, phone or email
	Status   string  `form:"status"` // exact
	DateFrom *string `form:"date_from"`
	DateTo   *string `form:"date_to"`
	BranchID *string `form:"branch_id"`
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ReservationStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type ReservationStatsResponse struct {
	TotalReservations          int                       `json:"total_reservations"`
	ChangePercentFromLastMonth *float64                  `json:"change_percent_from_last_month,omitempty"`
	CurrentMonthTotal          int                       `json:"current_month_total"`
	LastMonthTotal             int                       `json:"last_month_total"`
	Pending                    ReservationStatsBreakdown `json:"pending"`
	Confirmed                  ReservationStatsBreakdown `json:"confirmed"`
	Seated                     ReservationStatsBreakdown `json:"seated"`
	Completed                  ReservationStatsBreakdown `json:"completed"`
	Cancelled                  ReservationStatsBreakdown `json:"cancelled"`
	AveragePartySize           float64                   `json:"average_party_size"`
}
