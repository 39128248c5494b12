package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// Admin represents a dashboard staff account
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	Avatar       string     `json:"avatar" gorm:"type:text"` // Cloudinary URL
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-" gorm:"not null"`            // Never expose in JSON
	Role         string     `json:"role" gorm:"not null;index"`   // super_admin, manager, staff
	Status       string     `json:"status" gorm:"not null;index"` // active, inactive, suspended
	LastLoginAt  *time.Time `json:"last_login_at"`
	JoinedAt     time.Time  `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = "active"
	}
	if a.Role == "" {
		a.Role = "staff"
	}
	return nil
}

func (Admin) TableName() string {
	return "admins"
}

// AdminInvite represents an invitation to join the dashboard
type AdminInvite struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Role      string     `json:"role" gorm:"not null;default:'staff'"`
	TokenHash string     `json:"-" gorm:"not null;index"` // Hashed token (SHA256)
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	Used      bool       `json:"used" gorm:"default:false"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (ai *AdminInvite) BeforeCreate(tx *gorm.DB) error {
	if ai.ID == uuid.Nil {
		ai.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (AdminInvite) TableName() string {
	return "admin_invites"
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"omitempty,oneof=manager staff"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateAdminProfileRequest struct {
	Name        *string `json:"name"`
	Avatar      *string `json:"avatar"`
	PhoneNumber *string `json:"phone_number"`
}

// ════════════════════════════════════════════════════════════
// Response Models
// ════════════════════════════════════════════════════════════

type AdminLoginResponse struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

type AdminStatsResponse struct {
	TotalAdmins     int `json:"total_admins"`
	ActiveAdmins    int `json:"active_admins"`
	InactiveAdmins  int `json:"inactive_admins"`
	SuspendedAdmins int `json:"suspended_admins"`
	ActiveSessions  int `json:"active_sessions"`
}
