package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QRCode is a generated branch/table QR record. The PNG itself lives on
// Cloudinary; we keep the target URL so codes can be regenerated.
type QRCode struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	BranchID    uuid.UUID `json:"branch_id" gorm:"type:uuid;not null;index:idx_qrcodes_branch"`
	Branch      *Branch   `json:"branch,omitempty" gorm:"foreignKey:BranchID;references:ID"`
	TableNumber *int      `json:"table_number,omitempty"`
	TargetURL   string    `json:"target_url" gorm:"not null"`
	ImageURL    string    `json:"image_url" gorm:"not null"`
	PublicID    string    `json:"public_id" gorm:"not null"`
	Size        int       `json:"size" gorm:"default:512"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (q *QRCode) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (QRCode) TableName() string {
	return "qr_codes"
}

type GenerateQRCodeRequest struct {
	BranchID    uuid.UUID `json:"branch_id" binding:"required"`
	TableNumber *int      `json:"table_number" binding:"omitempty,min=1"`
	Size        int       `json:"size" binding:"omitempty,oneof=256 512 1024"`
	// When true the PNG bytes are streamed back instead of being uploaded
	// to Cloudinary and persisted.
	Download bool `json:"download"`
}
