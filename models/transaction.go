package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is a payment attempt recorded by the provider webhook integration.
// Rows are immutable once written; the dashboard only ever reads them.
type Payment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   *uuid.UUID `json:"order_id,omitempty" gorm:"type:uuid;index"`
	Amount    float64   `json:"amount" gorm:"type:numeric(12,2);not null;check:amount >= 0"`
	Status    string    `json:"status" gorm:"not null;check:status IN ('pending', 'success', 'failed');index"`
	Provider  string    `json:"provider"` // mpesa, card, cash
	Reference string    `json:"reference" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Payment) TableName() string {
	return "payments"
}

// CustomerOrderItem is one line in an order's JSONB items column. Orders here
// are food orders placed through the QR menu, kept denormalised because the
// dashboard never edits them.
type CustomerOrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CustomerOrderItemsList []CustomerOrderItem

// CustomerOrder is a food order as ingested from the ordering integration.
type CustomerOrder struct {
	ID            uuid.UUID              `json:"id" gorm:"type:uuid;primaryKey"`
	BranchID      *uuid.UUID             `json:"branch_id,omitempty" gorm:"type:uuid;index"`
	UserID        string                 `json:"user_id" gorm:"index"`
	Phone         string                 `json:"phone" gorm:"index"`
	Name          string                 `json:"name"`
	Status        string                 `json:"status" gorm:"not null;index"`
	PaymentMethod string                 `json:"payment_method"`
	Total         float64                `json:"total" gorm:"type:numeric(12,2);not null;check:total >= 0"`
	Items         CustomerOrderItemsList `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time              `json:"created_at" gorm:"autoCreateTime;index"`
}

func (o *CustomerOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CustomerOrder) TableName() string {
	return "customer_orders"
}

// ═══════════════════════════════════════════════════════════
// List Rows (raw SQL scans)
// ═══════════════════════════════════════════════════════════

type PaymentListRow struct {
	ID        string    `json:"id"`
	OrderID   *string   `json:"order_id,omitempty"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Provider  string    `json:"provider"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerOrderListRow struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Total         float64   `json:"total"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (l *CustomerOrderItemsList) Scan(value interface{}) error {
	if value == nil {
		*l = make(CustomerOrderItemsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CustomerOrderItemsList")
	}
	return json.Unmarshal(bytes, l)
}

func (l CustomerOrderItemsList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]CustomerOrderItem{})
	}
	return json.Marshal(l)
}
