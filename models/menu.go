package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MenuImage struct {
	URL      string `json:"url" binding:"required"`
	PublicID string `json:"public_id,omitempty"`
}

// DietaryTagsList holds dietary labels (vegetarian, halal, gluten-free, ...).
type DietaryTagsList []string

// MenuVariant is a sizing/portion option with its own price.
type MenuVariant struct {
	Name  string  `json:"name" binding:"required" example:"Full Plate"`
	Price float64 `json:"price" binding:"required,min=0" example:"12.50"`
}

type MenuVariantsList []MenuVariant

// ═══════════════════════════════════════════════════════════
// Menu Category Model (GORM)
// ═══════════════════════════════════════════════════════════

type MenuCategory struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	BranchID     uuid.UUID `json:"branch_id" gorm:"type:uuid;not null;index:idx_menu_categories_branch"`
	Name         string    `json:"name" gorm:"not null;index"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order" gorm:"default:0;index"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	ItemCount int `json:"item_count,omitempty" gorm:"-"` // Computed field
}

// BeforeCreate hook - auto-generate UUID v7
func (mc *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if mc.ID == uuid.Nil {
		mc.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (MenuCategory) TableName() string {
	return "menu_categories"
}

// ═══════════════════════════════════════════════════════════
// Menu Item Model (GORM)
// ═══════════════════════════════════════════════════════════

type MenuItem struct {
	ID           uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID   uuid.UUID        `json:"category_id" gorm:"type:uuid;not null;index:idx_menu_items_category"`
	Category     *MenuCategory    `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	CategoryName *string          `json:"category_name,omitempty" gorm:"-"` // Computed field
	Name         string           `json:"name" gorm:"not null;index"`
	Description  string           `json:"description" gorm:"not null"`
	Price        float64          `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Image        MenuImage        `json:"image" gorm:"type:jsonb;not null;default:'{}'"`
	DietaryTags  DietaryTagsList  `json:"dietary_tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Variants     MenuVariantsList `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	IsAvailable  bool             `json:"is_available" gorm:"default:true;index"`
	IsFeatured   bool             `json:"is_featured" gorm:"default:false"`
	DisplayOrder int              `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterFind hook - populate CategoryName from relationship
func (m *MenuItem) AfterFind(tx *gorm.DB) error {
	if m.Category != nil {
		m.CategoryName = &m.Category.Name
	}
	return nil
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type MenuCategoryRequest struct {
	BranchID     uuid.UUID `json:"branch_id" binding:"required"`
	Name         string    `json:"name" binding:"required" example:"Mains"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order" binding:"min=0"`
	IsActive     *bool     `json:"is_active"`
}

type MenuItemRequest struct {
	CategoryID   uuid.UUID     `json:"category_id" binding:"required"`
	Name         string        `json:"name" binding:"required" example:"Coconut Fish Curry"`
	Description  string        `json:"description" binding:"required"`
	Price        float64       `json:"price" binding:"required,min=0" example:"14.00"`
	Image        MenuImage     `json:"image" binding:"required"`
	DietaryTags  []string      `json:"dietary_tags"`
	Variants     []MenuVariant `json:"variants" binding:"omitempty,dive"`
	IsAvailable  *bool         `json:"is_available"`
	IsFeatured   *bool         `json:"is_featured"`
	DisplayOrder int           `json:"display_order" binding:"min=0"`
}

type UpdateMenuItemRequest struct {
	CategoryID   *uuid.UUID     `json:"category_id"`
	Name         *string        `json:"name"`
	Description  *string        `json:"description"`
	Price        *float64       `json:"price" binding:"omitempty,min=0"`
	Image        *MenuImage     `json:"image"`
	DietaryTags  *[]string      `json:"dietary_tags"`
	Variants     *[]MenuVariant `json:"variants" binding:"omitempty,dive"`
	IsAvailable  *bool          `json:"is_available"`
	IsFeatured   *bool          `json:"is_featured"`
	DisplayOrder *int           `json:"display_order" binding:"omitempty,min=0"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type MenuStatsResponse struct {
	TotalItems         int     `json:"total_items"`
	AvailableItems     int     `json:"available_items"`
	UnavailableItems   int     `json:"unavailable_items"`
	FeaturedItems      int     `json:"featured_items"`
	PercentageAvailable float64 `json:"percentage_available"`
	AveragePrice       float64 `json:"average_price"`
	TotalCategories    int     `json:"total_categories"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

func (i *MenuImage) Scan(value interface{}) error {
	if value == nil {
		*i = MenuImage{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MenuImage")
	}
	return json.Unmarshal(bytes, i)
}

func (i MenuImage) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (t *DietaryTagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(DietaryTagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DietaryTagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t DietaryTagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

func (v *MenuVariantsList) Scan(value interface{}) error {
	if value == nil {
		*v = make(MenuVariantsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MenuVariantsList")
	}
	return json.Unmarshal(bytes, v)
}

func (v MenuVariantsList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]MenuVariant{})
	}
	return json.Marshal(v)
}
