package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

// DefaultLowStockThreshold is the stock level at or below which a product is
// flagged as low stock.
const DefaultLowStockThreshold = 10

// Product represents a sellable item in the catalog. It carries two prices:
// the general (public) price and the special (discounted) price, with
// PriceSpecial <= PriceGeneral. Stock is mutated only through stock
// adjustments, never written directly.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code         string         `gorm:"size:50;unique;not null" json:"code"`
	Barcode      *string        `gorm:"size:100;unique" json:"barcode,omitempty"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	PriceGeneral int64          `gorm:"not null" json:"price_general"`
	PriceSpecial int64          `gorm:"not null" json:"price_special"`
	Stock        int            `gorm:"not null;default:0" json:"stock"`
	CategoryID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether stock has fallen below the threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock < threshold
}

// TierPrice returns the product's current price for the given tier.
func (p *Product) TierPrice(tier enum.PriceTier) int64 {
	if tier == enum.TierSpecial {
		return p.PriceSpecial
	}
	return p.PriceGeneral
}

// Category groups products in the catalog
type Category struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:100;unique;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
