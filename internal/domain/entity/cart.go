package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

// CartItem is a mutable per-user cart entry. An entry is unique per
// (user, product); re-adding the same product increments the quantity.
// Quantity is always >= 1; setting it to zero or below deletes the row.
type CartItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int            `gorm:"not null;default:1" json:"quantity"`
	Tier      enum.PriceTier `gorm:"size:20;not null;default:'general'" json:"tier"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new cart item
func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal computes quantity x current tier price. This is advisory display
// pricing; the binding price snapshot is taken at checkout.
func (ci *CartItem) Subtotal() int64 {
	return int64(ci.Quantity) * ci.Product.TierPrice(ci.Tier)
}
