package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

// Transaction is the immutable record produced by a successful checkout.
// Total is derived from the line items via RecomputeTotal and is never set
// directly by callers.
type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Total         int64     `gorm:"not null;default:0" json:"total"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`

	// Relationships
	User  User              `gorm:"foreignKey:UserID" json:"-"`
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// RecomputeTotal sets Total to the sum of quantity x unit price over the
// line items and returns the result. The checkout engine calls this
// explicitly after creating the items; nothing recomputes it as a side
// effect of persistence.
func (t *Transaction) RecomputeTotal() int64 {
	var total int64
	for i := range t.Items {
		total += t.Items[i].Subtotal()
	}
	t.Total = total
	return total
}

// TransactionItem is a sale line. UnitPrice is the price snapshot captured
// at checkout from the product's then-current tier price; it is never
// re-read from the live catalog.
type TransactionItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	Tier          enum.PriceTier `gorm:"size:20;not null" json:"tier"`
	UnitPrice     int64          `gorm:"not null" json:"unit_price"`
	CreatedAt     time.Time      `json:"created_at"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
	Product     Product     `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction item
func (ti *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if ti.ID == uuid.Nil {
		ti.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}

// Subtotal computes quantity x captured unit price.
func (ti *TransactionItem) Subtotal() int64 {
	return int64(ti.Quantity) * ti.UnitPrice
}
