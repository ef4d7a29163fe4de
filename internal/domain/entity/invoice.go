package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

// Invoice is the immutable billing document derived from a completed
// transaction, one-to-one. Total and item subtotals are copied from the
// transaction's price snapshots at generation time and stay frozen even if
// catalog prices later change.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID          `gorm:"type:uuid;unique;not null" json:"transaction_id"`
	Number        string             `gorm:"size:50;unique;not null" json:"number"`
	Total         int64              `gorm:"not null" json:"total"`
	CustomerName  string             `gorm:"size:255;not null" json:"customer_name"`
	Status        enum.InvoiceStatus `gorm:"default:0" json:"status"`
	IssuedAt      time.Time          `json:"issued_at"`

	// Relationships
	Transaction Transaction   `gorm:"foreignKey:TransactionID" json:"-"`
	Items       []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (inv *Invoice) BeforeCreate(tx *gorm.DB) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceNumber builds the deterministic invoice number from the
// transaction id and the issue date.
func InvoiceNumber(transactionID uuid.UUID, issuedAt time.Time) string {
	return fmt.Sprintf("INV-%s-%s", transactionID.String()[:8], issuedAt.Format("20060102"))
}

// InvoiceItem mirrors one transaction line. Quantity and UnitPrice are
// copied from the transaction item's immutable snapshot.
type InvoiceItem struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID         uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	TransactionItemID uuid.UUID `gorm:"type:uuid;not null" json:"transaction_item_id"`
	Quantity          int       `gorm:"not null" json:"quantity"`
	UnitPrice         int64     `gorm:"not null" json:"unit_price"`
	Subtotal          int64     `gorm:"not null" json:"subtotal"`

	// Relationships
	Invoice         Invoice         `gorm:"foreignKey:InvoiceID" json:"-"`
	TransactionItem TransactionItem `gorm:"foreignKey:TransactionItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
