package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockLog is an append-only audit record of a stock mutation. Every change
// to a product's stock, whether a manual correction or a checkout decrement,
// writes exactly one log row in the same unit of work.
type StockLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Change    int       `gorm:"not null" json:"change"`
	Reason    string    `gorm:"size:255" json:"reason"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock log
func (sl *StockLog) BeforeCreate(tx *gorm.DB) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockLog model
func (StockLog) TableName() string {
	return "stock_logs"
}
