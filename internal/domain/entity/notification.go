package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

// Notification is an operator message created by the system, currently on
// checkout success and when a sale leaves a product low on stock. Append
// only except for the read flag.
type Notification struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	RecipientID uuid.UUID             `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Type        enum.NotificationType `gorm:"size:30;not null" json:"type"`
	Message     string                `gorm:"type:text;not null" json:"message"`
	IsRead      bool                  `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time             `json:"created_at"`

	// Relationships
	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new notification
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
