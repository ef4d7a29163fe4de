package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// NotificationFilterParams contains filtering parameters for notification
// queries. Listings are always scoped to one recipient.
type NotificationFilterParams struct {
	Pagination *pagination.Params
	UnreadOnly bool
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, recipientID, id uuid.UUID) (*entity.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, params *NotificationFilterParams) ([]entity.Notification, int64, error)
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
