package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// NotificationService manages operator notifications. Reads and the read
// flag are scoped to the recipient; creation happens from the checkout flow.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns the principal's notifications, newest first
func (s *NotificationService) List(ctx context.Context, principal entity.Principal, params *repository.NotificationFilterParams) (*pagination.Result[entity.Notification], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.Default()
	}
	notifications, total, err := s.notificationRepo.ListByRecipient(ctx, principal.ID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(notifications, pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// MarkRead flags one of the principal's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, principal.ID, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, apperror.NewNotFoundError("notification")
	}

	if err := s.notificationRepo.MarkRead(ctx, principal.ID, id); err != nil {
		return nil, err
	}
	notification.IsRead = true
	return notification, nil
}

// MarkAllRead flags every unread notification of the principal as read and
// returns how many were updated
func (s *NotificationService) MarkAllRead(ctx context.Context, principal entity.Principal) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, principal.ID)
}

// NotifyTransactionSuccess records a checkout-completed notification for
// the cashier who ran the sale
func (s *NotificationService) NotifyTransactionSuccess(ctx context.Context, recipientID uuid.UUID, transaction *entity.Transaction) error {
	return s.notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: recipientID,
		Type:        enum.NotificationTransactionSuccess,
		Message:     fmt.Sprintf("Transaction %s completed. Total: Rp %d", transaction.ID, transaction.Total),
	})
}

// NotifyStockLow records a low-stock warning for a product
func (s *NotificationService) NotifyStockLow(ctx context.Context, recipientID uuid.UUID, product *entity.Product) error {
	return s.notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: recipientID,
		Type:        enum.NotificationStockLow,
		Message:     fmt.Sprintf("Stock for %s is running low. Remaining: %d", product.Name, product.Stock),
	})
}
