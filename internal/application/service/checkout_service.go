package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

// CheckoutService converts a cart into a completed transaction. The heavy
// lifting, locking, validation and rollback, lives in the checkout
// repository; this layer handles authorization, input validation and error
// mapping.
type CheckoutService struct {
	cartRepo      repository.CartRepository
	checkoutRepo  repository.CheckoutRepository
	productRepo   repository.ProductRepository
	notifications *NotificationService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(cartRepo repository.CartRepository, checkoutRepo repository.CheckoutRepository, productRepo repository.ProductRepository, notifications *NotificationService) *CheckoutService {
	return &CheckoutService{
		cartRepo:      cartRepo,
		checkoutRepo:  checkoutRepo,
		productRepo:   productRepo,
		notifications: notifications,
	}
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	CustomerName  string
	PaymentMethod string
}

// Checkout executes the atomic cart-to-transaction conversion for the
// principal. On success the cart is empty and the returned transaction
// carries price snapshots for every line. On any failure nothing changed.
func (s *CheckoutService) Checkout(ctx context.Context, principal entity.Principal, input *CheckoutInput) (*entity.Transaction, error) {
	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		return nil, apperror.NewValidationError("customer name is required")
	}
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	entries, err := s.cartRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	cmd := &repository.CheckoutCommand{
		UserID:        principal.ID,
		CustomerName:  customerName,
		PaymentMethod: paymentMethod,
		Entries:       entries,
	}

	transaction, err := s.checkoutRepo.Commit(ctx, cmd)
	if err != nil {
		var conflict *repository.StockConflictError
		if errors.As(err, &conflict) {
			return nil, apperror.NewInsufficientStockError(conflict.ProductName, conflict.Requested, conflict.Available)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("product")
		}
		return nil, apperror.NewTransactionFailedError(err)
	}

	s.notify(ctx, principal, transaction)
	return transaction, nil
}

// notify records the post-sale notifications for the cashier. The sale is
// already committed at this point, so failures here are logged and dropped.
func (s *CheckoutService) notify(ctx context.Context, principal entity.Principal, transaction *entity.Transaction) {
	if s.notifications == nil {
		return
	}

	if err := s.notifications.NotifyTransactionSuccess(ctx, principal.ID, transaction); err != nil {
		log.Printf("Warning: failed to record transaction notification: %v", err)
	}

	for _, item := range transaction.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil || product == nil {
			continue
		}
		if product.IsLowStock(entity.DefaultLowStockThreshold) {
			if err := s.notifications.NotifyStockLow(ctx, principal.ID, product); err != nil {
				log.Printf("Warning: failed to record low stock notification: %v", err)
			}
		}
	}
}
