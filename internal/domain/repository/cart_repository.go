package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
)

// CartRepository defines the interface for per-user cart data operations.
// All lookups are scoped to the owning user; an entry never leaks across
// users.
type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) error
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	// DeleteByUser removes every entry for the user. Idempotent.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	// ListByUser returns the user's entries with products preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
}
