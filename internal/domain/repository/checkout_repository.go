package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
)

// StockConflictError is returned by Commit when a cart entry requests more
// than the product's current stock. The whole unit has been rolled back:
// no transaction row exists, no stock was decremented, and the cart is
// untouched.
type StockConflictError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d", e.ProductName, e.Requested, e.Available)
}

// CheckoutCommand is the input to the atomic checkout unit. Entries is the
// fixed cart snapshot loaded by the checkout engine; the unit re-reads
// stock and prices itself and does not consult the live cart again.
type CheckoutCommand struct {
	UserID        uuid.UUID
	CustomerName  string
	PaymentMethod string
	Entries       []entity.CartItem
}

// CheckoutRepository executes the cart-to-transaction conversion as a
// single all-or-nothing unit: per-product stock locks and re-validation,
// transaction + line item inserts with price snapshots, stock decrements
// with audit log rows, total recomputation, and cart deletion.
type CheckoutRepository interface {
	// Commit runs the atomic unit and returns the fully populated
	// transaction. On any failure everything is rolled back; stock checks
	// failing surface as *StockConflictError.
	Commit(ctx context.Context, cmd *CheckoutCommand) (*entity.Transaction, error)
}
