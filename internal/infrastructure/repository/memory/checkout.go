package memory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type checkoutRepository struct {
	store *Store
}

// NewCheckoutRepository creates an in-memory checkout repository. The store
// mutex serializes commits, so two concurrent checkouts over the same
// product see each other's stock decrements.
func NewCheckoutRepository(store *Store) domainRepo.CheckoutRepository {
	return &checkoutRepository{store: store}
}

func (r *checkoutRepository) Commit(_ context.Context, cmd *domainRepo.CheckoutCommand) (*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Validate every entry against current stock before any mutation.
	for _, entry := range cmd.Entries {
		product, ok := r.store.products[entry.ProductID]
		if !ok || product.DeletedAt.Valid {
			return nil, gorm.ErrRecordNotFound
		}
		if product.Stock < entry.Quantity {
			return nil, &domainRepo.StockConflictError{
				ProductName: product.Name,
				Requested:   entry.Quantity,
				Available:   product.Stock,
			}
		}
	}

	sale := entity.Transaction{
		ID:            uuid.New(),
		UserID:        cmd.UserID,
		CustomerName:  cmd.CustomerName,
		PaymentMethod: cmd.PaymentMethod,
		CreatedAt:     timeNow(),
	}
	for _, entry := range cmd.Entries {
		product := r.store.products[entry.ProductID]
		sale.Items = append(sale.Items, entity.TransactionItem{
			ID:            uuid.New(),
			TransactionID: sale.ID,
			ProductID:     entry.ProductID,
			Quantity:      entry.Quantity,
			Tier:          entry.Tier,
			UnitPrice:     product.TierPrice(entry.Tier),
			CreatedAt:     sale.CreatedAt,
		})
	}
	sale.RecomputeTotal()

	for _, entry := range cmd.Entries {
		product := r.store.products[entry.ProductID]
		product.Stock -= entry.Quantity
		r.store.products[entry.ProductID] = product
		r.store.appendStockLog(entry.ProductID, -entry.Quantity, "checkout")
	}

	for id, item := range r.store.cartItems {
		if item.UserID == cmd.UserID {
			delete(r.store.cartItems, id)
		}
	}

	r.store.transactions[sale.ID] = sale
	return &sale, nil
}
