package repository

import (
	"context"
	"sort"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(db *gorm.DB) domainRepo.CheckoutRepository {
	return &checkoutRepository{db: db}
}

// Commit turns a set of cart entries into a finished sale inside one database
// transaction. All product rows are locked up front in ID order, every entry
// is validated against current stock before anything is written, and a single
// failed entry aborts the whole commit with StockConflictError.
func (r *checkoutRepository) Commit(ctx context.Context, cmd *domainRepo.CheckoutCommand) (*entity.Transaction, error) {
	var sale *entity.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Stable lock order across concurrent checkouts avoids deadlocks.
		productIDs := make([]uuid.UUID, 0, len(cmd.Entries))
		for _, entry := range cmd.Entries {
			productIDs = append(productIDs, entry.ProductID)
		}
		sort.Slice(productIDs, func(i, j int) bool {
			return productIDs[i].String() < productIDs[j].String()
		})

		var products []entity.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", productIDs).
			Order("id ASC").
			Find(&products).Error; err != nil {
			return err
		}

		locked := make(map[uuid.UUID]*entity.Product, len(products))
		for i := range products {
			locked[products[i].ID] = &products[i]
		}

		// Validate every entry before the first write.
		for _, entry := range cmd.Entries {
			product, ok := locked[entry.ProductID]
			if !ok {
				return gorm.ErrRecordNotFound
			}
			if product.Stock < entry.Quantity {
				return &domainRepo.StockConflictError{
					ProductName: product.Name,
					Requested:   entry.Quantity,
					Available:   product.Stock,
				}
			}
		}

		sale = &entity.Transaction{
			UserID:        cmd.UserID,
			CustomerName:  cmd.CustomerName,
			PaymentMethod: cmd.PaymentMethod,
		}
		for _, entry := range cmd.Entries {
			product := locked[entry.ProductID]
			sale.Items = append(sale.Items, entity.TransactionItem{
				ProductID: entry.ProductID,
				Quantity:  entry.Quantity,
				Tier:      entry.Tier,
				UnitPrice: product.TierPrice(entry.Tier),
			})
		}
		sale.RecomputeTotal()

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for _, entry := range cmd.Entries {
			if _, err := adjustStockTx(tx, entry.ProductID, -entry.Quantity, "checkout"); err != nil {
				return err
			}
		}

		return tx.Delete(&entity.CartItem{}, "user_id = ?", cmd.UserID).Error
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
