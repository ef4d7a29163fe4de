package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// NegativeStockError is returned by AdjustStock when the delta would drive
// the product's stock below zero. Nothing is written in that case.
type NegativeStockError struct {
	ProductName string
	Current     int
	Delta       int
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("stock of %q cannot go negative: current %d, delta %d", e.ProductName, e.Current, e.Delta)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.Params
	Search     string
	CategoryID *uuid.UUID
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete soft-deletes the product. Historical transaction items keep
	// their product reference and captured prices.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error)
	// AdjustStock atomically applies a signed stock delta and appends a
	// StockLog row in the same unit of work. It is the only sanctioned
	// stock mutator outside checkout. Returns *NegativeStockError when the
	// delta would take stock below zero.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int, reason string) (*entity.Product, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Category, error)
}
