package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type productRepository struct {
	store *Store
}

// NewProductRepository creates an in-memory product repository.
func NewProductRepository(store *Store) domainRepo.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ensureID(&product.ID)
	ensureTime(&product.CreatedAt)
	product.UpdatedAt = product.CreatedAt
	r.store.products[product.ID] = *product
	return nil
}

func (r *productRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[id]
	if !ok || product.DeletedAt.Valid {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepository) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, product := range r.store.products {
		if product.Code == code && !product.DeletedAt.Valid {
			p := product
			return &p, nil
		}
	}
	return nil, nil
}

func (r *productRepository) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, product := range r.store.products {
		if product.Barcode != nil && *product.Barcode == barcode && !product.DeletedAt.Valid {
			p := product
			return &p, nil
		}
	}
	return nil, nil
}

func (r *productRepository) Update(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.store.products[product.ID] = *product
	return nil
}

func (r *productRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[id]
	if !ok {
		return nil
	}
	product.DeletedAt = gorm.DeletedAt{Time: timeNow(), Valid: true}
	r.store.products[id] = product
	return nil
}

func (r *productRepository) List(_ context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Product
	for _, product := range r.store.products {
		if product.DeletedAt.Valid {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			barcode := ""
			if product.Barcode != nil {
				barcode = *product.Barcode
			}
			if !strings.Contains(strings.ToLower(product.Name), needle) &&
				!strings.Contains(strings.ToLower(product.Code), needle) &&
				!strings.Contains(strings.ToLower(barcode), needle) {
				continue
			}
		}
		if params.CategoryID != nil && product.CategoryID != *params.CategoryID {
			continue
		}
		matched = append(matched, product)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	return paginate(matched, params.Pagination), total, nil
}

func (r *productRepository) GetLowStock(_ context.Context, threshold int) ([]entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Product
	for _, product := range r.store.products {
		if product.DeletedAt.Valid {
			continue
		}
		if product.Stock < threshold {
			matched = append(matched, product)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Stock < matched[j].Stock
	})
	return matched, nil
}

func (r *productRepository) AdjustStock(_ context.Context, id uuid.UUID, delta int, reason string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[id]
	if !ok || product.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}

	if product.Stock+delta < 0 {
		return nil, &domainRepo.NegativeStockError{
			ProductName: product.Name,
			Current:     product.Stock,
			Delta:       delta,
		}
	}

	product.Stock += delta
	r.store.products[id] = product
	r.store.appendStockLog(id, delta, reason)
	return &product, nil
}
