package memory

import (
	"context"
	"sort"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type stockLogRepository struct {
	store *Store
}

// NewStockLogRepository creates an in-memory stock log repository.
func NewStockLogRepository(store *Store) domainRepo.StockLogRepository {
	return &stockLogRepository{store: store}
}

func (r *stockLogRepository) List(_ context.Context, params *domainRepo.StockLogFilterParams) ([]entity.StockLog, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.StockLog
	for _, logEntry := range r.store.stockLogs {
		if params.ProductID != nil && logEntry.ProductID != *params.ProductID {
			continue
		}
		matched = append(matched, logEntry)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	return paginate(matched, params.Pagination), total, nil
}
