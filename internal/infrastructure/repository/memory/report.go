package memory

import (
	"context"
	"sort"
	"time"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type reportRepository struct {
	store *Store
}

// NewReportRepository creates an in-memory report repository.
func NewReportRepository(store *Store) domainRepo.ReportRepository {
	return &reportRepository{store: store}
}

func (r *reportRepository) ListBetween(_ context.Context, from, to time.Time) ([]entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Transaction
	for _, transaction := range r.store.transactions {
		if transaction.CreatedAt.Before(from) || !transaction.CreatedAt.Before(to) {
			continue
		}
		matched = append(matched, transaction)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}
