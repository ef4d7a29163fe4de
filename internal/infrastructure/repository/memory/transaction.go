package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates an in-memory transaction repository.
func NewTransactionRepository(store *Store) domainRepo.TransactionRepository {
	return &transactionRepository{store: store}
}

func (r *transactionRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	transaction, ok := r.store.transactions[id]
	if !ok {
		return nil, nil
	}
	return &transaction, nil
}

func (r *transactionRepository) List(_ context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Transaction
	for _, transaction := range r.store.transactions {
		if params.UserID != nil && transaction.UserID != *params.UserID {
			continue
		}
		if params.StartDate != nil && transaction.CreatedAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && transaction.CreatedAt.After(*params.EndDate) {
			continue
		}
		matched = append(matched, transaction)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	return paginate(matched, params.Pagination), total, nil
}

func (r *transactionRepository) ListLatest(_ context.Context, userID *uuid.UUID, limit int) ([]entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Transaction
	for _, transaction := range r.store.transactions {
		if userID != nil && transaction.UserID != *userID {
			continue
		}
		matched = append(matched, transaction)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *transactionRepository) GetTodaySummary(_ context.Context, userID *uuid.UUID, now time.Time) (*domainRepo.TodaySummary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var summary domainRepo.TodaySummary
	for _, transaction := range r.store.transactions {
		if userID != nil && transaction.UserID != *userID {
			continue
		}
		if transaction.CreatedAt.Before(start) || !transaction.CreatedAt.Before(end) {
			continue
		}
		summary.Count++
		summary.Revenue += transaction.Total
	}
	return &summary, nil
}
