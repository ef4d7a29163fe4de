package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type idempotencyRepository struct {
	store *Store
}

// NewIdempotencyRepository creates an in-memory idempotency repository.
func NewIdempotencyRepository(store *Store) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{store: store}
}

func (r *idempotencyRepository) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ensureID(&ikey.ID)
	ensureTime(&ikey.CreatedAt)
	r.store.idempotency[ikey.Key+"/"+ikey.UserID.String()] = *ikey
	return nil
}

func (r *idempotencyRepository) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ikey, ok := r.store.idempotency[key+"/"+userID.String()]
	if !ok {
		return nil, nil
	}
	return &ikey, nil
}

func (r *idempotencyRepository) DeleteExpired(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := timeNow()
	for k, ikey := range r.store.idempotency {
		if ikey.ExpiresAt.Before(now) {
			delete(r.store.idempotency, k)
		}
	}
	return nil
}
