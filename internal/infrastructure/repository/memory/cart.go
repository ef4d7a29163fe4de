package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type cartRepository struct {
	store *Store
}

// NewCartRepository creates an in-memory cart repository.
func NewCartRepository(store *Store) domainRepo.CartRepository {
	return &cartRepository{store: store}
}

// withProduct returns a copy of the item with its product attached, matching
// the Preload behavior of the database implementation.
func (r *cartRepository) withProduct(item entity.CartItem) entity.CartItem {
	if product, ok := r.store.products[item.ProductID]; ok {
		item.Product = product
	}
	return item
}

func (r *cartRepository) Create(_ context.Context, item *entity.CartItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ensureID(&item.ID)
	ensureTime(&item.CreatedAt)
	item.UpdatedAt = item.CreatedAt
	r.store.cartItems[item.ID] = *item
	return nil
}

func (r *cartRepository) GetByID(_ context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.cartItems[itemID]
	if !ok || item.UserID != userID {
		return nil, nil
	}
	item = r.withProduct(item)
	return &item, nil
}

func (r *cartRepository) GetByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.cartItems {
		if item.UserID == userID && item.ProductID == productID {
			item = r.withProduct(item)
			return &item, nil
		}
	}
	return nil, nil
}

func (r *cartRepository) Update(_ context.Context, item *entity.CartItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cartItems[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	item.UpdatedAt = timeNow()
	r.store.cartItems[item.ID] = *item
	return nil
}

func (r *cartRepository) Delete(_ context.Context, userID, itemID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.cartItems[itemID]
	if ok && item.UserID == userID {
		delete(r.store.cartItems, itemID)
	}
	return nil
}

func (r *cartRepository) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, item := range r.store.cartItems {
		if item.UserID == userID {
			delete(r.store.cartItems, id)
		}
	}
	return nil
}

func (r *cartRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []entity.CartItem
	for _, item := range r.store.cartItems {
		if item.UserID == userID {
			items = append(items, r.withProduct(item))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}
