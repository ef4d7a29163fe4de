package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository creates an in-memory category repository.
func NewCategoryRepository(store *Store) domainRepo.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ensureID(&category.ID)
	ensureTime(&category.CreatedAt)
	category.UpdatedAt = category.CreatedAt
	r.store.categories[category.ID] = *category
	return nil
}

func (r *categoryRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	category, ok := r.store.categories[id]
	if !ok || category.DeletedAt.Valid {
		return nil, nil
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, category := range r.store.categories {
		if category.Name == name && !category.DeletedAt.Valid {
			c := category
			return &c, nil
		}
	}
	return nil, nil
}

func (r *categoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.store.categories[category.ID] = *category
	return nil
}

func (r *categoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	category, ok := r.store.categories[id]
	if !ok {
		return nil
	}
	category.DeletedAt = gorm.DeletedAt{Time: timeNow(), Valid: true}
	r.store.categories[id] = category
	return nil
}

func (r *categoryRepository) List(_ context.Context) ([]entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var categories []entity.Category
	for _, category := range r.store.categories {
		if !category.DeletedAt.Valid {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}
