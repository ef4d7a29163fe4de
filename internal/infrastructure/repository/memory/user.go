package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates an in-memory user repository.
func NewUserRepository(store *Store) domainRepo.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ensureID(&user.ID)
	ensureTime(&user.CreatedAt)
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok || user.DeletedAt.Valid {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Username == username && !user.DeletedAt.Valid {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email && !user.DeletedAt.Valid {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = timeNow()
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil
	}
	user.DeletedAt = gorm.DeletedAt{Time: timeNow(), Valid: true}
	r.store.users[id] = user
	return nil
}

func (r *userRepository) List(_ context.Context, params *pagination.Params) ([]entity.User, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []entity.User
	for _, user := range r.store.users {
		if !user.DeletedAt.Valid {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	total := int64(len(users))
	params.Validate()
	return paginate(users, params), total, nil
}
