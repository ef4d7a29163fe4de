package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository creates an in-memory notification repository.
func NewNotificationRepository(store *Store) domainRepo.NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) Create(_ context.Context, notification *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ensureID(&notification.ID)
	ensureTime(&notification.CreatedAt)
	r.store.notifications[notification.ID] = *notification
	return nil
}

func (r *notificationRepository) GetByID(_ context.Context, recipientID, id uuid.UUID) (*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notification, ok := r.store.notifications[id]
	if !ok || notification.RecipientID != recipientID {
		return nil, nil
	}
	return &notification, nil
}

func (r *notificationRepository) ListByRecipient(_ context.Context, recipientID uuid.UUID, params *domainRepo.NotificationFilterParams) ([]entity.Notification, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Notification
	for _, notification := range r.store.notifications {
		if notification.RecipientID != recipientID {
			continue
		}
		if params.UnreadOnly && notification.IsRead {
			continue
		}
		matched = append(matched, notification)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	return paginate(matched, params.Pagination), total, nil
}

func (r *notificationRepository) MarkRead(_ context.Context, recipientID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notification, ok := r.store.notifications[id]
	if !ok || notification.RecipientID != recipientID {
		return gorm.ErrRecordNotFound
	}
	notification.IsRead = true
	r.store.notifications[id] = notification
	return nil
}

func (r *notificationRepository) MarkAllRead(_ context.Context, recipientID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var updated int64
	for id, notification := range r.store.notifications {
		if notification.RecipientID == recipientID && !notification.IsRead {
			notification.IsRead = true
			r.store.notifications[id] = notification
			updated++
		}
	}
	return updated, nil
}
