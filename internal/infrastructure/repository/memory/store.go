// Package memory provides in-memory repository implementations backed by a
// single shared Store. They exist for service level tests and keep the same
// semantics as the PostgreSQL implementations, including atomic checkout and
// the no-negative-stock rule.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// Store holds all tables behind one mutex. Repository adapters created from
// the same Store share state, so a checkout through one adapter is visible
// through the others, mirroring a shared database.
type Store struct {
	mu sync.Mutex

	users         map[uuid.UUID]entity.User
	categories    map[uuid.UUID]entity.Category
	products      map[uuid.UUID]entity.Product
	cartItems     map[uuid.UUID]entity.CartItem
	transactions  map[uuid.UUID]entity.Transaction
	invoices      map[uuid.UUID]entity.Invoice
	stockLogs     []entity.StockLog
	idempotency   map[string]entity.IdempotencyKey
	notifications map[uuid.UUID]entity.Notification
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]entity.User),
		categories:    make(map[uuid.UUID]entity.Category),
		products:      make(map[uuid.UUID]entity.Product),
		cartItems:     make(map[uuid.UUID]entity.CartItem),
		transactions:  make(map[uuid.UUID]entity.Transaction),
		invoices:      make(map[uuid.UUID]entity.Invoice),
		idempotency:   make(map[string]entity.IdempotencyKey),
		notifications: make(map[uuid.UUID]entity.Notification),
	}
}

func timeNow() time.Time {
	return time.Now()
}

// paginate applies page based slicing to an already filtered, sorted result.
func paginate[T any](items []T, params *pagination.Params) []T {
	offset := params.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + params.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func ensureTime(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// SeedTransaction inserts a completed transaction directly, bypassing the
// checkout path. Tests use it to backfill sales history.
func (s *Store) SeedTransaction(transaction entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&transaction.ID)
	ensureTime(&transaction.CreatedAt)
	s.transactions[transaction.ID] = transaction
}

// appendStockLog records a stock mutation. Callers must hold s.mu.
func (s *Store) appendStockLog(productID uuid.UUID, change int, reason string) {
	s.stockLogs = append(s.stockLogs, entity.StockLog{
		ID:        uuid.New(),
		ProductID: productID,
		Change:    change,
		Reason:    reason,
		CreatedAt: time.Now(),
	})
}
