package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.Params
	// UserID scopes the listing to one cashier; nil lists all (admin view).
	UserID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TodaySummary is a cashier's same-day rollup.
type TodaySummary struct {
	Count   int64 `json:"count"`
	Revenue int64 `json:"revenue"`
}

// TransactionRepository defines read access to completed transactions.
// Transactions are only ever created by the checkout unit.
type TransactionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// ListLatest and GetTodaySummary scope to one cashier when userID is
	// set; nil covers all users (admin view).
	ListLatest(ctx context.Context, userID *uuid.UUID, limit int) ([]entity.Transaction, error)
	GetTodaySummary(ctx context.Context, userID *uuid.UUID, now time.Time) (*TodaySummary, error)
}
