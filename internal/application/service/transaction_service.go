package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// TransactionService is the read side of completed sales. Admins see every
// transaction; cashiers only their own.
type TransactionService struct {
	transactionRepo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// scopeFor narrows queries to the principal's own sales unless they are an
// admin.
func scopeFor(principal entity.Principal) *uuid.UUID {
	if principal.IsAdmin() {
		return nil
	}
	id := principal.ID
	return &id
}

// Get returns one transaction with its items
func (s *TransactionService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("transaction")
	}
	if !principal.IsAdmin() && transaction.UserID != principal.ID {
		return nil, apperror.ErrForbidden
	}
	return transaction, nil
}

// List returns a filtered page of transactions
func (s *TransactionService) List(ctx context.Context, principal entity.Principal, params *repository.TransactionFilterParams) (*pagination.Result[entity.Transaction], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.Default()
	}
	params.UserID = scopeFor(principal)

	transactions, total, err := s.transactionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(transactions, pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// ListLatest returns the most recent transactions, newest first
func (s *TransactionService) ListLatest(ctx context.Context, principal entity.Principal, limit int) ([]entity.Transaction, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.transactionRepo.ListLatest(ctx, scopeFor(principal), limit)
}

// GetTodaySummary returns the count and revenue of today's sales
func (s *TransactionService) GetTodaySummary(ctx context.Context, principal entity.Principal) (*repository.TodaySummary, error) {
	return s.transactionRepo.GetTodaySummary(ctx, scopeFor(principal), time.Now())
}
