package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// InvoiceService derives billing documents from completed transactions.
// An invoice copies the transaction's price snapshots at generation time
// and is never recomputed afterwards.
type InvoiceService struct {
	invoiceRepo     repository.InvoiceRepository
	transactionRepo repository.TransactionRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, transactionRepo repository.TransactionRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
	}
}

// Generate creates the invoice for a transaction. Each transaction has at
// most one invoice; a second attempt returns an already-exists error.
func (s *InvoiceService) Generate(ctx context.Context, principal entity.Principal, transactionID uuid.UUID) (*entity.Invoice, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("transaction")
	}
	if !principal.IsAdmin() && transaction.UserID != principal.ID {
		return nil, apperror.ErrForbidden
	}

	existing, err := s.invoiceRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("invoice already exists for this transaction")
	}

	issuedAt := time.Now()
	invoice := &entity.Invoice{
		TransactionID: transactionID,
		Number:        entity.InvoiceNumber(transactionID, issuedAt),
		Total:         transaction.Total,
		CustomerName:  transaction.CustomerName,
		Status:        enum.InvoiceStatusUnpaid,
		IssuedAt:      issuedAt,
	}
	for _, item := range transaction.Items {
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			TransactionItemID: item.ID,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			Subtotal:          item.Subtotal(),
		})
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Get returns one invoice
func (s *InvoiceService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("invoice")
	}

	if !principal.IsAdmin() {
		transaction, err := s.transactionRepo.GetByID(ctx, invoice.TransactionID)
		if err != nil {
			return nil, err
		}
		if transaction == nil || transaction.UserID != principal.ID {
			return nil, apperror.ErrForbidden
		}
	}
	return invoice, nil
}

// GetByTransaction returns the invoice of a transaction, if generated
func (s *InvoiceService) GetByTransaction(ctx context.Context, principal entity.Principal, transactionID uuid.UUID) (*entity.Invoice, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("transaction")
	}
	if !principal.IsAdmin() && transaction.UserID != principal.ID {
		return nil, apperror.ErrForbidden
	}

	invoice, err := s.invoiceRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("invoice")
	}
	return invoice, nil
}

// List returns a page of invoices, scoped to the principal's own sales for
// cashiers
func (s *InvoiceService) List(ctx context.Context, principal entity.Principal, params *repository.InvoiceFilterParams) (*pagination.Result[entity.Invoice], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.Default()
	}
	params.UserID = scopeFor(principal)

	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(invoices, pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateStatus moves an invoice between unpaid, paid and cancelled.
// Admin only.
func (s *InvoiceService) UpdateStatus(ctx context.Context, principal entity.Principal, id uuid.UUID, status enum.InvoiceStatus) (*entity.Invoice, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperror.NewValidationError("invalid invoice status")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("invoice")
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	invoice.Status = status
	return invoice, nil
}
