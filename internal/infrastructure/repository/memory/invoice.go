package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
)

type invoiceRepository struct {
	store *Store
}

// NewInvoiceRepository creates an in-memory invoice repository.
func NewInvoiceRepository(store *Store) domainRepo.InvoiceRepository {
	return &invoiceRepository{store: store}
}

func (r *invoiceRepository) Create(_ context.Context, invoice *entity.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ensureID(&invoice.ID)
	ensureTime(&invoice.IssuedAt)
	for i := range invoice.Items {
		ensureID(&invoice.Items[i].ID)
		invoice.Items[i].InvoiceID = invoice.ID
	}
	r.store.invoices[invoice.ID] = *invoice
	return nil
}

func (r *invoiceRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	invoice, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetByTransactionID(_ context.Context, transactionID uuid.UUID) (*entity.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, invoice := range r.store.invoices {
		if invoice.TransactionID == transactionID {
			inv := invoice
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *invoiceRepository) List(_ context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Invoice
	for _, invoice := range r.store.invoices {
		if params.UserID != nil {
			transaction, ok := r.store.transactions[invoice.TransactionID]
			if !ok || transaction.UserID != *params.UserID {
				continue
			}
		}
		matched = append(matched, invoice)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].IssuedAt.After(matched[j].IssuedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	return paginate(matched, params.Pagination), total, nil
}

func (r *invoiceRepository) UpdateStatus(_ context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	invoice, ok := r.store.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	invoice.Status = status
	r.store.invoices[id] = invoice
	return nil
}
