package repository

import (
	"context"
	"time"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
)

// ReportRepository is the read-only view over committed transactions used
// by reporting. It never writes and is not required to see in-flight
// checkouts.
type ReportRepository interface {
	// ListBetween returns transactions with created_at in [from, to),
	// items not loaded. Bucketing happens in the report service.
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.Transaction, error)
}
