package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// StockLogFilterParams contains filtering parameters for stock log queries
type StockLogFilterParams struct {
	Pagination *pagination.Params
	ProductID  *uuid.UUID
}

// StockLogRepository exposes the read side of the stock audit trail. Log
// rows are only ever written by AdjustStock and the checkout unit.
type StockLogRepository interface {
	List(ctx context.Context, params *StockLogFilterParams) ([]entity.StockLog, int64, error)
}
