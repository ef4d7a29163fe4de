package repository

import (
	"context"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"gorm.io/gorm"
)

type stockLogRepository struct {
	db *gorm.DB
}

// NewStockLogRepository creates a new stock log repository
func NewStockLogRepository(db *gorm.DB) domainRepo.StockLogRepository {
	return &stockLogRepository{db: db}
}

func (r *stockLogRepository) List(ctx context.Context, params *domainRepo.StockLogFilterParams) ([]entity.StockLog, int64, error) {
	var logs []entity.StockLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockLog{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Product").
		Order("created_at DESC").
		Find(&logs).Error

	return logs, total, err
}
