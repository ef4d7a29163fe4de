package repository

import (
	"context"
	"errors"
	"time"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Find(&transactions).Error

	return transactions, total, err
}

func (r *transactionRepository) ListLatest(ctx context.Context, userID *uuid.UUID, limit int) ([]entity.Transaction, error) {
	var transactions []entity.Transaction

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	err := query.Limit(limit).
		Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepository) GetTodaySummary(ctx context.Context, userID *uuid.UUID, now time.Time) (*domainRepo.TodaySummary, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	query := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("created_at >= ? AND created_at < ?", start, end)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var summary domainRepo.TodaySummary
	row := query.Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").Row()
	if err := row.Scan(&summary.Count, &summary.Revenue); err != nil {
		return nil, err
	}
	return &summary, nil
}
