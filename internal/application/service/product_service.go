package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// ProductService handles catalog operations. Reads are open to any
// authenticated user; writes require an admin principal.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	stockLogRepo repository.StockLogRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	stockLogRepo repository.StockLogRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		stockLogRepo: stockLogRepo,
	}
}

// CreateProductInput represents the product creation input
type CreateProductInput struct {
	Code         string
	Barcode      *string
	Name         string
	Description  *string
	PriceGeneral int64
	PriceSpecial int64
	Stock        int
	CategoryID   uuid.UUID
}

func validatePrices(general, special int64) error {
	if general < 0 || special < 0 {
		return apperror.NewValidationError("prices cannot be negative")
	}
	if special > general {
		return apperror.NewValidationError("special price cannot exceed general price")
	}
	return nil
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, principal entity.Principal, input *CreateProductInput) (*entity.Product, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if input.Code == "" || input.Name == "" {
		return nil, apperror.NewValidationError("code and name are required")
	}
	if err := validatePrices(input.PriceGeneral, input.PriceSpecial); err != nil {
		return nil, err
	}
	if input.Stock < 0 {
		return nil, apperror.NewValidationError("stock cannot be negative")
	}

	existing, err := s.productRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("product code already in use")
	}
	if input.Barcode != nil && *input.Barcode != "" {
		existing, err = s.productRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("barcode already in use")
		}
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("category")
	}

	product := &entity.Product{
		Code:         input.Code,
		Barcode:      input.Barcode,
		Name:         input.Name,
		Description:  input.Description,
		PriceGeneral: input.PriceGeneral,
		PriceSpecial: input.PriceSpecial,
		Stock:        input.Stock,
		CategoryID:   input.CategoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns a product by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("product")
	}
	return product, nil
}

// Lookup finds a product by code or barcode. Exactly one of the two must be
// provided.
func (s *ProductService) Lookup(ctx context.Context, code, barcode string) (*entity.Product, error) {
	if (code == "") == (barcode == "") {
		return nil, apperror.NewValidationError("provide exactly one of code or barcode")
	}

	var product *entity.Product
	var err error
	if code != "" {
		product, err = s.productRepo.GetByCode(ctx, code)
	} else {
		product, err = s.productRepo.GetByBarcode(ctx, barcode)
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("product")
	}
	return product, nil
}

// List returns a filtered page of products
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) (*pagination.Result[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.Default()
	}
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(products, pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateProductInput represents the fields that may change on a product
type UpdateProductInput struct {
	Barcode      *string
	Name         *string
	Description  *string
	PriceGeneral *int64
	PriceSpecial *int64
	CategoryID   *uuid.UUID
}

// Update applies partial changes to a product. Stock is not updatable here;
// it only moves through AdjustStock and checkout.
func (s *ProductService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("product")
	}

	if input.Barcode != nil && *input.Barcode != "" {
		existing, err := s.productRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("barcode already in use")
		}
		product.Barcode = input.Barcode
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}

	general := product.PriceGeneral
	special := product.PriceSpecial
	if input.PriceGeneral != nil {
		general = *input.PriceGeneral
	}
	if input.PriceSpecial != nil {
		special = *input.PriceSpecial
	}
	if err := validatePrices(general, special); err != nil {
		return nil, err
	}
	product.PriceGeneral = general
	product.PriceSpecial = special

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("category")
		}
		product.CategoryID = *input.CategoryID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete soft-deletes a product. Completed transactions keep their line
// items and price snapshots.
func (s *ProductService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("product")
	}
	return s.productRepo.Delete(ctx, id)
}

// AdjustStock applies a signed stock correction with an audit reason
func (s *ProductService) AdjustStock(ctx context.Context, principal entity.Principal, id uuid.UUID, delta int, reason string) (*entity.Product, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if delta == 0 {
		return nil, apperror.NewValidationError("stock delta cannot be zero")
	}
	if reason == "" {
		reason = "manual adjustment"
	}

	product, err := s.productRepo.AdjustStock(ctx, id, delta, reason)
	if err != nil {
		var negErr *repository.NegativeStockError
		if errors.As(err, &negErr) {
			return nil, apperror.NewNegativeStockError(negErr.ProductName, negErr.Current, negErr.Delta)
		}
		return nil, err
	}
	return product, nil
}

// GetLowStock returns products whose stock is below the threshold
func (s *ProductService) GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	if threshold <= 0 {
		threshold = entity.DefaultLowStockThreshold
	}
	return s.productRepo.GetLowStock(ctx, threshold)
}

// ListStockLogs returns the stock audit trail, optionally per product
func (s *ProductService) ListStockLogs(ctx context.Context, params *repository.StockLogFilterParams) (*pagination.Result[entity.StockLog], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.Default()
	}
	logs, total, err := s.stockLogRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(logs, pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
