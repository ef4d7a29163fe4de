package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

// CategoryService handles product category operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create adds a category
func (s *CategoryService) Create(ctx context.Context, principal entity.Principal, name string, description *string) (*entity.Category, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperror.NewValidationError("name is required")
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("category name already in use")
	}

	category := &entity.Category{Name: name, Description: description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get returns a category by id
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("category")
	}
	return category, nil
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Update renames a category
func (s *CategoryService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, name string, description *string) (*entity.Category, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("category")
	}

	if name != "" && name != category.Name {
		existing, err := s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, apperror.NewConflictError("category name already in use")
		}
		category.Name = name
	}
	if description != nil {
		category.Description = description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes a category
func (s *CategoryService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
