package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/utils"
)

// UserService handles user management operations. All operations require an
// admin principal; cashiers manage their own profile through AuthService.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func requireAdmin(principal entity.Principal) error {
	if !principal.IsAdmin() {
		return apperror.ErrForbidden
	}
	return nil
}

// List returns a page of users
func (s *UserService) List(ctx context.Context, principal entity.Principal, params *pagination.Params) (*pagination.Result[entity.User], error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(users, pagination.New(params.Page, params.PerPage, total)), nil
}

// Get returns a single user by id
func (s *UserService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.User, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("user")
	}
	return user, nil
}

// UpdateUserInput represents the fields an admin may change
type UpdateUserInput struct {
	FullName *string
	Email    *string
	Password *string
	Role     *enum.Role
}

// Update applies partial changes to a user
func (s *UserService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("user")
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		existing, err := s.userRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperror.NewConflictError("email already registered")
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.NewValidationError("invalid role")
		}
		user.Role = *input.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes a user. An admin cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if principal.ID == id {
		return apperror.NewValidationError("cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("user")
	}
	return s.userRepo.Delete(ctx, id)
}
