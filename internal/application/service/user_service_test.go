package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/infrastructure/repository/memory"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

func newUserFixture(t *testing.T) (*UserService, repository.UserRepository, entity.Principal) {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewUserRepository(store)

	admin := &entity.User{Username: "admin", Role: enum.RoleAdmin}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	principal := entity.Principal{ID: admin.ID, Username: admin.Username, Role: admin.Role}
	return NewUserService(repo), repo, principal
}

func TestUserListRequiresAdmin(t *testing.T) {
	users, _, _ := newUserFixture(t)

	cashier := entity.Principal{ID: uuid.New(), Role: enum.RoleCashier}
	_, err := users.List(context.Background(), cashier, pagination.Default())
	if !apperror.IsKind(err, apperror.KindForbidden) {
		t.Fatalf("expected forbidden for cashier, got %v", err)
	}
}

func TestUserUpdateRole(t *testing.T) {
	users, repo, admin := newUserFixture(t)
	ctx := context.Background()

	cashier := &entity.User{Username: "kasir", Role: enum.RoleCashier}
	if err := repo.Create(ctx, cashier); err != nil {
		t.Fatalf("seed cashier failed: %v", err)
	}

	newRole := enum.RoleAdmin
	updated, err := users.Update(ctx, admin, cashier.ID, &UpdateUserInput{Role: &newRole})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != enum.RoleAdmin {
		t.Fatalf("expected promoted role, got %v", updated.Role)
	}

	badRole := enum.Role("superuser")
	if _, err := users.Update(ctx, admin, cashier.ID, &UpdateUserInput{Role: &badRole}); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for bad role, got %v", err)
	}
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	users, _, admin := newUserFixture(t)

	err := users.Delete(context.Background(), admin, admin.ID)
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected self-delete rejection, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	users, repo, admin := newUserFixture(t)
	ctx := context.Background()

	cashier := &entity.User{Username: "kasir", Role: enum.RoleCashier}
	if err := repo.Create(ctx, cashier); err != nil {
		t.Fatalf("seed cashier failed: %v", err)
	}

	if err := users.Delete(ctx, admin, cashier.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := users.Get(ctx, admin, cashier.ID); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected deleted user to be gone, got %v", err)
	}
}
