package service

import (
	"context"
	"testing"
	"time"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/infrastructure/repository/memory"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/utils"
)

func newAuthService() *AuthService {
	store := memory.NewStore()
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(memory.NewUserRepository(store), jwtManager)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	user, err := auth.Register(ctx, &RegisterInput{
		FullName: "Kasir Satu",
		Username: "kasir1",
		Email:    "kasir1@example.com",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != enum.RoleCashier {
		t.Fatalf("expected default role cashier, got %v", user.Role)
	}
	if user.Password == "rahasia123" {
		t.Fatalf("expected password to be hashed")
	}

	out, err := auth.Login(ctx, &LoginInput{Username: "kasir1", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", out)
	}
	if out.User.ID != user.ID {
		t.Fatalf("expected login to return the registered user")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	if _, err := auth.Register(ctx, &RegisterInput{Username: "kasir1", Password: "rahasia123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := auth.Login(ctx, &LoginInput{Username: "kasir1", Password: "salah"})
	if !apperror.IsKind(err, apperror.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	auth := newAuthService()

	_, err := auth.Login(context.Background(), &LoginInput{Username: "ghost", Password: "x"})
	if !apperror.IsKind(err, apperror.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	if _, err := auth.Register(ctx, &RegisterInput{Username: "kasir1", Password: "rahasia123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := auth.Register(ctx, &RegisterInput{Username: "kasir1", Password: "lain"})
	if !apperror.IsKind(err, apperror.KindAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	auth := newAuthService()

	_, err := auth.Register(context.Background(), &RegisterInput{
		Username: "kasir1",
		Password: "rahasia123",
		Role:     enum.Role("superuser"),
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRefreshTokenIssuesNewAccessToken(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	if _, err := auth.Register(ctx, &RegisterInput{Username: "kasir1", Password: "rahasia123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	login, err := auth.Login(ctx, &LoginInput{Username: "kasir1", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	refreshed, err := auth.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatalf("expected a new access token")
	}
	if refreshed.User.Username != "kasir1" {
		t.Fatalf("expected refreshed user kasir1, got %s", refreshed.User.Username)
	}
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	auth := newAuthService()

	_, err := auth.RefreshToken(context.Background(), "not-a-token")
	if !apperror.IsKind(err, apperror.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	if _, err := auth.Register(ctx, &RegisterInput{Username: "kasir1", Password: "rahasia123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	login, err := auth.Login(ctx, &LoginInput{Username: "kasir1", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, err = auth.RefreshToken(ctx, login.AccessToken)
	if !apperror.IsKind(err, apperror.KindUnauthorized) {
		t.Fatalf("expected unauthorized for access token reuse, got %v", err)
	}
}
