package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "kasir1", enum.RoleCashier)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != userID || claims.Username != "kasir1" || claims.Role != enum.RoleCashier {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "kasir1", enum.RoleCashier)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	issuer := NewJWTManager("secret-a", 15*time.Minute, 24*time.Hour)
	verifier := NewJWTManager("secret-b", 15*time.Minute, 24*time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.New(), "kasir1", enum.RoleCashier)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected foreign-secret token to be rejected")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	got, err := manager.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got != userID {
		t.Fatalf("expected user %s, got %s", userID, got)
	}
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	manager := NewJWTManager("secret", 15*time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "kasir1", enum.RoleCashier)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := manager.ValidateRefreshToken(token); err == nil {
		t.Fatalf("expected access token to fail refresh validation")
	}
}
