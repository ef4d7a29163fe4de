package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

func TestCheckoutCreatesSuccessNotification(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	// AIR-01 has plenty of stock, so only the success notification fires.
	f.addToCart(t, f.cashier, "AIR-01", 2, enum.TierGeneral)
	transaction, err := f.checkout.Checkout(ctx, f.cashier, &CheckoutInput{CustomerName: "Budi"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	result, err := f.notifications.List(ctx, f.cashier, &repository.NotificationFilterParams{})
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(result.Items))
	}
	notification := result.Items[0]
	if notification.Type != enum.NotificationTransactionSuccess {
		t.Fatalf("expected type %q, got %q", enum.NotificationTransactionSuccess, notification.Type)
	}
	if notification.IsRead {
		t.Fatal("new notification should be unread")
	}
	if !strings.Contains(notification.Message, transaction.ID.String()) {
		t.Fatalf("message %q should reference the transaction", notification.Message)
	}
}

func TestCheckoutCreatesLowStockNotification(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	// Selling two units of KOPI-01 drops it from 10 to 8, below the
	// low-stock threshold.
	f.addToCart(t, f.cashier, "KOPI-01", 2, enum.TierGeneral)
	if _, err := f.checkout.Checkout(ctx, f.cashier, &CheckoutInput{CustomerName: "Budi"}); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	result, err := f.notifications.List(ctx, f.cashier, &repository.NotificationFilterParams{})
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected success and low-stock notifications, got %d", len(result.Items))
	}

	var found bool
	for _, notification := range result.Items {
		if notification.Type == enum.NotificationStockLow {
			found = true
			if !strings.Contains(notification.Message, "KOPI-01") || !strings.Contains(notification.Message, "8") {
				t.Fatalf("unexpected low-stock message: %q", notification.Message)
			}
		}
	}
	if !found {
		t.Fatal("expected a low-stock notification")
	}
}

func TestMarkReadAndUnreadFilter(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.addToCart(t, f.cashier, "AIR-01", 1, enum.TierGeneral)
	if _, err := f.checkout.Checkout(ctx, f.cashier, &CheckoutInput{CustomerName: "Budi"}); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	result, err := f.notifications.List(ctx, f.cashier, &repository.NotificationFilterParams{})
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(result.Items))
	}

	marked, err := f.notifications.MarkRead(ctx, f.cashier, result.Items[0].ID)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if !marked.IsRead {
		t.Fatal("expected notification to be read")
	}

	unread, err := f.notifications.List(ctx, f.cashier, &repository.NotificationFilterParams{UnreadOnly: true})
	if err != nil {
		t.Fatalf("list unread failed: %v", err)
	}
	if len(unread.Items) != 0 {
		t.Fatalf("expected no unread notifications, got %d", len(unread.Items))
	}
}

func TestMarkReadIsRecipientScoped(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.addToCart(t, f.cashier, "AIR-01", 1, enum.TierGeneral)
	if _, err := f.checkout.Checkout(ctx, f.cashier, &CheckoutInput{CustomerName: "Budi"}); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	result, err := f.notifications.List(ctx, f.cashier, &repository.NotificationFilterParams{})
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}

	// Another user cannot see or mark the cashier's notification.
	if _, err := f.notifications.MarkRead(ctx, f.admin, result.Items[0].ID); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for foreign notification, got %v", err)
	}

	foreign, err := f.notifications.List(ctx, f.admin, &repository.NotificationFilterParams{})
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(foreign.Items) != 0 {
		t.Fatalf("expected empty list for other recipient, got %d", len(foreign.Items))
	}

	if _, err := f.notifications.MarkRead(ctx, f.cashier, uuid.New()); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for unknown ID, got %v", err)
	}
}

func TestMarkAllReadReturnsUpdatedCount(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		f.addToCart(t, f.cashier, "AIR-01", 1, enum.TierGeneral)
		if _, err := f.checkout.Checkout(ctx, f.cashier, &CheckoutInput{CustomerName: "Budi"}); err != nil {
			t.Fatalf("checkout failed: %v", err)
		}
	}

	updated, err := f.notifications.MarkAllRead(ctx, f.cashier)
	if err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	if updated != 3 {
		t.Fatalf("expected 3 updated, got %d", updated)
	}

	// A second pass has nothing left to flag.
	updated, err = f.notifications.MarkAllRead(ctx, f.cashier)
	if err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	if updated != 0 {
		t.Fatalf("expected 0 updated, got %d", updated)
	}
}
