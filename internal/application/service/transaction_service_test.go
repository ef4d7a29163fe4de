package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/infrastructure/repository/memory"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

type transactionFixture struct {
	*checkoutFixture
	transactions *TransactionService
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	t.Helper()
	base := newCheckoutFixture(t)
	return &transactionFixture{
		checkoutFixture: base,
		transactions:    NewTransactionService(memory.NewTransactionRepository(base.store)),
	}
}

// seedSale backfills a completed sale at a given time, bypassing checkout.
func (f *transactionFixture) seedSale(userID uuid.UUID, total int64, at time.Time) uuid.UUID {
	id := uuid.New()
	f.store.SeedTransaction(entity.Transaction{
		ID:            id,
		UserID:        userID,
		Total:         total,
		PaymentMethod: "cash",
		CustomerName:  "Budi",
		CreatedAt:     at,
	})
	return id
}

func TestGetTransactionOwnership(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	f.addToCart(t, f.cashier, "AIR-01", 2, enum.TierGeneral)
	sale, err := f.checkout.Checkout(ctx, f.cashier, &CheckoutInput{CustomerName: "Budi"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	got, err := f.transactions.Get(ctx, f.cashier, sale.ID)
	if err != nil {
		t.Fatalf("owner should read own transaction: %v", err)
	}
	if got.Total != sale.Total {
		t.Fatalf("expected total %d, got %d", sale.Total, got.Total)
	}

	// Admins can read any sale; another cashier cannot.
	if _, err := f.transactions.Get(ctx, f.admin, sale.ID); err != nil {
		t.Fatalf("admin should read any transaction: %v", err)
	}
	other := entity.Principal{ID: uuid.New(), Username: "kasir2", Role: enum.RoleCashier}
	if _, err := f.transactions.Get(ctx, other, sale.ID); !apperror.IsKind(err, apperror.KindForbidden) {
		t.Fatalf("expected forbidden for foreign cashier, got %v", err)
	}

	if _, err := f.transactions.Get(ctx, f.admin, uuid.New()); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for unknown ID, got %v", err)
	}
}

func TestListTransactionsScopedByRole(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	noon := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	f.seedSale(f.cashier.ID, 10000, noon)
	f.seedSale(f.cashier.ID, 20000, noon.Add(time.Hour))
	f.seedSale(f.admin.ID, 99000, noon.Add(2*time.Hour))

	mine, err := f.transactions.List(ctx, f.cashier, &repository.TransactionFilterParams{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine.Items) != 2 {
		t.Fatalf("cashier should see only own sales, got %d", len(mine.Items))
	}
	for _, sale := range mine.Items {
		if sale.UserID != f.cashier.ID {
			t.Fatalf("unexpected sale for user %s", sale.UserID)
		}
	}

	all, err := f.transactions.List(ctx, f.admin, &repository.TransactionFilterParams{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("admin should see every sale, got %d", len(all.Items))
	}
	if all.Pagination.Total != 3 {
		t.Fatalf("expected total 3, got %d", all.Pagination.Total)
	}
}

func TestListTransactionsDateFilter(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	noon := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	f.seedSale(f.cashier.ID, 10000, noon.AddDate(0, 0, -5))
	inWindow := f.seedSale(f.cashier.ID, 20000, noon)
	f.seedSale(f.cashier.ID, 30000, noon.AddDate(0, 0, 5))

	start := noon.AddDate(0, 0, -1)
	end := noon.AddDate(0, 0, 1)
	result, err := f.transactions.List(ctx, f.admin, &repository.TransactionFilterParams{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 sale in window, got %d", len(result.Items))
	}
	if result.Items[0].ID != inWindow {
		t.Fatalf("expected sale %s, got %s", inWindow, result.Items[0].ID)
	}
}

func TestListLatestClampsLimitAndOrders(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	noon := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	for i := 0; i < 15; i++ {
		f.seedSale(f.cashier.ID, int64(1000*(i+1)), noon.Add(time.Duration(i)*time.Minute))
	}

	latest, err := f.transactions.ListLatest(ctx, f.admin, 5)
	if err != nil {
		t.Fatalf("list latest failed: %v", err)
	}
	if len(latest) != 5 {
		t.Fatalf("expected 5 sales, got %d", len(latest))
	}
	for i := 1; i < len(latest); i++ {
		if latest[i].CreatedAt.After(latest[i-1].CreatedAt) {
			t.Fatal("expected newest-first ordering")
		}
	}
	if latest[0].Total != 15000 {
		t.Fatalf("expected the most recent sale first, got total %d", latest[0].Total)
	}

	// Out-of-range limits fall back to the default of 10.
	defaulted, err := f.transactions.ListLatest(ctx, f.admin, 0)
	if err != nil {
		t.Fatalf("list latest failed: %v", err)
	}
	if len(defaulted) != 10 {
		t.Fatalf("expected default limit 10, got %d", len(defaulted))
	}
	defaulted, err = f.transactions.ListLatest(ctx, f.admin, 500)
	if err != nil {
		t.Fatalf("list latest failed: %v", err)
	}
	if len(defaulted) != 10 {
		t.Fatalf("expected default limit 10, got %d", len(defaulted))
	}
}

func TestGetTodaySummary(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := context.Background()

	now := time.Now()
	todayNoon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	f.seedSale(f.cashier.ID, 10000, todayNoon)
	f.seedSale(f.cashier.ID, 25000, todayNoon.Add(time.Minute))
	f.seedSale(f.admin.ID, 40000, todayNoon.Add(2*time.Minute))
	f.seedSale(f.cashier.ID, 99000, todayNoon.AddDate(0, 0, -1))

	summary, err := f.transactions.GetTodaySummary(ctx, f.cashier)
	if err != nil {
		t.Fatalf("today summary failed: %v", err)
	}
	if summary.Count != 2 {
		t.Fatalf("expected 2 sales today for cashier, got %d", summary.Count)
	}
	if summary.Revenue != 35000 {
		t.Fatalf("expected revenue 35000, got %d", summary.Revenue)
	}

	adminSummary, err := f.transactions.GetTodaySummary(ctx, f.admin)
	if err != nil {
		t.Fatalf("today summary failed: %v", err)
	}
	if adminSummary.Count != 3 || adminSummary.Revenue != 75000 {
		t.Fatalf("expected admin to see 3 sales totalling 75000, got %d/%d", adminSummary.Count, adminSummary.Revenue)
	}
}
