package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

func TestAddSameProductTwiceMergesQuantity(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.addToCart(t, f.cashier, "KOPI-01", 2, enum.TierGeneral)
	f.addToCart(t, f.cashier, "KOPI-01", 3, enum.TierGeneral)

	view, err := f.cart.View(ctx, f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected a single merged entry, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", view.Items[0].Quantity)
	}
}

func TestCartTotalUsesTierPrices(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.addToCart(t, f.cashier, "KOPI-01", 2, enum.TierSpecial)
	f.addToCart(t, f.cashier, "AIR-01", 1, enum.TierGeneral)

	view, err := f.cart.View(ctx, f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	want := int64(2*12000 + 1*4000)
	if view.Total != want {
		t.Fatalf("expected total %d, got %d", want, view.Total)
	}
}

func TestUpdateQuantityToZeroRemovesEntry(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.addToCart(t, f.cashier, "KOPI-01", 2, enum.TierGeneral)
	view, err := f.cart.View(ctx, f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}

	item, err := f.cart.UpdateQuantity(ctx, f.cashier, view.Items[0].ID, 0)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if item != nil {
		t.Fatalf("expected entry removal, got %+v", item)
	}

	view, err = f.cart.View(ctx, f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(view.Items))
	}
}

func TestCartsAreScopedPerUser(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.addToCart(t, f.cashier, "KOPI-01", 1, enum.TierGeneral)

	otherView, err := f.cart.View(ctx, f.admin)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(otherView.Items) != 0 {
		t.Fatalf("expected other user's cart to be empty, got %d items", len(otherView.Items))
	}

	// A foreign item id cannot be removed through another user's cart.
	mine, err := f.cart.View(ctx, f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	err = f.cart.RemoveItem(ctx, f.admin, mine.Items[0].ID)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for foreign cart item, got %v", err)
	}
}

func TestClearEmptyCartIsNoOp(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	if err := f.cart.Clear(ctx, f.cashier); err != nil {
		t.Fatalf("clearing an empty cart should succeed, got %v", err)
	}
	if err := f.cart.Clear(ctx, f.cashier); err != nil {
		t.Fatalf("clearing twice should still succeed, got %v", err)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.cart.AddItem(context.Background(), f.cashier, &AddItemInput{
		ProductID: uuid.New(),
		Quantity:  1,
	})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}
}

func TestAddNonPositiveQuantity(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.cart.AddItem(context.Background(), f.cashier, &AddItemInput{
		ProductID: f.catalog["KOPI-01"],
		Quantity:  0,
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
}

func TestAddItemByProductCode(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	item, err := f.cart.AddItem(ctx, f.cashier, &AddItemInput{
		ProductCode: "KOPI-01",
		Quantity:    2,
	})
	if err != nil {
		t.Fatalf("add by code failed: %v", err)
	}
	if item.ProductID != f.catalog["KOPI-01"] {
		t.Fatalf("expected code to resolve to the catalog product")
	}

	if _, err := f.cart.AddItem(ctx, f.cashier, &AddItemInput{
		ProductCode: "NO-SUCH",
		Quantity:    1,
	}); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for unknown code, got %v", err)
	}

	if _, err := f.cart.AddItem(ctx, f.cashier, &AddItemInput{Quantity: 1}); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error without id or code, got %v", err)
	}
}

func TestCartViewFlagsUnavailableItems(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	// TEH-01 has stock 5; carting 6 is allowed but flagged.
	f.addToCart(t, f.cashier, "TEH-01", 6, enum.TierGeneral)
	f.addToCart(t, f.cashier, "AIR-01", 1, enum.TierGeneral)

	view, err := f.cart.View(ctx, f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(view.Unavailable) != 1 {
		t.Fatalf("expected one flagged entry, got %d", len(view.Unavailable))
	}
	flagged := view.Unavailable[0]
	if flagged.Product != "TEH-01" || flagged.Requested != 6 || flagged.Available != 5 {
		t.Fatalf("unexpected flag %+v", flagged)
	}
	// The advisory total still covers every entry.
	if view.Total != 6*8000+4000 {
		t.Fatalf("expected total %d, got %d", 6*8000+4000, view.Total)
	}
}
