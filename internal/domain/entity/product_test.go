package entity

import (
	"testing"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

func TestTierPrice(t *testing.T) {
	product := &Product{PriceGeneral: 15000, PriceSpecial: 12000}

	if got := product.TierPrice(enum.TierGeneral); got != 15000 {
		t.Fatalf("expected general price 15000, got %d", got)
	}
	if got := product.TierPrice(enum.TierSpecial); got != 12000 {
		t.Fatalf("expected special price 12000, got %d", got)
	}
	// Unknown tiers fall back to the general price.
	if got := product.TierPrice(enum.PriceTier("wholesale")); got != 15000 {
		t.Fatalf("expected fallback to general, got %d", got)
	}
}

func TestIsLowStock(t *testing.T) {
	product := &Product{Stock: 5}

	if !product.IsLowStock(10) {
		t.Fatalf("expected stock 5 to be low under threshold 10")
	}
	if product.IsLowStock(5) {
		t.Fatalf("stock at the threshold is not low")
	}
	if product.IsLowStock(3) {
		t.Fatalf("expected stock 5 not low under threshold 3")
	}
}

func TestCartItemSubtotal(t *testing.T) {
	item := &CartItem{
		Quantity: 3,
		Tier:     enum.TierSpecial,
		Product:  Product{PriceGeneral: 15000, PriceSpecial: 12000},
	}
	if got := item.Subtotal(); got != 36000 {
		t.Fatalf("expected subtotal 36000, got %d", got)
	}
}
