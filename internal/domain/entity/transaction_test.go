package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRecomputeTotalSumsLineSubtotals(t *testing.T) {
	transaction := &Transaction{
		Items: []TransactionItem{
			{Quantity: 2, UnitPrice: 15000},
			{Quantity: 3, UnitPrice: 7000},
		},
	}

	total := transaction.RecomputeTotal()
	if total != 51000 {
		t.Fatalf("expected total 51000, got %d", total)
	}
	if transaction.Total != 51000 {
		t.Fatalf("expected total stored on the transaction, got %d", transaction.Total)
	}
}

func TestRecomputeTotalEmptyItems(t *testing.T) {
	transaction := &Transaction{Total: 999}
	if total := transaction.RecomputeTotal(); total != 0 {
		t.Fatalf("expected zero total with no items, got %d", total)
	}
}

func TestTransactionItemSubtotal(t *testing.T) {
	item := &TransactionItem{Quantity: 4, UnitPrice: 2500}
	if got := item.Subtotal(); got != 10000 {
		t.Fatalf("expected subtotal 10000, got %d", got)
	}
}

func TestInvoiceNumberFormat(t *testing.T) {
	transactionID := uuid.New()
	issuedAt := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	number := InvoiceNumber(transactionID, issuedAt)
	if !strings.HasPrefix(number, "INV-") {
		t.Fatalf("expected INV- prefix, got %s", number)
	}
	if !strings.HasSuffix(number, "-20260828") {
		t.Fatalf("expected date suffix, got %s", number)
	}
	if !strings.Contains(number, transactionID.String()[:8]) {
		t.Fatalf("expected transaction prefix in %s", number)
	}
}
