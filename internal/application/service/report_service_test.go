package service

import (
	"context"
	"testing"
	"time"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/infrastructure/repository/memory"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

func saleAt(at time.Time, total int64) entity.Transaction {
	return entity.Transaction{Total: total, CreatedAt: at}
}

func TestBucketTransactionsFillsDayGaps(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC)

	transactions := []entity.Transaction{
		saleAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), 10000),
		saleAt(time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC), 5000),
		saleAt(time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC), 7000),
	}

	buckets := BucketTransactions(transactions, enum.PeriodDay, from, to)
	if len(buckets) != 5 {
		t.Fatalf("expected 5 day buckets, got %d", len(buckets))
	}

	if buckets[0].Label != "2026-03-01" || buckets[0].Count != 2 || buckets[0].Revenue != 15000 {
		t.Fatalf("unexpected first bucket %+v", buckets[0])
	}
	// Empty days still appear with zero totals.
	for _, i := range []int{1, 2, 4} {
		if buckets[i].Count != 0 || buckets[i].Revenue != 0 {
			t.Fatalf("expected empty bucket %s, got %+v", buckets[i].Label, buckets[i])
		}
	}
	if buckets[3].Label != "2026-03-04" || buckets[3].Revenue != 7000 {
		t.Fatalf("unexpected bucket %+v", buckets[3])
	}
}

func TestBucketTransactionsWeekLabels(t *testing.T) {
	// 2026-01-05 is a Monday, the start of ISO week 2.
	from := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 18, 23, 59, 59, 0, time.UTC)

	transactions := []entity.Transaction{
		saleAt(time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC), 20000),
		saleAt(time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC), 3000),
		saleAt(time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC), 4000),
	}

	buckets := BucketTransactions(transactions, enum.PeriodWeek, from, to)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 week buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "2026-W02" || buckets[0].Revenue != 23000 {
		t.Fatalf("unexpected first week %+v", buckets[0])
	}
	if buckets[1].Label != "2026-W03" || buckets[1].Revenue != 4000 {
		t.Fatalf("unexpected second week %+v", buckets[1])
	}
}

func TestBucketTransactionsMonthLabels(t *testing.T) {
	from := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	transactions := []entity.Transaction{
		saleAt(time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC), 50000),
	}

	buckets := BucketTransactions(transactions, enum.PeriodMonth, from, to)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 month buckets, got %d", len(buckets))
	}
	labels := []string{"2025-11", "2025-12", "2026-01"}
	for i, want := range labels {
		if buckets[i].Label != want {
			t.Fatalf("expected label %s at %d, got %s", want, i, buckets[i].Label)
		}
	}
	if buckets[1].Revenue != 50000 {
		t.Fatalf("expected December revenue 50000, got %d", buckets[1].Revenue)
	}
}

func TestBucketTransactionsIgnoresOutOfWindowSales(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC)

	transactions := []entity.Transaction{
		saleAt(time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC), 1000),
		saleAt(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), 2000),
	}

	buckets := BucketTransactions(transactions, enum.PeriodDay, from, to)
	var total int64
	for _, bucket := range buckets {
		total += bucket.Revenue
	}
	if total != 2000 {
		t.Fatalf("expected only in-window revenue 2000, got %d", total)
	}
}

func TestRevenueWindowAgainstStore(t *testing.T) {
	store := memory.NewStore()
	reports := NewReportService(memory.NewReportRepository(store), nil, 0)

	now := time.Now()
	noon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	store.SeedTransaction(saleAt(noon, 12000))
	store.SeedTransaction(saleAt(noon.AddDate(0, 0, -1), 8000))
	store.SeedTransaction(saleAt(noon.AddDate(0, 0, -30), 99999))

	points, err := reports.Revenue(context.Background(), 7)
	if err != nil {
		t.Fatalf("revenue report failed: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("expected 7 daily points, got %d", len(points))
	}

	var total int64
	for _, point := range points {
		total += point.Revenue
	}
	if total != 20000 {
		t.Fatalf("expected windowed revenue 20000, got %d", total)
	}
	if points[len(points)-1].Revenue != 12000 {
		t.Fatalf("expected today's revenue 12000, got %d", points[len(points)-1].Revenue)
	}
}

func TestSalesRejectsBadInput(t *testing.T) {
	store := memory.NewStore()
	reports := NewReportService(memory.NewReportRepository(store), nil, 0)
	ctx := context.Background()

	if _, err := reports.Sales(ctx, enum.ReportPeriod("hour"), 7); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for bad period, got %v", err)
	}
	if _, err := reports.Sales(ctx, enum.PeriodDay, 5000); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for oversized window, got %v", err)
	}
}
