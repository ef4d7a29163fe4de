package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/cache"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

// ReportService aggregates committed transactions into revenue and sales
// reports. Results are cached briefly; reports tolerate slightly stale
// data and never see in-flight checkouts.
type ReportService struct {
	reportRepo repository.ReportRepository
	cache      cache.ReportCache
	cacheTTL   time.Duration
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, reportCache cache.ReportCache, cacheTTL time.Duration) *ReportService {
	if reportCache == nil {
		reportCache = cache.NoopReportCache{}
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ReportService{
		reportRepo: reportRepo,
		cache:      reportCache,
		cacheTTL:   cacheTTL,
	}
}

// RevenuePoint is one day's revenue in a revenue report.
type RevenuePoint struct {
	Date    string `json:"date"`
	Count   int64  `json:"count"`
	Revenue int64  `json:"revenue"`
}

// SalesBucket is one aggregation bucket in a sales report.
type SalesBucket struct {
	Label   string `json:"label"`
	Start   string `json:"start"`
	Count   int64  `json:"count"`
	Revenue int64  `json:"revenue"`
}

// BucketTransactions groups transactions into period buckets between from
// and now. It is pure: same inputs, same buckets, no clock or store access.
// Buckets with no transactions are still emitted so charts have no gaps.
func BucketTransactions(transactions []entity.Transaction, period enum.ReportPeriod, from, to time.Time) []SalesBucket {
	type key struct {
		label string
		start time.Time
	}

	bucketOf := func(t time.Time) key {
		switch period {
		case enum.PeriodWeek:
			year, week := t.ISOWeek()
			// Normalize to the Monday of the ISO week.
			start := t
			for start.Weekday() != time.Monday {
				start = start.AddDate(0, 0, -1)
			}
			start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, t.Location())
			return key{label: fmt.Sprintf("%d-W%02d", year, week), start: start}
		case enum.PeriodMonth:
			start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
			return key{label: t.Format("2006-01"), start: start}
		case enum.PeriodYear:
			start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
			return key{label: t.Format("2006"), start: start}
		default:
			start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
			return key{label: t.Format("2006-01-02"), start: start}
		}
	}

	advance := func(t time.Time) time.Time {
		switch period {
		case enum.PeriodWeek:
			return t.AddDate(0, 0, 7)
		case enum.PeriodMonth:
			return t.AddDate(0, 1, 0)
		case enum.PeriodYear:
			return t.AddDate(1, 0, 0)
		default:
			return t.AddDate(0, 0, 1)
		}
	}

	var order []key
	known := make(map[string]struct{})
	for k := bucketOf(from); !k.start.After(to); k = bucketOf(advance(k.start)) {
		order = append(order, k)
		known[k.label] = struct{}{}
	}

	counts := make(map[string]*SalesBucket, len(order))
	for i := range transactions {
		k := bucketOf(transactions[i].CreatedAt)
		if _, ok := known[k.label]; !ok {
			continue
		}
		bucket := counts[k.label]
		if bucket == nil {
			bucket = &SalesBucket{}
			counts[k.label] = bucket
		}
		bucket.Count++
		bucket.Revenue += transactions[i].Total
	}

	buckets := make([]SalesBucket, 0, len(order))
	for _, k := range order {
		bucket := SalesBucket{Label: k.label, Start: k.start.Format(time.RFC3339)}
		if counted := counts[k.label]; counted != nil {
			bucket.Count = counted.Count
			bucket.Revenue = counted.Revenue
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// Revenue returns one point per day for the trailing window, oldest first.
func (s *ReportService) Revenue(ctx context.Context, days int) ([]RevenuePoint, error) {
	if days <= 0 {
		days = 7
	}
	if days > 366 {
		return nil, apperror.NewValidationError("days must be at most 366")
	}

	cacheKey := fmt.Sprintf("report:revenue:%d", days)
	if cached, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
		var points []RevenuePoint
		if err := json.Unmarshal(cached, &points); err == nil {
			return points, nil
		}
	}

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	from := to.AddDate(0, 0, -days)

	transactions, err := s.reportRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := BucketTransactions(transactions, enum.PeriodDay, from, to.Add(-time.Nanosecond))
	points := make([]RevenuePoint, 0, len(buckets))
	for _, bucket := range buckets {
		points = append(points, RevenuePoint{
			Date:    bucket.Label,
			Count:   bucket.Count,
			Revenue: bucket.Revenue,
		})
	}

	s.storeCache(ctx, cacheKey, points)
	return points, nil
}

// Sales returns period buckets for the trailing window, oldest first.
func (s *ReportService) Sales(ctx context.Context, period enum.ReportPeriod, days int) ([]SalesBucket, error) {
	if period == "" {
		period = enum.PeriodDay
	}
	if !period.Valid() {
		return nil, apperror.NewValidationError("invalid report period")
	}
	if days <= 0 {
		days = defaultWindowDays(period)
	}
	if days > 1830 {
		return nil, apperror.NewValidationError("days must be at most 1830")
	}

	cacheKey := fmt.Sprintf("report:sales:%s:%d", period, days)
	if cached, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
		var buckets []SalesBucket
		if err := json.Unmarshal(cached, &buckets); err == nil {
			return buckets, nil
		}
	}

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	from := to.AddDate(0, 0, -days)

	transactions, err := s.reportRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := BucketTransactions(transactions, period, from, to.Add(-time.Nanosecond))
	s.storeCache(ctx, cacheKey, buckets)
	return buckets, nil
}

func defaultWindowDays(period enum.ReportPeriod) int {
	switch period {
	case enum.PeriodWeek:
		return 28
	case enum.PeriodMonth:
		return 365
	case enum.PeriodYear:
		return 1825
	default:
		return 7
	}
}

func (s *ReportService) storeCache(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache report %s: %v", key, err)
	}
}
