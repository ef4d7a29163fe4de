package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Name != "ems-pramitra-pos" {
		t.Fatalf("unexpected app name %q", cfg.App.Name)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if cfg.Database.Timezone != "Asia/Jakarta" {
		t.Fatalf("unexpected timezone %q", cfg.Database.Timezone)
	}
	if cfg.Redis.ReportTTL != 5*time.Minute {
		t.Fatalf("unexpected report TTL %v", cfg.Redis.ReportTTL)
	}
	if cfg.JWT.ExpiryHours != 24*time.Hour || cfg.JWT.RefreshExpiryHours != 168*time.Hour {
		t.Fatalf("unexpected jwt expiries %v/%v", cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)
	}
	if cfg.RateLimit.Requests != 100 || cfg.RateLimit.Duration != 60 {
		t.Fatalf("unexpected rate limit %d/%d", cfg.RateLimit.Requests, cfg.RateLimit.Duration)
	}
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		Name:     "pos",
		User:     "postgres",
		Password: "secret",
		SSLMode:  "disable",
		Timezone: "Asia/Jakarta",
	}

	want := "host=db user=postgres password=secret dbname=pos port=5432 sslmode=disable TimeZone=Asia/Jakarta"
	if got := db.DSN(); got != want {
		t.Fatalf("unexpected dsn %q", got)
	}
}
