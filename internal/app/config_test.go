package app

import (
	"testing"
	"time"

	"github.com/shoply/admin-backend/internal/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVICE_NAME", "ENVIRONMENT", "SERVICE_VERSION", "CLIENT_ORIGIN",
		"REDIS_ADDR", "JWT_SECRET_KEY", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "SUMMARY_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig(nil)

	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.ServiceName != "shoply-admin" {
		t.Fatalf("unexpected default service name: %q", cfg.ServiceName)
	}
	if cfg.JWTSecretKey != "defaultsecret" {
		t.Fatalf("unexpected default jwt secret: %q", cfg.JWTSecretKey)
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Fatalf("unexpected default access ttl: %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 24*time.Hour {
		t.Fatalf("unexpected default refresh ttl: %s", cfg.RefreshTokenTTL)
	}
	if cfg.SummaryCacheTTL != time.Minute {
		t.Fatalf("unexpected default cache ttl: %s", cfg.SummaryCacheTTL)
	}
	if cfg.RedisAddr != "" || cfg.ClientOrigin != "" {
		t.Fatalf("expected optional addrs to default empty: %+v", cfg)
	}
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CLIENT_ORIGIN", "https://admin.shoply.example")
	t.Setenv("REDIS_ADDR", "localhost:6390")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("ACCESS_TOKEN_TTL", "120")
	t.Setenv("REFRESH_TOKEN_TTL", "3600")
	t.Setenv("SUMMARY_CACHE_TTL", "30")

	cfg := LoadConfig(newTestLogger(t))

	if cfg.Port != "9090" {
		t.Fatalf("port override not applied: %q", cfg.Port)
	}
	if cfg.ClientOrigin != "https://admin.shoply.example" {
		t.Fatalf("client origin override not applied: %q", cfg.ClientOrigin)
	}
	if cfg.RedisAddr != "localhost:6390" {
		t.Fatalf("redis addr override not applied: %q", cfg.RedisAddr)
	}
	if cfg.JWTSecretKey != "supersecret" {
		t.Fatalf("jwt secret override not applied")
	}
	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("access ttl override not applied: %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != time.Hour {
		t.Fatalf("refresh ttl override not applied: %s", cfg.RefreshTokenTTL)
	}
	if cfg.SummaryCacheTTL != 30*time.Second {
		t.Fatalf("cache ttl override not applied: %s", cfg.SummaryCacheTTL)
	}
}

func TestWireClientsWithoutRedisAddrDisablesCache(t *testing.T) {
	clients := wireClients(newTestLogger(t), Config{})
	if clients.Redis != nil || clients.SummaryCache != nil {
		t.Fatalf("expected empty clients without REDIS_ADDR: %+v", clients)
	}
}
