package config

import (
	"strings"
	"testing"
	"time"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	env := FromLookup(lookupFrom(nil))

	if env.DBHost != "localhost" || env.DBPort != 3306 || env.DBUser != "root" || env.DBName != "hrgsms_db" {
		t.Fatalf("unexpected db defaults: %+v", env)
	}
	if env.JWTSecret != "change-me" || env.JWTAlgorithm != "HS256" || env.JWTExpMinutes != 1440 {
		t.Fatalf("unexpected jwt defaults: %+v", env)
	}
	if env.AppAddr() != "127.0.0.1:8000" {
		t.Fatalf("AppAddr = %q", env.AppAddr())
	}
	if env.FrontendURL != "http://localhost:5173" {
		t.Fatalf("FrontendURL = %q", env.FrontendURL)
	}
	if env.JWTExpiry() != 24*time.Hour {
		t.Fatalf("JWTExpiry = %s", env.JWTExpiry())
	}
	if env.RedisAddr != "" || env.RabbitURL != "" {
		t.Fatalf("optional integrations should default to disabled")
	}
}

func TestFromLookupOverrides(t *testing.T) {
	env := FromLookup(lookupFrom(map[string]string{
		"DB_HOST":                    "db.internal",
		"DB_PORT":                    "3307",
		"JWT_ALGORITHM":              "hs512",
		"API_PORT":                   "not-a-number",
		"RATE_LIMIT_CAPACITY":        "0",
		"RATE_LIMIT_REFILL_INTERVAL": "2s",
		"RATE_LIMIT_TTL":             "1s",
	}))

	if env.DBHost != "db.internal" || env.DBPort != 3307 {
		t.Fatalf("db override not applied: %+v", env)
	}
	if env.JWTAlgorithm != "HS512" {
		t.Fatalf("algorithm should be upper-cased, got %q", env.JWTAlgorithm)
	}
	if env.APIPort != 8000 {
		t.Fatalf("invalid int should fall back to default, got %d", env.APIPort)
	}
	if env.RateLimit.Capacity != 1 {
		t.Fatalf("capacity should be clamped to 1, got %d", env.RateLimit.Capacity)
	}
	if env.RateLimit.TTL != 10*time.Second {
		t.Fatalf("ttl should be raised to 5 refill intervals, got %s", env.RateLimit.TTL)
	}
}

func TestDSN(t *testing.T) {
	env := FromLookup(lookupFrom(map[string]string{"DB_PASSWORD": "s3cret"}))
	dsn := DSN(env)

	for _, want := range []string{"root:s3cret@tcp(localhost:3306)/hrgsms_db", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q missing %q", dsn, want)
		}
	}
}
