package config

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env is the process configuration. It is built once in main and passed down;
// nothing reads the environment after startup.
type Env struct {
	AppEnv  string
	GinMode string

	APIHost string
	APIPort int

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret     string
	JWTAlgorithm  string
	JWTExpMinutes int

	FrontendURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RateLimit     RateLimit

	RabbitURL      string
	EventsExchange string
}

// RateLimit configures the Redis token bucket.
type RateLimit struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
}

// AppAddr is the listen address for the HTTP server.
func (e Env) AppAddr() string {
	return net.JoinHostPort(e.APIHost, strconv.Itoa(e.APIPort))
}

func (e Env) JWTExpiry() time.Duration {
	return time.Duration(e.JWTExpMinutes) * time.Minute
}

// LoadEnv reads an optional .env file and then the process environment.
// Defaults target a local development setup.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] .env not loaded: %v", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds an Env from any key lookup, which keeps tests off the
// process environment.
func FromLookup(lookup func(string) (string, bool)) Env {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	getInt := func(key string, def int) int {
		v := get(key, "")
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("[CONFIG] invalid int for %s: %q, using %d", key, v, def)
			return def
		}
		return n
	}
	getDur := func(key string, def time.Duration) time.Duration {
		v := get(key, "")
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("[CONFIG] invalid duration for %s: %q, using %s", key, v, def)
			return def
		}
		return d
	}
	getBool := func(key string, def bool) bool {
		v := get(key, "")
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}

	env := Env{
		AppEnv:  get("APP_ENV", "development"),
		GinMode: get("GIN_MODE", ""),

		APIHost: get("API_HOST", "127.0.0.1"),
		APIPort: getInt("API_PORT", 8000),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     getInt("DB_PORT", 3306),
		DBUser:     get("DB_USER", "root"),
		DBPassword: get("DB_PASSWORD", "password"),
		DBName:     get("DB_NAME", "hrgsms_db"),

		JWTSecret:     get("JWT_SECRET", "change-me"),
		JWTAlgorithm:  strings.ToUpper(get("JWT_ALGORITHM", "HS256")),
		JWTExpMinutes: getInt("JWT_EXP_MINUTES", 1440),

		FrontendURL: get("FRONTEND_URL", "http://localhost:5173"),

		RedisAddr:     get("REDIS_ADDR", ""),
		RedisPassword: get("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),
		RateLimit: RateLimit{
			Enabled:        getBool("RATE_LIMIT_ENABLED", true),
			Capacity:       getInt("RATE_LIMIT_CAPACITY", 120),
			RefillTokens:   getInt("RATE_LIMIT_REFILL_TOKENS", 2),
			RefillInterval: getDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
			TTL:            getDur("RATE_LIMIT_TTL", 10*time.Minute),
			KeyStrategy:    get("RATE_LIMIT_KEY_STRATEGY", "ip_user_route"),
			Prefix:         get("RATE_LIMIT_PREFIX", "hrgsms:rl"),
		},

		RabbitURL:      get("RABBITMQ_URL", ""),
		EventsExchange: get("EVENTS_EXCHANGE", "hrgsms.events"),
	}

	rl := &env.RateLimit
	if rl.Capacity < 1 {
		rl.Capacity = 1
	}
	if rl.RefillTokens < 1 {
		rl.RefillTokens = 1
	}
	if rl.RefillInterval <= 0 {
		rl.RefillInterval = time.Second
	}
	if minTTL := 5 * rl.RefillInterval; rl.TTL < minTTL {
		rl.TTL = minTTL
	}
	return env
}
