package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Password PasswordConfig
	Audit    AuditConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type SessionConfig struct {
	// CacheKey scopes the single cache entry the session lives under.
	CacheKey string `env:"SESSION_CACHE_KEY, default=auth:user"`
	// LoginDelay simulates backend latency on login.
	LoginDelay time.Duration `env:"LOGIN_DELAY, default=1s"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
}

// PasswordConfig exposes the complexity rules as named toggles; the forms
// this system replaces disagreed on the digit requirement.
type PasswordConfig struct {
	MinLength     int  `env:"PASSWORD_MIN_LENGTH,     default=8"`
	RequireLower  bool `env:"PASSWORD_REQUIRE_LOWER,  default=true"`
	RequireUpper  bool `env:"PASSWORD_REQUIRE_UPPER,  default=true"`
	RequireDigit  bool `env:"PASSWORD_REQUIRE_DIGIT,  default=false"`
	RequireSymbol bool `env:"PASSWORD_REQUIRE_SYMBOL, default=true"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shiv_books"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
