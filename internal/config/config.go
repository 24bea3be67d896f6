package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Filters   FiltersConfig
	RateLimit RateLimitConfig
	Audit     AuditConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
}

// AuthConfig verifies bearer tokens issued by the external identity provider.
// DevSigningKey is only set when a keypair was generated for local use.
type AuthConfig struct {
	PublicKey     *rsa.PublicKey
	DevSigningKey *rsa.PrivateKey
	Issuer        string
	Audience      string
	DevTokenTTL   time.Duration
}

// FiltersConfig controls the lifetime and recomputation of filter sessions
type FiltersConfig struct {
	SessionTTL      time.Duration
	JanitorInterval time.Duration
	ComputeTimeout  time.Duration

	// Consecutive storage failures before recomputes fail fast, and how
	// long they do so before probing again
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

// AuditConfig controls how long ledger audit entries are kept
type AuditConfig struct {
	Retention     time.Duration
	PruneInterval time.Duration
}

type RateLimitConfig struct {
	PerSecond int
	Burst     int
}

// Load reads the configuration from the environment. Variables already set
// win over an ENV_FILE (default .env), which is optional.
func Load() (*Config, error) {
	loadDotEnv(getEnv("ENV_FILE", ".env"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  parsedEnv("SERVER_READ_TIMEOUT", 15*time.Second, time.ParseDuration),
			WriteTimeout: parsedEnv("SERVER_WRITE_TIMEOUT", 15*time.Second, time.ParseDuration),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "property_ledger"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  parsedEnv("DB_MAX_CONNECTIONS", 25, strconv.Atoi),
			MaxIdleConns:    parsedEnv("DB_MAX_IDLE_CONNS", 5, strconv.Atoi),
			ConnMaxLifetime: parsedEnv("DB_CONN_MAX_LIFETIME", time.Hour, time.ParseDuration),
			AutoMigrate:     parsedEnv("AUTO_MIGRATE", false, strconv.ParseBool),
			SeedDatabase:    parsedEnv("SEED_DATABASE", false, strconv.ParseBool),
		},
		Auth: AuthConfig{
			Issuer:      getEnv("AUTH_ISSUER", ""),
			Audience:    getEnv("AUTH_AUDIENCE", ""),
			DevTokenTTL: parsedEnv("AUTH_DEV_TOKEN_TTL", 24*time.Hour, time.ParseDuration),
		},
		Filters: FiltersConfig{
			SessionTTL:      parsedEnv("FILTER_SESSION_TTL", 30*time.Minute, time.ParseDuration),
			JanitorInterval: parsedEnv("FILTER_JANITOR_INTERVAL", time.Minute, time.ParseDuration),
			ComputeTimeout:  parsedEnv("FILTER_COMPUTE_TIMEOUT", 10*time.Second, time.ParseDuration),

			BreakerMaxFailures:  parsedEnv("FILTER_BREAKER_MAX_FAILURES", 5, strconv.Atoi),
			BreakerResetTimeout: parsedEnv("FILTER_BREAKER_RESET_TIMEOUT", 30*time.Second, time.ParseDuration),
		},
		RateLimit: RateLimitConfig{
			PerSecond: parsedEnv("RATE_LIMIT_PER_SECOND", 10, strconv.Atoi),
			Burst:     parsedEnv("RATE_LIMIT_BURST", 20, strconv.Atoi),
		},
		Audit: AuditConfig{
			Retention:     parsedEnv("AUDIT_RETENTION", 90*24*time.Hour, time.ParseDuration),
			PruneInterval: parsedEnv("AUDIT_PRUNE_INTERVAL", 24*time.Hour, time.ParseDuration),
		},
	}

	cfg.Server.CORSAllowOrigins = splitOrigins(os.Getenv("CORS_ALLOW_ORIGINS"))
	if cfg.IsProduction() && cfg.Server.CORSAllowOrigins[0] == "*" {
		slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing every origin")
	}

	var err error
	cfg.Auth.PublicKey, cfg.Auth.DevSigningKey, err = cfg.loadAuthKeys()
	if err != nil {
		return nil, fmt.Errorf("load auth keys: %w", err)
	}
	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool { return c.Server.Environment == "development" }
func (c *Config) IsProduction() bool  { return c.Server.Environment == "production" }
func (c *Config) IsTesting() bool     { return c.Server.Environment == "testing" }

func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parsedEnv parses key with parse, keeping fallback when the variable is
// unset or malformed
func parsedEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring malformed config value", "key", key, "value", raw)
		return fallback
	}
	return value
}

// splitOrigins parses a comma separated origin list; empty means any origin
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// loadAuthKeys returns the identity provider's key from AUTH_PUBLIC_KEY
// (base64 PEM). Outside production a missing key is replaced by a local
// keypair so the token command can mint development tokens.
func (c *Config) loadAuthKeys() (*rsa.PublicKey, *rsa.PrivateKey, error) {
	if encoded := os.Getenv("AUTH_PUBLIC_KEY"); encoded != "" {
		pemBytes, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, nil, fmt.Errorf("decode AUTH_PUBLIC_KEY: %w", err)
		}
		key, err := LoadRSAPublicKey(pemBytes)
		return key, nil, err
	}

	if c.IsProduction() {
		return nil, nil, errors.New("AUTH_PUBLIC_KEY must be set in production")
	}

	slog.Info("AUTH_PUBLIC_KEY not set, generating a development keypair")
	private, public, err := GenerateRSAKeyPair()
	if err != nil {
		return nil, nil, err
	}
	return public, private, nil
}

func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("generate RSA key: %w", err)
	}
	return key, &key.PublicKey, nil
}

// LoadRSAPublicKey parses a PEM encoded PKIX RSA public key
func LoadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, not RSA", parsed)
	}
	return key, nil
}
