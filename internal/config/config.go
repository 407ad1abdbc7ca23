package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/team-manager/internal/platform/logging"
	"github.com/riskibarqy/team-manager/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	CORSAllowedOrigins      []string
	DBURL                   string
	DBDisablePreparedBinary bool
	CacheEnabled            bool
	CacheTTL                time.Duration
	RedisURL                string
	LeaderboardCacheTTL     time.Duration
	RedisCircuit            resilience.CircuitBreakerConfig
	OverviewMaxWorkers      int
	PprofEnabled            bool
	PprofAddr               string
	UptraceEnabled          bool
	UptraceDSN              string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
	LogLevel                logging.Level
}

// UsesPostgres reports whether repositories should be backed by DB_URL instead of the
// in-memory seed data.
func (c Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DBURL) != ""
}

// Load reads the environment. A .env file in the working directory is applied first and
// never overrides variables that are already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("SERVICE_NAME", "team-manager-api"),
		ServiceVersion:         getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		RedisURL:               strings.TrimSpace(getEnv("REDIS_URL", "")),
		PprofAddr:              strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		UptraceDSN:             strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.ReadTimeout, err = getEnvAsDuration("READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("WRITE_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.DBDisablePreparedBinary, err = getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true); err != nil {
		return Config{}, err
	}
	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", "60s"); err != nil {
		return Config{}, err
	}
	if cfg.LeaderboardCacheTTL, err = getEnvAsDuration("LEADERBOARD_CACHE_TTL", "10m"); err != nil {
		return Config{}, err
	}
	if cfg.RedisCircuit, err = loadCircuit("REDIS_CIRCUIT"); err != nil {
		return Config{}, err
	}
	if cfg.OverviewMaxWorkers, err = getEnvAsInt("OVERVIEW_MAX_WORKERS", 4); err != nil {
		return Config{}, fmt.Errorf("parse OVERVIEW_MAX_WORKERS: %w", err)
	}
	if cfg.OverviewMaxWorkers < 1 {
		return Config{}, fmt.Errorf("OVERVIEW_MAX_WORKERS must be >= 1")
	}
	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logging.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.PyroscopeEnabled {
		if c.PyroscopeServerAddress == "" {
			return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if c.PyroscopeAppName == "" {
			return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}
	return nil
}

func loadCircuit(prefix string) (resilience.CircuitBreakerConfig, error) {
	var (
		cfg resilience.CircuitBreakerConfig
		err error
	)
	if cfg.Enabled, err = getEnvAsBool(prefix+"_ENABLED", true); err != nil {
		return cfg, err
	}
	if cfg.FailureThreshold, err = getEnvAsInt(prefix+"_FAILURE_COUNT", 5); err != nil {
		return cfg, fmt.Errorf("parse %s_FAILURE_COUNT: %w", prefix, err)
	}
	if cfg.FailureThreshold < 1 {
		return cfg, fmt.Errorf("%s_FAILURE_COUNT must be >= 1", prefix)
	}
	if cfg.OpenTimeout, err = getEnvAsDuration(prefix+"_OPEN_TIMEOUT", "15s"); err != nil {
		return cfg, err
	}
	if cfg.HalfOpenMaxReq, err = getEnvAsInt(prefix+"_HALF_OPEN_MAX_REQ", 2); err != nil {
		return cfg, fmt.Errorf("parse %s_HALF_OPEN_MAX_REQ: %w", prefix, err)
	}
	if cfg.HalfOpenMaxReq < 1 {
		return cfg, fmt.Errorf("%s_HALF_OPEN_MAX_REQ must be >= 1", prefix)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

// getEnvAsDuration rejects zero and negative durations.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
