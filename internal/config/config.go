// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ioscahub/matchhub/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	DBURL              string
	GuildID            string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	InternalToken      string
	CacheEnabled       bool
	CacheTTL           time.Duration
	WarmWorkerCount    int
	WarmOnStartup      bool
	PprofEnabled       bool
	PprofAddr          string
	UptraceEnabled     bool
	UptraceDSN         string
	PyroscopeEnabled   bool
	PyroscopeAddress   string
	PyroscopeAppName   string
	PyroscopeAuthToken string
	LogLevel           logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	warmWorkerCount, err := getEnvAsInt("WARM_WORKER_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARM_WORKER_COUNT: %w", err)
	}
	if warmWorkerCount <= 0 {
		return Config{}, fmt.Errorf("WARM_WORKER_COUNT must be > 0")
	}
	warmOnStartup, err := strconv.ParseBool(getEnv("WARM_ON_STARTUP", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARM_ON_STARTUP: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	serviceName := getEnv("SERVICE_NAME", "matchhub-api")

	return Config{
		AppEnv:             appEnv,
		ServiceName:        serviceName,
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBURL:              strings.TrimSpace(getEnv("DATABASE_URL", "")),
		GuildID:            strings.TrimSpace(getEnv("GUILD_ID", "")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		InternalToken:      strings.TrimSpace(getEnv("INTERNAL_TOKEN", "")),
		CacheEnabled:       cacheEnabled,
		CacheTTL:           cacheTTL,
		WarmWorkerCount:    warmWorkerCount,
		WarmOnStartup:      warmOnStartup,
		PprofEnabled:       pprofEnabled,
		PprofAddr:          getEnv("PPROF_ADDR", ":6060"),
		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		PyroscopeEnabled:   pyroscopeEnabled,
		PyroscopeAddress:   pyroscopeAddress,
		PyroscopeAppName:   getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken: getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
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
