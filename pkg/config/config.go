package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"drivedesk/pkg/logger"
)

type Config struct {
	Port string

	BookingsAPIBaseURL string
	IdentityAPIBaseURL string
	UpstreamTimeout    time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		BookingsAPIBaseURL: getEnvStr(EnvBookingsAPIBaseURL, DefaultBookingsAPIBaseURL),
		IdentityAPIBaseURL: getEnvStr(EnvIdentityAPIBaseURL, DefaultIdentityAPIBaseURL),
		UpstreamTimeout:    getEnvDuration(EnvUpstreamTimeout, DefaultUpstreamTimeout),

		KafkaBrokers: getEnvList(EnvKafkaBrokers),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, logger.INFO),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

var baseURLRegex = regexp.MustCompile(`^https?://`)

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.BookingsAPIBaseURL == "" {
		errs = append(errs, "BookingsAPIBaseURL cannot be empty")
	} else if !baseURLRegex.MatchString(cfg.BookingsAPIBaseURL) {
		errs = append(errs, fmt.Sprintf("BookingsAPIBaseURL must start with 'http://' or 'https://', got: %s", cfg.BookingsAPIBaseURL))
	}

	if cfg.IdentityAPIBaseURL != "" && !baseURLRegex.MatchString(cfg.IdentityAPIBaseURL) {
		errs = append(errs, fmt.Sprintf("IdentityAPIBaseURL must start with 'http://' or 'https://', got: %s", cfg.IdentityAPIBaseURL))
	}

	if cfg.UpstreamTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("UpstreamTimeout must be positive, got: %s", cfg.UpstreamTimeout))
	}
	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		errs = append(errs, "KafkaTopic cannot be empty when KafkaBrokers is set")
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"bookings_api_base_url", redactBaseURL(cfg.BookingsAPIBaseURL),
		"identity_api_base_url", redactBaseURL(cfg.IdentityAPIBaseURL),
		"upstream_timeout", cfg.UpstreamTimeout,
		"kafka_brokers", strings.Join(cfg.KafkaBrokers, ","),
		"kafka_topic", cfg.KafkaTopic,
		"audit_events_enabled", len(cfg.KafkaBrokers) > 0,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

var userinfoRegex = regexp.MustCompile(`(https?://)[^/@]+@`)

func redactBaseURL(url string) string {
	return userinfoRegex.ReplaceAllString(url, "${1}***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
