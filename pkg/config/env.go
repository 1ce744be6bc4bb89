package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvBookingsAPIBaseURL = "BOOKINGS_API_BASE_URL"
	EnvIdentityAPIBaseURL = "IDENTITY_API_BASE_URL"
	EnvUpstreamTimeout    = "UPSTREAM_TIMEOUT"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
