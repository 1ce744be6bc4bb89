package config

import "time"

const (
	DefaultPort = "8080"

	DefaultBookingsAPIBaseURL = "http://localhost:8081"
	DefaultIdentityAPIBaseURL = ""
	DefaultUpstreamTimeout    = 10 * time.Second

	DefaultKafkaTopic = "profile-events"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
