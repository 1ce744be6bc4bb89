package main

import (
	"net/http"

	"drivedesk/internal/profile/handler"
	"drivedesk/internal/profile/service"
	"drivedesk/internal/profile/validator"
	"drivedesk/pkg/app"
	"drivedesk/pkg/client"
	"drivedesk/pkg/config"
	"drivedesk/pkg/events"
	"drivedesk/pkg/session"
)

const ServiceName = "profile"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Profile service")

	bookingsClient := client.NewBookingsClient(cfg.BookingsAPIBaseURL, cfg.UpstreamTimeout)
	publisher := initPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	profileService := service.NewProfileService(
		bookingsClient,
		validator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewProfileHandler(profileService, sessionProviders(cfg), cfg.Log),
		handler.NewHealthHandler(bookingsClient, cfg.Log),
	)
	serverApp.Run()
}

// sessionProviders decides where the caller's session comes from. With
// an identity service configured, the request cookie is exchanged for a
// session there; otherwise the caller forwards its access token as a
// bearer header.
func sessionProviders(cfg *config.Config) handler.SessionProviderFactory {
	if cfg.IdentityAPIBaseURL != "" {
		return func(r *http.Request) session.Provider {
			return session.NewHTTPProvider(cfg.IdentityAPIBaseURL, cfg.UpstreamTimeout, r.Header.Get("Cookie"))
		}
	}
	return func(r *http.Request) session.Provider {
		return session.NewHeaderProvider(r)
	}
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Audit events disabled: no Kafka brokers configured")
		return events.NoopPublisher{}
	}

	producer, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, ServiceName)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event producer", "error", err)
	}

	cfg.Log.Info("Audit events enabled", "topic", cfg.KafkaTopic)
	return producer
}
