package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"drivedesk/pkg/config"
	"drivedesk/pkg/contracts"
	"drivedesk/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg            *config.Config
	server         *http.Server
	rateLimiter    *middleware.ClientRateLimiter
	healthHandler  http.Handler
	appHttpHandler http.Handler
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

func (a *Application) SetApp(appHandler contracts.Handler, healthHandler contracts.Handler) {
	a.setHealthHandler(healthHandler)
	a.setAppHandler(appHandler)
	a.setAppServer()
}

func (a *Application) setHealthHandler(healthHandler contracts.Handler) {
	healthRouter := httprouter.New()
	healthHandler.RegisterRoutes(healthRouter)

	var h http.Handler = healthRouter
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.healthHandler = h
}

func (a *Application) setAppHandler(appHandler contracts.Handler) {
	appRouter := httprouter.New()
	appHandler.RegisterRoutes(appRouter)

	a.rateLimiter = middleware.NewClientRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		a.cfg.Log,
	)

	var h http.Handler = appRouter
	h = middleware.RequestTimeout(a.cfg.RequestTimeout)(h)
	h = middleware.ClientRateLimit(a.rateLimiter)(h)
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.appHttpHandler = h
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHttpHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	a.rateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
