package http

import (
	"chrono/config"
	"chrono/infras/otel"
	"chrono/shared/constant"
	"chrono/transport/http/middleware"
	"chrono/transport/http/response"
	"chrono/transport/http/router"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Otel       otel.Otel

	state     atomic.Int32
	mux       *chi.Mux
	server    *http.Server
	setupOnce sync.Once
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, otel otel.Otel) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: appMiddleware,
		Otel:       otel,
	}
}

// Serve listens until SIGINT or SIGTERM and returns once shutdown completes.
func (h *HTTP) Serve() {
	h.setup()

	timeouts := h.Config.Server.Timeout

	h.server = &http.Server{
		Addr:              h.Config.Address(),
		Handler:           h.mux,
		ReadHeaderTimeout: time.Duration(timeouts.ReadHeaderSeconds) * time.Second,
		ReadTimeout:       time.Duration(timeouts.ReadSeconds) * time.Second,
		WriteTimeout:      time.Duration(timeouts.WriteSeconds) * time.Second,
		IdleTimeout:       time.Duration(timeouts.IdleSeconds) * time.Second,
	}

	done := h.setupGracefulShutdown()

	log.Info().Str("address", h.server.Addr).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done
}

// ServeHTTP lets function hosts drive the router without a listener.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		h.Middleware.RequestID,
		h.Middleware.Logging,
		h.Middleware.Tracing,
		h.Middleware.Recover,
		h.Middleware.CORS(),
		h.readiness,
	)

	h.Router.SetupRoutes(h.mux)
}

// readiness refuses new work once shutdown has started.
func (h *HTTP) readiness(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() != ServerStateReady {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown() <-chan struct{} {
	serverStateCh := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(done)

		<-serverStateCh

		signal.Stop(serverStateCh)
		h.shutdown(context.Background())
	}()

	return done
}

func (h *HTTP) shutdown(ctx context.Context) {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.state.Store(int32(ServerStateInCleanupPeriod))
		h.cleanup(ctx, 0)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	select {
	case <-time.After(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second):
	case <-ctx.Done():
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))
	h.cleanup(ctx, time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanup drains in-flight requests for at most period, then flushes traces.
func (h *HTTP) cleanup(ctx context.Context, period time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, period)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Cleanup period ended with requests in flight, closing connections")

			_ = h.server.Close()
		}
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}
}
