package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/infras/metrics"
	authService "frontdesk/internal/domains/auth/service"
	stayService "frontdesk/internal/domains/stay/service"
	syncService "frontdesk/internal/domains/sync/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
	"frontdesk/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	defaultHost       = "0.0.0.0"
)

type ServerState int32

const (
	ServerStateStarting ServerState = iota
	ServerStateReady
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router

	app   middleware.AppMiddleware
	sync  syncService.Sync
	auth  authService.Auth
	stay  stayService.Stay
	state atomic.Int32
	mux   *chi.Mux
}

func New(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	sync syncService.Sync,
	auth authService.Auth,
	stay stayService.Stay,
) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		app:    app,
		sync:   sync,
		auth:   auth,
		stay:   stay,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve loads the front desk state, then listens until SIGINT or SIGTERM and drains
// in-flight requests and queued writes before returning.
func (h *HTTP) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := h.boot(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load front desk state")
	}

	host := h.Config.Server.Host
	if host == constant.Empty {
		host = defaultHost
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		h.stay.Close()
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	case <-ctx.Done():
		h.shutdown(server)
	}
}

// Handler builds the routing tree and marks the server ready.
func (h *HTTP) Handler() http.Handler {
	h.mux = chi.NewRouter()

	h.mux.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		chiMiddleware.Recoverer,
		h.app.CORS(),
		h.app.Tracing,
		h.app.Logging,
		h.readiness,
		h.app.RateLimit(),
	)

	h.mux.Get(constant.PathHealth, h.health)
	h.mux.Handle(constant.PathMetrics, metrics.Handler())

	h.Router.SetupRoutes(h.mux)

	h.state.Store(int32(ServerStateReady))

	return h.mux
}

func (h *HTTP) boot(ctx context.Context) error {
	if err := h.sync.Bootstrap(ctx); err != nil {
		return err
	}

	if _, err := h.auth.EnsureAdmin(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure admin login")
	}

	return nil
}

func (h *HTTP) readiness(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if state := h.State(); state == ServerStateInGracePeriod || state == ServerStateInCleanupPeriod {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) shutdown(server *http.Server) {
	defer h.stay.Close()

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		if err := server.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close HTTP server")
		}

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced to shut down")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
