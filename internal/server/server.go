package server

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/config"
	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	authHandler "github.com/fekuna/omnipos-backoffice-service/internal/auth/handler"
	businessHandler "github.com/fekuna/omnipos-backoffice-service/internal/business/handler"
	inventoryHandler "github.com/fekuna/omnipos-backoffice-service/internal/inventory/handler"
	menuHandler "github.com/fekuna/omnipos-backoffice-service/internal/menu/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/notification/feed"
	notificationHandler "github.com/fekuna/omnipos-backoffice-service/internal/notification/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	posHandler "github.com/fekuna/omnipos-backoffice-service/internal/pos/handler"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers bundles every HTTP surface the server mounts.
type Handlers struct {
	Auth         *authHandler.AuthHandler
	Business     *businessHandler.BusinessHandler
	Inventory    *inventoryHandler.InventoryHandler
	Menu         *menuHandler.MenuHandler
	Pos          *posHandler.PosHandler
	Notification *notificationHandler.NotificationHandler
	Feed         *feed.Feed
}

type Server struct {
	httpServer *http.Server
	logger     logger.ZapLogger
}

func New(cfg *config.ServerConfig, tm *auth.TokenManager, h *Handlers, log logger.ZapLogger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/auth", h.Auth.Routes(tm))
	r.Mount("/superadmin", h.Business.Routes(tm))

	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(tm))
		r.Mount("/inventory", h.Inventory.Routes())
		r.Mount("/menu", h.Menu.Routes())
		r.Mount("/pos", h.Pos.Routes())
		r.Mount("/notification", h.Notification.Routes())
		r.Get("/ws", h.Feed.Handle)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPPort,
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0, // websocket connections stay open
			IdleTimeout:  60 * time.Second,
		},
		logger: log,
	}
}

func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(log logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
