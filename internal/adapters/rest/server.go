package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"listings-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - REST API сервиса объявлений.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// ServerConfig - сетевые настройки сервера.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// NewRouter собирает маршруты. Вынесен отдельно, чтобы тесты работали без сокета.
func NewRouter(cfg ServerConfig,
	properties *PropertyHandler,
	admin *AdminHandler,
	auth *AuthHandler,
	authMiddleware *AuthMiddleware,
	baseLogger port.LoggerPort) chi.Router {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Публичные маршруты ---
		r.Group(func(r chi.Router) {
			r.Get("/properties", properties.ListProperties)
			// статические пути регистрируются раньше {id}
			r.Get("/properties/featured", properties.GetFeaturedProperties)
			r.Get("/properties/stats", properties.GetPropertyStats)
			r.Get("/properties/{id}", properties.GetPropertyByID)
			r.Get("/dictionaries", properties.GetDictionaries)
			r.Get("/health/store", properties.CheckStore)

			r.Post("/auth/login", auth.Login)
		})

		// --- Только для админов ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireRole("admin"))

			r.Get("/dashboard", admin.GetDashboard)
			r.Get("/properties", admin.ListProperties)
			r.Post("/properties", admin.CreateProperty)
			r.Post("/properties/bulk-delete", admin.DeleteProperties)
			r.Patch("/properties/{id}", admin.UpdateProperty)
			r.Delete("/properties/{id}", admin.DeleteProperty)
		})
	})

	return r
}

// NewServer создает новый экземпляр сервера.
func NewServer(cfg ServerConfig, router http.Handler, baseLogger port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger.WithFields(port.Fields{"component": "rest_server"}),
	}
}

// Start запускает HTTP-сервер и блокируется до его остановки.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
