package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare_backend/internal/adoption"
	"petcare_backend/internal/article"
	"petcare_backend/internal/config"
	"petcare_backend/internal/jobs"
	"petcare_backend/internal/middleware"
	"petcare_backend/internal/newsletter"
	"petcare_backend/internal/notification"
	"petcare_backend/internal/pet"
	"petcare_backend/internal/shelter"
	"petcare_backend/internal/story"
	"petcare_backend/internal/user"
)

// Server holds the HTTP server and its wired dependencies.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	requestSweeperJob *jobs.RequestSweeperJob
}

// NewServer builds the Gin engine, registers all routes and returns the
// ready-to-start server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	userHandler *user.Handler,
	petHandler *pet.Handler,
	adoptionHandler *adoption.Handler,
	notificationHandler *notification.Handler,
	storyHandler *story.Handler,
	shelterHandler *shelter.Handler,
	articleHandler *article.Handler,
	newsletterHandler *newsletter.Handler,
	requestSweeperJob *jobs.RequestSweeperJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	router.Use(middleware.ZapLoggerMiddleware(logger))
	router.Use(middleware.ErrorHandlerMiddleware(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	requireAuth := authMW.RequireAuth()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "PetCare API is healthy!"})
	})

	v1 := router.Group("/api/v1")
	userHandler.RegisterRoutes(v1, requireAuth)
	petHandler.RegisterRoutes(v1, requireAuth)
	adoptionHandler.RegisterRoutes(v1, requireAuth)
	notificationHandler.RegisterRoutes(v1, requireAuth)
	storyHandler.RegisterRoutes(v1, requireAuth)
	shelterHandler.RegisterRoutes(v1, requireAuth)
	articleHandler.RegisterRoutes(v1, requireAuth)
	newsletterHandler.RegisterRoutes(v1)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:        httpServer,
		router:            router,
		cfg:               cfg,
		logger:            logger,
		requestSweeperJob: requestSweeperJob,
	}, nil
}

func (s *Server) Start() error {
	if s.requestSweeperJob != nil {
		if err := s.requestSweeperJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start request sweeper job", zap.Error(err))
		}
	} else {
		s.logger.Info("Request sweeper job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.requestSweeperJob != nil {
		s.requestSweeperJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
