package router

import (
	"github.com/anonto42/socialwall/backend/internal/handlers"
	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/anonto42/socialwall/backend/internal/session"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all application routes. Every route except the
// health check and metrics runs inside a session.
func SetupRoutes(e *echo.Echo, store *session.Store) {
	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	sessions := middleware.SessionMiddleware(store)

	// Feed page
	pageHandler := handlers.NewPageHandler()
	pageHandler.RegisterPageRoutes(e, sessions)
	logger.Log.Debug("Page routes configured.")

	api := e.Group("/api/v1")
	api.Use(sessions)

	// Post routes
	postHandler := handlers.NewPostHandler()
	postHandler.RegisterPostRoutes(api)
	logger.Log.Debug("Post routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler()
	feedHandler.RegisterFeedRoutes(api)
	logger.Log.Debug("Feed routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler()
	commentHandler.RegisterCommentRoutes(api)
	logger.Log.Debug("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler()
	likeHandler.RegisterLikeRoutes(api)
	logger.Log.Debug("Like routes configured.")

	// Translation routes
	translationHandler := handlers.NewTranslationHandler()
	translationHandler.RegisterTranslationRoutes(api)
	logger.Log.Debug("Translation routes configured.")

	// Draft, navbar and session routes
	uiHandler := handlers.NewUIHandler()
	uiHandler.RegisterUIRoutes(api)
	logger.Log.Debug("UI routes configured.")

	// Notice routes
	noticeHandler := handlers.NewNoticeHandler()
	noticeHandler.RegisterNoticeRoutes(api)
	logger.Log.Debug("Notice routes configured.")

	logger.Log.Info("All routes configured.")
}
