package config

import (
	"net/http"
	"strconv"

	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// SetupMiddleware installs the global middleware: request logging through
// logrus, panic recovery, CORS and a body limit sized for image uploads.
func SetupMiddleware(e *echo.Echo, cfg *Config) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.Log.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Debug("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Skipper: isUpload,
		Limit:   bodyLimit(cfg.MaxImageBytes),
	}))
}

// Upload routes cap their own bodies and turn oversized images into notices.
var uploadRoutes = map[string]bool{
	"/api/v1/posts":       true,
	"/api/v1/draft/image": true,
}

func isUpload(c echo.Context) bool {
	return c.Request().Method == http.MethodPost && uploadRoutes[c.Request().URL.Path]
}

// bodyLimit leaves room for multipart framing around the largest image.
func bodyLimit(maxImageBytes int64) string {
	const slack = 1 << 20
	return strconv.FormatInt((maxImageBytes+slack+1023)/1024, 10) + "K"
}
