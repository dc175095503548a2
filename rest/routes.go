package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reader/config"
	"reader/di"
	middleware_custom "reader/middleware"
	"reader/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first so every log line can be correlated
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early to catch panics
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// 4. CORS for the reading clients
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Cache-Control", "X-Requested-With"},
		MaxAge:       86400,
	}))

	// 5. Request timeout, skipped for streaming endpoints
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/sse/")
		},
	}))

	// 6. Logging middleware
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 7. Compression last, skipped for SSE
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") ||
				strings.Contains(c.Path(), "/sse/")
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(container.MetricsRegistry, promhttp.HandlerOpts{})))

	v1 := e.Group("/v1")
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	registerArticleRoutes(v1, container, cfg)
	registerBookmarkRoutes(v1, container)
	registerSSERoutes(v1, container, cfg)
}
