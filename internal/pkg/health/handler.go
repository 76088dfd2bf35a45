package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/models"
)

const readinessTimeout = 3 * time.Second

// NewHealthHandler creates the liveness handler. The timestamp is taken on
// every call.
func NewHealthHandler(serviceName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.HealthResponse{
			Success:   true,
			Message:   "Server is running",
			Service:   serviceName,
			Timestamp: models.FormatTime(models.Now()),
		})
	}
}

// NewReadinessHandler creates a handler that reports 503 while any
// registered dependency is unhealthy
func NewReadinessHandler(serviceName string, healthService *HealthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName

		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	}
}

// RegisterHealthEndpoints registers the health check endpoints.
// The readiness probe is only mounted when a health service is given.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, healthService *HealthService) {
	e.GET("/health", NewHealthHandler(serviceName))

	if healthService != nil {
		e.GET("/health/ready", NewReadinessHandler(serviceName, healthService))
	}
}
