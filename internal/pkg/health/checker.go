package health

import (
	"context"
	"sort"
	"sync"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a ping function such as DocumentStore.Ping to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f(ctx)
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse is returned by the readiness probe
type ReadinessResponse struct {
	Success      bool             `json:"success"`
	Status       string           `json:"status"`
	Service      string           `json:"service,omitempty"`
	Timestamp    string           `json:"timestamp"`
	Dependencies []DependencyInfo `json:"dependencies"`
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	logger   logrus.FieldLogger
}

// NewHealthService creates a new health service
func NewHealthService(logger logrus.FieldLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   logger,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// CheckAllHealth runs every registered checker. Dependencies are reported in
// name order.
func (h *HealthService) CheckAllHealth(ctx context.Context) ReadinessResponse {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	checkers := make(map[string]HealthChecker, len(h.checkers))
	for name, checker := range h.checkers {
		checkers[name] = checker
	}
	h.mu.RUnlock()
	sort.Strings(names)

	response := ReadinessResponse{
		Success:      true,
		Status:       StatusHealthy,
		Timestamp:    models.FormatTime(models.Now()),
		Dependencies: make([]DependencyInfo, 0, len(names)),
	}

	for _, name := range names {
		if err := checkers[name].CheckHealth(ctx); err != nil {
			h.logger.WithField("dependency", name).WithError(err).Error("Health check failed")

			response.Dependencies = append(response.Dependencies, DependencyInfo{
				Name:   name,
				Status: StatusUnhealthy,
				Error:  err.Error(),
			})
			response.Success = false
			response.Status = StatusUnhealthy
			continue
		}

		response.Dependencies = append(response.Dependencies, DependencyInfo{
			Name:   name,
			Status: StatusHealthy,
		})
	}

	return response
}
