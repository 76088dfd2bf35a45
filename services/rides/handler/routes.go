package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/middleware"
	"github.com/piresc/ridebook/internal/pkg/token"
	"github.com/piresc/ridebook/services/rides"
	httpHandler "github.com/piresc/ridebook/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	verifier  token.Verifier
}

// NewHandler creates a new combined handler
func NewHandler(ridesUC rides.RideUC, verifier token.Verifier) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		verifier:  verifier,
	}
}

// RegisterRoutes registers the ride routes behind token authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/ride-request", h.ridesHTTP.CreateRideRequest, middleware.TokenAuthMiddleware(h.verifier))
}
