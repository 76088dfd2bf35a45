package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/services/auth"
	httpHandler "github.com/piresc/ridebook/services/auth/handler/http"
)

// Handler combines all handlers for the auth service
type Handler struct {
	authHTTP *httpHandler.AuthHandler
}

// NewHandler creates a new combined handler
func NewHandler(authUC auth.AuthUC) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC),
	}
}

// RegisterRoutes registers the public login routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/send-otp", h.authHTTP.SendOTP)
	e.POST("/verify-otp", h.authHTTP.VerifyOTP)
}
