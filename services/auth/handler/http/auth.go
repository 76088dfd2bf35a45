package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/auth"
)

// AuthHandler handles HTTP requests for phone login
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SendOTP handles OTP issuance requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var request models.SendOTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.SendOTP(c.Request().Context(), request.PhoneNumber)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.VerifyOTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.VerifyOTP(c.Request().Context(), request.PhoneNumber, request.OTP)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, response)
}
