package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/rides"
)

// RidesHandler handles HTTP requests for ride bookings
type RidesHandler struct {
	ridesUC rides.RideUC
}

// NewRidesHandler creates a new rides handler
func NewRidesHandler(ridesUC rides.RideUC) *RidesHandler {
	return &RidesHandler{ridesUC: ridesUC}
}

// CreateRideRequest handles ride booking requests
func (h *RidesHandler) CreateRideRequest(c echo.Context) error {
	var request models.CreateRideRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.ridesUC.CreateRideRequest(c.Request().Context(), &request)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, response)
}
