package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/apperror"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rideBody = `{
	"userId": "user_9876543210",
	"pickup": {"lat": 12.97, "lng": 77.59},
	"drop": {"lat": 12.93, "lng": 77.62},
	"timestamp": "2024-03-15T09:00:00Z"
}`

func newRideContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ride-request", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestCreateRideRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	c, rec := newRideContext(rideBody)

	mockRideUC.EXPECT().
		CreateRideRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.CreateRideRequest) (*models.RideResponse, error) {
			assert.Equal(t, "user_9876543210", req.UserID)
			assert.JSONEq(t, `{"lat": 12.97, "lng": 77.59}`, string(req.Pickup))
			return &models.RideResponse{
				Success: true,
				Message: "Ride request created successfully",
				RideID:  "65f3a1c2e4b0a1b2c3d4e5f6",
				RideRequest: models.RideRequest{
					UserID:    req.UserID,
					Pickup:    models.Coordinates{Lat: 12.97, Lng: 77.59},
					Drop:      models.Coordinates{Lat: 12.93, Lng: 77.62},
					Timestamp: "2024-03-15T09:00:00.000Z",
					Status:    models.RideStatusRequested,
					CreatedAt: "2024-03-15T08:30:00.000Z",
					UpdatedAt: "2024-03-15T08:30:00.000Z",
				},
			}, nil
		})

	err := handler.CreateRideRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "65f3a1c2e4b0a1b2c3d4e5f6", response["rideId"])
	assert.Equal(t, "requested", response["status"])
	assert.Equal(t, "user_9876543210", response["userId"])
	assert.Equal(t, map[string]interface{}{"lat": 12.97, "lng": 77.59}, response["pickup"])
}

func TestCreateRideRequest_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))
	c, rec := newRideContext(`{"userId": `)

	err := handler.CreateRideRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestCreateRideRequest_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	c, rec := newRideContext(`{"userId": "user_1"}`)

	mockRideUC.EXPECT().
		CreateRideRequest(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Validation(apperror.MsgMissingFields))

	err := handler.CreateRideRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Missing required fields", response["error"])
}

func TestCreateRideRequest_PersistenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	c, rec := newRideContext(rideBody)

	mockRideUC.EXPECT().
		CreateRideRequest(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Persistence("Failed to create ride request", errors.New("server selection timeout")))

	err := handler.CreateRideRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, "Failed to create ride request", response["error"])
	assert.Equal(t, "server selection timeout", response["details"])
}
