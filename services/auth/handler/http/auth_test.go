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
	"github.com/piresc/ridebook/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestSendOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)
	c, rec := newJSONContext("/send-otp", `{"phoneNumber": "9876543210"}`)

	mockAuthUC.EXPECT().
		SendOTP(gomock.Any(), "9876543210").
		Return(&models.SendOTPResponse{Success: true, Message: "OTP sent successfully", OTP: "4821"}, nil)

	// Act
	err := authHandler.SendOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])
	assert.Equal(t, "4821", response["otp"])
}

func TestSendOTP_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)
	c, rec := newJSONContext("/send-otp", `{"phoneNumber": "12345"}`)

	mockAuthUC.EXPECT().
		SendOTP(gomock.Any(), "12345").
		Return(nil, apperror.Validation("Valid phone number is required"))

	assert.NoError(t, authHandler.SendOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Valid phone number is required", response["error"])
}

func TestSendOTP_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
	c, rec := newJSONContext("/send-otp", `{invalid_json}`)

	assert.NoError(t, authHandler.SendOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", decodeBody(t, rec)["error"])
}

func TestSendOTP_UseCaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)
	c, rec := newJSONContext("/send-otp", `{"phoneNumber": "9876543210"}`)

	mockAuthUC.EXPECT().
		SendOTP(gomock.Any(), "9876543210").
		Return(nil, apperror.Internal("Failed to send OTP", errors.New("store unavailable")))

	assert.NoError(t, authHandler.SendOTP(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send OTP", decodeBody(t, rec)["error"])
}

func TestVerifyOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)
	c, rec := newJSONContext("/verify-otp", `{"phoneNumber": "9876543210", "otp": "4821"}`)

	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), "9876543210", "4821").
		Return(&models.AuthResponse{Success: true, UserID: "user_9876543210", Token: "static-token"}, nil)

	assert.NoError(t, authHandler.VerifyOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "user_9876543210", response["userId"])
	assert.Equal(t, "static-token", response["token"])
}

func TestVerifyOTP_Errors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectError  string
	}{
		{"invalid code", apperror.ErrInvalidOTP, http.StatusUnauthorized, "Invalid OTP"},
		{"expired code", apperror.ErrOTPExpired, http.StatusUnauthorized, "OTP expired"},
		{"missing fields", apperror.Validation("Phone number and OTP are required"), http.StatusBadRequest, "Phone number and OTP are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthUC := mocks.NewMockAuthUC(ctrl)
			authHandler := NewAuthHandler(mockAuthUC)
			c, rec := newJSONContext("/verify-otp", `{"phoneNumber": "9876543210", "otp": "0000"}`)

			mockAuthUC.EXPECT().
				VerifyOTP(gomock.Any(), "9876543210", "0000").
				Return(nil, tt.err)

			assert.NoError(t, authHandler.VerifyOTP(c))
			assert.Equal(t, tt.expectStatus, rec.Code)

			response := decodeBody(t, rec)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.expectError, response["error"])
		})
	}
}

func TestVerifyOTP_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
	c, rec := newJSONContext("/verify-otp", `{"phoneNumber": 9876543210, "otp": 1234}`)

	assert.NoError(t, authHandler.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
