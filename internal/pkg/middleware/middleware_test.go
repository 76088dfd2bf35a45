package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/requestcontext"
	"github.com/piresc/ridebook/internal/pkg/token"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]interface{}{"success": true})
}

func TestTokenAuthMiddleware(t *testing.T) {
	verifier := token.NewStaticVerifier("static-token")

	tests := []struct {
		name         string
		header       string
		expectStatus int
		expectCalled bool
	}{
		{"valid token", "static-token", http.StatusCreated, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"unknown token", "forged", http.StatusUnauthorized, false},
		{"bearer prefix", "Bearer static-token", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/ride-request", nil)
			if tt.header != "" {
				req.Header.Set("authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			h := TokenAuthMiddleware(verifier)(func(c echo.Context) error {
				called = true
				return okHandler(c)
			})

			assert.NoError(t, h(c))
			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectCalled, called)

			if !tt.expectCalled {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, false, response["success"])
				assert.NotEmpty(t, response["error"])
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Generates an ID", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := RequestIDMiddleware()(okHandler)
		assert.NoError(t, h(c))

		id := rec.Header().Get(HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, c.Get("request_id"))
	})

	t.Run("Keeps an inbound ID", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := RequestIDMiddleware()(okHandler)
		assert.NoError(t, h(c))
		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-123", requestcontext.GetRequestID(c.Request().Context()))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("Logs successful request at info", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health?probe=1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := LoggerMiddleware(logger)(okHandler)
		assert.NoError(t, h(c))

		require.Len(t, hook.Entries, 1)
		entry := hook.LastEntry()
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "Request processed", entry.Message)
		assert.Equal(t, "/health?probe=1", entry.Data["path"])
		assert.Equal(t, http.StatusCreated, entry.Data["status"])
	})

	t.Run("Routes handler errors through the error handler", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := LoggerMiddleware(logger)(func(c echo.Context) error {
			return errors.New("boom")
		})
		assert.NoError(t, h(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{"string panic", "test panic message"},
		{"error panic", errors.New("test error panic")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/ride-request", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := PanicRecoveryMiddleware(logger)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			assert.NotPanics(t, func() {
				assert.NoError(t, h(c))
			})
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "Internal server error", response["error"])

			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, "Panic recovered during request processing", hook.LastEntry().Message)
			assert.Contains(t, hook.LastEntry().Data, "stack_trace")
		})
	}

	t.Run("Committed response is left alone", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := PanicRecoveryMiddleware(logger)(func(c echo.Context) error {
			_ = c.String(http.StatusOK, "partial")
			panic("late panic")
		})

		assert.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "partial", rec.Body.String())
	})
}
