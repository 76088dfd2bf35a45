package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/apperror"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/sirupsen/logrus"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace and answers with the generic internal error body
func PanicRecoveryMiddleware(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, logger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, logger logrus.FieldLogger) {
	req := c.Request()

	logger.WithFields(logrus.Fields{
		"panic_value": fmt.Sprintf("%v", r),
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": string(debug.Stack()),
		"method":      req.Method,
		"path":        req.URL.Path,
		"client_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(HeaderRequestID),
		"component":   "panic_recovery",
	}).Error("Panic recovered during request processing")

	if c.Response().Committed {
		return
	}
	if err := utils.InternalServerErrorResponse(c, apperror.MsgInternalServerError); err != nil {
		// If we can't send JSON, try plain text
		_ = c.String(http.StatusInternalServerError, apperror.MsgInternalServerError)
	}
}
