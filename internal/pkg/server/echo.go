package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/ridebook/internal/pkg/apperror"
	"github.com/piresc/ridebook/internal/pkg/middleware"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/sirupsen/logrus"
)

// NewEcho creates the Echo instance with the shared middleware chain and
// the JSON fallback error handler
func NewEcho(cfg models.ServerConfig, logger logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(logger))
	e.Use(middleware.PanicRecoveryMiddleware(logger))

	origins := cfg.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.HeaderRequestID,
		},
	}))

	if cfg.BodyLimit != "" {
		e.Use(echomw.BodyLimit(cfg.BodyLimit))
	}

	return e
}

// NewHTTPErrorHandler writes every error that reaches Echo as a JSON body.
// Unknown routes and unsupported methods both answer 404; untagged errors
// answer a generic 500. Nothing is written once the response is committed.
func NewHTTPErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithField("panic_value", fmt.Sprintf("%v", r)).Error("Error handler panicked")
			}
		}()

		if c.Response().Committed {
			return
		}

		var writeErr error
		var httpErr *echo.HTTPError
		var appErr *apperror.Error

		switch {
		case errors.As(err, &httpErr):
			writeErr = writeHTTPError(c, httpErr)
		case errors.As(err, &appErr):
			writeErr = utils.AppErrorResponse(c, appErr)
		default:
			logger.WithError(err).WithField("path", c.Request().URL.Path).Error("Unhandled error")
			writeErr = utils.InternalServerErrorResponse(c, apperror.MsgInternalServerError)
		}

		if writeErr != nil {
			logger.WithError(writeErr).Error("Failed to write error response")
		}
	}
}

func writeHTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	switch httpErr.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return utils.AppErrorResponse(c, apperror.NotFound(apperror.MsgEndpointNotFound))
	case http.StatusInternalServerError:
		return utils.InternalServerErrorResponse(c, apperror.MsgInternalServerError)
	}

	message, ok := httpErr.Message.(string)
	if !ok || message == "" {
		message = http.StatusText(httpErr.Code)
	}
	return utils.ErrorResponseHandler(c, httpErr.Code, message)
}
