package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/apperror"
	"github.com/piresc/ridebook/internal/pkg/token"
	"github.com/piresc/ridebook/internal/utils"
)

// HeaderAuthorization is read verbatim; no "Bearer " prefix is stripped
const HeaderAuthorization = "authorization"

// TokenAuthMiddleware rejects requests whose authorization header is not
// accepted by the verifier. Nothing is attached to the context on success.
func TokenAuthMiddleware(verifier token.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionToken := c.Request().Header.Get(HeaderAuthorization)
			if sessionToken == "" || !verifier.Verify(sessionToken) {
				return utils.AppErrorResponse(c, apperror.Auth(apperror.MsgUnauthorized))
			}

			return next(c)
		}
	}
}
