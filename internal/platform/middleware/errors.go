package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/imagems/console/internal/gateway"
	"github.com/imagems/console/internal/session"
)

// GenericFailureNotice is the catch-all message shown for non-401 backend
// failures, network errors included.
const GenericFailureNotice = "Error occured!"

// ErrorHandler centralizes the console's error responses. A rejected token
// clears the session and forces navigation to login, short-circuiting the
// caller's own error handling; everything else surfaces as a generic notice
// so the current view stays intact and actionable.
func ErrorHandler(store *session.Store, logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, gateway.ErrUnauthorized) {
			if cerr := store.Clear(c.Request(), c.Response()); cerr != nil {
				logger.Error().Err(cerr).Msg("failed to clear session")
			}
			if rerr := c.Redirect(http.StatusSeeOther, "/login"); rerr != nil {
				logger.Error().Err(rerr).Msg("failed to redirect to login")
			}
			return
		}

		status := http.StatusInternalServerError
		message := GenericFailureNotice

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}

		var se *gateway.StatusError
		if errors.As(err, &se) {
			// Backend 4xx/5xx are not distinguished for the user.
			status = http.StatusBadGateway
			message = GenericFailureNotice
		}

		if jerr := c.JSON(status, map[string]string{"message": message}); jerr != nil {
			logger.Error().Err(jerr).Msg("failed to write error response")
		}
	}
}
