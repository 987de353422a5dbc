package httpserver

import (
	"errors"
	"net/http"

	"moviefinder/errs"
	"moviefinder/pkg/sentry"

	"github.com/labstack/echo/v4"
)

const (
	errorView = "error.html"

	defaultErrorStatus  = http.StatusInternalServerError
	defaultErrorMessage = "SOME ERROR"
)

// resolveError picks the status and message to show for err. Anything that
// is not an application or echo error shows the defaults.
func resolveError(err error) (int, string) {
	status, message := defaultErrorStatus, defaultErrorMessage

	var appErr *errs.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode()
		if appErr.Message != "" {
			message = appErr.Message
		}
	case errors.As(err, &httpErr):
		if httpErr.Code == http.StatusMethodNotAllowed {
			return ErrPageNotFound.StatusCode(), ErrPageNotFound.Message
		}
		if httpErr.Code != 0 {
			status = httpErr.Code
		}
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
	}

	return status, message
}

// handleHTTPError is the router's single error sink: every failing request
// ends here and gets the error page.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := resolveError(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error(err.Error(),
			"request_id", requestID(c),
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
		)
		sentry.WithContext(c).Error(err)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(status); err != nil {
			s.Logger.Error("write error response", "error", err)
		}
		return
	}

	if rerr := c.Render(status, errorView, map[string]interface{}{"message": message}); rerr != nil {
		s.Logger.Error("render error page", "error", rerr, "request_id", requestID(c))
		if c.Response().Committed {
			return
		}
		if err := c.String(status, message); err != nil {
			s.Logger.Error("write error response", "error", err)
		}
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
