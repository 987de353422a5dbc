package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Page is a successful handler outcome: a view and the data it is rendered with.
type Page struct {
	Status int
	View   string
	Data   map[string]interface{}
}

// PageHandler either returns a page to render or fails.
type PageHandler func(c echo.Context) (Page, error)

// page adapts h to echo. Failures, panics included, are returned as is so
// they reach the router's HTTPErrorHandler; nothing is written for them here.
func (s *Server) page(h PageHandler) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = fmt.Errorf("panic in page handler: %w", e)
					return
				}
				err = fmt.Errorf("panic in page handler: %v", r)
			}
		}()

		p, err := h(c)
		if err != nil {
			return err
		}

		status := p.Status
		if status == 0 {
			status = http.StatusOK
		}
		return c.Render(status, p.View, p.Data)
	}
}
