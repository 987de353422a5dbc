package httpserver

import (
	"net/http"

	"moviefinder/errs"

	"github.com/labstack/echo/v4"
)

var (
	ErrPageNotFound = errs.New(http.StatusNotFound, "Page not found")

	errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
)

func (s *Server) RegisterPageRoutes() {
	s.Router.GET("/", s.page(s.handleHome))
	s.Router.GET("/search", s.page(s.handleSearch))

	// Only reached when no other route claims the request.
	s.Router.RouteNotFound("/*", s.page(s.handleNotFound))
}

func (s *Server) handleHome(c echo.Context) (Page, error) {
	return Page{View: "index.html"}, nil
}

func (s *Server) handleSearch(c echo.Context) (Page, error) {
	if s.MovieService == nil {
		return Page{}, errMovieServiceMissing
	}

	title := c.QueryParam("title")

	record, err := s.MovieService.Search(c.Request().Context(), title)
	if err != nil {
		return Page{}, err
	}

	return Page{
		View: "movie.html",
		Data: map[string]interface{}{"movie": record},
	}, nil
}

func (s *Server) handleNotFound(c echo.Context) (Page, error) {
	return Page{}, ErrPageNotFound
}
