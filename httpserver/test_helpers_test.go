package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"moviefinder/httpserver"
	"moviefinder/pkg/config"
	"moviefinder/web"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AllowOrigins = "*"
	return cfg
}

func makeRequest(server *httpserver.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// recordingRenderer remembers what it was asked to render and writes the view name.
type recordingRenderer struct {
	name string
	data interface{}
}

func (r *recordingRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name, r.data = name, data
	_, err := io.WriteString(w, name)
	return err
}

// failingRenderer fails for one view and renders the rest with the real templates.
type failingRenderer struct {
	fail string
	next echo.Renderer
}

func newFailingRenderer(t *testing.T, fail string) *failingRenderer {
	t.Helper()
	next, err := httpserver.NewRenderer(web.Templates())
	require.NoError(t, err)
	return &failingRenderer{fail: fail, next: next}
}

func (r *failingRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if name == r.fail {
		return io.ErrUnexpectedEOF
	}
	return r.next.Render(w, name, data, c)
}

func assertErrorPage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	require.Contains(t, rec.Body.String(), `<p class="message">`+message+`</p>`)
}
