package omdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"moviefinder/movie"
	"moviefinder/omdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, <-chan *http.Request) {
	t.Helper()
	captured := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case captured <- r.Clone(context.Background()):
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestFindByTitle(t *testing.T) {
	t.Run("decodes metadata unmodified", func(t *testing.T) {
		srv, reqs := newTestServer(t, http.StatusOK, `{"Title":"Inception","Year":"2010"}`)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL, APIKey: "k3y"})

		rec, err := client.FindByTitle(context.Background(), "Inception")

		require.NoError(t, err)
		req := <-reqs
		assert.Equal(t, movie.Record{"Title": "Inception", "Year": "2010"}, rec)
		assert.Equal(t, "Inception", req.URL.Query().Get("t"))
		assert.Equal(t, "k3y", req.URL.Query().Get("apikey"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
	})

	t.Run("returns provider error body as a record", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `{"Response":"False","Error":"Movie not found!"}`)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL})

		rec, err := client.FindByTitle(context.Background(), "zzzzz")

		require.NoError(t, err)
		msg, failed := rec.ProviderError()
		assert.True(t, failed)
		assert.Equal(t, "Movie not found!", msg)
	})

	t.Run("escapes the title", func(t *testing.T) {
		srv, reqs := newTestServer(t, http.StatusOK, `{"Title":"x"}`)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL})

		_, err := client.FindByTitle(context.Background(), "Fast & Furious")

		require.NoError(t, err)
		req := <-reqs
		assert.Equal(t, "Fast & Furious", req.URL.Query().Get("t"))
	})

	t.Run("sends an empty title when none given", func(t *testing.T) {
		srv, reqs := newTestServer(t, http.StatusOK, `{"Error":"Incorrect IMDb ID."}`)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL})

		_, err := client.FindByTitle(context.Background(), "")

		require.NoError(t, err)
		req := <-reqs
		assert.True(t, req.URL.Query().Has("t"))
		assert.Equal(t, "", req.URL.Query().Get("t"))
	})

	t.Run("fails on non-2xx status", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusUnauthorized, `{"Response":"False","Error":"No API key provided."}`)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL})

		_, err := client.FindByTitle(context.Background(), "Heat")

		assert.ErrorIs(t, err, omdb.ErrUnexpectedStatus)
	})

	t.Run("fails on malformed body", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `{"Title":`)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL})

		_, err := client.FindByTitle(context.Background(), "Heat")

		assert.ErrorContains(t, err, "omdb: decode response")
	})

	t.Run("fails on null body", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `null`)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL})

		_, err := client.FindByTitle(context.Background(), "Heat")

		assert.ErrorIs(t, err, omdb.ErrEmptyResponse)
	})

	t.Run("does not leak the api key on transport errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)
		client := omdb.NewClient(omdb.Options{BaseURL: srv.URL, APIKey: "s3cret", Timeout: 20 * time.Millisecond})

		_, err := client.FindByTitle(context.Background(), "Heat")

		require.Error(t, err)
		assert.False(t, strings.Contains(err.Error(), "s3cret"), "error should not contain the api key: %s", err)
	})

	t.Run("fails on invalid base url", func(t *testing.T) {
		client := omdb.NewClient(omdb.Options{BaseURL: "://nope"})

		_, err := client.FindByTitle(context.Background(), "Heat")

		assert.ErrorContains(t, err, "omdb: invalid base url")
	})
}
