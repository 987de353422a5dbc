package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"moviefinder/movie"
)

const (
	DefaultBaseURL = "https://www.omdbapi.com/"

	maxResponseBody = 1 << 20 // 1 MB
)

var (
	ErrUnexpectedStatus = errors.New("omdb: unexpected status")
	ErrEmptyResponse    = errors.New("omdb: empty response")
)

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client implements movie.Provider against the OMDb API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(opts Options) *Client {
	c := &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		http:    opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: opts.Timeout}
	}
	return c
}

// FindByTitle requests ?t=<title>&apikey=<key> and decodes the body as is.
// An "Error" field in the body is not treated as a failure here.
func (c *Client) FindByTitle(ctx context.Context, title string) (movie.Record, error) {
	endpoint, err := c.endpoint(title)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("omdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("omdb: request title %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var rec movie.Record
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&rec); err != nil {
		return nil, fmt.Errorf("omdb: decode response: %w", err)
	}
	if rec == nil {
		return nil, ErrEmptyResponse
	}

	return rec, nil
}

func (c *Client) endpoint(title string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("omdb: invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("t", title)
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
