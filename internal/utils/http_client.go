package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the base URL that relative request paths resolve against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request made through the client.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithQueryParam adds a query parameter to every request, e.g. an API key.
func WithQueryParam(name, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetQueryParam(name, value)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(
//	    utils.WithBaseURL("https://api.themoviedb.org/3"),
//	    utils.WithTimeout(5*time.Second),
//	)
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("/movie/popular")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
