package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so callers get its fluent request API while
// the application can attach its own defaults.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customizes a client built by NewHTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithBearer attaches a static bearer token, used for AI provider API keys.
func WithBearer(token string) HTTPClientOption {
	return func(c *resty.Client) {
		if token != "" {
			c.SetAuthToken(token)
		}
	}
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
