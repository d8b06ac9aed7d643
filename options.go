package pesapal

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction.
//
// Options are applied before the configuration is normalized, so
// WithBaseURL values get the same trailing-slash handling as direct
// construction. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL points the client at a different gateway environment,
// typically ProductionBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.cfg.BaseURL = u
		return nil
	}
}

// WithHTTPTimeout sets the overall per-request timeout on the underlying
// http.Client.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client, for callers that
// need custom transports or proxies. The client's timeout settings are
// taken as-is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request and
// response is dumped to the log when enabled is true.
//
// Dumps include the Authorization header and full bodies; do not enable
// this option in production environments.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
