// Package pesapal is a Go client for the Pesapal API v3.
//
// Supported flows:
//   - Authentication (Auth/RequestToken) with a cached bearer token
//   - IPN registration (URLSetup/RegisterIPN)
//   - Order submission (Transactions/SubmitOrderRequest)
//   - Transaction status (Transactions/GetTransactionStatus)
//   - Refund/cancellation guidance derived from transaction status
//
// A Client is not safe for concurrent use: calls replace the cached
// token in place without coordination. Callers sharing one Client across
// goroutines must serialize access themselves.
package pesapal

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/mwondhaf/pesapal-go/internal/api"
	"github.com/mwondhaf/pesapal-go/internal/apierr"
	"github.com/mwondhaf/pesapal-go/internal/types"
)

// Gateway environments. SandboxBaseURL is the default.
const (
	SandboxBaseURL    = types.DefaultBaseURL
	ProductionBaseURL = "https://pay.pesapal.com/v3/api"
)

// Fixed per-call timeouts. There is no other cancellation primitive
// beyond the caller's context.
const (
	connectTimeout = 10 * time.Second
	requestTimeout = 30 * time.Second
)

// Client owns one HTTP session and one cached bearer token for its
// lifetime.
type Client struct {
	cfg  types.Config
	http *http.Client

	token          string
	tokenExpiresAt time.Time
	now            func() time.Time

	pollInterval time.Duration // initial AwaitFinalStatus interval

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the sandbox environment with the given
// consumer credentials. Use WithBaseURL(ProductionBaseURL) for live
// traffic.
func New(consumerKey, consumerSecret string, opts ...Option) (*Client, error) {
	cfg := types.Config{ConsumerKey: consumerKey, ConsumerSecret: consumerSecret}
	return newClient(cfg, opts)
}

// NewFromEnv constructs a Client from PESAPAL_CONSUMER_KEY,
// PESAPAL_CONSUMER_SECRET and the optional PESAPAL_BASE_URL.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg types.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, apierr.Invalid(err.Error())
	}
	return newClient(cfg, opts)
}

func newClient(cfg types.Config, opts []Option) (*Client, error) {
	c := &Client{
		cfg:          cfg,
		http:         defaultHTTPClient(),
		now:          time.Now,
		pollInterval: 2 * time.Second,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.cfg.Normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func defaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			Proxy:       http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
		},
	}
}

// Close releases the client's idle connections. Safe to call multiple
// times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// RegisterIPN registers a notification endpoint. The delivery method
// defaults to POST.
func (c *Client) RegisterIPN(ctx context.Context, reg IPNRegistration) (*IPNResponse, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	bearer, err := c.Token(ctx, false)
	if err != nil {
		return nil, err
	}
	return api.RegisterIPN(ctx, c.http, c.cfg.BaseURL, bearer, reg)
}

// SubmitOrder submits a payment order and returns the tracking id plus
// the redirect URL for the payer.
func (c *Client) SubmitOrder(ctx context.Context, order OrderRequest) (*OrderResponse, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	bearer, err := c.Token(ctx, false)
	if err != nil {
		return nil, err
	}
	return api.SubmitOrder(ctx, c.http, c.cfg.BaseURL, bearer, order)
}

// TransactionStatus looks up a submitted order by its tracking id.
func (c *Client) TransactionStatus(ctx context.Context, orderTrackingID string) (*TransactionStatus, error) {
	if orderTrackingID == "" {
		return nil, apierr.Invalid("orderTrackingId is required")
	}
	bearer, err := c.Token(ctx, false)
	if err != nil {
		return nil, err
	}
	return api.GetTransactionStatus(ctx, c.http, c.cfg.BaseURL, bearer, orderTrackingID)
}
