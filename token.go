package pesapal

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mwondhaf/pesapal-go/internal/api"
)

// Token returns a usable bearer token. It refreshes first when force is
// true, when no token is held, or when the held token's expiry is at or
// before the current time; otherwise the cached token is returned
// unchanged. The refresh is one unauthenticated POST carrying the
// consumer credentials.
func (c *Client) Token(ctx context.Context, force bool) (string, error) {
	if force || !c.tokenValid() {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

func (c *Client) tokenValid() bool {
	if c.token == "" {
		return false
	}
	return c.now().Before(c.tokenExpiresAt)
}

func (c *Client) refreshToken(ctx context.Context) error {
	ar, err := api.RequestToken(ctx, c.http, c.cfg.BaseURL, c.cfg.ConsumerKey, c.cfg.ConsumerSecret)
	if err != nil {
		return err
	}
	c.token = ar.Token
	c.tokenExpiresAt = ar.ExpiresAt(c.now())
	log.Debug().Time("expires_at", c.tokenExpiresAt).Msg("pesapal: bearer token refreshed")
	return nil
}
