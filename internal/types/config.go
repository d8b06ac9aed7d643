package types

import (
	"strings"
)

// DefaultBaseURL is the Pesapal sandbox environment. Production callers
// point BaseURL at https://pay.pesapal.com/v3/api instead.
const DefaultBaseURL = "https://cybqa.pesapal.com/pesapalv3/api"

// Config holds the consumer credentials and gateway base URL. The
// envconfig tags back NewFromEnv; direct construction works the same.
type Config struct {
	ConsumerKey    string `envconfig:"PESAPAL_CONSUMER_KEY" validate:"required"`
	ConsumerSecret string `envconfig:"PESAPAL_CONSUMER_SECRET" validate:"required"`
	BaseURL        string `envconfig:"PESAPAL_BASE_URL" validate:"required"`
}

// Normalize applies the default base URL, strips any trailing slash and
// verifies the credentials are present.
func (c *Config) Normalize() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return check(*c)
}
