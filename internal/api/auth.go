package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
	"github.com/mwondhaf/pesapal-go/internal/types"
)

// RequestToken exchanges the consumer key/secret for a bearer token.
// This is the one unauthenticated call; a reply without a token field is
// a hard authentication failure.
func RequestToken(ctx context.Context, hc *http.Client, baseURL, consumerKey, consumerSecret string) (*types.AuthResponse, error) {
	payload := map[string]string{
		"consumer_key":    consumerKey,
		"consumer_secret": consumerSecret,
	}
	raw, err := send(ctx, hc, baseURL, request{
		method:   http.MethodPost,
		endpoint: "Auth/RequestToken",
		body:     payload,
	})
	if err != nil {
		return nil, err
	}
	var ar types.AuthResponse
	if err := json.Unmarshal(raw, &ar); err != nil {
		return nil, apierr.Wrap("decoding auth response", err)
	}
	if ar.Token == "" {
		return nil, &apierr.Error{Message: "authentication failed: no token in response", Raw: raw}
	}
	tokenRefreshesTotal.Inc()
	return &ar, nil
}
