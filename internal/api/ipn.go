package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
	"github.com/mwondhaf/pesapal-go/internal/types"
)

// RegisterIPN registers a notification endpoint with the gateway. The
// returned IPNID goes into subsequent order submissions.
func RegisterIPN(ctx context.Context, hc *http.Client, baseURL, bearer string, reg types.IPNRegistration) (*types.IPNResponse, error) {
	raw, err := send(ctx, hc, baseURL, request{
		method:   http.MethodPost,
		endpoint: "URLSetup/RegisterIPN",
		body:     reg,
		bearer:   bearer,
	})
	if err != nil {
		return nil, err
	}
	var ir types.IPNResponse
	if err := json.Unmarshal(raw, &ir); err != nil {
		return nil, apierr.Wrap("decoding IPN registration response", err)
	}
	return &ir, nil
}
