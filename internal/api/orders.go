package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
	"github.com/mwondhaf/pesapal-go/internal/types"
)

// SubmitOrder submits a payment order. The reply carries the gateway's
// tracking id plus the redirect URL the payer is sent to.
func SubmitOrder(ctx context.Context, hc *http.Client, baseURL, bearer string, order types.OrderRequest) (*types.OrderResponse, error) {
	raw, err := send(ctx, hc, baseURL, request{
		method:   http.MethodPost,
		endpoint: "Transactions/SubmitOrderRequest",
		body:     order,
		bearer:   bearer,
	})
	if err != nil {
		return nil, err
	}
	var or types.OrderResponse
	if err := json.Unmarshal(raw, &or); err != nil {
		return nil, apierr.Wrap("decoding order response", err)
	}
	return &or, nil
}
