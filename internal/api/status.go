package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
	"github.com/mwondhaf/pesapal-go/internal/types"
)

// GetTransactionStatus looks up a submitted order by its tracking id.
func GetTransactionStatus(ctx context.Context, hc *http.Client, baseURL, bearer, orderTrackingID string) (*types.TransactionStatus, error) {
	raw, err := send(ctx, hc, baseURL, request{
		method:   http.MethodGet,
		endpoint: "Transactions/GetTransactionStatus",
		query:    url.Values{"orderTrackingId": {orderTrackingID}},
		bearer:   bearer,
	})
	if err != nil {
		return nil, err
	}
	var ts types.TransactionStatus
	if err := json.Unmarshal(raw, &ts); err != nil {
		return nil, apierr.Wrap("decoding transaction status", err)
	}
	return &ts, nil
}
