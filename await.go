package pesapal

import (
	"context"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
	"github.com/mwondhaf/pesapal-go/internal/types"
)

// AwaitFinalStatus polls the transaction status until it reaches a
// final state (Completed, Failed, Invalid or Reversed) or ctx ends.
// Poll intervals grow exponentially. Each lookup is still a single
// attempt: any call error ends the poll and is returned unchanged.
func (c *Client) AwaitFinalStatus(ctx context.Context, orderTrackingID string) (*TransactionStatus, error) {
	if orderTrackingID == "" {
		return nil, apierr.Invalid("orderTrackingId is required")
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.pollInterval
	exp.Multiplier = 1.5
	exp.MaxInterval = 30 * time.Second
	exp.MaxElapsedTime = 0 // the caller's context bounds the poll
	exp.Reset()

	for {
		st, err := c.TransactionStatus(ctx, orderTrackingID)
		if err != nil {
			return nil, err
		}
		if finalStatus(st.PaymentStatusDescription) {
			return st, nil
		}

		timer := time.NewTimer(exp.NextBackOff())
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func finalStatus(status string) bool {
	for _, s := range []string{
		types.StatusCompleted,
		types.StatusFailed,
		types.StatusInvalid,
		types.StatusReversed,
	} {
		if strings.EqualFold(status, s) {
			return true
		}
	}
	return false
}
