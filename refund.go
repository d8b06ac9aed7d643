package pesapal

import (
	"context"
	"strings"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
	"github.com/mwondhaf/pesapal-go/internal/types"
)

// The gateway has no refund or cancellation endpoints. Refund and
// Cancel look up the current transaction status, apply a fixed
// eligibility policy, and return an advisory record describing the
// manual steps. No gateway state is mutated.

// RefundOptions control a refund derivation. A zero Amount requests a
// full refund; Reason defaults to a generic customer-request note.
type RefundOptions struct {
	Amount float64
	Reason string
}

// Refund derives refund guidance for a transaction. Only a Completed
// transaction is refund-eligible, and the requested amount must not
// exceed the transaction's recorded amount.
func (c *Client) Refund(ctx context.Context, orderTrackingID string, opts RefundOptions) (*RefundAdvice, error) {
	if orderTrackingID == "" {
		return nil, apierr.Invalid("orderTrackingId is required")
	}
	if opts.Amount < 0 {
		return nil, apierr.Invalid("refund amount must not be negative")
	}

	st, err := c.TransactionStatus(ctx, orderTrackingID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(st.PaymentStatusDescription, types.StatusCompleted) {
		return nil, apierr.Newf("transaction %s is not refundable: status %q", orderTrackingID, st.PaymentStatusDescription)
	}

	amount := opts.Amount
	if amount == 0 {
		amount = st.Amount
	}
	if amount > st.Amount {
		return nil, apierr.Newf("refund amount %.2f exceeds transaction amount %.2f", amount, st.Amount)
	}

	reason := opts.Reason
	if reason == "" {
		reason = "Customer requested refund"
	}
	adv := types.NewRefundAdvice(orderTrackingID, amount, st.Amount, reason)
	return &adv, nil
}

// Cancel derives cancellation guidance for an order. Pending and
// Processing transactions are cancellable; Completed and Failed (and
// anything else) are not.
func (c *Client) Cancel(ctx context.Context, orderTrackingID, reason string) (*CancellationAdvice, error) {
	if orderTrackingID == "" {
		return nil, apierr.Invalid("orderTrackingId is required")
	}

	st, err := c.TransactionStatus(ctx, orderTrackingID)
	if err != nil {
		return nil, err
	}
	if !cancellable(st.PaymentStatusDescription) {
		return nil, apierr.Newf("transaction %s cannot be cancelled: status %q", orderTrackingID, st.PaymentStatusDescription)
	}

	if reason == "" {
		reason = "Customer cancellation"
	}
	adv := types.NewCancellationAdvice(orderTrackingID, st.PaymentStatusDescription, reason)
	return &adv, nil
}

func cancellable(status string) bool {
	return strings.EqualFold(status, types.StatusPending) ||
		strings.EqualFold(status, types.StatusProcessing)
}
