package types

// The gateway exposes no refund or cancellation endpoints. Refund and
// Cancel derive advisory records from a status lookup: a fixed
// eligibility policy plus static next-step guidance for manual
// processing through the merchant dashboard. Nothing here mutates
// gateway state.

// Advisory request types.
const (
	RequestTypeFullRefund    = "full_refund"
	RequestTypePartialRefund = "partial_refund"
	RequestTypeCancellation  = "cancellation"
)

// AdviceStatusManualAction marks an advisory record whose steps must be
// carried out by the merchant.
const AdviceStatusManualAction = "manual_action_required"

// SupportDetails points the merchant at the gateway's support channels.
type SupportDetails struct {
	SupportEmail  string `json:"support_email"`
	MerchantPhone string `json:"merchant_phone"`
}

func defaultSupport() SupportDetails {
	return SupportDetails{
		SupportEmail:  "support@pesapal.com",
		MerchantPhone: "+254 709 219 000",
	}
}

// RefundAdvice is the advisory record built for an eligible refund.
type RefundAdvice struct {
	OrderTrackingID   string         `json:"order_tracking_id"`
	RefundAmount      float64        `json:"refund_amount"`
	TransactionAmount float64        `json:"transaction_amount"`
	RequestType       string         `json:"request_type"`
	Reason            string         `json:"reason"`
	Status            string         `json:"status"`
	Instructions      []string       `json:"instructions"`
	Support           SupportDetails `json:"support_details"`
}

// NewRefundAdvice builds the advisory record for a refund of
// refundAmount against a transaction of transactionAmount. Callers have
// already verified eligibility and that refundAmount does not exceed
// the transaction amount.
func NewRefundAdvice(orderTrackingID string, refundAmount, transactionAmount float64, reason string) RefundAdvice {
	requestType := RequestTypeFullRefund
	if refundAmount < transactionAmount {
		requestType = RequestTypePartialRefund
	}
	return RefundAdvice{
		OrderTrackingID:   orderTrackingID,
		RefundAmount:      refundAmount,
		TransactionAmount: transactionAmount,
		RequestType:       requestType,
		Reason:            reason,
		Status:            AdviceStatusManualAction,
		Instructions: []string{
			"Log into the Pesapal merchant dashboard and locate the transaction by its confirmation code.",
			"Initiate the refund from the dashboard, or raise a refund request with Pesapal support quoting the order tracking ID.",
			"Notify the customer that refunds are settled through the original payment method and may take several business days.",
		},
		Support: defaultSupport(),
	}
}

// CancellationAdvice is the advisory record built for a cancellable
// order.
type CancellationAdvice struct {
	OrderTrackingID string         `json:"order_tracking_id"`
	CurrentStatus   string         `json:"current_status"`
	RequestType     string         `json:"request_type"`
	Reason          string         `json:"reason"`
	Status          string         `json:"status"`
	Instructions    []string       `json:"instructions"`
	Support         SupportDetails `json:"support_details"`
}

// NewCancellationAdvice builds the advisory record for an order whose
// current status permits cancellation.
func NewCancellationAdvice(orderTrackingID, currentStatus, reason string) CancellationAdvice {
	return CancellationAdvice{
		OrderTrackingID: orderTrackingID,
		CurrentStatus:   currentStatus,
		RequestType:     RequestTypeCancellation,
		Reason:          reason,
		Status:          AdviceStatusManualAction,
		Instructions: []string{
			"Do not fulfil the order; the payment has not completed.",
			"Ask the customer to abandon the hosted payment page so the transaction lapses.",
			"If the payment completes before the transaction lapses, follow the refund process instead.",
		},
		Support: defaultSupport(),
	}
}
