package pesapal

import "github.com/mwondhaf/pesapal-go/internal/types"

// Public type aliases so consumers import only the pesapal package.
type (
	// Requests
	Config          = types.Config
	BillingAddress  = types.BillingAddress
	IPNRegistration = types.IPNRegistration
	OrderRequest    = types.OrderRequest

	// Responses
	AuthResponse      = types.AuthResponse
	IPNResponse       = types.IPNResponse
	OrderResponse     = types.OrderResponse
	TransactionStatus = types.TransactionStatus

	// Advisory records
	RefundAdvice       = types.RefundAdvice
	CancellationAdvice = types.CancellationAdvice
	SupportDetails     = types.SupportDetails
)

// IPN delivery methods.
const (
	NotifyGET  = types.NotifyGET
	NotifyPOST = types.NotifyPOST
)

// Payment status descriptions reported by the gateway.
const (
	StatusPending    = types.StatusPending
	StatusProcessing = types.StatusProcessing
	StatusCompleted  = types.StatusCompleted
	StatusFailed     = types.StatusFailed
	StatusInvalid    = types.StatusInvalid
	StatusReversed   = types.StatusReversed
)

// Advisory request types.
const (
	RequestTypeFullRefund    = types.RequestTypeFullRefund
	RequestTypePartialRefund = types.RequestTypePartialRefund
	RequestTypeCancellation  = types.RequestTypeCancellation
)
