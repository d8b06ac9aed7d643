package types

import (
	"encoding/json"
	"time"
)

// DefaultTokenTTL is assumed when the gateway omits an explicit token
// lifetime in its auth reply.
const DefaultTokenTTL = time.Hour

// Response records are best-effort projections of the gateway's JSON
// replies: fields absent from a reply decode to zero values rather than
// erroring. The gateway has shipped replies with partial field sets and
// the client deliberately tolerates them.

// AuthResponse is the reply to Auth/RequestToken.
type AuthResponse struct {
	Token      string          `json:"token"`
	TokenType  string          `json:"token_type"`
	ExpiresIn  int             `json:"expires_in"`
	ExpiryDate json.RawMessage `json:"expiryDate"`
}

// ExpiresAt resolves the reply's expiry information against now. A
// numeric expiryDate is a lifetime in seconds, a string is parsed as an
// RFC3339 instant, and anything else falls back to now+DefaultTokenTTL.
func (a AuthResponse) ExpiresAt(now time.Time) time.Time {
	if len(a.ExpiryDate) > 0 {
		var secs float64
		if err := json.Unmarshal(a.ExpiryDate, &secs); err == nil {
			return now.Add(time.Duration(secs * float64(time.Second)))
		}
		var s string
		if err := json.Unmarshal(a.ExpiryDate, &s); err == nil {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return t
			}
		}
	}
	return now.Add(DefaultTokenTTL)
}

// IPNResponse is the reply to URLSetup/RegisterIPN. IPNID is the value
// to place in OrderRequest.NotificationID.
type IPNResponse struct {
	IPNID            string `json:"ipn_id"`
	URL              string `json:"url"`
	CreatedDate      string `json:"created_date"`
	NotificationType string `json:"ipn_notification_type"`
	Status           string `json:"status"`
}

// OrderResponse is the reply to Transactions/SubmitOrderRequest.
// RedirectURL is the hosted payment page the payer is sent to.
type OrderResponse struct {
	OrderTrackingID   string `json:"order_tracking_id"`
	MerchantReference string `json:"merchant_reference"`
	RedirectURL       string `json:"redirect_url"`
	Status            string `json:"status"`
}

// Payment status descriptions reported by the gateway. Comparisons are
// case-insensitive; the gateway has shipped both spellings.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
	StatusInvalid    = "Invalid"
	StatusReversed   = "Reversed"
)

// TransactionStatus is the reply to Transactions/GetTransactionStatus.
type TransactionStatus struct {
	PaymentMethod            string  `json:"payment_method"`
	Amount                   float64 `json:"amount"`
	CreatedDate              string  `json:"created_date"`
	ConfirmationCode         string  `json:"confirmation_code"`
	PaymentStatusDescription string  `json:"payment_status_description"`
	Description              string  `json:"description"`
	Message                  string  `json:"message"`
	PaymentAccount           string  `json:"payment_account"`
	CallBackURL              string  `json:"call_back_url"`
	StatusCode               int     `json:"status_code"`
	MerchantReference        string  `json:"merchant_reference"`
	PaymentStatusCode        string  `json:"payment_status_code"`
	Currency                 string  `json:"currency"`
	Status                   string  `json:"status"`
}
