package types

// IPN delivery methods accepted by URLSetup/RegisterIPN.
const (
	NotifyGET  = "GET"
	NotifyPOST = "POST"
)

// BillingAddress carries the payer contact details embedded in an order.
// The four contact fields are required; address fields are optional and
// omitted from the request body when empty.
type BillingAddress struct {
	EmailAddress string `json:"email_address" validate:"required"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	CountryCode  string `json:"country_code,omitempty"`
	Line1        string `json:"line_1,omitempty"`
	Line2        string `json:"line_2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// Validate reports whether the required contact fields are present.
func (b BillingAddress) Validate() error { return check(b) }

// IPNRegistration describes a notification endpoint to register with the
// gateway.
type IPNRegistration struct {
	URL              string `json:"url" validate:"required"`
	NotificationType string `json:"ipn_notification_type" validate:"required,oneof=GET POST"`
}

// Validate defaults the delivery method to POST and checks the record.
func (r *IPNRegistration) Validate() error {
	if r.NotificationType == "" {
		r.NotificationType = NotifyPOST
	}
	return check(*r)
}

// OrderRequest is a payment order submitted to
// Transactions/SubmitOrderRequest. ID is the merchant's own reference;
// NotificationID identifies a previously registered IPN.
type OrderRequest struct {
	ID             string         `json:"id" validate:"required"`
	Currency       string         `json:"currency" validate:"required"`
	Amount         float64        `json:"amount" validate:"gt=0"`
	Description    string         `json:"description" validate:"required"`
	CallbackURL    string         `json:"callback_url" validate:"required"`
	NotificationID string         `json:"notification_id" validate:"required"`
	BillingAddress BillingAddress `json:"billing_address"`
}

// Validate checks the order fields and the embedded billing address.
func (o OrderRequest) Validate() error { return check(o) }
