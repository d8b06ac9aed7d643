package pesapal

import "github.com/google/uuid"

// NewMerchantReference returns a unique merchant order id suitable for
// OrderRequest.ID. The gateway rejects duplicate merchant references.
func NewMerchantReference() string {
	return uuid.NewString()
}
