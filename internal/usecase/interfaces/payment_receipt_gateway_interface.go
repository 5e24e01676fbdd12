package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentReceiptGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The workflow service uses it to confirm that a payment reported by the paying
// authority exists and is settled, and keeps the provider payload as receipt.
type IPaymentReceiptGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
