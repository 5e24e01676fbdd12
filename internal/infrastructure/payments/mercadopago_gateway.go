package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"faepa_workflow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

// MercadoPagoGateway looks up payments made by the paying authority so the
// provider payload can be kept as receipt.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentReceiptGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.WithError(err).Printf("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	id, err := strconv.Atoi(providerPaymentID)
	if err != nil || id <= 0 {
		log.Printf("[payment][gateway] invalid provider_payment_id=%q", providerPaymentID)
		return "", nil, ErrInvalidProviderPaymentID
	}

	if g != nil && g.mockMode {
		now := g.now().UTC().Format(time.RFC3339Nano)
		b, err := json.Marshal(map[string]any{
			"id":            id,
			"status":        "approved",
			"status_detail": "accredited",
			"date_approved": now,
		})
		if err != nil {
			return "", nil, err
		}
		log.Printf("[payment][gateway] mock get provider_payment_id=%d provider_status=approved", id)
		return "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.WithError(err).Printf("[payment][gateway] sdk get failed provider_payment_id=%d", id)
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.WithError(err).Printf("[payment][gateway] response marshal failed")
		return "", nil, err
	}
	log.Printf("[payment][gateway] get success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return resp.Status, b, nil
}
