// Package payments holds the receipt payment gateways.
package payments

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	deskconfig "quotation_desk/internal/config"
	"quotation_desk/internal/usecase/interfaces"
)

const (
	ProviderManual      = "manual"
	ProviderMercadoPago = "mercadopago"
)

var (
	ErrUnknownProvider      = errors.New("unknown payments provider")
	ErrInvalidManualPayload = errors.New("manual payment payload must be a JSON object")
)

// New returns the gateway named by cfg.Provider. A blank provider means
// manual capture.
func New(cfg deskconfig.PaymentsConfig, log *zap.Logger) (interfaces.IPaymentGateway, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderManual:
		return NewManualGateway(log), nil
	case ProviderMercadoPago:
		gw, err := NewMercadoPagoGateway(cfg, log)
		if err != nil {
			return nil, err
		}
		return gw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
