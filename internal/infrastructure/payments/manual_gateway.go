package payments

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quotation_desk/internal/usecase/interfaces"
)

var _ interfaces.IPaymentGateway = (*ManualGateway)(nil)

// ManualGateway records payments taken outside any provider (cash, bank
// transfer, cheque). Every payment is approved with a locally generated id.
type ManualGateway struct {
	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

func NewManualGateway(log *zap.Logger) *ManualGateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &ManualGateway{log: log, now: time.Now, newID: uuid.NewString}
}

func (g *ManualGateway) CreatePayment(_ context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &resp); err != nil || resp == nil {
			return "", "", nil, ErrInvalidManualPayload
		}
	}

	id := "manual-" + g.newID()
	resp["id"] = id
	resp["provider"] = ProviderManual
	resp["status"] = "approved"
	if _, ok := resp["payment_method_id"]; !ok {
		resp["payment_method_id"] = "cash"
	}
	resp["date_approved"] = g.now().UTC().Format(time.RFC3339)

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("[payment][manual] payment recorded", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
