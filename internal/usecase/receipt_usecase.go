package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/numbering"
	"quotation_desk/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceNumber           = errors.New("invalid invoice number")
	ErrInvoiceNotFound                = errors.New("invoice not found")
	ErrInvalidReceiptAmount           = errors.New("receipt amount must be positive")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentNotApproved             = errors.New("payment not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// Receipt is a captured payment and the record saved for it.
type Receipt struct {
	Record            entities.Record `json:"record"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	ProviderStatus    string          `json:"provider_status"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
}

// IReceiptUseCase captures a payment against a saved invoice.
type IReceiptUseCase interface {
	RecordPayment(ctx context.Context, invoiceNumber string, amount decimal.Decimal, payload json.RawMessage) (Receipt, error)
}

type ReceiptUseCase struct {
	gateway  interfaces.IPersistenceGateway
	payments interfaces.IPaymentGateway
	log      *zap.Logger
	now      func() time.Time
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(gateway interfaces.IPersistenceGateway, payments interfaces.IPaymentGateway, log *zap.Logger) *ReceiptUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReceiptUseCase{gateway: gateway, payments: payments, log: log, now: time.Now}
}

// RecordPayment charges amount through the payment gateway and saves an "r"
// record in the invoice's lifecycle. The payload is passed to the provider
// after external_reference, description and transaction_amount are filled.
func (u *ReceiptUseCase) RecordPayment(ctx context.Context, invoiceNumber string, amount decimal.Decimal, payload json.RawMessage) (Receipt, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	u.log.Info("[receipt][usecase] record payment start", zap.String("invoice", invoiceNumber), zap.String("amount", amount.StringFixed(2)))
	if invoiceNumber == "" {
		return Receipt{}, ErrInvalidInvoiceNumber
	}
	if !amount.IsPositive() {
		return Receipt{}, ErrInvalidReceiptAmount
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return Receipt{}, ErrInvalidPaymentPayload
	}
	if u.payments == nil {
		return Receipt{}, ErrPaymentGatewayNotConfigured
	}

	records, _ := u.gateway.ReadRecords(ctx)
	invoice, ok := findRecord(records, entities.RecordTypeInvoice, invoiceNumber)
	if !ok {
		u.log.Info("[receipt][usecase] invoice not found", zap.String("invoice", invoiceNumber))
		return Receipt{}, ErrInvoiceNotFound
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		return Receipt{}, ErrInvalidPaymentPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = invoiceNumber
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", invoiceNumber)
	}
	req["transaction_amount"] = amount.InexactFloat64()
	enriched, err := json.Marshal(req)
	if err != nil {
		return Receipt{}, err
	}

	providerID, status, providerResp, err := u.payments.CreatePayment(ctx, enriched)
	if err != nil {
		u.log.Warn("[receipt][usecase] payment gateway failed", zap.String("invoice", invoiceNumber), zap.Error(err))
		return Receipt{}, mapGatewayError(err)
	}
	if !strings.EqualFold(status, "approved") {
		u.log.Warn("[receipt][usecase] payment not approved", zap.String("invoice", invoiceNumber), zap.String("provider_status", status))
		return Receipt{}, ErrPaymentNotApproved
	}

	now := u.now()
	rec := entities.Record{
		BaseID:     invoice.BaseID,
		Date:       now,
		Type:       entities.RecordTypeReceipt,
		Number:     numbering.NextReceiptNumber(records, now),
		Amount:     amount,
		ClientName: invoice.ClientName,
		Phone:      invoice.Phone,
		Location:   invoice.Location,
		Note:       invoiceNumber + " / " + providerID,
	}
	if err := u.gateway.WriteRecord(ctx, rec); err != nil {
		u.log.Error("[receipt][usecase] receipt record write failed", zap.String("number", rec.Number), zap.Error(err))
		return Receipt{}, err
	}
	u.log.Info("[receipt][usecase] record payment success",
		zap.String("number", rec.Number), zap.String("provider_payment_id", providerID))

	return Receipt{Record: rec, ProviderPaymentID: providerID, ProviderStatus: status, ProviderResponse: providerResp}, nil
}

// mapGatewayError turns provider error bodies into sentinel errors.
func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
