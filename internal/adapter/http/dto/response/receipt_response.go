package response

import (
	"encoding/json"

	"quotation_desk/internal/usecase"
)

type ReceiptResponse struct {
	ReceiptNumber     string         `json:"receipt_number"`
	InvoiceNumber     string         `json:"invoice_number"`
	Record            RecordResponse `json:"record"`
	ProviderPaymentID string         `json:"provider_payment_id"`
	ProviderStatus    string         `json:"provider_status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromReceipt(invoiceNumber string, r usecase.Receipt) ReceiptResponse {
	res := ReceiptResponse{
		ReceiptNumber:     r.Record.Number,
		InvoiceNumber:     invoiceNumber,
		Record:            FromRecord(r.Record),
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		MPPayloadRaw:      string(r.ProviderResponse),
	}
	if len(r.ProviderResponse) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(r.ProviderResponse, &parsed); err == nil {
			res.MPPayload = parsed
		}
	}
	return res
}
