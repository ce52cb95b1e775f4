package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ReceiptRequest records a payment against a saved invoice.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type ReceiptRequest struct {
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	MPPayload     json.RawMessage `json:"mp_payload"`
}
