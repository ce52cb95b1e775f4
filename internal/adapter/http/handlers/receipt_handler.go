package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "quotation_desk/internal/adapter/http/dto/request"
	response "quotation_desk/internal/adapter/http/dto/response"
	"quotation_desk/internal/usecase"
	"quotation_desk/pkg"
)

var errInvalidReceiptPayload = pkg.NewDomainErrorSimple("INVALID_RECEIPT_INPUT", "Invalid receipt payload", http.StatusBadRequest)

// ReceiptHandler records payments against saved invoices.
type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
	log     *zap.Logger
}

func NewReceiptHandler(uc usecase.IReceiptUseCase, log *zap.Logger) *ReceiptHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReceiptHandler{usecase: uc, log: log}
}

// CreateReceipt charges the payment provider and saves the receipt record.
//
// @Summary      Record a payment against an invoice
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        payload body request.ReceiptRequest true "Receipt"
// @Success      201  {object}  response.ReceiptResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /receipts [post]
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	var payload request.ReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[receipt][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}
	mpPayload, err := normalizeMPPayload(payload.MPPayload)
	if err != nil {
		h.log.Info("[receipt][handler] invalid mp_payload", zap.String("invoice", payload.InvoiceNumber), zap.Error(err))
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	receipt, err := h.usecase.RecordPayment(c.Request.Context(), payload.InvoiceNumber, payload.Amount, mpPayload)
	if err != nil {
		h.log.Warn("[receipt][handler] create failed", zap.String("invoice", payload.InvoiceNumber), zap.Error(err))
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[receipt][handler] create success",
		zap.String("invoice", payload.InvoiceNumber), zap.String("receipt", receipt.Record.Number))

	c.JSON(http.StatusCreated, response.FromReceipt(strings.TrimSpace(payload.InvoiceNumber), receipt))
}

// normalizeMPPayload turns an absent payload into {} and rejects anything
// that is not a JSON object.
func normalizeMPPayload(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return json.RawMessage("{}"), nil
	}
	if !strings.HasPrefix(trimmed, "{") || !json.Valid(raw) {
		return nil, errors.New("mp_payload must be a json object")
	}
	return raw, nil
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceNumber), errors.Is(err, usecase.ErrInvalidReceiptAmount),
		errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENTS_DISABLED", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
