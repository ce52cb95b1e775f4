package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"quotation_desk/internal/adapter/http/handlers/mocks"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase"
)

func TestReceiptHandler_CreateReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IReceiptUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/receipts", NewReceiptHandler(uc, nil).CreateReceipt)
		return r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/receipts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(mocks.NewMockIReceiptUseCase(ctrl))

		if w := post(r, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := post(r, `{"amount":10}`); w.Code != http.StatusBadRequest {
			t.Fatalf("missing invoice_number: expected 400, got %d", w.Code)
		}
		if w := post(r, `{"invoice_number":"INV-1","amount":10,"mp_payload":"x"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("string mp_payload: expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), "INV-1", gomock.Any(), gomock.Any()).Return(usecase.Receipt{}, usecase.ErrPaymentNotApproved)

		if w := post(r, `{"invoice_number":"INV-1","amount":"10"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), "INV-20250510-001", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, amount decimal.Decimal, payload json.RawMessage) (usecase.Receipt, error) {
				if !amount.Equal(decimal.RequireFromString("400.50")) {
					t.Fatalf("unexpected amount %s", amount)
				}
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return usecase.Receipt{
					Record:            entities.Record{Type: entities.RecordTypeReceipt, Number: "RCT-20250520-001", Amount: amount},
					ProviderPaymentID: "pay-1",
					ProviderStatus:    "approved",
				}, nil
			})

		w := post(r, `{"invoice_number":"INV-20250510-001","amount":400.50,"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["receipt_number"] != "RCT-20250520-001" || body["provider_payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestNormalizeMPPayload(t *testing.T) {
	for _, raw := range []string{"", "  ", "null"} {
		payload, err := normalizeMPPayload(json.RawMessage(raw))
		if err != nil || string(payload) != "{}" {
			t.Fatalf("%q: expected {}, got %s err=%v", raw, payload, err)
		}
	}
	if _, err := normalizeMPPayload(json.RawMessage(`"x"`)); err == nil {
		t.Fatal("expected error for a non-object payload")
	}
	payload, err := normalizeMPPayload(json.RawMessage(`{"a":1}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected payload kept, got %s err=%v", payload, err)
	}
}

func TestMapReceiptError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidInvoiceNumber, http.StatusBadRequest},
		{usecase.ErrInvalidReceiptAmount, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrInvoiceNotFound, http.StatusNotFound},
		{usecase.ErrPaymentNotApproved, http.StatusConflict},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapReceiptError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
