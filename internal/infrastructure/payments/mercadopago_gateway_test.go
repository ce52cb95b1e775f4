package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	deskconfig "quotation_desk/internal/config"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(deskconfig.PaymentsConfig{}, nil)
	if !errors.Is(err, ErrMissingAccessToken) {
		t.Fatalf("err = %v, want ErrMissingAccessToken", err)
	}
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway(deskconfig.PaymentsConfig{Mock: true}, nil)
	if err != nil {
		t.Fatalf("NewMercadoPagoGateway: %v", err)
	}
	g.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":400,"external_reference":"INV-20250101-001"}`))
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if status != "approved" || id == "" {
		t.Errorf("id=%q status=%q", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}
	if resp["external_reference"] != "INV-20250101-001" || resp["id"] != id {
		t.Errorf("resp = %v", resp)
	}
	if resp["date_created"] != "2025-01-02T03:04:05Z" {
		t.Errorf("date_created = %v", resp["date_created"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Errorf("err = %v", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     deskconfig.PaymentsConfig
		wantErr error
		manual  bool
	}{
		{name: "blank is manual", cfg: deskconfig.PaymentsConfig{}, manual: true},
		{name: "manual", cfg: deskconfig.PaymentsConfig{Provider: "Manual"}, manual: true},
		{name: "mercadopago mock", cfg: deskconfig.PaymentsConfig{Provider: "mercadopago", Mock: true}},
		{name: "mercadopago without token", cfg: deskconfig.PaymentsConfig{Provider: "mercadopago"}, wantErr: ErrMissingAccessToken},
		{name: "unknown", cfg: deskconfig.PaymentsConfig{Provider: "stripe"}, wantErr: ErrUnknownProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, err := New(tt.cfg, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if _, ok := gw.(*ManualGateway); ok != tt.manual {
				t.Fatalf("gateway = %T", gw)
			}
		})
	}
}

func TestManualGateway_CreatePayment(t *testing.T) {
	g := NewManualGateway(nil)
	g.now = func() time.Time { return time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC) }
	g.newID = func() string { return "abc" }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":400,"payment_method_id":"bank_transfer"}`))
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if id != "manual-abc" || status != "approved" {
		t.Fatalf("id=%q status=%q", id, status)
	}
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}
	if resp["payment_method_id"] != "bank_transfer" || resp["provider"] != ProviderManual || resp["date_approved"] != "2025-05-20T10:00:00Z" {
		t.Errorf("resp = %v", resp)
	}

	t.Run("defaults to cash", func(t *testing.T) {
		_, _, raw, err := g.CreatePayment(context.Background(), nil)
		if err != nil {
			t.Fatalf("CreatePayment: %v", err)
		}
		var resp map[string]any
		_ = json.Unmarshal(raw, &resp)
		if resp["payment_method_id"] != "cash" {
			t.Errorf("resp = %v", resp)
		}
	})

	t.Run("rejects non-object payload", func(t *testing.T) {
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`[1]`)); !errors.Is(err, ErrInvalidManualPayload) {
			t.Errorf("err = %v", err)
		}
	})
}
