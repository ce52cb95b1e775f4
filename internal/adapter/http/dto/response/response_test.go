package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase"
	"quotation_desk/internal/usecase/interfaces"
)

func TestFromRecords(t *testing.T) {
	records := []entities.Record{
		{BaseID: "20250520-001", Date: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), Type: entities.RecordTypeInvoice, Number: "INV-20250520-001", Amount: decimal.RequireFromString("1234.5")},
		{Type: entities.RecordTypeQuotation, Number: "Q20250001"},
	}
	res := FromRecords(records, interfaces.SourceFlatFile)
	if res.Source != interfaces.SourceFlatFile || len(res.Records) != 2 {
		t.Fatalf("unexpected response %+v", res)
	}
	if res.Records[0].Amount != "1234.50" || res.Records[0].Date != "2025-05-20" || res.Records[0].Type != "i" {
		t.Fatalf("unexpected record %+v", res.Records[0])
	}
	if res.Records[1].Date != "" {
		t.Fatalf("unknown date must render empty, got %q", res.Records[1].Date)
	}
}

func TestFromDraft(t *testing.T) {
	d := entities.NewDraftDocument("d-1", entities.DocumentKindQuotation, time.Now())
	_, _ = d.AddItem(entities.CatalogItem{Device: "Hub", UnitPrice: decimal.NewFromInt(500)}, 2, decimal.Zero, -1)
	d.InstallationCost = decimal.NewFromInt(100)

	res := FromDraft(d, "pdf generation unavailable")
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["id"] != "d-1" || body["totals"] == nil || body["warnings"] == nil {
		t.Fatalf("unexpected body: %s", raw)
	}
	if !res.Totals.GrandTotal.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("grand total = %s", res.Totals.GrandTotal)
	}
}

func TestFromReceipt(t *testing.T) {
	raw := json.RawMessage(`{"id":123,"status":"approved"}`)
	r := usecase.Receipt{
		Record:            entities.Record{Type: entities.RecordTypeReceipt, Number: "RCT-20250520-001", Amount: decimal.NewFromInt(400)},
		ProviderPaymentID: "123",
		ProviderStatus:    "approved",
		ProviderResponse:  raw,
	}

	res := FromReceipt("INV-20250510-001", r)
	if res.ReceiptNumber != "RCT-20250520-001" || res.InvoiceNumber != "INV-20250510-001" {
		t.Fatalf("unexpected numbers: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}
