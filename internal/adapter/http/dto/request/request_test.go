package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestUpdateDraftRequest_ToPatch(t *testing.T) {
	var r UpdateDraftRequest
	if err := json.Unmarshal([]byte(`{"client_name":"Ali","discount_percent":"12.5","installation_cost":300}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.ToPatch()
	if p.ClientName == nil || *p.ClientName != "Ali" {
		t.Fatalf("client name not carried: %+v", p)
	}
	if p.DiscountPercent == nil || !p.DiscountPercent.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected discount %v", p.DiscountPercent)
	}
	if p.InstallationCost == nil || !p.InstallationCost.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected installation %v", p.InstallationCost)
	}
	if p.Phone != nil || p.Location != nil || p.DiscountValue != nil {
		t.Fatalf("omitted fields must stay nil: %+v", p)
	}
}

func TestAddItemRequest_ToInput(t *testing.T) {
	price := decimal.NewFromInt(250)
	in := AddItemRequest{Device: "Hub", Qty: 2, UnitPrice: &price}.ToInput()
	if in.Device != "Hub" || in.Qty != 2 || !in.UnitPrice.Equal(price) || in.Warranty != nil {
		t.Fatalf("unexpected input %+v", in)
	}

	in = AddItemRequest{Device: "Hub", Qty: 1}.ToInput()
	if !in.UnitPrice.IsZero() {
		t.Fatalf("missing price must keep the catalog price, got %s", in.UnitPrice)
	}
}
