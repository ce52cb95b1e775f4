package entities

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentTerm is one installment line printed on a document.
type PaymentTerm struct {
	Percent     decimal.Decimal `json:"percent"`
	Description string          `json:"description"`
}

const (
	termSigning      = "upon contract signing, covering smart home infrastructure works including cabling, wiring, point preparation, and technical layouts."
	termSupply       = "upon supply of smart home devices, including installation, system programming, configuration, testing, and commissioning."
	termHandover     = "upon final project handover, system completion, client approval."
	termConfirmation = "upon order confirmation"
	termCompletion   = "upon project completion and handover"
)

// PaymentTermPresets are the quick selections offered when editing a draft.
var PaymentTermPresets = map[string][]PaymentTerm{
	"30-70": {
		{Percent: decimal.NewFromInt(30), Description: termSigning},
		{Percent: decimal.NewFromInt(70), Description: termSupply},
	},
	"50-50": {
		{Percent: decimal.NewFromInt(50), Description: termConfirmation},
		{Percent: decimal.NewFromInt(50), Description: termCompletion},
	},
	"30-60-10": {
		{Percent: decimal.NewFromInt(30), Description: termSigning},
		{Percent: decimal.NewFromInt(60), Description: termSupply},
		{Percent: decimal.NewFromInt(10), Description: termHandover},
	},
}

// DefaultPaymentTermsPreset is applied to new drafts.
const DefaultPaymentTermsPreset = "30-70"

// PresetPaymentTerms returns a copy of the named preset.
func PresetPaymentTerms(name string) ([]PaymentTerm, bool) {
	terms, ok := PaymentTermPresets[name]
	if !ok {
		return nil, false
	}
	return append([]PaymentTerm(nil), terms...), true
}

// PaymentTermsHTML renders terms as list items, skipping incomplete ones.
func PaymentTermsHTML(terms []PaymentTerm) string {
	var b strings.Builder
	for _, t := range terms {
		if t.Percent.IsZero() || strings.TrimSpace(t.Description) == "" {
			continue
		}
		fmt.Fprintf(&b, "<li>%s%% %s</li>", t.Percent.StringFixed(0), html.EscapeString(t.Description))
	}
	return b.String()
}

// DefaultWarrantyText is the warranty and liability paragraph of new drafts.
const DefaultWarrantyText = `Warranty is provided for manufacturing defects only. This does not cover:
• Wear and tear, misuse, or improper maintenance.
• External damages or influences beyond our control.
• Any third-party modifications to hardware or software.

Warranty claims must be submitted within two months of defect detection.
Clients are responsible for shipping costs (AED {shipping_cost}) related to warranty claims.
No cash refunds are provided under any circumstances.`

// DefaultWarrantyShippingCost is substituted for {shipping_cost}.
var DefaultWarrantyShippingCost = decimal.NewFromInt(100)

// WarrantyHTML substitutes the shipping cost placeholder.
func WarrantyHTML(text string, shippingCost decimal.Decimal) string {
	return strings.ReplaceAll(text, "{shipping_cost}", shippingCost.StringFixed(1))
}
