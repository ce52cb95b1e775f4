package render

import (
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"quotation_desk/internal/adapter/persistence/schema"
	"quotation_desk/internal/domain/entities"
)

// PrepareContext normalizes the items of a render context and fills the
// derived totals. Original keys are kept; normalized keys override them.
func PrepareContext(data map[string]any) map[string]any {
	ctx := make(map[string]any, len(data)+8)
	for k, v := range data {
		ctx[k] = v
	}

	items := normalizeItems(data["items"])
	rendered := make([]map[string]any, 0, len(items))
	for _, it := range items {
		rendered = append(rendered, it.merged)
	}
	ctx["items"] = rendered

	if isBlank(ctx["subtotal"]) {
		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(it.item.Total)
		}
		ctx["subtotal"] = sum
	}

	if _, ok := ctx["Installation"]; !ok {
		if v, ok := ctx["installation"]; ok {
			ctx["Installation"] = v
		}
	}

	if isBlank(ctx["total_amount"]) {
		ctx["total_amount"] = schema.DecimalOrZero(ctx["subtotal"]).Add(schema.DecimalOrZero(ctx["Installation"]))
	}

	if s, ok := ctx["payment_terms_html"].(string); ok {
		ctx["payment_terms_html"] = template.HTML(s)
	}
	return ctx
}

type preparedItem struct {
	item   entities.DocumentItem
	merged map[string]any
}

func normalizeItems(raw any) []preparedItem {
	var list []any
	switch t := raw.(type) {
	case nil:
		return nil
	case []any:
		list = t
	case []map[string]any:
		for _, m := range t {
			list = append(list, m)
		}
	case []entities.DocumentItem:
		for _, it := range t {
			list = append(list, it)
		}
	case []entities.LineItem:
		for _, it := range t {
			list = append(list, it)
		}
	default:
		return nil
	}

	out := make([]preparedItem, 0, len(list))
	for _, v := range list {
		var (
			item     entities.DocumentItem
			original map[string]any
		)
		switch t := v.(type) {
		case map[string]any:
			item = schema.DocumentItemFromMap(t)
			original = t
		case entities.DocumentItem:
			item = t
		case entities.LineItem:
			item = schema.DocumentItemFromLineItem(t)
		default:
			item = entities.DocumentItem{Description: fmt.Sprint(v), Qty: decimal.Zero, UnitPrice: decimal.Zero, Total: decimal.Zero}
		}

		merged := make(map[string]any, len(original)+6)
		for k, val := range original {
			merged[k] = val
		}
		for k, val := range schema.DocumentItemToMap(item) {
			merged[k] = val
		}
		// Only data URLs survive normalization, so the image is safe to
		// place in a src attribute.
		merged["image"] = template.URL(item.Image)
		out = append(out, preparedItem{item: item, merged: merged})
	}
	return out
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
