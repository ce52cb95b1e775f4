package schema

import (
	"strconv"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/normalize"
)

// Alternate source keys per document item field, highest priority first.
// Producers disagree on spelling, so lookups here are exact.
var (
	descriptionKeys = []string{"description", "Description", "name", "Product / Device", "Item"}
	qtyKeys         = []string{"qty", "Qty", "Quantity", "quantity"}
	unitPriceKeys   = []string{"unit_price", "Unit Price (AED)", "Unit Price", "unit_price_aed", "price"}
	totalKeys       = []string{"total", "Line Total (AED)", "Amount"}
	warrantyKeys    = []string{"warranty", "Warranty", "Warranty (Years)"}
	imageKeys       = []string{"image", "Image", "image_url", "img"}
	rawImageKeys    = []string{"ImageBase64", "image_base64"}
)

// DocumentItemFromMap normalizes one upstream item row. Coercion failures
// default to zero so one malformed row never blocks a document.
func DocumentItemFromMap(m map[string]any) entities.DocumentItem {
	desc, _ := firstPresent(m, descriptionKeys...)
	rawQty, _ := firstPresent(m, qtyKeys...)
	rawPrice, _ := firstPresent(m, unitPriceKeys...)
	warranty, _ := firstPresent(m, warrantyKeys...)

	qty := DecimalOrZero(rawQty)
	price := DecimalOrZero(rawPrice)
	total := qty.Mul(price)
	if rawTotal, ok := firstPresent(m, totalKeys...); ok {
		total = DecimalOrZero(rawTotal)
	}

	image := ""
	if v, ok := firstPresent(m, imageKeys...); ok {
		image = normalize.EnsureDataURL(String(v))
	}
	if image == "" {
		if v, ok := firstPresent(m, rawImageKeys...); ok {
			image = normalize.EnsureDataURL(String(v))
		}
	}

	return entities.DocumentItem{
		Description: String(desc),
		Qty:         qty,
		UnitPrice:   price,
		Total:       total,
		Warranty:    String(warranty),
		Image:       image,
	}
}

// DocumentItemFromLineItem converts a draft row.
func DocumentItemFromLineItem(it entities.LineItem) entities.DocumentItem {
	desc := it.Description
	if desc == "" {
		desc = it.Product
	}
	warranty := ""
	if it.Warranty > 0 {
		warranty = strconv.Itoa(it.Warranty)
	}
	return entities.DocumentItem{
		Description: desc,
		Qty:         DecimalOrZero(it.Qty),
		UnitPrice:   it.UnitPrice,
		Total:       it.LineTotal,
		Warranty:    warranty,
		Image:       normalize.EnsureDataURL(it.Image),
	}
}

// DocumentItemToMap exposes the normalized fields under their canonical keys.
func DocumentItemToMap(it entities.DocumentItem) map[string]any {
	return map[string]any{
		"description": it.Description,
		"qty":         it.Qty,
		"unit_price":  it.UnitPrice,
		"total":       it.Total,
		"warranty":    it.Warranty,
		"image":       it.Image,
	}
}
