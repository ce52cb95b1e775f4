package entities

import "github.com/shopspring/decimal"

// CatalogColumns is the canonical column order of the catalog.
var CatalogColumns = []string{"device", "description", "unit_price", "warranty", "image"}

// CatalogItem is a sellable product. Device is the lookup key when adding a
// line item. Image is an embedded data URL or empty.
type CatalogItem struct {
	Device      string          `json:"device"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Warranty    int             `json:"warranty"`
	Image       string          `json:"image,omitempty"`
}

// FindCatalogItem returns the first item whose device matches exactly.
func FindCatalogItem(catalog []CatalogItem, device string) (CatalogItem, bool) {
	for _, it := range catalog {
		if it.Device == device {
			return it, true
		}
	}
	return CatalogItem{}, false
}
