package entities

import "github.com/shopspring/decimal"

// LineItem is one row of a quotation or invoice being edited. ItemNo is always
// the 1-based position of the row.
type LineItem struct {
	ItemNo      int             `json:"item_no"`
	Product     string          `json:"product"`
	Description string          `json:"description"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Warranty    int             `json:"warranty"`
	Image       string          `json:"image,omitempty"`
}

// DocumentItem is the fixed field set a document template reads for each row.
type DocumentItem struct {
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Warranty    string          `json:"warranty"`
	Image       string          `json:"image,omitempty"`
}
