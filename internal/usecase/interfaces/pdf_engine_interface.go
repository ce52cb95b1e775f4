package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"quotation_desk/internal/domain/entities"
)

// PDFSource carries both renditions of a document: the rendered HTML for
// HTML-based engines and the structured fields for layout engines.
type PDFSource struct {
	HTML string

	Title        string
	CompanyName  string
	Number       string
	Date         string
	ClientName   string
	ClientPhone  string
	Location     string
	Currency     string
	Items        []entities.DocumentItem
	Subtotal     decimal.Decimal
	Installation decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
}

// IPDFEngine converts a document to PDF bytes.
type IPDFEngine interface {
	Name() string
	Render(ctx context.Context, src PDFSource) ([]byte, error)
}
