package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind is the kind of document a draft will become.
type DocumentKind string

const (
	DocumentKindQuotation DocumentKind = "quotation"
	DocumentKindInvoice   DocumentKind = "invoice"
)

var (
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrLineItemNotFound    = errors.New("line item not found")
	ErrDraftFinalized      = errors.New("draft already finalized")
)

// ParseDocumentKind accepts "quotation" or "invoice" in any case.
func ParseDocumentKind(raw string) (DocumentKind, error) {
	switch DocumentKind(strings.ToLower(strings.TrimSpace(raw))) {
	case DocumentKindQuotation:
		return DocumentKindQuotation, nil
	case DocumentKindInvoice:
		return DocumentKindInvoice, nil
	}
	return "", ErrInvalidDocumentKind
}

// RecordType maps the draft kind to its lifecycle record type.
func (k DocumentKind) RecordType() RecordType {
	if k == DocumentKindInvoice {
		return RecordTypeInvoice
	}
	return RecordTypeQuotation
}

// DraftDocument is a quotation or invoice being edited. Its line items are
// kept in order and renumbered on every removal.
type DraftDocument struct {
	ID              string       `json:"id"`
	Kind            DocumentKind `json:"kind"`
	BaseID          string       `json:"base_id"`
	Number          string       `json:"number"`
	SourceQuotation string       `json:"source_quotation,omitempty"`

	ClientName string `json:"client_name"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`

	Items []LineItem `json:"items"`

	InstallationCost decimal.Decimal `json:"installation_cost"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	DiscountValue    decimal.Decimal `json:"discount_value"`
	DownPayment      decimal.Decimal `json:"down_payment"`
	PreviouslyPaid   decimal.Decimal `json:"previously_paid"`

	PaymentTerms         []PaymentTerm   `json:"payment_terms"`
	WarrantyText         string          `json:"warranty_text"`
	WarrantyShippingCost decimal.Decimal `json:"warranty_shipping_cost"`
	PowerProvider        string          `json:"power_provider"`

	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description"`
	PreparedBy         string `json:"prepared_by"`
	ApprovedBy         string `json:"approved_by"`

	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewDraftDocument returns an empty draft carrying the default payment terms,
// warranty text and power provider.
func NewDraftDocument(id string, kind DocumentKind, now time.Time) *DraftDocument {
	terms, _ := PresetPaymentTerms(DefaultPaymentTermsPreset)
	return &DraftDocument{
		ID:                   id,
		Kind:                 kind,
		Items:                []LineItem{},
		PaymentTerms:         terms,
		WarrantyText:         DefaultWarrantyText,
		WarrantyShippingCost: DefaultWarrantyShippingCost,
		PowerProvider:        DefaultPowerProvider,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// AddItem appends a row built from a catalog product. A zero unitPrice keeps
// the catalog price and a negative warranty keeps the catalog warranty.
func (d *DraftDocument) AddItem(product CatalogItem, qty int, unitPrice decimal.Decimal, warranty int) (LineItem, error) {
	if d.FinalizedAt != nil {
		return LineItem{}, ErrDraftFinalized
	}
	if qty < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice.IsZero() {
		unitPrice = product.UnitPrice
	}
	if warranty < 0 {
		warranty = product.Warranty
	}
	item := LineItem{
		ItemNo:      len(d.Items) + 1,
		Product:     product.Device,
		Description: product.Description,
		Qty:         qty,
		UnitPrice:   unitPrice,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(qty))),
		Warranty:    warranty,
		Image:       product.Image,
	}
	d.Items = append(d.Items, item)
	return item, nil
}

// RemoveItem deletes the row with the given number and renumbers the rest.
func (d *DraftDocument) RemoveItem(itemNo int) error {
	if d.FinalizedAt != nil {
		return ErrDraftFinalized
	}
	idx := -1
	for i, it := range d.Items {
		if it.ItemNo == itemNo {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrLineItemNotFound
	}
	d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
	for i := range d.Items {
		d.Items[i].ItemNo = i + 1
	}
	return nil
}

// ProductTotal is the sum of the line totals.
func (d *DraftDocument) ProductTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.LineTotal)
	}
	return total
}

// Finalize turns the draft into its lifecycle record and locks it.
func (d *DraftDocument) Finalize(baseID, number string, date time.Time, amount decimal.Decimal) (Record, error) {
	if d.FinalizedAt != nil {
		return Record{}, ErrDraftFinalized
	}
	d.BaseID = baseID
	d.Number = number
	d.FinalizedAt = &date
	d.UpdatedAt = date
	return Record{
		BaseID:     baseID,
		Date:       date,
		Type:       d.Kind.RecordType(),
		Number:     number,
		Amount:     amount,
		ClientName: d.ClientName,
		Phone:      d.Phone,
		Location:   d.Location,
	}, nil
}
