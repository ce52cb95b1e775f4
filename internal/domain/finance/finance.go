package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"quotation_desk/internal/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// Summary is the dashboard view over every record.
type Summary struct {
	TotalQuotations    int             `json:"total_quotations"`
	TotalInvoices      int             `json:"total_invoices"`
	TotalReceipts      int             `json:"total_receipts"`
	TotalInvoiceAmount decimal.Decimal `json:"total_invoice_amount"`
	TotalReceived      decimal.Decimal `json:"total_received"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// Summarize totals invoices and receipts. The outstanding balance is not
// clamped: a negative value means the client paid more than was invoiced.
func Summarize(records []entities.Record) Summary {
	s := Summary{TotalInvoiceAmount: decimal.Zero, TotalReceived: decimal.Zero}
	for _, r := range records {
		switch r.Type {
		case entities.RecordTypeQuotation:
			s.TotalQuotations++
		case entities.RecordTypeInvoice:
			s.TotalInvoices++
			s.TotalInvoiceAmount = s.TotalInvoiceAmount.Add(r.Amount)
		case entities.RecordTypeReceipt:
			s.TotalReceipts++
			s.TotalReceived = s.TotalReceived.Add(r.Amount)
		}
	}
	s.OutstandingBalance = s.TotalInvoiceAmount.Sub(s.TotalReceived)
	return s
}

// DocumentTotals are the derived money figures of a quotation or invoice.
type DocumentTotals struct {
	ProductTotal     decimal.Decimal `json:"product_total"`
	InstallationCost decimal.Decimal `json:"installation_cost"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	DiscountValue    decimal.Decimal `json:"discount_value"`
	DiscountTotal    decimal.Decimal `json:"discount_total"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	BalanceDue       decimal.Decimal `json:"balance_due"`
}

// ComputeTotals applies the percentage discount to products plus installation
// and then subtracts the flat discount. Nothing is clamped, so a discount
// larger than the subtotal yields a negative grand total.
func ComputeTotals(productTotal, installation, discountPercent, discountValue decimal.Decimal) DocumentTotals {
	subtotal := productTotal.Add(installation)
	discount := subtotal.Mul(discountPercent).Div(hundred).Add(discountValue)
	grand := subtotal.Sub(discount)
	return DocumentTotals{
		ProductTotal:     productTotal,
		InstallationCost: installation,
		Subtotal:         subtotal,
		DiscountPercent:  discountPercent,
		DiscountValue:    discountValue,
		DiscountTotal:    discount,
		GrandTotal:       grand,
		BalanceDue:       grand,
	}
}

// DraftTotals computes the totals of a draft, including the balance left
// after the down payment and earlier payments.
func DraftTotals(d *entities.DraftDocument) DocumentTotals {
	t := ComputeTotals(d.ProductTotal(), d.InstallationCost, d.DiscountPercent, d.DiscountValue)
	t.BalanceDue = t.GrandTotal.Sub(d.DownPayment).Sub(d.PreviouslyPaid)
	return t
}

// LifecycleRow summarises one project: its quotation, invoice and receipts.
type LifecycleRow struct {
	BaseID        string          `json:"base_id"`
	ClientName    string          `json:"client_name"`
	HasQuotation  bool            `json:"has_quotation"`
	HasInvoice    bool            `json:"has_invoice"`
	HasReceipt    bool            `json:"has_receipt"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
	Received      decimal.Decimal `json:"received"`
	Balance       decimal.Decimal `json:"balance"`
	LastUpdate    string          `json:"last_update"`
}

// Lifecycle groups records by base id. Rows are ordered by last update,
// newest first, then by base id.
func Lifecycle(records []entities.Record) []LifecycleRow {
	rows := map[string]*LifecycleRow{}
	last := map[string]time.Time{}
	for _, r := range records {
		if r.BaseID == "" {
			continue
		}
		row, ok := rows[r.BaseID]
		if !ok {
			row = &LifecycleRow{BaseID: r.BaseID, InvoiceAmount: decimal.Zero, Received: decimal.Zero}
			rows[r.BaseID] = row
		}
		if row.ClientName == "" {
			row.ClientName = r.ClientName
		}
		switch r.Type {
		case entities.RecordTypeQuotation:
			row.HasQuotation = true
		case entities.RecordTypeInvoice:
			row.HasInvoice = true
			row.InvoiceAmount = row.InvoiceAmount.Add(r.Amount)
		case entities.RecordTypeReceipt:
			row.HasReceipt = true
			row.Received = row.Received.Add(r.Amount)
		}
		if r.Date.After(last[r.BaseID]) {
			last[r.BaseID] = r.Date
		}
	}

	out := make([]LifecycleRow, 0, len(rows))
	for id, row := range rows {
		row.Balance = row.InvoiceAmount.Sub(row.Received)
		if ts := last[id]; !ts.IsZero() {
			row.LastUpdate = ts.Format(entities.DateLayout)
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastUpdate != out[j].LastUpdate {
			return out[i].LastUpdate > out[j].LastUpdate
		}
		return out[i].BaseID < out[j].BaseID
	})
	return out
}
