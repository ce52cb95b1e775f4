package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quotation_desk/internal/adapter/persistence/schema"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/finance"
	"quotation_desk/internal/domain/normalize"
	"quotation_desk/internal/domain/numbering"
	"quotation_desk/internal/usecase/interfaces"
)

const (
	QuotationTemplateName = "quotation_A4.html"
	InvoiceTemplateName   = "invoice_A4.html"
	WordTemplateName      = "invoice.docx"
)

type ExportFormat string

const (
	ExportHTML ExportFormat = "html"
	ExportDOCX ExportFormat = "docx"
	ExportPDF  ExportFormat = "pdf"
)

// Artifact is a rendered document ready for download.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
	Warnings    []string
}

// FinalizeResult reports the saved record and where its HTML copy was
// written. Warnings list the side effects that did not succeed.
type FinalizeResult struct {
	Record     entities.Record
	Draft      *entities.DraftDocument
	ExportPath string
	Warnings   []string
}

type TemplateCheck struct {
	Template string   `json:"template"`
	Missing  []string `json:"missing"`
	Extra    []string `json:"extra"`
}

// RenderContext builds the HTML template context for a draft.
func (u *DocumentUseCase) RenderContext(d *entities.DraftDocument) map[string]any {
	totals := finance.DraftTotals(d)
	date := u.now()
	if d.FinalizedAt != nil {
		date = *d.FinalizedAt
	}

	mobile := d.Phone
	if d.Kind == entities.DocumentKindInvoice {
		if intl, ok := normalize.InternationalMobile(d.Phone); ok {
			mobile = intl
		}
	}

	return map[string]any{
		"company_name":        u.company.Name,
		"quotation_number":    d.Number,
		"invoice_no":          d.Number,
		"source_quotation":    d.SourceQuotation,
		"quotation_date":      date.Format(entities.DateLayout),
		"client_name":         d.ClientName,
		"mobile":              mobile,
		"client_address":      d.Location,
		"project_title":       d.ProjectTitle,
		"project_scope":       d.ProjectDescription,
		"project_description": d.ProjectDescription,
		"items":               d.Items,
		"subtotal":            totals.ProductTotal,
		"Installation":        totals.InstallationCost,
		"discount_total":      totals.DiscountTotal,
		"total_amount":        totals.GrandTotal,
		"down_payment":        d.DownPayment,
		"previously_paid":     d.PreviouslyPaid,
		"balance_due":         totals.BalanceDue,
		"payment_terms_html":  entities.PaymentTermsHTML(d.PaymentTerms),
		"warranty_html":       entities.WarrantyHTML(d.WarrantyText, d.WarrantyShippingCost),
		"power_provider":      d.PowerProvider,
		"bank_name":           u.company.BankName,
		"bank_account":        u.company.BankAccount,
		"bank_iban":           u.company.BankIBAN,
		"sig_name":            d.PreparedBy,
		"sig_role":            d.ApprovedBy,
	}
}

// WordValues builds the placeholder values of the Word template.
func (u *DocumentUseCase) WordValues(d *entities.DraftDocument) map[string]string {
	totals := finance.DraftTotals(d)
	phone := d.Phone
	if intl, ok := normalize.InternationalMobile(d.Phone); ok {
		phone = intl
	}
	return map[string]string{
		"{{client_name}}":      d.ClientName,
		"{{invoice_no}}":       d.Number,
		"{{client_location}}":  d.Location,
		"{{client_phone}}":     phone,
		"{{total_products}}":   finance.FormatAmount(totals.ProductTotal),
		"{{installation}}":     finance.FormatAmount(totals.InstallationCost),
		"{{discount_value}}":   finance.FormatAmount(totals.DiscountValue),
		"{{discount_percent}}": totals.DiscountPercent.StringFixed(0),
		"{{grand_total}}":      finance.FormatAmount(totals.GrandTotal),
	}
}

func templateFor(k entities.DocumentKind) string {
	if k == entities.DocumentKindInvoice {
		return InvoiceTemplateName
	}
	return QuotationTemplateName
}

func artifactBase(d *entities.DraftDocument) string {
	prefix := "Quotation"
	if d.Kind == entities.DocumentKindInvoice {
		prefix = "Invoice"
	}
	return prefix + "_" + d.Number
}

// Export renders the draft. A PDF request falls back to HTML with a warning
// when no PDF engine succeeds.
func (u *DocumentUseCase) Export(ctx context.Context, id, format string) (Artifact, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(format)))
	if f == "" {
		f = ExportHTML
	}
	if f != ExportHTML && f != ExportDOCX && f != ExportPDF {
		return Artifact{}, ErrInvalidExportFormat
	}
	d, err := u.GetDraft(ctx, id)
	if err != nil {
		return Artifact{}, err
	}
	base := artifactBase(d)

	if f == ExportDOCX {
		body, err := u.word.Render(u.WordValues(d))
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{
			Filename:    base + ".docx",
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Body:        body,
		}, nil
	}

	html, err := u.html.Render(templateFor(d.Kind), u.RenderContext(d))
	if err != nil {
		return Artifact{}, err
	}
	htmlArtifact := Artifact{Filename: base + ".html", ContentType: "text/html; charset=utf-8", Body: []byte(html)}
	if f == ExportHTML {
		return htmlArtifact, nil
	}

	if u.pdf == nil {
		htmlArtifact.Warnings = []string{"pdf generation unavailable, returning html"}
		return htmlArtifact, nil
	}
	pdf, err := u.pdf.Render(ctx, u.pdfSource(d, html))
	if err != nil {
		u.log.Warn("[document][usecase] pdf export failed", zap.String("number", d.Number), zap.Error(err))
		htmlArtifact.Warnings = []string{"pdf generation unavailable, returning html"}
		return htmlArtifact, nil
	}
	return Artifact{Filename: base + ".pdf", ContentType: "application/pdf", Body: pdf}, nil
}

func (u *DocumentUseCase) pdfSource(d *entities.DraftDocument, html string) interfaces.PDFSource {
	totals := finance.DraftTotals(d)
	items := make([]entities.DocumentItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, schema.DocumentItemFromLineItem(it))
	}
	title := "Quotation"
	if d.Kind == entities.DocumentKindInvoice {
		title = "Invoice"
	}
	date := u.now()
	if d.FinalizedAt != nil {
		date = *d.FinalizedAt
	}
	return interfaces.PDFSource{
		HTML:         html,
		Title:        title,
		CompanyName:  u.company.Name,
		Number:       d.Number,
		Date:         date.Format(entities.DateLayout),
		ClientName:   d.ClientName,
		ClientPhone:  d.Phone,
		Location:     d.Location,
		Currency:     u.company.Currency,
		Items:        items,
		Subtotal:     totals.ProductTotal,
		Installation: totals.InstallationCost,
		Discount:     totals.DiscountTotal,
		Total:        totals.GrandTotal,
	}
}

// Finalize saves the draft as a lifecycle record, upserts its customer and
// writes the HTML copy under the exports directory. Only the flat file
// write can fail the call; the HTML copy is best-effort once the record is
// saved.
func (u *DocumentUseCase) Finalize(ctx context.Context, id string) (FinalizeResult, error) {
	d, err := u.GetDraft(ctx, id)
	if err != nil {
		return FinalizeResult{}, err
	}
	if d.FinalizedAt != nil {
		return FinalizeResult{}, ErrDraftFinalized
	}
	if strings.TrimSpace(d.ClientName) == "" {
		return FinalizeResult{}, ErrMissingClientName
	}

	now := u.now()
	records, _ := u.gateway.ReadRecords(ctx)
	number := d.Number
	if number == "" {
		if d.Kind == entities.DocumentKindInvoice {
			number = numbering.NextInvoiceNumber(records, now)
		} else {
			number = numbering.NextQuotationNumber(records, now)
		}
	}
	baseID := d.BaseID
	if baseID == "" {
		baseID = numbering.NextBaseID(records, now)
	}

	totals := finance.DraftTotals(d)
	rec, err := d.Finalize(baseID, number, now, totals.GrandTotal)
	if err != nil {
		return FinalizeResult{}, err
	}
	rec.Note = d.SourceQuotation

	if err := u.gateway.WriteRecord(ctx, rec); err != nil {
		return FinalizeResult{}, err
	}
	u.log.Info("[document][usecase] record saved",
		zap.String("number", rec.Number), zap.String("base_id", rec.BaseID), zap.String("amount", rec.Amount.StringFixed(2)))

	if u.customers != nil {
		u.customers.Upsert(ctx, d.ClientName, d.Phone, d.Location)
	}

	result := FinalizeResult{Record: rec, Draft: d}
	if err := u.drafts.Save(ctx, d); err != nil {
		u.log.Warn("[document][usecase] draft save after finalize failed", zap.String("draft_id", d.ID), zap.Error(err))
	}

	path, err := u.writeExport(d)
	if err != nil {
		u.log.Warn("[document][usecase] html export failed", zap.String("number", rec.Number), zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("document not exported: %v", err))
	}
	result.ExportPath = path
	return result, nil
}

func (u *DocumentUseCase) writeExport(d *entities.DraftDocument) (string, error) {
	html, err := u.html.Render(templateFor(d.Kind), u.RenderContext(d))
	if err != nil {
		return "", err
	}
	if u.exportDir == "" {
		return "", errors.New("export directory not configured")
	}
	if err := os.MkdirAll(u.exportDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(u.exportDir, artifactBase(d)+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// CheckTemplate compares a template's placeholders with the keys a draft
// context provides. Names ending in .docx check the Word template.
func (u *DocumentUseCase) CheckTemplate(_ context.Context, name string) (TemplateCheck, error) {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(strings.ToLower(name), ".docx") {
		keys := make([]string, 0, 9)
		for k := range u.WordValues(entities.NewDraftDocument("", entities.DocumentKindInvoice, u.now())) {
			keys = append(keys, k)
		}
		missing, extra, err := u.word.Check(keys)
		if err != nil {
			return TemplateCheck{}, err
		}
		return TemplateCheck{Template: name, Missing: nonNil(missing), Extra: nonNil(extra)}, nil
	}

	kind := entities.DocumentKindQuotation
	if strings.Contains(strings.ToLower(name), "invoice") {
		kind = entities.DocumentKindInvoice
	}
	ctxMap := u.RenderContext(entities.NewDraftDocument("", kind, u.now()))
	keys := make([]string, 0, len(ctxMap))
	for k := range ctxMap {
		keys = append(keys, k)
	}
	missing, extra, err := u.html.Check(name, keys)
	if err != nil {
		return TemplateCheck{}, err
	}
	return TemplateCheck{Template: name, Missing: nonNil(missing), Extra: nonNil(extra)}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
