package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"quotation_desk/internal/adapter/persistence/repository"
	"quotation_desk/internal/adapter/render"
	"quotation_desk/internal/config"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase/interfaces"
	mock_interfaces "quotation_desk/internal/usecase/interfaces/mocks"
)

type recordingCustomers struct {
	calls [][3]string
}

func (r *recordingCustomers) Upsert(_ context.Context, name, phone, location string) {
	r.calls = append(r.calls, [3]string{name, phone, location})
}

func (r *recordingCustomers) List(context.Context) ([]entities.Customer, interfaces.Source) {
	return nil, interfaces.SourceEmpty
}

var hubCatalog = []entities.CatalogItem{
	{Device: "Hub", Description: "Smart hub", UnitPrice: decimal.NewFromInt(500), Warranty: 2, Image: "iVBORw0KGgo="},
	{Device: "Sensor", Description: "Motion sensor", UnitPrice: decimal.NewFromInt(120), Warranty: 1},
}

type documentFixture struct {
	uc        *DocumentUseCase
	gateway   *mock_interfaces.MockIPersistenceGateway
	customers *recordingCustomers
	exportDir string
}

func newDocumentFixture(t *testing.T, ctrl *gomock.Controller) documentFixture {
	t.Helper()
	gw := mock_interfaces.NewMockIPersistenceGateway(ctrl)
	customers := &recordingCustomers{}
	dir := t.TempDir()
	uc := NewDocumentUseCase(DocumentDeps{
		Drafts:    repository.NewDraftMemoryRepository(),
		Gateway:   gw,
		Customers: customers,
		HTML:      render.NewHTMLRenderer(""),
		Word:      render.NewWordRenderer(""),
		Company: config.CompanyConfig{
			Name: "Newton Smart Home", Currency: "AED", BankName: "ENBD",
			PreparedBy: "Mr Bukhry", ApprovedBy: "Mr Mohammed",
		},
		ExportDir: dir,
	})
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "draft-1" }
	return documentFixture{uc: uc, gateway: gw, customers: customers, exportDir: dir}
}

func (f documentFixture) draftWithItems(t *testing.T) *entities.DraftDocument {
	t.Helper()
	ctx := context.Background()
	f.gateway.EXPECT().ReadRecords(gomock.Any()).Return(nil, interfaces.SourceEmpty)
	f.gateway.EXPECT().ReadCatalog(gomock.Any()).Return(hubCatalog, interfaces.SourceFlatFile).AnyTimes()

	d, err := f.uc.CreateDraft(ctx, "quotation", "")
	if err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	if _, err := f.uc.AddItem(ctx, d.ID, AddItemInput{Device: "Hub", Qty: 2}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	name, phone, loc := "Ali Hassan", "0501234567", "Dubai Marina"
	install, pct, val := decimal.NewFromInt(100), decimal.NewFromInt(10), decimal.NewFromInt(20)
	d, err = f.uc.UpdateDraft(ctx, d.ID, DraftPatch{
		ClientName: &name, Phone: &phone, Location: &loc,
		InstallationCost: &install, DiscountPercent: &pct, DiscountValue: &val,
	})
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	return d
}

func TestDocumentUseCase_CreateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("quotation numbering continues the year sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return([]entities.Record{
			{Type: entities.RecordTypeQuotation, Number: "Q20250001"},
			{Type: entities.RecordTypeQuotation, Number: "Q20240007"},
		}, interfaces.SourceFlatFile)

		d, err := f.uc.CreateDraft(ctx, "Quotation", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Number != "Q20250002" || d.PreparedBy != "Mr Bukhry" || len(d.PaymentTerms) == 0 {
			t.Fatalf("unexpected draft %+v", d)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		if _, err := f.uc.CreateDraft(ctx, "receipt", ""); !errors.Is(err, ErrInvalidDocumentKind) {
			t.Fatalf("expected ErrInvalidDocumentKind, got %v", err)
		}
	})

	t.Run("invoice from quotation inherits client and base id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return([]entities.Record{
			{BaseID: "20250510-001", Type: entities.RecordTypeQuotation, Number: "Q20250001",
				ClientName: "Ali", Phone: "0501234567", Location: "Dubai Marina"},
		}, interfaces.SourceFlatFile)

		d, err := f.uc.CreateDraft(ctx, "invoice", "Q20250001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Number != "INV-20250520-001" || d.BaseID != "20250510-001" || d.SourceQuotation != "Q20250001" {
			t.Fatalf("unexpected draft %+v", d)
		}
		if d.ClientName != "Ali" || d.PowerProvider != "DEWA – Dubai" {
			t.Fatalf("client not inherited: %+v", d)
		}
	})

	t.Run("unknown source quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return(nil, interfaces.SourceEmpty)
		if _, err := f.uc.CreateDraft(ctx, "invoice", "Q1"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestDocumentUseCase_Items(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newDocumentFixture(t, ctrl)
	d := f.draftWithItems(t)

	if _, err := f.uc.AddItem(ctx, d.ID, AddItemInput{Device: "Toaster", Qty: 1}); !errors.Is(err, ErrUnknownDevice) {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
	if _, err := f.uc.AddItem(ctx, d.ID, AddItemInput{Device: "Hub", Qty: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	warranty := 5
	if _, err := f.uc.AddItem(ctx, d.ID, AddItemInput{Device: "Sensor", Qty: 3, UnitPrice: decimal.NewFromInt(100), Warranty: &warranty}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	d, err := f.uc.AddItem(ctx, d.ID, AddItemInput{Device: "Sensor", Qty: 1})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(d.Items) != 3 || d.Items[1].Warranty != 5 || !d.Items[1].LineTotal.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected items %+v", d.Items)
	}

	d, err = f.uc.RemoveItem(ctx, d.ID, 2)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(d.Items) != 2 || d.Items[0].ItemNo != 1 || d.Items[1].ItemNo != 2 || d.Items[1].Product != "Sensor" {
		t.Fatalf("items not resequenced: %+v", d.Items)
	}
	if _, err := f.uc.RemoveItem(ctx, d.ID, 9); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := f.uc.RemoveItem(ctx, "missing", 1); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestDocumentUseCase_UpdateAndTerms(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newDocumentFixture(t, ctrl)
	d := f.draftWithItems(t)

	if d.PowerProvider != "DEWA – Dubai" {
		t.Fatalf("power provider not detected: %q", d.PowerProvider)
	}
	loc, provider := "Sharjah", "ADDC – Abu Dhabi"
	d, err := f.uc.UpdateDraft(ctx, d.ID, DraftPatch{Location: &loc, PowerProvider: &provider})
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if d.PowerProvider != provider {
		t.Fatalf("explicit provider overridden: %q", d.PowerProvider)
	}

	if _, err := f.uc.ApplyPaymentTerms(ctx, d.ID, "10-90"); !errors.Is(err, ErrUnknownPaymentTerms) {
		t.Fatalf("expected ErrUnknownPaymentTerms, got %v", err)
	}
	d, err = f.uc.ApplyPaymentTerms(ctx, d.ID, "50-50")
	if err != nil {
		t.Fatalf("ApplyPaymentTerms: %v", err)
	}
	if len(d.PaymentTerms) != 2 || !d.PaymentTerms[0].Percent.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected terms %+v", d.PaymentTerms)
	}
}

func TestDocumentUseCase_GenerateDescription(t *testing.T) {
	ctx := context.Background()

	t.Run("no generator configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		d := f.draftWithItems(t)
		_, warnings, err := f.uc.GenerateDescription(ctx, d.ID)
		if err != nil || len(warnings) != 1 {
			t.Fatalf("expected one warning, got %v %v", warnings, err)
		}
	})

	t.Run("generator failure leaves the draft unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		f.uc.textgen = gen
		d := f.draftWithItems(t)

		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota"))
		got, warnings, err := f.uc.GenerateDescription(ctx, d.ID)
		if err != nil || len(warnings) != 1 || got.ProjectDescription != "" {
			t.Fatalf("unexpected result %+v %v %v", got, warnings, err)
		}
	})

	t.Run("generated text is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		f.uc.textgen = gen
		d := f.draftWithItems(t)

		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "- Smart hub (Qty: 2)") {
				t.Fatalf("unexpected prompt %q", prompt)
			}
			return " Full smart home fit-out. ", nil
		})
		got, warnings, err := f.uc.GenerateDescription(ctx, d.ID)
		if err != nil || len(warnings) != 0 || got.ProjectDescription != "Full smart home fit-out." {
			t.Fatalf("unexpected result %+v %v %v", got, warnings, err)
		}
	})
}

func TestDocumentUseCase_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		d := f.draftWithItems(t)

		a, err := f.uc.Export(ctx, d.ID, "")
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		body := string(a.Body)
		if a.Filename != "Quotation_Q20250001.html" || !strings.Contains(body, "Ali Hassan") || !strings.Contains(body, "AED 970.00") {
			t.Fatalf("unexpected artifact %s", a.Filename)
		}
	})

	t.Run("docx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		d := f.draftWithItems(t)

		a, err := f.uc.Export(ctx, d.ID, "docx")
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		text, err := render.DocumentText(a.Body)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(text, "Grand total: 970.00") || !strings.Contains(text, "+971 50 123 4567") {
			t.Fatalf("unexpected document text %q", text)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		engine := mock_interfaces.NewMockIPDFEngine(ctrl)
		f.uc.pdf = engine
		d := f.draftWithItems(t)

		engine.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, src interfaces.PDFSource) ([]byte, error) {
			if !src.Total.Equal(decimal.NewFromInt(970)) || len(src.Items) != 1 || src.HTML == "" {
				t.Fatalf("unexpected source %+v", src)
			}
			return []byte("%PDF-1.7"), nil
		})
		a, err := f.uc.Export(ctx, d.ID, "pdf")
		if err != nil || a.ContentType != "application/pdf" {
			t.Fatalf("unexpected artifact %+v %v", a, err)
		}
	})

	t.Run("pdf failure falls back to html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		engine := mock_interfaces.NewMockIPDFEngine(ctrl)
		f.uc.pdf = engine
		d := f.draftWithItems(t)

		engine.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("no engine"))
		a, err := f.uc.Export(ctx, d.ID, "pdf")
		if err != nil || !strings.HasSuffix(a.Filename, ".html") || len(a.Warnings) != 1 {
			t.Fatalf("unexpected artifact %+v %v", a, err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		if _, err := f.uc.Export(ctx, "x", "xls"); !errors.Is(err, ErrInvalidExportFormat) {
			t.Fatalf("expected ErrInvalidExportFormat, got %v", err)
		}
	})
}

func TestDocumentUseCase_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("saves record, upserts customer and exports html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		d := f.draftWithItems(t)

		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return([]entities.Record{
			{BaseID: "20250520-001", Type: entities.RecordTypeQuotation, Number: "Q20240001"},
		}, interfaces.SourceFlatFile)
		var saved entities.Record
		f.gateway.EXPECT().WriteRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Record) error {
			saved = r
			return nil
		})

		res, err := f.uc.Finalize(ctx, d.ID)
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if saved.Type != entities.RecordTypeQuotation || saved.Number != "Q20250001" || saved.BaseID != "20250520-002" {
			t.Fatalf("unexpected record %+v", saved)
		}
		if !saved.Amount.Equal(decimal.NewFromInt(970)) {
			t.Fatalf("amount = %s, want 970", saved.Amount)
		}
		if len(f.customers.calls) != 1 || f.customers.calls[0][0] != "Ali Hassan" {
			t.Fatalf("customer not upserted: %v", f.customers.calls)
		}
		if _, err := os.Stat(res.ExportPath); err != nil {
			t.Fatalf("export not written: %v", err)
		}

		if _, err := f.uc.Finalize(ctx, d.ID); !errors.Is(err, ErrDraftFinalized) {
			t.Fatalf("expected ErrDraftFinalized, got %v", err)
		}
		if _, err := f.uc.AddItem(ctx, d.ID, AddItemInput{Device: "Hub", Qty: 1}); !errors.Is(err, ErrDraftFinalized) {
			t.Fatalf("finalized draft must be read-only, got %v", err)
		}
	})

	t.Run("invoice note carries the source quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		quotation := entities.Record{BaseID: "20250510-001", Type: entities.RecordTypeQuotation, Number: "Q20250001", ClientName: "Ali"}
		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return([]entities.Record{quotation}, interfaces.SourceFlatFile).Times(2)

		d, err := f.uc.CreateDraft(ctx, "invoice", "Q20250001")
		if err != nil {
			t.Fatalf("CreateDraft: %v", err)
		}
		f.gateway.EXPECT().WriteRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Record) error {
			if r.Type != entities.RecordTypeInvoice || r.Note != "Q20250001" || r.BaseID != "20250510-001" {
				t.Fatalf("unexpected record %+v", r)
			}
			return nil
		})
		if _, err := f.uc.Finalize(ctx, d.ID); err != nil {
			t.Fatalf("Finalize: %v", err)
		}
	})

	t.Run("flat file failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		d := f.draftWithItems(t)

		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return(nil, interfaces.SourceEmpty)
		f.gateway.EXPECT().WriteRecord(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		if _, err := f.uc.Finalize(ctx, d.ID); err == nil || err.Error() != "disk full" {
			t.Fatalf("expected disk full, got %v", err)
		}
		if len(f.customers.calls) != 0 {
			t.Fatal("customer must not be upserted when the save fails")
		}
	})

	t.Run("client name is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return(nil, interfaces.SourceEmpty)
		d, err := f.uc.CreateDraft(ctx, "quotation", "")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.uc.Finalize(ctx, d.ID); !errors.Is(err, ErrMissingClientName) {
			t.Fatalf("expected ErrMissingClientName, got %v", err)
		}
	})
}

func TestDocumentUseCase_CheckTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newDocumentFixture(t, ctrl)

	for _, name := range []string{QuotationTemplateName, InvoiceTemplateName, WordTemplateName} {
		check, err := f.uc.CheckTemplate(context.Background(), name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(check.Missing) != 0 {
			t.Errorf("%s: built-in template reads unknown keys %v", name, check.Missing)
		}
	}

	if _, err := f.uc.CheckTemplate(context.Background(), "nope.html"); !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestDocumentUseCase_CollaboratorFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("draft store failure on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		drafts := mock_interfaces.NewMockIDraftRepository(ctrl)
		f.uc.drafts = drafts

		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return(nil, interfaces.SourceEmpty)
		drafts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("full"))
		if _, err := f.uc.CreateDraft(ctx, "quotation", ""); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unknown draft id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		drafts := mock_interfaces.NewMockIDraftRepository(ctrl)
		f.uc.drafts = drafts

		drafts.EXPECT().Get(gomock.Any(), "nope").Return(nil, nil)
		if _, err := f.uc.GetDraft(ctx, "nope"); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
		if _, err := f.uc.GetDraft(ctx, "  "); !errors.Is(err, ErrInvalidDraftID) {
			t.Fatalf("expected ErrInvalidDraftID, got %v", err)
		}
	})

	t.Run("word renderer failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		word := mock_interfaces.NewMockIWordRenderer(ctrl)
		f.uc.word = word
		d := f.draftWithItems(t)

		word.EXPECT().Render(gomock.Any()).DoAndReturn(func(values map[string]string) ([]byte, error) {
			if values["{{grand_total}}"] != "970.00" || values["{{discount_percent}}"] != "10" {
				t.Fatalf("unexpected values %v", values)
			}
			return nil, render.ErrTemplateNotFound
		})
		if _, err := f.uc.Export(ctx, d.ID, "docx"); !errors.Is(err, render.ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("render failure after save is only a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newDocumentFixture(t, ctrl)
		html := mock_interfaces.NewMockIHTMLRenderer(ctrl)
		f.uc.html = html
		d := f.draftWithItems(t)

		f.gateway.EXPECT().ReadRecords(gomock.Any()).Return(nil, interfaces.SourceEmpty)
		f.gateway.EXPECT().WriteRecord(gomock.Any(), gomock.Any()).Return(nil)
		html.EXPECT().Render(QuotationTemplateName, gomock.Any()).Return("", render.ErrRender)

		res, err := f.uc.Finalize(ctx, d.ID)
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if len(res.Warnings) != 1 || res.ExportPath != "" || res.Record.Number != "Q20250001" {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}
