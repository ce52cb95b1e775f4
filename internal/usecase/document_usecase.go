package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"quotation_desk/internal/config"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/numbering"
	"quotation_desk/internal/usecase/interfaces"
)

var (
	ErrInvalidDraftID            = errors.New("invalid draft id")
	ErrDraftNotFound             = errors.New("draft not found")
	ErrUnknownDevice             = errors.New("device not in catalog")
	ErrQuotationNotFound         = errors.New("quotation not found")
	ErrUnknownPaymentTerms       = errors.New("unknown payment terms preset")
	ErrMissingClientName         = errors.New("client name is required")
	ErrInvalidExportFormat       = errors.New("invalid export format")
	ErrTextGenerationUnavailable = errors.New("text generation unavailable")
	ErrNoItemsForDescription     = errors.New("no items to describe")

	ErrInvalidDocumentKind = entities.ErrInvalidDocumentKind
	ErrInvalidQuantity     = entities.ErrInvalidQuantity
	ErrItemNotFound        = entities.ErrLineItemNotFound
	ErrDraftFinalized      = entities.ErrDraftFinalized
)

// DraftPatch carries the header fields a client may change. Nil fields are
// left untouched.
type DraftPatch struct {
	ClientName           *string
	Phone                *string
	Location             *string
	InstallationCost     *decimal.Decimal
	DiscountPercent      *decimal.Decimal
	DiscountValue        *decimal.Decimal
	DownPayment          *decimal.Decimal
	PreviouslyPaid       *decimal.Decimal
	WarrantyText         *string
	WarrantyShippingCost *decimal.Decimal
	PowerProvider        *string
	ProjectTitle         *string
	ProjectDescription   *string
	PreparedBy           *string
	ApprovedBy           *string
}

// AddItemInput selects a catalog product. A zero UnitPrice and a nil
// Warranty keep the catalog values.
type AddItemInput struct {
	Device    string
	Qty       int
	UnitPrice decimal.Decimal
	Warranty  *int
}

// IDocumentUseCase drives a quotation or invoice from draft to saved record.
type IDocumentUseCase interface {
	CreateDraft(ctx context.Context, kind, fromQuotation string) (*entities.DraftDocument, error)
	GetDraft(ctx context.Context, id string) (*entities.DraftDocument, error)
	UpdateDraft(ctx context.Context, id string, patch DraftPatch) (*entities.DraftDocument, error)
	AddItem(ctx context.Context, id string, in AddItemInput) (*entities.DraftDocument, error)
	RemoveItem(ctx context.Context, id string, itemNo int) (*entities.DraftDocument, error)
	ApplyPaymentTerms(ctx context.Context, id, preset string) (*entities.DraftDocument, error)
	GenerateDescription(ctx context.Context, id string) (*entities.DraftDocument, []string, error)
	Export(ctx context.Context, id, format string) (Artifact, error)
	Finalize(ctx context.Context, id string) (FinalizeResult, error)
	CheckTemplate(ctx context.Context, name string) (TemplateCheck, error)
}

// DocumentDeps groups the collaborators of DocumentUseCase. TextGen and PDF
// may be nil; the matching features then degrade to warnings.
type DocumentDeps struct {
	Drafts    interfaces.IDraftRepository
	Gateway   interfaces.IPersistenceGateway
	Customers ICustomerUseCase
	TextGen   interfaces.ITextGenerator
	HTML      interfaces.IHTMLRenderer
	Word      interfaces.IWordRenderer
	PDF       interfaces.IPDFEngine
	Company   config.CompanyConfig
	ExportDir string
	Log       *zap.Logger
}

type DocumentUseCase struct {
	drafts    interfaces.IDraftRepository
	gateway   interfaces.IPersistenceGateway
	customers ICustomerUseCase
	textgen   interfaces.ITextGenerator
	html      interfaces.IHTMLRenderer
	word      interfaces.IWordRenderer
	pdf       interfaces.IPDFEngine
	company   config.CompanyConfig
	exportDir string
	log       *zap.Logger

	now   func() time.Time
	newID func() string
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(deps DocumentDeps) *DocumentUseCase {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentUseCase{
		drafts:    deps.Drafts,
		gateway:   deps.Gateway,
		customers: deps.Customers,
		textgen:   deps.TextGen,
		html:      deps.HTML,
		word:      deps.Word,
		pdf:       deps.PDF,
		company:   deps.Company,
		exportDir: deps.ExportDir,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// CreateDraft opens a new draft with its document number reserved. An
// invoice created from a quotation inherits the quotation's client and
// base id.
func (u *DocumentUseCase) CreateDraft(ctx context.Context, kind, fromQuotation string) (*entities.DraftDocument, error) {
	k, err := entities.ParseDocumentKind(kind)
	if err != nil {
		return nil, err
	}
	fromQuotation = strings.TrimSpace(fromQuotation)
	now := u.now()

	records, _ := u.gateway.ReadRecords(ctx)
	d := entities.NewDraftDocument(u.newID(), k, now)
	d.PreparedBy = u.company.PreparedBy
	d.ApprovedBy = u.company.ApprovedBy

	switch k {
	case entities.DocumentKindQuotation:
		d.Number = numbering.NextQuotationNumber(records, now)
	case entities.DocumentKindInvoice:
		d.Number = numbering.NextInvoiceNumber(records, now)
		if fromQuotation != "" {
			q, ok := findRecord(records, entities.RecordTypeQuotation, fromQuotation)
			if !ok {
				return nil, ErrQuotationNotFound
			}
			d.SourceQuotation = q.Number
			d.BaseID = q.BaseID
			d.ClientName = q.ClientName
			d.Phone = q.Phone
			d.Location = q.Location
			d.PowerProvider = entities.DetectPowerProvider(q.Location)
		}
	}

	if err := u.drafts.Create(ctx, d); err != nil {
		return nil, err
	}
	u.log.Info("[document][usecase] draft created",
		zap.String("draft_id", d.ID), zap.String("kind", string(d.Kind)), zap.String("number", d.Number))
	return d, nil
}

func (u *DocumentUseCase) GetDraft(ctx context.Context, id string) (*entities.DraftDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidDraftID
	}
	d, err := u.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

// UpdateDraft applies a header patch. Changing the location re-detects the
// power provider unless the patch sets one explicitly.
func (u *DocumentUseCase) UpdateDraft(ctx context.Context, id string, patch DraftPatch) (*entities.DraftDocument, error) {
	return u.mutate(ctx, id, func(d *entities.DraftDocument) error {
		setString(&d.ClientName, patch.ClientName)
		setString(&d.Phone, patch.Phone)
		if patch.Location != nil {
			d.Location = strings.TrimSpace(*patch.Location)
			if patch.PowerProvider == nil {
				d.PowerProvider = entities.DetectPowerProvider(d.Location)
			}
		}
		setDecimal(&d.InstallationCost, patch.InstallationCost)
		setDecimal(&d.DiscountPercent, patch.DiscountPercent)
		setDecimal(&d.DiscountValue, patch.DiscountValue)
		setDecimal(&d.DownPayment, patch.DownPayment)
		setDecimal(&d.PreviouslyPaid, patch.PreviouslyPaid)
		if patch.WarrantyText != nil {
			d.WarrantyText = *patch.WarrantyText
		}
		setDecimal(&d.WarrantyShippingCost, patch.WarrantyShippingCost)
		setString(&d.PowerProvider, patch.PowerProvider)
		setString(&d.ProjectTitle, patch.ProjectTitle)
		if patch.ProjectDescription != nil {
			d.ProjectDescription = *patch.ProjectDescription
		}
		setString(&d.PreparedBy, patch.PreparedBy)
		setString(&d.ApprovedBy, patch.ApprovedBy)
		return nil
	})
}

func (u *DocumentUseCase) AddItem(ctx context.Context, id string, in AddItemInput) (*entities.DraftDocument, error) {
	device := strings.TrimSpace(in.Device)
	if in.Qty < 1 {
		return nil, ErrInvalidQuantity
	}
	catalog, src := u.gateway.ReadCatalog(ctx)
	product, ok := entities.FindCatalogItem(catalog, device)
	if !ok {
		u.log.Info("[document][usecase] unknown device", zap.String("device", device), zap.String("catalog_source", string(src)))
		return nil, ErrUnknownDevice
	}
	warranty := -1
	if in.Warranty != nil {
		warranty = *in.Warranty
	}
	return u.mutate(ctx, id, func(d *entities.DraftDocument) error {
		_, err := d.AddItem(product, in.Qty, in.UnitPrice, warranty)
		return err
	})
}

func (u *DocumentUseCase) RemoveItem(ctx context.Context, id string, itemNo int) (*entities.DraftDocument, error) {
	return u.mutate(ctx, id, func(d *entities.DraftDocument) error {
		return d.RemoveItem(itemNo)
	})
}

func (u *DocumentUseCase) ApplyPaymentTerms(ctx context.Context, id, preset string) (*entities.DraftDocument, error) {
	terms, ok := entities.PresetPaymentTerms(strings.TrimSpace(preset))
	if !ok {
		return nil, ErrUnknownPaymentTerms
	}
	return u.mutate(ctx, id, func(d *entities.DraftDocument) error {
		d.PaymentTerms = terms
		return nil
	})
}

// GenerateDescription asks the text generator for a project description.
// Any generator failure leaves the draft unchanged and is returned as a
// warning, not an error.
func (u *DocumentUseCase) GenerateDescription(ctx context.Context, id string) (*entities.DraftDocument, []string, error) {
	d, err := u.GetDraft(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if u.textgen == nil {
		return d, []string{ErrTextGenerationUnavailable.Error()}, nil
	}
	prompt := DescriptionPrompt(d.Items)
	if prompt == "" {
		return d, []string{ErrNoItemsForDescription.Error()}, nil
	}

	text, err := u.textgen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		u.log.Warn("[document][usecase] description generation failed", zap.String("draft_id", d.ID), zap.Error(err))
		return d, []string{ErrTextGenerationUnavailable.Error()}, nil
	}

	updated, err := u.mutate(ctx, id, func(d *entities.DraftDocument) error {
		d.ProjectDescription = strings.TrimSpace(text)
		return nil
	})
	return updated, nil, err
}

// mutate loads a draft, applies fn and saves it. Finalized drafts are
// read-only.
func (u *DocumentUseCase) mutate(ctx context.Context, id string, fn func(d *entities.DraftDocument) error) (*entities.DraftDocument, error) {
	d, err := u.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.FinalizedAt != nil {
		return nil, ErrDraftFinalized
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = u.now()
	if err := u.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func findRecord(records []entities.Record, t entities.RecordType, number string) (entities.Record, bool) {
	var (
		found entities.Record
		ok    bool
	)
	for _, r := range records {
		if r.Type == t && r.Number == number {
			found, ok = r, true
		}
	}
	return found, ok
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}
