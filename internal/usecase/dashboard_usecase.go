package usecase

import (
	"context"
	"sort"
	"strings"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/finance"
	"quotation_desk/internal/domain/normalize"
	"quotation_desk/internal/usecase/interfaces"
)

var ErrInvalidRecordType = entities.ErrInvalidRecordType

// Dashboard is the read model of the home screen.
type Dashboard struct {
	Summary   finance.Summary        `json:"summary"`
	Lifecycle []finance.LifecycleRow `json:"lifecycle"`
	Source    interfaces.Source      `json:"source"`
}

// QuotationOption is one entry of the "create invoice from quotation" list.
type QuotationOption struct {
	Number     string `json:"number"`
	ClientName string `json:"client_name"`
	Label      string `json:"label"`
}

type IDashboardUseCase interface {
	Dashboard(ctx context.Context) Dashboard
	ListRecords(ctx context.Context, recordType string) ([]entities.Record, interfaces.Source, error)
	QuotationOptions(ctx context.Context) []QuotationOption
	ListCatalog(ctx context.Context) ([]entities.CatalogItem, interfaces.Source)
}

type DashboardUseCase struct {
	gateway interfaces.IPersistenceGateway
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(gateway interfaces.IPersistenceGateway) *DashboardUseCase {
	return &DashboardUseCase{gateway: gateway}
}

func (u *DashboardUseCase) Dashboard(ctx context.Context) Dashboard {
	records, src := u.gateway.ReadRecords(ctx)
	return Dashboard{
		Summary:   finance.Summarize(records),
		Lifecycle: finance.Lifecycle(records),
		Source:    src,
	}
}

// ListRecords returns every record, or only those of one type when
// recordType is set.
func (u *DashboardUseCase) ListRecords(ctx context.Context, recordType string) ([]entities.Record, interfaces.Source, error) {
	var want entities.RecordType
	if strings.TrimSpace(recordType) != "" {
		t, err := entities.ParseRecordType(recordType)
		if err != nil {
			return nil, "", err
		}
		want = t
	}

	records, src := u.gateway.ReadRecords(ctx)
	out := make([]entities.Record, 0, len(records))
	for _, r := range records {
		if want == "" || r.Type == want {
			out = append(out, r)
		}
	}
	return out, src, nil
}

// QuotationOptions lists quotations newest number first with labels like
// "Q20250003  |  Ali  |  0501234567 xxxxxxxxxx".
func (u *DashboardUseCase) QuotationOptions(ctx context.Context) []QuotationOption {
	records, _ := u.gateway.ReadRecords(ctx)
	out := []QuotationOption{}
	for _, r := range records {
		if r.Type != entities.RecordTypeQuotation || r.Number == "" {
			continue
		}
		out = append(out, QuotationOption{
			Number:     r.Number,
			ClientName: r.ClientName,
			Label:      r.Number + "  |  " + r.ClientName + "  |  " + normalize.PhoneLabelMask(r.Phone),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out
}

func (u *DashboardUseCase) ListCatalog(ctx context.Context) ([]entities.CatalogItem, interfaces.Source) {
	return u.gateway.ReadCatalog(ctx)
}
