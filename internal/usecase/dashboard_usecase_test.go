package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase/interfaces"
	mock_interfaces "quotation_desk/internal/usecase/interfaces/mocks"
)

func sampleRecords() []entities.Record {
	return []entities.Record{
		{BaseID: "20250501-001", Date: fixedNow.AddDate(0, 0, -19), Type: entities.RecordTypeQuotation, Number: "Q20250001", ClientName: "Ali", Phone: "+971 50 123 4567", Amount: decimal.NewFromInt(1000)},
		{BaseID: "20250501-001", Date: fixedNow.AddDate(0, 0, -10), Type: entities.RecordTypeInvoice, Number: "INV-20250510-001", ClientName: "Ali", Amount: decimal.NewFromInt(1000)},
		{BaseID: "20250501-001", Date: fixedNow, Type: entities.RecordTypeReceipt, Number: "RCT-20250520-001", ClientName: "Ali", Amount: decimal.NewFromInt(400)},
		{BaseID: "20250515-001", Date: fixedNow.AddDate(0, 0, -5), Type: entities.RecordTypeQuotation, Number: "Q20250002", ClientName: "Sara"},
	}
}

func TestDashboardUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockIPersistenceGateway(ctrl)
	uc := NewDashboardUseCase(gw)

	gw.EXPECT().ReadRecords(gomock.Any()).Return(sampleRecords(), interfaces.SourcePrimary)

	got := uc.Dashboard(context.Background())
	if got.Source != interfaces.SourcePrimary {
		t.Fatalf("source = %s", got.Source)
	}
	if got.Summary.TotalQuotations != 2 || got.Summary.TotalInvoices != 1 || got.Summary.TotalReceipts != 1 {
		t.Fatalf("unexpected counts %+v", got.Summary)
	}
	if !got.Summary.OutstandingBalance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("outstanding = %s, want 600", got.Summary.OutstandingBalance)
	}
	if len(got.Lifecycle) != 2 || got.Lifecycle[0].BaseID != "20250501-001" {
		t.Fatalf("unexpected lifecycle %+v", got.Lifecycle)
	}
}

func TestDashboardUseCase_ListRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock_interfaces.NewMockIPersistenceGateway(ctrl)
		uc := NewDashboardUseCase(gw)
		gw.EXPECT().ReadRecords(gomock.Any()).Return(sampleRecords(), interfaces.SourceFlatFile)

		got, src, err := uc.ListRecords(ctx, "quotation")
		if err != nil || src != interfaces.SourceFlatFile || len(got) != 2 {
			t.Fatalf("unexpected result %v %s %v", got, src, err)
		}
	})

	t.Run("blank type returns everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock_interfaces.NewMockIPersistenceGateway(ctrl)
		uc := NewDashboardUseCase(gw)
		gw.EXPECT().ReadRecords(gomock.Any()).Return(sampleRecords(), interfaces.SourceFlatFile)

		got, _, err := uc.ListRecords(ctx, "")
		if err != nil || len(got) != 4 {
			t.Fatalf("unexpected result %v %v", got, err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewDashboardUseCase(mock_interfaces.NewMockIPersistenceGateway(ctrl))
		if _, _, err := uc.ListRecords(ctx, "x"); !errors.Is(err, ErrInvalidRecordType) {
			t.Fatalf("expected ErrInvalidRecordType, got %v", err)
		}
	})
}

func TestDashboardUseCase_QuotationOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockIPersistenceGateway(ctrl)
	uc := NewDashboardUseCase(gw)
	gw.EXPECT().ReadRecords(gomock.Any()).Return(sampleRecords(), interfaces.SourceFlatFile)

	got := uc.QuotationOptions(context.Background())
	if len(got) != 2 || got[0].Number != "Q20250002" {
		t.Fatalf("unexpected options %+v", got)
	}
	if !strings.HasPrefix(got[1].Label, "Q20250001  |  Ali  |  0501234567 ") {
		t.Fatalf("unexpected label %q", got[1].Label)
	}
}

func TestDashboardUseCase_ListCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockIPersistenceGateway(ctrl)
	uc := NewDashboardUseCase(gw)
	gw.EXPECT().ReadCatalog(gomock.Any()).Return(hubCatalog, interfaces.SourceFlatFile)

	got, src := uc.ListCatalog(context.Background())
	if len(got) != 2 || src != interfaces.SourceFlatFile {
		t.Fatalf("unexpected catalog %v %s", got, src)
	}
}
