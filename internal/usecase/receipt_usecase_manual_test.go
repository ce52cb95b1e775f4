package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"quotation_desk/internal/config"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/infrastructure/payments"
	"quotation_desk/internal/usecase/interfaces"
	mock_interfaces "quotation_desk/internal/usecase/interfaces/mocks"
)

func TestReceiptUseCase_RecordPayment_DefaultManualProvider(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	gateway, err := payments.New(cfg.Payments, nil)
	if err != nil {
		t.Fatalf("payments.New: %v", err)
	}

	gw := mock_interfaces.NewMockIPersistenceGateway(ctrl)
	uc := NewReceiptUseCase(gw, gateway, nil)
	uc.now = func() time.Time { return fixedNow }

	invoice := entities.Record{BaseID: "20250501-001", Type: entities.RecordTypeInvoice, Number: "INV-20250510-001", ClientName: "Ali"}
	gw.EXPECT().ReadRecords(gomock.Any()).Return([]entities.Record{invoice}, interfaces.SourceFlatFile)
	var saved entities.Record
	gw.EXPECT().WriteRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Record) error {
		saved = r
		return nil
	})

	got, err := uc.RecordPayment(ctx, invoice.Number, decimal.NewFromInt(250), nil)
	if err != nil {
		t.Fatalf("cash receipt with default config: %v", err)
	}
	if !strings.HasPrefix(got.ProviderPaymentID, "manual-") || got.ProviderStatus != "approved" {
		t.Fatalf("unexpected receipt %+v", got)
	}
	if saved.Number != "RCT-20250520-001" || !saved.Amount.Equal(decimal.NewFromInt(250)) || saved.Note != invoice.Number+" / "+got.ProviderPaymentID {
		t.Fatalf("unexpected record %+v", saved)
	}
}
