package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"quotation_desk/internal/adapter/http/handlers/mocks"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/finance"
	"quotation_desk/internal/usecase"
	"quotation_desk/internal/usecase/interfaces"
)

func newDashboardRouter(dash usecase.IDashboardUseCase, customers usecase.ICustomerUseCase) *gin.Engine {
	h := NewDashboardHandler(dash, customers)
	r := gin.New()
	r.GET("/v1/dashboard", h.GetDashboard)
	r.GET("/v1/records", h.ListRecords)
	r.GET("/v1/records/quotations", h.ListQuotationOptions)
	r.GET("/v1/customers", h.ListCustomers)
	r.GET("/v1/catalog", h.ListCatalog)
	return r
}

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		r := newDashboardRouter(dash, mocks.NewMockICustomerUseCase(ctrl))
		dash.EXPECT().Dashboard(gomock.Any()).Return(usecase.Dashboard{
			Summary: finance.Summary{TotalInvoices: 1, TotalInvoiceAmount: decimal.NewFromInt(1000)},
			Source:  interfaces.SourcePrimary,
		})

		w := serve(r, http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["source"] != "primary" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("records by type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		r := newDashboardRouter(dash, mocks.NewMockICustomerUseCase(ctrl))
		dash.EXPECT().ListRecords(gomock.Any(), "i").Return([]entities.Record{
			{Type: entities.RecordTypeInvoice, Number: "INV-20250520-001", Amount: decimal.NewFromInt(5)},
		}, interfaces.SourceFlatFile, nil)
		dash.EXPECT().ListRecords(gomock.Any(), "x").Return(nil, interfaces.Source(""), usecase.ErrInvalidRecordType)

		w := serve(r, http.MethodGet, "/v1/records?type=i", "")
		var body struct {
			Source  string           `json:"source"`
			Records []map[string]any `json:"records"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body.Source != "flat_file" || len(body.Records) != 1 || body.Records[0]["amount"] != "5.00" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}

		if w := serve(r, http.MethodGet, "/v1/records?type=x", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quotation options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		r := newDashboardRouter(dash, mocks.NewMockICustomerUseCase(ctrl))
		dash.EXPECT().QuotationOptions(gomock.Any()).Return([]usecase.QuotationOption{{Number: "Q20250001", ClientName: "Ali"}})

		if w := serve(r, http.MethodGet, "/v1/records/quotations", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty customers render as a list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		r := newDashboardRouter(mocks.NewMockIDashboardUseCase(ctrl), customers)
		customers.EXPECT().List(gomock.Any()).Return(nil, interfaces.SourceEmpty)

		w := serve(r, http.MethodGet, "/v1/customers", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"source":"empty","customers":[]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		r := newDashboardRouter(dash, mocks.NewMockICustomerUseCase(ctrl))
		dash.EXPECT().ListCatalog(gomock.Any()).Return([]entities.CatalogItem{{Device: "Hub"}}, interfaces.SourceFlatFile)

		if w := serve(r, http.MethodGet, "/v1/catalog", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapDashboardError(t *testing.T) {
	if got := mapDashboardError(usecase.ErrInvalidRecordType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapDashboardError(errors.New("other")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
