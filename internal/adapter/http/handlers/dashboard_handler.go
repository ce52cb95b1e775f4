package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "quotation_desk/internal/adapter/http/dto/response"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase"
	"quotation_desk/pkg"
)

// DashboardHandler serves the read-only views: dashboard, records,
// customers and catalog.
type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	customers usecase.ICustomerUseCase
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, customers usecase.ICustomerUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, customers: customers}
}

// @Summary      Financial summary and project lifecycle
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  usecase.Dashboard
// @Failure      400  {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Dashboard(c.Request.Context()))
}

// ListRecords accepts an optional ?type=q|i|r (or the full name).
//
// @Summary      List lifecycle records
// @Tags         records
// @Produce      json
// @Param        type query string false "q, i or r"
// @Success      200  {object}  response.RecordListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /records [get]
func (h *DashboardHandler) ListRecords(c *gin.Context) {
	records, src, err := h.dashboard.ListRecords(c.Request.Context(), c.Query("type"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecords(records, src))
}

// @Summary      Quotations available for invoicing
// @Tags         records
// @Produce      json
// @Success      200  {object}  object
// @Failure      400  {object}  pkg.HTTPError
// @Router       /records/quotations [get]
func (h *DashboardHandler) ListQuotationOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quotations": h.dashboard.QuotationOptions(c.Request.Context())})
}

// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {object}  response.CustomerListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /customers [get]
func (h *DashboardHandler) ListCustomers(c *gin.Context) {
	customers, src := h.customers.List(c.Request.Context())
	if customers == nil {
		customers = []entities.Customer{}
	}
	c.JSON(http.StatusOK, response.CustomerListResponse{Source: src, Customers: customers})
}

// @Summary      List catalog products
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *DashboardHandler) ListCatalog(c *gin.Context) {
	items, src := h.dashboard.ListCatalog(c.Request.Context())
	if items == nil {
		items = []entities.CatalogItem{}
	}
	c.JSON(http.StatusOK, response.CatalogResponse{Source: src, Items: items})
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordType):
		return pkg.NewDomainErrorSimple("INVALID_RECORD_TYPE", "Record type must be q, i or r", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
