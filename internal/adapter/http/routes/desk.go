package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotation_desk/internal/adapter/http/handlers"
)

const (
	PathDashboard = "/dashboard"
	PathRecords   = "/records"
	PathCustomers = "/customers"
	PathCatalog   = "/catalog"
	PathDrafts    = "/drafts"
	PathTemplates = "/templates"
	PathReceipts  = "/receipts"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.GetDashboard)
	rg.GET(PathRecords, h.ListRecords)
	rg.GET(PathRecords+"/quotations", h.ListQuotationOptions)
	rg.GET(PathCustomers, h.ListCustomers)
	rg.GET(PathCatalog, h.ListCatalog)
}

func addDocumentRoutes(rg *gin.RouterGroup, h *handlers.DocumentHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", h.CreateDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.PATCH("/:id", h.UpdateDraft)
		drafts.POST("/:id/items", h.AddItem)
		drafts.DELETE("/:id/items/:item_no", h.RemoveItem)
		drafts.PUT("/:id/payment-terms/:preset", h.ApplyPaymentTerms)
		drafts.POST("/:id/description", h.GenerateDescription)
		drafts.GET("/:id/document", h.ExportDocument)
		drafts.POST("/:id/finalize", h.Finalize)
	}
	rg.GET(PathTemplates+"/:name/check", h.CheckTemplate)
}

func addReceiptRoutes(rg *gin.RouterGroup, h *handlers.ReceiptHandler) {
	rg.POST(PathReceipts, h.CreateReceipt)
}
