package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "quotation_desk/internal/adapter/http/dto/request"
	response "quotation_desk/internal/adapter/http/dto/response"
	"quotation_desk/internal/adapter/render"
	"quotation_desk/internal/usecase"
	"quotation_desk/pkg"
)

// WarningHeader carries soft failures on binary downloads, which have no
// JSON body to put them in.
const WarningHeader = "X-Desk-Warning"

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errInvalidItemNumber   = pkg.NewDomainErrorSimple("INVALID_ITEM_NUMBER", "Item number must be a positive integer", http.StatusBadRequest)
)

// DocumentHandler drives quotation and invoice drafts from creation to
// finalization.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
	log     *zap.Logger
}

func NewDocumentHandler(uc usecase.IDocumentUseCase, log *zap.Logger) *DocumentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentHandler{usecase: uc, log: log}
}

// @Summary      Create a quotation or invoice draft
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateDraftRequest true "Draft kind"
// @Success      201  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts [post]
func (h *DocumentHandler) CreateDraft(c *gin.Context) {
	var payload request.CreateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.CreateDraft(c.Request.Context(), payload.Kind, payload.FromQuotation)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

// @Summary      Get a draft
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id} [get]
func (h *DocumentHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// @Summary      Update draft header fields
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id path string true "Draft ID"
// @Param        payload body request.UpdateDraftRequest true "Fields to change"
// @Success      200  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id} [patch]
func (h *DocumentHandler) UpdateDraft(c *gin.Context) {
	var payload request.UpdateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.UpdateDraft(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// @Summary      Add a catalog product to a draft
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id path string true "Draft ID"
// @Param        payload body request.AddItemRequest true "Item"
// @Success      200  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id}/items [post]
func (h *DocumentHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		h.fail(c, "add-item", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// @Summary      Remove a line item and renumber the rest
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Param        item_no path int true "Item number"
// @Success      200  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id}/items/{item_no} [delete]
func (h *DocumentHandler) RemoveItem(c *gin.Context) {
	itemNo, err := strconv.Atoi(c.Param("item_no"))
	if err != nil || itemNo < 1 {
		c.JSON(errInvalidItemNumber.HTTPStatus, errInvalidItemNumber.ToHTTPError())
		return
	}

	d, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), itemNo)
	if err != nil {
		h.fail(c, "remove-item", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// @Summary      Apply a payment terms preset
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Param        preset path string true "30-70, 50-50 or 30-60-10"
// @Success      200  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id}/payment-terms/{preset} [put]
func (h *DocumentHandler) ApplyPaymentTerms(c *gin.Context) {
	d, err := h.usecase.ApplyPaymentTerms(c.Request.Context(), c.Param("id"), c.Param("preset"))
	if err != nil {
		h.fail(c, "payment-terms", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// @Summary      Generate the project description
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id}/description [post]
func (h *DocumentHandler) GenerateDescription(c *gin.Context) {
	d, warnings, err := h.usecase.GenerateDescription(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "description", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d, warnings...))
}

// ExportDocument streams the rendered document as an attachment.
//
// @Summary      Download the rendered document
// @Tags         drafts
// @Produce      octet-stream
// @Param        id path string true "Draft ID"
// @Param        format query string false "html, docx or pdf"
// @Success      200  {file}  file
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id}/document [get]
func (h *DocumentHandler) ExportDocument(c *gin.Context) {
	artifact, err := h.usecase.Export(c.Request.Context(), c.Param("id"), c.DefaultQuery("format", "html"))
	if err != nil {
		h.fail(c, "export", err)
		return
	}
	for _, w := range artifact.Warnings {
		c.Writer.Header().Add(WarningHeader, w)
	}
	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Body)
}

// @Summary      Save the draft as a record
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Success      201  {object}  response.FinalizeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /drafts/{id}/finalize [post]
func (h *DocumentHandler) Finalize(c *gin.Context) {
	res, err := h.usecase.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "finalize", err)
		return
	}
	h.log.Info("[document][handler] finalize success",
		zap.String("number", res.Record.Number), zap.Int("warnings", len(res.Warnings)))
	c.JSON(http.StatusCreated, response.FromFinalize(res))
}

// @Summary      Compare template placeholders with the render context
// @Tags         templates
// @Produce      json
// @Param        name path string true "Template name"
// @Success      200  {object}  usecase.TemplateCheck
// @Failure      400  {object}  pkg.HTTPError
// @Router       /templates/{name}/check [get]
func (h *DocumentHandler) CheckTemplate(c *gin.Context) {
	check, err := h.usecase.CheckTemplate(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.fail(c, "template-check", err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *DocumentHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapDocumentError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[document][handler] "+op+" failed", zap.String("draft_id", c.Param("id")), zap.Error(err))
	} else {
		h.log.Info("[document][handler] "+op+" rejected", zap.String("draft_id", c.Param("id")), zap.String("code", appErr.Code))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidDocumentKind),
		errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidExportFormat):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPaymentTerms):
		return pkg.NewDomainErrorSimple("UNKNOWN_PAYMENT_TERMS", "Payment terms preset must be 30-70, 50-50 or 30-60-10", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingClientName):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_NAME", "Client name is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownDevice):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not in catalog", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, render.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftFinalized):
		return pkg.NewDomainErrorSimple("DRAFT_FINALIZED", "Draft already finalized", http.StatusConflict)
	case errors.Is(err, render.ErrRender):
		return pkg.NewDomainError("RENDER_FAILED", "Document could not be rendered", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
