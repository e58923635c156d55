package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"

	request "web_estimate/internal/adapter/http/dto/request"
	response "web_estimate/internal/adapter/http/dto/response"
	"web_estimate/internal/adapter/http/middleware"
	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/usecase"
	"web_estimate/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles the estimate document of the current session:
// generation, back navigation, HTML rendering, PDF download and the
// hand-off of the PDF to the contact page.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary Generate estimate document
// @Description Stamps a new estimate from the current selection. The body is optional.
// @Tags Estimates
// @Accept json
// @Produce json
// @Param request body request.EstimateCreateRequest false "subject"
// @Success 201 {object} response.EstimateResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	data, err := h.usecase.Generate(c.Request.Context(), middleware.SessionID(c), payload.ResolveSubject())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(data))
}

// GetCurrentEstimate godoc
// @Summary Current estimate document
// @Tags Estimates
// @Produce json
// @Success 200 {object} response.EstimateResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /estimates/current [get]
func (h *EstimateHandler) GetCurrentEstimate(c *gin.Context) {
	data, err := h.usecase.Current(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(data))
}

// BackToEditing godoc
// @Summary Leave the document view
// @Description Returns to editing; selections are kept
// @Tags Estimates
// @Success 204
// @Router /estimates/current [delete]
func (h *EstimateHandler) BackToEditing(c *gin.Context) {
	if err := h.usecase.Back(c.Request.Context(), middleware.SessionID(c)); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDocument godoc
// @Summary Estimate document as HTML
// @Description display shows the action buttons, print also opens the print dialog
// @Tags Estimates
// @Produce html
// @Param mode query string false "display, print or pdf" default(display)
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /estimates/current/document [get]
func (h *EstimateHandler) GetDocument(c *gin.Context) {
	mode, ok := estimate.ParseOutputMode(c.Query("mode"))
	if !ok {
		appErr := mapEstimateError(usecase.ErrInvalidOutputMode)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	html, err := h.usecase.Render(c.Request.Context(), middleware.SessionID(c), mode)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// DownloadPDF godoc
// @Summary Download estimate PDF
// @Tags Estimates
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /estimates/current/pdf [get]
func (h *EstimateHandler) DownloadPDF(c *gin.Context) {
	export, err := h.usecase.ExportPDF(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName}))
	c.Data(http.StatusOK, "application/pdf", export.Blob)
}

// StageHandoff godoc
// @Summary Hand the estimate PDF to the contact page
// @Description Renders the PDF and stages it for a single pickup by GET /handoff
// @Tags Estimates
// @Produce json
// @Success 201 {object} response.HandoffResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /estimates/current/handoff [post]
func (h *EstimateHandler) StageHandoff(c *gin.Context) {
	export, err := h.usecase.ExportAndStage(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPDFExport(export))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("EMPTY_SELECTION", "Select at least one item", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDocumentAlreadyGenerated):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_GENERATED", "Estimate document already generated", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoDocument):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOutputMode):
		return pkg.NewDomainErrorSimple("INVALID_OUTPUT_MODE", "Invalid output mode", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPDFTooLarge):
		return pkg.NewDomainError("PDF_TOO_LARGE", "Failed to generate the estimate PDF", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrDocumentAnchorMissing), errors.Is(err, usecase.ErrPDFGenerationFailed):
		return pkg.NewDomainError("PDF_GENERATION_FAILED", "Failed to generate the estimate PDF", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrHandoffFailed):
		return pkg.NewDomainError("HANDOFF_FAILED", "Failed to attach the estimate PDF", err, http.StatusInternalServerError)
	default:
		return mapSelectionError(err)
	}
}
