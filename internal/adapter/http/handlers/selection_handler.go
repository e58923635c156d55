package handlers

import (
	"errors"
	"net/http"

	request "web_estimate/internal/adapter/http/dto/request"
	response "web_estimate/internal/adapter/http/dto/response"
	"web_estimate/internal/adapter/http/middleware"
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/usecase"
	"web_estimate/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid selection payload", http.StatusBadRequest)
)

// SelectionHandler exposes the calculator selection of the current session.
type SelectionHandler struct {
	usecase usecase.ISelectionUseCase
}

func NewSelectionHandler(uc usecase.ISelectionUseCase) *SelectionHandler {
	return &SelectionHandler{usecase: uc}
}

// LoadSelection godoc
// @Summary Page load
// @Description Restores the saved selection when restore=true, otherwise clears it and starts empty
// @Tags Selection
// @Produce json
// @Param restore query bool false "restore the saved selection"
// @Success 200 {object} response.SelectionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /selection/load [post]
func (h *SelectionHandler) LoadSelection(c *gin.Context) {
	view, err := h.usecase.Load(c.Request.Context(), middleware.SessionID(c), usecase.ShouldRestore(c.Query("restore")))
	h.respond(c, view, err)
}

// GetSelection godoc
// @Summary Current selection
// @Tags Selection
// @Produce json
// @Success 200 {object} response.SelectionResponse
// @Router /selection [get]
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, view, err)
}

// ToggleItem godoc
// @Summary Toggle a pricing item
// @Tags Selection
// @Produce json
// @Param item_id path string true "pricing item id"
// @Success 200 {object} response.SelectionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /selection/items/{item_id}/toggle [post]
func (h *SelectionHandler) ToggleItem(c *gin.Context) {
	view, err := h.usecase.ToggleItem(c.Request.Context(), middleware.SessionID(c), c.Param("item_id"))
	h.respond(c, view, err)
}

// SetQuantity godoc
// @Summary Set item quantity
// @Description Sets the quantity directly or through a page-count tier
// @Tags Selection
// @Accept json
// @Produce json
// @Param item_id path string true "pricing item id"
// @Param request body request.QuantityRequest true "quantity or page_count_option_id"
// @Success 200 {object} response.SelectionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /selection/items/{item_id}/quantity [put]
func (h *SelectionHandler) SetQuantity(c *gin.Context) {
	var payload request.QuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}
	optionID, quantity, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	var view usecase.SelectionView
	if optionID != "" {
		view, err = h.usecase.SetPageCount(c.Request.Context(), middleware.SessionID(c), c.Param("item_id"), optionID)
	} else {
		view, err = h.usecase.SetQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("item_id"), quantity)
	}
	h.respond(c, view, err)
}

// SetFunctions godoc
// @Summary Set other-functions sub-options
// @Description A non-empty list selects "other-functions", an empty list deselects it
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body request.FunctionsRequest true "function ids"
// @Success 200 {object} response.SelectionResponse
// @Router /selection/functions [put]
func (h *SelectionHandler) SetFunctions(c *gin.Context) {
	var payload request.FunctionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.SetFunctions(c.Request.Context(), middleware.SessionID(c), payload.ResolveFunctionIDs())
	h.respond(c, view, err)
}

// SetPlan godoc
// @Summary Choose plan
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body request.PlanRequest true "coding, design or urgent"
// @Success 200 {object} response.SelectionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /selection/plan [put]
func (h *SelectionHandler) SetPlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.SetPlan(c.Request.Context(), middleware.SessionID(c), entities.PlanType(payload.ResolvePlan()))
	h.respond(c, view, err)
}

// ResetSelection godoc
// @Summary Reset selection
// @Description Clears every selection and the saved state; requires confirm=true
// @Tags Selection
// @Produce json
// @Param confirm query bool true "user confirmation"
// @Success 200 {object} response.SelectionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /selection [delete]
func (h *SelectionHandler) ResetSelection(c *gin.Context) {
	view, err := h.usecase.Reset(c.Request.Context(), middleware.SessionID(c), c.Query("confirm") == "true")
	h.respond(c, view, err)
}

func (h *SelectionHandler) respond(c *gin.Context, view usecase.SelectionView, err error) {
	if err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSelectionView(view))
}

func mapSelectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Invalid session", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownItem):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Pricing item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownPageCountOption):
		return pkg.NewDomainErrorSimple("INVALID_PAGE_COUNT", "Unknown page count option", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlan):
		return pkg.NewDomainErrorSimple("INVALID_PLAN", "Invalid plan", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResetNotConfirmed):
		return pkg.NewDomainErrorSimple("RESET_NOT_CONFIRMED", "Reset must be confirmed", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
