package handlers

import (
	"net/http"

	response "web_estimate/internal/adapter/http/dto/response"
	"web_estimate/internal/adapter/http/middleware"
	"web_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HandoffHandler lets the contact page pick up a staged estimate PDF.
type HandoffHandler struct {
	usecase usecase.IHandoffUseCase
}

func NewHandoffHandler(uc usecase.IHandoffUseCase) *HandoffHandler {
	return &HandoffHandler{usecase: uc}
}

// ConsumeHandoff godoc
// @Summary Pick up the staged estimate PDF
// @Description Returns the PDF as a data URL at most once; 204 when nothing is staged
// @Tags Handoff
// @Produce json
// @Success 200 {object} response.HandoffResponse
// @Success 204
// @Router /handoff [get]
func (h *HandoffHandler) ConsumeHandoff(c *gin.Context) {
	handoff, err := h.usecase.Consume(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if handoff == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.FromHandoff(*handoff, usecase.EncodePDFDataURL(handoff.Blob)))
}
