package handlers

import (
	"net/http"

	response "web_estimate/internal/adapter/http/dto/response"
	"web_estimate/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static price list.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// GetCatalog godoc
// @Summary Price list
// @Description Coding and design items, plans, page-count tiers, sub-functions and estimate settings
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.CatalogResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog))
}
