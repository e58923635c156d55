package routes

import (
	"web_estimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathSelection = "/selection"
	PathEstimates = "/estimates"
	PathHandoff   = "/handoff"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)
}

func addSelectionRoutes(rg *gin.RouterGroup, selectionHandler *handlers.SelectionHandler) {
	selection := rg.Group(PathSelection)
	{
		selection.POST("/load", selectionHandler.LoadSelection)
		selection.GET("", selectionHandler.GetSelection)
		selection.DELETE("", selectionHandler.ResetSelection)
		selection.POST("/items/:item_id/toggle", selectionHandler.ToggleItem)
		selection.PUT("/items/:item_id/quantity", selectionHandler.SetQuantity)
		selection.PUT("/functions", selectionHandler.SetFunctions)
		selection.PUT("/plan", selectionHandler.SetPlan)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/current", estimateHandler.GetCurrentEstimate)
		estimates.DELETE("/current", estimateHandler.BackToEditing)
		estimates.GET("/current/document", estimateHandler.GetDocument)
		estimates.GET("/current/pdf", estimateHandler.DownloadPDF)
		estimates.POST("/current/handoff", estimateHandler.StageHandoff)
	}
}

func addHandoffRoutes(rg *gin.RouterGroup, handoffHandler *handlers.HandoffHandler) {
	rg.GET(PathHandoff, handoffHandler.ConsumeHandoff)
}
