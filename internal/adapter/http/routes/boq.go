package routes

import (
	"boq_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func addEstimateRoutes(rg *gin.RouterGroup, estimates *handlers.EstimateHandler, propagation *handlers.PropagationHandler) {
	rg.POST("/estimates", estimates.CreateEstimate)
	rg.GET("/estimates", estimates.ListEstimates)
	rg.GET("/estimates/:id", estimates.GetEstimate)
	rg.PATCH("/estimates/:id", estimates.UpdateEstimate)
	rg.DELETE("/estimates/:id", estimates.DeleteEstimate)

	rg.POST("/estimate-sections", estimates.CreateSection)
	rg.GET("/estimate-sections", estimates.ListSections)
	rg.GET("/estimate-sections/:id", estimates.GetSection)
	rg.PATCH("/estimate-sections/:id", propagation.UpdateSectionArea)
	rg.DELETE("/estimate-sections/:id", estimates.DeleteSection)

	rg.POST("/estimate-section-work-types", propagation.AttachWorkType)
	rg.GET("/estimate-section-work-types", estimates.ListSectionWorkTypes)
	rg.GET("/estimate-section-work-types/:id", estimates.GetSectionWorkType)
	rg.PATCH("/estimate-section-work-types/:id", propagation.UpdatePercentage)
	rg.DELETE("/estimate-section-work-types/:id", propagation.DetachWorkType)

	rg.GET("/estimate-items", estimates.ListItems)
	rg.GET("/estimate-item-resources", estimates.ListItemResources)
}

func addTemplateRoutes(rg *gin.RouterGroup, h *handlers.TemplateHandler) {
	rg.POST("/work-categories", h.CreateWorkCategory)
	rg.GET("/work-categories", h.ListWorkCategories)
	rg.GET("/work-categories/:id", h.GetWorkCategory)
	rg.PUT("/work-categories/:id", h.UpdateWorkCategory)
	rg.DELETE("/work-categories/:id", h.DeleteWorkCategory)

	rg.POST("/work-types", h.CreateWorkType)
	rg.GET("/work-types", h.ListWorkTypes)
	rg.GET("/work-types/:id", h.GetWorkType)
	rg.PUT("/work-types/:id", h.UpdateWorkType)
	rg.DELETE("/work-types/:id", h.DeleteWorkType)

	rg.POST("/works", h.CreateWork)
	rg.GET("/works", h.ListWorks)
	rg.GET("/works/:id", h.GetWork)
	rg.PUT("/works/:id", h.UpdateWork)

	rg.POST("/resources", h.CreateResource)
	rg.GET("/resources", h.ListResources)
	rg.GET("/resources/:id", h.GetResource)
	rg.PUT("/resources/:id", h.UpdateResource)

	rg.POST("/work-type-works", h.CreateWorkTypeWork)
	rg.GET("/work-type-works", h.ListWorkTypeWorks)
	rg.GET("/work-type-works/:id", h.GetWorkTypeWork)
	rg.PUT("/work-type-works/:id", h.UpdateWorkTypeWork)
	rg.DELETE("/work-type-works/:id", h.DeleteWorkTypeWork)

	rg.POST("/work-resources", h.CreateWorkResource)
	rg.GET("/work-resources", h.ListWorkResources)
	rg.GET("/work-resources/:id", h.GetWorkResource)
	rg.PUT("/work-resources/:id", h.UpdateWorkResource)
	rg.DELETE("/work-resources/:id", h.DeleteWorkResource)
}

func addExportRoutes(rg *gin.RouterGroup, h *handlers.ExportHandler) {
	rg.GET("/estimates/:id/export", h.DownloadEstimate)
	rg.POST("/estimates/:id/exports", h.CreateExport)
	rg.GET("/estimates/:id/exports", h.ListExports)
	rg.GET("/estimate-exports/:id", h.GetExport)
}
