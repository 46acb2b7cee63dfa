package handlers

import (
	"fmt"
	"net/http"

	response "boq_service/internal/adapter/http/dto/response"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// DownloadEstimate streams a freshly rendered workbook without storing it.
func (h *ExportHandler) DownloadEstimate(c *gin.Context) {
	out, err := h.usecase.RenderEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

func (h *ExportHandler) CreateExport(c *gin.Context) {
	rec, err := h.usecase.CreateExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromExport(rec))
}

func (h *ExportHandler) ListExports(c *gin.Context) {
	list, err := h.usecase.ListExports(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExports(list))
}

func (h *ExportHandler) GetExport(c *gin.Context) {
	rec, err := h.usecase.GetExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExport(rec))
}
