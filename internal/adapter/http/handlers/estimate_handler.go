package handlers

import (
	"net/http"

	request "boq_service/internal/adapter/http/dto/request"
	response "boq_service/internal/adapter/http/dto/response"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles estimates, their sections and the read-only views of the
// derived rows.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var query request.EstimateListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	list, err := h.usecase.ListEstimates(c.Request.Context(), query.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetEstimate returns the nested detail view.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	detail, err := h.usecase.GetEstimateDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	estimate, err := h.usecase.UpdateEstimate(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.DeleteEstimate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) CreateSection(c *gin.Context) {
	var payload request.SectionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	area, err := payload.ResolveTotalArea()
	if err != nil {
		respondError(c, err)
		return
	}

	sec, err := h.usecase.CreateSection(c.Request.Context(), payload.Estimate, payload.WorkCategory, area)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSection(sec))
}

func (h *EstimateHandler) ListSections(c *gin.Context) {
	list, err := h.usecase.ListSections(c.Request.Context(), c.Query("estimate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSections(list))
}

func (h *EstimateHandler) GetSection(c *gin.Context) {
	sec, err := h.usecase.GetSection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSection(sec))
}

func (h *EstimateHandler) DeleteSection(c *gin.Context) {
	if err := h.usecase.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) GetSectionWorkType(c *gin.Context) {
	swt, err := h.usecase.GetSectionWorkType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSectionWorkType(swt))
}

func (h *EstimateHandler) ListSectionWorkTypes(c *gin.Context) {
	list, err := h.usecase.ListSectionWorkTypes(c.Request.Context(), c.Query("section"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSectionWorkTypes(list))
}

func (h *EstimateHandler) ListItems(c *gin.Context) {
	list, err := h.usecase.ListItems(c.Request.Context(), c.Query("section_work_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItems(list))
}

func (h *EstimateHandler) ListItemResources(c *gin.Context) {
	list, err := h.usecase.ListItemResources(c.Request.Context(), c.Query("estimate_item"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItemResources(list))
}
