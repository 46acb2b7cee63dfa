package handlers

import (
	"net/http"

	request "boq_service/internal/adapter/http/dto/request"
	response "boq_service/internal/adapter/http/dto/response"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TemplateHandler edits the template hierarchy. Changes here never touch estimates;
// they are picked up by the next propagation on each affected relation.
type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
}

func NewTemplateHandler(uc usecase.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

// Work categories

func (h *TemplateHandler) CreateWorkCategory(c *gin.Context) {
	var payload request.WorkCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.CreateWorkCategory(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkCategory(out))
}

func (h *TemplateHandler) ListWorkCategories(c *gin.Context) {
	list, err := h.usecase.ListWorkCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(list, response.FromWorkCategory))
}

func (h *TemplateHandler) GetWorkCategory(c *gin.Context) {
	out, err := h.usecase.GetWorkCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkCategory(out))
}

func (h *TemplateHandler) UpdateWorkCategory(c *gin.Context) {
	var payload request.WorkCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.UpdateWorkCategory(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkCategory(out))
}

func (h *TemplateHandler) DeleteWorkCategory(c *gin.Context) {
	if err := h.usecase.DeleteWorkCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Work types

func (h *TemplateHandler) CreateWorkType(c *gin.Context) {
	var payload request.WorkTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.CreateWorkType(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkType(out))
}

func (h *TemplateHandler) ListWorkTypes(c *gin.Context) {
	list, err := h.usecase.ListWorkTypes(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(list, response.FromWorkType))
}

func (h *TemplateHandler) GetWorkType(c *gin.Context) {
	out, err := h.usecase.GetWorkType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkType(out))
}

func (h *TemplateHandler) UpdateWorkType(c *gin.Context) {
	var payload request.WorkTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.UpdateWorkType(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkType(out))
}

func (h *TemplateHandler) DeleteWorkType(c *gin.Context) {
	if err := h.usecase.DeleteWorkType(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Works and resources

func (h *TemplateHandler) CreateWork(c *gin.Context) {
	var payload request.UnitItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.CreateWork(c.Request.Context(), payload.ToWork(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWork(out))
}

func (h *TemplateHandler) ListWorks(c *gin.Context) {
	list, err := h.usecase.ListWorks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(list, response.FromWork))
}

func (h *TemplateHandler) GetWork(c *gin.Context) {
	out, err := h.usecase.GetWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWork(out))
}

func (h *TemplateHandler) UpdateWork(c *gin.Context) {
	var payload request.UnitItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.UpdateWork(c.Request.Context(), payload.ToWork(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWork(out))
}

func (h *TemplateHandler) CreateResource(c *gin.Context) {
	var payload request.UnitItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.CreateResource(c.Request.Context(), payload.ToResource(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromResource(out))
}

func (h *TemplateHandler) ListResources(c *gin.Context) {
	list, err := h.usecase.ListResources(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(list, response.FromResource))
}

func (h *TemplateHandler) GetResource(c *gin.Context) {
	out, err := h.usecase.GetResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResource(out))
}

func (h *TemplateHandler) UpdateResource(c *gin.Context) {
	var payload request.UnitItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.UpdateResource(c.Request.Context(), payload.ToResource(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResource(out))
}

// Work type works

func (h *TemplateHandler) CreateWorkTypeWork(c *gin.Context) {
	var payload request.WorkTypeWorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.CreateWorkTypeWork(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkTypeWork(out))
}

func (h *TemplateHandler) ListWorkTypeWorks(c *gin.Context) {
	list, err := h.usecase.ListWorkTypeWorks(c.Request.Context(), c.Query("work_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(list, response.FromWorkTypeWork))
}

func (h *TemplateHandler) GetWorkTypeWork(c *gin.Context) {
	out, err := h.usecase.GetWorkTypeWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkTypeWork(out))
}

func (h *TemplateHandler) UpdateWorkTypeWork(c *gin.Context) {
	var payload request.WorkTypeWorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.UpdateWorkTypeWork(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkTypeWork(out))
}

func (h *TemplateHandler) DeleteWorkTypeWork(c *gin.Context) {
	if err := h.usecase.DeleteWorkTypeWork(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Work resources

func (h *TemplateHandler) CreateWorkResource(c *gin.Context) {
	var payload request.WorkResourceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.CreateWorkResource(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkResource(out))
}

func (h *TemplateHandler) ListWorkResources(c *gin.Context) {
	list, err := h.usecase.ListWorkResources(c.Request.Context(), c.Query("work_type"), c.Query("work"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(list, response.FromWorkResource))
}

func (h *TemplateHandler) GetWorkResource(c *gin.Context) {
	out, err := h.usecase.GetWorkResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkResource(out))
}

func (h *TemplateHandler) UpdateWorkResource(c *gin.Context) {
	var payload request.WorkResourceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.usecase.UpdateWorkResource(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkResource(out))
}

func (h *TemplateHandler) DeleteWorkResource(c *gin.Context) {
	if err := h.usecase.DeleteWorkResource(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
