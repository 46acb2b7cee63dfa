package handlers

import (
	"net/http"

	request "boq_service/internal/adapter/http/dto/request"
	response "boq_service/internal/adapter/http/dto/response"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PropagationHandler serves the routes that change a section's area or the work-type
// shares. Every one of them recomputes the derived rows before responding.
type PropagationHandler struct {
	propagation usecase.IPropagationUseCase
	estimates   usecase.IEstimateUseCase
}

func NewPropagationHandler(propagation usecase.IPropagationUseCase, estimates usecase.IEstimateUseCase) *PropagationHandler {
	return &PropagationHandler{propagation: propagation, estimates: estimates}
}

// AttachWorkType attaches a work type to a section and returns the relation with the
// items that were created for it.
//
// @Summary      Attach a work type to a section
// @Tags         propagation
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AttachWorkTypeRequest  true  "Section, work type and share"
// @Success      201      {object}  response.AttachWorkTypeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimate-section-work-types [post]
func (h *PropagationHandler) AttachWorkType(c *gin.Context) {
	var payload request.AttachWorkTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	pct, err := payload.ResolvePercentage()
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	swt, err := h.propagation.AttachWorkType(ctx, payload.Section, payload.WorkType, pct)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.estimates.ListItems(ctx, swt.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.AttachWorkTypeResponse{
		SectionWorkTypeResponse: response.FromSectionWorkType(swt),
		Items:                   response.FromItems(items),
	})
}

// UpdatePercentage changes a work type's share and recomputes its items.
//
// @Summary      Change a work type's share of the section area
// @Tags         propagation
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Section work type id"
// @Param        payload  body      request.PercentageRequest  true  "New share"
// @Success      200      {object}  response.SectionWorkTypeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /estimate-section-work-types/{id} [patch]
func (h *PropagationHandler) UpdatePercentage(c *gin.Context) {
	var payload request.PercentageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	pct, err := payload.ResolvePercentage()
	if err != nil {
		respondError(c, err)
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.propagation.UpdatePercentage(ctx, id, pct); err != nil {
		respondError(c, err)
		return
	}
	swt, err := h.estimates.GetSectionWorkType(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSectionWorkType(swt))
}

// @Summary      Detach a work type and drop its items
// @Tags         propagation
// @Param        id   path  string  true  "Section work type id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimate-section-work-types/{id} [delete]
func (h *PropagationHandler) DetachWorkType(c *gin.Context) {
	if err := h.propagation.DetachWorkType(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Change a section's total area
// @Tags         propagation
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Section id"
// @Param        payload  body      request.SectionAreaRequest  true  "New area"
// @Success      200      {object}  response.SectionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /estimate-sections/{id} [patch]
func (h *PropagationHandler) UpdateSectionArea(c *gin.Context) {
	var payload request.SectionAreaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	area, err := payload.ResolveTotalArea()
	if err != nil {
		respondError(c, err)
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.propagation.UpdateSectionArea(ctx, id, area); err != nil {
		respondError(c, err)
		return
	}
	sec, err := h.estimates.GetSection(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSection(sec))
}
