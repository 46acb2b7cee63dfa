package request

import (
	"errors"
	"math"
	"strings"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase"
)

var (
	ErrInvalidNumber = errors.New("number must be finite")
)

// EstimateCreateRequest is the payload of POST /estimates. Status defaults to draft.
type EstimateCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	ObjectName string `json:"object_name" binding:"required"`
	Status     string `json:"status"`
}

func (r EstimateCreateRequest) ToEntity() entities.Estimate {
	return entities.Estimate{
		Name:       r.Name,
		ObjectName: r.ObjectName,
		Status:     entities.EstimateStatus(strings.TrimSpace(r.Status)),
	}
}

// EstimateUpdateRequest is a partial update; omitted fields keep their value.
type EstimateUpdateRequest struct {
	Name       *string `json:"name"`
	ObjectName *string `json:"object_name"`
	Status     *string `json:"status"`
}

func (r EstimateUpdateRequest) ToUpdate() usecase.EstimateUpdate {
	upd := usecase.EstimateUpdate{Name: r.Name, ObjectName: r.ObjectName}
	if r.Status != nil {
		s := entities.EstimateStatus(strings.TrimSpace(*r.Status))
		upd.Status = &s
	}
	return upd
}

// SectionCreateRequest binds a work category to an estimate.
type SectionCreateRequest struct {
	Estimate     string   `json:"estimate" binding:"required"`
	WorkCategory string   `json:"work_category" binding:"required"`
	TotalArea    *float64 `json:"total_area"`
}

// ResolveTotalArea defaults a missing area to zero.
func (r SectionCreateRequest) ResolveTotalArea() (float64, error) {
	if r.TotalArea == nil {
		return 0, nil
	}
	return finite(*r.TotalArea)
}

// SectionAreaRequest is the payload of PATCH /estimate-sections/:id.
type SectionAreaRequest struct {
	TotalArea *float64 `json:"total_area" binding:"required"`
}

func (r SectionAreaRequest) ResolveTotalArea() (float64, error) {
	return finite(*r.TotalArea)
}

// EstimateListQuery holds the filters of GET /estimates.
type EstimateListQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

func (q EstimateListQuery) ToFilter() entities.EstimateFilter {
	return entities.EstimateFilter{
		Status: entities.EstimateStatus(strings.TrimSpace(q.Status)),
		Search: strings.TrimSpace(q.Search),
	}
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}
