package request

import (
	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase"
)

type WorkCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r WorkCategoryRequest) ToEntity(id string) entities.WorkCategory {
	return entities.WorkCategory{ID: id, Name: r.Name}
}

type WorkTypeRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (r WorkTypeRequest) ToEntity(id string) entities.WorkType {
	return entities.WorkType{ID: id, CategoryID: r.Category, Name: r.Name}
}

// UnitItemRequest is shared by works and resources.
type UnitItemRequest struct {
	Name string `json:"name" binding:"required"`
	Unit string `json:"unit" binding:"required"`
}

func (r UnitItemRequest) ToWork(id string) entities.Work {
	return entities.Work{ID: id, Name: r.Name, Unit: r.Unit}
}

func (r UnitItemRequest) ToResource(id string) entities.Resource {
	return entities.Resource{ID: id, Name: r.Name, Unit: r.Unit}
}

// WorkTypeWorkRequest creates or updates a template work. On update, empty ids keep the
// current references and a missing order index or coefficient keeps the current value.
type WorkTypeWorkRequest struct {
	WorkType          string   `json:"work_type"`
	Work              string   `json:"work"`
	OrderIndex        *int     `json:"order_index"`
	WorkVolumePerUnit *float64 `json:"work_volume_per_unit"`
}

func (r WorkTypeWorkRequest) ToInput() usecase.WorkTypeWorkInput {
	return usecase.WorkTypeWorkInput{
		WorkTypeID:        r.WorkType,
		WorkID:            r.Work,
		OrderIndex:        r.OrderIndex,
		WorkVolumePerUnit: r.WorkVolumePerUnit,
	}
}

type WorkResourceRequest struct {
	WorkType        string   `json:"work_type" binding:"required"`
	Work            string   `json:"work" binding:"required"`
	Resource        string   `json:"resource" binding:"required"`
	QuantityPerUnit *float64 `json:"quantity_per_unit" binding:"required"`
}

func (r WorkResourceRequest) ToEntity(id string) entities.WorkResource {
	return entities.WorkResource{
		ID:              id,
		WorkTypeID:      r.WorkType,
		WorkID:          r.Work,
		ResourceID:      r.Resource,
		QuantityPerUnit: *r.QuantityPerUnit,
	}
}
