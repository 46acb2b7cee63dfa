package response

import "boq_service/internal/domain/entities"

type WorkCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromWorkCategory(c entities.WorkCategory) WorkCategoryResponse {
	return WorkCategoryResponse{ID: c.ID, Name: c.Name}
}

type WorkTypeResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

func FromWorkType(t entities.WorkType) WorkTypeResponse {
	return WorkTypeResponse{ID: t.ID, Category: t.CategoryID, Name: t.Name}
}

// UnitItemResponse renders works and resources.
type UnitItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

func FromWork(w entities.Work) UnitItemResponse {
	return UnitItemResponse{ID: w.ID, Name: w.Name, Unit: w.Unit}
}

func FromResource(r entities.Resource) UnitItemResponse {
	return UnitItemResponse{ID: r.ID, Name: r.Name, Unit: r.Unit}
}

type WorkTypeWorkResponse struct {
	ID                string  `json:"id"`
	WorkType          string  `json:"work_type"`
	Work              string  `json:"work"`
	OrderIndex        int     `json:"order_index"`
	WorkVolumePerUnit float64 `json:"work_volume_per_unit"`
}

func FromWorkTypeWork(w entities.WorkTypeWork) WorkTypeWorkResponse {
	return WorkTypeWorkResponse{
		ID:                w.ID,
		WorkType:          w.WorkTypeID,
		Work:              w.WorkID,
		OrderIndex:        w.OrderIndex,
		WorkVolumePerUnit: w.WorkVolumePerUnit,
	}
}

type WorkResourceResponse struct {
	ID              string  `json:"id"`
	WorkType        string  `json:"work_type"`
	Work            string  `json:"work"`
	Resource        string  `json:"resource"`
	QuantityPerUnit float64 `json:"quantity_per_unit"`
}

func FromWorkResource(w entities.WorkResource) WorkResourceResponse {
	return WorkResourceResponse{
		ID:              w.ID,
		WorkType:        w.WorkTypeID,
		Work:            w.WorkID,
		Resource:        w.ResourceID,
		QuantityPerUnit: w.QuantityPerUnit,
	}
}

// MapList converts a slice of entities with fn.
func MapList[E any, R any](list []E, fn func(E) R) []R {
	out := make([]R, 0, len(list))
	for _, e := range list {
		out = append(out, fn(e))
	}
	return out
}
