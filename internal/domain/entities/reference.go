package entities

import (
	"fmt"
	"math"
	"strings"
)

// Template ("reference") hierarchy:
//
//	WorkCategory -> WorkType -> WorkTypeWork (work + order + volume coefficient)
//	                         -> WorkResource (work + resource + quantity coefficient)
//
// Template rows are edited by template authors only. The propagation engine reads them
// but never writes them.

// DefaultWorkVolumePerUnit is used when a WorkTypeWork is created without a coefficient.
const DefaultWorkVolumePerUnit = 1.0

type WorkCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type WorkType struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type Work struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// WorkTypeWork declares that one unit of the work type's basis (m² of area) requires
// WorkVolumePerUnit units of the work. Unique per (WorkTypeID, WorkID).
type WorkTypeWork struct {
	ID                string  `json:"id"`
	WorkTypeID        string  `json:"work_type_id"`
	WorkID            string  `json:"work_id"`
	OrderIndex        int     `json:"order_index"`
	WorkVolumePerUnit float64 `json:"work_volume_per_unit"`
}

// WorkResource declares that one unit of the work's volume, within the work type,
// consumes QuantityPerUnit units of the resource. Unique per (WorkTypeID, WorkID, ResourceID).
type WorkResource struct {
	ID              string  `json:"id"`
	WorkTypeID      string  `json:"work_type_id"`
	WorkID          string  `json:"work_id"`
	ResourceID      string  `json:"resource_id"`
	QuantityPerUnit float64 `json:"quantity_per_unit"`
}

func (c WorkCategory) Validate() error {
	return requireText("name", c.Name)
}

func (t WorkType) Validate() error {
	if err := requireText("category_id", t.CategoryID); err != nil {
		return err
	}
	return requireText("name", t.Name)
}

func (w Work) Validate() error {
	if err := requireText("name", w.Name); err != nil {
		return err
	}
	return requireText("unit", w.Unit)
}

func (r Resource) Validate() error {
	if err := requireText("name", r.Name); err != nil {
		return err
	}
	return requireText("unit", r.Unit)
}

// Validate rejects negative coefficients before they can reach derived data.
func (w WorkTypeWork) Validate() error {
	if err := requireText("work_type_id", w.WorkTypeID); err != nil {
		return err
	}
	if err := requireText("work_id", w.WorkID); err != nil {
		return err
	}
	return requireCoefficient("work_volume_per_unit", w.WorkVolumePerUnit)
}

func (w WorkResource) Validate() error {
	if err := requireText("work_type_id", w.WorkTypeID); err != nil {
		return err
	}
	if err := requireText("work_id", w.WorkID); err != nil {
		return err
	}
	if err := requireText("resource_id", w.ResourceID); err != nil {
		return err
	}
	return requireCoefficient("quantity_per_unit", w.QuantityPerUnit)
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

func requireCoefficient(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrValidation, field)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s cannot be negative", ErrValidation, field)
	}
	return nil
}
