package repository

import (
	"time"

	"boq_service/internal/domain/entities"
)

// Row models for the PostgreSQL store. Unique indexes mirror the natural keys of the
// domain; foreign keys are enforced by the store itself so that cascades and restrict
// rules stay identical across drivers.

type workCategoryRow struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"not null"`
}

func (workCategoryRow) TableName() string { return "work_categories" }

type workTypeRow struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	CategoryID string `gorm:"type:uuid;not null;index"`
	Name       string `gorm:"not null"`
}

func (workTypeRow) TableName() string { return "work_types" }

type workRow struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"not null"`
	Unit string `gorm:"not null"`
}

func (workRow) TableName() string { return "works" }

type resourceRow struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"not null"`
	Unit string `gorm:"not null"`
}

func (resourceRow) TableName() string { return "resources" }

type workTypeWorkRow struct {
	ID                string  `gorm:"type:uuid;primaryKey"`
	WorkTypeID        string  `gorm:"type:uuid;not null;uniqueIndex:ux_work_type_works_pair"`
	WorkID            string  `gorm:"type:uuid;not null;uniqueIndex:ux_work_type_works_pair"`
	OrderIndex        int     `gorm:"not null;default:0"`
	WorkVolumePerUnit float64 `gorm:"not null;default:1"`
}

func (workTypeWorkRow) TableName() string { return "work_type_works" }

type workResourceRow struct {
	ID              string  `gorm:"type:uuid;primaryKey"`
	WorkTypeID      string  `gorm:"type:uuid;not null;uniqueIndex:ux_work_resources_triple"`
	WorkID          string  `gorm:"type:uuid;not null;uniqueIndex:ux_work_resources_triple"`
	ResourceID      string  `gorm:"type:uuid;not null;uniqueIndex:ux_work_resources_triple"`
	QuantityPerUnit float64 `gorm:"not null;default:0"`
}

func (workResourceRow) TableName() string { return "work_resources" }

type estimateRow struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	ObjectName string    `gorm:"not null"`
	Status     string    `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (estimateRow) TableName() string { return "estimates" }

type estimateSectionRow struct {
	ID             string  `gorm:"type:uuid;primaryKey"`
	EstimateID     string  `gorm:"type:uuid;not null;uniqueIndex:ux_estimate_sections_category"`
	WorkCategoryID string  `gorm:"type:uuid;not null;uniqueIndex:ux_estimate_sections_category"`
	TotalArea      float64 `gorm:"not null;default:0"`
}

func (estimateSectionRow) TableName() string { return "estimate_sections" }

type estimateSectionWorkTypeRow struct {
	ID         string  `gorm:"type:uuid;primaryKey"`
	SectionID  string  `gorm:"type:uuid;not null;uniqueIndex:ux_section_work_types_pair"`
	WorkTypeID string  `gorm:"type:uuid;not null;uniqueIndex:ux_section_work_types_pair"`
	Percentage float64 `gorm:"not null;default:0"`
}

func (estimateSectionWorkTypeRow) TableName() string { return "estimate_section_work_types" }

type estimateItemRow struct {
	ID                string  `gorm:"type:uuid;primaryKey"`
	SectionWorkTypeID string  `gorm:"type:uuid;not null;uniqueIndex:ux_estimate_items_work"`
	WorkID            string  `gorm:"type:uuid;not null;uniqueIndex:ux_estimate_items_work"`
	Volume            float64 `gorm:"not null;default:0"`
}

func (estimateItemRow) TableName() string { return "estimate_items" }

type estimateItemResourceRow struct {
	ID             string  `gorm:"type:uuid;primaryKey"`
	EstimateItemID string  `gorm:"type:uuid;not null;uniqueIndex:ux_estimate_item_resources_resource"`
	ResourceID     string  `gorm:"type:uuid;not null;uniqueIndex:ux_estimate_item_resources_resource"`
	Quantity       float64 `gorm:"not null;default:0"`
}

func (estimateItemResourceRow) TableName() string { return "estimate_item_resources" }

// gormModels lists every row model in dependency order for AutoMigrate.
func gormModels() []any {
	return []any{
		&workCategoryRow{},
		&workTypeRow{},
		&workRow{},
		&resourceRow{},
		&workTypeWorkRow{},
		&workResourceRow{},
		&estimateRow{},
		&estimateSectionRow{},
		&estimateSectionWorkTypeRow{},
		&estimateItemRow{},
		&estimateItemResourceRow{},
	}
}

func toWorkCategoryRow(c entities.WorkCategory) workCategoryRow {
	return workCategoryRow{ID: c.ID, Name: c.Name}
}

func (r workCategoryRow) toEntity() entities.WorkCategory {
	return entities.WorkCategory{ID: r.ID, Name: r.Name}
}

func toWorkTypeRow(t entities.WorkType) workTypeRow {
	return workTypeRow{ID: t.ID, CategoryID: t.CategoryID, Name: t.Name}
}

func (r workTypeRow) toEntity() entities.WorkType {
	return entities.WorkType{ID: r.ID, CategoryID: r.CategoryID, Name: r.Name}
}

func toWorkRow(w entities.Work) workRow {
	return workRow{ID: w.ID, Name: w.Name, Unit: w.Unit}
}

func (r workRow) toEntity() entities.Work {
	return entities.Work{ID: r.ID, Name: r.Name, Unit: r.Unit}
}

func toResourceRow(res entities.Resource) resourceRow {
	return resourceRow{ID: res.ID, Name: res.Name, Unit: res.Unit}
}

func (r resourceRow) toEntity() entities.Resource {
	return entities.Resource{ID: r.ID, Name: r.Name, Unit: r.Unit}
}

func toWorkTypeWorkRow(w entities.WorkTypeWork) workTypeWorkRow {
	return workTypeWorkRow{
		ID:                w.ID,
		WorkTypeID:        w.WorkTypeID,
		WorkID:            w.WorkID,
		OrderIndex:        w.OrderIndex,
		WorkVolumePerUnit: w.WorkVolumePerUnit,
	}
}

func (r workTypeWorkRow) toEntity() entities.WorkTypeWork {
	return entities.WorkTypeWork{
		ID:                r.ID,
		WorkTypeID:        r.WorkTypeID,
		WorkID:            r.WorkID,
		OrderIndex:        r.OrderIndex,
		WorkVolumePerUnit: r.WorkVolumePerUnit,
	}
}

func toWorkResourceRow(w entities.WorkResource) workResourceRow {
	return workResourceRow{
		ID:              w.ID,
		WorkTypeID:      w.WorkTypeID,
		WorkID:          w.WorkID,
		ResourceID:      w.ResourceID,
		QuantityPerUnit: w.QuantityPerUnit,
	}
}

func (r workResourceRow) toEntity() entities.WorkResource {
	return entities.WorkResource{
		ID:              r.ID,
		WorkTypeID:      r.WorkTypeID,
		WorkID:          r.WorkID,
		ResourceID:      r.ResourceID,
		QuantityPerUnit: r.QuantityPerUnit,
	}
}

func toEstimateRow(e entities.Estimate) estimateRow {
	return estimateRow{
		ID:         e.ID,
		Name:       e.Name,
		ObjectName: e.ObjectName,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt.UTC(),
	}
}

func (r estimateRow) toEntity() entities.Estimate {
	return entities.Estimate{
		ID:         r.ID,
		Name:       r.Name,
		ObjectName: r.ObjectName,
		Status:     entities.EstimateStatus(r.Status),
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

func toSectionRow(s entities.EstimateSection) estimateSectionRow {
	return estimateSectionRow{ID: s.ID, EstimateID: s.EstimateID, WorkCategoryID: s.WorkCategoryID, TotalArea: s.TotalArea}
}

func (r estimateSectionRow) toEntity() entities.EstimateSection {
	return entities.EstimateSection{ID: r.ID, EstimateID: r.EstimateID, WorkCategoryID: r.WorkCategoryID, TotalArea: r.TotalArea}
}

func toSectionWorkTypeRow(s entities.EstimateSectionWorkType) estimateSectionWorkTypeRow {
	return estimateSectionWorkTypeRow{ID: s.ID, SectionID: s.SectionID, WorkTypeID: s.WorkTypeID, Percentage: s.Percentage}
}

func (r estimateSectionWorkTypeRow) toEntity() entities.EstimateSectionWorkType {
	return entities.EstimateSectionWorkType{ID: r.ID, SectionID: r.SectionID, WorkTypeID: r.WorkTypeID, Percentage: r.Percentage}
}

func (r estimateItemRow) toEntity() entities.EstimateItem {
	return entities.EstimateItem{ID: r.ID, SectionWorkTypeID: r.SectionWorkTypeID, WorkID: r.WorkID, Volume: r.Volume}
}

func (r estimateItemResourceRow) toEntity() entities.EstimateItemResource {
	return entities.EstimateItemResource{ID: r.ID, EstimateItemID: r.EstimateItemID, ResourceID: r.ResourceID, Quantity: r.Quantity}
}

func mapRows[R any, E any](rows []R, fn func(R) E) []E {
	out := make([]E, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
