package interfaces

import (
	"context"

	"boq_service/internal/domain/entities"
)

// Lookups and entity-returning updates return the zero value (empty ID) when the row
// does not exist; only storage problems are reported as errors. Error-only updates and
// deletes report entities.ErrNotFound for a missing row. Writes report
// entities.ErrDuplicateRelation on unique-key conflicts and entities.ErrDeleteRestricted
// when a protected reference blocks a delete. Deletes cascade through owned rows.

// ITemplateStore abstracts the template ("recipe book") hierarchy.
type ITemplateStore interface {
	CreateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error)
	GetWorkCategory(ctx context.Context, id string) (entities.WorkCategory, error)
	ListWorkCategories(ctx context.Context) ([]entities.WorkCategory, error)
	UpdateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error)
	// DeleteWorkCategory is restricted while a section references the category or one
	// of its work types is attached; otherwise it cascades to the category's work types.
	DeleteWorkCategory(ctx context.Context, id string) error

	CreateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error)
	GetWorkType(ctx context.Context, id string) (entities.WorkType, error)
	// ListWorkTypes lists all work types when categoryID is empty.
	ListWorkTypes(ctx context.Context, categoryID string) ([]entities.WorkType, error)
	UpdateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error)
	// DeleteWorkType is restricted while the type is attached to a section; otherwise it
	// cascades to its WorkTypeWork and WorkResource rows.
	DeleteWorkType(ctx context.Context, id string) error

	CreateWork(ctx context.Context, w entities.Work) (entities.Work, error)
	GetWork(ctx context.Context, id string) (entities.Work, error)
	ListWorks(ctx context.Context) ([]entities.Work, error)
	UpdateWork(ctx context.Context, w entities.Work) (entities.Work, error)

	CreateResource(ctx context.Context, r entities.Resource) (entities.Resource, error)
	GetResource(ctx context.Context, id string) (entities.Resource, error)
	ListResources(ctx context.Context) ([]entities.Resource, error)
	UpdateResource(ctx context.Context, r entities.Resource) (entities.Resource, error)

	CreateWorkTypeWork(ctx context.Context, w entities.WorkTypeWork) (entities.WorkTypeWork, error)
	GetWorkTypeWork(ctx context.Context, id string) (entities.WorkTypeWork, error)
	FindWorkTypeWork(ctx context.Context, workTypeID, workID string) (entities.WorkTypeWork, error)
	UpdateWorkTypeWork(ctx context.Context, w entities.WorkTypeWork) (entities.WorkTypeWork, error)
	DeleteWorkTypeWork(ctx context.Context, id string) error
	// GetWorkTypeWorks returns the works of a work type ordered by OrderIndex. An empty
	// workTypeID returns every row, grouped by work type.
	GetWorkTypeWorks(ctx context.Context, workTypeID string) ([]entities.WorkTypeWork, error)

	CreateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error)
	GetWorkResource(ctx context.Context, id string) (entities.WorkResource, error)
	FindWorkResource(ctx context.Context, workTypeID, workID, resourceID string) (entities.WorkResource, error)
	UpdateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error)
	DeleteWorkResource(ctx context.Context, id string) error
	// GetWorkResources returns the resources of a work within a work type. An empty
	// workID returns every resource row of the work type; an empty workTypeID drops
	// that filter as well.
	GetWorkResources(ctx context.Context, workTypeID, workID string) ([]entities.WorkResource, error)
}

// IInstanceStore abstracts the estimate hierarchy.
type IInstanceStore interface {
	CreateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetEstimate(ctx context.Context, id string) (entities.Estimate, error)
	// ListEstimates returns estimates newest first.
	ListEstimates(ctx context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error)
	UpdateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	DeleteEstimate(ctx context.Context, id string) error

	CreateSection(ctx context.Context, s entities.EstimateSection) (entities.EstimateSection, error)
	GetSection(ctx context.Context, id string) (entities.EstimateSection, error)
	// LockSection reads a section and holds a write lock on its row until the
	// surrounding transaction ends. Propagation writes to a section are serialized
	// through this lock.
	LockSection(ctx context.Context, id string) (entities.EstimateSection, error)
	FindSection(ctx context.Context, estimateID, workCategoryID string) (entities.EstimateSection, error)
	ListSections(ctx context.Context, estimateID string) ([]entities.EstimateSection, error)
	UpdateSectionArea(ctx context.Context, id string, totalArea float64) error
	DeleteSection(ctx context.Context, id string) error

	CreateSectionWorkType(ctx context.Context, s entities.EstimateSectionWorkType) (entities.EstimateSectionWorkType, error)
	GetSectionWorkType(ctx context.Context, id string) (entities.EstimateSectionWorkType, error)
	FindSectionWorkType(ctx context.Context, sectionID, workTypeID string) (entities.EstimateSectionWorkType, error)
	ListSectionWorkTypes(ctx context.Context, sectionID string) ([]entities.EstimateSectionWorkType, error)
	UpdateSectionWorkTypePercentage(ctx context.Context, id string, percentage float64) error
	DeleteSectionWorkType(ctx context.Context, id string) error

	// UpsertItem creates or updates the item keyed by (sectionWorkTypeID, workID).
	UpsertItem(ctx context.Context, sectionWorkTypeID, workID string, volume float64) (entities.EstimateItem, error)
	GetItem(ctx context.Context, id string) (entities.EstimateItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, sectionWorkTypeID string) ([]entities.EstimateItem, error)

	// UpsertItemResource creates or updates the row keyed by (itemID, resourceID).
	UpsertItemResource(ctx context.Context, itemID, resourceID string, quantity float64) (entities.EstimateItemResource, error)
	DeleteItemResource(ctx context.Context, id string) error
	ListItemResources(ctx context.Context, itemID string) ([]entities.EstimateItemResource, error)
}

// IEstimateStore is the storage collaborator of the propagation engine.
type IEstimateStore interface {
	ITemplateStore
	IInstanceStore

	// WithinTx runs fn inside one transaction. fn receives a store bound to that
	// transaction; returning an error rolls every write back. Calling WithinTx on a
	// transaction-bound store joins the ambient transaction.
	WithinTx(ctx context.Context, fn func(tx IEstimateStore) error) error
}
