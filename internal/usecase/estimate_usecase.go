package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/domain/quantity"
	"boq_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// EstimateUpdate carries the user-editable fields of an estimate. Nil fields are kept.
type EstimateUpdate struct {
	Name       *string
	ObjectName *string
	Status     *entities.EstimateStatus
}

// IEstimateUseCase exposes estimate and section CRUD plus the read-only views of the
// derived rows. Section areas and work-type shares are changed through
// IPropagationUseCase only.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetEstimate(ctx context.Context, id string) (entities.Estimate, error)
	GetEstimateDetail(ctx context.Context, id string) (entities.EstimateDetail, error)
	ListEstimates(ctx context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error)
	UpdateEstimate(ctx context.Context, id string, upd EstimateUpdate) (entities.Estimate, error)
	DeleteEstimate(ctx context.Context, id string) error

	CreateSection(ctx context.Context, estimateID, workCategoryID string, totalArea float64) (entities.EstimateSection, error)
	GetSection(ctx context.Context, id string) (entities.EstimateSection, error)
	ListSections(ctx context.Context, estimateID string) ([]entities.EstimateSection, error)
	DeleteSection(ctx context.Context, id string) error

	GetSectionWorkType(ctx context.Context, id string) (entities.EstimateSectionWorkType, error)
	ListSectionWorkTypes(ctx context.Context, sectionID string) ([]entities.EstimateSectionWorkType, error)
	ListItems(ctx context.Context, sectionWorkTypeID string) ([]entities.EstimateItem, error)
	ListItemResources(ctx context.Context, itemID string) ([]entities.EstimateItemResource, error)
}

type EstimateUseCase struct {
	store interfaces.IEstimateStore
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(store interfaces.IEstimateStore) *EstimateUseCase {
	return &EstimateUseCase{store: store}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.ObjectName = strings.TrimSpace(e.ObjectName)
	if e.Status == "" {
		e.Status = entities.EstimateStatusDraft
	}
	if err := e.Validate(); err != nil {
		return entities.Estimate{}, err
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	return u.store.CreateEstimate(ctx, e)
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidID
	}

	e, err := u.store.GetEstimate(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, fmt.Errorf("%w: estimate_id=%s", ErrEstimateNotFound, id)
	}
	return e, nil
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrValidation, filter.Status)
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return u.store.ListEstimates(ctx, filter)
}

func (u *EstimateUseCase) UpdateEstimate(ctx context.Context, id string, upd EstimateUpdate) (entities.Estimate, error) {
	cur, err := u.GetEstimate(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if upd.Name != nil {
		cur.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.ObjectName != nil {
		cur.ObjectName = strings.TrimSpace(*upd.ObjectName)
	}
	if upd.Status != nil {
		cur.Status = *upd.Status
	}
	if err := cur.Validate(); err != nil {
		return entities.Estimate{}, err
	}

	updated, err := u.store.UpdateEstimate(ctx, cur)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, fmt.Errorf("%w: estimate_id=%s", ErrEstimateNotFound, cur.ID)
	}
	return updated, nil
}

func (u *EstimateUseCase) DeleteEstimate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return u.store.DeleteEstimate(ctx, id)
}

func (u *EstimateUseCase) CreateSection(ctx context.Context, estimateID, workCategoryID string, totalArea float64) (entities.EstimateSection, error) {
	estimateID = strings.TrimSpace(estimateID)
	workCategoryID = strings.TrimSpace(workCategoryID)
	if estimateID == "" || workCategoryID == "" {
		return entities.EstimateSection{}, ErrInvalidID
	}

	var created entities.EstimateSection
	err := u.store.WithinTx(ctx, func(tx interfaces.IEstimateStore) error {
		if e, err := tx.GetEstimate(ctx, estimateID); err != nil {
			return err
		} else if e.ID == "" {
			return fmt.Errorf("%w: estimate_id=%s", ErrEstimateNotFound, estimateID)
		}
		if c, err := tx.GetWorkCategory(ctx, workCategoryID); err != nil {
			return err
		} else if c.ID == "" {
			return fmt.Errorf("%w: work_category_id=%s", ErrWorkCategoryNotFound, workCategoryID)
		}
		if existing, err := tx.FindSection(ctx, estimateID, workCategoryID); err != nil {
			return err
		} else if existing.ID != "" {
			return fmt.Errorf("%w: estimate_id=%s work_category_id=%s", ErrSectionAlreadyExists, estimateID, workCategoryID)
		}

		var err error
		created, err = tx.CreateSection(ctx, entities.EstimateSection{
			ID:             uuid.NewString(),
			EstimateID:     estimateID,
			WorkCategoryID: workCategoryID,
			TotalArea:      totalArea,
		})
		return err
	})
	if err != nil {
		return entities.EstimateSection{}, err
	}
	return created, nil
}

func (u *EstimateUseCase) GetSection(ctx context.Context, id string) (entities.EstimateSection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateSection{}, ErrInvalidID
	}

	s, err := u.store.GetSection(ctx, id)
	if err != nil {
		return entities.EstimateSection{}, err
	}
	if s.ID == "" {
		return entities.EstimateSection{}, fmt.Errorf("%w: section_id=%s", ErrSectionNotFound, id)
	}
	return s, nil
}

func (u *EstimateUseCase) ListSections(ctx context.Context, estimateID string) ([]entities.EstimateSection, error) {
	if _, err := u.GetEstimate(ctx, estimateID); err != nil {
		return nil, err
	}
	return u.store.ListSections(ctx, strings.TrimSpace(estimateID))
}

func (u *EstimateUseCase) DeleteSection(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return u.store.DeleteSection(ctx, id)
}

func (u *EstimateUseCase) GetSectionWorkType(ctx context.Context, id string) (entities.EstimateSectionWorkType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateSectionWorkType{}, ErrInvalidID
	}

	swt, err := u.store.GetSectionWorkType(ctx, id)
	if err != nil {
		return entities.EstimateSectionWorkType{}, err
	}
	if swt.ID == "" {
		return entities.EstimateSectionWorkType{}, fmt.Errorf("%w: section_work_type_id=%s", ErrSectionWorkTypeNotFound, id)
	}
	return swt, nil
}

func (u *EstimateUseCase) ListSectionWorkTypes(ctx context.Context, sectionID string) ([]entities.EstimateSectionWorkType, error) {
	if _, err := u.GetSection(ctx, sectionID); err != nil {
		return nil, err
	}
	return u.store.ListSectionWorkTypes(ctx, strings.TrimSpace(sectionID))
}

func (u *EstimateUseCase) ListItems(ctx context.Context, sectionWorkTypeID string) ([]entities.EstimateItem, error) {
	if _, err := u.GetSectionWorkType(ctx, sectionWorkTypeID); err != nil {
		return nil, err
	}
	return u.store.ListItems(ctx, strings.TrimSpace(sectionWorkTypeID))
}

func (u *EstimateUseCase) ListItemResources(ctx context.Context, itemID string) ([]entities.EstimateItemResource, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidID
	}
	item, err := u.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.ID == "" {
		return nil, fmt.Errorf("%w: estimate_item_id=%s", ErrItemNotFound, itemID)
	}
	return u.store.ListItemResources(ctx, itemID)
}

// GetEstimateDetail assembles the nested view of an estimate. Items follow the template
// order of their work type; items whose work left the template come last.
func (u *EstimateUseCase) GetEstimateDetail(ctx context.Context, id string) (entities.EstimateDetail, error) {
	e, err := u.GetEstimate(ctx, id)
	if err != nil {
		return entities.EstimateDetail{}, err
	}

	names := newNameCache(u.store)
	detail := entities.EstimateDetail{Estimate: e, Sections: []entities.EstimateSectionDetail{}}

	sections, err := u.store.ListSections(ctx, e.ID)
	if err != nil {
		return entities.EstimateDetail{}, err
	}
	for _, sec := range sections {
		cat, err := names.category(ctx, sec.WorkCategoryID)
		if err != nil {
			return entities.EstimateDetail{}, err
		}
		sd := entities.EstimateSectionDetail{
			EstimateSection:  sec,
			WorkCategoryName: cat.Name,
			WorkTypes:        []entities.EstimateSectionWorkTypeDetail{},
		}

		relations, err := u.store.ListSectionWorkTypes(ctx, sec.ID)
		if err != nil {
			return entities.EstimateDetail{}, err
		}
		for _, swt := range relations {
			wtd, err := u.sectionWorkTypeDetail(ctx, names, sec, swt)
			if err != nil {
				return entities.EstimateDetail{}, err
			}
			sd.WorkTypes = append(sd.WorkTypes, wtd)
		}
		detail.Sections = append(detail.Sections, sd)
	}
	return detail, nil
}

func (u *EstimateUseCase) sectionWorkTypeDetail(ctx context.Context, names *nameCache, sec entities.EstimateSection, swt entities.EstimateSectionWorkType) (entities.EstimateSectionWorkTypeDetail, error) {
	wt, err := names.workType(ctx, swt.WorkTypeID)
	if err != nil {
		return entities.EstimateSectionWorkTypeDetail{}, err
	}
	out := entities.EstimateSectionWorkTypeDetail{
		EstimateSectionWorkType: swt,
		WorkTypeName:            wt.Name,
		TypeArea:                quantity.DeriveTypeArea(sec.TotalArea, swt.Percentage),
		Items:                   []entities.EstimateItemDetail{},
	}

	templateWorks, err := u.store.GetWorkTypeWorks(ctx, swt.WorkTypeID)
	if err != nil {
		return entities.EstimateSectionWorkTypeDetail{}, err
	}
	order := make(map[string]int, len(templateWorks))
	for i, w := range templateWorks {
		order[w.WorkID] = i
	}

	items, err := u.store.ListItems(ctx, swt.ID)
	if err != nil {
		return entities.EstimateSectionWorkTypeDetail{}, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		oi, iok := order[items[i].WorkID]
		oj, jok := order[items[j].WorkID]
		if iok != jok {
			return iok
		}
		return oi < oj
	})

	for _, it := range items {
		w, err := names.work(ctx, it.WorkID)
		if err != nil {
			return entities.EstimateSectionWorkTypeDetail{}, err
		}
		itd := entities.EstimateItemDetail{
			EstimateItem: it,
			WorkName:     w.Name,
			WorkUnit:     w.Unit,
			Resources:    []entities.EstimateItemResourceDetail{},
		}
		resources, err := u.store.ListItemResources(ctx, it.ID)
		if err != nil {
			return entities.EstimateSectionWorkTypeDetail{}, err
		}
		for _, r := range resources {
			res, err := names.resource(ctx, r.ResourceID)
			if err != nil {
				return entities.EstimateSectionWorkTypeDetail{}, err
			}
			itd.Resources = append(itd.Resources, entities.EstimateItemResourceDetail{
				EstimateItemResource: r,
				ResourceName:         res.Name,
				ResourceUnit:         res.Unit,
			})
		}
		out.Items = append(out.Items, itd)
	}
	return out, nil
}

// nameCache memoizes template lookups while one detail view is built.
type nameCache struct {
	store      interfaces.ITemplateStore
	categories map[string]entities.WorkCategory
	workTypes  map[string]entities.WorkType
	works      map[string]entities.Work
	resources  map[string]entities.Resource
}

func newNameCache(store interfaces.ITemplateStore) *nameCache {
	return &nameCache{
		store:      store,
		categories: map[string]entities.WorkCategory{},
		workTypes:  map[string]entities.WorkType{},
		works:      map[string]entities.Work{},
		resources:  map[string]entities.Resource{},
	}
}

func (c *nameCache) category(ctx context.Context, id string) (entities.WorkCategory, error) {
	if v, ok := c.categories[id]; ok {
		return v, nil
	}
	v, err := c.store.GetWorkCategory(ctx, id)
	if err != nil {
		return entities.WorkCategory{}, err
	}
	c.categories[id] = v
	return v, nil
}

func (c *nameCache) workType(ctx context.Context, id string) (entities.WorkType, error) {
	if v, ok := c.workTypes[id]; ok {
		return v, nil
	}
	v, err := c.store.GetWorkType(ctx, id)
	if err != nil {
		return entities.WorkType{}, err
	}
	c.workTypes[id] = v
	return v, nil
}

func (c *nameCache) work(ctx context.Context, id string) (entities.Work, error) {
	if v, ok := c.works[id]; ok {
		return v, nil
	}
	v, err := c.store.GetWork(ctx, id)
	if err != nil {
		return entities.Work{}, err
	}
	c.works[id] = v
	return v, nil
}

func (c *nameCache) resource(ctx context.Context, id string) (entities.Resource, error) {
	if v, ok := c.resources[id]; ok {
		return v, nil
	}
	v, err := c.store.GetResource(ctx, id)
	if err != nil {
		return entities.Resource{}, err
	}
	c.resources[id] = v
	return v, nil
}
