package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// WorkTypeWorkInput is the editable part of a WorkTypeWork. A nil coefficient falls back
// to entities.DefaultWorkVolumePerUnit on create and keeps the stored one on update. A
// nil order index means 0 on create and keeps the stored position on update.
type WorkTypeWorkInput struct {
	WorkTypeID        string
	WorkID            string
	OrderIndex        *int
	WorkVolumePerUnit *float64
}

// ITemplateUseCase edits the template hierarchy. Template edits never touch derived
// estimate rows; those follow on the next propagation trigger.
type ITemplateUseCase interface {
	CreateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error)
	GetWorkCategory(ctx context.Context, id string) (entities.WorkCategory, error)
	ListWorkCategories(ctx context.Context) ([]entities.WorkCategory, error)
	UpdateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error)
	DeleteWorkCategory(ctx context.Context, id string) error

	CreateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error)
	GetWorkType(ctx context.Context, id string) (entities.WorkType, error)
	ListWorkTypes(ctx context.Context, categoryID string) ([]entities.WorkType, error)
	UpdateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error)
	DeleteWorkType(ctx context.Context, id string) error

	CreateWork(ctx context.Context, w entities.Work) (entities.Work, error)
	GetWork(ctx context.Context, id string) (entities.Work, error)
	ListWorks(ctx context.Context) ([]entities.Work, error)
	UpdateWork(ctx context.Context, w entities.Work) (entities.Work, error)

	CreateResource(ctx context.Context, r entities.Resource) (entities.Resource, error)
	GetResource(ctx context.Context, id string) (entities.Resource, error)
	ListResources(ctx context.Context) ([]entities.Resource, error)
	UpdateResource(ctx context.Context, r entities.Resource) (entities.Resource, error)

	CreateWorkTypeWork(ctx context.Context, in WorkTypeWorkInput) (entities.WorkTypeWork, error)
	GetWorkTypeWork(ctx context.Context, id string) (entities.WorkTypeWork, error)
	ListWorkTypeWorks(ctx context.Context, workTypeID string) ([]entities.WorkTypeWork, error)
	UpdateWorkTypeWork(ctx context.Context, id string, in WorkTypeWorkInput) (entities.WorkTypeWork, error)
	DeleteWorkTypeWork(ctx context.Context, id string) error

	CreateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error)
	GetWorkResource(ctx context.Context, id string) (entities.WorkResource, error)
	ListWorkResources(ctx context.Context, workTypeID, workID string) ([]entities.WorkResource, error)
	UpdateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error)
	DeleteWorkResource(ctx context.Context, id string) error
}

type TemplateUseCase struct {
	store interfaces.IEstimateStore
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(store interfaces.IEstimateStore) *TemplateUseCase {
	return &TemplateUseCase{store: store}
}

func (u *TemplateUseCase) CreateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return entities.WorkCategory{}, err
	}
	c.ID = uuid.NewString()
	return u.store.CreateWorkCategory(ctx, c)
}

func (u *TemplateUseCase) GetWorkCategory(ctx context.Context, id string) (entities.WorkCategory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkCategory{}, ErrInvalidID
	}
	c, err := u.store.GetWorkCategory(ctx, id)
	if err != nil {
		return entities.WorkCategory{}, err
	}
	if c.ID == "" {
		return entities.WorkCategory{}, fmt.Errorf("%w: work_category_id=%s", ErrWorkCategoryNotFound, id)
	}
	return c, nil
}

func (u *TemplateUseCase) ListWorkCategories(ctx context.Context) ([]entities.WorkCategory, error) {
	return u.store.ListWorkCategories(ctx)
}

func (u *TemplateUseCase) UpdateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" {
		return entities.WorkCategory{}, ErrInvalidID
	}
	if err := c.Validate(); err != nil {
		return entities.WorkCategory{}, err
	}
	updated, err := u.store.UpdateWorkCategory(ctx, c)
	if err != nil {
		return entities.WorkCategory{}, err
	}
	if updated.ID == "" {
		return entities.WorkCategory{}, fmt.Errorf("%w: work_category_id=%s", ErrWorkCategoryNotFound, c.ID)
	}
	return updated, nil
}

func (u *TemplateUseCase) DeleteWorkCategory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	log.Printf("[template][usecase] delete work category work_category_id=%s", id)
	return u.store.DeleteWorkCategory(ctx, id)
}

func (u *TemplateUseCase) CreateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error) {
	t.CategoryID = strings.TrimSpace(t.CategoryID)
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return entities.WorkType{}, err
	}
	if _, err := u.GetWorkCategory(ctx, t.CategoryID); err != nil {
		return entities.WorkType{}, err
	}
	t.ID = uuid.NewString()
	return u.store.CreateWorkType(ctx, t)
}

func (u *TemplateUseCase) GetWorkType(ctx context.Context, id string) (entities.WorkType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkType{}, ErrInvalidID
	}
	t, err := u.store.GetWorkType(ctx, id)
	if err != nil {
		return entities.WorkType{}, err
	}
	if t.ID == "" {
		return entities.WorkType{}, fmt.Errorf("%w: work_type_id=%s", ErrWorkTypeNotFound, id)
	}
	return t, nil
}

func (u *TemplateUseCase) ListWorkTypes(ctx context.Context, categoryID string) ([]entities.WorkType, error) {
	return u.store.ListWorkTypes(ctx, strings.TrimSpace(categoryID))
}

func (u *TemplateUseCase) UpdateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error) {
	t.ID = strings.TrimSpace(t.ID)
	t.CategoryID = strings.TrimSpace(t.CategoryID)
	t.Name = strings.TrimSpace(t.Name)
	if t.ID == "" {
		return entities.WorkType{}, ErrInvalidID
	}
	if err := t.Validate(); err != nil {
		return entities.WorkType{}, err
	}
	if _, err := u.GetWorkCategory(ctx, t.CategoryID); err != nil {
		return entities.WorkType{}, err
	}
	updated, err := u.store.UpdateWorkType(ctx, t)
	if err != nil {
		return entities.WorkType{}, err
	}
	if updated.ID == "" {
		return entities.WorkType{}, fmt.Errorf("%w: work_type_id=%s", ErrWorkTypeNotFound, t.ID)
	}
	return updated, nil
}

func (u *TemplateUseCase) DeleteWorkType(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	log.Printf("[template][usecase] delete work type work_type_id=%s", id)
	return u.store.DeleteWorkType(ctx, id)
}

func (u *TemplateUseCase) CreateWork(ctx context.Context, w entities.Work) (entities.Work, error) {
	w.Name = strings.TrimSpace(w.Name)
	w.Unit = strings.TrimSpace(w.Unit)
	if err := w.Validate(); err != nil {
		return entities.Work{}, err
	}
	w.ID = uuid.NewString()
	return u.store.CreateWork(ctx, w)
}

func (u *TemplateUseCase) GetWork(ctx context.Context, id string) (entities.Work, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Work{}, ErrInvalidID
	}
	w, err := u.store.GetWork(ctx, id)
	if err != nil {
		return entities.Work{}, err
	}
	if w.ID == "" {
		return entities.Work{}, fmt.Errorf("%w: work_id=%s", ErrWorkNotFound, id)
	}
	return w, nil
}

func (u *TemplateUseCase) ListWorks(ctx context.Context) ([]entities.Work, error) {
	return u.store.ListWorks(ctx)
}

func (u *TemplateUseCase) UpdateWork(ctx context.Context, w entities.Work) (entities.Work, error) {
	w.ID = strings.TrimSpace(w.ID)
	w.Name = strings.TrimSpace(w.Name)
	w.Unit = strings.TrimSpace(w.Unit)
	if w.ID == "" {
		return entities.Work{}, ErrInvalidID
	}
	if err := w.Validate(); err != nil {
		return entities.Work{}, err
	}
	updated, err := u.store.UpdateWork(ctx, w)
	if err != nil {
		return entities.Work{}, err
	}
	if updated.ID == "" {
		return entities.Work{}, fmt.Errorf("%w: work_id=%s", ErrWorkNotFound, w.ID)
	}
	return updated, nil
}

func (u *TemplateUseCase) CreateResource(ctx context.Context, r entities.Resource) (entities.Resource, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Unit = strings.TrimSpace(r.Unit)
	if err := r.Validate(); err != nil {
		return entities.Resource{}, err
	}
	r.ID = uuid.NewString()
	return u.store.CreateResource(ctx, r)
}

func (u *TemplateUseCase) GetResource(ctx context.Context, id string) (entities.Resource, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Resource{}, ErrInvalidID
	}
	r, err := u.store.GetResource(ctx, id)
	if err != nil {
		return entities.Resource{}, err
	}
	if r.ID == "" {
		return entities.Resource{}, fmt.Errorf("%w: resource_id=%s", ErrResourceNotFound, id)
	}
	return r, nil
}

func (u *TemplateUseCase) ListResources(ctx context.Context) ([]entities.Resource, error) {
	return u.store.ListResources(ctx)
}

func (u *TemplateUseCase) UpdateResource(ctx context.Context, r entities.Resource) (entities.Resource, error) {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Unit = strings.TrimSpace(r.Unit)
	if r.ID == "" {
		return entities.Resource{}, ErrInvalidID
	}
	if err := r.Validate(); err != nil {
		return entities.Resource{}, err
	}
	updated, err := u.store.UpdateResource(ctx, r)
	if err != nil {
		return entities.Resource{}, err
	}
	if updated.ID == "" {
		return entities.Resource{}, fmt.Errorf("%w: resource_id=%s", ErrResourceNotFound, r.ID)
	}
	return updated, nil
}

func (u *TemplateUseCase) CreateWorkTypeWork(ctx context.Context, in WorkTypeWorkInput) (entities.WorkTypeWork, error) {
	w := entities.WorkTypeWork{
		WorkTypeID:        strings.TrimSpace(in.WorkTypeID),
		WorkID:            strings.TrimSpace(in.WorkID),
		WorkVolumePerUnit: entities.DefaultWorkVolumePerUnit,
	}
	if in.OrderIndex != nil {
		w.OrderIndex = *in.OrderIndex
	}
	if in.WorkVolumePerUnit != nil {
		w.WorkVolumePerUnit = *in.WorkVolumePerUnit
	}
	if err := w.Validate(); err != nil {
		return entities.WorkTypeWork{}, err
	}
	if err := u.requireWorkTypeAndWork(ctx, w.WorkTypeID, w.WorkID); err != nil {
		return entities.WorkTypeWork{}, err
	}
	if existing, err := u.store.FindWorkTypeWork(ctx, w.WorkTypeID, w.WorkID); err != nil {
		return entities.WorkTypeWork{}, err
	} else if existing.ID != "" {
		return entities.WorkTypeWork{}, fmt.Errorf("%w: work_type_id=%s work_id=%s", entities.ErrDuplicateRelation, w.WorkTypeID, w.WorkID)
	}
	w.ID = uuid.NewString()
	return u.store.CreateWorkTypeWork(ctx, w)
}

func (u *TemplateUseCase) GetWorkTypeWork(ctx context.Context, id string) (entities.WorkTypeWork, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkTypeWork{}, ErrInvalidID
	}
	w, err := u.store.GetWorkTypeWork(ctx, id)
	if err != nil {
		return entities.WorkTypeWork{}, err
	}
	if w.ID == "" {
		return entities.WorkTypeWork{}, fmt.Errorf("%w: work_type_work_id=%s", ErrWorkTypeWorkNotFound, id)
	}
	return w, nil
}

// ListWorkTypeWorks lists the works of one work type, or every template work when
// workTypeID is empty.
func (u *TemplateUseCase) ListWorkTypeWorks(ctx context.Context, workTypeID string) ([]entities.WorkTypeWork, error) {
	return u.store.GetWorkTypeWorks(ctx, strings.TrimSpace(workTypeID))
}

func (u *TemplateUseCase) UpdateWorkTypeWork(ctx context.Context, id string, in WorkTypeWorkInput) (entities.WorkTypeWork, error) {
	cur, err := u.GetWorkTypeWork(ctx, id)
	if err != nil {
		return entities.WorkTypeWork{}, err
	}
	if v := strings.TrimSpace(in.WorkTypeID); v != "" {
		cur.WorkTypeID = v
	}
	if v := strings.TrimSpace(in.WorkID); v != "" {
		cur.WorkID = v
	}
	if in.OrderIndex != nil {
		cur.OrderIndex = *in.OrderIndex
	}
	if in.WorkVolumePerUnit != nil {
		cur.WorkVolumePerUnit = *in.WorkVolumePerUnit
	}
	if err := cur.Validate(); err != nil {
		return entities.WorkTypeWork{}, err
	}
	if err := u.requireWorkTypeAndWork(ctx, cur.WorkTypeID, cur.WorkID); err != nil {
		return entities.WorkTypeWork{}, err
	}

	updated, err := u.store.UpdateWorkTypeWork(ctx, cur)
	if err != nil {
		return entities.WorkTypeWork{}, err
	}
	if updated.ID == "" {
		return entities.WorkTypeWork{}, fmt.Errorf("%w: work_type_work_id=%s", ErrWorkTypeWorkNotFound, cur.ID)
	}
	return updated, nil
}

func (u *TemplateUseCase) DeleteWorkTypeWork(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	log.Printf("[template][usecase] delete work type work work_type_work_id=%s", id)
	return u.store.DeleteWorkTypeWork(ctx, id)
}

func (u *TemplateUseCase) CreateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error) {
	w.WorkTypeID = strings.TrimSpace(w.WorkTypeID)
	w.WorkID = strings.TrimSpace(w.WorkID)
	w.ResourceID = strings.TrimSpace(w.ResourceID)
	if err := w.Validate(); err != nil {
		return entities.WorkResource{}, err
	}
	if err := u.requireWorkResourceRefs(ctx, w); err != nil {
		return entities.WorkResource{}, err
	}
	if existing, err := u.store.FindWorkResource(ctx, w.WorkTypeID, w.WorkID, w.ResourceID); err != nil {
		return entities.WorkResource{}, err
	} else if existing.ID != "" {
		return entities.WorkResource{}, fmt.Errorf("%w: work_type_id=%s work_id=%s resource_id=%s", entities.ErrDuplicateRelation, w.WorkTypeID, w.WorkID, w.ResourceID)
	}
	w.ID = uuid.NewString()
	return u.store.CreateWorkResource(ctx, w)
}

func (u *TemplateUseCase) GetWorkResource(ctx context.Context, id string) (entities.WorkResource, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkResource{}, ErrInvalidID
	}
	w, err := u.store.GetWorkResource(ctx, id)
	if err != nil {
		return entities.WorkResource{}, err
	}
	if w.ID == "" {
		return entities.WorkResource{}, fmt.Errorf("%w: work_resource_id=%s", ErrWorkResourceNotFound, id)
	}
	return w, nil
}

// ListWorkResources filters by work type and work. Either filter may be empty.
func (u *TemplateUseCase) ListWorkResources(ctx context.Context, workTypeID, workID string) ([]entities.WorkResource, error) {
	return u.store.GetWorkResources(ctx, strings.TrimSpace(workTypeID), strings.TrimSpace(workID))
}

func (u *TemplateUseCase) UpdateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error) {
	w.ID = strings.TrimSpace(w.ID)
	w.WorkTypeID = strings.TrimSpace(w.WorkTypeID)
	w.WorkID = strings.TrimSpace(w.WorkID)
	w.ResourceID = strings.TrimSpace(w.ResourceID)
	if w.ID == "" {
		return entities.WorkResource{}, ErrInvalidID
	}
	if err := w.Validate(); err != nil {
		return entities.WorkResource{}, err
	}
	if err := u.requireWorkResourceRefs(ctx, w); err != nil {
		return entities.WorkResource{}, err
	}
	updated, err := u.store.UpdateWorkResource(ctx, w)
	if err != nil {
		return entities.WorkResource{}, err
	}
	if updated.ID == "" {
		return entities.WorkResource{}, fmt.Errorf("%w: work_resource_id=%s", ErrWorkResourceNotFound, w.ID)
	}
	return updated, nil
}

func (u *TemplateUseCase) DeleteWorkResource(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	log.Printf("[template][usecase] delete work resource work_resource_id=%s", id)
	return u.store.DeleteWorkResource(ctx, id)
}

func (u *TemplateUseCase) requireWorkTypeAndWork(ctx context.Context, workTypeID, workID string) error {
	if _, err := u.GetWorkType(ctx, workTypeID); err != nil {
		return err
	}
	_, err := u.GetWork(ctx, workID)
	return err
}

func (u *TemplateUseCase) requireWorkResourceRefs(ctx context.Context, w entities.WorkResource) error {
	if err := u.requireWorkTypeAndWork(ctx, w.WorkTypeID, w.WorkID); err != nil {
		return err
	}
	_, err := u.GetResource(ctx, w.ResourceID)
	return err
}
