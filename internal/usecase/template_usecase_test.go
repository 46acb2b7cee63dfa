package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"boq_service/internal/adapter/persistence/memory"
	"boq_service/internal/domain/entities"
	mock_interfaces "boq_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type templateFixture struct {
	uc       *TemplateUseCase
	store    *memory.Store
	category entities.WorkCategory
	workType entities.WorkType
	work     entities.Work
	resource entities.Resource
}

func newTemplateFixture(t *testing.T) templateFixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	uc := NewTemplateUseCase(s)

	cat, err := uc.CreateWorkCategory(ctx, entities.WorkCategory{Name: " Roofing "})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	wt, err := uc.CreateWorkType(ctx, entities.WorkType{CategoryID: cat.ID, Name: "Metal tile"})
	if err != nil {
		t.Fatalf("create work type: %v", err)
	}
	w, err := uc.CreateWork(ctx, entities.Work{Name: "Battens", Unit: "m"})
	if err != nil {
		t.Fatalf("create work: %v", err)
	}
	r, err := uc.CreateResource(ctx, entities.Resource{Name: "Screws", Unit: "pcs"})
	if err != nil {
		t.Fatalf("create resource: %v", err)
	}
	return templateFixture{uc: uc, store: s, category: cat, workType: wt, work: w, resource: r}
}

func TestTemplateUseCase_Reference(t *testing.T) {
	ctx := context.Background()

	t.Run("names are trimmed", func(t *testing.T) {
		f := newTemplateFixture(t)
		if f.category.Name != "Roofing" {
			t.Fatalf("expected trimmed name, got %q", f.category.Name)
		}
	})

	t.Run("work requires a unit", func(t *testing.T) {
		f := newTemplateFixture(t)
		_, err := f.uc.CreateWork(ctx, entities.Work{Name: "Cutting"})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("work type requires an existing category", func(t *testing.T) {
		f := newTemplateFixture(t)
		_, err := f.uc.CreateWorkType(ctx, entities.WorkType{CategoryID: "missing", Name: "X"})
		if !errors.Is(err, ErrWorkCategoryNotFound) {
			t.Fatalf("expected ErrWorkCategoryNotFound, got %v", err)
		}
	})

	t.Run("update unknown resource", func(t *testing.T) {
		f := newTemplateFixture(t)
		_, err := f.uc.UpdateResource(ctx, entities.Resource{ID: "missing", Name: "X", Unit: "kg"})
		if !errors.Is(err, ErrResourceNotFound) {
			t.Fatalf("expected ErrResourceNotFound, got %v", err)
		}
	})

	t.Run("list work types by category", func(t *testing.T) {
		f := newTemplateFixture(t)
		other, _ := f.uc.CreateWorkCategory(ctx, entities.WorkCategory{Name: "Facades"})
		_, _ = f.uc.CreateWorkType(ctx, entities.WorkType{CategoryID: other.ID, Name: "Plaster"})

		got, err := f.uc.ListWorkTypes(ctx, f.category.ID)
		if err != nil || len(got) != 1 || got[0].ID != f.workType.ID {
			t.Fatalf("unexpected list: %+v %v", got, err)
		}
		all, _ := f.uc.ListWorkTypes(ctx, "")
		if len(all) != 2 {
			t.Fatalf("expected 2 work types, got %d", len(all))
		}
	})
}

func TestTemplateUseCase_WorkTypeWork(t *testing.T) {
	ctx := context.Background()

	t.Run("default coefficient", func(t *testing.T) {
		f := newTemplateFixture(t)
		w, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if w.WorkVolumePerUnit != entities.DefaultWorkVolumePerUnit {
			t.Fatalf("expected default coefficient, got %v", w.WorkVolumePerUnit)
		}
	})

	t.Run("negative coefficient rejected", func(t *testing.T) {
		f := newTemplateFixture(t)
		neg := -0.5
		_, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID, WorkVolumePerUnit: &neg})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("non finite coefficient rejected", func(t *testing.T) {
		f := newTemplateFixture(t)
		inf := math.Inf(1)
		_, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID, WorkVolumePerUnit: &inf})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("duplicate pair", func(t *testing.T) {
		f := newTemplateFixture(t)
		in := WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID}
		if _, err := f.uc.CreateWorkTypeWork(ctx, in); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := f.uc.CreateWorkTypeWork(ctx, in); !errors.Is(err, entities.ErrDuplicateRelation) {
			t.Fatalf("expected ErrDuplicateRelation, got %v", err)
		}
	})

	t.Run("unknown work", func(t *testing.T) {
		f := newTemplateFixture(t)
		_, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: "missing"})
		if !errors.Is(err, ErrWorkNotFound) {
			t.Fatalf("expected ErrWorkNotFound, got %v", err)
		}
	})

	t.Run("update keeps coefficient when omitted", func(t *testing.T) {
		f := newTemplateFixture(t)
		c := 0.25
		created, _ := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID, WorkVolumePerUnit: &c})
		order := 4
		updated, err := f.uc.UpdateWorkTypeWork(ctx, created.ID, WorkTypeWorkInput{OrderIndex: &order})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if updated.OrderIndex != 4 || updated.WorkVolumePerUnit != 0.25 || updated.WorkID != f.work.ID {
			t.Fatalf("unexpected update: %+v", updated)
		}
	})

	t.Run("update keeps order index when omitted", func(t *testing.T) {
		f := newTemplateFixture(t)
		order := 5
		created, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID, OrderIndex: &order})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		c := 2.5
		updated, err := f.uc.UpdateWorkTypeWork(ctx, created.ID, WorkTypeWorkInput{WorkVolumePerUnit: &c})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.OrderIndex != 5 || updated.WorkVolumePerUnit != 2.5 {
			t.Fatalf("unexpected update: %+v", updated)
		}
		stored, _ := f.store.GetWorkTypeWork(ctx, created.ID)
		if stored.OrderIndex != 5 {
			t.Fatalf("stored order index changed to %d", stored.OrderIndex)
		}
	})

	t.Run("update accepts explicit zero order index", func(t *testing.T) {
		f := newTemplateFixture(t)
		order := 3
		created, _ := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID, OrderIndex: &order})
		zero := 0
		updated, err := f.uc.UpdateWorkTypeWork(ctx, created.ID, WorkTypeWorkInput{OrderIndex: &zero})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.OrderIndex != 0 {
			t.Fatalf("expected order index 0, got %d", updated.OrderIndex)
		}
	})

	t.Run("list without work type returns every template work", func(t *testing.T) {
		f := newTemplateFixture(t)
		other, _ := f.uc.CreateWorkType(ctx, entities.WorkType{CategoryID: f.category.ID, Name: "Soft tile"})
		if _, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID}); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: other.ID, WorkID: f.work.ID}); err != nil {
			t.Fatalf("create: %v", err)
		}

		all, err := f.uc.ListWorkTypeWorks(ctx, " ")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 rows, got %+v", all)
		}
		filtered, _ := f.uc.ListWorkTypeWorks(ctx, other.ID)
		if len(filtered) != 1 || filtered[0].WorkTypeID != other.ID {
			t.Fatalf("unexpected filtered rows: %+v", filtered)
		}
	})

	t.Run("create without order index defaults to zero", func(t *testing.T) {
		f := newTemplateFixture(t)
		created, err := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.OrderIndex != 0 {
			t.Fatalf("expected order index 0, got %d", created.OrderIndex)
		}
	})
}

func TestTemplateUseCase_WorkResource(t *testing.T) {
	ctx := context.Background()

	t.Run("create and duplicate", func(t *testing.T) {
		f := newTemplateFixture(t)
		in := entities.WorkResource{WorkTypeID: f.workType.ID, WorkID: f.work.ID, ResourceID: f.resource.ID, QuantityPerUnit: 8}
		if _, err := f.uc.CreateWorkResource(ctx, in); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := f.uc.CreateWorkResource(ctx, in); !errors.Is(err, entities.ErrDuplicateRelation) {
			t.Fatalf("expected ErrDuplicateRelation, got %v", err)
		}
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		f := newTemplateFixture(t)
		_, err := f.uc.CreateWorkResource(ctx, entities.WorkResource{WorkTypeID: f.workType.ID, WorkID: f.work.ID, ResourceID: f.resource.ID, QuantityPerUnit: -1})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newTemplateFixture(t)
		_, err := f.uc.CreateWorkResource(ctx, entities.WorkResource{WorkTypeID: f.workType.ID, WorkID: f.work.ID, ResourceID: "missing", QuantityPerUnit: 1})
		if !errors.Is(err, ErrResourceNotFound) {
			t.Fatalf("expected ErrResourceNotFound, got %v", err)
		}
	})
	t.Run("list filters are optional", func(t *testing.T) {
		f := newTemplateFixture(t)
		other, _ := f.uc.CreateWorkType(ctx, entities.WorkType{CategoryID: f.category.ID, Name: "Soft tile"})
		for _, wt := range []string{f.workType.ID, other.ID} {
			in := entities.WorkResource{WorkTypeID: wt, WorkID: f.work.ID, ResourceID: f.resource.ID, QuantityPerUnit: 2}
			if _, err := f.uc.CreateWorkResource(ctx, in); err != nil {
				t.Fatalf("create: %v", err)
			}
		}

		all, err := f.uc.ListWorkResources(ctx, "", "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 rows, got %+v", all)
		}
		byWork, _ := f.uc.ListWorkResources(ctx, "", f.work.ID)
		if len(byWork) != 2 {
			t.Fatalf("expected 2 rows for the work, got %+v", byWork)
		}
		byType, _ := f.uc.ListWorkResources(ctx, other.ID, "")
		if len(byType) != 1 || byType[0].WorkTypeID != other.ID {
			t.Fatalf("unexpected rows for work type: %+v", byType)
		}
	})
}

func TestTemplateUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		uc := NewTemplateUseCase(nil)
		if err := uc.DeleteWorkType(ctx, ""); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("restricted error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEstimateStore(ctrl)
		uc := NewTemplateUseCase(store)
		store.EXPECT().DeleteWorkType(gomock.Any(), "wt-1").Return(entities.ErrDeleteRestricted)

		if err := uc.DeleteWorkType(ctx, " wt-1 "); !errors.Is(err, entities.ErrDeleteRestricted) {
			t.Fatalf("expected ErrDeleteRestricted, got %v", err)
		}
	})

	t.Run("template delete leaves estimates untouched", func(t *testing.T) {
		f := newTemplateFixture(t)
		wtw, _ := f.uc.CreateWorkTypeWork(ctx, WorkTypeWorkInput{WorkTypeID: f.workType.ID, WorkID: f.work.ID})
		est, _ := f.store.CreateEstimate(ctx, entities.Estimate{Name: "E", ObjectName: "O", Status: entities.EstimateStatusDraft})
		sec, _ := f.store.CreateSection(ctx, entities.EstimateSection{EstimateID: est.ID, WorkCategoryID: f.category.ID, TotalArea: 10})
		swt, err := NewPropagationUseCase(f.store, nil).AttachWorkType(ctx, sec.ID, f.workType.ID, 100)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}

		if err := f.uc.DeleteWorkTypeWork(ctx, wtw.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		items, _ := f.store.ListItems(ctx, swt.ID)
		if len(items) != 1 {
			t.Fatalf("expected materialized item to remain, got %d", len(items))
		}
		if err := f.uc.DeleteWorkType(ctx, f.workType.ID); !errors.Is(err, entities.ErrDeleteRestricted) {
			t.Fatalf("expected ErrDeleteRestricted, got %v", err)
		}
	})
}
