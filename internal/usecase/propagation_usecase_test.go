package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"boq_service/internal/adapter/persistence/memory"
	"boq_service/internal/domain/entities"
	"boq_service/internal/domain/quantity"
	"boq_service/internal/usecase/interfaces"
)

const tolerance = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= tolerance }

type propagationFixture struct {
	store    *memory.Store
	uc       *PropagationUseCase
	recorder *recordingMetrics
	section  entities.EstimateSection
	workType entities.WorkType
	wtw      entities.WorkTypeWork
	wr       entities.WorkResource
}

// newPropagationFixture builds a section of 100 m2 and a work type with one work
// (0.1 per m2) consuming one resource (25 per unit of work).
func newPropagationFixture(t *testing.T) *propagationFixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	cat, _ := s.CreateWorkCategory(ctx, entities.WorkCategory{Name: "Floors"})
	wt, _ := s.CreateWorkType(ctx, entities.WorkType{CategoryID: cat.ID, Name: "Sport linoleum"})
	work, _ := s.CreateWork(ctx, entities.Work{Name: "Screed installation", Unit: "m3"})
	res, _ := s.CreateResource(ctx, entities.Resource{Name: "Cement", Unit: "kg"})
	wtw, err := s.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: wt.ID, WorkID: work.ID, OrderIndex: 1, WorkVolumePerUnit: 0.1})
	if err != nil {
		t.Fatalf("seed work type work: %v", err)
	}
	wr, err := s.CreateWorkResource(ctx, entities.WorkResource{WorkTypeID: wt.ID, WorkID: work.ID, ResourceID: res.ID, QuantityPerUnit: 25})
	if err != nil {
		t.Fatalf("seed work resource: %v", err)
	}
	est, _ := s.CreateEstimate(ctx, entities.Estimate{Name: "Gym", ObjectName: "School 12", Status: entities.EstimateStatusDraft})
	sec, err := s.CreateSection(ctx, entities.EstimateSection{EstimateID: est.ID, WorkCategoryID: cat.ID, TotalArea: 100})
	if err != nil {
		t.Fatalf("seed section: %v", err)
	}

	rec := &recordingMetrics{}
	return &propagationFixture{
		store:    s,
		uc:       NewPropagationUseCase(s, rec),
		recorder: rec,
		section:  sec,
		workType: wt,
		wtw:      wtw,
		wr:       wr,
	}
}

func (f *propagationFixture) items(t *testing.T, swtID string) []entities.EstimateItem {
	t.Helper()
	items, err := f.store.ListItems(context.Background(), swtID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	return items
}

func (f *propagationFixture) resources(t *testing.T, itemID string) []entities.EstimateItemResource {
	t.Helper()
	res, err := f.store.ListItemResources(context.Background(), itemID)
	if err != nil {
		t.Fatalf("list item resources: %v", err)
	}
	return res
}

// single returns the only item and its only resource row.
func (f *propagationFixture) single(t *testing.T, swtID string) (entities.EstimateItem, entities.EstimateItemResource) {
	t.Helper()
	items := f.items(t, swtID)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	res := f.resources(t, items[0].ID)
	if len(res) != 1 {
		t.Fatalf("expected 1 item resource, got %d", len(res))
	}
	return items[0], res[0]
}

type recordingMetrics struct {
	observed []string
	failures int
	rows     map[string]int
}

func (r *recordingMetrics) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	r.observed = append(r.observed, op)
	if !success {
		r.failures++
	}
}

func (r *recordingMetrics) RowsWritten(kind, action string, n int) {
	if r.rows == nil {
		r.rows = make(map[string]int)
	}
	r.rows[kind+"/"+action] += n
}

// failingStore fails every UpsertItemResource issued inside a transaction.
type failingStore struct {
	interfaces.IEstimateStore
}

func (f failingStore) WithinTx(ctx context.Context, fn func(tx interfaces.IEstimateStore) error) error {
	return f.IEstimateStore.WithinTx(ctx, func(tx interfaces.IEstimateStore) error {
		return fn(failingStore{IEstimateStore: tx})
	})
}

func (failingStore) UpsertItemResource(context.Context, string, string, float64) (entities.EstimateItemResource, error) {
	return entities.EstimateItemResource{}, errors.New("connection reset")
}

// lockingStore records every LockSection issued inside a transaction. onLock runs
// while the lock is held, standing in for a writer that committed just before it.
type lockingStore struct {
	interfaces.IEstimateStore
	locked *[]string
	onLock func(tx interfaces.IEstimateStore, sectionID string)
}

func (l lockingStore) WithinTx(ctx context.Context, fn func(tx interfaces.IEstimateStore) error) error {
	return l.IEstimateStore.WithinTx(ctx, func(tx interfaces.IEstimateStore) error {
		return fn(lockingStore{IEstimateStore: tx, locked: l.locked, onLock: l.onLock})
	})
}

func (l lockingStore) LockSection(ctx context.Context, id string) (entities.EstimateSection, error) {
	*l.locked = append(*l.locked, id)
	if l.onLock != nil {
		l.onLock(l.IEstimateStore, id)
	}
	return l.IEstimateStore.LockSection(ctx, id)
}

func TestPropagationUseCase_Scenarios(t *testing.T) {
	ctx := context.Background()
	f := newPropagationFixture(t)

	swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	t.Run("attach derives item volume", func(t *testing.T) {
		item, _ := f.single(t, swt.ID)
		if !approx(item.Volume, 4.0) {
			t.Fatalf("expected volume 4.0, got %v", item.Volume)
		}
	})

	t.Run("attach derives resource quantity", func(t *testing.T) {
		_, res := f.single(t, swt.ID)
		if !approx(res.Quantity, 100.0) || res.ResourceID != f.wr.ResourceID {
			t.Fatalf("expected quantity 100.0 of %s, got %+v", f.wr.ResourceID, res)
		}
	})

	t.Run("percentage change recomputes the subtree", func(t *testing.T) {
		if err := f.uc.UpdatePercentage(ctx, swt.ID, 60); err != nil {
			t.Fatalf("update percentage: %v", err)
		}
		item, res := f.single(t, swt.ID)
		if !approx(item.Volume, 6.0) || !approx(res.Quantity, 150.0) {
			t.Fatalf("expected 6.0/150.0, got %v/%v", item.Volume, res.Quantity)
		}
	})

	t.Run("area change recomputes with the stored percentage", func(t *testing.T) {
		if err := f.uc.UpdateSectionArea(ctx, f.section.ID, 50); err != nil {
			t.Fatalf("update area: %v", err)
		}
		item, res := f.single(t, swt.ID)
		if !approx(item.Volume, 3.0) || !approx(res.Quantity, 75.0) {
			t.Fatalf("expected 3.0/75.0, got %v/%v", item.Volume, res.Quantity)
		}
	})

	t.Run("removed template work is pruned on the next trigger", func(t *testing.T) {
		item, _ := f.single(t, swt.ID)
		if err := f.store.DeleteWorkTypeWork(ctx, f.wtw.ID); err != nil {
			t.Fatalf("delete template row: %v", err)
		}
		if got := f.items(t, swt.ID); len(got) != 1 {
			t.Fatalf("template delete must not prune eagerly, got %d items", len(got))
		}

		if err := f.uc.UpdatePercentage(ctx, swt.ID, 70); err != nil {
			t.Fatalf("update percentage: %v", err)
		}
		if got := f.items(t, swt.ID); len(got) != 0 {
			t.Fatalf("expected item pruned, got %+v", got)
		}
		if got := f.resources(t, item.ID); len(got) != 0 {
			t.Fatalf("expected item resources pruned, got %+v", got)
		}
	})

	t.Run("second attach is a duplicate relation", func(t *testing.T) {
		before := f.store.ChangeCount()
		_, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 10)
		if !errors.Is(err, ErrWorkTypeAlreadyAttached) || !errors.Is(err, entities.ErrDuplicateRelation) {
			t.Fatalf("expected ErrWorkTypeAlreadyAttached, got %v", err)
		}
		if f.store.ChangeCount() != before {
			t.Fatalf("expected no writes, got %d", f.store.ChangeCount()-before)
		}
		relations, _ := f.store.ListSectionWorkTypes(ctx, f.section.ID)
		if len(relations) != 1 {
			t.Fatalf("expected one relation, got %d", len(relations))
		}
	})
}

func TestPropagationUseCase_AttachWorkType(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid ids", func(t *testing.T) {
		uc := NewPropagationUseCase(nil, nil)
		_, err := uc.AttachWorkType(ctx, " ", "wt", 10)
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("section not found", func(t *testing.T) {
		f := newPropagationFixture(t)
		_, err := f.uc.AttachWorkType(ctx, "missing", f.workType.ID, 10)
		if !errors.Is(err, ErrSectionNotFound) || !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrSectionNotFound, got %v", err)
		}
	})

	t.Run("work type not found", func(t *testing.T) {
		f := newPropagationFixture(t)
		_, err := f.uc.AttachWorkType(ctx, f.section.ID, "missing", 10)
		if !errors.Is(err, ErrWorkTypeNotFound) {
			t.Fatalf("expected ErrWorkTypeNotFound, got %v", err)
		}
	})

	t.Run("items follow template order", func(t *testing.T) {
		f := newPropagationFixture(t)
		w2, _ := f.store.CreateWork(ctx, entities.Work{Name: "Priming", Unit: "m2"})
		w0, _ := f.store.CreateWork(ctx, entities.Work{Name: "Cleaning", Unit: "m2"})
		_, _ = f.store.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: f.workType.ID, WorkID: w2.ID, OrderIndex: 2, WorkVolumePerUnit: 1})
		_, _ = f.store.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: f.workType.ID, WorkID: w0.ID, OrderIndex: 0, WorkVolumePerUnit: 2})

		swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 50)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}

		var created []string
		for _, c := range f.store.Changes() {
			if c.Entity == "estimate_item" && c.Action == memory.ActionCreate {
				created = append(created, c.ID)
			}
		}
		if len(created) != 3 {
			t.Fatalf("expected 3 created items, got %d", len(created))
		}
		wantWorks := []string{w0.ID, f.wtw.WorkID, w2.ID}
		wantVolumes := []float64{100, 5, 50}
		for i, id := range created {
			item, _ := f.store.GetItem(ctx, id)
			if item.WorkID != wantWorks[i] || !approx(item.Volume, wantVolumes[i]) || item.SectionWorkTypeID != swt.ID {
				t.Fatalf("item %d: unexpected %+v", i, item)
			}
		}
	})

	t.Run("work without resources gets none", func(t *testing.T) {
		f := newPropagationFixture(t)
		bare, _ := f.store.CreateWork(ctx, entities.Work{Name: "Marking", Unit: "m"})
		_, _ = f.store.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: f.workType.ID, WorkID: bare.ID, OrderIndex: 5, WorkVolumePerUnit: 1})

		swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 100)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}
		for _, it := range f.items(t, swt.ID) {
			n := len(f.resources(t, it.ID))
			if it.WorkID == bare.ID && n != 0 {
				t.Fatalf("expected no resources for %s, got %d", bare.ID, n)
			}
			if it.WorkID == f.wtw.WorkID && n != 1 {
				t.Fatalf("expected one resource for %s, got %d", it.WorkID, n)
			}
		}
	})

	t.Run("out of range percentage propagates arithmetically", func(t *testing.T) {
		f := newPropagationFixture(t)
		swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 150)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}
		item, _ := f.single(t, swt.ID)
		if !approx(item.Volume, 15) {
			t.Fatalf("expected 15, got %v", item.Volume)
		}
	})

	t.Run("records metrics", func(t *testing.T) {
		f := newPropagationFixture(t)
		if _, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40); err != nil {
			t.Fatalf("attach: %v", err)
		}
		if len(f.recorder.observed) != 1 || f.recorder.observed[0] != OpAttachWorkType {
			t.Fatalf("unexpected observations: %v", f.recorder.observed)
		}
		if f.recorder.rows["item/upsert"] != 1 || f.recorder.rows["item_resource/upsert"] != 1 {
			t.Fatalf("unexpected row counters: %v", f.recorder.rows)
		}
	})
}

func TestPropagationUseCase_Idempotence(t *testing.T) {
	ctx := context.Background()
	f := newPropagationFixture(t)
	swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	t.Run("same percentage writes nothing", func(t *testing.T) {
		before := f.store.ChangeCount()
		if err := f.uc.UpdatePercentage(ctx, swt.ID, 40); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.store.ChangeCount() != before {
			t.Fatalf("expected zero writes, got %d", f.store.ChangeCount()-before)
		}
	})

	t.Run("same area writes nothing", func(t *testing.T) {
		before := f.store.ChangeCount()
		if err := f.uc.UpdateSectionArea(ctx, f.section.ID, 100); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.store.ChangeCount() != before {
			t.Fatalf("expected zero writes, got %d", f.store.ChangeCount()-before)
		}
	})

	t.Run("unchanged derived rows are not rewritten", func(t *testing.T) {
		zero, _ := f.store.CreateWork(ctx, entities.Work{Name: "Inspection", Unit: "pcs"})
		_, _ = f.store.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: f.workType.ID, WorkID: zero.ID, OrderIndex: 9, WorkVolumePerUnit: 0})
		if err := f.uc.UpdatePercentage(ctx, swt.ID, 50); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		var zeroItem entities.EstimateItem
		for _, it := range f.items(t, swt.ID) {
			if it.WorkID == zero.ID {
				zeroItem = it
			}
		}
		if zeroItem.ID == "" || zeroItem.Volume != 0 {
			t.Fatalf("expected zero-volume item, got %+v", zeroItem)
		}

		before := len(f.store.Changes())
		if err := f.uc.UpdatePercentage(ctx, swt.ID, 55); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for _, c := range f.store.Changes()[before:] {
			if c.ID == zeroItem.ID {
				t.Fatalf("zero-volume item rewritten: %+v", c)
			}
		}
	})
}

func TestPropagationUseCase_Reconciliation(t *testing.T) {
	ctx := context.Background()

	t.Run("template work added later is materialized on the next trigger", func(t *testing.T) {
		f := newPropagationFixture(t)
		swt, _ := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)

		extra, _ := f.store.CreateWork(ctx, entities.Work{Name: "Skirting", Unit: "m"})
		_, _ = f.store.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: f.workType.ID, WorkID: extra.ID, OrderIndex: 2, WorkVolumePerUnit: 0.5})

		if err := f.uc.UpdateSectionArea(ctx, f.section.ID, 200); err != nil {
			t.Fatalf("update area: %v", err)
		}
		items := f.items(t, swt.ID)
		templateWorks, _ := f.store.GetWorkTypeWorks(ctx, f.workType.ID)
		if len(items) != len(templateWorks) {
			t.Fatalf("expected %d items, got %d", len(templateWorks), len(items))
		}
		for _, it := range items {
			if it.WorkID == extra.ID && !approx(it.Volume, 40) {
				t.Fatalf("expected 40, got %v", it.Volume)
			}
		}
	})

	t.Run("removed template resource is pruned and changed coefficient applied", func(t *testing.T) {
		f := newPropagationFixture(t)
		swt, _ := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
		sand, _ := f.store.CreateResource(ctx, entities.Resource{Name: "Sand", Unit: "kg"})
		sandRow, _ := f.store.CreateWorkResource(ctx, entities.WorkResource{WorkTypeID: f.workType.ID, WorkID: f.wtw.WorkID, ResourceID: sand.ID, QuantityPerUnit: 10})
		if err := f.uc.UpdatePercentage(ctx, swt.ID, 50); err != nil {
			t.Fatalf("update percentage: %v", err)
		}
		item := f.items(t, swt.ID)[0]
		if got := f.resources(t, item.ID); len(got) != 2 {
			t.Fatalf("expected 2 resources, got %d", len(got))
		}

		if err := f.store.DeleteWorkResource(ctx, sandRow.ID); err != nil {
			t.Fatalf("delete template resource: %v", err)
		}
		cement := f.wr
		cement.QuantityPerUnit = 30
		if _, err := f.store.UpdateWorkResource(ctx, cement); err != nil {
			t.Fatalf("update template resource: %v", err)
		}
		if err := f.uc.UpdatePercentage(ctx, swt.ID, 60); err != nil {
			t.Fatalf("update percentage: %v", err)
		}
		_, res := f.single(t, swt.ID)
		if res.ResourceID != f.wr.ResourceID || !approx(res.Quantity, 180) {
			t.Fatalf("expected cement 180, got %+v", res)
		}
	})

	t.Run("area change reconciles every attached work type", func(t *testing.T) {
		f := newPropagationFixture(t)
		other, _ := f.store.CreateWorkType(ctx, entities.WorkType{CategoryID: f.workType.CategoryID, Name: "Parquet"})
		_, _ = f.store.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: other.ID, WorkID: f.wtw.WorkID, WorkVolumePerUnit: 1})

		a, _ := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
		b, _ := f.uc.AttachWorkType(ctx, f.section.ID, other.ID, 60)
		if err := f.uc.UpdateSectionArea(ctx, f.section.ID, 10); err != nil {
			t.Fatalf("update area: %v", err)
		}
		ia, _ := f.single(t, a.ID)
		ib := f.items(t, b.ID)
		if !approx(ia.Volume, 0.4) || len(ib) != 1 || !approx(ib[0].Volume, 6) {
			t.Fatalf("unexpected volumes: %v and %+v", ia.Volume, ib)
		}
	})

	t.Run("missing relation", func(t *testing.T) {
		f := newPropagationFixture(t)
		err := f.uc.UpdatePercentage(ctx, "missing", 10)
		if !errors.Is(err, ErrSectionWorkTypeNotFound) {
			t.Fatalf("expected ErrSectionWorkTypeNotFound, got %v", err)
		}
		err = f.uc.UpdateSectionArea(ctx, "missing", 10)
		if !errors.Is(err, ErrSectionNotFound) {
			t.Fatalf("expected ErrSectionNotFound, got %v", err)
		}
	})
}

func TestPropagationUseCase_Atomicity(t *testing.T) {
	ctx := context.Background()
	f := newPropagationFixture(t)
	swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	broken := NewPropagationUseCase(failingStore{IEstimateStore: f.store}, f.recorder)

	t.Run("failed percentage update keeps old values", func(t *testing.T) {
		before := f.store.ChangeCount()
		err := broken.UpdatePercentage(ctx, swt.ID, 80)
		if !errors.Is(err, entities.ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
		if f.store.ChangeCount() != before {
			t.Fatalf("expected nothing committed")
		}
		stored, _ := f.store.GetSectionWorkType(ctx, swt.ID)
		item, res := f.single(t, swt.ID)
		if stored.Percentage != 40 || !approx(item.Volume, 4) || !approx(res.Quantity, 100) {
			t.Fatalf("expected old values, got pct=%v vol=%v qty=%v", stored.Percentage, item.Volume, res.Quantity)
		}
	})

	t.Run("failed area update keeps old values", func(t *testing.T) {
		err := broken.UpdateSectionArea(ctx, f.section.ID, 500)
		if !errors.Is(err, entities.ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
		sec, _ := f.store.GetSection(ctx, f.section.ID)
		item, _ := f.single(t, swt.ID)
		if sec.TotalArea != 100 || !approx(item.Volume, 4) {
			t.Fatalf("expected old values, got area=%v vol=%v", sec.TotalArea, item.Volume)
		}
	})

	t.Run("failed attach leaves no relation", func(t *testing.T) {
		other, _ := f.store.CreateWorkType(ctx, entities.WorkType{CategoryID: f.workType.CategoryID, Name: "Tiles"})
		_, _ = f.store.CreateWorkTypeWork(ctx, entities.WorkTypeWork{WorkTypeID: other.ID, WorkID: f.wtw.WorkID, WorkVolumePerUnit: 1})
		_, _ = f.store.CreateWorkResource(ctx, entities.WorkResource{WorkTypeID: other.ID, WorkID: f.wtw.WorkID, ResourceID: f.wr.ResourceID, QuantityPerUnit: 1})

		_, err := broken.AttachWorkType(ctx, f.section.ID, other.ID, 10)
		if !errors.Is(err, entities.ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
		if got, _ := f.store.FindSectionWorkType(ctx, f.section.ID, other.ID); got.ID != "" {
			t.Fatalf("relation must be rolled back, got %+v", got)
		}
		if f.recorder.failures == 0 {
			t.Fatalf("expected failure observations")
		}
	})
}

func TestPropagationUseCase_DetachWorkType(t *testing.T) {
	ctx := context.Background()
	f := newPropagationFixture(t)
	swt, _ := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
	item, _ := f.single(t, swt.ID)

	t.Run("cascades items and resources", func(t *testing.T) {
		if err := f.uc.DetachWorkType(ctx, swt.ID); err != nil {
			t.Fatalf("detach: %v", err)
		}
		if got, _ := f.store.GetSectionWorkType(ctx, swt.ID); got.ID != "" {
			t.Fatalf("relation survived")
		}
		if got := f.items(t, swt.ID); len(got) != 0 {
			t.Fatalf("items survived: %+v", got)
		}
		if got := f.resources(t, item.ID); len(got) != 0 {
			t.Fatalf("item resources survived: %+v", got)
		}
	})

	t.Run("second detach is not found", func(t *testing.T) {
		err := f.uc.DetachWorkType(ctx, swt.ID)
		if !errors.Is(err, ErrSectionWorkTypeNotFound) {
			t.Fatalf("expected ErrSectionWorkTypeNotFound, got %v", err)
		}
	})

	t.Run("work type can be attached again", func(t *testing.T) {
		again, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}
		got, _ := f.single(t, again.ID)
		if !approx(got.Volume, 4) {
			t.Fatalf("expected 4, got %v", got.Volume)
		}
	})
}

func TestPropagationUseCase_SectionLock(t *testing.T) {
	ctx := context.Background()

	t.Run("every operation locks the section", func(t *testing.T) {
		f := newPropagationFixture(t)
		var locked []string
		uc := NewPropagationUseCase(lockingStore{IEstimateStore: f.store, locked: &locked}, nil)

		swt, err := uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}
		if err := uc.UpdatePercentage(ctx, swt.ID, 60); err != nil {
			t.Fatalf("update percentage: %v", err)
		}
		if err := uc.UpdateSectionArea(ctx, f.section.ID, 250); err != nil {
			t.Fatalf("update area: %v", err)
		}
		if err := uc.DetachWorkType(ctx, swt.ID); err != nil {
			t.Fatalf("detach: %v", err)
		}

		if len(locked) != 4 {
			t.Fatalf("expected 4 locks, got %v", locked)
		}
		for _, id := range locked {
			if id != f.section.ID {
				t.Fatalf("expected lock on %s, got %v", f.section.ID, locked)
			}
		}
	})

	t.Run("relation removed while waiting for the lock", func(t *testing.T) {
		f := newPropagationFixture(t)
		swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}
		var locked []string
		uc := NewPropagationUseCase(lockingStore{
			IEstimateStore: f.store,
			locked:         &locked,
			onLock: func(tx interfaces.IEstimateStore, _ string) {
				if err := tx.DeleteSectionWorkType(ctx, swt.ID); err != nil {
					t.Fatalf("delete relation: %v", err)
				}
			},
		}, nil)

		if err := uc.UpdatePercentage(ctx, swt.ID, 80); !errors.Is(err, ErrSectionWorkTypeNotFound) {
			t.Fatalf("expected ErrSectionWorkTypeNotFound, got %v", err)
		}
		if err := uc.DetachWorkType(ctx, swt.ID); !errors.Is(err, ErrSectionWorkTypeNotFound) {
			t.Fatalf("expected ErrSectionWorkTypeNotFound, got %v", err)
		}
	})

	t.Run("percentage changed while waiting for the lock", func(t *testing.T) {
		f := newPropagationFixture(t)
		swt, err := f.uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}
		var locked []string
		uc := NewPropagationUseCase(lockingStore{
			IEstimateStore: f.store,
			locked:         &locked,
			onLock: func(tx interfaces.IEstimateStore, _ string) {
				if err := tx.UpdateSectionWorkTypePercentage(ctx, swt.ID, 70); err != nil {
					t.Fatalf("update relation: %v", err)
				}
			},
		}, nil)

		if err := uc.UpdateSectionArea(ctx, f.section.ID, 200); err != nil {
			t.Fatalf("update area: %v", err)
		}
		item, res := f.single(t, swt.ID)
		if !approx(item.Volume, 14) || !approx(res.Quantity, 350) {
			t.Fatalf("expected rows derived from the committed percentage, got vol=%v qty=%v", item.Volume, res.Quantity)
		}
	})
}

func TestPropagationUseCase_ConcurrentWritesStayConsistent(t *testing.T) {
	ctx := context.Background()
	f := newPropagationFixture(t)
	uc := NewPropagationUseCase(f.store, nil)
	swt, err := uc.AttachWorkType(ctx, f.section.ID, f.workType.ID, 40)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 1; i <= 16; i++ {
		wg.Add(2)
		go func(pct float64) {
			defer wg.Done()
			errs <- uc.UpdatePercentage(ctx, swt.ID, pct)
		}(float64(i * 5))
		go func(area float64) {
			defer wg.Done()
			errs <- uc.UpdateSectionArea(ctx, f.section.ID, area)
		}(float64(i * 10))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent write: %v", err)
		}
	}

	sec, _ := f.store.GetSection(ctx, f.section.ID)
	rel, _ := f.store.GetSectionWorkType(ctx, swt.ID)
	item, res := f.single(t, swt.ID)
	wantVolume := quantity.DeriveItemVolume(quantity.DeriveTypeArea(sec.TotalArea, rel.Percentage), f.wtw.WorkVolumePerUnit)
	if !approx(item.Volume, wantVolume) {
		t.Fatalf("item volume %v does not match area=%v pct=%v (want %v)", item.Volume, sec.TotalArea, rel.Percentage, wantVolume)
	}
	if !approx(res.Quantity, quantity.DeriveResourceQuantity(wantVolume, f.wr.QuantityPerUnit)) {
		t.Fatalf("resource quantity %v does not match volume %v", res.Quantity, wantVolume)
	}
}
