package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/domain/quantity"
	"boq_service/internal/usecase/interfaces"
)

const (
	OpAttachWorkType    = "attach_work_type"
	OpUpdatePercentage  = "update_percentage"
	OpUpdateSectionArea = "update_section_area"
	OpDetachWorkType    = "detach_work_type"
)

// IPropagationUseCase is the only write path for EstimateItem and EstimateItemResource
// rows. Every operation runs in one store transaction and locks the section row it
// writes under, so concurrent writes to one section are applied one at a time.
//
// REST mapping:
//   - POST   /estimate-section-work-types      => AttachWorkType()
//   - PATCH  /estimate-section-work-types/{id} => UpdatePercentage()
//   - PATCH  /estimate-sections/{id}           => UpdateSectionArea()
//   - DELETE /estimate-section-work-types/{id} => DetachWorkType()
type IPropagationUseCase interface {
	AttachWorkType(ctx context.Context, sectionID, workTypeID string, percentage float64) (entities.EstimateSectionWorkType, error)
	UpdatePercentage(ctx context.Context, sectionWorkTypeID string, percentage float64) error
	UpdateSectionArea(ctx context.Context, sectionID string, totalArea float64) error
	DetachWorkType(ctx context.Context, sectionWorkTypeID string) error
}

type PropagationUseCase struct {
	store   interfaces.IEstimateStore
	metrics interfaces.IMetricsRecorder
}

var _ IPropagationUseCase = (*PropagationUseCase)(nil)

// NewPropagationUseCase wires the engine. A nil recorder disables metrics.
func NewPropagationUseCase(store interfaces.IEstimateStore, metrics interfaces.IMetricsRecorder) *PropagationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &PropagationUseCase{store: store, metrics: metrics}
}

// reconcileStats counts derived-row writes of one operation.
type reconcileStats struct {
	itemUpserts     int
	itemDeletes     int
	resourceUpserts int
	resourceDeletes int
}

func (s *reconcileStats) add(o reconcileStats) {
	s.itemUpserts += o.itemUpserts
	s.itemDeletes += o.itemDeletes
	s.resourceUpserts += o.resourceUpserts
	s.resourceDeletes += o.resourceDeletes
}

func (u *PropagationUseCase) AttachWorkType(ctx context.Context, sectionID, workTypeID string, percentage float64) (entities.EstimateSectionWorkType, error) {
	sectionID = strings.TrimSpace(sectionID)
	workTypeID = strings.TrimSpace(workTypeID)
	log.Printf("[propagation][usecase] attach-work-type start section_id=%s work_type_id=%s percentage=%v", sectionID, workTypeID, percentage)
	if sectionID == "" || workTypeID == "" {
		return entities.EstimateSectionWorkType{}, ErrInvalidID
	}

	var (
		created entities.EstimateSectionWorkType
		stats   reconcileStats
	)
	err := u.run(ctx, OpAttachWorkType, &stats, func(tx interfaces.IEstimateStore) error {
		section, err := tx.LockSection(ctx, sectionID)
		if err != nil {
			return storageErr(err, "section_id="+sectionID)
		}
		if section.ID == "" {
			return fmt.Errorf("%w: section_id=%s", ErrSectionNotFound, sectionID)
		}
		wt, err := tx.GetWorkType(ctx, workTypeID)
		if err != nil {
			return storageErr(err, "work_type_id="+workTypeID)
		}
		if wt.ID == "" {
			return fmt.Errorf("%w: work_type_id=%s", ErrWorkTypeNotFound, workTypeID)
		}
		existing, err := tx.FindSectionWorkType(ctx, sectionID, workTypeID)
		if err != nil {
			return storageErr(err, "section_id="+sectionID)
		}
		if existing.ID != "" {
			return fmt.Errorf("%w: section_id=%s work_type_id=%s", ErrWorkTypeAlreadyAttached, sectionID, workTypeID)
		}

		created, err = tx.CreateSectionWorkType(ctx, entities.EstimateSectionWorkType{
			SectionID:  sectionID,
			WorkTypeID: workTypeID,
			Percentage: percentage,
		})
		if err != nil {
			return storageErr(err, fmt.Sprintf("section_id=%s work_type_id=%s", sectionID, workTypeID))
		}

		typeArea := quantity.DeriveTypeArea(section.TotalArea, created.Percentage)
		stats, err = reconcile(ctx, tx, created, typeArea, true)
		return err
	})
	if err != nil {
		log.Printf("[propagation][usecase] attach-work-type failed section_id=%s work_type_id=%s err=%v", sectionID, workTypeID, err)
		return entities.EstimateSectionWorkType{}, err
	}
	log.Printf("[propagation][usecase] attach-work-type ok section_work_type_id=%s items=%d resources=%d", created.ID, stats.itemUpserts, stats.resourceUpserts)
	return created, nil
}

func (u *PropagationUseCase) UpdatePercentage(ctx context.Context, sectionWorkTypeID string, percentage float64) error {
	sectionWorkTypeID = strings.TrimSpace(sectionWorkTypeID)
	log.Printf("[propagation][usecase] update-percentage start section_work_type_id=%s percentage=%v", sectionWorkTypeID, percentage)
	if sectionWorkTypeID == "" {
		return ErrInvalidID
	}

	var (
		stats   reconcileStats
		changed bool
	)
	err := u.run(ctx, OpUpdatePercentage, &stats, func(tx interfaces.IEstimateStore) error {
		swt, section, err := lockRelation(ctx, tx, sectionWorkTypeID)
		if err != nil {
			return err
		}
		if sameValue(swt.Percentage, percentage) {
			return nil
		}
		changed = true

		if err := tx.UpdateSectionWorkTypePercentage(ctx, swt.ID, percentage); err != nil {
			return storageErr(err, "section_work_type_id="+swt.ID)
		}
		swt.Percentage = percentage

		stats, err = reconcile(ctx, tx, swt, quantity.DeriveTypeArea(section.TotalArea, percentage), false)
		return err
	})
	if err != nil {
		log.Printf("[propagation][usecase] update-percentage failed section_work_type_id=%s err=%v", sectionWorkTypeID, err)
		return err
	}
	if !changed {
		log.Printf("[propagation][usecase] update-percentage unchanged section_work_type_id=%s", sectionWorkTypeID)
		return nil
	}
	log.Printf("[propagation][usecase] update-percentage ok section_work_type_id=%s item_upserts=%d item_deletes=%d", sectionWorkTypeID, stats.itemUpserts, stats.itemDeletes)
	return nil
}

func (u *PropagationUseCase) UpdateSectionArea(ctx context.Context, sectionID string, totalArea float64) error {
	sectionID = strings.TrimSpace(sectionID)
	log.Printf("[propagation][usecase] update-section-area start section_id=%s total_area=%v", sectionID, totalArea)
	if sectionID == "" {
		return ErrInvalidID
	}

	var (
		stats   reconcileStats
		changed bool
	)
	err := u.run(ctx, OpUpdateSectionArea, &stats, func(tx interfaces.IEstimateStore) error {
		section, err := tx.LockSection(ctx, sectionID)
		if err != nil {
			return storageErr(err, "section_id="+sectionID)
		}
		if section.ID == "" {
			return fmt.Errorf("%w: section_id=%s", ErrSectionNotFound, sectionID)
		}
		if sameValue(section.TotalArea, totalArea) {
			return nil
		}
		changed = true

		if err := tx.UpdateSectionArea(ctx, sectionID, totalArea); err != nil {
			return storageErr(err, "section_id="+sectionID)
		}
		relations, err := tx.ListSectionWorkTypes(ctx, sectionID)
		if err != nil {
			return storageErr(err, "section_id="+sectionID)
		}
		for _, swt := range relations {
			s, err := reconcile(ctx, tx, swt, quantity.DeriveTypeArea(totalArea, swt.Percentage), false)
			if err != nil {
				return err
			}
			stats.add(s)
		}
		return nil
	})
	if err != nil {
		log.Printf("[propagation][usecase] update-section-area failed section_id=%s err=%v", sectionID, err)
		return err
	}
	if !changed {
		log.Printf("[propagation][usecase] update-section-area unchanged section_id=%s", sectionID)
		return nil
	}
	log.Printf("[propagation][usecase] update-section-area ok section_id=%s item_upserts=%d item_deletes=%d", sectionID, stats.itemUpserts, stats.itemDeletes)
	return nil
}

func (u *PropagationUseCase) DetachWorkType(ctx context.Context, sectionWorkTypeID string) error {
	sectionWorkTypeID = strings.TrimSpace(sectionWorkTypeID)
	log.Printf("[propagation][usecase] detach-work-type start section_work_type_id=%s", sectionWorkTypeID)
	if sectionWorkTypeID == "" {
		return ErrInvalidID
	}

	var stats reconcileStats
	err := u.run(ctx, OpDetachWorkType, &stats, func(tx interfaces.IEstimateStore) error {
		swt, _, err := lockRelation(ctx, tx, sectionWorkTypeID)
		if err != nil {
			return err
		}
		items, err := tx.ListItems(ctx, swt.ID)
		if err != nil {
			return storageErr(err, "section_work_type_id="+swt.ID)
		}
		if err := tx.DeleteSectionWorkType(ctx, swt.ID); err != nil {
			return storageErr(err, "section_work_type_id="+swt.ID)
		}
		stats.itemDeletes = len(items)
		return nil
	})
	if err != nil {
		log.Printf("[propagation][usecase] detach-work-type failed section_work_type_id=%s err=%v", sectionWorkTypeID, err)
		return err
	}
	log.Printf("[propagation][usecase] detach-work-type ok section_work_type_id=%s items=%d", sectionWorkTypeID, stats.itemDeletes)
	return nil
}

// lockRelation loads a section work type and locks its parent section. The relation
// is read again once the lock is held because a concurrent writer may have changed or
// removed it in the meantime.
func lockRelation(ctx context.Context, tx interfaces.IEstimateStore, sectionWorkTypeID string) (entities.EstimateSectionWorkType, entities.EstimateSection, error) {
	scope := "section_work_type_id=" + sectionWorkTypeID
	swt, err := tx.GetSectionWorkType(ctx, sectionWorkTypeID)
	if err != nil {
		return swt, entities.EstimateSection{}, storageErr(err, scope)
	}
	if swt.ID == "" {
		return swt, entities.EstimateSection{}, fmt.Errorf("%w: %s", ErrSectionWorkTypeNotFound, scope)
	}

	section, err := tx.LockSection(ctx, swt.SectionID)
	if err != nil {
		return swt, section, storageErr(err, "section_id="+swt.SectionID)
	}
	if section.ID == "" {
		return swt, section, fmt.Errorf("%w: section_id=%s", ErrSectionNotFound, swt.SectionID)
	}

	swt, err = tx.GetSectionWorkType(ctx, sectionWorkTypeID)
	if err != nil {
		return swt, section, storageErr(err, scope)
	}
	if swt.ID == "" {
		return swt, section, fmt.Errorf("%w: %s", ErrSectionWorkTypeNotFound, scope)
	}
	return swt, section, nil
}

// run executes fn in one transaction and reports the outcome. Row counters are only
// reported for committed transactions.
func (u *PropagationUseCase) run(ctx context.Context, op string, stats *reconcileStats, fn func(tx interfaces.IEstimateStore) error) error {
	start := time.Now()
	err := u.store.WithinTx(ctx, fn)
	if err != nil && !isDomainErr(err) {
		err = fmt.Errorf("%w: %s: %w", entities.ErrStorageFailure, op, err)
	}
	u.metrics.Observe(ctx, op, err == nil, time.Since(start))
	if err == nil {
		u.metrics.RowsWritten("item", "upsert", stats.itemUpserts)
		u.metrics.RowsWritten("item", "delete", stats.itemDeletes)
		u.metrics.RowsWritten("item_resource", "upsert", stats.resourceUpserts)
		u.metrics.RowsWritten("item_resource", "delete", stats.resourceDeletes)
	}
	return err
}

// reconcile brings the items and item resources of one relation in line with the
// current template: rows are keyed by work id (items) and resource id (resources),
// upserted only when missing or stale, and deleted when the template no longer has
// them. A fresh relation skips the listing of existing rows.
func reconcile(ctx context.Context, tx interfaces.IEstimateStore, swt entities.EstimateSectionWorkType, typeArea float64, fresh bool) (reconcileStats, error) {
	var stats reconcileStats
	scope := "section_work_type_id=" + swt.ID

	works, err := tx.GetWorkTypeWorks(ctx, swt.WorkTypeID)
	if err != nil {
		return stats, storageErr(err, scope)
	}
	templateResources, err := tx.GetWorkResources(ctx, swt.WorkTypeID, "")
	if err != nil {
		return stats, storageErr(err, scope)
	}
	resourcesByWork := make(map[string][]entities.WorkResource, len(works))
	for _, wr := range templateResources {
		resourcesByWork[wr.WorkID] = append(resourcesByWork[wr.WorkID], wr)
	}

	var existing []entities.EstimateItem
	if !fresh {
		existing, err = tx.ListItems(ctx, swt.ID)
		if err != nil {
			return stats, storageErr(err, scope)
		}
	}
	byWork := make(map[string]entities.EstimateItem, len(existing))
	for _, it := range existing {
		byWork[it.WorkID] = it
	}

	kept := make(map[string]struct{}, len(works))
	for _, wtw := range works {
		kept[wtw.WorkID] = struct{}{}
		volume := quantity.DeriveItemVolume(typeArea, wtw.WorkVolumePerUnit)

		item, found := byWork[wtw.WorkID]
		if !found || !sameValue(item.Volume, volume) {
			item, err = tx.UpsertItem(ctx, swt.ID, wtw.WorkID, volume)
			if err != nil {
				return stats, storageErr(err, fmt.Sprintf("%s work_id=%s", scope, wtw.WorkID))
			}
			stats.itemUpserts++
		}

		rs, err := reconcileResources(ctx, tx, item, resourcesByWork[wtw.WorkID], !found)
		if err != nil {
			return stats, err
		}
		stats.add(rs)
	}

	for _, it := range existing {
		if _, ok := kept[it.WorkID]; ok {
			continue
		}
		if err := tx.DeleteItem(ctx, it.ID); err != nil {
			return stats, storageErr(err, fmt.Sprintf("%s estimate_item_id=%s", scope, it.ID))
		}
		stats.itemDeletes++
	}
	return stats, nil
}

func reconcileResources(ctx context.Context, tx interfaces.IEstimateStore, item entities.EstimateItem, template []entities.WorkResource, fresh bool) (reconcileStats, error) {
	var stats reconcileStats
	scope := "estimate_item_id=" + item.ID

	var existing []entities.EstimateItemResource
	if !fresh {
		var err error
		existing, err = tx.ListItemResources(ctx, item.ID)
		if err != nil {
			return stats, storageErr(err, scope)
		}
	}
	byResource := make(map[string]entities.EstimateItemResource, len(existing))
	for _, r := range existing {
		byResource[r.ResourceID] = r
	}

	kept := make(map[string]struct{}, len(template))
	for _, wr := range template {
		kept[wr.ResourceID] = struct{}{}
		qty := quantity.DeriveResourceQuantity(item.Volume, wr.QuantityPerUnit)
		if cur, ok := byResource[wr.ResourceID]; ok && sameValue(cur.Quantity, qty) {
			continue
		}
		if _, err := tx.UpsertItemResource(ctx, item.ID, wr.ResourceID, qty); err != nil {
			return stats, storageErr(err, fmt.Sprintf("%s resource_id=%s", scope, wr.ResourceID))
		}
		stats.resourceUpserts++
	}

	for _, r := range existing {
		if _, ok := kept[r.ResourceID]; ok {
			continue
		}
		if err := tx.DeleteItemResource(ctx, r.ID); err != nil {
			return stats, storageErr(err, fmt.Sprintf("%s estimate_item_resource_id=%s", scope, r.ID))
		}
		stats.resourceDeletes++
	}
	return stats, nil
}

// sameValue reports whether a stored value equals a derived one. NaN equals NaN here.
func sameValue(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

type nopMetrics struct{}

func (nopMetrics) Observe(context.Context, string, bool, time.Duration) {}
func (nopMetrics) RowsWritten(string, string, int)                     {}
