package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"boq_service/internal/domain/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *GormStore) CreateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.ID = ensureID(e.ID)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	row := toEstimateRow(e)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.Estimate{}, mapPgError("estimate", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	row, ok, err := findByID[estimateRow](ctx, s, id)
	if err != nil || !ok {
		return entities.Estimate{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) ListEstimates(ctx context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error) {
	q := s.conn(ctx).Order("created_at DESC, id")
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(object_name) LIKE ?", like, like)
	}
	var rows []estimateRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, estimateRow.toEntity), nil
}

func (s *GormStore) UpdateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	var out entities.Estimate
	err := s.write(ctx, func(tx *GormStore) error {
		cur, ok, err := findByID[estimateRow](ctx, tx, e.ID)
		if err != nil || !ok {
			return err
		}
		_, err = updateColumns[estimateRow](ctx, tx, e.ID, map[string]any{
			"name":        e.Name,
			"object_name": e.ObjectName,
			"status":      string(e.Status),
		})
		if err != nil {
			return err
		}
		e.CreatedAt = cur.CreatedAt.UTC()
		out = e
		return nil
	})
	return out, err
}

func (s *GormStore) DeleteEstimate(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *GormStore) error {
		var sectionIDs []string
		if err := tx.conn(ctx).Model(&estimateSectionRow{}).Where("estimate_id = ?", id).Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}
		if err := tx.deleteSections(ctx, sectionIDs); err != nil {
			return err
		}
		return deleteByID[estimateRow](ctx, tx, "estimate", id)
	})
}

func (s *GormStore) CreateSection(ctx context.Context, sec entities.EstimateSection) (entities.EstimateSection, error) {
	sec.ID = ensureID(sec.ID)
	row := toSectionRow(sec)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.EstimateSection{}, mapPgError("estimate section", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetSection(ctx context.Context, id string) (entities.EstimateSection, error) {
	row, _, err := findByID[estimateSectionRow](ctx, s, id)
	if err != nil {
		return entities.EstimateSection{}, err
	}
	return row.toEntity(), nil
}

// LockSection takes a FOR UPDATE lock on the section row. Outside a transaction the
// lock is released as soon as the statement completes.
func (s *GormStore) LockSection(ctx context.Context, id string) (entities.EstimateSection, error) {
	var row estimateSectionRow
	err := s.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.EstimateSection{}, nil
	}
	if err != nil {
		return entities.EstimateSection{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) FindSection(ctx context.Context, estimateID, workCategoryID string) (entities.EstimateSection, error) {
	row, _, err := findOne[estimateSectionRow](ctx, s, "estimate_id = ? AND work_category_id = ?", estimateID, workCategoryID)
	if err != nil {
		return entities.EstimateSection{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) ListSections(ctx context.Context, estimateID string) ([]entities.EstimateSection, error) {
	var rows []estimateSectionRow
	err := s.conn(ctx).
		Where("estimate_id = ?", estimateID).
		Order("work_category_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows(rows, estimateSectionRow.toEntity), nil
}

func (s *GormStore) UpdateSectionArea(ctx context.Context, id string, totalArea float64) error {
	ok, err := updateColumns[estimateSectionRow](ctx, s, id, map[string]any{"total_area": totalArea})
	if err != nil {
		return err
	}
	if !ok {
		return notFound("estimate section", id)
	}
	return nil
}

func (s *GormStore) DeleteSection(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *GormStore) error {
		if _, ok, err := findByID[estimateSectionRow](ctx, tx, id); err != nil {
			return err
		} else if !ok {
			return notFound("estimate section", id)
		}
		return tx.deleteSections(ctx, []string{id})
	})
}

func (s *GormStore) deleteSections(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	var swtIDs []string
	if err := s.conn(ctx).Model(&estimateSectionWorkTypeRow{}).Where("section_id IN ?", ids).Pluck("id", &swtIDs).Error; err != nil {
		return err
	}
	if err := s.deleteSectionWorkTypes(ctx, swtIDs); err != nil {
		return err
	}
	return s.conn(ctx).Where("id IN ?", ids).Delete(&estimateSectionRow{}).Error
}

func (s *GormStore) CreateSectionWorkType(ctx context.Context, swt entities.EstimateSectionWorkType) (entities.EstimateSectionWorkType, error) {
	swt.ID = ensureID(swt.ID)
	row := toSectionWorkTypeRow(swt)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.EstimateSectionWorkType{}, mapPgError("estimate section work type", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetSectionWorkType(ctx context.Context, id string) (entities.EstimateSectionWorkType, error) {
	row, _, err := findByID[estimateSectionWorkTypeRow](ctx, s, id)
	if err != nil {
		return entities.EstimateSectionWorkType{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) FindSectionWorkType(ctx context.Context, sectionID, workTypeID string) (entities.EstimateSectionWorkType, error) {
	row, _, err := findOne[estimateSectionWorkTypeRow](ctx, s, "section_id = ? AND work_type_id = ?", sectionID, workTypeID)
	if err != nil {
		return entities.EstimateSectionWorkType{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) ListSectionWorkTypes(ctx context.Context, sectionID string) ([]entities.EstimateSectionWorkType, error) {
	var rows []estimateSectionWorkTypeRow
	err := s.conn(ctx).
		Where("section_id = ?", sectionID).
		Order("percentage DESC, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows(rows, estimateSectionWorkTypeRow.toEntity), nil
}

func (s *GormStore) UpdateSectionWorkTypePercentage(ctx context.Context, id string, percentage float64) error {
	ok, err := updateColumns[estimateSectionWorkTypeRow](ctx, s, id, map[string]any{"percentage": percentage})
	if err != nil {
		return err
	}
	if !ok {
		return notFound("estimate section work type", id)
	}
	return nil
}

func (s *GormStore) DeleteSectionWorkType(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *GormStore) error {
		if _, ok, err := findByID[estimateSectionWorkTypeRow](ctx, tx, id); err != nil {
			return err
		} else if !ok {
			return notFound("estimate section work type", id)
		}
		return tx.deleteSectionWorkTypes(ctx, []string{id})
	})
}

func (s *GormStore) deleteSectionWorkTypes(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	var itemIDs []string
	if err := s.conn(ctx).Model(&estimateItemRow{}).Where("section_work_type_id IN ?", ids).Pluck("id", &itemIDs).Error; err != nil {
		return err
	}
	if err := s.deleteItems(ctx, itemIDs); err != nil {
		return err
	}
	return s.conn(ctx).Where("id IN ?", ids).Delete(&estimateSectionWorkTypeRow{}).Error
}

func (s *GormStore) UpsertItem(ctx context.Context, sectionWorkTypeID, workID string, volume float64) (entities.EstimateItem, error) {
	row := estimateItemRow{
		ID:                ensureID(""),
		SectionWorkTypeID: sectionWorkTypeID,
		WorkID:            workID,
		Volume:            volume,
	}
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_work_type_id"}, {Name: "work_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"volume"}),
	}).Create(&row).Error
	if err != nil {
		return entities.EstimateItem{}, mapPgError("estimate item", err)
	}

	stored, _, err := findOne[estimateItemRow](ctx, s, "section_work_type_id = ? AND work_id = ?", sectionWorkTypeID, workID)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	return stored.toEntity(), nil
}

func (s *GormStore) GetItem(ctx context.Context, id string) (entities.EstimateItem, error) {
	row, _, err := findByID[estimateItemRow](ctx, s, id)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) DeleteItem(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *GormStore) error {
		if _, ok, err := findByID[estimateItemRow](ctx, tx, id); err != nil {
			return err
		} else if !ok {
			return notFound("estimate item", id)
		}
		return tx.deleteItems(ctx, []string{id})
	})
}

func (s *GormStore) deleteItems(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.conn(ctx).Where("estimate_item_id IN ?", ids).Delete(&estimateItemResourceRow{}).Error; err != nil {
		return err
	}
	return s.conn(ctx).Where("id IN ?", ids).Delete(&estimateItemRow{}).Error
}

func (s *GormStore) ListItems(ctx context.Context, sectionWorkTypeID string) ([]entities.EstimateItem, error) {
	var rows []estimateItemRow
	err := s.conn(ctx).
		Where("section_work_type_id = ?", sectionWorkTypeID).
		Order("work_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows(rows, estimateItemRow.toEntity), nil
}

func (s *GormStore) UpsertItemResource(ctx context.Context, itemID, resourceID string, quantity float64) (entities.EstimateItemResource, error) {
	var out entities.EstimateItemResource
	err := s.write(ctx, func(tx *GormStore) error {
		if _, ok, err := findByID[estimateItemRow](ctx, tx, itemID); err != nil {
			return err
		} else if !ok {
			return notFound("estimate item", itemID)
		}

		row := estimateItemResourceRow{
			ID:             ensureID(""),
			EstimateItemID: itemID,
			ResourceID:     resourceID,
			Quantity:       quantity,
		}
		err := tx.conn(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "estimate_item_id"}, {Name: "resource_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).Create(&row).Error
		if err != nil {
			return mapPgError("estimate item resource", err)
		}

		stored, _, err := findOne[estimateItemResourceRow](ctx, tx, "estimate_item_id = ? AND resource_id = ?", itemID, resourceID)
		if err != nil {
			return err
		}
		out = stored.toEntity()
		return nil
	})
	if err != nil {
		return entities.EstimateItemResource{}, err
	}
	return out, nil
}

func (s *GormStore) DeleteItemResource(ctx context.Context, id string) error {
	return deleteByID[estimateItemResourceRow](ctx, s, "estimate item resource", id)
}

func (s *GormStore) ListItemResources(ctx context.Context, itemID string) ([]entities.EstimateItemResource, error) {
	var rows []estimateItemResourceRow
	err := s.conn(ctx).
		Where("estimate_item_id = ?", itemID).
		Order("resource_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows(rows, estimateItemResourceRow.toEntity), nil
}
