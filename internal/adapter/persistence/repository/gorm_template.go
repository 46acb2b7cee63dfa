package repository

import (
	"context"

	"boq_service/internal/domain/entities"
)

func (s *GormStore) CreateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error) {
	c.ID = ensureID(c.ID)
	row := toWorkCategoryRow(c)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.WorkCategory{}, mapPgError("work category", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetWorkCategory(ctx context.Context, id string) (entities.WorkCategory, error) {
	row, _, err := findByID[workCategoryRow](ctx, s, id)
	if err != nil {
		return entities.WorkCategory{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) ListWorkCategories(ctx context.Context) ([]entities.WorkCategory, error) {
	var rows []workCategoryRow
	if err := s.conn(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, workCategoryRow.toEntity), nil
}

func (s *GormStore) UpdateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error) {
	ok, err := updateColumns[workCategoryRow](ctx, s, c.ID, map[string]any{"name": c.Name})
	if err != nil || !ok {
		return entities.WorkCategory{}, err
	}
	return c, nil
}

func (s *GormStore) DeleteWorkCategory(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *GormStore) error {
		if _, ok, err := findByID[workCategoryRow](ctx, tx, id); err != nil {
			return err
		} else if !ok {
			return notFound("work category", id)
		}

		referenced, err := exists[estimateSectionRow](ctx, tx, "work_category_id = ?", id)
		if err != nil {
			return err
		}
		if referenced {
			return restricted("work category", id, "referenced by estimate sections")
		}

		var owned []string
		if err := tx.conn(ctx).Model(&workTypeRow{}).Where("category_id = ?", id).Pluck("id", &owned).Error; err != nil {
			return err
		}
		if len(owned) > 0 {
			attached, err := exists[estimateSectionWorkTypeRow](ctx, tx, "work_type_id IN ?", owned)
			if err != nil {
				return err
			}
			if attached {
				return restricted("work category", id, "has work types attached to estimate sections")
			}
			if err := tx.deleteWorkTypes(ctx, owned); err != nil {
				return err
			}
		}
		return deleteByID[workCategoryRow](ctx, tx, "work category", id)
	})
}

func (s *GormStore) CreateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error) {
	t.ID = ensureID(t.ID)
	row := toWorkTypeRow(t)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.WorkType{}, mapPgError("work type", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetWorkType(ctx context.Context, id string) (entities.WorkType, error) {
	row, _, err := findByID[workTypeRow](ctx, s, id)
	if err != nil {
		return entities.WorkType{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) ListWorkTypes(ctx context.Context, categoryID string) ([]entities.WorkType, error) {
	q := s.conn(ctx).Order("category_id, name, id")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	var rows []workTypeRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, workTypeRow.toEntity), nil
}

func (s *GormStore) UpdateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error) {
	ok, err := updateColumns[workTypeRow](ctx, s, t.ID, map[string]any{
		"category_id": t.CategoryID,
		"name":        t.Name,
	})
	if err != nil || !ok {
		return entities.WorkType{}, err
	}
	return t, nil
}

func (s *GormStore) DeleteWorkType(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *GormStore) error {
		if _, ok, err := findByID[workTypeRow](ctx, tx, id); err != nil {
			return err
		} else if !ok {
			return notFound("work type", id)
		}
		attached, err := exists[estimateSectionWorkTypeRow](ctx, tx, "work_type_id = ?", id)
		if err != nil {
			return err
		}
		if attached {
			return restricted("work type", id, "attached to estimate sections")
		}
		return tx.deleteWorkTypes(ctx, []string{id})
	})
}

// deleteWorkTypes removes work types together with their template rows.
func (s *GormStore) deleteWorkTypes(ctx context.Context, ids []string) error {
	if err := s.conn(ctx).Where("work_type_id IN ?", ids).Delete(&workResourceRow{}).Error; err != nil {
		return err
	}
	if err := s.conn(ctx).Where("work_type_id IN ?", ids).Delete(&workTypeWorkRow{}).Error; err != nil {
		return err
	}
	return s.conn(ctx).Where("id IN ?", ids).Delete(&workTypeRow{}).Error
}

func (s *GormStore) CreateWork(ctx context.Context, w entities.Work) (entities.Work, error) {
	w.ID = ensureID(w.ID)
	row := toWorkRow(w)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.Work{}, mapPgError("work", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetWork(ctx context.Context, id string) (entities.Work, error) {
	row, _, err := findByID[workRow](ctx, s, id)
	if err != nil {
		return entities.Work{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) ListWorks(ctx context.Context) ([]entities.Work, error) {
	var rows []workRow
	if err := s.conn(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, workRow.toEntity), nil
}

func (s *GormStore) UpdateWork(ctx context.Context, w entities.Work) (entities.Work, error) {
	ok, err := updateColumns[workRow](ctx, s, w.ID, map[string]any{"name": w.Name, "unit": w.Unit})
	if err != nil || !ok {
		return entities.Work{}, err
	}
	return w, nil
}

func (s *GormStore) CreateResource(ctx context.Context, r entities.Resource) (entities.Resource, error) {
	r.ID = ensureID(r.ID)
	row := toResourceRow(r)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.Resource{}, mapPgError("resource", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetResource(ctx context.Context, id string) (entities.Resource, error) {
	row, _, err := findByID[resourceRow](ctx, s, id)
	if err != nil {
		return entities.Resource{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) ListResources(ctx context.Context) ([]entities.Resource, error) {
	var rows []resourceRow
	if err := s.conn(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, resourceRow.toEntity), nil
}

func (s *GormStore) UpdateResource(ctx context.Context, r entities.Resource) (entities.Resource, error) {
	ok, err := updateColumns[resourceRow](ctx, s, r.ID, map[string]any{"name": r.Name, "unit": r.Unit})
	if err != nil || !ok {
		return entities.Resource{}, err
	}
	return r, nil
}

func (s *GormStore) CreateWorkTypeWork(ctx context.Context, w entities.WorkTypeWork) (entities.WorkTypeWork, error) {
	w.ID = ensureID(w.ID)
	row := toWorkTypeWorkRow(w)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.WorkTypeWork{}, mapPgError("work type work", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetWorkTypeWork(ctx context.Context, id string) (entities.WorkTypeWork, error) {
	row, _, err := findByID[workTypeWorkRow](ctx, s, id)
	if err != nil {
		return entities.WorkTypeWork{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) FindWorkTypeWork(ctx context.Context, workTypeID, workID string) (entities.WorkTypeWork, error) {
	row, _, err := findOne[workTypeWorkRow](ctx, s, "work_type_id = ? AND work_id = ?", workTypeID, workID)
	if err != nil {
		return entities.WorkTypeWork{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) UpdateWorkTypeWork(ctx context.Context, w entities.WorkTypeWork) (entities.WorkTypeWork, error) {
	ok, err := updateColumns[workTypeWorkRow](ctx, s, w.ID, map[string]any{
		"work_type_id":         w.WorkTypeID,
		"work_id":              w.WorkID,
		"order_index":          w.OrderIndex,
		"work_volume_per_unit": w.WorkVolumePerUnit,
	})
	if err != nil {
		return entities.WorkTypeWork{}, mapPgError("work type work", err)
	}
	if !ok {
		return entities.WorkTypeWork{}, nil
	}
	return w, nil
}

func (s *GormStore) DeleteWorkTypeWork(ctx context.Context, id string) error {
	return deleteByID[workTypeWorkRow](ctx, s, "work type work", id)
}

func (s *GormStore) GetWorkTypeWorks(ctx context.Context, workTypeID string) ([]entities.WorkTypeWork, error) {
	q := s.conn(ctx)
	if workTypeID != "" {
		q = q.Where("work_type_id = ?", workTypeID)
	}
	var rows []workTypeWorkRow
	if err := q.Order("work_type_id, order_index, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, workTypeWorkRow.toEntity), nil
}

func (s *GormStore) CreateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error) {
	w.ID = ensureID(w.ID)
	row := toWorkResourceRow(w)
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return entities.WorkResource{}, mapPgError("work resource", err)
	}
	return row.toEntity(), nil
}

func (s *GormStore) GetWorkResource(ctx context.Context, id string) (entities.WorkResource, error) {
	row, _, err := findByID[workResourceRow](ctx, s, id)
	if err != nil {
		return entities.WorkResource{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) FindWorkResource(ctx context.Context, workTypeID, workID, resourceID string) (entities.WorkResource, error) {
	row, _, err := findOne[workResourceRow](ctx, s,
		"work_type_id = ? AND work_id = ? AND resource_id = ?", workTypeID, workID, resourceID)
	if err != nil {
		return entities.WorkResource{}, err
	}
	return row.toEntity(), nil
}

func (s *GormStore) UpdateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error) {
	ok, err := updateColumns[workResourceRow](ctx, s, w.ID, map[string]any{
		"work_type_id":      w.WorkTypeID,
		"work_id":           w.WorkID,
		"resource_id":       w.ResourceID,
		"quantity_per_unit": w.QuantityPerUnit,
	})
	if err != nil {
		return entities.WorkResource{}, mapPgError("work resource", err)
	}
	if !ok {
		return entities.WorkResource{}, nil
	}
	return w, nil
}

func (s *GormStore) DeleteWorkResource(ctx context.Context, id string) error {
	return deleteByID[workResourceRow](ctx, s, "work resource", id)
}

func (s *GormStore) GetWorkResources(ctx context.Context, workTypeID, workID string) ([]entities.WorkResource, error) {
	q := s.conn(ctx)
	if workTypeID != "" {
		q = q.Where("work_type_id = ?", workTypeID)
	}
	if workID != "" {
		q = q.Where("work_id = ?", workID)
	}
	var rows []workResourceRow
	if err := q.Order("work_type_id, work_id, resource_id, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, workResourceRow.toEntity), nil
}
