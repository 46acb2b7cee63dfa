package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"boq_service/internal/domain/entities"
)

func (s *Store) CreateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	err := s.write(ctx, func(tx *Store) error {
		e.ID = ensureID(e.ID)
		if _, ok := tx.st.estimates[e.ID]; ok {
			return duplicate("estimate")
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now().UTC()
		}
		tx.st.estimates[e.ID] = e
		tx.record("estimate", ActionCreate, e.ID)
		return nil
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (s *Store) GetEstimate(_ context.Context, id string) (entities.Estimate, error) {
	var out entities.Estimate
	s.read(func(st *state) { out = st.estimates[id] })
	return out, nil
}

func (s *Store) ListEstimates(_ context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var out []entities.Estimate
	s.read(func(st *state) {
		for _, e := range st.estimates {
			if filter.Status != "" && e.Status != filter.Status {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(e.Name), search) &&
				!strings.Contains(strings.ToLower(e.ObjectName), search) {
				continue
			}
			out = append(out, e)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	var out entities.Estimate
	err := s.write(ctx, func(tx *Store) error {
		cur, ok := tx.st.estimates[e.ID]
		if !ok {
			return nil
		}
		e.CreatedAt = cur.CreatedAt
		tx.st.estimates[e.ID] = e
		tx.record("estimate", ActionUpdate, e.ID)
		out = e
		return nil
	})
	return out, err
}

func (s *Store) DeleteEstimate(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.estimates[id]; !ok {
			return notFound("estimate", id)
		}
		for sid, sec := range tx.st.sections {
			if sec.EstimateID == id {
				tx.deleteSection(sid)
			}
		}
		delete(tx.st.estimates, id)
		tx.record("estimate", ActionDelete, id)
		return nil
	})
}

func (s *Store) CreateSection(ctx context.Context, sec entities.EstimateSection) (entities.EstimateSection, error) {
	err := s.write(ctx, func(tx *Store) error {
		sec.ID = ensureID(sec.ID)
		if _, ok := tx.st.sections[sec.ID]; ok {
			return duplicate("estimate section")
		}
		if tx.findSection(sec.EstimateID, sec.WorkCategoryID).ID != "" {
			return duplicate("estimate section")
		}
		tx.st.sections[sec.ID] = sec
		tx.record("estimate_section", ActionCreate, sec.ID)
		return nil
	})
	if err != nil {
		return entities.EstimateSection{}, err
	}
	return sec, nil
}

func (s *Store) GetSection(_ context.Context, id string) (entities.EstimateSection, error) {
	var out entities.EstimateSection
	s.read(func(st *state) { out = st.sections[id] })
	return out, nil
}

// LockSection reads the section. Transactions on the memory store already hold the
// store-wide lock, so there is no row lock to take.
func (s *Store) LockSection(ctx context.Context, id string) (entities.EstimateSection, error) {
	return s.GetSection(ctx, id)
}

func (s *Store) FindSection(_ context.Context, estimateID, workCategoryID string) (entities.EstimateSection, error) {
	var out entities.EstimateSection
	s.read(func(*state) { out = s.findSection(estimateID, workCategoryID) })
	return out, nil
}

func (s *Store) findSection(estimateID, workCategoryID string) entities.EstimateSection {
	for _, sec := range s.st.sections {
		if sec.EstimateID == estimateID && sec.WorkCategoryID == workCategoryID {
			return sec
		}
	}
	return entities.EstimateSection{}
}

func (s *Store) ListSections(_ context.Context, estimateID string) ([]entities.EstimateSection, error) {
	var out []entities.EstimateSection
	s.read(func(st *state) {
		for _, sec := range st.sections {
			if sec.EstimateID == estimateID {
				out = append(out, sec)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkCategoryID != out[j].WorkCategoryID {
			return out[i].WorkCategoryID < out[j].WorkCategoryID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateSectionArea(ctx context.Context, id string, totalArea float64) error {
	return s.write(ctx, func(tx *Store) error {
		sec, ok := tx.st.sections[id]
		if !ok {
			return notFound("estimate section", id)
		}
		sec.TotalArea = totalArea
		tx.st.sections[id] = sec
		tx.record("estimate_section", ActionUpdate, id)
		return nil
	})
}

func (s *Store) DeleteSection(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.sections[id]; !ok {
			return notFound("estimate section", id)
		}
		tx.deleteSection(id)
		return nil
	})
}

func (s *Store) deleteSection(id string) {
	for swtID, swt := range s.st.sectionWorkTypes {
		if swt.SectionID == id {
			s.deleteSectionWorkType(swtID)
		}
	}
	delete(s.st.sections, id)
	s.record("estimate_section", ActionDelete, id)
}

func (s *Store) CreateSectionWorkType(ctx context.Context, swt entities.EstimateSectionWorkType) (entities.EstimateSectionWorkType, error) {
	err := s.write(ctx, func(tx *Store) error {
		swt.ID = ensureID(swt.ID)
		if _, ok := tx.st.sectionWorkTypes[swt.ID]; ok {
			return duplicate("estimate section work type")
		}
		if tx.findSectionWorkType(swt.SectionID, swt.WorkTypeID).ID != "" {
			return duplicate("estimate section work type")
		}
		tx.st.sectionWorkTypes[swt.ID] = swt
		tx.record("estimate_section_work_type", ActionCreate, swt.ID)
		return nil
	})
	if err != nil {
		return entities.EstimateSectionWorkType{}, err
	}
	return swt, nil
}

func (s *Store) GetSectionWorkType(_ context.Context, id string) (entities.EstimateSectionWorkType, error) {
	var out entities.EstimateSectionWorkType
	s.read(func(st *state) { out = st.sectionWorkTypes[id] })
	return out, nil
}

func (s *Store) FindSectionWorkType(_ context.Context, sectionID, workTypeID string) (entities.EstimateSectionWorkType, error) {
	var out entities.EstimateSectionWorkType
	s.read(func(*state) { out = s.findSectionWorkType(sectionID, workTypeID) })
	return out, nil
}

func (s *Store) findSectionWorkType(sectionID, workTypeID string) entities.EstimateSectionWorkType {
	for _, swt := range s.st.sectionWorkTypes {
		if swt.SectionID == sectionID && swt.WorkTypeID == workTypeID {
			return swt
		}
	}
	return entities.EstimateSectionWorkType{}
}

func (s *Store) ListSectionWorkTypes(_ context.Context, sectionID string) ([]entities.EstimateSectionWorkType, error) {
	var out []entities.EstimateSectionWorkType
	s.read(func(st *state) {
		for _, swt := range st.sectionWorkTypes {
			if swt.SectionID == sectionID {
				out = append(out, swt)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateSectionWorkTypePercentage(ctx context.Context, id string, percentage float64) error {
	return s.write(ctx, func(tx *Store) error {
		swt, ok := tx.st.sectionWorkTypes[id]
		if !ok {
			return notFound("estimate section work type", id)
		}
		swt.Percentage = percentage
		tx.st.sectionWorkTypes[id] = swt
		tx.record("estimate_section_work_type", ActionUpdate, id)
		return nil
	})
}

func (s *Store) DeleteSectionWorkType(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.sectionWorkTypes[id]; !ok {
			return notFound("estimate section work type", id)
		}
		tx.deleteSectionWorkType(id)
		return nil
	})
}

func (s *Store) deleteSectionWorkType(id string) {
	for itemID, it := range s.st.items {
		if it.SectionWorkTypeID == id {
			s.deleteItem(itemID)
		}
	}
	delete(s.st.sectionWorkTypes, id)
	s.record("estimate_section_work_type", ActionDelete, id)
}

func (s *Store) UpsertItem(ctx context.Context, sectionWorkTypeID, workID string, volume float64) (entities.EstimateItem, error) {
	var out entities.EstimateItem
	err := s.write(ctx, func(tx *Store) error {
		for id, it := range tx.st.items {
			if it.SectionWorkTypeID == sectionWorkTypeID && it.WorkID == workID {
				it.Volume = volume
				tx.st.items[id] = it
				tx.record("estimate_item", ActionUpdate, id)
				out = it
				return nil
			}
		}
		it := entities.EstimateItem{
			ID:                ensureID(""),
			SectionWorkTypeID: sectionWorkTypeID,
			WorkID:            workID,
			Volume:            volume,
		}
		tx.st.items[it.ID] = it
		tx.record("estimate_item", ActionCreate, it.ID)
		out = it
		return nil
	})
	if err != nil {
		return entities.EstimateItem{}, err
	}
	return out, nil
}

func (s *Store) GetItem(_ context.Context, id string) (entities.EstimateItem, error) {
	var out entities.EstimateItem
	s.read(func(st *state) { out = st.items[id] })
	return out, nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.items[id]; !ok {
			return notFound("estimate item", id)
		}
		tx.deleteItem(id)
		return nil
	})
}

func (s *Store) deleteItem(id string) {
	for rid, r := range s.st.itemResources {
		if r.EstimateItemID == id {
			delete(s.st.itemResources, rid)
			s.record("estimate_item_resource", ActionDelete, rid)
		}
	}
	delete(s.st.items, id)
	s.record("estimate_item", ActionDelete, id)
}

func (s *Store) ListItems(_ context.Context, sectionWorkTypeID string) ([]entities.EstimateItem, error) {
	var out []entities.EstimateItem
	s.read(func(st *state) {
		for _, it := range st.items {
			if it.SectionWorkTypeID == sectionWorkTypeID {
				out = append(out, it)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkID != out[j].WorkID {
			return out[i].WorkID < out[j].WorkID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpsertItemResource(ctx context.Context, itemID, resourceID string, quantity float64) (entities.EstimateItemResource, error) {
	var out entities.EstimateItemResource
	err := s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.items[itemID]; !ok {
			return notFound("estimate item", itemID)
		}
		for id, r := range tx.st.itemResources {
			if r.EstimateItemID == itemID && r.ResourceID == resourceID {
				r.Quantity = quantity
				tx.st.itemResources[id] = r
				tx.record("estimate_item_resource", ActionUpdate, id)
				out = r
				return nil
			}
		}
		r := entities.EstimateItemResource{
			ID:             ensureID(""),
			EstimateItemID: itemID,
			ResourceID:     resourceID,
			Quantity:       quantity,
		}
		tx.st.itemResources[r.ID] = r
		tx.record("estimate_item_resource", ActionCreate, r.ID)
		out = r
		return nil
	})
	if err != nil {
		return entities.EstimateItemResource{}, err
	}
	return out, nil
}

func (s *Store) DeleteItemResource(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.itemResources[id]; !ok {
			return notFound("estimate item resource", id)
		}
		delete(tx.st.itemResources, id)
		tx.record("estimate_item_resource", ActionDelete, id)
		return nil
	})
}

func (s *Store) ListItemResources(_ context.Context, itemID string) ([]entities.EstimateItemResource, error) {
	var out []entities.EstimateItemResource
	s.read(func(st *state) {
		for _, r := range st.itemResources {
			if r.EstimateItemID == itemID {
				out = append(out, r)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].ResourceID != out[j].ResourceID {
			return out[i].ResourceID < out[j].ResourceID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
