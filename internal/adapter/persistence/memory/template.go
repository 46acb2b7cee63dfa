package memory

import (
	"context"
	"sort"

	"boq_service/internal/domain/entities"
)

func (s *Store) CreateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error) {
	err := s.write(ctx, func(tx *Store) error {
		c.ID = ensureID(c.ID)
		if _, ok := tx.st.categories[c.ID]; ok {
			return duplicate("work category")
		}
		tx.st.categories[c.ID] = c
		tx.record("work_category", ActionCreate, c.ID)
		return nil
	})
	if err != nil {
		return entities.WorkCategory{}, err
	}
	return c, nil
}

func (s *Store) GetWorkCategory(_ context.Context, id string) (entities.WorkCategory, error) {
	var out entities.WorkCategory
	s.read(func(st *state) { out = st.categories[id] })
	return out, nil
}

func (s *Store) ListWorkCategories(_ context.Context) ([]entities.WorkCategory, error) {
	var out []entities.WorkCategory
	s.read(func(st *state) {
		out = make([]entities.WorkCategory, 0, len(st.categories))
		for _, c := range st.categories {
			out = append(out, c)
		}
	})
	sort.Slice(out, func(i, j int) bool { return byNameThenID(out[i].Name, out[j].Name, out[i].ID, out[j].ID) })
	return out, nil
}

func (s *Store) UpdateWorkCategory(ctx context.Context, c entities.WorkCategory) (entities.WorkCategory, error) {
	var out entities.WorkCategory
	err := s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.categories[c.ID]; !ok {
			return nil
		}
		tx.st.categories[c.ID] = c
		tx.record("work_category", ActionUpdate, c.ID)
		out = c
		return nil
	})
	return out, err
}

func (s *Store) DeleteWorkCategory(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.categories[id]; !ok {
			return notFound("work category", id)
		}
		for _, sec := range tx.st.sections {
			if sec.WorkCategoryID == id {
				return restricted("work category", id, "referenced by estimate sections")
			}
		}
		var owned []string
		for _, wt := range tx.st.workTypes {
			if wt.CategoryID != id {
				continue
			}
			if tx.workTypeAttached(wt.ID) {
				return restricted("work category", id, "has work types attached to estimate sections")
			}
			owned = append(owned, wt.ID)
		}
		for _, wtID := range owned {
			tx.deleteWorkType(wtID)
		}
		delete(tx.st.categories, id)
		tx.record("work_category", ActionDelete, id)
		return nil
	})
}

func (s *Store) CreateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error) {
	err := s.write(ctx, func(tx *Store) error {
		t.ID = ensureID(t.ID)
		if _, ok := tx.st.workTypes[t.ID]; ok {
			return duplicate("work type")
		}
		tx.st.workTypes[t.ID] = t
		tx.record("work_type", ActionCreate, t.ID)
		return nil
	})
	if err != nil {
		return entities.WorkType{}, err
	}
	return t, nil
}

func (s *Store) GetWorkType(_ context.Context, id string) (entities.WorkType, error) {
	var out entities.WorkType
	s.read(func(st *state) { out = st.workTypes[id] })
	return out, nil
}

func (s *Store) ListWorkTypes(_ context.Context, categoryID string) ([]entities.WorkType, error) {
	var out []entities.WorkType
	s.read(func(st *state) {
		for _, t := range st.workTypes {
			if categoryID == "" || t.CategoryID == categoryID {
				out = append(out, t)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].CategoryID != out[j].CategoryID {
			return out[i].CategoryID < out[j].CategoryID
		}
		return byNameThenID(out[i].Name, out[j].Name, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (s *Store) UpdateWorkType(ctx context.Context, t entities.WorkType) (entities.WorkType, error) {
	var out entities.WorkType
	err := s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.workTypes[t.ID]; !ok {
			return nil
		}
		tx.st.workTypes[t.ID] = t
		tx.record("work_type", ActionUpdate, t.ID)
		out = t
		return nil
	})
	return out, err
}

func (s *Store) DeleteWorkType(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.workTypes[id]; !ok {
			return notFound("work type", id)
		}
		if tx.workTypeAttached(id) {
			return restricted("work type", id, "attached to estimate sections")
		}
		tx.deleteWorkType(id)
		return nil
	})
}

func (s *Store) workTypeAttached(workTypeID string) bool {
	for _, swt := range s.st.sectionWorkTypes {
		if swt.WorkTypeID == workTypeID {
			return true
		}
	}
	return false
}

func (s *Store) deleteWorkType(id string) {
	for wid, w := range s.st.workTypeWorks {
		if w.WorkTypeID == id {
			delete(s.st.workTypeWorks, wid)
			s.record("work_type_work", ActionDelete, wid)
		}
	}
	for rid, r := range s.st.workResources {
		if r.WorkTypeID == id {
			delete(s.st.workResources, rid)
			s.record("work_resource", ActionDelete, rid)
		}
	}
	delete(s.st.workTypes, id)
	s.record("work_type", ActionDelete, id)
}

func (s *Store) CreateWork(ctx context.Context, w entities.Work) (entities.Work, error) {
	err := s.write(ctx, func(tx *Store) error {
		w.ID = ensureID(w.ID)
		if _, ok := tx.st.works[w.ID]; ok {
			return duplicate("work")
		}
		tx.st.works[w.ID] = w
		tx.record("work", ActionCreate, w.ID)
		return nil
	})
	if err != nil {
		return entities.Work{}, err
	}
	return w, nil
}

func (s *Store) GetWork(_ context.Context, id string) (entities.Work, error) {
	var out entities.Work
	s.read(func(st *state) { out = st.works[id] })
	return out, nil
}

func (s *Store) ListWorks(_ context.Context) ([]entities.Work, error) {
	var out []entities.Work
	s.read(func(st *state) {
		out = make([]entities.Work, 0, len(st.works))
		for _, w := range st.works {
			out = append(out, w)
		}
	})
	sort.Slice(out, func(i, j int) bool { return byNameThenID(out[i].Name, out[j].Name, out[i].ID, out[j].ID) })
	return out, nil
}

func (s *Store) UpdateWork(ctx context.Context, w entities.Work) (entities.Work, error) {
	var out entities.Work
	err := s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.works[w.ID]; !ok {
			return nil
		}
		tx.st.works[w.ID] = w
		tx.record("work", ActionUpdate, w.ID)
		out = w
		return nil
	})
	return out, err
}

func (s *Store) CreateResource(ctx context.Context, r entities.Resource) (entities.Resource, error) {
	err := s.write(ctx, func(tx *Store) error {
		r.ID = ensureID(r.ID)
		if _, ok := tx.st.resources[r.ID]; ok {
			return duplicate("resource")
		}
		tx.st.resources[r.ID] = r
		tx.record("resource", ActionCreate, r.ID)
		return nil
	})
	if err != nil {
		return entities.Resource{}, err
	}
	return r, nil
}

func (s *Store) GetResource(_ context.Context, id string) (entities.Resource, error) {
	var out entities.Resource
	s.read(func(st *state) { out = st.resources[id] })
	return out, nil
}

func (s *Store) ListResources(_ context.Context) ([]entities.Resource, error) {
	var out []entities.Resource
	s.read(func(st *state) {
		out = make([]entities.Resource, 0, len(st.resources))
		for _, r := range st.resources {
			out = append(out, r)
		}
	})
	sort.Slice(out, func(i, j int) bool { return byNameThenID(out[i].Name, out[j].Name, out[i].ID, out[j].ID) })
	return out, nil
}

func (s *Store) UpdateResource(ctx context.Context, r entities.Resource) (entities.Resource, error) {
	var out entities.Resource
	err := s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.resources[r.ID]; !ok {
			return nil
		}
		tx.st.resources[r.ID] = r
		tx.record("resource", ActionUpdate, r.ID)
		out = r
		return nil
	})
	return out, err
}

func (s *Store) CreateWorkTypeWork(ctx context.Context, w entities.WorkTypeWork) (entities.WorkTypeWork, error) {
	err := s.write(ctx, func(tx *Store) error {
		w.ID = ensureID(w.ID)
		if _, ok := tx.st.workTypeWorks[w.ID]; ok {
			return duplicate("work type work")
		}
		if tx.findWorkTypeWork(w.WorkTypeID, w.WorkID).ID != "" {
			return duplicate("work type work")
		}
		tx.st.workTypeWorks[w.ID] = w
		tx.record("work_type_work", ActionCreate, w.ID)
		return nil
	})
	if err != nil {
		return entities.WorkTypeWork{}, err
	}
	return w, nil
}

func (s *Store) GetWorkTypeWork(_ context.Context, id string) (entities.WorkTypeWork, error) {
	var out entities.WorkTypeWork
	s.read(func(st *state) { out = st.workTypeWorks[id] })
	return out, nil
}

func (s *Store) FindWorkTypeWork(_ context.Context, workTypeID, workID string) (entities.WorkTypeWork, error) {
	var out entities.WorkTypeWork
	s.read(func(*state) { out = s.findWorkTypeWork(workTypeID, workID) })
	return out, nil
}

func (s *Store) findWorkTypeWork(workTypeID, workID string) entities.WorkTypeWork {
	for _, w := range s.st.workTypeWorks {
		if w.WorkTypeID == workTypeID && w.WorkID == workID {
			return w
		}
	}
	return entities.WorkTypeWork{}
}

func (s *Store) UpdateWorkTypeWork(ctx context.Context, w entities.WorkTypeWork) (entities.WorkTypeWork, error) {
	var out entities.WorkTypeWork
	err := s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.workTypeWorks[w.ID]; !ok {
			return nil
		}
		if other := tx.findWorkTypeWork(w.WorkTypeID, w.WorkID); other.ID != "" && other.ID != w.ID {
			return duplicate("work type work")
		}
		tx.st.workTypeWorks[w.ID] = w
		tx.record("work_type_work", ActionUpdate, w.ID)
		out = w
		return nil
	})
	return out, err
}

func (s *Store) DeleteWorkTypeWork(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.workTypeWorks[id]; !ok {
			return notFound("work type work", id)
		}
		delete(tx.st.workTypeWorks, id)
		tx.record("work_type_work", ActionDelete, id)
		return nil
	})
}

func (s *Store) GetWorkTypeWorks(_ context.Context, workTypeID string) ([]entities.WorkTypeWork, error) {
	var out []entities.WorkTypeWork
	s.read(func(st *state) {
		for _, w := range st.workTypeWorks {
			if workTypeID == "" || w.WorkTypeID == workTypeID {
				out = append(out, w)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkTypeID != out[j].WorkTypeID {
			return out[i].WorkTypeID < out[j].WorkTypeID
		}
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) CreateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error) {
	err := s.write(ctx, func(tx *Store) error {
		w.ID = ensureID(w.ID)
		if _, ok := tx.st.workResources[w.ID]; ok {
			return duplicate("work resource")
		}
		if tx.findWorkResource(w.WorkTypeID, w.WorkID, w.ResourceID).ID != "" {
			return duplicate("work resource")
		}
		tx.st.workResources[w.ID] = w
		tx.record("work_resource", ActionCreate, w.ID)
		return nil
	})
	if err != nil {
		return entities.WorkResource{}, err
	}
	return w, nil
}

func (s *Store) GetWorkResource(_ context.Context, id string) (entities.WorkResource, error) {
	var out entities.WorkResource
	s.read(func(st *state) { out = st.workResources[id] })
	return out, nil
}

func (s *Store) FindWorkResource(_ context.Context, workTypeID, workID, resourceID string) (entities.WorkResource, error) {
	var out entities.WorkResource
	s.read(func(*state) { out = s.findWorkResource(workTypeID, workID, resourceID) })
	return out, nil
}

func (s *Store) findWorkResource(workTypeID, workID, resourceID string) entities.WorkResource {
	for _, r := range s.st.workResources {
		if r.WorkTypeID == workTypeID && r.WorkID == workID && r.ResourceID == resourceID {
			return r
		}
	}
	return entities.WorkResource{}
}

func (s *Store) UpdateWorkResource(ctx context.Context, w entities.WorkResource) (entities.WorkResource, error) {
	var out entities.WorkResource
	err := s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.workResources[w.ID]; !ok {
			return nil
		}
		if other := tx.findWorkResource(w.WorkTypeID, w.WorkID, w.ResourceID); other.ID != "" && other.ID != w.ID {
			return duplicate("work resource")
		}
		tx.st.workResources[w.ID] = w
		tx.record("work_resource", ActionUpdate, w.ID)
		out = w
		return nil
	})
	return out, err
}

func (s *Store) DeleteWorkResource(ctx context.Context, id string) error {
	return s.write(ctx, func(tx *Store) error {
		if _, ok := tx.st.workResources[id]; !ok {
			return notFound("work resource", id)
		}
		delete(tx.st.workResources, id)
		tx.record("work_resource", ActionDelete, id)
		return nil
	})
}

func (s *Store) GetWorkResources(_ context.Context, workTypeID, workID string) ([]entities.WorkResource, error) {
	var out []entities.WorkResource
	s.read(func(st *state) {
		for _, r := range st.workResources {
			if (workTypeID == "" || r.WorkTypeID == workTypeID) && (workID == "" || r.WorkID == workID) {
				out = append(out, r)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkTypeID != out[j].WorkTypeID {
			return out[i].WorkTypeID < out[j].WorkTypeID
		}
		if out[i].WorkID != out[j].WorkID {
			return out[i].WorkID < out[j].WorkID
		}
		if out[i].ResourceID != out[j].ResourceID {
			return out[i].ResourceID < out[j].ResourceID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func byNameThenID(nameA, nameB, idA, idB string) bool {
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}
