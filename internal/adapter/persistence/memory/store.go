// Package memory provides an in-memory implementation of the estimate store used for
// tests and ephemeral environments (STORE_DRIVER=memory).
//
// Transactions run against a cloned copy of the committed state and are swapped in on
// success, so a failed transaction never leaves partial writes behind. A single writer
// holds the store lock for the whole transaction.
package memory

import (
	"context"
	"fmt"
	"sync"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var _ interfaces.IEstimateStore = (*Store)(nil)

// Action classifies a recorded change.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change is one committed write.
type Change struct {
	Entity string
	Action Action
	ID     string
}

type state struct {
	categories    map[string]entities.WorkCategory
	workTypes     map[string]entities.WorkType
	works         map[string]entities.Work
	resources     map[string]entities.Resource
	workTypeWorks map[string]entities.WorkTypeWork
	workResources map[string]entities.WorkResource

	estimates        map[string]entities.Estimate
	sections         map[string]entities.EstimateSection
	sectionWorkTypes map[string]entities.EstimateSectionWorkType
	items            map[string]entities.EstimateItem
	itemResources    map[string]entities.EstimateItemResource
}

func newState() *state {
	return &state{
		categories:       make(map[string]entities.WorkCategory),
		workTypes:        make(map[string]entities.WorkType),
		works:            make(map[string]entities.Work),
		resources:        make(map[string]entities.Resource),
		workTypeWorks:    make(map[string]entities.WorkTypeWork),
		workResources:    make(map[string]entities.WorkResource),
		estimates:        make(map[string]entities.Estimate),
		sections:         make(map[string]entities.EstimateSection),
		sectionWorkTypes: make(map[string]entities.EstimateSectionWorkType),
		items:            make(map[string]entities.EstimateItem),
		itemResources:    make(map[string]entities.EstimateItemResource),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	return &state{
		categories:       cloneMap(s.categories),
		workTypes:        cloneMap(s.workTypes),
		works:            cloneMap(s.works),
		resources:        cloneMap(s.resources),
		workTypeWorks:    cloneMap(s.workTypeWorks),
		workResources:    cloneMap(s.workResources),
		estimates:        cloneMap(s.estimates),
		sections:         cloneMap(s.sections),
		sectionWorkTypes: cloneMap(s.sectionWorkTypes),
		items:            cloneMap(s.items),
		itemResources:    cloneMap(s.itemResources),
	}
}

// Store is the root store or, when inTx is set, a view bound to one transaction.
type Store struct {
	mu      sync.RWMutex
	st      *state
	changes []Change

	inTx    bool
	pending []Change
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// WithinTx runs fn against a transactional copy of the state and commits it when fn
// returns nil.
func (s *Store) WithinTx(ctx context.Context, fn func(tx interfaces.IEstimateStore) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Store{st: s.st.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = tx.st
	s.changes = append(s.changes, tx.pending...)
	return nil
}

// Changes returns a copy of every committed write in commit order.
func (s *Store) Changes() []Change {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Change, len(s.changes))
	copy(out, s.changes)
	return out
}

// ChangeCount returns the number of committed writes.
func (s *Store) ChangeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.changes)
}

func (s *Store) read(fn func(st *state)) {
	if s.inTx {
		fn(s.st)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

// write runs fn in the current transaction, or in a single-statement transaction when
// called on the root store.
func (s *Store) write(ctx context.Context, fn func(tx *Store) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.WithinTx(ctx, func(tx interfaces.IEstimateStore) error {
		return fn(tx.(*Store))
	})
}

func (s *Store) record(entity string, action Action, id string) {
	s.pending = append(s.pending, Change{Entity: entity, Action: action, ID: id})
}

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s %w: id=%s", entity, entities.ErrNotFound, id)
}

func duplicate(entity string) error {
	return fmt.Errorf("%s %w", entity, entities.ErrDuplicateRelation)
}

func restricted(entity, id, reason string) error {
	return fmt.Errorf("%s %w: id=%s %s", entity, entities.ErrDeleteRestricted, id, reason)
}
