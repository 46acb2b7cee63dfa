package entities

import (
	"fmt"
	"time"
)

// EstimateStatus represents the lifecycle of an estimate (bill of quantities).
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusActive    EstimateStatus = "active"
	EstimateStatusCompleted EstimateStatus = "completed"
	EstimateStatusArchived  EstimateStatus = "archived"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusActive, EstimateStatusCompleted, EstimateStatusArchived:
		return true
	}
	return false
}

// Estimate is the root of the instance hierarchy for one project.
//
// Ownership (cascade on delete):
//
//	Estimate -> EstimateSection -> EstimateSectionWorkType -> EstimateItem -> EstimateItemResource
type Estimate struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	ObjectName string         `json:"object_name"`
	Status     EstimateStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (e Estimate) Validate() error {
	if err := requireText("name", e.Name); err != nil {
		return err
	}
	if err := requireText("object_name", e.ObjectName); err != nil {
		return err
	}
	if !e.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, e.Status)
	}
	return nil
}

// EstimateFilter narrows estimate listings. Zero values disable a filter.
type EstimateFilter struct {
	Status EstimateStatus
	Search string
}
