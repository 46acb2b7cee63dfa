package usecase

import (
	"errors"
	"fmt"

	"boq_service/internal/domain/entities"
)

// Each sentinel wraps one of the entities error kinds so callers can match either the
// precise sentinel or the kind.
var (
	ErrEstimateNotFound        = fmt.Errorf("estimate %w", entities.ErrNotFound)
	ErrSectionNotFound         = fmt.Errorf("estimate section %w", entities.ErrNotFound)
	ErrSectionWorkTypeNotFound = fmt.Errorf("estimate section work type %w", entities.ErrNotFound)
	ErrItemNotFound            = fmt.Errorf("estimate item %w", entities.ErrNotFound)
	ErrWorkCategoryNotFound    = fmt.Errorf("work category %w", entities.ErrNotFound)
	ErrWorkTypeNotFound        = fmt.Errorf("work type %w", entities.ErrNotFound)
	ErrWorkNotFound            = fmt.Errorf("work %w", entities.ErrNotFound)
	ErrResourceNotFound        = fmt.Errorf("resource %w", entities.ErrNotFound)
	ErrWorkTypeWorkNotFound    = fmt.Errorf("work type work %w", entities.ErrNotFound)
	ErrWorkResourceNotFound    = fmt.Errorf("work resource %w", entities.ErrNotFound)
	ErrExportNotFound          = fmt.Errorf("estimate export %w", entities.ErrNotFound)

	ErrWorkTypeAlreadyAttached = fmt.Errorf("work type already attached to section: %w", entities.ErrDuplicateRelation)
	ErrSectionAlreadyExists    = fmt.Errorf("estimate already has a section for this category: %w", entities.ErrDuplicateRelation)

	ErrInvalidID = fmt.Errorf("%w: invalid id", entities.ErrValidation)

	ErrExportStorageNotConfigured = errors.New("export storage not configured")
)

// storageErr keeps domain error kinds intact and marks everything else as a storage
// failure. The context string names the ids involved.
func storageErr(err error, context string) error {
	if err == nil {
		return nil
	}
	if isDomainErr(err) {
		return fmt.Errorf("%w (%s)", err, context)
	}
	return fmt.Errorf("%w: %s: %w", entities.ErrStorageFailure, context, err)
}

func isDomainErr(err error) bool {
	return errors.Is(err, entities.ErrNotFound) ||
		errors.Is(err, entities.ErrDuplicateRelation) ||
		errors.Is(err, entities.ErrValidation) ||
		errors.Is(err, entities.ErrDeleteRestricted) ||
		errors.Is(err, entities.ErrStorageFailure)
}
