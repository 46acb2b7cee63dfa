package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	request "boq_service/internal/adapter/http/dto/request"
	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
		want int
	}{
		{"non finite number", request.ErrInvalidNumber, "INVALID_NUMBER", http.StatusBadRequest},
		{"invalid id", usecase.ErrInvalidID, "INVALID_ID", http.StatusBadRequest},
		{"validation", fmt.Errorf("%w: name is required", entities.ErrValidation), "VALIDATION_ERROR", http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("%w: section_id=s-1", usecase.ErrSectionNotFound), "NOT_FOUND", http.StatusNotFound},
		{"duplicate", usecase.ErrWorkTypeAlreadyAttached, "DUPLICATE_RELATION", http.StatusConflict},
		{"restricted", entities.ErrDeleteRestricted, "DELETE_RESTRICTED", http.StatusConflict},
		{"export storage", usecase.ErrExportStorageNotConfigured, "EXPORT_STORAGE_UNAVAILABLE", http.StatusServiceUnavailable},
		{"storage failure", fmt.Errorf("%w: tx: broken pipe", entities.ErrStorageFailure), "STORAGE_FAILURE", http.StatusInternalServerError},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.Code != tc.code || got.HTTPStatus != tc.want {
				t.Fatalf("expected %s/%d, got %s/%d", tc.code, tc.want, got.Code, got.HTTPStatus)
			}
		})
	}
}
