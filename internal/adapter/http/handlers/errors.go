package handlers

import (
	"errors"
	"log"
	"net/http"

	request "boq_service/internal/adapter/http/dto/request"
	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase"
	"boq_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest)
	errInvalidNumber  = pkg.NewDomainErrorSimple("INVALID_NUMBER", "Numeric fields must be finite", http.StatusBadRequest)
)

// mapError translates use case errors into the HTTP envelope. Client errors carry the
// wrapped message (ids included) as details.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidNumber):
		return errInvalidNumber
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest).WithDetails(err)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Validation failed", http.StatusBadRequest).WithDetails(err)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound).WithDetails(err)
	case errors.Is(err, entities.ErrDuplicateRelation):
		return pkg.NewDomainErrorSimple("DUPLICATE_RELATION", "Relation already exists", http.StatusConflict).WithDetails(err)
	case errors.Is(err, entities.ErrDeleteRestricted):
		return pkg.NewDomainErrorSimple("DELETE_RESTRICTED", "Resource is still referenced", http.StatusConflict).WithDetails(err)
	case errors.Is(err, usecase.ErrExportStorageNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORT_STORAGE_UNAVAILABLE", "Export storage is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrStorageFailure):
		return pkg.NewDomainError("STORAGE_FAILURE", "A storage error occurred", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context, err error) {
	appErr := errInvalidPayload.WithDetails(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
