package interfaces

import (
	"context"

	"boq_service/internal/domain/entities"
)

// IEstimateExportRepository abstracts the DynamoDB registry of rendered workbooks.
type IEstimateExportRepository interface {
	Create(ctx context.Context, e entities.EstimateExport) (entities.EstimateExport, error)
	GetByID(ctx context.Context, id string) (entities.EstimateExport, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateExport, error)
}
