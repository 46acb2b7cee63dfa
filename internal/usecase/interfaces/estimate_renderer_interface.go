package interfaces

import "boq_service/internal/domain/entities"

// IEstimateRenderer turns an estimate tree into a downloadable document.
type IEstimateRenderer interface {
	Render(detail entities.EstimateDetail) ([]byte, error)
	ContentType() string
	FileExtension() string
}
