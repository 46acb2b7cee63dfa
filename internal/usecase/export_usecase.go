package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// DefaultExportURLTTL bounds presigned download links.
const DefaultExportURLTTL = 15 * time.Minute

var fileNameUnsafe = regexp.MustCompile(`[^\w\s-]`)

// RenderedEstimate is a workbook ready to be streamed to the client.
type RenderedEstimate struct {
	FileName    string
	ContentType string
	Data        []byte
}

// IExportUseCase renders estimates and keeps a registry of stored workbooks.
type IExportUseCase interface {
	RenderEstimate(ctx context.Context, estimateID string) (RenderedEstimate, error)
	CreateExport(ctx context.Context, estimateID string) (entities.EstimateExport, error)
	GetExport(ctx context.Context, id string) (entities.EstimateExport, error)
	ListExports(ctx context.Context, estimateID string) ([]entities.EstimateExport, error)
}

type ExportUseCase struct {
	estimates IEstimateUseCase
	renderer  interfaces.IEstimateRenderer
	repo      interfaces.IEstimateExportRepository
	blobs     interfaces.IBlobStore
	urlTTL    time.Duration
	now       func() time.Time
}

var _ IExportUseCase = (*ExportUseCase)(nil)

// NewExportUseCase wires the export flow. repo and blobs may be nil when export storage
// is not configured; direct rendering keeps working.
func NewExportUseCase(estimates IEstimateUseCase, renderer interfaces.IEstimateRenderer, repo interfaces.IEstimateExportRepository, blobs interfaces.IBlobStore, urlTTL time.Duration) *ExportUseCase {
	if urlTTL <= 0 {
		urlTTL = DefaultExportURLTTL
	}
	return &ExportUseCase{
		estimates: estimates,
		renderer:  renderer,
		repo:      repo,
		blobs:     blobs,
		urlTTL:    urlTTL,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ExportUseCase) RenderEstimate(ctx context.Context, estimateID string) (RenderedEstimate, error) {
	detail, err := u.estimates.GetEstimateDetail(ctx, estimateID)
	if err != nil {
		return RenderedEstimate{}, err
	}
	data, err := u.renderer.Render(detail)
	if err != nil {
		log.Printf("[export][usecase] render failed estimate_id=%s err=%v", detail.ID, err)
		return RenderedEstimate{}, fmt.Errorf("render estimate %s: %w", detail.ID, err)
	}
	return RenderedEstimate{
		FileName:    exportFileName(detail.Name, u.now(), u.renderer.FileExtension()),
		ContentType: u.renderer.ContentType(),
		Data:        data,
	}, nil
}

func (u *ExportUseCase) CreateExport(ctx context.Context, estimateID string) (entities.EstimateExport, error) {
	log.Printf("[export][usecase] create start estimate_id=%s", estimateID)
	if u.repo == nil || u.blobs == nil {
		return entities.EstimateExport{}, ErrExportStorageNotConfigured
	}

	rendered, err := u.RenderEstimate(ctx, estimateID)
	if err != nil {
		return entities.EstimateExport{}, err
	}

	id := uuid.NewString()
	estimateID = strings.TrimSpace(estimateID)
	key := fmt.Sprintf("estimates/%s/%s.%s", estimateID, id, u.renderer.FileExtension())
	if err := u.blobs.Put(ctx, key, rendered.Data, rendered.ContentType); err != nil {
		log.Printf("[export][usecase] blob put failed estimate_id=%s key=%s err=%v", estimateID, key, err)
		return entities.EstimateExport{}, err
	}

	rec, err := u.repo.Create(ctx, entities.EstimateExport{
		ID:          id,
		EstimateID:  estimateID,
		ObjectKey:   key,
		FileName:    rendered.FileName,
		ContentType: rendered.ContentType,
		SizeBytes:   int64(len(rendered.Data)),
		CreatedAt:   u.now(),
	})
	if err != nil {
		log.Printf("[export][usecase] registry create failed estimate_id=%s export_id=%s err=%v", estimateID, id, err)
		return entities.EstimateExport{}, err
	}

	if err := u.presign(ctx, &rec); err != nil {
		return entities.EstimateExport{}, err
	}
	log.Printf("[export][usecase] create ok estimate_id=%s export_id=%s size=%d", estimateID, rec.ID, rec.SizeBytes)
	return rec, nil
}

func (u *ExportUseCase) GetExport(ctx context.Context, id string) (entities.EstimateExport, error) {
	if u.repo == nil || u.blobs == nil {
		return entities.EstimateExport{}, ErrExportStorageNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateExport{}, ErrInvalidID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateExport{}, err
	}
	if rec.ID == "" {
		return entities.EstimateExport{}, fmt.Errorf("%w: export_id=%s", ErrExportNotFound, id)
	}
	if err := u.presign(ctx, &rec); err != nil {
		return entities.EstimateExport{}, err
	}
	return rec, nil
}

func (u *ExportUseCase) ListExports(ctx context.Context, estimateID string) ([]entities.EstimateExport, error) {
	if u.repo == nil || u.blobs == nil {
		return nil, ErrExportStorageNotConfigured
	}
	e, err := u.estimates.GetEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	list, err := u.repo.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := u.presign(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (u *ExportUseCase) presign(ctx context.Context, rec *entities.EstimateExport) error {
	url, err := u.blobs.PresignGetURL(ctx, rec.ObjectKey, u.urlTTL)
	if err != nil {
		log.Printf("[export][usecase] presign failed export_id=%s err=%v", rec.ID, err)
		return err
	}
	rec.DownloadURL = url
	return nil
}

// exportFileName builds "<name>_<yyyy-mm-dd>.<ext>" keeping only word characters,
// spaces and dashes from the estimate name.
func exportFileName(name string, at time.Time, ext string) string {
	base := strings.TrimSpace(fileNameUnsafe.ReplaceAllString(name, ""))
	if base == "" {
		base = "estimate"
	}
	return fmt.Sprintf("%s_%s.%s", base, at.Format("2006-01-02"), ext)
}
