package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"boq_service/internal/adapter/persistence/memory"
	"boq_service/internal/domain/entities"
	mock_interfaces "boq_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func seedEstimate(t *testing.T, name string) (*EstimateUseCase, entities.Estimate) {
	t.Helper()
	estimates := NewEstimateUseCase(memory.NewStore())
	e, err := estimates.CreateEstimate(context.Background(), entities.Estimate{Name: name, ObjectName: "Site"})
	if err != nil {
		t.Fatalf("seed estimate: %v", err)
	}
	return estimates, e
}

func fixedClock(uc *ExportUseCase) {
	uc.now = func() time.Time { return time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC) }
}

func TestExportUseCase_RenderEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates, _ := seedEstimate(t, "E")
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		uc := NewExportUseCase(estimates, renderer, nil, nil, 0)

		if _, err := uc.RenderEstimate(ctx, "missing"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("renderer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates, e := seedEstimate(t, "E")
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("boom"))
		uc := NewExportUseCase(estimates, renderer, nil, nil, 0)

		if _, err := uc.RenderEstimate(ctx, e.ID); err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("expected render error, got %v", err)
		}
	})

	t.Run("success names the file after the estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates, e := seedEstimate(t, "Gym #2 / east")
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		renderer.EXPECT().Render(gomock.AssignableToTypeOf(entities.EstimateDetail{})).DoAndReturn(
			func(d entities.EstimateDetail) ([]byte, error) {
				if d.ID != e.ID {
					t.Fatalf("unexpected detail: %+v", d)
				}
				return []byte("xlsx"), nil
			},
		)
		renderer.EXPECT().FileExtension().Return("xlsx")
		renderer.EXPECT().ContentType().Return(xlsxContentType)
		uc := NewExportUseCase(estimates, renderer, nil, nil, 0)
		fixedClock(uc)

		res, err := uc.RenderEstimate(ctx, e.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FileName != "Gym 2  east_2025-06-30.xlsx" || res.ContentType != xlsxContentType || string(res.Data) != "xlsx" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestExportUseCase_CreateExport(t *testing.T) {
	ctx := context.Background()

	t.Run("storage not configured", func(t *testing.T) {
		estimates, e := seedEstimate(t, "E")
		uc := NewExportUseCase(estimates, nil, nil, nil, 0)
		if _, err := uc.CreateExport(ctx, e.ID); !errors.Is(err, ErrExportStorageNotConfigured) {
			t.Fatalf("expected ErrExportStorageNotConfigured, got %v", err)
		}
	})

	t.Run("blob error stops before registry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates, e := seedEstimate(t, "E")
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		repo := mock_interfaces.NewMockIEstimateExportRepository(ctrl)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		renderer.EXPECT().Render(gomock.Any()).Return([]byte("xlsx"), nil)
		renderer.EXPECT().FileExtension().Return("xlsx").AnyTimes()
		renderer.EXPECT().ContentType().Return(xlsxContentType)
		blobs.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("xlsx"), xlsxContentType).Return(errors.New("s3 down"))
		uc := NewExportUseCase(estimates, renderer, repo, blobs, 0)

		if _, err := uc.CreateExport(ctx, e.ID); err == nil || err.Error() != "s3 down" {
			t.Fatalf("expected s3 error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates, e := seedEstimate(t, "E")
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		repo := mock_interfaces.NewMockIEstimateExportRepository(ctrl)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)

		var key string
		renderer.EXPECT().Render(gomock.Any()).Return([]byte("workbook"), nil)
		renderer.EXPECT().FileExtension().Return("xlsx").AnyTimes()
		renderer.EXPECT().ContentType().Return(xlsxContentType)
		blobs.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("workbook"), xlsxContentType).DoAndReturn(
			func(_ context.Context, k string, _ []byte, _ string) error {
				key = k
				return nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimateExport{})).DoAndReturn(
			func(_ context.Context, rec entities.EstimateExport) (entities.EstimateExport, error) {
				if rec.ObjectKey != key || rec.EstimateID != e.ID || rec.SizeBytes != 8 {
					t.Fatalf("unexpected record: %+v", rec)
				}
				if !strings.HasPrefix(key, "estimates/"+e.ID+"/"+rec.ID) || !strings.HasSuffix(key, ".xlsx") {
					t.Fatalf("unexpected key %q", key)
				}
				return rec, nil
			},
		)
		blobs.EXPECT().PresignGetURL(gomock.Any(), gomock.Any(), 5*time.Minute).Return("https://signed", nil)
		uc := NewExportUseCase(estimates, renderer, repo, blobs, 5*time.Minute)

		rec, err := uc.CreateExport(ctx, e.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.DownloadURL != "https://signed" || rec.ID == "" {
			t.Fatalf("unexpected export: %+v", rec)
		}
	})
}

func TestExportUseCase_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateExportRepository(ctrl)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "x-1").Return(entities.EstimateExport{}, nil)
		uc := NewExportUseCase(nil, nil, repo, blobs, 0)

		if _, err := uc.GetExport(ctx, "x-1"); !errors.Is(err, ErrExportNotFound) {
			t.Fatalf("expected ErrExportNotFound, got %v", err)
		}
	})

	t.Run("list presigns each export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates, e := seedEstimate(t, "E")
		repo := mock_interfaces.NewMockIEstimateExportRepository(ctrl)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		repo.EXPECT().ListByEstimateID(gomock.Any(), e.ID).Return([]entities.EstimateExport{
			{ID: "x-1", ObjectKey: "k1"},
			{ID: "x-2", ObjectKey: "k2"},
		}, nil)
		blobs.EXPECT().PresignGetURL(gomock.Any(), "k1", DefaultExportURLTTL).Return("u1", nil)
		blobs.EXPECT().PresignGetURL(gomock.Any(), "k2", DefaultExportURLTTL).Return("u2", nil)
		uc := NewExportUseCase(estimates, nil, repo, blobs, 0)

		list, err := uc.ListExports(ctx, e.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 || list[0].DownloadURL != "u1" || list[1].DownloadURL != "u2" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})
}
