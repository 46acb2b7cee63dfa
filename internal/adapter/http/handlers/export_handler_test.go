package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boq_service/internal/adapter/http/handlers/mocks"
	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_DownloadEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIExportUseCase(ctrl)
	h := NewExportHandler(uc)

	r := gin.New()
	r.GET("/v1/estimates/:id/export", h.DownloadEstimate)

	uc.EXPECT().RenderEstimate(gomock.Any(), "est-1").Return(usecase.RenderedEstimate{
		FileName:    "VOR-1_20260101.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="VOR-1_20260101.xlsx"`) {
		t.Fatalf("unexpected content disposition: %q", cd)
	}
	if w.Body.String() != "PK" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestExportHandler_CreateExport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("storage not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExportUseCase(ctrl)
		h := NewExportHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/exports", h.CreateExport)

		uc.EXPECT().CreateExport(gomock.Any(), "est-1").Return(entities.EstimateExport{}, usecase.ErrExportStorageNotConfigured)

		w := doJSON(r, http.MethodPost, "/v1/estimates/est-1/exports", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExportUseCase(ctrl)
		h := NewExportHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/exports", h.CreateExport)

		uc.EXPECT().CreateExport(gomock.Any(), "est-1").Return(entities.EstimateExport{
			ID: "exp-1", EstimateID: "est-1", FileName: "VOR-1.xlsx", CreatedAt: time.Now().UTC(),
			DownloadURL: "https://bucket.s3/estimates/est-1/exp-1.xlsx?sig",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates/est-1/exports", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"download_url":"https://bucket.s3/estimates/est-1/exp-1.xlsx?sig"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestExportHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIExportUseCase(ctrl)
	h := NewExportHandler(uc)

	r := gin.New()
	r.GET("/v1/estimates/:id/exports", h.ListExports)
	r.GET("/v1/estimate-exports/:id", h.GetExport)

	uc.EXPECT().ListExports(gomock.Any(), "est-1").Return([]entities.EstimateExport{{ID: "exp-2"}, {ID: "exp-1"}}, nil)
	uc.EXPECT().GetExport(gomock.Any(), "exp-x").Return(entities.EstimateExport{}, usecase.ErrExportNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/exports", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "exp-2") {
		t.Fatalf("unexpected list response: %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/estimate-exports/exp-x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
