package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"boq_service/internal/adapter/http/handlers/mocks"
	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTemplateHandler_WorkCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create requires name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTemplateHandler(mocks.NewMockITemplateUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/work-categories", h.CreateWorkCategory)

		w := doJSON(r, http.MethodPost, "/v1/work-categories", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete restricted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITemplateUseCase(ctrl)
		h := NewTemplateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/work-categories/:id", h.DeleteWorkCategory)

		uc.EXPECT().DeleteWorkCategory(gomock.Any(), "cat-1").
			Return(fmt.Errorf("%w: work_category_id=cat-1 is used by a section", entities.ErrDeleteRestricted))

		w := doJSON(r, http.MethodDelete, "/v1/work-categories/cat-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update uses path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITemplateUseCase(ctrl)
		h := NewTemplateHandler(uc)

		r := gin.New()
		r.PUT("/v1/work-categories/:id", h.UpdateWorkCategory)

		uc.EXPECT().UpdateWorkCategory(gomock.Any(), entities.WorkCategory{ID: "cat-1", Name: "Walls"}).
			Return(entities.WorkCategory{ID: "cat-1", Name: "Walls"}, nil)

		w := doJSON(r, http.MethodPut, "/v1/work-categories/cat-1", `{"name":"Walls"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTemplateHandler_WorkTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITemplateUseCase(ctrl)
	h := NewTemplateHandler(uc)

	r := gin.New()
	r.POST("/v1/work-types", h.CreateWorkType)
	r.GET("/v1/work-types", h.ListWorkTypes)

	uc.EXPECT().CreateWorkType(gomock.Any(), entities.WorkType{CategoryID: "missing", Name: "Tile"}).
		Return(entities.WorkType{}, fmt.Errorf("%w: work_category_id=missing", usecase.ErrWorkCategoryNotFound))
	uc.EXPECT().ListWorkTypes(gomock.Any(), "cat-1").
		Return([]entities.WorkType{{ID: "wt-1", CategoryID: "cat-1", Name: "Tile"}}, nil)

	w := doJSON(r, http.MethodPost, "/v1/work-types", `{"category":"missing","name":"Tile"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/work-types?category=cat-1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["category"] != "cat-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestTemplateHandler_WorksAndResources(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITemplateUseCase(ctrl)
	h := NewTemplateHandler(uc)

	r := gin.New()
	r.POST("/v1/works", h.CreateWork)
	r.GET("/v1/resources/:id", h.GetResource)

	uc.EXPECT().CreateWork(gomock.Any(), entities.Work{Name: "Primer", Unit: "m2"}).
		Return(entities.Work{ID: "w-1", Name: "Primer", Unit: "m2"}, nil)
	uc.EXPECT().GetResource(gomock.Any(), "res-1").
		Return(entities.Resource{ID: "res-1", Name: "Glue", Unit: "kg"}, nil)

	w := doJSON(r, http.MethodPost, "/v1/works", `{"name":"Primer","unit":"m2"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/resources/res-1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestTemplateHandler_WorkTypeWorks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("coefficient omitted is passed as nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITemplateUseCase(ctrl)
		h := NewTemplateHandler(uc)

		r := gin.New()
		r.POST("/v1/work-type-works", h.CreateWorkTypeWork)

		order := 1
		uc.EXPECT().CreateWorkTypeWork(gomock.Any(), usecase.WorkTypeWorkInput{WorkTypeID: "wt-1", WorkID: "w-1", OrderIndex: &order}).
			Return(entities.WorkTypeWork{ID: "wtw-1", WorkTypeID: "wt-1", WorkID: "w-1", OrderIndex: 1, WorkVolumePerUnit: 1}, nil)

		w := doJSON(r, http.MethodPost, "/v1/work-type-works", `{"work_type":"wt-1","work":"w-1","order_index":1}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["work_volume_per_unit"] != 1.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("update without order index passes nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITemplateUseCase(ctrl)
		h := NewTemplateHandler(uc)

		r := gin.New()
		r.PUT("/v1/work-type-works/:id", h.UpdateWorkTypeWork)

		uc.EXPECT().UpdateWorkTypeWork(gomock.Any(), "wtw-1", gomock.AssignableToTypeOf(usecase.WorkTypeWorkInput{})).DoAndReturn(
			func(_ context.Context, _ string, in usecase.WorkTypeWorkInput) (entities.WorkTypeWork, error) {
				if in.OrderIndex != nil {
					t.Fatalf("expected nil order index, got %d", *in.OrderIndex)
				}
				if in.WorkVolumePerUnit == nil || *in.WorkVolumePerUnit != 2.5 {
					t.Fatalf("unexpected coefficient: %+v", in)
				}
				return entities.WorkTypeWork{ID: "wtw-1", WorkTypeID: "wt-1", WorkID: "w-1", OrderIndex: 5, WorkVolumePerUnit: 2.5}, nil
			})

		w := doJSON(r, http.MethodPut, "/v1/work-type-works/wtw-1", `{"work_volume_per_unit":2.5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_index"] != 5.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("list without work type returns every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITemplateUseCase(ctrl)
		h := NewTemplateHandler(uc)

		r := gin.New()
		r.GET("/v1/work-type-works", h.ListWorkTypeWorks)

		uc.EXPECT().ListWorkTypeWorks(gomock.Any(), "").Return([]entities.WorkTypeWork{
			{ID: "wtw-1", WorkTypeID: "wt-1", WorkID: "w-1"},
			{ID: "wtw-2", WorkTypeID: "wt-2", WorkID: "w-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-type-works", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestTemplateHandler_WorkResources(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quantity is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTemplateHandler(mocks.NewMockITemplateUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/work-resources", h.CreateWorkResource)

		w := doJSON(r, http.MethodPost, "/v1/work-resources", `{"work_type":"wt-1","work":"w-1","resource":"res-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list filters by work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITemplateUseCase(ctrl)
		h := NewTemplateHandler(uc)

		r := gin.New()
		r.GET("/v1/work-resources", h.ListWorkResources)

		uc.EXPECT().ListWorkResources(gomock.Any(), "wt-1", "w-1").
			Return([]entities.WorkResource{{ID: "wr-1", WorkTypeID: "wt-1", WorkID: "w-1", ResourceID: "res-1", QuantityPerUnit: 0.2}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-resources?work_type=wt-1&work=w-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITemplateUseCase(ctrl)
		h := NewTemplateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/work-resources/:id", h.DeleteWorkResource)

		uc.EXPECT().DeleteWorkResource(gomock.Any(), "wr-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/work-resources/wr-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
