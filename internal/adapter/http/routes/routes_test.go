package routes

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boq_service/internal/adapter/persistence/memory"

	"github.com/gin-gonic/gin"
)

type apiClient struct {
	t *testing.T
	r *gin.Engine
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	registerRoutes(v1, newHandlers(memory.NewStore(), nil, nil, nil, 0))
	return &apiClient{t: t, r: r}
}

func (a *apiClient) do(method, path, body string, want int) map[string]any {
	a.t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	if w.Code != want {
		a.t.Fatalf("%s %s: expected %d, got %d body=%s", method, path, want, w.Code, w.Body.String())
	}
	out := map[string]any{}
	if w.Body.Len() > 0 && strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			a.t.Fatalf("%s %s: invalid json: %v", method, path, err)
		}
	}
	return out
}

func (a *apiClient) list(path string) []map[string]any {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		a.t.Fatalf("GET %s: expected 200, got %d body=%s", path, w.Code, w.Body.String())
	}
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		a.t.Fatalf("GET %s: invalid json: %v", path, err)
	}
	return out
}

func approx(t *testing.T, label string, got any, want float64) {
	t.Helper()
	v, ok := got.(float64)
	if !ok || math.Abs(v-want) > 1e-9 {
		t.Fatalf("%s: expected %v, got %v", label, want, got)
	}
}

func TestRoutes_Ping(t *testing.T) {
	api := newTestAPI(t)
	body := api.do(http.MethodGet, "/v1/ping", "", http.StatusOK)
	if body["message"] != "pong" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRoutes_PropagationFlow(t *testing.T) {
	api := newTestAPI(t)

	cat := api.do(http.MethodPost, "/v1/work-categories", `{"name":"Floors"}`, http.StatusCreated)["id"].(string)
	wt := api.do(http.MethodPost, "/v1/work-types", `{"category":"`+cat+`","name":"Sport linoleum"}`, http.StatusCreated)["id"].(string)
	work := api.do(http.MethodPost, "/v1/works", `{"name":"Priming","unit":"m2"}`, http.StatusCreated)["id"].(string)
	res := api.do(http.MethodPost, "/v1/resources", `{"name":"Primer","unit":"kg"}`, http.StatusCreated)["id"].(string)
	wtw := api.do(http.MethodPost, "/v1/work-type-works", `{"work_type":"`+wt+`","work":"`+work+`","order_index":1,"work_volume_per_unit":0.1}`, http.StatusCreated)["id"].(string)
	api.do(http.MethodPost, "/v1/work-resources", `{"work_type":"`+wt+`","work":"`+work+`","resource":"`+res+`","quantity_per_unit":0.2}`, http.StatusCreated)

	updated := api.do(http.MethodPut, "/v1/work-type-works/"+wtw, `{"work_volume_per_unit":0.3}`, http.StatusOK)
	approx(t, "order index kept on update", updated["order_index"], 1)
	approx(t, "coefficient on update", updated["work_volume_per_unit"], 0.3)
	if got := api.list("/v1/work-type-works"); len(got) != 1 {
		t.Fatalf("expected one template work without filter, got %v", got)
	}
	if got := api.list("/v1/work-resources"); len(got) != 1 {
		t.Fatalf("expected one work resource without filter, got %v", got)
	}

	est := api.do(http.MethodPost, "/v1/estimates", `{"name":"VOR-1","object_name":"Gym"}`, http.StatusCreated)["id"].(string)
	sec := api.do(http.MethodPost, "/v1/estimate-sections", `{"estimate":"`+est+`","work_category":"`+cat+`","total_area":100}`, http.StatusCreated)["id"].(string)

	attached := api.do(http.MethodPost, "/v1/estimate-section-work-types", `{"section":"`+sec+`","work_type":"`+wt+`","percentage":50}`, http.StatusCreated)
	swt := attached["id"].(string)
	items := attached["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one item, got %v", items)
	}
	item := items[0].(map[string]any)
	approx(t, "volume after attach", item["volume"], 15)

	resources := api.list("/v1/estimate-item-resources?estimate_item=" + item["id"].(string))
	if len(resources) != 1 {
		t.Fatalf("expected one resource row, got %v", resources)
	}
	approx(t, "quantity after attach", resources[0]["quantity"], 3)

	api.do(http.MethodPost, "/v1/estimate-section-work-types", `{"section":"`+sec+`","work_type":"`+wt+`","percentage":10}`, http.StatusConflict)

	api.do(http.MethodPatch, "/v1/estimate-sections/"+sec, `{"total_area":200}`, http.StatusOK)
	approx(t, "volume after area change", api.list("/v1/estimate-items?section_work_type=" + swt)[0]["volume"], 30)

	api.do(http.MethodPatch, "/v1/estimate-section-work-types/"+swt, `{"percentage":25}`, http.StatusOK)
	approx(t, "volume after percentage change", api.list("/v1/estimate-items?section_work_type=" + swt)[0]["volume"], 15)

	detail := api.do(http.MethodGet, "/v1/estimates/"+est, "", http.StatusOK)
	approx(t, "sections_count", detail["sections_count"], 1)
	section := detail["sections"].([]any)[0].(map[string]any)
	if section["work_category_name"] != "Floors" || section["percentage_balanced"] != false {
		t.Fatalf("unexpected section view: %v", section)
	}

	api.do(http.MethodDelete, "/v1/work-types/"+wt, "", http.StatusConflict)

	api.do(http.MethodDelete, "/v1/estimate-section-work-types/"+swt, "", http.StatusNoContent)
	api.do(http.MethodGet, "/v1/estimate-items?section_work_type="+swt, "", http.StatusNotFound)
	if left := api.list("/v1/estimate-section-work-types?section=" + sec); len(left) != 0 {
		t.Fatalf("expected no relations after detach, got %v", left)
	}

	api.do(http.MethodDelete, "/v1/work-types/"+wt, "", http.StatusNoContent)
}

func TestRoutes_Exports(t *testing.T) {
	api := newTestAPI(t)
	est := api.do(http.MethodPost, "/v1/estimates", `{"name":"VOR-2","object_name":"Pool"}`, http.StatusCreated)["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/"+est+"/export", nil)
	w := httptest.NewRecorder()
	api.r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "VOR-2_") || !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatalf("unexpected download: %q", w.Header().Get("Content-Disposition"))
	}

	api.do(http.MethodPost, "/v1/estimates/"+est+"/exports", "", http.StatusServiceUnavailable)
}
