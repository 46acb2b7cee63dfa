package response

import (
	"testing"
	"time"

	"boq_service/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	res := FromEstimate(entities.Estimate{
		ID:         "est-1",
		Name:       "VOR-1",
		ObjectName: "Gym",
		Status:     entities.EstimateStatusActive,
		CreatedAt:  now,
	})
	if res.ID != "est-1" || res.Name != "VOR-1" || res.ObjectName != "Gym" || res.Status != "active" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}

func TestFromEstimateDetail(t *testing.T) {
	detail := entities.EstimateDetail{
		Estimate: entities.Estimate{ID: "est-1"},
		Sections: []entities.EstimateSectionDetail{
			{
				EstimateSection:  entities.EstimateSection{ID: "s-1", TotalArea: 100},
				WorkCategoryName: "Floors",
				WorkTypes: []entities.EstimateSectionWorkTypeDetail{
					{
						EstimateSectionWorkType: entities.EstimateSectionWorkType{ID: "swt-1", Percentage: 60},
						TypeArea:                60,
						Items: []entities.EstimateItemDetail{
							{EstimateItem: entities.EstimateItem{ID: "it-1", Volume: 18}, WorkName: "Primer", WorkUnit: "m2"},
							{EstimateItem: entities.EstimateItem{ID: "it-2", Volume: 60}, WorkName: "Lay", WorkUnit: "m2"},
						},
					},
					{EstimateSectionWorkType: entities.EstimateSectionWorkType{ID: "swt-2", Percentage: 30}},
				},
			},
			{EstimateSection: entities.EstimateSection{ID: "s-2"}},
		},
	}

	res := FromEstimateDetail(detail)
	if res.SectionsCount != 2 || len(res.Sections) != 2 {
		t.Fatalf("unexpected sections: %+v", res)
	}
	sec := res.Sections[0]
	if sec.WorkTypesCount != 2 || sec.PercentageTotal != 90 || sec.PercentageBalanced {
		t.Fatalf("unexpected section summary: %+v", sec)
	}
	if sec.WorkTypes[0].ItemsCount != 2 || sec.WorkTypes[0].Items[1].WorkName != "Lay" {
		t.Fatalf("unexpected work type view: %+v", sec.WorkTypes[0])
	}
	if sec.WorkTypes[1].Items == nil || sec.WorkTypes[1].ItemsCount != 0 {
		t.Fatalf("expected empty non-nil items slice")
	}
	if res.Sections[1].WorkTypes == nil {
		t.Fatalf("expected empty non-nil work types slice")
	}
}

func TestMapList(t *testing.T) {
	out := MapList([]entities.Work{{ID: "w-1", Name: "Primer", Unit: "m2"}}, FromWork)
	if len(out) != 1 || out[0].Unit != "m2" {
		t.Fatalf("unexpected: %+v", out)
	}
	if got := MapList([]entities.Resource(nil), FromResource); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}
