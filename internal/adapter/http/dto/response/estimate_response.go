package response

import (
	"time"

	"boq_service/internal/domain/entities"
)

type EstimateResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ObjectName string    `json:"object_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:         e.ID,
		Name:       e.Name,
		ObjectName: e.ObjectName,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

type SectionResponse struct {
	ID           string  `json:"id"`
	Estimate     string  `json:"estimate"`
	WorkCategory string  `json:"work_category"`
	TotalArea    float64 `json:"total_area"`
}

func FromSection(s entities.EstimateSection) SectionResponse {
	return SectionResponse{ID: s.ID, Estimate: s.EstimateID, WorkCategory: s.WorkCategoryID, TotalArea: s.TotalArea}
}

func FromSections(list []entities.EstimateSection) []SectionResponse {
	out := make([]SectionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSection(s))
	}
	return out
}

type SectionWorkTypeResponse struct {
	ID         string  `json:"id"`
	Section    string  `json:"section"`
	WorkType   string  `json:"work_type"`
	Percentage float64 `json:"percentage"`
}

func FromSectionWorkType(s entities.EstimateSectionWorkType) SectionWorkTypeResponse {
	return SectionWorkTypeResponse{ID: s.ID, Section: s.SectionID, WorkType: s.WorkTypeID, Percentage: s.Percentage}
}

func FromSectionWorkTypes(list []entities.EstimateSectionWorkType) []SectionWorkTypeResponse {
	out := make([]SectionWorkTypeResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSectionWorkType(s))
	}
	return out
}

type ItemResponse struct {
	ID              string  `json:"id"`
	SectionWorkType string  `json:"section_work_type"`
	Work            string  `json:"work"`
	Volume          float64 `json:"volume"`
}

func FromItem(it entities.EstimateItem) ItemResponse {
	return ItemResponse{ID: it.ID, SectionWorkType: it.SectionWorkTypeID, Work: it.WorkID, Volume: it.Volume}
}

func FromItems(list []entities.EstimateItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromItem(it))
	}
	return out
}

type ItemResourceResponse struct {
	ID           string  `json:"id"`
	EstimateItem string  `json:"estimate_item"`
	Resource     string  `json:"resource"`
	Quantity     float64 `json:"quantity"`
}

func FromItemResource(r entities.EstimateItemResource) ItemResourceResponse {
	return ItemResourceResponse{ID: r.ID, EstimateItem: r.EstimateItemID, Resource: r.ResourceID, Quantity: r.Quantity}
}

func FromItemResources(list []entities.EstimateItemResource) []ItemResourceResponse {
	out := make([]ItemResourceResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromItemResource(r))
	}
	return out
}

// AttachWorkTypeResponse returns the new relation together with the items it produced.
type AttachWorkTypeResponse struct {
	SectionWorkTypeResponse
	Items []ItemResponse `json:"items"`
}

// Nested estimate view.

type EstimateDetailResponse struct {
	EstimateResponse
	SectionsCount int                     `json:"sections_count"`
	Sections      []SectionDetailResponse `json:"sections"`
}

type SectionDetailResponse struct {
	SectionResponse
	WorkCategoryName   string                          `json:"work_category_name"`
	WorkTypesCount     int                             `json:"work_types_count"`
	PercentageTotal    float64                         `json:"percentage_total"`
	PercentageBalanced bool                            `json:"percentage_balanced"`
	WorkTypes          []SectionWorkTypeDetailResponse `json:"work_types"`
}

type SectionWorkTypeDetailResponse struct {
	SectionWorkTypeResponse
	WorkTypeName string               `json:"work_type_name"`
	TypeArea     float64              `json:"type_area"`
	ItemsCount   int                  `json:"items_count"`
	Items        []ItemDetailResponse `json:"items"`
}

type ItemDetailResponse struct {
	ItemResponse
	WorkName       string                       `json:"work_name"`
	WorkUnit       string                       `json:"work_unit"`
	ResourcesCount int                          `json:"resources_count"`
	Resources      []ItemResourceDetailResponse `json:"resources"`
}

type ItemResourceDetailResponse struct {
	ItemResourceResponse
	ResourceName string `json:"resource_name"`
	ResourceUnit string `json:"resource_unit"`
}

func FromEstimateDetail(d entities.EstimateDetail) EstimateDetailResponse {
	out := EstimateDetailResponse{
		EstimateResponse: FromEstimate(d.Estimate),
		SectionsCount:    len(d.Sections),
		Sections:         make([]SectionDetailResponse, 0, len(d.Sections)),
	}
	for _, sec := range d.Sections {
		sd := SectionDetailResponse{
			SectionResponse:    FromSection(sec.EstimateSection),
			WorkCategoryName:   sec.WorkCategoryName,
			WorkTypesCount:     len(sec.WorkTypes),
			PercentageTotal:    sec.PercentageTotal(),
			PercentageBalanced: sec.PercentageBalanced(),
			WorkTypes:          make([]SectionWorkTypeDetailResponse, 0, len(sec.WorkTypes)),
		}
		for _, wt := range sec.WorkTypes {
			wd := SectionWorkTypeDetailResponse{
				SectionWorkTypeResponse: FromSectionWorkType(wt.EstimateSectionWorkType),
				WorkTypeName:            wt.WorkTypeName,
				TypeArea:                wt.TypeArea,
				ItemsCount:              len(wt.Items),
				Items:                   make([]ItemDetailResponse, 0, len(wt.Items)),
			}
			for _, it := range wt.Items {
				id := ItemDetailResponse{
					ItemResponse:   FromItem(it.EstimateItem),
					WorkName:       it.WorkName,
					WorkUnit:       it.WorkUnit,
					ResourcesCount: len(it.Resources),
					Resources:      make([]ItemResourceDetailResponse, 0, len(it.Resources)),
				}
				for _, r := range it.Resources {
					id.Resources = append(id.Resources, ItemResourceDetailResponse{
						ItemResourceResponse: FromItemResource(r.EstimateItemResource),
						ResourceName:         r.ResourceName,
						ResourceUnit:         r.ResourceUnit,
					})
				}
				wd.Items = append(wd.Items, id)
			}
			sd.WorkTypes = append(sd.WorkTypes, wd)
		}
		out.Sections = append(out.Sections, sd)
	}
	return out
}

type ExportResponse struct {
	ID          string    `json:"id"`
	Estimate    string    `json:"estimate"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	DownloadURL string    `json:"download_url"`
}

func FromExport(e entities.EstimateExport) ExportResponse {
	return ExportResponse{
		ID:          e.ID,
		Estimate:    e.EstimateID,
		FileName:    e.FileName,
		ContentType: e.ContentType,
		SizeBytes:   e.SizeBytes,
		CreatedAt:   e.CreatedAt,
		DownloadURL: e.DownloadURL,
	}
}

func FromExports(list []entities.EstimateExport) []ExportResponse {
	out := make([]ExportResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromExport(e))
	}
	return out
}
