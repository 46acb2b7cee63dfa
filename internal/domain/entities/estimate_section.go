package entities

// EstimateSection binds a work category to an estimate. TotalArea is user input and the
// single source of truth for that category within the estimate. Unique per (EstimateID, WorkCategoryID).
type EstimateSection struct {
	ID             string  `json:"id"`
	EstimateID     string  `json:"estimate_id"`
	WorkCategoryID string  `json:"work_category_id"`
	TotalArea      float64 `json:"total_area"`
}

// EstimateSectionWorkType attaches a work type to a section with a user-entered share
// (percent) of the section's area. Unique per (SectionID, WorkTypeID).
type EstimateSectionWorkType struct {
	ID         string  `json:"id"`
	SectionID  string  `json:"section_id"`
	WorkTypeID string  `json:"work_type_id"`
	Percentage float64 `json:"percentage"`
}

// EstimateItem is one work pulled from the template. Volume is derived and engine-owned.
// Unique per (SectionWorkTypeID, WorkID).
type EstimateItem struct {
	ID                string  `json:"id"`
	SectionWorkTypeID string  `json:"section_work_type_id"`
	WorkID            string  `json:"work_id"`
	Volume            float64 `json:"volume"`
}

// EstimateItemResource is one resource consumed by an item. Quantity is derived and
// engine-owned. Unique per (EstimateItemID, ResourceID).
type EstimateItemResource struct {
	ID             string  `json:"id"`
	EstimateItemID string  `json:"estimate_item_id"`
	ResourceID     string  `json:"resource_id"`
	Quantity       float64 `json:"quantity"`
}
