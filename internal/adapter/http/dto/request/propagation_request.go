package request

// AttachWorkTypeRequest is the payload of POST /estimate-section-work-types.
type AttachWorkTypeRequest struct {
	Section    string   `json:"section" binding:"required"`
	WorkType   string   `json:"work_type" binding:"required"`
	Percentage *float64 `json:"percentage" binding:"required"`
}

func (r AttachWorkTypeRequest) ResolvePercentage() (float64, error) {
	return finite(*r.Percentage)
}

// PercentageRequest is the payload of PATCH /estimate-section-work-types/:id.
type PercentageRequest struct {
	Percentage *float64 `json:"percentage" binding:"required"`
}

func (r PercentageRequest) ResolvePercentage() (float64, error) {
	return finite(*r.Percentage)
}
