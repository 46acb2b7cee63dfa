package entities

import "math"

// percentageBalanceTolerance matches how far a section's shares may drift from 100%
// before it is flagged as unbalanced.
const percentageBalanceTolerance = 0.01

// Read models for the nested estimate view. They carry template names and units so the
// presentation layer never has to join on its own.

type EstimateDetail struct {
	Estimate
	Sections []EstimateSectionDetail `json:"sections"`
}

type EstimateSectionDetail struct {
	EstimateSection
	WorkCategoryName string                          `json:"work_category_name"`
	WorkTypes        []EstimateSectionWorkTypeDetail `json:"work_types"`
}

type EstimateSectionWorkTypeDetail struct {
	EstimateSectionWorkType
	WorkTypeName string               `json:"work_type_name"`
	TypeArea     float64              `json:"type_area"`
	Items        []EstimateItemDetail `json:"items"`
}

type EstimateItemDetail struct {
	EstimateItem
	WorkName  string                       `json:"work_name"`
	WorkUnit  string                       `json:"work_unit"`
	Resources []EstimateItemResourceDetail `json:"resources"`
}

type EstimateItemResourceDetail struct {
	EstimateItemResource
	ResourceName string `json:"resource_name"`
	ResourceUnit string `json:"resource_unit"`
}

// PercentageTotal sums the shares of all work types attached to the section.
func (s EstimateSectionDetail) PercentageTotal() float64 {
	total := 0.0
	for _, wt := range s.WorkTypes {
		total += wt.Percentage
	}
	return total
}

// PercentageBalanced reports whether the shares add up to 100%. The engine does not
// enforce it; it is surfaced for the user.
func (s EstimateSectionDetail) PercentageBalanced() bool {
	return math.Abs(s.PercentageTotal()-100) < percentageBalanceTolerance
}
