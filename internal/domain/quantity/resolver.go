// Package quantity derives work volumes and resource quantities from section areas,
// work-type shares and template coefficients.
//
// The functions are total over float64: out-of-range shares and negative areas
// propagate arithmetically, and NaN/Inf follow IEEE-754 semantics.
package quantity

// DeriveTypeArea returns the part of the section's area covered by a work type.
func DeriveTypeArea(sectionTotalArea, percentage float64) float64 {
	return sectionTotalArea * (percentage / 100)
}

// DeriveItemVolume returns the work volume for a work-type area.
func DeriveItemVolume(typeArea, workVolumePerUnit float64) float64 {
	return typeArea * workVolumePerUnit
}

// DeriveResourceQuantity returns the resource consumption for a work volume.
func DeriveResourceQuantity(itemVolume, quantityPerUnit float64) float64 {
	return itemVolume * quantityPerUnit
}
