package quantity

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b))
}

func TestDerive(t *testing.T) {
	cases := []struct {
		name             string
		area, percentage float64
		volumePerUnit    float64
		quantityPerUnit  float64
		wantTypeArea     float64
		wantVolume       float64
		wantQuantity     float64
	}{
		{name: "floor screed", area: 100, percentage: 40, volumePerUnit: 0.1, quantityPerUnit: 25, wantTypeArea: 40, wantVolume: 4, wantQuantity: 100},
		{name: "after share change", area: 100, percentage: 60, volumePerUnit: 0.1, quantityPerUnit: 25, wantTypeArea: 60, wantVolume: 6, wantQuantity: 150},
		{name: "after area change", area: 50, percentage: 60, volumePerUnit: 0.1, quantityPerUnit: 25, wantTypeArea: 30, wantVolume: 3, wantQuantity: 75},
		{name: "zero share", area: 100, percentage: 0, volumePerUnit: 1, quantityPerUnit: 2},
		{name: "share above hundred", area: 10, percentage: 150, volumePerUnit: 2, quantityPerUnit: 1, wantTypeArea: 15, wantVolume: 30, wantQuantity: 30},
		{name: "negative area", area: -20, percentage: 50, volumePerUnit: 1, quantityPerUnit: 3, wantTypeArea: -10, wantVolume: -10, wantQuantity: -30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			typeArea := DeriveTypeArea(tc.area, tc.percentage)
			if !almostEqual(typeArea, tc.wantTypeArea) {
				t.Fatalf("type area: expected %v got %v", tc.wantTypeArea, typeArea)
			}
			volume := DeriveItemVolume(typeArea, tc.volumePerUnit)
			if !almostEqual(volume, tc.wantVolume) {
				t.Fatalf("volume: expected %v got %v", tc.wantVolume, volume)
			}
			qty := DeriveResourceQuantity(volume, tc.quantityPerUnit)
			if !almostEqual(qty, tc.wantQuantity) {
				t.Fatalf("quantity: expected %v got %v", tc.wantQuantity, qty)
			}
		})
	}
}

func TestDerive_NonFinitePropagates(t *testing.T) {
	if v := DeriveTypeArea(math.NaN(), 50); !math.IsNaN(v) {
		t.Fatalf("expected NaN, got %v", v)
	}
	if v := DeriveItemVolume(math.Inf(1), 2); !math.IsInf(v, 1) {
		t.Fatalf("expected +Inf, got %v", v)
	}
	if v := DeriveResourceQuantity(math.Inf(1), 0); !math.IsNaN(v) {
		t.Fatalf("expected NaN for Inf*0, got %v", v)
	}
}
