package entities

import (
	"errors"
	"math"
	"testing"
)

func TestWorkTypeWork_Validate(t *testing.T) {
	cases := []struct {
		name    string
		in      WorkTypeWork
		wantErr bool
	}{
		{name: "valid", in: WorkTypeWork{WorkTypeID: "wt-1", WorkID: "w-1", WorkVolumePerUnit: 0.1}},
		{name: "zero coefficient", in: WorkTypeWork{WorkTypeID: "wt-1", WorkID: "w-1"}},
		{name: "negative coefficient", in: WorkTypeWork{WorkTypeID: "wt-1", WorkID: "w-1", WorkVolumePerUnit: -0.5}, wantErr: true},
		{name: "nan coefficient", in: WorkTypeWork{WorkTypeID: "wt-1", WorkID: "w-1", WorkVolumePerUnit: math.NaN()}, wantErr: true},
		{name: "missing work", in: WorkTypeWork{WorkTypeID: "wt-1", WorkVolumePerUnit: 1}, wantErr: true},
		{name: "missing work type", in: WorkTypeWork{WorkID: "w-1", WorkVolumePerUnit: 1}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWorkResource_Validate(t *testing.T) {
	ok := WorkResource{WorkTypeID: "wt-1", WorkID: "w-1", ResourceID: "r-1", QuantityPerUnit: 25}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	neg := ok
	neg.QuantityPerUnit = -1
	if err := neg.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	inf := ok
	inf.QuantityPerUnit = math.Inf(1)
	if err := inf.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	noRes := ok
	noRes.ResourceID = " "
	if err := noRes.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTemplateNames_Validate(t *testing.T) {
	if err := (WorkCategory{Name: "  "}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty category name, got %v", err)
	}
	if err := (WorkType{Name: "Sport linoleum"}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing category, got %v", err)
	}
	if err := (Work{Name: "Screed"}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing unit, got %v", err)
	}
	if err := (Resource{Name: "Sand", Unit: "t"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
