package validator

import (
	"testing"
	"time"
)

type sample struct {
	Code string    `json:"code" validate:"required"`
	When time.Time `json:"when" validate:"date_required"`
	Skip string    `json:"-"`
}

func TestValidateStructReportsJSONNames(t *testing.T) {
	errs := ValidateStruct(&sample{})
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}
	if errs[0].Field != "code" || errs[0].Tag != "required" {
		t.Errorf("Unexpected first error: %+v", errs[0])
	}
	if errs[1].Field != "when" || errs[1].Tag != "date_required" {
		t.Errorf("Unexpected second error: %+v", errs[1])
	}
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&sample{Code: "X", When: time.Now()})
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %+v", errs[0])
	}
}

type level int

func (l level) Valid() bool { return l >= 1 && l <= 3 }

type enumSample struct {
	Level   level  `json:"level" validate:"required,enum"`
	Maybe   *level `json:"maybe" validate:"omitempty,enum"`
	Ignored level  `json:"ignored"`
}

func TestValidateStructEnum(t *testing.T) {
	tests := []struct {
		name  string
		input enumSample
		want  string
	}{
		{name: "valid", input: enumSample{Level: 2}},
		{name: "out of range", input: enumSample{Level: 4}, want: "enum"},
		{name: "zero is missing", input: enumSample{}, want: "required"},
		{name: "optional bad", input: enumSample{Level: 1, Maybe: ptr(level(9))}, want: "enum"},
		{name: "optional absent", input: enumSample{Level: 3, Ignored: 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&tt.input)
			if tt.want == "" {
				if len(errs) != 0 {
					t.Fatalf("Expected no errors, got %+v", errs[0])
				}
				return
			}
			if len(errs) != 1 || errs[0].Tag != tt.want {
				t.Fatalf("Expected one %q error, got %+v", tt.want, errs)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
