package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.February, 29)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-02-29"` {
		t.Errorf("Expected \"2024-02-29\", got %s", raw)
	}

	var zero Date
	raw, _ = json.Marshal(zero)
	if string(raw) != "null" {
		t.Errorf("Expected null for zero date, got %s", raw)
	}
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{`"2024-03-09"`, "2024-03-09", false},
		{`"2024-03-09T15:04:05Z"`, "2024-03-09", false},
		{`null`, "", false},
		{`""`, "", false},
		{`"09/03/2024"`, "", true},
		{`"2024-13-01"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %s", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, d.String())
			}
		})
	}
}

func TestDateScanAndValue(t *testing.T) {
	inputs := []interface{}{
		time.Date(2023, time.December, 31, 18, 30, 0, 0, time.UTC),
		"2023-12-31",
		[]byte("2023-12-31 00:00:00"),
	}
	for _, in := range inputs {
		var d Date
		if err := d.Scan(in); err != nil {
			t.Fatalf("scan %T: %v", in, err)
		}
		v, err := d.Value()
		if err != nil {
			t.Fatalf("value: %v", err)
		}
		if v != "2023-12-31" {
			t.Errorf("scan %T: expected 2023-12-31, got %v", in, v)
		}
	}

	var d Date
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Errorf("Expected nil to scan as zero date, got %v %v", d, err)
	}
	if v, _ := d.Value(); v != nil {
		t.Errorf("Expected nil value for zero date, got %v", v)
	}
	if err := d.Scan(42); err == nil {
		t.Error("Expected error scanning an int")
	}
}
