package models

import (
	"encoding/json"
	"testing"
)

// TestNumberUnmarshal verifies string-encoded and missing values decode the
// way old exports wrote them.
func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{`145`, 145},
		{`2.5`, 2.5},
		{`"145"`, 145},
		{`"2.5"`, 2.5},
		{`""`, 0},
		{`"not a number"`, 0},
		{`null`, 0},
	}
	for _, tt := range tests {
		var n Number
		if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if n != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, n, tt.want)
		}
	}
}

// TestNumberInSet verifies a set decodes whether weights arrive as numbers
// or strings.
func TestNumberInSet(t *testing.T) {
	var s Set
	if err := json.Unmarshal([]byte(`{"weight":"135","reps":8,"completed":true}`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Weight != 135 || s.Reps != 8 || !s.Completed {
		t.Errorf("set = %+v, want 135x8 completed", s)
	}
}

func TestTrendOf(t *testing.T) {
	prev := 200.0
	tests := []struct {
		name string
		prev *float64
		next float64
		want Trend
	}{
		{"no prior", nil, 150, TrendStable},
		{"higher", &prev, 210, TrendUp},
		{"lower", &prev, 190, TrendDown},
		{"equal", &prev, 200, TrendStable},
	}
	for _, tt := range tests {
		if got := TrendOf(tt.prev, tt.next); got != tt.want {
			t.Errorf("%s: TrendOf = %q, want %q", tt.name, got, tt.want)
		}
	}
}
