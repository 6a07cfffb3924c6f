package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInputs(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]float64
		wantErr bool
	}{
		{
			name:  "simple",
			pairs: []string{"F=10000", "A=0.001"},
			want:  map[string]float64{"F": 10000, "A": 0.001},
		},
		{
			name:  "unicode symbols and exponents",
			pairs: []string{"σₓ=1.5e6", "ν=1e-6"},
			want:  map[string]float64{"σₓ": 1.5e6, "ν": 1e-6},
		},
		{
			name:  "whitespace trimmed",
			pairs: []string{" V = 12 "},
			want:  map[string]float64{"V": 12},
		},
		{
			name:  "value containing equals keeps first split",
			pairs: []string{"x=-3"},
			want:  map[string]float64{"x": -3},
		},
		{name: "no equals", pairs: []string{"F10000"}, wantErr: true},
		{name: "empty symbol", pairs: []string{"=5"}, wantErr: true},
		{name: "bad number", pairs: []string{"F=ten"}, wantErr: true},
		{name: "empty list", pairs: nil, want: map[string]float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInputs(tt.pairs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("inputs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
		pass      bool
	}{
		{"exact", 72000, 72000, true},
		{"inside relative band", 1000.9, 1000, true},
		{"outside relative band", 1002, 1000, false},
		{"zero expected exact", 0, 0, true},
		{"zero expected tiny drift", 1e-12, 0, true},
		{"zero expected miss", 0.01, 0, false},
		{"negative values", -499.8, -500, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinTolerance(tt.got, tt.want); got != tt.pass {
				t.Errorf("withinTolerance(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.pass)
			}
		})
	}
}

func TestLoadCatalog_Custom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	src := `formulas:
  - id: rect-area
    name: Rectangle Area
    expr: "A = w × h"
    variables:
      - symbol: w
        name: Width
      - symbol: h
        name: Height
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := loadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if cat.ByID("rect-area") == nil {
		t.Error("custom formula not loaded")
	}

	if _, err := loadCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("want error for missing custom file")
	}
}
