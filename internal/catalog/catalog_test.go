package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func load(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	return c
}

func TestLoad(t *testing.T) {
	c := load(t)
	if c.Len() < 60 {
		t.Errorf("catalog has %d formulas, want at least 60", c.Len())
	}

	// ids the engine contract names explicitly
	for _, id := range []string{
		"stress-formula", "ohms-law", "beam-deflection",
		"three-phase-power", "ac-impedance",
	} {
		if c.ByID(id) == nil {
			t.Errorf("missing formula %q", id)
		}
	}
}

// The catalog intentionally carries near-duplicate entries under distinct
// ids: two Reynolds-number forms and two principal-stress spellings.
func TestLoad_NearDuplicatesAreDistinct(t *testing.T) {
	c := load(t)

	re1, re2 := c.ByID("reynolds-number"), c.ByID("reynolds-number-kinematic")
	if re1 == nil || re2 == nil {
		t.Fatal("missing a Reynolds-number entry")
	}
	if re1.Variable("μ") == nil || re2.Variable("ν") == nil {
		t.Error("Reynolds variants must keep their own viscosity symbols")
	}

	m1, m2 := c.ByID("mohr-circle-max"), c.ByID("principal-stress-max")
	if m1 == nil || m2 == nil {
		t.Fatal("missing a principal-stress entry")
	}
	if m1.Variable("σx") == nil || m2.Variable("σₓ") == nil {
		t.Error("principal-stress variants must keep their own symbol spellings")
	}
	if m1.Variable("σₓ") != nil {
		t.Error("plain-spelling entry must not declare the subscript symbol")
	}
}

func TestLoad_ConstantsAreFixed(t *testing.T) {
	c := load(t)
	g := c.ByID("potential-energy").Variable("g")
	if g == nil || !g.Constant() {
		t.Fatal("potential-energy g must be a fixed constant")
	}
	if *g.Value != 9.81 {
		t.Errorf("g = %v, want 9.81", *g.Value)
	}
}

func TestAppend_Validation(t *testing.T) {
	tests := []struct {
		name    string
		formula *Formula
		wantErr string
	}{
		{"missing id", &Formula{Name: "X", Expr: "y = a"}, "missing id"},
		{"missing expr", &Formula{ID: "x"}, "missing display expression"},
		{"duplicate id", &Formula{ID: "ohms-law", Expr: "y = a"}, "duplicate id"},
		{
			"empty symbol",
			&Formula{ID: "x", Expr: "y = a", Variables: []Variable{{Symbol: ""}}},
			"empty symbol",
		},
		{
			"duplicate symbol",
			&Formula{ID: "x", Expr: "y = a", Variables: []Variable{{Symbol: "a"}, {Symbol: "a"}}},
			"duplicate variable symbol",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := load(t)
			err := c.Append(tt.formula)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAppend_CustomFormula(t *testing.T) {
	c := load(t)
	before := c.Len()
	err := c.Append(&Formula{
		ID:        "custom-circle-area",
		Expr:      "A = π × r²",
		Variables: []Variable{{Symbol: "r", Name: "Radius"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != before+1 {
		t.Errorf("len = %d, want %d", c.Len(), before+1)
	}
	if c.ByID("custom-circle-area") == nil {
		t.Error("appended formula not retrievable by id")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	src := `formulas:
  - id: user-sum
    name: User Sum
    expr: "y = a + b"
    variables:
      - symbol: a
        name: First
      - symbol: b
        name: Second
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	c := load(t)
	n, err := c.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("loaded %d formulas, want 1", n)
	}
	if c.ByID("user-sum") == nil {
		t.Error("user-sum not retrievable after LoadFile")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	c := load(t)
	if _, err := c.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestFilter(t *testing.T) {
	c := load(t)

	civil := c.Filter("", "civil")
	if len(civil) == 0 {
		t.Fatal("no civil formulas")
	}
	for _, f := range civil {
		if f.Discipline != "civil" {
			t.Errorf("formula %q discipline = %q", f.ID, f.Discipline)
		}
	}

	if got := c.Filter("", ""); len(got) != c.Len() {
		t.Errorf("empty filter returned %d of %d", len(got), c.Len())
	}

	if got := c.Filter("no-such-category", ""); len(got) != 0 {
		t.Errorf("bogus category matched %d formulas", len(got))
	}
}
