package engine

import (
	"math"
	"testing"
)

// Every worked example in the catalog is a regression fixture: the
// pipeline must reproduce its expected result within a small relative
// tolerance.
func TestCatalogExamples(t *testing.T) {
	cat := loadCatalog(t)

	total := 0
	for _, f := range cat.All() {
		for _, ex := range f.Examples {
			total++
			t.Run(f.ID+"/"+ex.Title, func(t *testing.T) {
				res, err := Evaluate(f, ex.Inputs)
				if err != nil {
					t.Fatalf("evaluate: %v", err)
				}
				if rel := math.Abs(res.Result-ex.Expected) / math.Abs(ex.Expected); rel > 1e-3 {
					t.Errorf("result %v, expected %v (rel err %v)", res.Result, ex.Expected, rel)
				}
			})
		}
	}
	if total < 60 {
		t.Errorf("catalog carries %d fixtures, want at least 60", total)
	}
}

// Every built-in formula has a dedicated procedure, and no procedure is
// registered for an id the catalog does not know.
func TestCatalogProcedureCoverage(t *testing.T) {
	cat := loadCatalog(t)

	for _, f := range cat.All() {
		if !Registered(f.ID) {
			t.Errorf("formula %q has no registered procedure", f.ID)
		}
	}
	for _, id := range RegisteredIDs() {
		if cat.ByID(id) == nil {
			t.Errorf("procedure %q has no catalog entry", id)
		}
	}
}

// Example inputs may only use declared variable symbols; anything else is
// an authoring defect that would silently evaluate from zero.
func TestCatalogExampleSymbolsDeclared(t *testing.T) {
	cat := loadCatalog(t)

	for _, f := range cat.All() {
		for _, ex := range f.Examples {
			for sym := range ex.Inputs {
				if f.Variable(sym) == nil {
					t.Errorf("formula %q example %q: input %q is not a declared variable", f.ID, ex.Title, sym)
				}
			}
		}
	}
}

// Worked examples document recommended usage, so they must not trip their
// own range warnings.
func TestCatalogExamplesInRange(t *testing.T) {
	cat := loadCatalog(t)

	for _, f := range cat.All() {
		for _, ex := range f.Examples {
			warnings := Validate(f, Resolve(f, ex.Inputs))
			if len(warnings) > 0 {
				t.Errorf("formula %q example %q warns: %v", f.ID, ex.Title, warnings)
			}
		}
	}
}
