package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is an ordered, append-only collection of formulas.
// The built-in entries are immutable; Append adds user-authored formulas
// at the end without touching the built-ins.
type Catalog struct {
	formulas []*Formula
	byID     map[string]*Formula
}

// Load parses the embedded catalog and returns it.
// An unparseable or invalid embedded catalog is a build defect, so Load
// returns the error rather than panicking only to keep callers honest.
func Load() (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Formula)}
	var raw struct {
		Formulas []*Formula `yaml:"formulas"`
	}
	if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	for _, f := range raw.Formulas {
		if err := c.Append(f); err != nil {
			return nil, fmt.Errorf("embedded catalog: %w", err)
		}
	}
	return c, nil
}

// LoadFile parses a user-authored formula file (same YAML shape as the
// embedded catalog) and appends its formulas to the catalog.
// Returns the number of formulas added.
func (c *Catalog) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read formula file: %w", err)
	}
	var raw struct {
		Formulas []*Formula `yaml:"formulas"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, f := range raw.Formulas {
		if err := c.Append(f); err != nil {
			return i, fmt.Errorf("%s: %w", path, err)
		}
	}
	return len(raw.Formulas), nil
}

// Append adds a formula after checking the descriptor shape: non-empty id,
// display expression, and non-empty unique variable symbols. Duplicate ids
// are rejected; ids are the dispatch key and must stay globally unique.
func (c *Catalog) Append(f *Formula) error {
	if f.ID == "" {
		return fmt.Errorf("formula %q: missing id", f.Name)
	}
	if f.Expr == "" {
		return fmt.Errorf("formula %q: missing display expression", f.ID)
	}
	if _, dup := c.byID[f.ID]; dup {
		return fmt.Errorf("formula %q: duplicate id", f.ID)
	}
	seen := make(map[string]bool, len(f.Variables))
	for i := range f.Variables {
		sym := f.Variables[i].Symbol
		if sym == "" {
			return fmt.Errorf("formula %q: variable %d has empty symbol", f.ID, i)
		}
		if seen[sym] {
			return fmt.Errorf("formula %q: duplicate variable symbol %q", f.ID, sym)
		}
		seen[sym] = true
	}
	c.formulas = append(c.formulas, f)
	c.byID[f.ID] = f
	return nil
}

// ByID returns the formula with the given id, or nil.
func (c *Catalog) ByID(id string) *Formula { return c.byID[id] }

// All returns the formulas in catalog order. Callers must not mutate.
func (c *Catalog) All() []*Formula { return c.formulas }

// Len returns the number of formulas.
func (c *Catalog) Len() int { return len(c.formulas) }

// Filter returns the formulas matching the given category and discipline.
// Empty filter values match everything.
func (c *Catalog) Filter(category, discipline string) []*Formula {
	var out []*Formula
	for _, f := range c.formulas {
		if category != "" && f.Category != category {
			continue
		}
		if discipline != "" && f.Discipline != discipline {
			continue
		}
		out = append(out, f)
	}
	return out
}
