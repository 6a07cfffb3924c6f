// Package catalog holds the formula catalog: immutable descriptors for
// every engineering computation the engine knows about, loaded once from
// the embedded YAML at startup. User-authored formulas are appended at
// runtime and carry the same contract.
package catalog

// Difficulty levels as they appear in the catalog YAML.
const (
	DifficultyBasic        = "basic"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Variable describes one named input (or fixed constant) of a formula.
// Symbol is the dispatch key: lookup is by exact string, including Greek
// letters and Unicode subscripts. No normalization is ever applied.
type Variable struct {
	Symbol      string   `yaml:"symbol"`
	Name        string   `yaml:"name"`
	Unit        string   `yaml:"unit,omitempty"`
	Value       *float64 `yaml:"value,omitempty"` // set = fixed constant, never solicited from the caller
	Min         *float64 `yaml:"min,omitempty"`   // inclusive advisory bound
	Max         *float64 `yaml:"max,omitempty"`   // inclusive advisory bound
	Description string   `yaml:"description,omitempty"`
}

// Constant reports whether the variable carries a fixed value.
func (v *Variable) Constant() bool { return v.Value != nil }

// Example is a worked example attached to a formula. Each one doubles as a
// regression fixture: evaluating Inputs must reproduce Expected within a
// small relative tolerance.
type Example struct {
	Title       string             `yaml:"title"`
	Inputs      map[string]float64 `yaml:"inputs"`
	Expected    float64            `yaml:"expected"`
	Description string             `yaml:"description,omitempty"`
}

// Formula describes one named engineering computation.
// Expr is display text only; the numeric procedure is registered separately
// by id, and ids without a procedure evaluate via the fallback path.
type Formula struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Expr        string     `yaml:"expr"`
	Category    string     `yaml:"category,omitempty"`
	Discipline  string     `yaml:"discipline,omitempty"`
	Difficulty  string     `yaml:"difficulty,omitempty"`
	Units       string     `yaml:"units,omitempty"`
	Tags        []string   `yaml:"tags,omitempty"`
	Variables   []Variable `yaml:"variables"`
	Examples    []Example  `yaml:"examples,omitempty"`
	References  []string   `yaml:"references,omitempty"`
}

// Variable returns the declared variable with the given symbol, or nil.
func (f *Formula) Variable(symbol string) *Variable {
	for i := range f.Variables {
		if f.Variables[i].Symbol == symbol {
			return &f.Variables[i]
		}
	}
	return nil
}
