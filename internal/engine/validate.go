package engine

import (
	"fmt"

	"slipstick/internal/catalog"
)

// Validate checks every declared variable's resolved value against its
// advisory bounds and returns the warnings in variable-declaration order.
// Warnings never block evaluation. Fixed-value constants are checked too:
// a constant configured with bounds that exclude its own value is an
// authoring mistake worth surfacing, not an error.
func Validate(f *catalog.Formula, ctx Context) []string {
	var warnings []string
	for i := range f.Variables {
		v := &f.Variables[i]
		val := ctx[v.Symbol]
		if v.Min != nil && val < *v.Min {
			warnings = append(warnings,
				fmt.Sprintf("%s is below minimum recommended value (%s)", v.Name, num(*v.Min)))
		}
		if v.Max != nil && val > *v.Max {
			warnings = append(warnings,
				fmt.Sprintf("%s exceeds maximum recommended value (%s)", v.Name, num(*v.Max)))
		}
	}
	return warnings
}
