// Package engine evaluates catalog formulas: it resolves inputs against
// declared defaults, collects advisory range warnings, dispatches to the
// registered procedure for the formula id (or the fallback expression
// evaluator when no procedure exists), and assembles an ordered derivation
// trace alongside the numeric result.
package engine

import (
	"slipstick/internal/catalog"
	"slipstick/internal/format"
)

// Context is the per-call mapping from variable symbol to effective value.
// Lookup is by exact symbol string; σx and σₓ are different keys.
type Context map[string]float64

// V returns the value for a symbol; missing symbols read as 0.
func (c Context) V(symbol string) float64 { return c[symbol] }

// Result is the outcome of one evaluation. Immutable once returned.
type Result struct {
	Result   float64
	Steps    []string
	Units    string
	Accuracy float64
	Warnings []string
}

// Resolve builds the evaluation context for a formula. A fixed variable
// value always wins over caller input; otherwise the caller input is used,
// and unset variables resolve to 0.
func Resolve(f *catalog.Formula, inputs map[string]float64) Context {
	ctx := make(Context, len(f.Variables))
	for i := range f.Variables {
		v := &f.Variables[i]
		switch {
		case v.Value != nil:
			ctx[v.Symbol] = *v.Value
		default:
			ctx[v.Symbol] = inputs[v.Symbol] // missing key yields 0
		}
	}
	return ctx
}

// Evaluate runs the full pipeline for one formula and one input set.
// Warnings never fail the call; the only error path is a fallback
// evaluation that cannot produce a finite number.
func Evaluate(f *catalog.Formula, inputs map[string]float64) (*Result, error) {
	ctx := Resolve(f, inputs)
	warnings := Validate(f, ctx)

	steps := make([]string, 0, len(f.Variables)+4)
	steps = append(steps, "Formula: "+f.Expr)
	for i := range f.Variables {
		v := &f.Variables[i]
		line := v.Symbol + " = " + format.Number(ctx[v.Symbol])
		if v.Unit != "" {
			line += " " + v.Unit
		}
		steps = append(steps, line)
	}

	var (
		result    float64
		procSteps []string
		err       error
	)
	if proc, ok := procedures[f.ID]; ok {
		result, procSteps = proc(ctx)
	} else {
		result, procSteps, err = evalFallback(f, ctx)
		if err != nil {
			return nil, err
		}
	}
	steps = append(steps, procSteps...)

	final := "Result: " + format.Number(result)
	if f.Units != "" {
		final += " " + f.Units
	}
	steps = append(steps, final)

	return &Result{
		Result:   result,
		Steps:    steps,
		Units:    f.Units,
		Accuracy: Accuracy(len(warnings)),
		Warnings: warnings,
	}, nil
}
