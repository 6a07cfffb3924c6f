package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"slipstick/internal/catalog"
	"slipstick/internal/engine"
	"slipstick/internal/format"
	"slipstick/internal/logging"
)

// relTolerance is the regression tolerance for worked examples. Formulas
// with compounded rounding in their published figures stay within it.
const relTolerance = 1e-3

var checkFlags struct {
	parallel int
	markdown bool
	showPass bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run every worked example in the catalog as a regression fixture",
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.IntVar(&checkFlags.parallel, "parallel", 4, "Number of parallel workers")
	f.BoolVar(&checkFlags.markdown, "markdown", false, "Render as a Markdown table")
	f.BoolVar(&checkFlags.showPass, "show-pass", false, "List passing fixtures too, not only failures")
}

// fixture is one worked example scheduled for checking.
type fixture struct {
	formula *catalog.Formula
	example *catalog.Example
}

// fixtureResult is the outcome of one fixture run.
type fixtureResult struct {
	fixture
	got  float64
	err  error
	pass bool
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog("")
	if err != nil {
		return err
	}

	var fixtures []fixture
	for _, f := range cat.All() {
		for i := range f.Examples {
			fixtures = append(fixtures, fixture{formula: f, example: &f.Examples[i]})
		}
	}

	logger := logging.New("check")
	logger.Info("running fixtures", "count", len(fixtures), "parallel", checkFlags.parallel)

	results := make([]fixtureResult, len(fixtures))
	var g errgroup.Group
	g.SetLimit(max(checkFlags.parallel, 1))
	for i, fx := range fixtures {
		g.Go(func() error {
			results[i] = runFixture(fx)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in results

	tb := format.NewTable(tableMode(checkFlags.markdown))
	tb.Header("ID", "Example", "Expected", "Got", "Status")
	tb.RightAlign(3, 4)
	passed := 0
	for _, r := range results {
		if r.pass {
			passed++
			if !checkFlags.showPass {
				continue
			}
		}
		got := "error"
		if r.err == nil {
			got = format.Number(r.got)
		}
		tb.Row(r.formula.ID, r.example.Title, format.Number(r.example.Expected), got, statusMark(r.pass))
	}
	tb.Footer("", "", "", "", fmt.Sprintf("%d/%d pass", passed, len(results)))

	fmt.Fprintln(cmd.OutOrStdout(), tb.String())

	if passed != len(results) {
		return fmt.Errorf("%d of %d fixtures failed", len(results)-passed, len(results))
	}
	return nil
}

func runFixture(fx fixture) fixtureResult {
	r := fixtureResult{fixture: fx}
	res, err := engine.Evaluate(fx.formula, fx.example.Inputs)
	if err != nil {
		r.err = err
		return r
	}
	r.got = res.Result
	r.pass = withinTolerance(res.Result, fx.example.Expected)
	return r
}

// withinTolerance compares with relative tolerance, falling back to an
// absolute check near zero.
func withinTolerance(got, want float64) bool {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff < 1e-9
	}
	return diff/math.Abs(want) <= relTolerance
}

func statusMark(pass bool) string {
	if pass {
		return "✓"
	}
	return "✗"
}
