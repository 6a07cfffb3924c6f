package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slipstick/internal/engine"
	"slipstick/internal/format"
)

var evalFlags struct {
	inputs []string
	custom string
}

var evalCmd = &cobra.Command{
	Use:   "eval <formula-id> --in symbol=value ...",
	Short: "Evaluate a formula against named inputs",
	Long: `Evaluates one formula. Inputs are given per symbol; variables with a
fixed constant value must not be supplied (they are ignored if they are).
Out-of-range inputs produce advisory warnings, never a failure; the only
fatal case is a user-authored formula whose expression cannot be evaluated.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	f := evalCmd.Flags()
	f.StringArrayVar(&evalFlags.inputs, "in", nil, "Input as symbol=value (repeatable)")
	f.StringVar(&evalFlags.custom, "custom", "", "YAML file with user-authored formulas to append to the catalog")
}

func runEval(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(evalFlags.custom)
	if err != nil {
		return err
	}
	f := cat.ByID(args[0])
	if f == nil {
		return fmt.Errorf("unknown formula id %q (try 'slipstick list')", args[0])
	}

	inputs, err := parseInputs(evalFlags.inputs)
	if err != nil {
		return err
	}

	res, err := engine.Evaluate(f, inputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, step := range res.Steps {
		fmt.Fprintln(out, step)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	fmt.Fprintf(out, "Accuracy: %s\n", format.Percent(res.Accuracy))
	return nil
}
