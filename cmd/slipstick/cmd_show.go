package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slipstick/internal/display"
	"slipstick/internal/format"
)

var showFlags struct {
	markdown bool
}

var showCmd = &cobra.Command{
	Use:   "show <formula-id>",
	Short: "Show one formula: variables, bounds, worked examples",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showFlags.markdown, "markdown", false, "Render tables as Markdown")
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog("")
	if err != nil {
		return err
	}
	f := cat.ByID(args[0])
	if f == nil {
		return fmt.Errorf("unknown formula id %q (try 'slipstick list')", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  (%s)\n", f.Name, f.ID)
	fmt.Fprintf(out, "Formula:    %s\n", f.Expr)
	if f.Description != "" {
		fmt.Fprintf(out, "About:      %s\n", f.Description)
	}
	fmt.Fprintf(out, "Discipline: %s / %s / %s\n",
		display.Discipline(f.Discipline), display.Category(f.Category), display.Difficulty(f.Difficulty))
	if f.Units != "" {
		fmt.Fprintf(out, "Result in:  %s\n", f.Units)
	}

	tb := format.NewTable(tableMode(showFlags.markdown))
	tb.Header("Symbol", "Name", "Unit", "Fixed", "Min", "Max")
	for i := range f.Variables {
		v := &f.Variables[i]
		tb.Row(v.Symbol, v.Name, v.Unit, optNum(v.Value), optNum(v.Min), optNum(v.Max))
	}
	fmt.Fprintln(out, tb.String())

	for _, ex := range f.Examples {
		fmt.Fprintf(out, "Example: %s -> %s", ex.Title, format.Number(ex.Expected))
		if f.Units != "" {
			fmt.Fprintf(out, " %s", f.Units)
		}
		fmt.Fprintln(out)
	}
	for _, ref := range f.References {
		fmt.Fprintf(out, "Ref: %s\n", ref)
	}
	return nil
}

func optNum(v *float64) string {
	if v == nil {
		return ""
	}
	return format.Number(*v)
}
