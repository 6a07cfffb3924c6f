package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slipstick/internal/display"
	"slipstick/internal/format"
)

var listFlags struct {
	category   string
	discipline string
	markdown   bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog formulas",
	RunE:  runList,
}

func init() {
	f := listCmd.Flags()
	f.StringVar(&listFlags.category, "category", "", "Filter by category code (e.g. hydraulics)")
	f.StringVar(&listFlags.discipline, "discipline", "", "Filter by discipline code (e.g. civil)")
	f.BoolVar(&listFlags.markdown, "markdown", false, "Render as a Markdown table")
}

func runList(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog("")
	if err != nil {
		return err
	}

	matches := cat.Filter(listFlags.category, listFlags.discipline)
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No formulas match the given filters.")
		return nil
	}

	tb := format.NewTable(tableMode(listFlags.markdown))
	tb.Header("ID", "Name", "Discipline", "Category", "Difficulty", "Units")
	for _, f := range matches {
		tb.Row(f.ID, f.Name,
			display.Discipline(f.Discipline),
			display.Category(f.Category),
			display.Difficulty(f.Difficulty),
			f.Units)
	}
	tb.Footer("", fmt.Sprintf("%d formulas", len(matches)), "", "", "", "")

	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
