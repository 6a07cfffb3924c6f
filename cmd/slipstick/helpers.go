package main

import (
	"fmt"
	"strconv"
	"strings"

	"slipstick/internal/catalog"
	"slipstick/internal/format"
)

// loadCatalog loads the embedded catalog plus an optional user-authored
// formula file.
func loadCatalog(customPath string) (*catalog.Catalog, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if customPath != "" {
		n, err := cat.LoadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("load custom formulas: %w", err)
		}
		if n == 0 {
			return nil, fmt.Errorf("no formulas found in %s", customPath)
		}
	}
	return cat, nil
}

// parseInputs turns repeated "symbol=value" flags into the input map.
func parseInputs(pairs []string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		sym, raw, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("input %q: want symbol=value", p)
		}
		sym = strings.TrimSpace(sym)
		if sym == "" {
			return nil, fmt.Errorf("input %q: empty symbol", p)
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", p, err)
		}
		inputs[sym] = val
	}
	return inputs, nil
}

// tableMode maps the --markdown flag to a format mode.
func tableMode(markdown bool) format.Mode {
	if markdown {
		return format.Markdown
	}
	return format.ASCII
}
