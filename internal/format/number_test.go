package format_test

import (
	"strconv"
	"strings"
	"testing"

	"slipstick/internal/format"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"integer", 125, "125"},
		{"trailing zeros stripped", 4.4, "4.4"},
		{"six decimals kept", 0.004219, "0.004219"},
		{"rounds at six decimals", 1.0000004, "1"},
		{"small switches to scientific", 0.0001, "1.0000e-04"},
		{"boundary stays fixed", 0.001, "0.001"},
		{"large switches to scientific", 10000000, "1.0000e+07"},
		{"just below large boundary", 999999.5, "999999.5"},
		{"negative large", -2500000, "-2.5000e+06"},
		{"negative small", -0.00005, "-5.0000e-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.Number(tt.in); got != tt.want {
				t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Formatting must be stable under a render/parse round trip so derivation
// steps and final results can be compared textually.
func TestNumber_Idempotent(t *testing.T) {
	for _, v := range []float64{1e-5, 0.5, 1234.5, 1e7, 0.000123, 123456.789, -42.42} {
		first := format.Number(v)
		parsed, err := strconv.ParseFloat(first, 64)
		if err != nil {
			t.Fatalf("Number(%v) = %q is not parseable: %v", v, first, err)
		}
		if second := format.Number(parsed); second != first {
			t.Errorf("Number not idempotent for %v: %q then %q", v, first, second)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := format.Percent(0.85); got != "85.0%" {
		t.Errorf("Percent(0.85) = %q, want 85.0%%", got)
	}
	if got := format.Percent(1); got != "100.0%" {
		t.Errorf("Percent(1) = %q, want 100.0%%", got)
	}
}

func TestTable_ASCII(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("ID", "Result")
	tb.Row("ohms-law", "4.4")
	out := tb.String()
	if !strings.Contains(out, "ohms-law") || !strings.Contains(out, "4.4") {
		t.Errorf("missing cell content in output:\n%s", out)
	}
}

func TestTable_Markdown(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("ID", "Result")
	tb.Row("ohms-law", "4.4")
	out := tb.String()
	if !strings.Contains(out, "| ohms-law") {
		t.Errorf("expected markdown row in output:\n%s", out)
	}
}
