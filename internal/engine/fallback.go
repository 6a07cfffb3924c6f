package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/expr-lang/expr"

	"slipstick/internal/catalog"
)

// ErrNotEvaluable marks the fatal evaluation path: the fallback expression
// could not be turned into a finite number. Callers can errors.Is against
// it; the wrapped message always names the formula id and the cause.
var ErrNotEvaluable = errors.New("not evaluable")

// fallbackEnv is the math vocabulary available to fallback expressions.
var fallbackEnv = map[string]any{
	"pi":    math.Pi,
	"e":     math.E,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"abs":   math.Abs,
	"pow":   math.Pow,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
}

// glyphs maps the display-notation characters the catalog uses onto
// expression syntax. Applied after symbol substitution so Unicode symbols
// survive intact until they are replaced by numbers.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"·", "*",
	"−", "-",
	"√", "sqrt",
	"π", "pi",
	"²", "^2",
	"³", "^3",
	"⁴", "^4",
	"½", "(1/2)*",
)

// evalFallback evaluates a formula with no registered procedure by textual
// substitution into its display expression. This is the only way
// user-authored formulas produce a number. Symbols absent from the context
// stay in the text and fail evaluation with a descriptive error; they are
// never silently treated as zero.
func evalFallback(f *catalog.Formula, ctx Context) (float64, []string, error) {
	src := substitute(f.Expr, ctx)

	program, err := expr.Compile(src, expr.Env(fallbackEnv))
	if err != nil {
		return 0, nil, fmt.Errorf("formula %q: cannot evaluate %q: %w: %w", f.ID, src, ErrNotEvaluable, err)
	}
	out, err := expr.Run(program, fallbackEnv)
	if err != nil {
		return 0, nil, fmt.Errorf("formula %q: cannot evaluate %q: %w: %w", f.ID, src, ErrNotEvaluable, err)
	}

	var result float64
	switch v := out.(type) {
	case float64:
		result = v
	case int:
		result = float64(v)
	case int64:
		result = float64(v)
	default:
		return 0, nil, fmt.Errorf("formula %q: cannot evaluate %q: %w: result %v is not numeric", f.ID, src, ErrNotEvaluable, out)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, nil, fmt.Errorf("formula %q: cannot evaluate %q: %w: result is not finite", f.ID, src, ErrNotEvaluable)
	}

	return result, []string{"Substituted: " + src}, nil
}

// substitute strips the assignment head from the display expression,
// replaces every context symbol (longest first, at token boundaries) with
// its numeric value, and rewrites display glyphs into expression syntax.
func substitute(display string, ctx Context) string {
	s := display
	if i := strings.Index(s, "="); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)

	symbols := make([]string, 0, len(ctx))
	for sym := range ctx {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool {
		if len(symbols[i]) != len(symbols[j]) {
			return len(symbols[i]) > len(symbols[j])
		}
		return symbols[i] < symbols[j]
	})
	for _, sym := range symbols {
		repl := "(" + strconv.FormatFloat(ctx[sym], 'g', -1, 64) + ")"
		s = replaceToken(s, sym, repl)
	}

	return glyphs.Replace(s)
}

// replaceToken replaces occurrences of sym in s that are not embedded in a
// longer token. Boundary runes are letters, digits (including Unicode
// sub/superscript numerals) and underscore.
func replaceToken(s, sym, repl string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, sym)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		before, _ := utf8.DecodeLastRuneInString(s[:i])
		after, _ := utf8.DecodeRuneInString(s[i+len(sym):])
		if wordRune(before) || wordRune(after) {
			b.WriteString(s[:i+len(sym)])
		} else {
			b.WriteString(s[:i])
			b.WriteString(repl)
		}
		s = s[i+len(sym):]
	}
}

func wordRune(r rune) bool {
	if superscript(r) {
		// exponent notation (x²), not part of the symbol token
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsNumber(r) || r == '_'
}

func superscript(r rune) bool {
	return r == '¹' || r == '²' || r == '³' || (r >= '⁰' && r <= '⁹')
}
