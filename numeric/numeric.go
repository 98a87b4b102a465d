// Package numeric provides the small set of pure numeric helpers the
// rest of chartcore builds on: nice-step rounding for tick spacing,
// bounds widening, and adaptive number/duration formatting.
//
// Every function here is deterministic and side-effect-free; none of
// them ever return an error.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// niceFactors are the only leading digits a "nice" step may have,
// per the {1, 2, 5} x 10^n rule.
var niceFactors = [...]float64{1, 2, 5, 10}

// NiceStep returns a step drawn from {1, 2, 5} x 10^n, chosen as the
// smallest such step that is >= span/targetCount. It returns 1 when
// span is zero, negative, or targetCount is zero.
func NiceStep(span float64, targetCount int) float64 {
	if span <= 0 || targetCount <= 0 {
		return 1
	}
	rawStep := span / float64(targetCount)
	mag := math.Pow(10, math.Floor(math.Log10(rawStep)))
	frac := rawStep / mag
	for _, f := range niceFactors {
		if frac <= f {
			return f * mag
		}
	}
	return 10 * mag
}

// NiceBounds derives step = NiceStep(hi-lo, 10) and returns
// (floor(lo/step)*step, ceil(hi/step)*step). When lo == hi, it
// returns (lo-1, hi+1).
func NiceBounds(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 1, hi + 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	step := NiceStep(hi-lo, 10)
	return math.Floor(lo/step) * step, math.Ceil(hi/step) * step
}

// FormatNumber formats x with an adaptive number of decimals: 0 for
// |x|>=1000, 1 for [10,1000), 2 for [0.1,10), 3 for [0.0001,0.1).
// Magnitudes >=1e9 or <1e-4 (and nonzero) use scientific notation.
// Trailing zeros are trimmed. Zero formats as "0"; Inf/NaN keep Go's
// textual forms.
func FormatNumber(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	if math.IsInf(x, 1) {
		return "+Inf"
	}
	if math.IsInf(x, -1) {
		return "-Inf"
	}
	if x == 0 {
		return "0"
	}

	abs := math.Abs(x)
	if abs >= 1e9 || abs < 1e-4 {
		return trimScientific(strconv.FormatFloat(x, 'e', 4, 64))
	}

	var decimals int
	switch {
	case abs >= 1000:
		decimals = 0
	case abs >= 10:
		decimals = 1
	case abs >= 1:
		decimals = 2
	case abs >= 0.1:
		decimals = 2
	default: // [0.0001, 0.1)
		decimals = 3
	}
	return trimTrailingZeros(strconv.FormatFloat(x, 'f', decimals, 64))
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func trimScientific(s string) string {
	// strconv's 'e' form is d.ddddeNN; trim trailing zeros in the
	// mantissa and normalize the exponent to drop a leading zero
	// and '+' sign, matching common chart-axis conventions.
	parts := strings.SplitN(s, "e", 2)
	if len(parts) != 2 {
		return s
	}
	mantissa := trimTrailingZeros(parts[0])
	exp := parts[1]
	sign := "+"
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		if exp[0] == '-' {
			sign = "-"
		}
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

type siPrefix struct {
	factor float64
	symbol string
}

// siPrefixes are ordered from largest to smallest magnitude so the
// search below finds the first prefix the value is under.
var siPrefixes = []siPrefix{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "μ"},
	{1e-9, "n"},
	{1e-12, "p"},
}

// FormatSI formats x using engineering prefixes (T, G, M, k, none, m,
// mu, n, p), picking the prefix for which the scaled magnitude lies
// in [1, 1000). It uses 2 decimals when the scaled value is <10, 1
// when <100, and 0 otherwise.
func FormatSI(x float64) string {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return FormatNumber(x)
	}
	abs := math.Abs(x)
	chosen := siPrefixes[len(siPrefixes)-1]
	for _, p := range siPrefixes {
		if abs >= p.factor {
			chosen = p
			break
		}
	}
	scaled := x / chosen.factor
	var decimals int
	switch {
	case math.Abs(scaled) < 10:
		decimals = 2
	case math.Abs(scaled) < 100:
		decimals = 1
	default:
		decimals = 0
	}
	return trimTrailingZeros(strconv.FormatFloat(scaled, 'f', decimals, 64)) + chosen.symbol
}

// FormatPercent formats x (a fraction, e.g. 0.5) as a percentage with
// the given number of decimals, e.g. FormatPercent(0.5, 0) == "50%".
func FormatPercent(x float64, decimals int) string {
	return strconv.FormatFloat(x*100, 'f', decimals, 64) + "%"
}

// FormatCurrency formats x with a fixed number of decimals and a
// currency symbol prefix, e.g. FormatCurrency(1234.5, "$", 2) ==
// "$1234.50".
func FormatCurrency(x float64, symbol string, decimals int) string {
	if x < 0 {
		return "-" + symbol + strconv.FormatFloat(-x, 'f', decimals, 64)
	}
	return symbol + strconv.FormatFloat(x, 'f', decimals, 64)
}

// Linspace returns n evenly spaced samples from lo to hi inclusive,
// mirroring go-moremath/vec.Linspace's use in ggstat for sampling
// continuous functions over a data-derived range.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
