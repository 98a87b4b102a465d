package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNiceStep(t *testing.T) {
	cases := []struct {
		span    float64
		count   int
		want    float64
	}{
		{0, 10, 1},
		{100, 0, 1},
		{95, 10, 10},
		{19, 10, 2},
		{11, 10, 2},
		{1000, 10, 100},
	}
	for _, c := range cases {
		got := NiceStep(c.span, c.count)
		assert.InDeltaf(t, c.want, got, 1e-9, "NiceStep(%v,%v)", c.span, c.count)
	}
}

func TestNiceBounds(t *testing.T) {
	lo, hi := NiceBounds(3, 97)
	assert.LessOrEqual(t, lo, 3.0)
	assert.GreaterOrEqual(t, hi, 97.0)

	lo, hi = NiceBounds(5, 5)
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 6.0, hi)
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:        "0",
		1234.5:   "1234",
		50:       "50",
		1.5:      "1.5",
		0.5:      "0.5",
		0.00012:  "0",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%v)", in)
	}
	assert.Equal(t, "1e+9", FormatNumber(1e9))
	assert.Equal(t, "1e-5", FormatNumber(0.00001))
	assert.Contains(t, FormatNumber(nan()), "NaN")
}

func nan() float64 {
	var z float64
	return z / z
}

func TestFormatSI(t *testing.T) {
	assert.Equal(t, "1k", FormatSI(1000))
	assert.Equal(t, "1.5k", FormatSI(1500))
	assert.Equal(t, "1M", FormatSI(1e6))
	assert.Equal(t, "500m", FormatSI(0.5))
	assert.Equal(t, "0", FormatSI(0))
}

func TestFormatPercentCurrency(t *testing.T) {
	assert.Equal(t, "50%", FormatPercent(0.5, 0))
	assert.Equal(t, "$1234.50", FormatCurrency(1234.5, "$", 2))
	assert.Equal(t, "-$5.00", FormatCurrency(-5, "$", 2))
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 10, 5)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, got)
	assert.Nil(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(10, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}
