package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinearBasic(t *testing.T) {
	s := NewLinear(0, 100, 0, 500)
	assert.Equal(t, 0.0, s.Scale(0))
	assert.Equal(t, 250.0, s.Scale(50))
	assert.Equal(t, 500.0, s.Scale(100))
	assert.Equal(t, 50.0, s.Invert(250))
}

func TestLinearInvertRoundTrip(t *testing.T) {
	s := NewLinear(-10, 42, 0, 800)
	for v := -10.0; v <= 42; v += 1.3 {
		got := s.Invert(s.Scale(v))
		assert.InDelta(t, v, got, 1e-9)
	}
}

func TestLinearMonotonic(t *testing.T) {
	s := NewLinear(0, 10, 0, 100)
	assert.GreaterOrEqual(t, s.Scale(5), s.Scale(4))
}

func TestLinearTicksEmptyOnNegativeStep(t *testing.T) {
	s := NewLinear(0, 0, 0, 100)
	s.D1 = 0
	ticks := s.Ticks(TickOptions{StepSize: 0})
	// span is 0 so NiceStep returns 1, so ticks are not necessarily
	// empty; verify instead that an explicit non-positive step
	// yields no ticks.
	ticks = s.Ticks(TickOptions{StepSize: -1})
	assert.Empty(t, ticks)
}

func TestBandWithInnerPadding(t *testing.T) {
	s := NewBand([]string{"A", "B", "C", "D"}, 0, 400).WithPaddingInner(0.2)
	assert.InDelta(t, 105.26, s.Step(), 0.01)
	assert.InDelta(t, 84.21, s.Bandwidth(), 0.01)
	assert.InDelta(t, 0, s.Scale("A"), 0.01)
	assert.InDelta(t, 105.26, s.Scale("B"), 0.01)
	assert.InDelta(t, 210.53, s.Scale("C"), 0.01)
	assert.InDelta(t, 315.79, s.Scale("D"), 0.01)
}

func TestBandAdjacentStep(t *testing.T) {
	s := NewBand([]string{"A", "B", "C"}, 0, 300)
	for i := 0; i < 1; i++ {
		diff := s.ScaleIndex(i+1) - s.ScaleIndex(i)
		assert.InDelta(t, s.Step(), diff, 1e-9)
	}
	assert.InDelta(t, s.Step()*(1-s.PaddingInner), s.Bandwidth(), 1e-9)
}

func TestPointSinglePointCentered(t *testing.T) {
	p := NewPoint([]string{"only"}, 0, 100)
	assert.Equal(t, 50.0, p.Scale("only"))
}

func TestTimeScaleMonthTicks(t *testing.T) {
	d0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewTime(d0, d1, 0, 1200)
	ticks := s.Ticks(TickOptions{Count: 12})
	assert.GreaterOrEqual(t, len(ticks), 11)
	assert.Contains(t, ticks[0].Label, "2024")
}

func TestLogScaleBasics(t *testing.T) {
	s := NewLog(1, 1000, 0, 300, 10)
	assert.InDelta(t, 0, s.Scale(1), 1e-9)
	assert.InDelta(t, 300, s.Scale(1000), 1e-9)
	got := s.Invert(s.Scale(42))
	assert.InDelta(t, 42, got, 1e-6)
}

func TestLogTicksOneDecadeInterleaves(t *testing.T) {
	s := NewLog(1, 10, 0, 100, 10)
	ticks := s.Ticks(TickOptions{MinCount: 5})
	assert.GreaterOrEqual(t, len(ticks), 3)
}

func TestPowPreservesSign(t *testing.T) {
	s := NewPow(-100, 100, -50, 50, 0.5)
	assert.Less(t, s.Scale(-1), s.Scale(0))
	assert.Less(t, s.Scale(0), s.Scale(1))
}

func TestSymlogDefinedAtZero(t *testing.T) {
	s := NewSymlog(-100, 100, -50, 50, 1)
	got := s.Scale(0)
	assert.InDelta(t, 0, got, 1)
	assert.False(t, math.IsNaN(s.Invert(s.Scale(5))))
}

func TestQuantize(t *testing.T) {
	q := NewQuantize(0, 100, []string{"low", "mid", "high"})
	assert.Equal(t, "low", q.Map(10))
	assert.Equal(t, "mid", q.Map(50))
	assert.Equal(t, "high", q.Map(99))
}

func TestQuantile(t *testing.T) {
	q := NewQuantile([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []string{"a", "b"})
	assert.Equal(t, "a", q.Map(1))
	assert.Equal(t, "b", q.Map(10))
}

func TestThresholdInvertExtent(t *testing.T) {
	th := NewThreshold([]float64{0, 10}, []string{"neg", "small", "big"})
	assert.Equal(t, "neg", th.Map(-5))
	assert.Equal(t, "small", th.Map(5))
	assert.Equal(t, "big", th.Map(50))
	lo, hi := th.InvertExtent(1)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)
}

func TestSequentialInvertIsNaN(t *testing.T) {
	s := NewSequential(0, 1, func(t float64) float64 { return t })
	assert.True(t, math.IsNaN(s.Invert(0.5)))
	assert.Equal(t, 0.5, s.Map(0.5))
}

func TestCategoricalCyclesPalette(t *testing.T) {
	c := NewCategorical([]string{"red", "green"})
	assert.Equal(t, "red", c.Map("a"))
	assert.Equal(t, "green", c.Map("b"))
	assert.Equal(t, "red", c.Map("c"))
	assert.Equal(t, "red", c.Map("a"))
}
