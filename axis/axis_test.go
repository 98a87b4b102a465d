package axis

import (
	"testing"

	"github.com/aclements/chartcore/scale"
	"github.com/stretchr/testify/assert"
)

func TestBuildBottomAxis(t *testing.T) {
	s := scale.NewLinear(0, 100, 0, 500)
	layout := Build(s, Bottom, 600, scale.TickOptions{Count: 5}, Config{TickSizeInner: 6, TickPadding: 3})
	assert.NotEmpty(t, layout.Ticks)
	for _, tk := range layout.Ticks {
		assert.Equal(t, tk.TickStart.Y, 600.0)
		assert.Greater(t, tk.TickEnd.Y, tk.TickStart.Y)
		assert.Equal(t, Middle, tk.TextAnchor)
	}
}

func TestBuildLeftAxisAnchorsEnd(t *testing.T) {
	s := scale.NewLinear(0, 10, 500, 0)
	layout := Build(s, Left, 50, scale.TickOptions{Count: 5}, Config{TickSizeInner: 6})
	for _, tk := range layout.Ticks {
		assert.Equal(t, End, tk.TextAnchor)
		assert.Less(t, tk.TickEnd.X, tk.TickStart.X)
	}
}

func TestBandOffsetCentersTicks(t *testing.T) {
	s := scale.NewBand([]string{"a", "b", "c"}, 0, 300)
	layout := Build(s, Bottom, 0, scale.TickOptions{}, Config{})
	assert.Len(t, layout.Ticks, 3)
	assert.InDelta(t, s.ScaleIndex(0)+s.Bandwidth()/2, layout.Ticks[0].TickStart.X, 1e-9)
}

func TestGridLineEmission(t *testing.T) {
	s := scale.NewLinear(0, 10, 0, 100)
	layout := Build(s, Bottom, 50, scale.TickOptions{}, Config{GridLength: 40})
	for _, tk := range layout.Ticks {
		assert.NotNil(t, tk.GridEnd)
	}
}
