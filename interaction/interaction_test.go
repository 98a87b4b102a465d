package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyInvertRoundTrip(t *testing.T) {
	tr := Transform{K: 2.5, X: 30, Y: -12}
	x, y := tr.Apply(7, 9)
	ix, iy := tr.Invert(x, y)
	assert.InDelta(t, 7, ix, 1e-9)
	assert.InDelta(t, 9, iy, 1e-9)

	px, py := 100.0, 200.0
	vx, vy := tr.Invert(px, py)
	ax, ay := tr.Apply(vx, vy)
	assert.InDelta(t, px, ax, 1e-9)
	assert.InDelta(t, py, ay, 1e-9)
}

func TestComposeAssociative(t *testing.T) {
	a := Transform{K: 1.5, X: 10, Y: 5}
	b := Transform{K: 0.8, X: -4, Y: 2}
	c := Transform{K: 1.1, X: 3, Y: -7}

	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	assert.InDelta(t, left.K, right.K, 1e-9)
	assert.InDelta(t, left.X, right.X, 1e-9)
	assert.InDelta(t, left.Y, right.Y, 1e-9)
}

func TestComposeIdentity(t *testing.T) {
	tr := Transform{K: 1.7, X: 5, Y: -3}
	assert.Equal(t, tr, Compose(tr, Identity))
	assert.Equal(t, tr, Compose(Identity, tr))
}

func TestRescaleRecoversDomain(t *testing.T) {
	tr := Transform{K: 2, X: 50}
	d0, d1 := tr.Rescale(0, 100, 0, 200)
	assert.InDelta(t, -12.5, d0, 1e-9)
	assert.InDelta(t, 37.5, d1, 1e-9)
}

func TestWheelZoomAroundFixedPoint(t *testing.T) {
	b := NewBehavior()
	cur := Identity
	next := b.Wheel(cur, 50, 50, 1)
	fx, fy := next.Apply(50, 50)
	assert.InDelta(t, 50, fx, 1e-9)
	assert.InDelta(t, 50, fy, 1e-9)
	assert.Greater(t, next.K, cur.K)
}

func TestScaleExtentClamps(t *testing.T) {
	b := NewBehavior()
	b.ScaleExtent = ScaleExtent{Min: 1, Max: 4}
	next := Identity
	for i := 0; i < 50; i++ {
		next = b.Wheel(next, 0, 0, 1)
	}
	assert.LessOrEqual(t, next.K, 4.0)
}

func TestPanRespectsEnableFlags(t *testing.T) {
	b := NewBehavior()
	b.EnableY = false
	next := b.Pan(Identity, 10, 10)
	assert.Equal(t, 10.0, next.X)
	assert.Equal(t, 0.0, next.Y)
}

func TestBrushSelectDragMovesToMoving(t *testing.T) {
	br := NewBrush()
	br.HandleStart(10, 10)
	br.HandleMove(50, 40)
	br.HandleEnd()
	assert.Equal(t, BrushIdle, br.State)
	assert.Equal(t, Selection{X0: 10, Y0: 10, X1: 50, Y1: 40}, br.Selection)

	br.HandleStart(30, 25)
	assert.Equal(t, BrushMoving, br.State)
	br.HandleMove(40, 35)
	assert.Equal(t, Selection{X0: 20, Y0: 20, X1: 60, Y1: 50}, br.Selection)
	br.HandleEnd()
	assert.Equal(t, BrushIdle, br.State)
}

func TestBrushResizeViaHandle(t *testing.T) {
	br := NewBrush()
	br.HandleStart(10, 10)
	br.HandleMove(50, 50)
	br.HandleEnd()

	br.HandleStart(50, 50) // near SE corner
	assert.Equal(t, BrushResizing, br.State)
	assert.Equal(t, HandleSE, br.Handle)
	br.HandleMove(70, 80)
	assert.Equal(t, Selection{X0: 10, Y0: 10, X1: 70, Y1: 80}, br.Selection)
	br.HandleEnd()
	assert.Equal(t, BrushIdle, br.State)
}

func TestBrushMoveClampedToExtent(t *testing.T) {
	br := NewBrush()
	br.Extent = &Extent{X0: 0, Y0: 0, X1: 100, Y1: 100}
	br.HandleStart(10, 10)
	br.HandleMove(30, 30)
	br.HandleEnd()

	br.HandleStart(20, 20)
	br.HandleMove(200, 200)
	assert.Equal(t, Selection{X0: 80, Y0: 80, X1: 100, Y1: 100}, br.Selection)
}

func TestPlaceTooltipFlipsWhenNoRoomAbove(t *testing.T) {
	_, py := PlaceTooltip(50, 5, 40, 20, 800, 600, TooltipAuto, 4)
	assert.GreaterOrEqual(t, py, 0.0)
	assert.Greater(t, py, 5.0) // flipped below since above would go negative

	px2, py2 := PlaceTooltip(50, 300, 40, 20, 800, 600, TooltipAuto, 4)
	assert.Less(t, py2, 300.0) // plenty of room above, prefers it
	assert.GreaterOrEqual(t, px2, 4.0)
}

func TestPlaceTooltipClampsHorizontally(t *testing.T) {
	px, _ := PlaceTooltip(798, 300, 40, 20, 800, 600, TooltipAuto, 4)
	assert.LessOrEqual(t, px+40, 796.0)
}
