package hierarchy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareSumsAndDepths(t *testing.T) {
	root := &Node{Value: 0, Children: []*Node{
		{Value: 1},
		{Value: 2, Children: []*Node{{Value: 3}}},
	}}
	Prepare(root)
	assert.Equal(t, 6.0, root.Sum)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, 1, root.Children[1].Depth)
	assert.Equal(t, 2, root.Children[1].Children[0].Depth)
}

func TestTreeLayoutNoOverlapAtSameDepth(t *testing.T) {
	root := &Node{Children: []*Node{
		{Value: 1}, {Value: 1}, {Value: 1}, {Value: 1},
	}}
	TreeLayout(root, TreeConfig{Width: 400, Height: 200})
	xs := make([]float64, len(root.Children))
	for i, c := range root.Children {
		xs[i] = c.X0
	}
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}
}

func TestTreeLayoutParentCentered(t *testing.T) {
	root := &Node{Children: []*Node{
		{Value: 1}, {Value: 1}, {Value: 1},
	}}
	TreeLayout(root, TreeConfig{Width: 300, Height: 100})
	first, last := root.Children[0].X0, root.Children[len(root.Children)-1].X0
	mid := (first + last) / 2
	assert.InDelta(t, mid, root.X0, 1e-6)
}

func TestTreemapSquarifyAreaConservation(t *testing.T) {
	root := &Node{Children: []*Node{
		{Value: 10}, {Value: 20}, {Value: 30}, {Value: 40},
	}}
	TreemapLayout(root, 0, 0, 800, 600, TreemapConfig{Tiling: TileSquarify})
	var sum float64
	for _, c := range root.Children {
		sum += (c.X1 - c.X0) * (c.Y1 - c.Y0)
	}
	assert.InDelta(t, 480000, sum, 1)
}

func TestTreemapSquarifyBeatsSliceDiceAspect(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	squarifyRoot := &Node{}
	sliceDiceRoot := &Node{}
	for _, v := range values {
		squarifyRoot.Children = append(squarifyRoot.Children, &Node{Value: v})
		sliceDiceRoot.Children = append(sliceDiceRoot.Children, &Node{Value: v})
	}
	TreemapLayout(squarifyRoot, 0, 0, 800, 600, TreemapConfig{Tiling: TileSquarify})
	TreemapLayout(sliceDiceRoot, 0, 0, 800, 600, TreemapConfig{Tiling: TileSliceDice})

	maxAspect := func(root *Node) float64 {
		var worst float64
		for _, c := range root.Children {
			w, h := c.X1-c.X0, c.Y1-c.Y0
			ratio := math.Max(w/h, h/w)
			if ratio > worst {
				worst = ratio
			}
		}
		return worst
	}
	assert.LessOrEqual(t, maxAspect(squarifyRoot), maxAspect(sliceDiceRoot)+1e-6)
}

func TestTreemapDicePartitionsHorizontally(t *testing.T) {
	root := &Node{Children: []*Node{{Value: 1}, {Value: 1}}}
	TreemapLayout(root, 0, 0, 100, 50, TreemapConfig{Tiling: TileDice})
	assert.InDelta(t, 50, root.Children[0].X1-root.Children[0].X0, 1e-6)
	assert.InDelta(t, 50, root.Children[0].Y1-root.Children[0].Y0, 1e-6)
}

func TestPackLayoutNoOverlap(t *testing.T) {
	root := &Node{Children: []*Node{
		{Value: 10}, {Value: 20}, {Value: 15}, {Value: 5}, {Value: 30},
	}}
	PackLayout(root, PackConfig{Padding: 1})
	for i := 0; i < len(root.Children); i++ {
		for j := i + 1; j < len(root.Children); j++ {
			a, b := root.Children[i], root.Children[j]
			d := math.Hypot(a.X0-b.X0, a.Y0-b.Y0)
			assert.GreaterOrEqual(t, d+1e-6, a.X1+b.X1)
		}
	}
}

func TestPackLayoutEncloses(t *testing.T) {
	root := &Node{Children: []*Node{
		{Value: 10}, {Value: 20}, {Value: 15},
	}}
	PackLayout(root, PackConfig{})
	for _, c := range root.Children {
		d := math.Hypot(c.X0-root.X0, c.Y0-root.Y0)
		assert.LessOrEqual(t, d+c.X1, root.X1+1e-6)
	}
}
