package hierarchy

import "math"

// Tiling selects how TreemapLayout partitions a rectangle among
// children.
type Tiling int

const (
	TileBinary Tiling = iota
	TileDice
	TileSlice
	TileSliceDice
	TileSquarify
)

// TreemapConfig parameterizes TreemapLayout.
type TreemapConfig struct {
	Tiling Tiling
	PaddingInner float64
	PaddingOuter float64
	PaddingTop float64
	PaddingRight float64
	PaddingBottom float64
	PaddingLeft float64
}

// TreemapLayout partitions [x0,y0,x1,y1] among root's descendants in
// proportion to their cumulative Sum (set by Prepare), writing results
// into each node's X0/Y0/X1/Y1.
func TreemapLayout(root *Node, x0, y0, x1, y1 float64, cfg TreemapConfig) {
	Prepare(root)
	tile(root, x0, y0, x1, y1, cfg, 0)
}

func tile(n *Node, x0, y0, x1, y1 float64, cfg TreemapConfig, depth int) {
	n.X0, n.Y0, n.X1, n.Y1 = x0, y0, x1, y1
	x0, y0, x1, y1 = applyOuterPadding(n, x0, y0, x1, y1, cfg)
	if len(n.Children) == 0 {
		return
	}
	method := cfg.Tiling
	if method == TileSliceDice {
		if depth%2 == 0 {
			method = TileSlice
		} else {
			method = TileDice
		}
	}
	switch method {
	case TileDice:
		diceChildren(n.Children, x0, y0, x1, y1, n.Sum, cfg)
	case TileSlice:
		sliceChildren(n.Children, x0, y0, x1, y1, n.Sum, cfg)
	case TileBinary:
		binaryTile(n.Children, x0, y0, x1, y1, n.Sum)
	default:
		squarify(n.Children, x0, y0, x1, y1, n.Sum, cfg)
	}
	for _, c := range n.Children {
		tile(c, c.X0, c.Y0, c.X1, c.Y1, cfg, depth+1)
	}
}

func applyOuterPadding(n *Node, x0, y0, x1, y1 float64, cfg TreemapConfig) (float64, float64, float64, float64) {
	if len(n.Children) == 0 {
		return x0, y0, x1, y1
	}
	pad := cfg.PaddingOuter
	top, right, bottom, left := pad, pad, pad, pad
	if cfg.PaddingTop > 0 {
		top = cfg.PaddingTop
	}
	if cfg.PaddingRight > 0 {
		right = cfg.PaddingRight
	}
	if cfg.PaddingBottom > 0 {
		bottom = cfg.PaddingBottom
	}
	if cfg.PaddingLeft > 0 {
		left = cfg.PaddingLeft
	}
	return x0 + left, y0 + top, x1 - right, y1 - bottom
}

func diceChildren(children []*Node, x0, y0, x1, y1, total float64, cfg TreemapConfig) {
	x := x0
	width := x1 - x0
	for _, c := range children {
		frac := safeFrac(c.Sum, total)
		cx1 := x + frac*width
		c.X0, c.Y0, c.X1, c.Y1 = x, y0, cx1, y1
		shrinkInner(c, cfg.PaddingInner)
		x = cx1
	}
}

func sliceChildren(children []*Node, x0, y0, x1, y1, total float64, cfg TreemapConfig) {
	y := y0
	height := y1 - y0
	for _, c := range children {
		frac := safeFrac(c.Sum, total)
		cy1 := y + frac*height
		c.X0, c.Y0, c.X1, c.Y1 = x0, y, x1, cy1
		shrinkInner(c, cfg.PaddingInner)
		y = cy1
	}
}

func shrinkInner(n *Node, pad float64) {
	if pad <= 0 {
		return
	}
	n.X0 += pad / 2
	n.Y0 += pad / 2
	n.X1 -= pad / 2
	n.Y1 -= pad / 2
}

func safeFrac(v, total float64) float64 {
	if total == 0 {
		return 0
	}
	return v / total
}

// binaryTile recursively splits along the longer side at the
// weighted median.
func binaryTile(children []*Node, x0, y0, x1, y1, total float64) {
	if len(children) == 1 {
		children[0].X0, children[0].Y0, children[0].X1, children[0].Y1 = x0, y0, x1, y1
		return
	}
	half := total / 2
	var sum float64
	split := 1
	for i, c := range children {
		sum += c.Sum
		if sum >= half {
			split = i + 1
			break
		}
	}
	if split >= len(children) {
		split = len(children) - 1
	}
	left, right := children[:split], children[split:]
	var leftSum float64
	for _, c := range left {
		leftSum += c.Sum
	}
	frac := safeFrac(leftSum, total)
	if x1-x0 >= y1-y0 {
		mx := x0 + frac*(x1-x0)
		binaryTile(left, x0, y0, mx, y1, leftSum)
		binaryTile(right, mx, y0, x1, y1, total-leftSum)
	} else {
		my := y0 + frac*(y1-y0)
		binaryTile(left, x0, y0, x1, my, leftSum)
		binaryTile(right, x0, my, x1, y1, total-leftSum)
	}
}

// squarify implements the Bruls/Huizing/van Wijk squarified treemap:
// extend the current row until adding the next child would worsen the
// worst aspect ratio, then commit the row and start a new one.
func squarify(children []*Node, x0, y0, x1, y1, total float64, cfg TreemapConfig) {
	remaining := append([]*Node(nil), children...)
	rest := total
	for len(remaining) > 0 {
		width, height := x1-x0, y1-y0
		short := math.Min(width, height)

		area := width * height

		row := []*Node{remaining[0]}
		rowSum := remaining[0].Sum
		best := worstRatio(row, rowSum, short, area, rest)
		i := 1
		for i < len(remaining) {
			candidate := append(append([]*Node(nil), row...), remaining[i])
			candSum := rowSum + remaining[i].Sum
			ratio := worstRatio(candidate, candSum, short, area, rest)
			if ratio > best {
				break
			}
			row, rowSum, best = candidate, candSum, ratio
			i++
		}
		remaining = remaining[i:]

		rowFrac := safeFrac(rowSum, rest)
		if width >= height {
			colWidth := rowFrac * width
			placeColumn(row, x0, y0, colWidth, height, rowSum, cfg)
			x0 += colWidth
		} else {
			rowH := rowFrac * height
			placeRow(row, x0, y0, width, rowH, rowSum, cfg)
			y0 += rowH
		}
		rest -= rowSum
	}
}

func placeColumn(row []*Node, x0, y0, w, h, rowSum float64, cfg TreemapConfig) {
	y := y0
	for _, c := range row {
		frac := safeFrac(c.Sum, rowSum)
		ch := frac * h
		c.X0, c.Y0, c.X1, c.Y1 = x0, y, x0+w, y+ch
		shrinkInner(c, cfg.PaddingInner)
		y += ch
	}
}

func placeRow(row []*Node, x0, y0, w, h, rowSum float64, cfg TreemapConfig) {
	x := x0
	for _, c := range row {
		frac := safeFrac(c.Sum, rowSum)
		cw := frac * w
		c.X0, c.Y0, c.X1, c.Y1 = x, y0, x+cw, y0+h
		shrinkInner(c, cfg.PaddingInner)
		x += cw
	}
}

// worstRatio returns the worst (largest) width/height aspect ratio
// among row's rectangles if the whole row were laid out as one band
// along the given short side of a rectangle of the given area, each
// child area-proportional to its Sum within total.
func worstRatio(row []*Node, rowSum, shortSide, rectArea, total float64) float64 {
	if shortSide == 0 || rowSum == 0 || total == 0 {
		return math.Inf(1)
	}
	rowArea := safeFrac(rowSum, total) * rectArea
	if rowArea <= 0 {
		return math.Inf(1)
	}
	thick := rowArea / shortSide
	var worst float64
	for _, c := range row {
		childArea := safeFrac(c.Sum, total) * rectArea
		if childArea <= 0 {
			continue
		}
		length := childArea / thick
		ratio := math.Max(length/thick, thick/length)
		if ratio > worst {
			worst = ratio
		}
	}
	return worst
}
