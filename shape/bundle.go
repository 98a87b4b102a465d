package shape

import "github.com/aclements/chartcore/path"

// Edge is an endpoint pair for BundleEdges, referencing node positions
// directly rather than indices so it composes with any layout source
// (hierarchy, force, or caller-supplied coordinates).
type Edge struct {
	From, To point
	// ControlPath is the hierarchy path between From and To (e.g. the
	// tree ancestors shared on the way from From to To); BundleEdges
	// pulls the curve toward these intermediate points.
	ControlPath []point
}

// NewEdge constructs an Edge between two plane coordinates with an
// optional control path.
func NewEdge(fromX, fromY, toX, toY float64, controlX, controlY []float64) Edge {
	e := Edge{From: point{fromX, fromY}, To: point{toX, toY}}
	for i := range controlX {
		e.ControlPath = append(e.ControlPath, point{controlX[i], controlY[i]})
	}
	return e
}

// BundleEdges implements Holten's hierarchical edge bundling: each
// edge is drawn as a basis spline through its ControlPath, pulled
// toward that path by beta in [0,1] (0 = straight line, 1 = follow the
// control path exactly).
func BundleEdges(edges []Edge, beta float64) []path.Path {
	out := make([]path.Path, len(edges))
	for i, e := range edges {
		out[i] = bundleOne(e, beta)
	}
	return out
}

func bundleOne(e Edge, beta float64) path.Path {
	full := append([]point{e.From}, e.ControlPath...)
	full = append(full, e.To)
	if len(full) < 3 {
		var p path.Path
		p = p.MoveTo(e.From.X, e.From.Y)
		return p.LineTo(e.To.X, e.To.Y)
	}
	n := len(full)
	straightened := make([]point, n)
	for i, pt := range full {
		t := float64(i) / float64(n-1)
		straightX := e.From.X + (e.To.X-e.From.X)*t
		straightY := e.From.Y + (e.To.Y-e.From.Y)*t
		straightened[i] = point{
			X: beta*pt.X + (1-beta)*straightX,
			Y: beta*pt.Y + (1-beta)*straightY,
		}
	}
	return curveSegments(path.Path{}, straightened, CurveBasis, 0)
}
