package geo

import (
	"math"

	"github.com/aclements/chartcore/cherr"
	"github.com/aclements/chartcore/path"
)

// GeometryType tags the variant of a Geometry per RFC 7946.
type GeometryType int

const (
	GeometryPoint GeometryType = iota
	GeometryMultiPoint
	GeometryLineString
	GeometryMultiLineString
	GeometryPolygon
	GeometryMultiPolygon
	GeometryCollection
)

// Position is a (longitude, latitude) pair, RFC 7946 coordinate order.
type Position struct{ Lon, Lat float64 }

// Geometry is one GeoJSON geometry value. Which fields are populated
// depends on Type: Point uses Coord, MultiPoint/LineString use Line,
// MultiLineString/Polygon use Rings (Polygon's outer ring first),
// MultiPolygon uses Polygons, GeometryCollection uses Geometries.
type Geometry struct {
	Type GeometryType
	Coord Position
	Line []Position
	Rings [][]Position
	Polygons [][][]Position
	Geometries []Geometry
}

// Feature pairs a Geometry with arbitrary properties, referenced by
// name only since property values are consumer-defined.
type Feature struct {
	Geometry Geometry
	Properties map[string]interface{}
}

// FeatureCollection is an ordered sequence of Features.
type FeatureCollection struct {
	Features []Feature
}

// BBox is a bounding box in projected plane space, computed while the
// path is emitted (not deferred until first use).
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func emptyBBox() BBox {
	return BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

func (b *BBox) extend(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// PathResult is one Feature's emitted path plus the bounding box of
// its projected vertices, filled in during projection.
type PathResult struct {
	Path path.Path
	Bounds BBox
}

// ProjectCollection walks a FeatureCollection and projects every
// coordinate through p, emitting one PathResult per Feature in order.
// MoveTo starts each ring/line, LineTo continues it, Close ends each
// polygon ring.
func ProjectCollection(fc FeatureCollection, p *Projection) ([]PathResult, error) {
	out := make([]PathResult, len(fc.Features))
	for i, f := range fc.Features {
		pr, err := ProjectFeature(f, p)
		if err != nil {
			return nil, cherr.Wrap(cherr.ParseError, err, "feature %d", i)
		}
		out[i] = pr
	}
	return out, nil
}

// ProjectFeature projects a single Feature's geometry.
func ProjectFeature(f Feature, p *Projection) (PathResult, error) {
	var result path.Path
	bounds := emptyBBox()
	if err := projectGeometry(f.Geometry, p, &result, &bounds); err != nil {
		return PathResult{}, err
	}
	return PathResult{Path: result, Bounds: bounds}, nil
}

func projectGeometry(g Geometry, p *Projection, out *path.Path, bounds *BBox) error {
	switch g.Type {
	case GeometryPoint:
		x, y, ok := p.Forward(g.Coord.Lon, g.Coord.Lat)
		if !ok {
			return cherr.New(cherr.ParseError, "point projects outside the visible hemisphere")
		}
		*out = out.MoveTo(x, y)
		bounds.extend(x, y)
	case GeometryMultiPoint, GeometryLineString:
		projectLine(g.Line, p, out, bounds)
	case GeometryMultiLineString:
		for _, line := range g.Rings {
			projectLine(line, p, out, bounds)
		}
	case GeometryPolygon:
		for _, ring := range g.Rings {
			projectRing(ring, p, out, bounds)
		}
	case GeometryMultiPolygon:
		for _, poly := range g.Polygons {
			for _, ring := range poly {
				projectRing(ring, p, out, bounds)
			}
		}
	case GeometryCollection:
		for _, sub := range g.Geometries {
			if err := projectGeometry(sub, p, out, bounds); err != nil {
				return err
			}
		}
	}
	return nil
}

func projectLine(line []Position, p *Projection, out *path.Path, bounds *BBox) {
	started := false
	for _, pos := range line {
		x, y, ok := p.Forward(pos.Lon, pos.Lat)
		if !ok {
			continue
		}
		if !started {
			*out = out.MoveTo(x, y)
			started = true
		} else {
			*out = out.LineTo(x, y)
		}
		bounds.extend(x, y)
	}
}

func projectRing(ring []Position, p *Projection, out *path.Path, bounds *BBox) {
	projectLine(ring, p, out, bounds)
	*out = out.CloseOp()
}
