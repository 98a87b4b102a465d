package geo

import (
	"math"
	"testing"

	"github.com/aclements/chartcore/path"
	"github.com/stretchr/testify/assert"
)

func TestEquirectangularIdentity(t *testing.T) {
	p := Equirectangular()
	p.Scale = 1
	x, y, ok := p.Forward(45, 10)
	assert.True(t, ok)
	assert.InDelta(t, deg2rad(45), x, 1e-9)
	assert.InDelta(t, deg2rad(10), y, 1e-9)
}

func TestMercatorClampsLatitude(t *testing.T) {
	p := Mercator()
	_, y1, ok1 := p.Forward(0, 89)
	_, y2, ok2 := p.Forward(0, 85.05113)
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.InDelta(t, y1, y2, 1e-3)
}

func TestOrthographicCullsFarHemisphere(t *testing.T) {
	p := Orthographic()
	_, _, ok := p.Forward(0, 0)
	assert.True(t, ok)
	_, _, ok = p.Forward(180, 0)
	assert.False(t, ok)
}

func TestAlbersProducesFiniteOutput(t *testing.T) {
	p := Albers()
	x, y, ok := p.Forward(-96, 37.5)
	assert.True(t, ok)
	assert.False(t, math.IsNaN(x))
	assert.False(t, math.IsNaN(y))
}

func TestProjectFeaturePolygonClosesRings(t *testing.T) {
	f := Feature{Geometry: Geometry{
		Type: GeometryPolygon,
		Rings: [][]Position{{
			{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
		}},
	}}
	result, err := ProjectFeature(f, Equirectangular())
	assert.NoError(t, err)
	assert.Equal(t, path.MoveTo, result.Path[0].Op)
	assert.Equal(t, path.Close, result.Path[len(result.Path)-1].Op)
	assert.Greater(t, result.Bounds.MaxX, result.Bounds.MinX)
}

func TestProjectCollectionGeometryCollection(t *testing.T) {
	fc := FeatureCollection{Features: []Feature{{
		Geometry: Geometry{Type: GeometryCollection, Geometries: []Geometry{
			{Type: GeometryPoint, Coord: Position{Lon: 0, Lat: 0}},
			{Type: GeometryLineString, Line: []Position{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}},
		}},
	}}}
	results, err := ProjectCollection(fc, Equirectangular())
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Path)
}
