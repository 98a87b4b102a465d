// Package geo implements the lat/lon projections and GeoJSON path
// emission.
package geo

import "math"

// Kernel maps rotated spherical coordinates (radians) to the plane,
// before the shared scale/translate post-chain is applied. ok is
// false where the projection is undefined at that point (e.g. the far
// hemisphere in Orthographic).
type Kernel func(lambda, phi float64) (x, y float64, ok bool)

// Projection composes a Kernel with rotation, scale, and translation
// into a "rotate then kernel then scale/translate" chain, implemented
// as data rather than subclassing.
type Projection struct {
	Kernel Kernel
	CenterLon, CenterLat float64
	RotateLambda float64 // degrees
	RotatePhi float64
	RotateGamma float64
	Scale float64
	TranslateX, TranslateY float64
}

// NewProjection returns a Projection with Scale=150, centered on the
// origin and unrotated — typical defaults mirroring d3's.
func NewProjection(k Kernel) *Projection {
	return &Projection{Kernel: k, Scale: 150}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// rotate applies the 3-axis spherical rotation (lambda, phi, gamma)
// to (lon,lat), both in degrees, returning rotated radians.
func (p *Projection) rotate(lonDeg, latDeg float64) (float64, float64) {
	lambda := deg2rad(lonDeg) + deg2rad(p.RotateLambda)
	phi := deg2rad(latDeg)

	if p.RotatePhi == 0 && p.RotateGamma == 0 {
		return lambda, phi
	}
	deltaPhi := deg2rad(p.RotatePhi)
	deltaGamma := deg2rad(p.RotateGamma)

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	cosLambda, sinLambda := math.Cos(lambda), math.Sin(lambda)
	x := cosPhi * cosLambda
	y := cosPhi * sinLambda
	z := sinPhi

	cosDP, sinDP := math.Cos(deltaPhi), math.Sin(deltaPhi)
	y2 := y*cosDP - z*sinDP
	z2 := y*sinDP + z*cosDP
	x2 := x

	cosDG, sinDG := math.Cos(deltaGamma), math.Sin(deltaGamma)
	x3 := x2*cosDG + z2*sinDG
	z3 := -x2*sinDG + z2*cosDG
	y3 := y2

	return math.Atan2(y3, x3), math.Asin(clamp(z3, -1, 1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Forward projects (lon,lat) in degrees to plane (x,y).
func (p *Projection) Forward(lonDeg, latDeg float64) (x, y float64, ok bool) {
	lambda, phi := p.rotate(lonDeg, latDeg)
	kx, ky, ok := p.Kernel(lambda, phi)
	if !ok {
		return 0, 0, false
	}
	return p.Scale*kx + p.TranslateX, p.Scale*ky + p.TranslateY, true
}

// Mercator is `x=lambda, y=ln(tan(pi/4+phi/2))`, clamping latitude to
// +-85.05113 degrees, the point at which y would diverge.
func Mercator() *Projection {
	const maxLat = 85.05113 * math.Pi / 180
	return NewProjection(func(lambda, phi float64) (float64, float64, bool) {
		if phi > maxLat {
			phi = maxLat
		}
		if phi < -maxLat {
			phi = -maxLat
		}
		return lambda, math.Log(math.Tan(math.Pi/4 + phi/2)), true
	})
}

// Equirectangular is the identity map.
func Equirectangular() *Projection {
	return NewProjection(func(lambda, phi float64) (float64, float64, bool) {
		return lambda, phi, true
	})
}

// Orthographic is `x=cos(phi)sin(lambda), y=sin(phi)`, culling the far
// hemisphere.
func Orthographic() *Projection {
	return NewProjection(func(lambda, phi float64) (float64, float64, bool) {
		cosC := math.Cos(phi) * math.Cos(lambda)
		if cosC < 0 {
			return 0, 0, false
		}
		return math.Cos(phi) * math.Sin(lambda), math.Sin(phi), true
	})
}

// Albers is a conic equal-area projection with two standard parallels
// (defaults 29.5N/45.5N, the conventional US Albers parallels),
// closed-form-per-Snyder construction.
func Albers() *Projection {
	return AlbersWithParallels(29.5, 45.5)
}

// AlbersWithParallels builds an Albers projection with the given
// standard parallels in degrees.
func AlbersWithParallels(phi1Deg, phi2Deg float64) *Projection {
	phi1, phi2 := deg2rad(phi1Deg), deg2rad(phi2Deg)
	sinPhi1 := math.Sin(phi1)
	n := (sinPhi1 + math.Sin(phi2)) / 2
	c := math.Cos(phi1)*math.Cos(phi1) + 2*n*sinPhi1
	rho0 := math.Sqrt(c) / n
	return NewProjection(func(lambda, phi float64) (float64, float64, bool) {
		rho := math.Sqrt(c-2*n*math.Sin(phi)) / n
		theta := n * lambda
		return rho * math.Sin(theta), rho0 - rho*math.Cos(theta), true
	})
}
