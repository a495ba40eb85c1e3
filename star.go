package main

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// Star geometry
//
// Angles step by -2π/spokes, so the ring walks against the positive
// Rotation sense (counter-clockwise on screen). Both generators consume the
// same ring, built by VertexRing, and the inner-radius multiplier is applied
// once to the solved radius before any vertex is placed.

const MIN_SPOKES = 3

// +++ StarSpec
type StarSpec struct {
	Center                geom.Coord
	OuterRadius           float64
	InnerRadiusMultiplier float64
	Spokes                int
	// Fill paints the outline. GenerateSegments takes its own palette.
	Fill string
}

func (s StarSpec) validate(op string) error {
	if s.Spokes < MIN_SPOKES {
		return invalidf(op, "spoke count %d, need at least %d", s.Spokes, MIN_SPOKES)
	}
	if !(s.OuterRadius > 0) || math.IsInf(s.OuterRadius, 0) {
		return invalidf(op, "outer radius %v", s.OuterRadius)
	}
	if !(s.InnerRadiusMultiplier > 0) || math.IsInf(s.InnerRadiusMultiplier, 0) {
		return invalidf(op, "inner radius multiplier %v", s.InnerRadiusMultiplier)
	}
	if !isFiniteCoord(s.Center) {
		return invalidf(op, "center %v", s.Center)
	}
	return nil
}

func stepAngle(spokes int) float64 {
	return -2 * math.Pi / float64(spokes)
}

// SolveInnerRadius returns where the star's concave vertices sit for the
// given outer radius and spoke count: the y-intercept of the chord joining
// the outer point one step from the top and the outer point half-way round.
//
// The result is signed. It always lies on the opposite side of the origin
// from (0, outerRadius), which is why VertexRing negates the outer start.
// Callers scale it by their inner-radius multiplier.
func SolveInnerRadius(outerRadius float64, spokes int) (float64, error) {
	if spokes < MIN_SPOKES {
		return 0, invalidf("solve", "spoke count %d, need at least %d", spokes, MIN_SPOKES)
	}
	if !(outerRadius > 0) || math.IsInf(outerRadius, 0) {
		return 0, invalidf("solve", "outer radius %v", outerRadius)
	}

	angle := stepAngle(spokes)
	outerStart := geom.Coord{X: 0, Y: outerRadius}
	p0 := Rotate(outerStart, angle)
	p1 := Rotate(outerStart, angle*float64(spokes-1)/-2)

	inner, err := chordIntercept(p0, p1)
	if err != nil {
		return 0, err
	}
	logger().Debug("star.solved", "spokes", spokes, "outer", outerRadius, "inner", inner)
	return inner, nil
}

// chordIntercept is the y value at x = 0 of the line through p0 and p1.
func chordIntercept(p0, p1 geom.Coord) (float64, error) {
	d := p0.Minus(p1)
	scale := math.Max(1, math.Max(p0.Magnitude(), p1.Magnitude()))
	if math.Abs(d.X) < FLOAT_EQUAL_THRESH*scale {
		return 0, degeneratef("solve", "vertical chord through %v and %v", p0, p1)
	}
	slope := d.Y / d.X
	y := p0.Y - slope*p0.X
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, degeneratef("solve", "chord intercept %v", y)
	}
	return y, nil
}

// VertexRing returns the 2×Spokes star vertices, outer then inner
// alternately, starting at the top point (smallest y) relative to Center.
func VertexRing(spec StarSpec) ([]geom.Coord, error) {
	if err := spec.validate("ring"); err != nil {
		return nil, err
	}
	inner, err := SolveInnerRadius(spec.OuterRadius, spec.Spokes)
	if err != nil {
		return nil, err
	}
	inner *= spec.InnerRadiusMultiplier

	angle := stepAngle(spec.Spokes)
	outerStart := Negate(geom.Coord{X: 0, Y: spec.OuterRadius})
	innerStart := geom.Coord{X: 0, Y: inner}

	ring := make([]geom.Coord, 0, 2*spec.Spokes)
	for i := 0; i < spec.Spokes; i++ {
		a := angle * float64(i)
		ring = append(ring, Rotate(outerStart, a).Plus(spec.Center))
		ring = append(ring, Rotate(innerStart, a+angle/2).Plus(spec.Center))
	}
	logger().Debug("star.ring", "spokes", spec.Spokes, "vertices", len(ring))
	return ring, nil
}

// +++ Polygon
// Polygon is a closed outline; the last point joins back to the first.
type Polygon struct {
	Points []geom.Coord
	Fill   string
}

func (p Polygon) Bounds() geom.Rect { return boundsOf(p.Points...) }
func (p Polygon) Paint() string     { return p.Fill }
func (p Polygon) Draw(svg *SVG) {
	svg.Polygon(p.Points, fillAttrs(p.Fill)...)
}

func (p Polygon) SignedArea() float64 {
	return SignedArea(p.Points...)
}

// GenerateOutline builds the single-colour star silhouette.
func GenerateOutline(spec StarSpec) (Polygon, error) {
	if err := ValidateFill(spec.Fill); err != nil {
		return Polygon{}, &StarError{Op: "outline", Err: err}
	}
	ring, err := VertexRing(spec)
	if err != nil {
		return Polygon{}, err
	}
	return Polygon{Points: ring, Fill: spec.Fill}, nil
}

// +++ Wedge
// Wedge is one triangle of the segmented star: A and B are consecutive ring
// vertices and C is the star's center.
type Wedge struct {
	geom.Triangle
	Fill string
}

func (w Wedge) Bounds() geom.Rect { return w.Triangle.Bounds() }
func (w Wedge) Paint() string     { return w.Fill }
func (w Wedge) Draw(svg *SVG) {
	svg.Polygon([]geom.Coord{w.A, w.B, w.C}, fillAttrs(w.Fill)...)
}

func (w Wedge) SignedArea() float64 {
	return SignedArea(w.A, w.B, w.C)
}

// GenerateSegments fans the vertex ring into 2×Spokes wedges around Center,
// in ring order. Wedge i spans ring[i]→ring[i+1] (the last wraps to the
// first), so every wedge keeps the ring's winding, and takes
// palette[i%len(palette)].
func GenerateSegments(spec StarSpec, palette []string) ([]Wedge, error) {
	if len(palette) == 0 {
		return nil, invalidf("segments", "empty palette")
	}
	for i, fill := range palette {
		if err := ValidateFill(fill); err != nil {
			return nil, &StarError{Op: "segments", Detail: fmt.Sprintf("palette[%d]", i), Err: err}
		}
	}
	ring, err := VertexRing(spec)
	if err != nil {
		return nil, err
	}

	wedges := make([]Wedge, 0, len(ring))
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		wedges = append(wedges, Wedge{
			Triangle: geom.Triangle{A: a, B: b, C: spec.Center},
			Fill:     palette[i%len(palette)],
		})
	}
	return wedges, nil
}
