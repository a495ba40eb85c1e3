package main

import (
	"math"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// Math/Geometry Helpers
//
// Points and vectors are plain geom.Coord values: Plus, Minus and Times
// give the component-wise arithmetic, everything else lives here.

// Badge coordinates are in the tens, so an absolute threshold is good
// enough for comparing them.
const FLOAT_EQUAL_THRESH = 0.00000001

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FLOAT_EQUAL_THRESH
}

func AlmostEqualsCoord(a, b geom.Coord) bool {
	return FloatAlmostEqual(a.X, b.X) && FloatAlmostEqual(a.Y, b.Y)
}

func isFiniteCoord(p geom.Coord) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// +++ Rotation
// Rotation turns vectors about the origin. A positive angle turns +X
// toward +Y; with SVG's downward Y axis that reads as clockwise on screen.
// The zero value is the identity.
type Rotation struct {
	Angle float64
}

func NewRotation(theta float64) Rotation {
	return Rotation{Angle: theta}
}

// Apply rotates p, read as a vector from the origin. The result has the
// same magnitude as p.
func (r Rotation) Apply(p geom.Coord) geom.Coord {
	sin, cos := math.Sincos(r.Angle)
	return geom.Coord{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Then returns the rotation that applies r followed by o.
func (r Rotation) Then(o Rotation) Rotation {
	return Rotation{Angle: r.Angle + o.Angle}
}

func Rotate(p geom.Coord, theta float64) geom.Coord {
	return NewRotation(theta).Apply(p)
}

func Negate(p geom.Coord) geom.Coord {
	return p.Times(-1)
}

// SignedArea is the shoelace area of a closed polygon. Positive means the
// vertices turn from +X toward +Y, the same sense as a positive Rotation.
func SignedArea(points ...geom.Coord) float64 {
	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	return area / 2
}

// boundsOf returns the smallest rect holding every point, or geom.NilRect
// for no points.
func boundsOf(points ...geom.Coord) geom.Rect {
	r := geom.NilRect()
	for _, p := range points {
		r.ExpandToContainCoord(p)
	}
	return r
}

// rectContains is geom.Rect.ContainsRect with outer grown by
// FLOAT_EQUAL_THRESH on every side.
func rectContains(outer, inner geom.Rect) bool {
	slack := geom.Coord{X: FLOAT_EQUAL_THRESH, Y: FLOAT_EQUAL_THRESH}
	outer = geom.Rect{Min: outer.Min.Minus(slack), Max: outer.Max.Plus(slack)}
	return outer.ContainsRect(inner)
}
