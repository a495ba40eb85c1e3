package main

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// Scene composition

// Shape is anything the scene can paint. Paint order is slice order.
type Shape interface {
	Bounds() geom.Rect
	Paint() string
	Draw(svg *SVG)
}

// +++ Gradients
type GradientStop struct {
	Offset float64 // 0.0 to 1.0
	Color  string
}

// LinearGradient runs from From to To, both in fractions of the filled
// shape's bounding box.
type LinearGradient struct {
	ID       string
	From, To geom.Coord
	Stops    []GradientStop
}

func (g LinearGradient) validate() error {
	if g.ID == "" {
		return invalidf("compose", "gradient without id")
	}
	if len(g.Stops) == 0 {
		return invalidf("compose", "gradient %q has no stops", g.ID)
	}
	for _, c := range []geom.Coord{g.From, g.To} {
		if !isFiniteCoord(c) || c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 {
			return invalidf("compose", "gradient %q direction %v outside the bounding box", g.ID, c)
		}
	}
	last := 0.0
	for i, st := range g.Stops {
		if math.IsNaN(st.Offset) || st.Offset < last || st.Offset > 1 {
			return invalidf("compose", "gradient %q stop %d offset %v", g.ID, i, st.Offset)
		}
		last = st.Offset
		if _, ok := gradientRef(st.Color); ok {
			return invalidf("compose", "gradient %q stop %d references another paint", g.ID, i)
		}
		if err := ValidateFill(st.Color); err != nil {
			return &StarError{Op: "compose", Detail: fmt.Sprintf("gradient %q stop %d", g.ID, i), Err: err}
		}
	}
	return nil
}

// +++ Primitive shapes
type Background struct {
	Area geom.Rect
	Fill string
}

func (b Background) Bounds() geom.Rect { return b.Area }
func (b Background) Paint() string     { return b.Fill }
func (b Background) Draw(svg *SVG)     { svg.Rect(b.Area, fillAttrs(b.Fill)...) }

type Circle struct {
	Center geom.Coord
	R      float64
	Fill   string
}

func (c Circle) Bounds() geom.Rect {
	d := geom.Coord{X: c.R, Y: c.R}
	return geom.Rect{Min: c.Center.Minus(d), Max: c.Center.Plus(d)}
}
func (c Circle) Paint() string { return c.Fill }
func (c Circle) Draw(svg *SVG) { svg.Circle(c.Center, c.R, fillAttrs(c.Fill)...) }

// +++ Scene
type Scene struct {
	ViewBox   geom.Rect
	Scale     float64
	Title     string
	Gradients []LinearGradient
	Shapes    []Shape
}

// Validate checks that every paint is well formed, every gradient
// reference resolves and every shape stays inside the viewBox.
func (sc *Scene) Validate() error {
	if !(sc.ViewBox.Width() > 0) || !(sc.ViewBox.Height() > 0) {
		return invalidf("compose", "empty canvas %v", sc.ViewBox)
	}
	if !(sc.Scale > 0) || math.IsInf(sc.Scale, 0) {
		return invalidf("compose", "pixel scale %v", sc.Scale)
	}

	ids := make(map[string]bool, len(sc.Gradients))
	for _, g := range sc.Gradients {
		if err := g.validate(); err != nil {
			return err
		}
		if ids[g.ID] {
			return invalidf("compose", "duplicate gradient id %q", g.ID)
		}
		ids[g.ID] = true
	}

	for i, s := range sc.Shapes {
		if err := checkShape(i, s); err != nil {
			return err
		}
		fill := s.Paint()
		if err := ValidateFill(fill); err != nil {
			return &StarError{Op: "compose", Detail: fmt.Sprintf("shape %d", i), Err: err}
		}
		if id, ok := gradientRef(fill); ok && !ids[id] {
			return invalidf("compose", "shape %d references undefined gradient %q", i, id)
		}
		if b := s.Bounds(); !rectContains(sc.ViewBox, b) {
			return invalidf("compose", "shape %d bounds %v leave the canvas %v", i, b, sc.ViewBox)
		}
	}
	return nil
}

// checkShape rejects geometry that cannot be bounded or drawn.
func checkShape(i int, s Shape) error {
	switch s := s.(type) {
	case Background:
		if !(s.Area.Width() > 0) || !(s.Area.Height() > 0) {
			return invalidf("compose", "shape %d empty background %v", i, s.Area)
		}
	case Circle:
		if !(s.R > 0) || math.IsInf(s.R, 0) {
			return invalidf("compose", "shape %d circle radius %v", i, s.R)
		}
		if !isFiniteCoord(s.Center) {
			return invalidf("compose", "shape %d circle center %v", i, s.Center)
		}
	case Polygon:
		if len(s.Points) < 3 {
			return invalidf("compose", "shape %d polygon with %d points", i, len(s.Points))
		}
		for _, p := range s.Points {
			if !isFiniteCoord(p) {
				return invalidf("compose", "shape %d polygon point %v", i, p)
			}
		}
	case Wedge:
		for _, p := range []geom.Coord{s.A, s.B, s.C} {
			if !isFiniteCoord(p) {
				return invalidf("compose", "shape %d wedge point %v", i, p)
			}
		}
	}
	return nil
}

// WriteTo validates the scene and serializes it to w. Nothing is written
// to w unless the whole document rendered.
func (sc *Scene) WriteTo(w io.Writer) (int64, error) {
	if err := sc.Validate(); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	svg := NewSVG(&buf)
	svg.Start(sc.ViewBox, sc.Scale)
	if sc.Title != "" {
		svg.Title(sc.Title)
	}
	if len(sc.Gradients) > 0 {
		svg.Def()
		for _, g := range sc.Gradients {
			svg.LinearGradient(g.ID, g.From, g.To, g.Stops)
		}
		svg.DefEnd()
	}
	for _, s := range sc.Shapes {
		s.Draw(svg)
	}
	svg.End()

	return buf.WriteTo(w)
}

////////////////////////////////////////////////////////////////////////////
// The badge

// BadgeConfig carries every visual parameter of the badge. DefaultBadgeConfig
// fills it from the constants in config.go.
type BadgeConfig struct {
	Width, Height float64
	Scale         float64
	Title         string

	Background string
	Gradients  []LinearGradient

	RingMultiplier float64
	RingFill       string
	DiscFill       string

	StarSize              float64
	Spokes                int
	InnerRadiusMultiplier float64
	SilhouetteFill        string
	Palette               []string
}

// ComposeBadge lays out background, ring, disc, star silhouette and star
// wedges, in that paint order, on a canvas centered on the origin.
func ComposeBadge(cfg BadgeConfig) (*Scene, error) {
	half := geom.Coord{X: cfg.Width / 2, Y: cfg.Height / 2}
	origin := geom.Coord{}
	canvas := geom.Rect{Min: Negate(half), Max: half}

	star := StarSpec{
		Center:                origin,
		OuterRadius:           cfg.StarSize,
		InnerRadiusMultiplier: cfg.InnerRadiusMultiplier,
		Spokes:                cfg.Spokes,
		Fill:                  cfg.SilhouetteFill,
	}
	outline, err := GenerateOutline(star)
	if err != nil {
		return nil, err
	}
	wedges, err := GenerateSegments(star, cfg.Palette)
	if err != nil {
		return nil, err
	}

	shapes := []Shape{
		Background{Area: canvas, Fill: cfg.Background},
		Circle{Center: origin, R: cfg.StarSize * cfg.RingMultiplier, Fill: cfg.RingFill},
		Circle{Center: origin, R: cfg.StarSize, Fill: cfg.DiscFill},
		outline,
	}
	for _, w := range wedges {
		shapes = append(shapes, w)
	}

	sc := &Scene{
		ViewBox:   canvas,
		Scale:     cfg.Scale,
		Title:     cfg.Title,
		Gradients: cfg.Gradients,
		Shapes:    shapes,
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	logger().Info("scene.composed", "shapes", len(sc.Shapes), "gradients", len(sc.Gradients))
	return sc, nil
}
