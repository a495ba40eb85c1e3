package main

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/jbeda/geom"
)

func TestComposeBadgeLayout(t *testing.T) {
	sc, err := ComposeBadge(DefaultBadgeConfig())
	if err != nil {
		t.Fatalf("ComposeBadge: %v", err)
	}

	if len(sc.Gradients) != 2 {
		t.Fatalf("%d gradients, want 2", len(sc.Gradients))
	}
	if len(sc.Shapes) != 4+2*STAR_SPOKES {
		t.Fatalf("%d shapes, want %d", len(sc.Shapes), 4+2*STAR_SPOKES)
	}

	bg, ok := sc.Shapes[0].(Background)
	if !ok || bg.Fill != BG_COLOR {
		t.Fatalf("shape 0 = %#v, want the background", sc.Shapes[0])
	}
	ring, ok := sc.Shapes[1].(Circle)
	if !ok || !FloatAlmostEqual(ring.R, MAIN_SIZE*RING_MULTIPLIER) || ring.Fill != RING_COLOR {
		t.Fatalf("shape 1 = %#v, want the outer ring", sc.Shapes[1])
	}
	disc, ok := sc.Shapes[2].(Circle)
	if !ok || disc.R != MAIN_SIZE || disc.Fill != DISC_COLOR {
		t.Fatalf("shape 2 = %#v, want the gradient disc", sc.Shapes[2])
	}
	outline, ok := sc.Shapes[3].(Polygon)
	if !ok || len(outline.Points) != 2*STAR_SPOKES || outline.Fill != SILHOUETTE_COLOR {
		t.Fatalf("shape 3 = %#v, want the star silhouette", sc.Shapes[3])
	}

	palette := starPalette()
	for i, s := range sc.Shapes[4:] {
		w, ok := s.(Wedge)
		if !ok {
			t.Fatalf("shape %d = %#v, want a wedge", i+4, s)
		}
		if w.Fill != palette[i%len(palette)] {
			t.Errorf("wedge %d fill %q, want %q", i, w.Fill, palette[i%len(palette)])
		}
	}
}

func TestSceneWriteTo(t *testing.T) {
	sc, err := ComposeBadge(DefaultBadgeConfig())
	if err != nil {
		t.Fatalf("ComposeBadge: %v", err)
	}

	var buf bytes.Buffer
	n, err := sc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo reported %d bytes, buffer holds %d", n, buf.Len())
	}

	out := buf.String()
	if !strings.HasPrefix(out, `<?xml version="1.0"?>`) {
		t.Fatalf("missing xml header:\n%s", out)
	}
	for _, want := range []string{
		`width="1280" height="1280"`,
		`viewBox="-80 -80 160 160"`,
		`<title>Star badge</title>`,
		`<linearGradient id="gradient1" x1="0%" y1="0%" x2="0%" y2="100%">`,
		`<stop offset="50%" stop-color="#fefac9"/>`,
		`<linearGradient id="gradient2" x1="0%" y1="0%" x2="58.7785%" y2="80.9017%">`,
		`<rect x="-80" y="-80" width="160" height="160" fill="#002a96"`,
		`<circle cx="0" cy="0" r="54" fill="#f3a9db"`,
		`<circle cx="0" cy="0" r="45" fill="url(#gradient2)"`,
		`<path d="M0,-45 L`,
		`fill="url(#gradient1)"`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if got := strings.Count(out, "<path "); got != 1+2*STAR_SPOKES {
		t.Errorf("%d paths, want %d", got, 1+2*STAR_SPOKES)
	}

	defs := strings.Index(out, "<defs>")
	rect := strings.Index(out, "<rect ")
	circle := strings.Index(out, "<circle ")
	path := strings.Index(out, "<path ")
	if !(defs < rect && rect < circle && circle < path) {
		t.Errorf("paint order wrong: defs=%d rect=%d circle=%d path=%d", defs, rect, circle, path)
	}
}

func TestComposeBadgeRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BadgeConfig)
	}{
		{"undefined gradient", func(c *BadgeConfig) { c.Gradients = c.Gradients[:1] }},
		{"star larger than canvas", func(c *BadgeConfig) { c.StarSize = 70 }},
		{"empty palette", func(c *BadgeConfig) { c.Palette = nil }},
		{"bad background", func(c *BadgeConfig) { c.Background = "#12" }},
		{"zero scale", func(c *BadgeConfig) { c.Scale = 0 }},
		{"two spokes", func(c *BadgeConfig) { c.Spokes = 2 }},
		{"duplicate gradient", func(c *BadgeConfig) { c.Gradients = append(c.Gradients, c.Gradients[0]) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBadgeConfig()
			tt.mutate(&cfg)
			if _, err := ComposeBadge(cfg); !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("got %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestGradientValidation(t *testing.T) {
	canvas := geom.Rect{Min: geom.Coord{X: -10, Y: -10}, Max: geom.Coord{X: 10, Y: 10}}
	good := LinearGradient{
		ID:    "g",
		To:    geom.Coord{X: 0, Y: 1},
		Stops: []GradientStop{{Offset: 0, Color: "#000"}, {Offset: 1, Color: "#fff"}},
	}

	tests := []struct {
		name   string
		mutate func(*LinearGradient)
	}{
		{"no id", func(g *LinearGradient) { g.ID = "" }},
		{"no stops", func(g *LinearGradient) { g.Stops = nil }},
		{"direction outside box", func(g *LinearGradient) { g.To = geom.Coord{X: 1.5, Y: 0} }},
		{"offsets out of order", func(g *LinearGradient) {
			g.Stops = []GradientStop{{Offset: 0.6, Color: "#000"}, {Offset: 0.2, Color: "#fff"}}
		}},
		{"stop references a gradient", func(g *LinearGradient) {
			g.Stops = []GradientStop{{Offset: 0, Color: "url(#g)"}}
		}},
		{"bad stop colour", func(g *LinearGradient) {
			g.Stops = []GradientStop{{Offset: 0, Color: "#zzz"}}
		}},
	}

	sc := &Scene{ViewBox: canvas, Scale: 1, Gradients: []LinearGradient{good}}
	if err := sc.Validate(); err != nil {
		t.Fatalf("valid gradient rejected: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := good
			g.Stops = append([]GradientStop(nil), good.Stops...)
			tt.mutate(&g)
			sc := &Scene{ViewBox: canvas, Scale: 1, Gradients: []LinearGradient{g}}
			if err := sc.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("got %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestWriteToWritesNothingOnError(t *testing.T) {
	canvas := geom.Rect{Min: geom.Coord{X: -10, Y: -10}, Max: geom.Coord{X: 10, Y: 10}}
	nan := math.NaN()

	tests := []struct {
		name  string
		shape Shape
	}{
		{"circle off the canvas", Circle{R: 20, Fill: "#fff"}},
		{"negative circle radius", Circle{R: -5, Fill: "#fff"}},
		{"zero circle radius", Circle{Fill: "#fff"}},
		{"infinite circle radius", Circle{R: math.Inf(1), Fill: "#fff"}},
		{"nan circle center", Circle{Center: geom.Coord{X: nan}, R: 1, Fill: "#fff"}},
		{"polygon without points", Polygon{Fill: "#fff"}},
		{"two point polygon", Polygon{Points: []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, Fill: "#fff"}},
		{"nan polygon point", Polygon{Points: []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: nan, Y: 1}}, Fill: "#fff"}},
		{"nan wedge", Wedge{Triangle: geom.Triangle{A: geom.Coord{Y: nan}}, Fill: "#fff"}},
		{"empty background", Background{Fill: "#fff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &Scene{ViewBox: canvas, Scale: 1, Shapes: []Shape{tt.shape}}

			var buf bytes.Buffer
			n, err := sc.WriteTo(&buf)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("got %v, want ErrInvalidConfiguration", err)
			}
			if n != 0 || buf.Len() != 0 {
				t.Fatalf("wrote %d bytes for an invalid scene", buf.Len())
			}
		})
	}
}

func TestComposeBadgeLogs(t *testing.T) {
	var buf bytes.Buffer
	setLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { setLogger(nil) })

	if _, err := ComposeBadge(DefaultBadgeConfig()); err != nil {
		t.Fatalf("ComposeBadge: %v", err)
	}
	if !strings.Contains(buf.String(), "msg=scene.composed shapes=14 gradients=2") {
		t.Fatalf("unexpected log output:\n%s", buf.String())
	}
}
