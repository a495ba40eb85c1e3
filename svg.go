package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper
//
// svgo handles the document skeleton, defs and paths. Its shape and gradient
// methods take ints, so the ones the badge needs at float precision are
// redefined here.

// Coordinates are written with at most this many decimals.
const COORD_DECIMALS = 4

type SVG struct {
	*svgo.SVG
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{svgo.New(w)}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	fmt.Fprintf(svg.Writer, format, a...)
}

// f64s formats v for an attribute, rounded to COORD_DECIMALS and never "-0".
func f64s(v float64) string {
	p := math.Pow(10, COORD_DECIMALS)
	v = math.Round(v*p)/p + 0
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// extraparams turns "k=v" strings into raw attributes and anything else
// into a style attribute.
func extraparams(s []string) string {
	ep := ""
	for i := 0; i < len(s); i++ {
		if strings.Index(s[i], "=") > 0 {
			ep += s[i] + " "
		} else if len(s[i]) > 0 {
			ep += fmt.Sprintf(`style="%s" `, s[i])
		}
	}
	return ep
}

func fillAttrs(fill string) []string {
	return []string{fmt.Sprintf(`fill="%s"`, fill), `stroke="none"`}
}

// Start opens the document with viewBox as the logical canvas and
// width/height set to the canvas scaled by scale.
func (svg *SVG) Start(viewBox geom.Rect, scale float64, s ...string) {
	vb := fmt.Sprintf(`viewBox="%s %s %s %s"`,
		f64s(viewBox.Min.X), f64s(viewBox.Min.Y), f64s(viewBox.Width()), f64s(viewBox.Height()))
	w := int(math.Round(viewBox.Width() * scale))
	h := int(math.Round(viewBox.Height() * scale))
	svg.SVG.Start(w, h, append([]string{vb}, s...)...)
}

func (svg *SVG) Rect(r geom.Rect, s ...string) {
	svg.printf(`<rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
		f64s(r.Min.X), f64s(r.Min.Y), f64s(r.Width()), f64s(r.Height()), extraparams(s))
}

func (svg *SVG) Circle(c geom.Coord, r float64, s ...string) {
	svg.printf(`<circle cx="%s" cy="%s" r="%s" %s/>`+"\n", f64s(c.X), f64s(c.Y), f64s(r), extraparams(s))
}

// Polygon draws a closed path through points.
func (svg *SVG) Polygon(points []geom.Coord, s ...string) {
	svg.Path(pathData(points), s...)
}

func pathData(points []geom.Coord) string {
	parts := make([]string, 0, len(points)+1)
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		parts = append(parts, cmd+f64s(p.X)+","+f64s(p.Y))
	}
	parts = append(parts, "Z")
	return strings.Join(parts, " ")
}

// LinearGradient writes a gradient whose direction runs from from to to, both
// in bounding-box fractions, at COORD_DECIMALS of a percent.
func (svg *SVG) LinearGradient(id string, from, to geom.Coord, stops []GradientStop) {
	svg.printf(`<linearGradient id="%s" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
		id, pct(from.X), pct(from.Y), pct(to.X), pct(to.Y))
	for _, st := range stops {
		svg.printf(`<stop offset="%s" stop-color="%s"/>`+"\n", pct(st.Offset), st.Color)
	}
	svg.printf("</linearGradient>\n")
}

// pct writes a 0..1 fraction as a percentage.
func pct(f float64) string {
	return f64s(f*100) + "%"
}
