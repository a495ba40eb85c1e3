package main

import (
	"math"

	"github.com/jbeda/geom"
)

// Tunable constants for output
const (
	WIDTH  = 160.0 // logical canvas, centered on the origin
	HEIGHT = 160.0
	SCALE  = 8.0 // pixels per logical unit

	MAIN_SIZE       = 45.0 // star outer radius and disc radius
	RING_MULTIPLIER = 1.2  // ring radius relative to MAIN_SIZE

	BG_COLOR         = "#002a96"
	RING_COLOR       = "#f3a9db"
	DISC_COLOR       = "url(#gradient2)"
	SILHOUETTE_COLOR = "#f5ce8d"

	STAR_SPOKES           = 5
	STAR_INNER_MULTIPLIER = 1.5

	TITLE       = "Star badge"
	OUTPUT_PATH = "image.svg"
)

// Wedge colours, cycled in ring order starting at the top point.
func starPalette() []string {
	return []string{
		"#fdffe7",
		"#fcfdeb",
		"#f8d28f",
		"#fefde8",
		"#f3d090",
		"#c89262",
		"#f5ce8d",
		"#c49963",
		"url(#gradient1)",
		"#f8cf90",
	}
}

func badgeGradients() []LinearGradient {
	tilt := 2 * math.Pi / 10
	return []LinearGradient{
		{
			ID:   "gradient1",
			From: geom.Coord{X: 0, Y: 0},
			To:   geom.Coord{X: 0, Y: 1},
			Stops: []GradientStop{
				{Offset: 0, Color: "#dcb37e"},
				{Offset: 0.5, Color: "#fefac9"},
			},
		},
		{
			ID:   "gradient2",
			From: geom.Coord{X: 0, Y: 0},
			To:   geom.Coord{X: math.Sin(tilt), Y: math.Cos(tilt)},
			Stops: []GradientStop{
				{Offset: 0.5, Color: "#ffffff"},
				{Offset: 1, Color: "#dcdad7"},
			},
		},
	}
}

func DefaultBadgeConfig() BadgeConfig {
	return BadgeConfig{
		Width:  WIDTH,
		Height: HEIGHT,
		Scale:  SCALE,
		Title:  TITLE,

		Background: BG_COLOR,
		Gradients:  badgeGradients(),

		RingMultiplier: RING_MULTIPLIER,
		RingFill:       RING_COLOR,
		DiscFill:       DISC_COLOR,

		StarSize:              MAIN_SIZE,
		Spokes:                STAR_SPOKES,
		InnerRadiusMultiplier: STAR_INNER_MULTIPLIER,
		SilhouetteFill:        SILHOUETTE_COLOR,
		Palette:               starPalette(),
	}
}
