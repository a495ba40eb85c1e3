package main

import (
	"strings"

	"golang.org/x/image/colornames"
)

// ValidateFill accepts the paints the badge is allowed to use: "#rgb",
// "#rrggbb", an SVG 1.1 colour keyword, "none" or a "url(#id)" gradient
// reference. Whether the referenced gradient exists is the scene's call.
func ValidateFill(fill string) error {
	switch {
	case fill == "":
		return invalidf("fill", "empty fill")
	case fill == "none":
		return nil
	case strings.HasPrefix(fill, "#"):
		if !isHexColor(fill[1:]) {
			return invalidf("fill", "malformed hex colour %q", fill)
		}
		return nil
	case strings.HasPrefix(fill, "url("):
		if _, ok := gradientRef(fill); !ok {
			return invalidf("fill", "malformed paint reference %q", fill)
		}
		return nil
	}
	if _, ok := colornames.Map[strings.ToLower(fill)]; !ok {
		return invalidf("fill", "unknown colour %q", fill)
	}
	return nil
}

// gradientRef extracts id from "url(#id)".
func gradientRef(fill string) (string, bool) {
	if !strings.HasPrefix(fill, "url(#") || !strings.HasSuffix(fill, ")") {
		return "", false
	}
	id := fill[len("url(#") : len(fill)-1]
	if id == "" || strings.ContainsAny(id, "#() \t") {
		return "", false
	}
	return id, true
}

func isHexColor(digits string) bool {
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
