package wcag

import (
	"math"
	"strconv"
	"strings"
)

type rgb struct {
	r, g, b uint8
}

var namedColors = map[string]rgb{ //nolint: gochecknoglobals
	"black":     {0, 0, 0},
	"white":     {255, 255, 255},
	"red":       {255, 0, 0},
	"green":     {0, 128, 0},
	"lime":      {0, 255, 0},
	"blue":      {0, 0, 255},
	"navy":      {0, 0, 128},
	"yellow":    {255, 255, 0},
	"orange":    {255, 165, 0},
	"purple":    {128, 0, 128},
	"maroon":    {128, 0, 0},
	"olive":     {128, 128, 0},
	"teal":      {0, 128, 128},
	"aqua":      {0, 255, 255},
	"cyan":      {0, 255, 255},
	"fuchsia":   {255, 0, 255},
	"magenta":   {255, 0, 255},
	"silver":    {192, 192, 192},
	"gray":      {128, 128, 128},
	"grey":      {128, 128, 128},
	"lightgray": {211, 211, 211},
	"lightgrey": {211, 211, 211},
	"darkgray":  {169, 169, 169},
	"darkgrey":  {169, 169, 169},
}

// parseColor understands #rgb, #rrggbb, rgb()/rgba() and a few named colors.
// Alpha is ignored.
func parseColor(s string) (rgb, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "!important")
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
		if end < open {
			return rgb{}, false
		}
		parts := strings.FieldsFunc(s[open+1:end], func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
		if len(parts) < 3 {
			return rgb{}, false
		}
		var c [3]uint8
		for i := range 3 {
			v, ok := parseChannel(parts[i])
			if !ok {
				return rgb{}, false
			}
			c[i] = v
		}

		return rgb{c[0], c[1], c[2]}, true
	default:
		c, ok := namedColors[s]

		return c, ok
	}
}

func parseHex(h string) (rgb, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rgb{}, false
	}

	return rgb{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}

func parseChannel(s string) (uint8, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}

		return uint8(math.Round(clamp01(f/100) * 255)), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return uint8(math.Round(math.Max(0, math.Min(255, f)))), true
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// luminance is the relative luminance as defined by WCAG 2.1.
func (c rgb) luminance() float64 {
	lin := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= 0.03928 {
			return s / 12.92
		}

		return math.Pow((s+0.055)/1.055, 2.4)
	}

	return 0.2126*lin(c.r) + 0.7152*lin(c.g) + 0.0722*lin(c.b)
}

// contrastRatio returns a value between 1 and 21.
func contrastRatio(a, b rgb) float64 {
	la, lb := a.luminance(), b.luminance()
	if la < lb {
		la, lb = lb, la
	}

	return (la + 0.05) / (lb + 0.05)
}

// styleDecls parses an inline style attribute into lower-cased property names.
func styleDecls(style string) map[string]string {
	out := make(map[string]string)
	for decl := range strings.SplitSeq(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			out[k] = v
		}
	}

	return out
}

// backgroundColor extracts the color of a background-color declaration, or
// the first color token of a background shorthand.
func backgroundColor(decls map[string]string) (rgb, bool) {
	if v, ok := decls["background-color"]; ok {
		return parseColor(v)
	}
	v, ok := decls["background"]
	if !ok {
		return rgb{}, false
	}
	if c, ok := parseColor(v); ok {
		return c, true
	}
	// rgb() may contain spaces, so try function tokens before splitting.
	if i := strings.Index(v, "rgb"); i >= 0 {
		if j := strings.IndexByte(v[i:], ')'); j > 0 {
			return parseColor(v[i : i+j+1])
		}
	}
	for tok := range strings.FieldsSeq(v) {
		if c, ok := parseColor(tok); ok {
			return c, true
		}
	}

	return rgb{}, false
}

// fontSizePx converts px and pt font sizes. Other units are unknown.
func fontSizePx(v string) (float64, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	unit := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "pt"):
		v = strings.TrimSuffix(v, "pt")
		unit = 4.0 / 3.0
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}

	return f * unit, true
}

func isBold(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "bold" || v == "bolder" {
		return true
	}
	n, err := strconv.Atoi(v)

	return err == nil && n >= 700
}

// largeText reports whether the declarations describe large scale text:
// at least 24px, or bold and at least 18.66px.
func largeText(decls map[string]string) bool {
	size, ok := fontSizePx(decls["font-size"])
	if !ok {
		return false
	}

	return size >= 24 || (isBold(decls["font-weight"]) && size >= 18.66)
}

// inlineContrast returns the contrast ratio of the inline foreground and
// background colors of style and the minimum ratio they must reach. ok is
// false when the style does not set both colors.
func inlineContrast(style string) (ratio, minimum float64, ok bool) {
	decls := styleDecls(style)
	fg, ok := parseColor(decls["color"])
	if !ok {
		return 0, 0, false
	}
	bg, ok := backgroundColor(decls)
	if !ok {
		return 0, 0, false
	}

	minimum = 4.5
	if largeText(decls) {
		minimum = 3
	}

	return contrastRatio(fg, bg), minimum, true
}
