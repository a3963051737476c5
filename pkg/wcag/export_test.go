package wcag

// Exported for tests.
var (
	ParseColor     = parseColor
	ContrastRatio  = contrastRatio
	InlineContrast = inlineContrast
)

// RGB returns the channels of c.
func (c rgb) RGB() (uint8, uint8, uint8) { return c.r, c.g, c.b }
