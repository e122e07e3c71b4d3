package appointment

import "github.com/lucasb-eyer/go-colorful"

// Presentation color tokens assigned at creation time. The lookup is fixed:
// equino and canino get their own hues, everything else shares the default.
var (
	colorEquino  = mustHex("#8b5cf6")
	colorCanino  = mustHex("#3b82f6")
	colorDefault = mustHex("#10b981")
)

// ColorFor derives the hex color token for a species.
func ColorFor(s Species) string {
	switch s {
	case SpeciesEquino:
		return colorEquino.Hex()
	case SpeciesCanino:
		return colorCanino.Hex()
	default:
		return colorDefault.Hex()
	}
}

// DimColor returns a muted variant of a stored token, used for pendente and
// cancelado rows. Unparseable tokens fall back to the default hue.
func DimColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorDefault
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s*0.45, l*0.75).Hex()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
