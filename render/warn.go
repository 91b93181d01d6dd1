package render

import (
	"seehuhn.de/go/vg/image"
	"seehuhn.de/go/vg/path"
)

// WarningKind classifies a non-fatal condition a backend encountered
// while rendering. Warnings never abort rendering; they are reported
// through the Renderer's warn callback and rendering continues using
// the backend's best approximation.
type WarningKind int

const (
	// UnsupportedCut is reported when a backend cannot represent a Cut
	// node's clip area exactly (e.g. a clip shape outside what the
	// target format's clipping model expresses) and falls back to an
	// approximation.
	UnsupportedCut WarningKind = iota
	// UnsupportedGlyphCut is reported when a clip built from glyph
	// outlines cannot be represented exactly.
	UnsupportedGlyphCut
	// Other covers any other non-fatal condition a backend wants to
	// surface.
	Other
)

func (k WarningKind) String() string {
	switch k {
	case UnsupportedCut:
		return "unsupported-cut"
	case UnsupportedGlyphCut:
		return "unsupported-glyph-cut"
	case Other:
		return "other"
	default:
		return "warning(?)"
	}
}

// Warning is a single non-fatal condition reported by a backend. Area
// and Img are populated for UnsupportedCut and UnsupportedGlyphCut;
// Message is populated for Other. There is no guarantee of ordering or
// uniqueness among the warnings a backend reports.
type Warning struct {
	Kind    WarningKind
	Area    path.Area
	Img     image.Image
	Message string
}

// UnsupportedCutWarning reports that area could not be honored exactly
// while cutting img.
func UnsupportedCutWarning(area path.Area, img image.Image) Warning {
	return Warning{Kind: UnsupportedCut, Area: area, Img: img}
}

// UnsupportedGlyphCutWarning is UnsupportedCutWarning for a clip built
// from glyph outlines.
func UnsupportedGlyphCutWarning(area path.Area, img image.Image) Warning {
	return Warning{Kind: UnsupportedGlyphCut, Area: area, Img: img}
}

// OtherWarning reports a backend-specific condition not covered by the
// other warning kinds.
func OtherWarning(message string) Warning {
	return Warning{Kind: Other, Message: message}
}

func (w Warning) String() string {
	if w.Kind == Other {
		return w.Kind.String() + ": " + w.Message
	}
	return w.Kind.String()
}
