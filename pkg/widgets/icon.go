package widgets

import (
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
)

// Icon renders a single named glyph, centered within the space its
// parent gives it.
type Icon struct {
	core.RenderBase
	// Glyph names the symbol to render, e.g. "plus" or "bell".
	Glyph string
	// Size is the glyph size in logical pixels. Zero uses the host default.
	Size float64
	// Color is the glyph color. Zero (transparent) uses the host default.
	Color graphics.Color
	// Weight sets the stroke weight if non-zero.
	Weight graphics.FontWeight
}

// IconOf creates an icon with the given glyph.
// This is a convenience helper equivalent to:
//
//	Icon{Glyph: glyph}
func IconOf(glyph string) Icon {
	return Icon{Glyph: glyph}
}

func (i Icon) ChildWidgets() []core.Widget { return nil }
