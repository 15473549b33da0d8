package widgets

import (
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
)

// DecoratedBox paints a background behind its child.
//
// The background is either a solid Color or a Gradient; when both are
// set, Gradient wins. BorderRadius rounds the corners; setting it to
// half the box size yields a circle. Shadow, if set, is painted under
// the box.
//
//	DecoratedBox{
//	    Color:        colors.Red,
//	    BorderRadius: size / 2,
//	    Shadow:       graphics.NewBoxShadow(graphics.ColorBlack.WithAlpha(0.3), 8),
//	    Child:        icon,
//	}
type DecoratedBox struct {
	core.RenderBase
	// Color is the solid background color.
	Color graphics.Color
	// Gradient paints a gradient background instead of Color.
	Gradient *graphics.Gradient
	// BorderRadius is the corner radius in logical pixels.
	BorderRadius float64
	// Shadow is painted beneath the box.
	Shadow *graphics.BoxShadow
	// Child is laid out inside the decoration.
	Child core.Widget
}

func (d DecoratedBox) ChildWidgets() []core.Widget {
	return []core.Widget{d.Child}
}
