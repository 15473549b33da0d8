package widgets

import (
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
)

// Transform translates, rotates, and scales its child around the
// child's center.
//
// Rotation is in degrees, clockwise. A Scale of zero is interpreted as
// unscaled so the zero value leaves the child untouched.
type Transform struct {
	core.RenderBase
	// Offset translates the child in logical pixels.
	Offset graphics.Offset
	// Rotation rotates the child, in degrees.
	Rotation float64
	// Scale multiplies the child's size. Zero means 1.0.
	Scale float64
	// Child is the widget being transformed.
	Child core.Widget
}

func (t Transform) ChildWidgets() []core.Widget {
	return []core.Widget{t.Child}
}

// EffectiveScale returns the scale factor with the zero value mapped to 1.
func (t Transform) EffectiveScale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}
