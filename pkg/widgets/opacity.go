package widgets

import "github.com/go-orbit/orbit/pkg/core"

// Opacity applies transparency to its child widget.
//
// The Opacity value should be between 0.0 (fully transparent) and 1.0
// (fully opaque). When Opacity is 0.0 the child is not painted and does
// not receive hits. When Opacity is 1.0 the child is painted normally
// without any compositing overhead.
type Opacity struct {
	core.RenderBase
	// Opacity is the transparency value (0.0 to 1.0).
	Opacity float64
	// Child is the widget to which opacity is applied.
	Child core.Widget
}

func (o Opacity) ChildWidgets() []core.Widget {
	return []core.Widget{o.Child}
}
