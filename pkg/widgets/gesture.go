package widgets

import (
	"github.com/go-orbit/orbit/pkg/core"
)

// GestureDetector wraps a child widget with a tap callback.
//
// Example:
//
//	GestureDetector{
//	    OnTap: func() { handleTap() },
//	    Child: DecoratedBox{Color: colors.Blue, Child: icon},
//	}
//
// For the common case, prefer the [Tap] helper.
type GestureDetector struct {
	core.RenderBase
	Child core.Widget
	OnTap func()
}

func (g GestureDetector) ChildWidgets() []core.Widget {
	return []core.Widget{g.Child}
}

// HandleTap invokes the tap callback if one is set. The host's hit
// testing calls this when a tap lands on the detector's region.
func (g GestureDetector) HandleTap() {
	if g.OnTap != nil {
		g.OnTap()
	}
}
