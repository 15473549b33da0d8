package widgets

import (
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/layout"
)

// Padding insets its child by the given edge insets.
type Padding struct {
	core.RenderBase
	Padding layout.EdgeInsets
	Child   core.Widget
}

func (p Padding) ChildWidgets() []core.Widget {
	return []core.Widget{p.Child}
}
