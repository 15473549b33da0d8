package widgets

import "github.com/go-orbit/orbit/pkg/core"

// SizedBox forces its child to a fixed width and height.
// With no child it acts as a fixed-size spacer.
type SizedBox struct {
	core.RenderBase
	Width  float64
	Height float64
	Child  core.Widget
}

func (s SizedBox) ChildWidgets() []core.Widget {
	if s.Child == nil {
		return nil
	}
	return []core.Widget{s.Child}
}
