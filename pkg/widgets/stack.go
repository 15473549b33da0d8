package widgets

import (
	"fmt"

	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/layout"
)

// StackFit determines how children are sized within a Stack.
type StackFit int

const (
	// StackFitLoose allows children to size themselves.
	StackFitLoose StackFit = iota
	// StackFitExpand forces children to fill the stack.
	StackFitExpand
)

// String returns a human-readable representation of the stack fit.
func (f StackFit) String() string {
	switch f {
	case StackFitLoose:
		return "loose"
	case StackFitExpand:
		return "expand"
	default:
		return fmt.Sprintf("StackFit(%d)", int(f))
	}
}

// Stack overlays children on top of each other.
//
// Children are painted in order, with the first child at the bottom and
// the last child on top. Hit testing proceeds in reverse (topmost first).
//
// Non-positioned children use the Alignment to determine their position
// within the stack; children offset themselves further via [Transform].
type Stack struct {
	core.RenderBase
	// Children are the widgets to overlay. First child is at the bottom,
	// last child is on top.
	Children []core.Widget
	// Alignment positions children within the stack.
	// Defaults to top-left (AlignmentTopLeft).
	Alignment layout.Alignment
	// Fit controls how children are sized.
	Fit StackFit
}

// StackOf creates a stack with the given children.
// Children are layered with the first child at the bottom and last child on top.
func StackOf(children ...core.Widget) Stack {
	return Stack{Children: children}
}

func (s Stack) ChildWidgets() []core.Widget {
	return s.Children
}
