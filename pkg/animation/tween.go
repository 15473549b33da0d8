package animation

import (
	"github.com/go-orbit/orbit/pkg/graphics"
	"github.com/go-orbit/orbit/pkg/layout"
)

// Tween maps a controller's 0-1 progress onto a value range of any
// type. Use the typed constructors below for the common cases, or
// supply a custom Lerp.
type Tween[T any] struct {
	// Begin is the value at progress 0.
	Begin T
	// End is the value at progress 1.
	End T
	// Lerp interpolates between Begin and End at progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at progress t. Without a
// Lerp the tween degenerates to its End value.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 creates a float64 tween.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// LerpOffset interpolates between two offsets componentwise.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// TweenOffset creates an Offset tween.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// LerpColor interpolates between two colors per channel, alpha
// included.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	channel := func(shift uint) uint32 {
		from := float64((a >> shift) & 0xFF)
		to := float64((b >> shift) & 0xFF)
		return uint32(LerpFloat64(from, to, t)) & 0xFF
	}
	return graphics.Color(channel(24)<<24 | channel(16)<<16 | channel(8)<<8 | channel(0))
}

// TweenColor creates a Color tween.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// LerpEdgeInsets interpolates each side independently.
func LerpEdgeInsets(a, b layout.EdgeInsets, t float64) layout.EdgeInsets {
	return layout.EdgeInsets{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// TweenEdgeInsets creates an EdgeInsets tween.
func TweenEdgeInsets(begin, end layout.EdgeInsets) *Tween[layout.EdgeInsets] {
	return &Tween[layout.EdgeInsets]{Begin: begin, End: end, Lerp: LerpEdgeInsets}
}

// LerpAlignment interpolates between two alignments.
func LerpAlignment(a, b layout.Alignment, t float64) layout.Alignment {
	return layout.Alignment{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// TweenAlignment creates an Alignment tween.
func TweenAlignment(begin, end layout.Alignment) *Tween[layout.Alignment] {
	return &Tween[layout.Alignment]{Begin: begin, End: end, Lerp: LerpAlignment}
}
