// Package layout provides the pure layout value types used by widget
// configuration: edge insets and alignments. Measuring and positioning
// are performed by the host renderer.
package layout

// EdgeInsets describes padding on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with specific values per side.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the sum of the left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Alignment positions a child within a parent. X and Y range from -1
// (left/top) through 0 (center) to 1 (right/bottom).
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignmentTopLeft     = Alignment{X: -1, Y: -1}
	AlignmentCenter      = Alignment{X: 0, Y: 0}
	AlignmentBottomRight = Alignment{X: 1, Y: 1}
)
