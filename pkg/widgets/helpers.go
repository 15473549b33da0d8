package widgets

import (
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/layout"
)

// Padded wraps a child with the specified padding.
func Padded(padding layout.EdgeInsets, child core.Widget) Padding {
	return Padding{Padding: padding, Child: child}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

// HSpace creates a fixed-width horizontal spacer.
func HSpace(width float64) SizedBox {
	return SizedBox{Width: width}
}

// Tap wraps a child with a tap handler.
func Tap(onTap func(), child core.Widget) GestureDetector {
	return GestureDetector{OnTap: onTap, Child: child}
}
