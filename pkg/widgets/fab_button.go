package widgets

import (
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
	"github.com/go-orbit/orbit/pkg/layout"
)

// Amount by which a gradient fill lightens and darkens the base color
// at its two stops.
const (
	gradientLightenAmount = 0.25
	gradientDarkenAmount  = 0.15
)

// fabIconInset is the padding between the button edge and its glyph.
const fabIconInset = 16.0

// FabButton is a single circular action button with a centered glyph.
//
// It is the building block of [ExpandableFab] but works standalone.
// The background is either the solid base color or a two-stop gradient
// derived from it, with the lighter shade at the top-left.
//
// Example using struct literal:
//
//	FabButton{
//	    Icon:  "plus",
//	    Color: colors.Blue,
//	    Size:  32,
//	    OnTap: handleTap,
//	}
//
// Example using XxxOf helper:
//
//	FabButtonOf("plus", handleTap).
//	    WithColor(colors.Blue).
//	    WithFill(graphics.FillGradient)
type FabButton struct {
	core.StatelessBase
	// Icon names the glyph shown at the center of the button.
	Icon string
	// Color is the base background color.
	Color graphics.Color
	// Fill selects a solid or gradient background.
	Fill graphics.FillStyle
	// Size is the button diameter in logical pixels.
	Size float64
	// ShadowRadius is the blur radius of the drop shadow.
	ShadowRadius float64
	// OnTap is called when the button is tapped.
	OnTap func()
}

// FabButtonOf creates a button with the given glyph and tap handler.
//
// This is a convenience helper equivalent to:
//
//	FabButton{Icon: icon, OnTap: onTap}
func FabButtonOf(icon string, onTap func()) FabButton {
	return FabButton{Icon: icon, OnTap: onTap}
}

// WithColor returns a copy of the button with the specified base color.
func (b FabButton) WithColor(color graphics.Color) FabButton {
	b.Color = color
	return b
}

// WithFill returns a copy of the button with the specified fill style.
func (b FabButton) WithFill(fill graphics.FillStyle) FabButton {
	b.Fill = fill
	return b
}

// WithSize returns a copy of the button with the specified diameter.
func (b FabButton) WithSize(size float64) FabButton {
	b.Size = size
	return b
}

// WithShadowRadius returns a copy of the button with the specified shadow blur.
func (b FabButton) WithShadowRadius(radius float64) FabButton {
	b.ShadowRadius = radius
	return b
}

func (b FabButton) Build(ctx core.BuildContext) core.Widget {
	diameter := b.Size + 2*fabIconInset

	box := DecoratedBox{
		BorderRadius: diameter / 2,
		Shadow:       graphics.NewBoxShadow(graphics.ColorBlack.WithAlpha(0.3), b.ShadowRadius),
		Child: Padded(layout.EdgeInsetsAll(fabIconInset), Icon{
			Glyph:  b.Icon,
			Size:   b.Size,
			Color:  graphics.ColorWhite,
			Weight: graphics.FontWeightBold,
		}),
	}
	if b.Fill == graphics.FillGradient {
		box.Gradient = gradientFor(b.Color)
	} else {
		box.Color = b.Color
	}

	return Tap(b.OnTap, SizedBox{
		Width:  diameter,
		Height: diameter,
		Child:  box,
	})
}

// gradientFor derives the two-stop background gradient from a base
// color: a lighter shade at the top-left flowing to a darker shade at
// the bottom-right.
func gradientFor(base graphics.Color) *graphics.Gradient {
	return graphics.NewLinearGradient(
		graphics.Offset{X: 0, Y: 0},
		graphics.Offset{X: 1, Y: 1},
		[]graphics.GradientStop{
			{Color: base.Lighten(gradientLightenAmount), Position: 0},
			{Color: base.Darken(gradientDarkenAmount), Position: 1},
		},
	)
}
