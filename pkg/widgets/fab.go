package widgets

import (
	"github.com/go-orbit/orbit/pkg/animation"
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
	"github.com/go-orbit/orbit/pkg/layout"
	"github.com/go-orbit/orbit/pkg/theme"
)

// ExpandableFab is a floating action button that fans out three
// satellite buttons when tapped.
//
// The main button sits in place and toggles the expanded state. While
// expanding, the first satellite slides left, the second up-left along
// the diagonal, and the third straight up, each fading in. Collapsing
// reverses the motion. Tapping a satellite fires its callback and
// leaves the fab expanded; only the main button toggles.
//
// Every configuration field falls back to the nearest [theme.FabScope]
// (or the stock defaults) when left at its zero value, so the empty
// struct is a fully working fab:
//
//	widgets.ExpandableFab{}
//
// Example with custom actions:
//
//	widgets.ExpandableFab{
//	    FirstIcon:   "camera",
//	    OnFirstTap:  openCamera,
//	    SecondIcon:  "photo",
//	    OnSecondTap: openGallery,
//	    ThirdIcon:   "file",
//	    OnThirdTap:  openFiles,
//	    Fill:        graphics.FillGradient,
//	}
type ExpandableFab struct {
	core.StatefulBase

	// MainIcon is the glyph on the main button.
	MainIcon string
	// FirstIcon, SecondIcon and ThirdIcon are the satellite glyphs.
	FirstIcon  string
	SecondIcon string
	ThirdIcon  string

	// MainColor is the base color of the main button.
	MainColor graphics.Color
	// FirstColor, SecondColor and ThirdColor are the satellite base colors.
	FirstColor  graphics.Color
	SecondColor graphics.Color
	ThirdColor  graphics.Color

	// OnFirstTap, OnSecondTap and OnThirdTap are the satellite actions.
	OnFirstTap  func()
	OnSecondTap func()
	OnThirdTap  func()

	// ButtonSize is the button diameter driving the fan-out distances.
	ButtonSize float64
	// Fill selects solid or gradient button backgrounds.
	Fill graphics.FillStyle
	// Spring shapes the expand and collapse motion.
	Spring animation.SpringDescription
}

func (f ExpandableFab) CreateState() core.State {
	return &expandableFabState{}
}

// resolve fills zero-valued fields from the theme.
func (f ExpandableFab) resolve(data *theme.FabThemeData) ExpandableFab {
	if f.MainIcon == "" {
		f.MainIcon = data.MainIcon
	}
	if f.FirstIcon == "" {
		f.FirstIcon = data.FirstIcon
	}
	if f.SecondIcon == "" {
		f.SecondIcon = data.SecondIcon
	}
	if f.ThirdIcon == "" {
		f.ThirdIcon = data.ThirdIcon
	}
	if f.MainColor == graphics.ColorTransparent {
		f.MainColor = data.MainColor
	}
	if f.FirstColor == graphics.ColorTransparent {
		f.FirstColor = data.FirstColor
	}
	if f.SecondColor == graphics.ColorTransparent {
		f.SecondColor = data.SecondColor
	}
	if f.ThirdColor == graphics.ColorTransparent {
		f.ThirdColor = data.ThirdColor
	}
	if f.ButtonSize <= 0 {
		f.ButtonSize = data.ButtonSize
	}
	if f.Fill == graphics.FillUnset {
		f.Fill = data.Fill
	}
	if f.Spring.IsZero() {
		f.Spring = data.Spring
	}
	return f
}

// Geometry of the fan-out, as multiples of the button size. The
// diagonal coefficient is shorter so all three satellites sit on
// roughly the same arc around the main button.
const (
	fabAxialDistance    = 2.0
	fabDiagonalDistance = 1.75
)

// Shadow blur radii for the two button roles.
const (
	fabMainShadowRadius      = 4.0
	fabSatelliteShadowRadius = 8.0
)

// Main button pose per state. The 405 degree target reads as a quarter
// turn beyond a full revolution, turning the plus glyph into a cross.
const (
	fabMainExpandedRotation = 405.0
	fabMainExpandedScale    = 1.3
)

// fabGeometry is the render target for one satellite slot.
type fabGeometry struct {
	Offset       graphics.Offset
	Opacity      float64
	ShadowRadius float64
}

// satelliteGeometry returns the pose for satellite slot (1 to 3) given
// the expanded state and the button size. Collapsed satellites sit on
// the main button at zero opacity.
func satelliteGeometry(slot int, expanded bool, buttonSize float64) fabGeometry {
	g := fabGeometry{ShadowRadius: fabSatelliteShadowRadius}
	if !expanded {
		return g
	}
	g.Opacity = 1
	switch slot {
	case 1:
		g.Offset = graphics.Offset{X: -fabAxialDistance * buttonSize}
	case 2:
		g.Offset = graphics.Offset{
			X: -fabDiagonalDistance * buttonSize,
			Y: -fabDiagonalDistance * buttonSize,
		}
	case 3:
		g.Offset = graphics.Offset{Y: -fabAxialDistance * buttonSize}
	}
	return g
}

// mainGeometry returns the main button's rotation (degrees), scale, and
// shadow radius for the given state.
func mainGeometry(expanded bool) (rotation, scale, shadowRadius float64) {
	if expanded {
		return fabMainExpandedRotation, fabMainExpandedScale, fabMainShadowRadius
	}
	return 0, 1.0, fabMainShadowRadius
}

type expandableFabState struct {
	core.StateBase
	expanded bool
}

// toggle flips the expanded state. Only the main button calls this;
// satellite taps leave the fab open.
func (s *expandableFabState) toggle() {
	s.SetState(func() {
		s.expanded = !s.expanded
	})
}

func (s *expandableFabState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(ExpandableFab).resolve(theme.FabThemeOf(ctx))

	curve := w.Spring.Curve()
	duration := w.Spring.SettleDuration()

	satellite := func(slot int, icon string, color graphics.Color, onTap func()) core.Widget {
		g := satelliteGeometry(slot, s.expanded, w.ButtonSize)
		return AnimatedTransform{
			Duration: duration,
			Curve:    curve,
			Offset:   g.Offset,
			Scale:    1,
			Child: AnimatedOpacity{
				Duration: duration,
				Curve:    curve,
				Opacity:  g.Opacity,
				Child: FabButton{
					Icon:         icon,
					Color:        color,
					Fill:         w.Fill,
					Size:         w.ButtonSize,
					ShadowRadius: g.ShadowRadius,
					OnTap:        onTap,
				},
			},
		}
	}

	rotation, scale, shadow := mainGeometry(s.expanded)
	main := AnimatedTransform{
		Duration: duration,
		Curve:    curve,
		Rotation: rotation,
		Scale:    scale,
		Child: FabButton{
			Icon:         w.MainIcon,
			Color:        w.MainColor,
			Fill:         w.Fill,
			Size:         w.ButtonSize,
			ShadowRadius: shadow,
			OnTap:        s.toggle,
		},
	}

	// Satellites first so the main button paints on top while they are
	// collapsed underneath it.
	return Stack{
		Alignment: layout.AlignmentBottomRight,
		Children: []core.Widget{
			satellite(1, w.FirstIcon, w.FirstColor, w.OnFirstTap),
			satellite(2, w.SecondIcon, w.SecondColor, w.OnSecondTap),
			satellite(3, w.ThirdIcon, w.ThirdColor, w.OnThirdTap),
			main,
		},
	}
}
