// Package theme provides the floating action button theme scope and its
// optional YAML configuration loader.
package theme

import (
	"reflect"

	"github.com/go-orbit/orbit/pkg/animation"
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
)

// FabThemeData holds the defaults applied to fab widgets that leave
// their configuration fields unset.
type FabThemeData struct {
	// MainIcon is the glyph on the main button while collapsed.
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

	// ButtonSize is the diameter of every button in logical pixels.
	ButtonSize float64

	// Fill selects solid or gradient button backgrounds.
	Fill graphics.FillStyle

	// Spring shapes the expand and collapse motion.
	Spring animation.SpringDescription
}

// DefaultFabTheme returns the stock fab appearance.
func DefaultFabTheme() *FabThemeData {
	return &FabThemeData{
		MainIcon:    "plus",
		FirstIcon:   "person",
		SecondIcon:  "bell",
		ThirdIcon:   "upload",
		MainColor:   graphics.ColorGray,
		FirstColor:  graphics.ColorRed,
		SecondColor: graphics.ColorBlue,
		ThirdColor:  graphics.ColorGreen,
		ButtonSize:  32,
		Fill:        graphics.FillSolid,
		Spring:      animation.DefaultSpring(),
	}
}

// Copy returns an independent copy so tests can mutate freely.
func (d *FabThemeData) Copy() *FabThemeData {
	c := *d
	return &c
}

// FabScope provides FabThemeData to descendant widgets via the
// inherited widget mechanism.
type FabScope struct {
	core.InheritedBase
	Data  *FabThemeData
	Child core.Widget
}

// ChildWidget returns the subtree below this scope.
func (s FabScope) ChildWidget() core.Widget { return s.Child }

// UpdateShouldNotify returns true if the theme data has changed.
func (s FabScope) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(FabScope)
	if !ok {
		return true
	}
	if s.Data == nil || old.Data == nil {
		return s.Data != old.Data
	}
	return *s.Data != *old.Data
}

var fabScopeType = reflect.TypeOf(FabScope{})

// Cached default to avoid repeated allocations when no FabScope is found.
var defaultFabThemeData = DefaultFabTheme()

// FabThemeOf returns the nearest FabThemeData.
// Returns a cached default if no FabScope is found or if Data is nil.
func FabThemeOf(ctx core.BuildContext) *FabThemeData {
	inherited := ctx.DependOnInherited(fabScopeType)
	if inherited == nil {
		return defaultFabThemeData
	}
	if s, ok := inherited.(FabScope); ok && s.Data != nil {
		return s.Data
	}
	return defaultFabThemeData
}

// FabThemeMaybeOf returns the nearest FabThemeData, or nil if not found.
func FabThemeMaybeOf(ctx core.BuildContext) *FabThemeData {
	inherited := ctx.DependOnInherited(fabScopeType)
	if inherited == nil {
		return nil
	}
	if s, ok := inherited.(FabScope); ok && s.Data != nil {
		return s.Data
	}
	return nil
}
