package widgets_test

import (
	"testing"
	"time"

	"github.com/go-orbit/orbit/pkg/graphics"
	orbittest "github.com/go-orbit/orbit/pkg/testing"
	"github.com/go-orbit/orbit/pkg/theme"
	"github.com/go-orbit/orbit/pkg/widgets"
)

const settleTimeout = 10 * time.Second

func pumpFab(t *testing.T, fab widgets.ExpandableFab) *orbittest.WidgetTester {
	t.Helper()
	tester := orbittest.NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(fab); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	return tester
}

func expand(t *testing.T, tester *orbittest.WidgetTester, mainIcon string) {
	t.Helper()
	if err := tester.Tap(orbittest.ByIcon(mainIcon)); err != nil {
		t.Fatalf("Tap(%s): %v", mainIcon, err)
	}
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
}

// satelliteOpacities returns the three satellite opacity values in slot order.
func satelliteOpacities(tester *orbittest.WidgetTester) []float64 {
	result := tester.Find(orbittest.ByType[widgets.Opacity]())
	values := make([]float64, result.Count())
	for i := range values {
		values[i] = result.At(i).Widget().(widgets.Opacity).Opacity
	}
	return values
}

// satelliteOffsets returns the three satellite transform offsets in slot order.
// The fourth Transform in the tree belongs to the main button.
func satelliteOffsets(tester *orbittest.WidgetTester) []graphics.Offset {
	result := tester.Find(orbittest.ByType[widgets.Transform]())
	offsets := make([]graphics.Offset, 3)
	for i := range offsets {
		offsets[i] = result.At(i).Widget().(widgets.Transform).Offset
	}
	return offsets
}

func mainTransform(tester *orbittest.WidgetTester) widgets.Transform {
	return tester.Find(orbittest.ByType[widgets.Transform]()).At(3).Widget().(widgets.Transform)
}

func TestFabInitiallyCollapsed(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})

	for i, op := range satelliteOpacities(tester) {
		if op != 0 {
			t.Errorf("satellite %d opacity = %v at mount, want 0", i+1, op)
		}
	}
	for i, off := range satelliteOffsets(tester) {
		if off != (graphics.Offset{}) {
			t.Errorf("satellite %d offset = %v at mount, want (0,0)", i+1, off)
		}
	}

	main := mainTransform(tester)
	if main.Rotation != 0 || main.EffectiveScale() != 1 {
		t.Errorf("main transform = (%v, %v), want (0, 1)", main.Rotation, main.EffectiveScale())
	}
}

func TestFabDefaultIcons(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})

	for _, glyph := range []string{"plus", "person", "bell", "upload"} {
		if !tester.Find(orbittest.ByIcon(glyph)).Exists() {
			t.Errorf("icon %q not found in default fab", glyph)
		}
	}
}

func TestFabExpands(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})
	expand(t, tester, "plus")

	for i, op := range satelliteOpacities(tester) {
		if op != 1 {
			t.Errorf("satellite %d opacity = %v expanded, want 1", i+1, op)
		}
	}

	want := []graphics.Offset{
		{X: -64, Y: 0},
		{X: -56, Y: -56},
		{X: 0, Y: -64},
	}
	for i, off := range satelliteOffsets(tester) {
		if off != want[i] {
			t.Errorf("satellite %d offset = %v expanded, want %v", i+1, off, want[i])
		}
	}

	main := mainTransform(tester)
	if main.Rotation != 405 {
		t.Errorf("main rotation = %v expanded, want 405", main.Rotation)
	}
	if main.Scale != 1.3 {
		t.Errorf("main scale = %v expanded, want 1.3", main.Scale)
	}
}

func TestFabCollapsesAgain(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})
	expand(t, tester, "plus")
	expand(t, tester, "plus")

	for i, op := range satelliteOpacities(tester) {
		if op != 0 {
			t.Errorf("satellite %d opacity = %v after collapse, want 0", i+1, op)
		}
	}
	for i, off := range satelliteOffsets(tester) {
		if off != (graphics.Offset{}) {
			t.Errorf("satellite %d offset = %v after collapse, want (0,0)", i+1, off)
		}
	}
	if main := mainTransform(tester); main.Rotation != 0 {
		t.Errorf("main rotation = %v after collapse, want 0", main.Rotation)
	}
}

func TestSatelliteTapFiresWithoutCollapsing(t *testing.T) {
	var fired string
	tester := pumpFab(t, widgets.ExpandableFab{
		OnFirstTap:  func() { fired = "first" },
		OnSecondTap: func() { fired = "second" },
		OnThirdTap:  func() { fired = "third" },
	})
	expand(t, tester, "plus")

	if err := tester.Tap(orbittest.ByIcon("bell")); err != nil {
		t.Fatalf("Tap(bell): %v", err)
	}
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}

	if fired != "second" {
		t.Errorf("fired = %q, want second", fired)
	}
	for i, op := range satelliteOpacities(tester) {
		if op != 1 {
			t.Errorf("satellite %d opacity = %v after satellite tap, want still 1", i+1, op)
		}
	}
}

func TestCollapsedSatellitesAreNotTappable(t *testing.T) {
	fired := false
	tester := pumpFab(t, widgets.ExpandableFab{
		OnFirstTap: func() { fired = true },
	})

	if err := tester.Tap(orbittest.ByIcon("person")); err == nil {
		t.Error("Tap on hidden satellite succeeded, want error")
	}
	if fired {
		t.Error("callback fired for hidden satellite")
	}
}

func TestNilSatelliteCallback(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})
	expand(t, tester, "plus")

	// A satellite without a callback absorbs the tap without panicking.
	if err := tester.Tap(orbittest.ByIcon("upload")); err != nil {
		t.Fatalf("Tap(upload): %v", err)
	}
}

func TestFabAnimatesThroughIntermediateFrames(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})

	if err := tester.Tap(orbittest.ByIcon("plus")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	// Run a handful of frames, well short of the settle time.
	for i := 0; i < 8; i++ {
		tester.Pump()
		tester.Clock().Advance(16 * time.Millisecond)
	}
	tester.Pump()

	op := satelliteOpacities(tester)[0]
	if op <= 0 || op >= 1 {
		t.Errorf("satellite opacity mid-flight = %v, want strictly between 0 and 1", op)
	}
	off := satelliteOffsets(tester)[0]
	if off.X >= 0 || off.X <= -64 {
		t.Errorf("satellite offset mid-flight = %v, want between 0 and -64", off.X)
	}
}

func TestFabRetargetsMidFlight(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})

	if err := tester.Tap(orbittest.ByIcon("plus")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	for i := 0; i < 8; i++ {
		tester.Pump()
		tester.Clock().Advance(16 * time.Millisecond)
	}
	tester.Pump()
	midOffset := satelliteOffsets(tester)[0].X

	// Collapse before the expansion finishes. The motion must continue
	// from the current pose, not snap to the expanded one.
	if err := tester.Tap(orbittest.ByIcon("plus")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	tester.Pump()
	afterToggle := satelliteOffsets(tester)[0].X
	if afterToggle != midOffset {
		t.Errorf("offset jumped from %v to %v on retarget, want continuity", midOffset, afterToggle)
	}

	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if off := satelliteOffsets(tester)[0]; off != (graphics.Offset{}) {
		t.Errorf("offset = %v after interrupted collapse, want (0,0)", off)
	}
}

func TestFabButtonSizeDrivesOffsets(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{ButtonSize: 48})
	expand(t, tester, "plus")

	want := []graphics.Offset{
		{X: -96, Y: 0},
		{X: -84, Y: -84},
		{X: 0, Y: -96},
	}
	for i, off := range satelliteOffsets(tester) {
		if off != want[i] {
			t.Errorf("satellite %d offset = %v at size 48, want %v", i+1, off, want[i])
		}
	}
}

func TestFabShadowRadii(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{})

	result := tester.Find(orbittest.ByType[widgets.FabButton]())
	if result.Count() != 4 {
		t.Fatalf("found %d FabButtons, want 4", result.Count())
	}
	for i := 0; i < 3; i++ {
		if got := result.At(i).Widget().(widgets.FabButton).ShadowRadius; got != 8 {
			t.Errorf("satellite %d shadow = %v, want 8", i+1, got)
		}
	}
	if got := result.At(3).Widget().(widgets.FabButton).ShadowRadius; got != 4 {
		t.Errorf("main shadow = %v, want 4", got)
	}
}

func TestFabThemeFallback(t *testing.T) {
	tester := orbittest.NewWidgetTesterWithT(t)
	custom := theme.DefaultFabTheme()
	custom.MainColor = graphics.RGB(1, 2, 3)
	custom.MainIcon = "menu"
	custom.Fill = graphics.FillGradient
	tester.SetTheme(custom)

	if err := tester.PumpWidget(widgets.ExpandableFab{}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	buttons := tester.Find(orbittest.ByType[widgets.FabButton]())
	main := buttons.At(3).Widget().(widgets.FabButton)
	if main.Color != custom.MainColor {
		t.Errorf("main color = %08X, want themed %08X", uint32(main.Color), uint32(custom.MainColor))
	}
	if main.Icon != "menu" {
		t.Errorf("main icon = %q, want themed menu", main.Icon)
	}
	if main.Fill != graphics.FillGradient {
		t.Errorf("main fill = %v, want themed gradient", main.Fill)
	}
}

func TestFabFieldOverridesTheme(t *testing.T) {
	tester := pumpFab(t, widgets.ExpandableFab{
		MainIcon:   "close",
		FirstColor: graphics.RGB(9, 9, 9),
	})

	buttons := tester.Find(orbittest.ByType[widgets.FabButton]())
	if got := buttons.At(3).Widget().(widgets.FabButton).Icon; got != "close" {
		t.Errorf("main icon = %q, want close", got)
	}
	if got := buttons.At(0).Widget().(widgets.FabButton).Color; got != graphics.RGB(9, 9, 9) {
		t.Errorf("first color = %08X, want override", uint32(got))
	}
	// Remaining fields still come from the theme.
	if got := buttons.At(1).Widget().(widgets.FabButton).Color; got != graphics.ColorBlue {
		t.Errorf("second color = %08X, want default blue", uint32(got))
	}
}

func TestGradientFillKeepsGeometryAndWiring(t *testing.T) {
	fired := false
	tester := pumpFab(t, widgets.ExpandableFab{
		Fill:       graphics.FillGradient,
		OnThirdTap: func() { fired = true },
	})
	expand(t, tester, "plus")

	boxes := tester.Find(orbittest.ByType[widgets.DecoratedBox]())
	for i := 0; i < boxes.Count(); i++ {
		if boxes.At(i).Widget().(widgets.DecoratedBox).Gradient == nil {
			t.Errorf("button %d has no gradient with gradient fill", i)
		}
	}

	// Fill style changes rendering only; offsets and callbacks are
	// untouched.
	want := []graphics.Offset{
		{X: -64, Y: 0},
		{X: -56, Y: -56},
		{X: 0, Y: -64},
	}
	for i, off := range satelliteOffsets(tester) {
		if off != want[i] {
			t.Errorf("satellite %d offset = %v with gradient fill, want %v", i+1, off, want[i])
		}
	}
	if err := tester.Tap(orbittest.ByIcon("upload")); err != nil {
		t.Fatalf("Tap(upload): %v", err)
	}
	if !fired {
		t.Error("third callback did not fire with gradient fill")
	}
}

func TestTwoFabsAreIndependent(t *testing.T) {
	tester := orbittest.NewWidgetTesterWithT(t)
	err := tester.PumpWidget(widgets.StackOf(
		widgets.ExpandableFab{MainIcon: "left"},
		widgets.ExpandableFab{MainIcon: "right"},
	))
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	expand(t, tester, "left")

	ops := satelliteOpacities(tester)
	if len(ops) != 6 {
		t.Fatalf("found %d satellites, want 6", len(ops))
	}
	for i := 0; i < 3; i++ {
		if ops[i] != 1 {
			t.Errorf("first fab satellite %d opacity = %v, want 1", i+1, ops[i])
		}
	}
	for i := 3; i < 6; i++ {
		if ops[i] != 0 {
			t.Errorf("second fab satellite %d opacity = %v, want still 0", i-2, ops[i])
		}
	}
}
