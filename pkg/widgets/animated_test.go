package widgets_test

import (
	"testing"
	"time"

	"github.com/go-orbit/orbit/pkg/animation"
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
	orbittest "github.com/go-orbit/orbit/pkg/testing"
	"github.com/go-orbit/orbit/pkg/widgets"
)

// fadeHost mounts an AnimatedOpacity whose target can be changed from
// the test, so property updates flow through a normal widget rebuild
// instead of a remount.
func fadeHost(initial float64, onEnd func(), retarget *func(float64)) core.Widget {
	return core.Stateful(
		func() float64 { return initial },
		func(target float64, ctx core.BuildContext, setState func(func(float64) float64)) core.Widget {
			*retarget = func(v float64) {
				setState(func(float64) float64 { return v })
			}
			return widgets.AnimatedOpacity{
				Duration: 200 * time.Millisecond,
				OnEnd:    onEnd,
				Opacity:  target,
				Child:    widgets.IconOf("plus"),
			}
		},
	)
}

func currentOpacity(tester *orbittest.WidgetTester) float64 {
	return tester.Find(orbittest.ByType[widgets.Opacity]()).First().Widget().(widgets.Opacity).Opacity
}

func currentTransform(tester *orbittest.WidgetTester) widgets.Transform {
	return tester.Find(orbittest.ByType[widgets.Transform]()).First().Widget().(widgets.Transform)
}

func TestAnimatedOpacityNoInitialAnimation(t *testing.T) {
	tester := orbittest.NewWidgetTesterWithT(t)
	var retarget func(float64)
	if err := tester.PumpWidget(fadeHost(0.6, nil, &retarget)); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if got := currentOpacity(tester); got != 0.6 {
		t.Errorf("opacity at mount = %v, want 0.6 immediately", got)
	}
	// Nothing should be animating after mount.
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
}

func TestAnimatedOpacityAnimatesOnChange(t *testing.T) {
	tester := orbittest.NewWidgetTesterWithT(t)
	ended := false
	var retarget func(float64)
	if err := tester.PumpWidget(fadeHost(0, func() { ended = true }, &retarget)); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	retarget(1)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}

	// Halfway through, the value sits strictly between the endpoints.
	tester.Clock().Advance(100 * time.Millisecond)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if got := currentOpacity(tester); got <= 0 || got >= 1 {
		t.Errorf("opacity at midpoint = %v, want between 0 and 1", got)
	}
	if ended {
		t.Error("OnEnd fired before the animation finished")
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if got := currentOpacity(tester); got != 1 {
		t.Errorf("opacity settled = %v, want 1", got)
	}
	if !ended {
		t.Error("OnEnd did not fire")
	}
}

func TestAnimatedOpacityRetargetsFromCurrentValue(t *testing.T) {
	tester := orbittest.NewWidgetTesterWithT(t)
	var retarget func(float64)
	if err := tester.PumpWidget(fadeHost(0, nil, &retarget)); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	retarget(1)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	tester.Clock().Advance(100 * time.Millisecond)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	mid := currentOpacity(tester)

	// Reverse direction mid-flight. The value must hold its current
	// position, not jump to either endpoint.
	retarget(0)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if got := currentOpacity(tester); got != mid {
		t.Errorf("opacity jumped from %v to %v on retarget", mid, got)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if got := currentOpacity(tester); got != 0 {
		t.Errorf("opacity settled = %v, want 0", got)
	}
}

func TestAnimatedTransformAnimatesAllProperties(t *testing.T) {
	tester := orbittest.NewWidgetTesterWithT(t)
	var toggle func(bool)
	host := core.Stateful(
		func() bool { return false },
		func(on bool, ctx core.BuildContext, setState func(func(bool) bool)) core.Widget {
			toggle = func(v bool) {
				setState(func(bool) bool { return v })
			}
			w := widgets.AnimatedTransform{
				Duration: 200 * time.Millisecond,
				Curve:    animation.EaseInOut,
				Child:    widgets.IconOf("plus"),
			}
			if on {
				w.Offset = graphics.Offset{X: -64}
				w.Rotation = 405
				w.Scale = 1.3
			}
			return w
		},
	)
	if err := tester.PumpWidget(host); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	tr := currentTransform(tester)
	if tr.Offset != (graphics.Offset{}) || tr.Rotation != 0 || tr.Scale != 1 {
		t.Errorf("initial transform = %+v, want identity", tr)
	}

	toggle(true)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	tester.Clock().Advance(100 * time.Millisecond)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	tr = currentTransform(tester)
	if tr.Offset.X >= 0 || tr.Offset.X <= -64 {
		t.Errorf("offset at midpoint = %v, want between 0 and -64", tr.Offset.X)
	}
	if tr.Rotation <= 0 || tr.Rotation >= 405 {
		t.Errorf("rotation at midpoint = %v, want between 0 and 405", tr.Rotation)
	}
	if tr.Scale <= 1 || tr.Scale >= 1.3 {
		t.Errorf("scale at midpoint = %v, want between 1 and 1.3", tr.Scale)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	tr = currentTransform(tester)
	if tr.Offset.X != -64 || tr.Rotation != 405 || tr.Scale != 1.3 {
		t.Errorf("settled transform = %+v, want targets", tr)
	}
}

func TestAnimatedTransformZeroScaleMeansIdentity(t *testing.T) {
	tester := orbittest.NewWidgetTesterWithT(t)
	err := tester.PumpWidget(widgets.AnimatedTransform{
		Duration: 100 * time.Millisecond,
		Child:    widgets.IconOf("plus"),
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if got := currentTransform(tester).EffectiveScale(); got != 1 {
		t.Errorf("effective scale = %v for zero Scale, want 1", got)
	}
}
