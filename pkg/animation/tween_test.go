package animation_test

import (
	"testing"

	"github.com/go-orbit/orbit/pkg/animation"
	"github.com/go-orbit/orbit/pkg/graphics"
)

func TestTweenFloat64Endpoints(t *testing.T) {
	tw := animation.TweenFloat64(10, 20)
	if got := tw.Evaluate(0); got != 10 {
		t.Errorf("Evaluate(0) = %v, want Begin", got)
	}
	if got := tw.Evaluate(1); got != 20 {
		t.Errorf("Evaluate(1) = %v, want End", got)
	}
	if got := tw.Evaluate(0.5); got != 15 {
		t.Errorf("Evaluate(0.5) = %v, want 15", got)
	}
}

func TestTweenOffset(t *testing.T) {
	tw := animation.TweenOffset(graphics.Offset{}, graphics.Offset{X: -64, Y: -32})
	got := tw.Evaluate(0.5)
	if got.X != -32 || got.Y != -16 {
		t.Errorf("Evaluate(0.5) = %+v, want (-32, -16)", got)
	}
}

func TestTweenColorEndpoints(t *testing.T) {
	tw := animation.TweenColor(graphics.ColorBlack, graphics.ColorWhite)
	if got := tw.Evaluate(0); got != graphics.ColorBlack {
		t.Errorf("Evaluate(0) = %08X, want black", uint32(got))
	}
	if got := tw.Evaluate(1); got != graphics.ColorWhite {
		t.Errorf("Evaluate(1) = %08X, want white", uint32(got))
	}
	// Midpoint lerps every channel, alpha included.
	mid := animation.LerpColor(graphics.RGBA8(0, 0, 0, 0), graphics.RGBA8(200, 100, 50, 255), 0.5)
	if mid != graphics.RGBA8(100, 50, 25, 127) {
		t.Errorf("LerpColor midpoint = %08X", uint32(mid))
	}
}

func TestTweenWithoutLerpReturnsEnd(t *testing.T) {
	tw := &animation.Tween[string]{Begin: "a", End: "b"}
	if got := tw.Evaluate(0); got != "b" {
		t.Errorf("Evaluate without Lerp = %q, want End", got)
	}
}

func TestTweenTransformUsesControllerValue(t *testing.T) {
	c := animation.NewAnimationController(0)
	c.Value = 0.25
	tw := animation.TweenFloat64(0, 100)
	if got := tw.Transform(c); got != 25 {
		t.Errorf("Transform = %v, want 25", got)
	}
}
