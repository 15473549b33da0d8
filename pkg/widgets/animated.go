package widgets

import (
	"time"

	"github.com/go-orbit/orbit/pkg/animation"
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/graphics"
)

// AnimatedOpacity is an Opacity that animates changes to its value.
//
// When the Opacity property changes, the widget automatically animates
// from the old value to the new value over the specified Duration using
// the specified Curve. The first build applies the value immediately.
//
// Example:
//
//	widgets.AnimatedOpacity{
//	    Duration: 300 * time.Millisecond,
//	    Curve:    animation.EaseInOut,
//	    Opacity:  visible ? 1.0 : 0.0,
//	    Child:    child,
//	}
type AnimatedOpacity struct {
	core.StatefulBase
	// Duration is the length of the animation.
	Duration time.Duration
	// Curve transforms the animation progress. If nil, uses linear interpolation.
	Curve func(float64) float64
	// OnEnd is called when the animation completes.
	OnEnd func()

	// Opacity is the target transparency value (0.0 to 1.0).
	Opacity float64
	// Child is the widget to which opacity is applied.
	Child core.Widget
}

func (a AnimatedOpacity) CreateState() core.State {
	return &animatedOpacityState{}
}

type animatedOpacityState struct {
	core.StateBase
	controller *animation.AnimationController

	opacityTween   *animation.Tween[float64]
	currentOpacity float64
}

func (s *animatedOpacityState) InitState() {
	w := s.Element().Widget().(AnimatedOpacity)
	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(w.Duration)
		if w.Curve != nil {
			c.Curve = w.Curve
		}
		return c
	})
	core.UseListenable(s, s.controller)

	s.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			w := s.Element().Widget().(AnimatedOpacity)
			if w.OnEnd != nil {
				w.OnEnd()
			}
		}
	})

	// Initialize current value to the target (no initial animation)
	s.currentOpacity = w.Opacity
}

func (s *animatedOpacityState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(AnimatedOpacity)
	w := s.Element().Widget().(AnimatedOpacity)

	s.controller.Duration = w.Duration
	if w.Curve != nil {
		s.controller.Curve = w.Curve
	} else {
		s.controller.Curve = animation.LinearCurve
	}

	if old.Opacity != w.Opacity {
		// Tween from the current animated value so mid-flight retargets
		// stay smooth.
		s.opacityTween = animation.TweenFloat64(s.currentOpacity, w.Opacity)
		s.controller.Reset()
		s.controller.Forward()
	}
}

func (s *animatedOpacityState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(AnimatedOpacity)

	if s.opacityTween != nil {
		s.currentOpacity = s.opacityTween.Transform(s.controller)
	} else {
		s.currentOpacity = w.Opacity
	}

	return Opacity{
		Opacity: s.currentOpacity,
		Child:   w.Child,
	}
}

// AnimatedTransform is a Transform that animates changes to its offset,
// rotation, and scale.
//
// All three properties retarget together from their current animated
// values, so interrupting an animation mid-flight never jumps.
type AnimatedTransform struct {
	core.StatefulBase
	// Duration is the length of the animation.
	Duration time.Duration
	// Curve transforms the animation progress. If nil, uses linear interpolation.
	Curve func(float64) float64
	// OnEnd is called when the animation completes.
	OnEnd func()

	// Offset is the target translation in logical pixels.
	Offset graphics.Offset
	// Rotation is the target rotation, in degrees.
	Rotation float64
	// Scale is the target scale factor. Zero means 1.0.
	Scale float64
	// Child is the widget being transformed.
	Child core.Widget
}

func (a AnimatedTransform) CreateState() core.State {
	return &animatedTransformState{}
}

func normalizeScale(scale float64) float64 {
	if scale == 0 {
		return 1
	}
	return scale
}

type animatedTransformState struct {
	core.StateBase
	controller *animation.AnimationController

	offsetTween   *animation.Tween[graphics.Offset]
	rotationTween *animation.Tween[float64]
	scaleTween    *animation.Tween[float64]

	currentOffset   graphics.Offset
	currentRotation float64
	currentScale    float64
}

func (s *animatedTransformState) InitState() {
	w := s.Element().Widget().(AnimatedTransform)
	s.controller = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(w.Duration)
		if w.Curve != nil {
			c.Curve = w.Curve
		}
		return c
	})
	core.UseListenable(s, s.controller)

	s.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			w := s.Element().Widget().(AnimatedTransform)
			if w.OnEnd != nil {
				w.OnEnd()
			}
		}
	})

	// Initialize current values to target values (no initial animation)
	s.currentOffset = w.Offset
	s.currentRotation = w.Rotation
	s.currentScale = normalizeScale(w.Scale)
}

func (s *animatedTransformState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(AnimatedTransform)
	w := s.Element().Widget().(AnimatedTransform)

	s.controller.Duration = w.Duration
	if w.Curve != nil {
		s.controller.Curve = w.Curve
	} else {
		s.controller.Curve = animation.LinearCurve
	}

	changed := old.Offset != w.Offset ||
		old.Rotation != w.Rotation ||
		normalizeScale(old.Scale) != normalizeScale(w.Scale)

	if changed {
		// Tween ALL properties from their current animated values so the
		// motion stays coherent when only some of them changed.
		s.offsetTween = animation.TweenOffset(s.currentOffset, w.Offset)
		s.rotationTween = animation.TweenFloat64(s.currentRotation, w.Rotation)
		s.scaleTween = animation.TweenFloat64(s.currentScale, normalizeScale(w.Scale))

		s.controller.Reset()
		s.controller.Forward()
	}
}

func (s *animatedTransformState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(AnimatedTransform)

	if s.offsetTween != nil {
		s.currentOffset = s.offsetTween.Transform(s.controller)
		s.currentRotation = s.rotationTween.Transform(s.controller)
		s.currentScale = s.scaleTween.Transform(s.controller)
	} else {
		s.currentOffset = w.Offset
		s.currentRotation = w.Rotation
		s.currentScale = normalizeScale(w.Scale)
	}

	return Transform{
		Offset:   s.currentOffset,
		Rotation: s.currentRotation,
		Scale:    s.currentScale,
		Child:    w.Child,
	}
}
