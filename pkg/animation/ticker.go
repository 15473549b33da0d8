// Package animation provides animation primitives for driving smooth,
// physics-based motion in widget trees.
//
// # Core Components
//
//   - [AnimationController]: Drives animations over time, managing value progression
//     from 0.0 to 1.0 with configurable duration and easing curves.
//
//   - [Tween]: Interpolates between begin and end values of any type using the
//     controller's current value. Generic tweens support float64, Color, Offset, etc.
//
//   - Curves: Easing functions that transform linear progress into natural-feeling
//     motion. Includes standard curves like [EaseIn], [EaseOut], [EaseInOut], and
//     the damped spring curve produced by [SpringDescription.Curve].
//
//   - [SpringSimulation]: Physics-based spring integration for gesture-driven
//     animations where position and velocity carry across retargets.
//
// # Basic Usage
//
// Create a controller, configure a tween, and use AddListener to rebuild on changes:
//
//	// In InitState
//	s.controller = animation.NewAnimationController(300 * time.Millisecond)
//	s.controller.Curve = animation.EaseInOut
//	s.opacityTween = animation.TweenFloat64(0, 1)
//	s.controller.AddListener(func() {
//	    s.SetState(func() {})
//	})
//	s.controller.Forward()
//
//	// In Build
//	opacity := s.opacityTween.Transform(s.controller)
//	return widgets.Opacity{Opacity: opacity, Child: child}
//
//	// In Dispose
//	s.controller.Dispose()
//
// # Implicit Animations
//
// For simpler cases, use implicit animation widgets like [widgets.AnimatedOpacity]
// or [widgets.AnimatedTransform] which manage controllers internally.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu sync.Mutex
	active   = make(map[*Ticker]struct{})
)

// Ticker invokes a callback with its elapsed running time, once per
// frame while started. It is the timing primitive underneath
// [AnimationController]; most code never touches it directly.
//
// The host frame loop drives all started tickers via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	running  bool
	started  time.Time
}

// NewTicker creates a stopped ticker.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start begins ticking. Starting a running ticker is a no-op.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.started = Now()
	tickerMu.Lock()
	active[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop ceases ticking. Stopping a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	tickerMu.Lock()
	delete(active, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.running
}

// Elapsed returns the running time since Start, or zero when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	return Now().Sub(t.started)
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// StepTickers delivers one tick to every running ticker. The host
// frame loop calls this once per frame.
func StepTickers() {
	tickerMu.Lock()
	if len(active) == 0 {
		tickerMu.Unlock()
		return
	}
	// Snapshot so callbacks can start and stop tickers freely.
	batch := make([]*Ticker, 0, len(active))
	for t := range active {
		batch = append(batch, t)
	}
	tickerMu.Unlock()

	for _, t := range batch {
		if t.running && t.callback != nil {
			t.callback(Now().Sub(t.started))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(active) > 0
}
