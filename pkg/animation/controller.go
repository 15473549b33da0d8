package animation

import (
	"fmt"
	"time"
)

// AnimationStatus describes where a controller sits in its lifecycle.
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While running, the status is the travel direction; at rest it is
// Dismissed (value at the lower bound) or Completed (upper bound).
type AnimationStatus int

const (
	// AnimationDismissed: at rest at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward: running toward the upper bound.
	AnimationForward
	// AnimationReverse: running toward the lower bound.
	AnimationReverse
	// AnimationCompleted: at rest at the upper bound.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController advances a Value between its bounds over a fixed
// Duration, shaped by Curve. Pair it with a [Tween] to map the value
// onto colors, offsets, or any other range.
//
// Call Dispose when the owner goes away so the driving ticker stops.
type AnimationController struct {
	// Value is the current position, normally within [LowerBound, UpperBound].
	Value float64

	// Duration is the full travel time between the bounds.
	Duration time.Duration

	// Curve reshapes linear progress. Nil means linear.
	Curve func(float64) float64

	// LowerBound and UpperBound default to 0 and 1.
	LowerBound float64
	UpperBound float64

	status          AnimationStatus
	ticker          *Ticker
	target          float64
	origin          float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextID          int
}

// NewAnimationController creates a controller at the lower bound.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		UpperBound:      1,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// NewSpringController creates a controller whose duration and curve
// both come from a spring description. Retargeting restarts the curve
// from the current value, so interrupted transitions stay smooth.
func NewSpringController(spring SpringDescription) *AnimationController {
	c := NewAnimationController(spring.SettleDuration())
	c.Curve = spring.Curve()
	return c
}

// Forward runs from the current value to the upper bound.
func (c *AnimationController) Forward() {
	c.run(c.UpperBound, AnimationForward)
}

// Reverse runs from the current value to the lower bound.
func (c *AnimationController) Reverse() {
	c.run(c.LowerBound, AnimationReverse)
}

// AnimateTo runs from the current value to an arbitrary target.
func (c *AnimationController) AnimateTo(target float64) {
	if target > c.Value {
		c.run(target, AnimationForward)
	} else {
		c.run(target, AnimationReverse)
	}
}

func (c *AnimationController) run(target float64, direction AnimationStatus) {
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.target = target
	c.origin = c.Value
	c.setStatus(direction)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.settle()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1 {
		progress = 1
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.origin + (c.target-c.origin)*eased
	c.notifyListeners()

	if progress >= 1 {
		c.settle()
	}
}

// settle stops the ticker and derives the resting status from the
// final value.
func (c *AnimationController) settle() {
	c.Stop()
	if c.Value <= c.LowerBound {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(AnimationCompleted)
	}
}

// Reset snaps the value back to the lower bound without animating.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Stop halts the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current lifecycle status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether the controller is running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// IsCompleted reports whether the controller rests at the upper bound.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed reports whether the controller rests at the lower bound.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AddListener subscribes to value changes and returns an unsubscribe
// function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener subscribes to status transitions and returns an
// unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextID
	c.nextID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the animation and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
