package animation

import (
	"math"
	"time"
)

// SpringDescription configures a damped spring in terms of perceptual
// parameters rather than raw physics constants.
//
// Response is the approximate period of one oscillation in seconds;
// smaller values feel snappier. Damping is the damping ratio in (0, 1):
// values below 1 undershoot and bounce before settling. BlendDuration
// softens retargeting when an animation is interrupted mid-flight.
type SpringDescription struct {
	// Response is the oscillation period in seconds. Must be positive.
	Response float64

	// Damping is the damping ratio. Values in (0, 1) produce an
	// under-damped spring with visible overshoot.
	Damping float64

	// BlendDuration is the time in seconds over which a retargeted
	// animation blends from the old spring to the new one.
	BlendDuration float64
}

// DefaultSpring returns the bouncy spring used by the widget kit when
// no explicit spring is configured.
func DefaultSpring() SpringDescription {
	return SpringDescription{
		Response:      0.5,
		Damping:       0.4,
		BlendDuration: 0.2,
	}
}

// BouncySpring returns a spring with pronounced overshoot, suitable for
// playful gesture-driven motion.
func BouncySpring() SpringDescription {
	return SpringDescription{
		Response:      0.4,
		Damping:       0.3,
		BlendDuration: 0.2,
	}
}

// SmoothSpring returns a spring that settles without visible bounce.
func SmoothSpring() SpringDescription {
	return SpringDescription{
		Response:      0.4,
		Damping:       1.0,
		BlendDuration: 0.2,
	}
}

// IsZero reports whether the description is unset.
func (s SpringDescription) IsZero() bool {
	return s.Response == 0 && s.Damping == 0 && s.BlendDuration == 0
}

// omega returns the undamped angular frequency.
func (s SpringDescription) omega() float64 {
	response := s.Response
	if response <= 0 {
		response = DefaultSpring().Response
	}
	return 2 * math.Pi / response
}

// dampingRatio returns the damping ratio clamped to a stable range.
func (s SpringDescription) dampingRatio() float64 {
	zeta := s.Damping
	if zeta <= 0 {
		zeta = DefaultSpring().Damping
	}
	if zeta > 1 {
		zeta = 1
	}
	return zeta
}

// SettleDuration returns how long the spring takes for its envelope to
// decay to roughly a thousandth of the initial displacement. Use it as
// the Duration of a controller driven by [SpringDescription.Curve].
func (s SpringDescription) SettleDuration() time.Duration {
	// The amplitude envelope is e^(-zeta*omega*t); solve for the time at
	// which it drops below 0.001.
	decay := s.dampingRatio() * s.omega()
	seconds := math.Log(1000) / decay
	return time.Duration(seconds * float64(time.Second))
}

// Curve returns the closed-form position of a unit spring released at
// rest, remapped over [0, 1] so it can drive an [AnimationController].
// For damping ratios below 1 the curve overshoots past 1.0 before
// settling, which is what gives the motion its bounce.
func (s SpringDescription) Curve() func(float64) float64 {
	omega := s.omega()
	zeta := s.dampingRatio()
	settle := s.SettleDuration().Seconds()

	if zeta >= 1 {
		// Critically damped: no oscillatory term.
		return func(t float64) float64 {
			if t <= 0 {
				return 0
			}
			if t >= 1 {
				return 1
			}
			x := t * settle
			return 1 - math.Exp(-omega*x)*(1+omega*x)
		}
	}

	omegaD := omega * math.Sqrt(1-zeta*zeta)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * settle
		envelope := math.Exp(-zeta * omega * x)
		return 1 - envelope*(math.Cos(omegaD*x)+(zeta*omega/omegaD)*math.Sin(omegaD*x))
	}
}

// SpringSimulation integrates a damped spring step by step, carrying
// position and velocity across retargets. Use it instead of
// [SpringDescription.Curve] when an animation is driven by gestures and
// the current velocity must be preserved.
type SpringSimulation struct {
	desc     SpringDescription
	position float64
	velocity float64
	target   float64
	done     bool
}

// Tolerances below which the simulation is considered settled.
const (
	springDistanceTolerance = 0.0005
	springVelocityTolerance = 0.005
)

// NewSpringSimulation creates a simulation starting at from with the
// given initial velocity, heading toward target.
func NewSpringSimulation(desc SpringDescription, from, velocity, target float64) *SpringSimulation {
	return &SpringSimulation{
		desc:     desc,
		position: from,
		velocity: velocity,
		target:   target,
	}
}

// Retarget redirects the simulation toward a new target, keeping the
// current position and velocity.
func (s *SpringSimulation) Retarget(target float64) {
	s.target = target
	s.done = false
}

// Step advances the simulation by dt and reports whether it has settled.
// Once settled the position snaps exactly to the target.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt <= 0 {
		return false
	}

	omega := s.desc.omega()
	zeta := s.desc.dampingRatio()

	// Semi-implicit Euler with substeps for stability at large dt.
	const maxStep = 1.0 / 240.0
	remaining := dt
	for remaining > 0 {
		h := remaining
		if h > maxStep {
			h = maxStep
		}
		displacement := s.position - s.target
		accel := -omega*omega*displacement - 2*zeta*omega*s.velocity
		s.velocity += accel * h
		s.position += s.velocity * h
		remaining -= h
	}

	if math.Abs(s.position-s.target) < springDistanceTolerance &&
		math.Abs(s.velocity) < springVelocityTolerance {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// IsDone reports whether the simulation has settled at the target.
func (s *SpringSimulation) IsDone() bool { return s.done }
