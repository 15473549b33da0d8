package animation_test

import (
	"math"
	"testing"

	"github.com/go-orbit/orbit/pkg/animation"
)

func TestSpringCurveEndpoints(t *testing.T) {
	curve := animation.DefaultSpring().Curve()

	if got := curve(0); got != 0 {
		t.Errorf("curve(0) = %v, want 0", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("curve(1) = %v, want 1", got)
	}
	if got := curve(-0.5); got != 0 {
		t.Errorf("curve(-0.5) = %v, want 0", got)
	}
	if got := curve(1.5); got != 1 {
		t.Errorf("curve(1.5) = %v, want 1", got)
	}
}

func TestSpringCurveOvershoots(t *testing.T) {
	// An under-damped spring must swing past the target before settling.
	curve := animation.SpringDescription{Response: 0.5, Damping: 0.4}.Curve()

	peak := 0.0
	for i := 1; i < 100; i++ {
		v := curve(float64(i) / 100)
		if v > peak {
			peak = v
		}
	}
	if peak <= 1.0 {
		t.Errorf("peak = %v, want overshoot above 1.0", peak)
	}
}

func TestSpringCurveCriticallyDamped(t *testing.T) {
	curve := animation.SmoothSpring().Curve()

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := curve(float64(i) / 100)
		if v > 1.0+1e-9 {
			t.Fatalf("curve(%v) = %v, critically damped spring must not overshoot", float64(i)/100, v)
		}
		if v < prev-1e-9 {
			t.Fatalf("curve(%v) = %v, want monotone rise (prev %v)", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestSettleDurationScalesWithResponse(t *testing.T) {
	snappy := animation.SpringDescription{Response: 0.2, Damping: 0.5}
	lazy := animation.SpringDescription{Response: 0.8, Damping: 0.5}

	if snappy.SettleDuration() >= lazy.SettleDuration() {
		t.Errorf("settle %v >= %v, want shorter settle for smaller response",
			snappy.SettleDuration(), lazy.SettleDuration())
	}
}

func TestSpringSimulationSettles(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 0, 0, 1)

	const dt = 1.0 / 60.0
	settled := false
	for i := 0; i < 2000; i++ {
		if sim.Step(dt) {
			settled = true
			break
		}
	}
	if !settled {
		t.Fatal("simulation did not settle")
	}
	if got := sim.Position(); got != 1 {
		t.Errorf("Position() = %v, want exactly 1 after settling", got)
	}
	if got := sim.Velocity(); got != 0 {
		t.Errorf("Velocity() = %v, want 0 after settling", got)
	}
	if !sim.IsDone() {
		t.Error("IsDone() = false after settling")
	}
}

func TestSpringSimulationOvershoots(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 0, 0, 1)

	const dt = 1.0 / 60.0
	peak := 0.0
	for i := 0; i < 2000 && !sim.Step(dt); i++ {
		if sim.Position() > peak {
			peak = sim.Position()
		}
	}
	if peak <= 1.0 {
		t.Errorf("peak position = %v, want overshoot above target", peak)
	}
}

func TestSpringSimulationRetarget(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 0, 0, 1)

	const dt = 1.0 / 60.0
	for i := 0; i < 10; i++ {
		sim.Step(dt)
	}
	midPosition := sim.Position()
	if midPosition <= 0 {
		t.Fatalf("Position() = %v mid-flight, want progress toward 1", midPosition)
	}

	sim.Retarget(0)
	for i := 0; i < 2000 && !sim.Step(dt); i++ {
	}
	if !sim.IsDone() {
		t.Fatal("simulation did not settle after retarget")
	}
	if got := sim.Position(); got != 0 {
		t.Errorf("Position() = %v, want 0 after retargeting", got)
	}
}

func TestSpringSimulationZeroStep(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 0.25, 3, 1)

	if sim.Step(0) {
		t.Error("Step(0) = true, want false")
	}
	if got := sim.Position(); got != 0.25 {
		t.Errorf("Position() = %v after zero step, want 0.25", got)
	}
	if got := sim.Velocity(); got != 3 {
		t.Errorf("Velocity() = %v after zero step, want 3", got)
	}
}

func TestSpringDescriptionIsZero(t *testing.T) {
	if !(animation.SpringDescription{}).IsZero() {
		t.Error("zero value IsZero() = false")
	}
	if animation.DefaultSpring().IsZero() {
		t.Error("DefaultSpring().IsZero() = true")
	}
}

func TestDefaultSpringValues(t *testing.T) {
	spring := animation.DefaultSpring()
	if spring.Response != 0.5 || spring.Damping != 0.4 || spring.BlendDuration != 0.2 {
		t.Errorf("DefaultSpring() = %+v, want {0.5 0.4 0.2}", spring)
	}
}

func TestSpringCurveMatchesClosedForm(t *testing.T) {
	spring := animation.SpringDescription{Response: 0.5, Damping: 0.4}
	curve := spring.Curve()

	omega := 2 * math.Pi / spring.Response
	zeta := spring.Damping
	omegaD := omega * math.Sqrt(1-zeta*zeta)
	settle := spring.SettleDuration().Seconds()

	for _, tt := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		x := tt * settle
		want := 1 - math.Exp(-zeta*omega*x)*(math.Cos(omegaD*x)+(zeta*omega/omegaD)*math.Sin(omegaD*x))
		if got := curve(tt); math.Abs(got-want) > 1e-9 {
			t.Errorf("curve(%v) = %v, want %v", tt, got, want)
		}
	}
}
