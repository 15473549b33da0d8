package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-orbit/orbit/pkg/animation"
	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/theme"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without real rendering.
// It drives the same build phases as a host would but uses a fake clock
// so animations advance only when told to.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	clock      *FakeClock
	prevClock  animation.Clock
	theme      *theme.FabThemeData
	dispatches []func()
}

// NewWidgetTester creates a tester with default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		clock:      clk,
		theme:      theme.DefaultFabTheme().Copy(),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores global state (animation clock). Must be called if
// not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	animation.SetClock(t.prevClock)
}

// SetTheme replaces the theme data. Must be called before PumpWidget.
func (t *WidgetTester) SetTheme(td *theme.FabThemeData) {
	t.theme = td
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	// Unmount previous tree
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}

	// Wrap in test scaffold: FabScope → user widget
	wrapped := theme.FabScope{
		Data:  t.theme,
		Child: widget,
	}

	t.root = core.MountRoot(wrapped, t.buildOwner)
	return t.Pump()
}

// Pump runs a single frame cycle: dispatches, tickers, build.
func (t *WidgetTester) Pump() error {
	// 1. Drain dispatch queue
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	// 2. Step tickers
	animation.StepTickers()

	// 3. Flush build
	t.buildOwner.FlushBuild()

	return nil
}

// PumpAndSettle runs frames until the framework is idle or the timeout
// is reached. Each frame advances the fake clock by frameDuration (16ms).
// Returns ErrSettleTimeout if the framework does not settle within timeout.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

// needsWork returns true if the framework has pending work.
func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() ||
		animation.HasActiveTickers() ||
		len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
