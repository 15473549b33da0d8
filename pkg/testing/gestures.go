package testing

import (
	"fmt"

	"github.com/go-orbit/orbit/pkg/core"
	"github.com/go-orbit/orbit/pkg/widgets"
)

// Tap simulates a tap on the first element matched by finder.
//
// The tap is delivered to the nearest [widgets.GestureDetector] at or
// below the matched element, mirroring how the host's hit testing would
// resolve a pointer landing on the match. Elements hidden behind a zero
// [widgets.Opacity] do not receive taps, the same way a fully
// transparent node is skipped during hit testing.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}
	return t.tapElement(result.First(), finder)
}

// TapAt simulates a tap on the match at the given index.
func (t *WidgetTester) TapAt(finder Finder, index int) error {
	result := t.Find(finder)
	if index < 0 || index >= result.Count() {
		return fmt.Errorf("TapAt: index %d out of range (found %d): %s",
			index, result.Count(), finder.Description())
	}
	return t.tapElement(result.At(index), finder)
}

func (t *WidgetTester) tapElement(target core.Element, finder Finder) error {
	detector := findDetector(target)
	if detector == nil {
		return fmt.Errorf("Tap: no GestureDetector at or below match: %s", finder.Description())
	}
	if !isHittable(detector) {
		return fmt.Errorf("Tap: element is invisible to hit testing: %s", finder.Description())
	}
	detector.Widget().(widgets.GestureDetector).HandleTap()
	return nil
}

// findDetector locates the first GestureDetector element at or below e,
// or at one of its ancestors if the subtree has none. Searching upward
// matches a tap landing on a glyph inside a tappable button.
func findDetector(e core.Element) core.Element {
	var found core.Element
	walkTree(e, func(el core.Element) bool {
		if _, ok := el.Widget().(widgets.GestureDetector); ok {
			found = el
			return false
		}
		return true
	})
	if found != nil {
		return found
	}
	if _, ok := e.Widget().(widgets.GestureDetector); ok {
		return e
	}
	return e.FindAncestor(func(ancestor core.Element) bool {
		_, ok := ancestor.Widget().(widgets.GestureDetector)
		return ok
	})
}

// isHittable reports whether e would receive pointer events: no
// ancestor may hide it behind a zero opacity.
func isHittable(e core.Element) bool {
	if op, ok := e.Widget().(widgets.Opacity); ok && op.Opacity <= 0 {
		return false
	}
	hidden := e.FindAncestor(func(ancestor core.Element) bool {
		op, ok := ancestor.Widget().(widgets.Opacity)
		return ok && op.Opacity <= 0
	})
	return hidden == nil
}
