// Package testing provides a widget testing harness for the kit.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := orbittest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Find elements
//	    fab := tester.Find(orbittest.ByType[widgets.ExpandableFab]()).First()
//
//	    // Simulate gestures
//	    tester.Tap(orbittest.ByIcon("plus"))
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(orbittest.ByIcon("bell")).Exists() {
//	        t.Error("expected bell satellite")
//	    }
//	}
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// or run frames until everything settles:
//
//	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
//	    t.Fatal(err)
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import orbittest "github.com/go-orbit/orbit/pkg/testing"
package testing
