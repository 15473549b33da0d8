// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for building reactive user interfaces:
// Widget, Element, State, and BuildContext. It follows a declarative UI model
// where widgets describe what the UI should look like, and the framework
// keeps an element tree in sync with those descriptions. Painting the tree is
// the host renderer's job; see the widgets package for the primitive nodes it
// interprets.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are lightweight
// configuration objects that can be created frequently without performance concerns.
//
// Element is the instantiation of a Widget at a particular location in the tree.
// Elements manage the lifecycle and identity of widgets.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    open bool
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Tap(func() {
//	        s.SetState(func() { s.open = !s.open })
//	    }, content)
//	}
//
// # Hooks
//
// UseController and UseListenable help manage resources and subscriptions
// with automatic cleanup on disposal. Managed holds a value and triggers a
// rebuild whenever it is set.
//
// # Constructor Conventions
//
// Controllers and services use NewX() constructors returning pointers:
//
//	ctrl := animation.NewAnimationController(time.Second)
//
// This distinguishes long-lived, mutable objects (controllers) from
// immutable configuration objects (widgets, which use struct literals
// or XxxOf() helpers).
package core
