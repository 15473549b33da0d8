package core

import "reflect"

// Widget is an immutable description of part of the user interface.
// Widgets are configuration objects: creating them is cheap, and the
// framework compares them by concrete type and key to decide whether an
// existing element can be updated in place.
type Widget interface {
	// CreateElement instantiates the element that manages this widget's
	// position in the tree.
	CreateElement() Element

	// Key returns the identity key used to match widgets across rebuilds.
	// A nil key matches any widget of the same concrete type.
	Key() any
}

// StatelessWidget describes part of the UI purely as a function of its
// own configuration.
type StatelessWidget interface {
	Widget

	// Build returns the child widget subtree for this configuration.
	Build(ctx BuildContext) Widget
}

// StatefulWidget describes part of the UI that owns mutable state.
// The widget itself stays immutable; the state object persists across
// rebuilds for as long as the element stays mounted.
type StatefulWidget interface {
	Widget

	// CreateState returns a fresh state object for a newly mounted element.
	CreateState() State
}

// State holds the mutable state for a StatefulWidget. Embed StateBase to
// get default implementations of everything except Build.
type State interface {
	// InitState is called once, after the state is attached to its element
	// and before the first Build.
	InitState()

	// Build returns the child widget subtree.
	Build(ctx BuildContext) Widget

	// DidChangeDependencies is called after InitState, and again whenever
	// an inherited widget this state depends on changes.
	DidChangeDependencies()

	// DidUpdateWidget is called when the element is updated with a new
	// widget configuration. old is the previous widget.
	DidUpdateWidget(old StatefulWidget)

	// Dispose releases resources. Called when the element unmounts.
	Dispose()
}

// RenderWidget is a primitive node interpreted directly by the host
// renderer. It carries configuration but no Build method; its element
// only keeps the children reported by the widget inflated.
//
// Concrete types embed RenderBase and implement ChildWidgets. Nil
// entries are allowed and occupy a slot without inflating anything.
type RenderWidget interface {
	Widget

	// ChildWidgets returns the child widgets to inflate, in paint order.
	ChildWidgets() []Widget
}

// InheritedWidget propagates data down the tree. Descendants that call
// BuildContext.DependOnInherited register a dependency and rebuild when
// UpdateShouldNotify reports a change.
type InheritedWidget interface {
	Widget

	// ChildWidget returns the subtree below this widget.
	ChildWidget() Widget

	// UpdateShouldNotify reports whether dependents must rebuild after the
	// widget at this position changed from old to the receiver.
	UpdateShouldNotify(old InheritedWidget) bool
}

// BuildContext is the element's view of its position in the tree during a
// build.
type BuildContext interface {
	// DependOnInherited registers a dependency on the nearest ancestor
	// inherited widget of the given concrete type and returns it, or nil
	// if no such ancestor exists.
	DependOnInherited(widgetType reflect.Type) InheritedWidget

	// FindAncestor walks up the tree and returns the first ancestor
	// element for which match returns true, or nil.
	FindAncestor(match func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular tree location.
type Element interface {
	BuildContext

	// Widget returns the current widget configuration.
	Widget() Widget

	// Depth returns the element's distance from the root.
	Depth() int

	// Mount attaches the element below parent and inflates its subtree.
	Mount(parent Element, slot int)

	// Update replaces the widget configuration with a compatible one.
	Update(newWidget Widget)

	// Unmount detaches the element and releases its resources.
	Unmount()

	// MarkNeedsBuild schedules the element for rebuilding.
	MarkNeedsBuild()

	// RebuildIfNeeded rebuilds the element if it was marked dirty.
	RebuildIfNeeded()

	// VisitChildren calls visit for each child element, in slot order.
	VisitChildren(visit func(Element))

	setParent(parent Element, slot int)
	setWidget(w Widget)
	setBuildOwner(owner *BuildOwner)
	setSelf(self Element)
	buildOwner() *BuildOwner
}

// Listenable is an object that notifies registered listeners when it
// changes. AddListener returns a removal func.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable is a resource with an explicit teardown step.
type Disposable interface {
	Dispose()
}
