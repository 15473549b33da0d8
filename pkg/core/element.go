package core

import "reflect"

// elementBase carries the bookkeeping shared by every element kind:
// tree position, dirtiness, and the build owner reference. Concrete
// elements embed it and set self so base methods can reach the outer
// type.
type elementBase struct {
	widget  Widget
	parent  Element
	self    Element
	owner   *BuildOwner
	depth   int
	slot    int
	dirty   bool
	mounted bool

	// inherited widgets this element depends on, keyed by concrete type
	dependencies map[reflect.Type]*InheritedElement
}

func (e *elementBase) Widget() Widget { return e.widget }
func (e *elementBase) Depth() int     { return e.depth }

func (e *elementBase) setParent(parent Element, slot int) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	} else {
		e.depth = 0
	}
}

func (e *elementBase) setWidget(w Widget)             { e.widget = w }
func (e *elementBase) setBuildOwner(owner *BuildOwner) { e.owner = owner }
func (e *elementBase) setSelf(self Element)           { e.self = self }
func (e *elementBase) buildOwner() *BuildOwner        { return e.owner }

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty || !e.mounted {
		return
	}
	e.dirty = true
	if e.owner != nil {
		e.owner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) isMounted() bool { return e.mounted }

func (e *elementBase) FindAncestor(match func(Element) bool) Element {
	for ancestor := e.parent; ancestor != nil; {
		if match(ancestor) {
			return ancestor
		}
		next := Element(nil)
		if base := ancestorBase(ancestor); base != nil {
			next = base.parent
		}
		ancestor = next
	}
	return nil
}

func (e *elementBase) DependOnInherited(widgetType reflect.Type) InheritedWidget {
	ancestor := e.FindAncestor(func(el Element) bool {
		inh, ok := el.(*InheritedElement)
		return ok && reflect.TypeOf(inh.Widget()) == widgetType
	})
	if ancestor == nil {
		return nil
	}
	inh := ancestor.(*InheritedElement)
	if e.dependencies == nil {
		e.dependencies = make(map[reflect.Type]*InheritedElement)
	}
	e.dependencies[widgetType] = inh
	inh.addDependent(e.self)
	return inh.Widget().(InheritedWidget)
}

func (e *elementBase) unmountBase() {
	for _, inh := range e.dependencies {
		inh.removeDependent(e.self)
	}
	e.dependencies = nil
	e.mounted = false
	e.dirty = false
}

// ancestorBase extracts the shared base from a concrete element so the
// upward walk can continue without an exported Parent accessor.
func ancestorBase(el Element) *elementBase {
	switch v := el.(type) {
	case *StatelessElement:
		return &v.elementBase
	case *StatefulElement:
		return &v.elementBase
	case *RenderElement:
		return &v.elementBase
	case *InheritedElement:
		return &v.elementBase
	}
	return nil
}

// canUpdateWidget reports whether an element built for old can accept
// new in place. Widgets match when their concrete types and keys agree.
func canUpdateWidget(old, new Widget) bool {
	if old == nil || new == nil {
		return false
	}
	if reflect.TypeOf(old) != reflect.TypeOf(new) {
		return false
	}
	return reflect.DeepEqual(old.Key(), new.Key())
}

// updateChild reconciles a child element against a new widget. It
// returns the surviving element, which may be the old one updated in
// place, a freshly inflated one, or nil when newWidget is nil.
func updateChild(parent Element, child Element, newWidget Widget, slot int) Element {
	if newWidget == nil {
		if child != nil {
			child.Unmount()
		}
		return nil
	}
	if child != nil {
		if canUpdateWidget(child.Widget(), newWidget) {
			child.Update(newWidget)
			return child
		}
		child.Unmount()
	}
	return inflateWidget(parent, newWidget, slot)
}

// inflateWidget creates and mounts a new element for widget below parent.
func inflateWidget(parent Element, widget Widget, slot int) Element {
	el := widget.CreateElement()
	el.setWidget(widget)
	el.setSelf(el)
	if parent != nil {
		el.setBuildOwner(parent.buildOwner())
	}
	el.Mount(parent, slot)
	return el
}

// MountRoot inflates widget as the root of a new element tree attached
// to owner.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	el := widget.CreateElement()
	el.setWidget(widget)
	el.setSelf(el)
	el.setBuildOwner(owner)
	el.Mount(nil, 0)
	return el
}

// StatelessElement hosts a StatelessWidget and manages its single child.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement returns an unmounted element for a stateless widget.
func NewStatelessElement() *StatelessElement { return &StatelessElement{} }

func (e *StatelessElement) Mount(parent Element, slot int) {
	e.setParent(parent, slot)
	e.mounted = true
	e.rebuild()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.rebuild()
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.rebuild()
}

func (e *StatelessElement) rebuild() {
	e.dirty = false
	built := e.widget.(StatelessWidget).Build(e.self)
	e.child = updateChild(e.self, e.child, built, 0)
}

func (e *StatelessElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.unmountBase()
}

func (e *StatelessElement) VisitChildren(visit func(Element)) {
	if e.child != nil {
		visit(e.child)
	}
}

// StatefulElement hosts a StatefulWidget, owning the State object for
// the lifetime of the mount.
type StatefulElement struct {
	elementBase
	state State
	child Element
}

// NewStatefulElement returns an unmounted element for a stateful widget.
func NewStatefulElement() *StatefulElement { return &StatefulElement{} }

// State returns the element's state object.
func (e *StatefulElement) State() State { return e.state }

func (e *StatefulElement) Mount(parent Element, slot int) {
	e.setParent(parent, slot)
	e.mounted = true
	e.state = e.widget.(StatefulWidget).CreateState()
	if attachable, ok := e.state.(stateAttachable); ok {
		attachable.attach(e)
	}
	e.state.InitState()
	e.state.DidChangeDependencies()
	e.rebuild()
}

func (e *StatefulElement) Update(newWidget Widget) {
	old := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(old)
	e.rebuild()
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.rebuild()
}

func (e *StatefulElement) rebuild() {
	e.dirty = false
	built := e.state.Build(e.self)
	e.child = updateChild(e.self, e.child, built, 0)
}

func (e *StatefulElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.state.Dispose()
	e.unmountBase()
}

func (e *StatefulElement) VisitChildren(visit func(Element)) {
	if e.child != nil {
		visit(e.child)
	}
}

// notifyDependenciesChanged is called by an inherited ancestor when its
// widget changed in a way dependents must observe.
func (e *StatefulElement) notifyDependenciesChanged() {
	e.state.DidChangeDependencies()
	e.MarkNeedsBuild()
}

// stateAttachable is implemented by StateBase so the element can hand
// the state its context before InitState runs.
type stateAttachable interface {
	attach(element *StatefulElement)
}

// RenderElement hosts a RenderWidget. Primitive nodes have no Build
// step; the element only keeps the widget's children inflated.
type RenderElement struct {
	elementBase
	children []Element
}

// NewRenderElement returns an unmounted element for a render widget.
func NewRenderElement() *RenderElement { return &RenderElement{} }

func (e *RenderElement) Mount(parent Element, slot int) {
	e.setParent(parent, slot)
	e.mounted = true
	e.updateChildren()
}

func (e *RenderElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.updateChildren()
}

func (e *RenderElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	e.updateChildren()
}

func (e *RenderElement) updateChildren() {
	e.dirty = false
	next := e.widget.(RenderWidget).ChildWidgets()
	if len(next) > len(e.children) {
		grown := make([]Element, len(next))
		copy(grown, e.children)
		e.children = grown
	}
	for i := range e.children {
		var w Widget
		if i < len(next) {
			w = next[i]
		}
		e.children[i] = updateChild(e.self, e.children[i], w, i)
	}
	for i := len(e.children) - 1; i >= 0 && e.children[i] == nil; i-- {
		e.children = e.children[:i]
	}
}

func (e *RenderElement) Unmount() {
	for _, child := range e.children {
		if child != nil {
			child.Unmount()
		}
	}
	e.children = nil
	e.unmountBase()
}

func (e *RenderElement) VisitChildren(visit func(Element)) {
	for _, child := range e.children {
		if child != nil {
			visit(child)
		}
	}
}
