package core

// InheritedElement hosts an InheritedWidget and tracks the elements
// that registered a dependency on it via DependOnInherited.
type InheritedElement struct {
	elementBase
	child      Element
	dependents map[Element]struct{}
}

// NewInheritedElement returns an unmounted element for an inherited widget.
func NewInheritedElement() *InheritedElement { return &InheritedElement{} }

func (e *InheritedElement) Mount(parent Element, slot int) {
	e.setParent(parent, slot)
	e.mounted = true
	e.child = updateChild(e.self, nil, e.widget.(InheritedWidget).ChildWidget(), 0)
}

func (e *InheritedElement) Update(newWidget Widget) {
	old := e.widget.(InheritedWidget)
	e.widget = newWidget
	if newWidget.(InheritedWidget).UpdateShouldNotify(old) {
		e.notifyDependents()
	}
	e.child = updateChild(e.self, e.child, newWidget.(InheritedWidget).ChildWidget(), 0)
}

func (e *InheritedElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	e.child = updateChild(e.self, e.child, e.widget.(InheritedWidget).ChildWidget(), 0)
}

func (e *InheritedElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.dependents = nil
	e.unmountBase()
}

func (e *InheritedElement) VisitChildren(visit func(Element)) {
	if e.child != nil {
		visit(e.child)
	}
}

func (e *InheritedElement) addDependent(dep Element) {
	if e.dependents == nil {
		e.dependents = make(map[Element]struct{})
	}
	e.dependents[dep] = struct{}{}
}

func (e *InheritedElement) removeDependent(dep Element) {
	delete(e.dependents, dep)
}

func (e *InheritedElement) notifyDependents() {
	for dep := range e.dependents {
		if stateful, ok := dep.(*StatefulElement); ok {
			stateful.notifyDependenciesChanged()
		} else {
			dep.MarkNeedsBuild()
		}
	}
}
