package core

// UseController builds a controller whose lifetime is bound to the
// state: it is disposed together with the state.
//
// Example:
//
//	func (s *fadeState) InitState() {
//	    s.controller = core.UseController(s, func() *animation.AnimationController {
//	        return animation.NewAnimationController(300 * time.Millisecond)
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	controller := create()
	s.state().OnDispose(controller.Dispose)
	return controller
}

// UseListenable rebuilds the state whenever the listenable notifies.
// The subscription is removed when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	base.OnDispose(listenable.AddListener(func() {
		base.SetState(nil)
	}))
}

// Managed holds a single value whose mutations rebuild the owning
// state. Not safe for concurrent use; access it from the UI thread
// only.
//
//	type counterState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *counterState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
//
//	// in Build
//	widgets.Tap(func() { s.count.Set(s.count.Value() + 1) }, content)
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged wraps an initial value in a Managed bound to the state.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{base: s.state(), value: initial}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set replaces the value and schedules a rebuild.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.base.SetState(nil)
}

// Update replaces the value with transform(current) and schedules a
// rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.value = transform(m.value)
	m.base.SetState(nil)
}
