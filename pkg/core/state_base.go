package core

import "sync"

// stateBase is satisfied by any struct embedding StateBase, letting the
// hooks accept the concrete state directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase supplies the boilerplate of a [State]: rebuild scheduling,
// a disposer registry, and no-op lifecycle defaults. Embed it and
// override what the widget needs.
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
type StateBase struct {
	element   *StatefulElement
	mu        sync.Mutex
	disposers []func()
	disposed  bool
}

// attach binds the state to its element. Runs before InitState.
func (s *StateBase) attach(element *StatefulElement) {
	s.element = element
}

// Element returns the hosting element, or nil before mount.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// Context returns the element as a BuildContext, or nil before mount.
func (s *StateBase) Context() BuildContext {
	if s.element == nil {
		return nil
	}
	return s.element
}

// SetState runs fn and schedules a rebuild. After disposal it does
// nothing. UI thread only.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers cleanup to run when the state is disposed, and
// returns a function that unregisters it. Registering on an already
// disposed state runs the cleanup immediately.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return func() {}
	}
	i := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if i < len(s.disposers) {
			s.disposers[i] = nil
		}
	}
}

// RunDisposers marks the state disposed and runs every registered
// cleanup, newest first. Safe to call more than once.
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
}

// Dispose runs the disposers. Overrides must still call RunDisposers
// (or this method).
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// IsDisposed reports whether Dispose has run.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Default lifecycle no-ops, overridden as needed.

func (s *StateBase) InitState() {}

func (s *StateBase) Build(ctx BuildContext) Widget { return nil }

func (s *StateBase) DidChangeDependencies() {}

func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}
