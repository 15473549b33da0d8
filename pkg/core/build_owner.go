package core

import (
	"slices"
	"sync"
)

// BuildOwner collects elements marked dirty and rebuilds them in a
// single depth-ordered pass per frame.
type BuildOwner struct {
	mu     sync.Mutex
	queue  []Element
	queued map[Element]struct{}

	// OnNeedsFrame fires when an element is newly enqueued, so a host
	// with on-demand frame scheduling knows to request one.
	OnNeedsFrame func()
}

// NewBuildOwner creates an empty build owner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{queued: make(map[Element]struct{})}
}

// ScheduleBuild enqueues an element for the next build pass. Scheduling
// an already queued element is a no-op.
func (b *BuildOwner) ScheduleBuild(element Element) {
	b.mu.Lock()
	if _, dup := b.queued[element]; dup {
		b.mu.Unlock()
		return
	}
	b.queued[element] = struct{}{}
	b.queue = append(b.queue, element)
	b.mu.Unlock()

	if b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// NeedsWork reports whether any element awaits a build pass.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue) > 0
}

// FlushBuild drains the queue, rebuilding shallow elements first so a
// parent rebuild can absorb its children's dirt. Elements scheduled
// during the pass are picked up before it returns.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.queue) == 0 {
			b.mu.Unlock()
			return
		}
		batch := b.queue
		b.queue = nil
		clear(b.queued)
		b.mu.Unlock()

		slices.SortFunc(batch, func(x, y Element) int {
			return x.Depth() - y.Depth()
		})
		for _, element := range batch {
			if m, ok := element.(interface{ isMounted() bool }); ok && !m.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}
