package scrub

import "sync"

// Container is a horizontally scrollable surface a Scrubber can follow.
type Container interface {
	Metrics() Metrics
	SetScrollLeft(v float64)
	// OnResize and OnScroll register listeners and return a function that
	// removes them.
	OnResize(fn func()) (cancel func())
	OnScroll(fn func()) (cancel func())
}

type listeners struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func()
}

func (l *listeners) add(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

func (l *listeners) notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.fns))
	for id := 0; id < l.nextID; id++ {
		if fn, ok := l.fns[id]; ok {
			fns = append(fns, fn)
		}
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Viewport is an in-memory Container: a client window over wider content.
type Viewport struct {
	mu      sync.Mutex
	metrics Metrics
	resize  listeners
	scroll  listeners
}

// NewViewport creates an empty viewport.
func NewViewport() *Viewport {
	return &Viewport{}
}

// Metrics returns the current size and offset.
func (v *Viewport) Metrics() Metrics {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.metrics
}

// SetSize updates client and content widths, clamps the offset and notifies
// resize listeners when anything changed.
func (v *Viewport) SetSize(client, scroll float64) {
	v.mu.Lock()
	changed := v.metrics.ClientWidth != client || v.metrics.ScrollWidth != scroll
	v.metrics.ClientWidth = client
	v.metrics.ScrollWidth = scroll
	v.metrics.ScrollLeft = clamp(v.metrics.ScrollLeft, 0, v.metrics.MaxScroll())
	v.mu.Unlock()
	if changed {
		v.resize.notify()
	}
}

// SetScrollLeft moves the offset, clamped to the valid range, and notifies
// scroll listeners when it changed.
func (v *Viewport) SetScrollLeft(left float64) {
	v.mu.Lock()
	next := clamp(left, 0, v.metrics.MaxScroll())
	changed := next != v.metrics.ScrollLeft
	v.metrics.ScrollLeft = next
	v.mu.Unlock()
	if changed {
		v.scroll.notify()
	}
}

// ScrollBy moves the offset by delta.
func (v *Viewport) ScrollBy(delta float64) {
	v.SetScrollLeft(v.Metrics().ScrollLeft + delta)
}

// Reveal scrolls the least amount needed to show [start, end).
func (v *Viewport) Reveal(start, end float64) {
	m := v.Metrics()
	switch {
	case start < m.ScrollLeft:
		v.SetScrollLeft(start)
	case end > m.ScrollLeft+m.ClientWidth:
		v.SetScrollLeft(end - m.ClientWidth)
	}
}

// OnResize registers a size listener.
func (v *Viewport) OnResize(fn func()) func() { return v.resize.add(fn) }

// OnScroll registers a scroll listener.
func (v *Viewport) OnScroll(fn func()) func() { return v.scroll.add(fn) }

// Listeners returns the number of registered listeners.
func (v *Viewport) Listeners() int {
	return v.resize.count() + v.scroll.count()
}
