package scrub

import "math"

// Option configures a Scrubber.
type Option func(*Scrubber)

// WithMinThumb overrides DefaultMinThumb, e.g. for a track measured in
// terminal cells.
func WithMinThumb(w float64) Option {
	return func(s *Scrubber) { s.minThumb = w }
}

// WithOnChange registers a callback for thumb changes.
func WithOnChange(fn func(Thumb)) Option {
	return func(s *Scrubber) { s.onChange = fn }
}

// Subscription holds the listeners a Scrubber registered on its container.
type Subscription struct {
	cancels []func()
}

// Close removes every listener. It is safe to call more than once.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}

// Scrubber keeps a thumb in sync with a container and turns pointer input on
// the track into scroll offsets.
type Scrubber struct {
	container Container
	sub       *Subscription
	track     float64
	minThumb  float64
	thumb     Thumb
	onChange  func(Thumb)

	dragging  bool
	dragX     float64
	dragStart float64
}

// New creates a detached scrubber.
func New(opts ...Option) *Scrubber {
	s := &Scrubber{minThumb: DefaultMinThumb}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach follows c, replacing any previous container. The returned
// subscription is also released by Detach.
func (s *Scrubber) Attach(c Container) *Subscription {
	s.Detach()
	s.container = c
	s.sub = &Subscription{cancels: []func(){
		c.OnResize(s.Update),
		c.OnScroll(s.Update),
	}}
	s.Update()
	return s.sub
}

// Detach releases every listener and ends any drag.
func (s *Scrubber) Detach() {
	s.sub.Close()
	s.sub = nil
	s.container = nil
	s.dragging = false
}

// SetTrackWidth records a new track size and recomputes the thumb.
func (s *Scrubber) SetTrackWidth(w float64) {
	if w == s.track {
		return
	}
	s.track = w
	s.Update()
}

// TrackWidth returns the current track size.
func (s *Scrubber) TrackWidth() float64 { return s.track }

// Update recomputes the thumb from the container.
func (s *Scrubber) Update() {
	next := Thumb{Inert: true}
	if s.container != nil {
		next = Geometry(s.track, s.container.Metrics(), s.minThumb)
	}
	if next == s.thumb {
		return
	}
	s.thumb = next
	if s.onChange != nil {
		s.onChange(next)
	}
}

// Thumb returns the current thumb.
func (s *Scrubber) Thumb() Thumb { return s.thumb }

// Dragging reports whether a thumb drag is in progress.
func (s *Scrubber) Dragging() bool { return s.dragging }

// OnThumb reports whether track position x falls on the thumb.
func (s *Scrubber) OnThumb(x float64) bool {
	return x >= s.thumb.Left && x < s.thumb.Left+s.thumb.Width
}

// PointerDown starts a drag when x is on the thumb.
func (s *Scrubber) PointerDown(x float64) bool {
	if s.container == nil || s.thumb.Inert || !s.OnThumb(x) {
		return false
	}
	s.dragging = true
	s.dragX = x
	s.dragStart = s.exactLeft()
	return true
}

// exactLeft is the unfloored thumb offset for the current scroll position.
func (s *Scrubber) exactLeft() float64 {
	m := s.container.Metrics()
	maxScroll := m.MaxScroll()
	if maxScroll <= 0 {
		return s.thumb.Left
	}
	maxLeft := math.Max(0, s.track-s.thumb.Width)
	return clamp(m.ScrollLeft, 0, maxScroll) / maxScroll * maxLeft
}

// PointerMove drags the thumb to follow x.
func (s *Scrubber) PointerMove(x float64) {
	if !s.dragging || s.container == nil {
		return
	}
	s.moveThumbTo(s.dragStart + (x - s.dragX))
}

// PointerUp ends a drag.
func (s *Scrubber) PointerUp() {
	s.dragging = false
}

// TrackClick centres the thumb on x.
func (s *Scrubber) TrackClick(x float64) {
	if s.container == nil || s.thumb.Width <= 0 {
		return
	}
	s.moveThumbTo(x - s.thumb.Width/2)
}

func (s *Scrubber) moveThumbTo(left float64) {
	maxLeft := math.Max(0, s.track-s.thumb.Width)
	next := clamp(left, 0, maxLeft)
	s.container.SetScrollLeft(ScrollLeftFor(next, s.track, s.thumb.Width, s.container.Metrics()))
}
