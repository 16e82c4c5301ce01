// Package scrub drives a horizontal scrollbar thumb that mirrors, and
// writes back to, the horizontal scroll position of a container.
package scrub

import "math"

// DefaultMinThumb is the smallest thumb width.
const DefaultMinThumb = 20

// Metrics describe a horizontally scrollable container.
type Metrics struct {
	ScrollWidth float64
	ClientWidth float64
	ScrollLeft  float64
}

// MaxScroll is the largest valid ScrollLeft.
func (m Metrics) MaxScroll() float64 {
	return math.Max(0, m.ScrollWidth-m.ClientWidth)
}

// Overflows reports whether content is wider than the viewport.
func (m Metrics) Overflows() bool {
	return m.ScrollWidth > m.ClientWidth
}

// Thumb is the computed thumb position within its track.
type Thumb struct {
	Width float64
	Left  float64
	// Inert is set when there is nothing to scroll.
	Inert bool
}

// Geometry computes the thumb for a track width and container metrics.
func Geometry(track float64, m Metrics, minThumb float64) Thumb {
	if track <= 0 {
		return Thumb{Inert: true}
	}
	if !m.Overflows() || m.ScrollWidth <= 0 {
		return Thumb{Width: track, Left: 0, Inert: true}
	}

	width := math.Max(minThumb, math.Floor(track*m.ClientWidth/m.ScrollWidth))
	if width > track {
		width = track
	}
	maxThumb := math.Max(0, track-width)
	maxScroll := m.MaxScroll()

	left := 0.0
	if maxScroll > 0 {
		left = math.Floor(clamp(m.ScrollLeft, 0, maxScroll) / maxScroll * maxThumb)
	}
	return Thumb{Width: width, Left: clamp(left, 0, maxThumb)}
}

// ScrollLeftFor maps a thumb position back to a scroll offset.
func ScrollLeftFor(thumbLeft, track, thumbWidth float64, m Metrics) float64 {
	maxLeft := math.Max(0, track-thumbWidth)
	if maxLeft <= 0 {
		return 0
	}
	return clamp(thumbLeft, 0, maxLeft) / maxLeft * m.MaxScroll()
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
