package tui

import (
	"math"
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/scrub"
	"github.com/ikari-pl/go-squadstats/internal/tui/theme"
)

// thumbCells rounds a thumb to whole cells inside a track of width cells.
func thumbCells(t scrub.Thumb, width int) (left, size int) {
	size = max(1, int(math.Round(t.Width)))
	size = min(size, width)
	left = int(math.Round(t.Left))
	left = max(0, min(left, width-size))
	return left, size
}

// renderScrubber draws the horizontal scroll track. An inert thumb, when
// nothing overflows, leaves the line blank.
func renderScrubber(s *scrub.Scrubber, width int, styles *theme.Styles) string {
	if s == nil || width <= 0 {
		return strings.Repeat(" ", max(0, width))
	}
	t := s.Thumb()
	if t.Inert {
		return strings.Repeat(" ", width)
	}

	left, size := thumbCells(t, width)
	thumb := "━"
	if s.Dragging() {
		thumb = "█"
	}
	return styles.Track.Render(strings.Repeat("─", left)) +
		styles.Thumb.Render(strings.Repeat(thumb, size)) +
		styles.Track.Render(strings.Repeat("─", width-left-size))
}
