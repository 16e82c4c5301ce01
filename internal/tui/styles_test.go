package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestNewStyleManager(t *testing.T) {
	tests := []string{"", "default", "neon", "unknown"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			sm := NewStyleManager(name)
			if sm == nil {
				t.Fatal("NewStyleManager returned nil")
			}
			if sm.GetTheme() == nil || sm.GetStyles() == nil {
				t.Error("style manager should expose its theme and styles")
			}
		})
	}
}

func TestStyleManagerHeader(t *testing.T) {
	sm := NewStyleManager("")

	header := sm.Header("Test Header", 60)
	if !strings.Contains(header, "Test Header") {
		t.Error("Header should contain the provided text")
	}

	lines := strings.Split(header, "\n")
	if len(lines) != 2 {
		t.Fatalf("Header should render 2 lines, got %d", len(lines))
	}
	if w := ansi.StringWidth(lines[1]); w != 60 {
		t.Errorf("gradient line width = %d, want 60", w)
	}

	// Zero width falls back to the default.
	if lines := strings.Split(sm.Header("x", 0), "\n"); ansi.StringWidth(lines[1]) != DefaultWidth {
		t.Errorf("Header(x, 0) should use the default width")
	}
}

func TestRenderGradientLine(t *testing.T) {
	sm := NewStyleManager("").(*styleManager)

	for _, width := range []int{5, 10, 80, 203} {
		if got := ansi.StringWidth(sm.renderGradientLine(width)); got != width {
			t.Errorf("renderGradientLine(%d) width = %d", width, got)
		}
	}
}

func TestStyleManagerFooter(t *testing.T) {
	sm := NewStyleManager("")

	footer := sm.Footer("Press q to quit", 40)
	if !strings.Contains(footer, "Press q to quit") {
		t.Error("Footer should contain the provided text")
	}
	if w := ansi.StringWidth(footer); w > 40 {
		t.Errorf("Footer width = %d, want at most 40", w)
	}
}

func TestStyleManagerTextStyles(t *testing.T) {
	sm := NewStyleManager("")

	tests := []struct {
		name   string
		render func(string) string
	}{
		{"SelectedItem", sm.SelectedItem},
		{"Error", sm.Error},
		{"Success", sm.Success},
		{"DimText", sm.DimText},
		{"Title", sm.Title},
		{"Subtitle", sm.Subtitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.render("some text"); !strings.Contains(got, "some text") {
				t.Errorf("%s(%q) = %q", tt.name, "some text", got)
			}
		})
	}
}

func TestStyleManagerSectionBadge(t *testing.T) {
	sm := NewStyleManager("")

	badge := sm.SectionBadge("healing", "Healing")
	if !strings.Contains(badge, "Healing") {
		t.Error("SectionBadge should contain the label")
	}
	if !strings.Contains(badge, "♥") {
		t.Error("SectionBadge should contain the section icon")
	}
}

func TestStyleManagerSeparator(t *testing.T) {
	sm := NewStyleManager("")

	tests := []struct {
		width int
		want  int
	}{
		{20, 20},
		{0, 60},
		{-5, 60},
	}

	for _, tt := range tests {
		if got := ansi.StringWidth(sm.Separator(tt.width)); got != tt.want {
			t.Errorf("Separator(%d) width = %d, want %d", tt.width, got, tt.want)
		}
	}
}
