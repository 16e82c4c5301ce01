package tui

import (
	"strings"
	"testing"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
)

func TestNewNavigator(t *testing.T) {
	nav := NewNavigator()
	if nav == nil {
		t.Fatal("NewNavigator returned nil")
	}

	if nav.GetDepth() != 0 {
		t.Error("New navigator should have depth 0")
	}
	if nav.RenderPath() != "" {
		t.Error("New navigator should render an empty trail")
	}
}

func TestNavigatorPushPopState(t *testing.T) {
	nav := NewNavigator()

	// Pop from empty stack should return false
	if _, ok := nav.PopState(); ok {
		t.Error("PopState on empty stack should return false")
	}

	first := ViewState{View: ViewDense, Section: catalog.DomainOffense, Title: "Offensive Stats"}
	second := ViewState{View: ViewDetail, Section: catalog.DomainHealing, Title: "Healing Stats"}
	nav.PushState(first)
	nav.PushState(second)

	if nav.GetDepth() != 2 {
		t.Errorf("GetDepth() = %d, want 2", nav.GetDepth())
	}

	got, ok := nav.PopState()
	if !ok || got != second {
		t.Errorf("PopState() = %+v, %v; want %+v", got, ok, second)
	}
	got, ok = nav.PopState()
	if !ok || got != first {
		t.Errorf("PopState() = %+v, %v; want %+v", got, ok, first)
	}
	if nav.GetDepth() != 0 {
		t.Errorf("GetDepth() = %d after popping everything", nav.GetDepth())
	}
}

func TestNavigatorPeekState(t *testing.T) {
	nav := NewNavigator()

	if _, ok := nav.PeekState(); ok {
		t.Error("PeekState on empty stack should return false")
	}

	vs := ViewState{View: ViewDense, Section: catalog.DomainBoons}
	nav.PushState(vs)

	got, ok := nav.PeekState()
	if !ok || got != vs {
		t.Errorf("PeekState() = %+v, %v", got, ok)
	}
	if nav.GetDepth() != 1 {
		t.Error("PeekState should not remove the entry")
	}
}

func TestNavigatorMaxHistory(t *testing.T) {
	nav := NewNavigator()

	for i := 0; i < MaxHistory+5; i++ {
		nav.PushState(ViewState{View: ViewDense, Title: strings.Repeat("x", i+1)})
	}

	if nav.GetDepth() != MaxHistory {
		t.Errorf("GetDepth() = %d, want %d", nav.GetDepth(), MaxHistory)
	}

	// The oldest entries were dropped.
	var last ViewState
	for {
		vs, ok := nav.PopState()
		if !ok {
			break
		}
		last = vs
	}
	if len(last.Title) != 6 {
		t.Errorf("oldest kept entry has title length %d, want 6", len(last.Title))
	}
}

func TestNavigatorClear(t *testing.T) {
	nav := NewNavigator()
	nav.PushState(ViewState{View: ViewDense})
	nav.PushState(ViewState{View: ViewDetail})

	nav.Clear()

	if nav.GetDepth() != 0 {
		t.Errorf("GetDepth() = %d after Clear", nav.GetDepth())
	}
	if _, ok := nav.PopState(); ok {
		t.Error("PopState after Clear should return false")
	}
}

func TestNavigatorRenderPath(t *testing.T) {
	tests := []struct {
		name   string
		states []ViewState
		want   string
	}{
		{
			name:   "single",
			states: []ViewState{{View: ViewDense, Title: "Offensive Stats"}},
			want:   "Offensive Stats",
		},
		{
			name: "detail and fallback label",
			states: []ViewState{
				{View: ViewDense, Section: catalog.DomainHealing},
				{View: ViewDetail, Title: "Boon Generation"},
			},
			want: "healing › Boon Generation (detail)",
		},
		{
			name: "truncated",
			states: []ViewState{
				{View: ViewDense, Title: "A"},
				{View: ViewDense, Title: "B"},
				{View: ViewDense, Title: "C"},
				{View: ViewDense, Title: "D"},
				{View: ViewDense, Title: "E"},
			},
			want: "... › B › C › D › E",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator()
			for _, s := range tt.states {
				nav.PushState(s)
			}
			if got := nav.RenderPath(); got != tt.want {
				t.Errorf("RenderPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
