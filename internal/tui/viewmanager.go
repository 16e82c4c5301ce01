package tui

// tableViews are the views that show section data, in toggle order.
var tableViews = []string{ViewDense, ViewDetail}

// viewSet implements the ViewManager interface over the fixed dashboard
// views. The active view lives in State.CurrentView.
type viewSet struct {
	dense  View
	detail View
	help   View
}

// NewViewManager creates the dense table, master-detail and help views.
func NewViewManager(styles StyleManager, filter FilterManager, keys keyMap) ViewManager {
	return &viewSet{
		dense:  NewDenseView(styles, filter, keys),
		detail: NewDetailView(styles, filter, keys),
		help:   NewHelpView(styles, keys),
	}
}

// Current returns the view named by the state, or the dense table for a nil
// state or an unknown name.
func (vs *viewSet) Current(state *State) View {
	if state == nil {
		return vs.dense
	}
	if v, ok := vs.Lookup(state.CurrentView); ok {
		return v
	}
	return vs.dense
}

// Lookup returns a view by name.
func (vs *viewSet) Lookup(name string) (View, bool) {
	switch name {
	case ViewDense:
		return vs.dense, true
	case ViewDetail:
		return vs.detail, true
	case ViewHelp:
		return vs.help, true
	}
	return nil, false
}

// Toggle returns the table view that follows name. Anything that is not a
// table view toggles to the master-detail view.
func (vs *viewSet) Toggle(name string) string {
	for i, t := range tableViews {
		if t == name {
			return tableViews[(i+1)%len(tableViews)]
		}
	}
	return ViewDetail
}

// Restorable reports whether a saved view can be returned to by back
// navigation. Help is transient and never restored.
func (vs *viewSet) Restorable(name string) bool {
	for _, t := range tableViews {
		if t == name {
			return true
		}
	}
	return false
}
