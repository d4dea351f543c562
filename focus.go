package touchui

// Focus tracks the single view eligible to receive keyboard input. Each App
// owns one, so multiple apps or test harnesses do not share state.
type Focus struct {
	view Viewer
}

// Current returns the focused view, or nil.
func (f *Focus) Current() Viewer { return f.view }

// Set moves focus to v, which may be nil to clear it. The previously focused
// view receives Blurred before v receives Focused. Setting the already
// focused view is a no-op.
func (f *Focus) Set(v Viewer) {
	if sameViewer(f.view, v) {
		return
	}
	prev := f.view
	f.view = nil
	if prev != nil {
		prev.Blurred()
	}
	f.view = v
	if v != nil {
		v.Focused()
	}
}

// drop clears focus without a Blurred notification, for when the dispatcher
// has already notified the view.
func (f *Focus) drop() { f.view = nil }

func sameViewer(a, b Viewer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Base() == b.Base()
}
