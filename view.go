package touchui

import (
	"image"
	"image/color"
)

// Key identifies a keyboard key. Values follow the devdraw/Plan 9 key runes
// so printable keys are their own code.
type Key rune

const (
	KeyEscape     = Key(27)
	KeyNewline    = Key('\n')
	KeyTab        = Key('\t')
	KeyBackspace  = Key(8)
	KeyArrowUp    = Key(0xf00e)
	KeyArrowDown  = Key(0x80)
	KeyPageUp     = Key(0xf00f)
	KeyPageDown   = Key(0xf013)
	KeyArrowLeft  = Key(0xf011)
	KeyArrowRight = Key(0xf012)
)

// Mouse buttons, bit positions as reported by the backend.
const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

// Viewer is the capability set every node in a view hierarchy implements.
// View provides default no-op input handling and the tree-walking Draw and
// Update, so widgets embed View and override only what they need.
type Viewer interface {
	// Base returns the common view state shared by all variants.
	Base() *View

	MouseDown(button int, p image.Point)
	MouseUp(button int, p image.Point)
	MouseDrag(p, rel image.Point)
	MouseMotion(p image.Point)
	KeyDown(key Key, ch rune)
	KeyUp(key Key)

	// Focused and Blurred are called when the view gains or loses focus.
	Focused()
	Blurred()

	// ParentSized is called during the parent's Relayout, before this
	// view's own Relayout, so the view can reposition or resize itself
	// relative to the new parent size.
	ParentSized(size image.Point)

	// Update advances time-based state by dt seconds.
	Update(dt float64)

	// Draw renders the view onto its own surface, composing children.
	Draw()
}

// View is a rectangular node with a frame in its parent's coordinate space,
// a backing surface of the same size, and an ordered list of children. The
// parent exclusively owns its children; the child keeps a non-owning
// back-reference. The zero View is usable; the frame and surface are
// established by SetFrame and Relayout, typically when a scene is pushed.
type View struct {
	Draggable  bool        // MouseDrag is delivered while pressed if set.
	Hidden     bool        // Excluded from drawing and hit-testing.
	Disabled   bool        // Excluded from hit-testing.
	Background color.Color // Fill before children are composed; nil leaves the surface as is.

	self     Viewer // outermost implementation, bound at attach/push
	parent   *View
	app      *App // set on the root scene at push
	frame    image.Rectangle
	surface  *Surface
	children []Viewer
}

var _ Viewer = &View{}

// Base returns v itself; embedding widgets inherit it.
func (v *View) Base() *View { return v }

// viewer returns the outermost implementation, falling back to the base for
// detached stand-alone views.
func (v *View) viewer() Viewer {
	if v.self != nil {
		return v.self
	}
	return v
}

// Frame returns the view's frame in its parent's coordinate space.
func (v *View) Frame() image.Rectangle { return v.frame }

// SetFrame changes the frame. It does not touch the backing surface: call
// Relayout afterwards. Mutating a detached view's frame is legal and has no
// visible effect until it is attached.
func (v *View) SetFrame(r image.Rectangle) { v.frame = r }

// Parent returns the owning view, or nil for a root or detached view.
func (v *View) Parent() *View { return v.parent }

// App returns the application this view's hierarchy belongs to, or nil for a
// hierarchy that has never been pushed.
func (v *View) App() *App {
	for cur := v; cur != nil; cur = cur.parent {
		if cur.app != nil {
			return cur.app
		}
	}
	return nil
}

var fallbackTheme = NewTheme()

// theme resolves the theme widgets draw with. Detached hierarchies get the
// default palette.
func (v *View) theme() *Theme {
	if a := v.App(); a != nil {
		return a.Theme
	}
	return fallbackTheme
}

// Surface returns the backing surface, nil before the first Relayout.
func (v *View) Surface() *Surface { return v.surface }

// Children returns the owned children in back-to-front draw order.
func (v *View) Children() []Viewer { return v.children }

// AddChild appends c as the front-most child, detaching it from any previous
// parent first. The interface value passed becomes the identity returned by
// hit-testing.
func (v *View) AddChild(c Viewer) {
	cb := c.Base()
	if cb.parent != nil {
		cb.parent.RemoveChild(c)
	}
	cb.self = c
	cb.parent = v
	v.children = append(v.children, c)
}

// RemoveChild detaches c if v owns it.
func (v *View) RemoveChild(c Viewer) {
	cb := c.Base()
	for i, k := range v.children {
		if k.Base() == cb {
			v.children = append(v.children[:i], v.children[i+1:]...)
			cb.parent = nil
			return
		}
	}
}

// Hit returns the deepest visible, enabled descendant (or v itself) whose
// frame contains p, with p in the caller's coordinate space. Children are
// tested front to back so overlapping siblings resolve to the topmost.
// Returns nil when p lies outside v's frame.
func (v *View) Hit(p image.Point) Viewer {
	if v.Hidden || v.Disabled || !p.In(v.frame) {
		return nil
	}
	local := p.Sub(v.frame.Min)
	for i := len(v.children) - 1; i >= 0; i-- {
		if hit := v.children[i].Base().Hit(local); hit != nil {
			return hit
		}
	}
	return v.viewer()
}

// FromWindow transforms a point from window coordinates into v's local
// coordinate space by walking up the parent chain, subtracting each origin.
func (v *View) FromWindow(p image.Point) image.Point {
	for cur := v; cur != nil; cur = cur.parent {
		p = p.Sub(cur.frame.Min)
	}
	return p
}

// ToWindow is the inverse of FromWindow for axis-aligned frames.
func (v *View) ToWindow(p image.Point) image.Point {
	for cur := v; cur != nil; cur = cur.parent {
		p = p.Add(cur.frame.Min)
	}
	return p
}

// Relayout resizes the backing surface to match the current frame, then
// recursively gives each child a chance to respond to the new size before
// relayouting the child itself.
func (v *View) Relayout() {
	size := v.frame.Size()
	if v.surface == nil || v.surface.Size() != size {
		v.surface = NewSurface(size)
	}
	for _, c := range v.children {
		c.ParentSized(size)
		c.Base().Relayout()
	}
}

// Default input handlers. Widgets override the ones they care about.

func (v *View) MouseDown(button int, p image.Point) {}
func (v *View) MouseUp(button int, p image.Point)   {}
func (v *View) MouseDrag(p, rel image.Point)        {}
func (v *View) MouseMotion(p image.Point)           {}
func (v *View) KeyDown(key Key, ch rune)            {}
func (v *View) KeyUp(key Key)                       {}
func (v *View) Focused()                            {}
func (v *View) Blurred()                            {}
func (v *View) ParentSized(size image.Point)        {}

// Update advances children. Widgets with animations override and usually
// still call the embedded View's Update.
func (v *View) Update(dt float64) {
	for _, c := range v.children {
		c.Update(dt)
	}
}

// Draw fills the background if one is set, then draws each child and
// composes its surface at the child's frame origin, in child order, so later
// children end up on top.
func (v *View) Draw() {
	if v.surface == nil || v.surface.Size() != v.frame.Size() {
		v.surface = NewSurface(v.frame.Size())
	}
	if v.Background != nil {
		v.surface.Fill(v.Background)
	}
	for _, c := range v.children {
		cb := c.Base()
		if cb.Hidden {
			continue
		}
		c.Draw()
		v.surface.Blit(cb.surface, cb.frame.Min)
	}
}
