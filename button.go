package touchui

import "image"

// Button is a tappable widget. OnClicked fires when the pointer is released
// over the button after being pressed on it; a release elsewhere cancels the
// press (the dispatcher blurs the button, which resets its state).
type Button struct {
	View
	Text     string
	FontName string
	Primary  bool // draw with the primary color pair

	// OnClicked is emitted with the Button as its single argument.
	OnClicked Signal

	pressed bool
	focused bool
}

var _ Viewer = &Button{}

// NewButton returns a button with the given frame and text.
func NewButton(frame image.Rectangle, text string) *Button {
	b := &Button{Text: text}
	b.self = b
	b.frame = frame
	return b
}

func (b *Button) MouseDown(button int, p image.Point) {
	if button == Button1 {
		b.pressed = true
	}
}

func (b *Button) MouseUp(button int, p image.Point) {
	if button != Button1 || !b.pressed {
		return
	}
	b.pressed = false
	b.OnClicked.Emit(b)
}

func (b *Button) Focused() { b.focused = true }

func (b *Button) Blurred() {
	b.focused = false
	b.pressed = false
}

func (b *Button) Draw() {
	b.View.Draw()
	th := b.theme()
	face := th.Font(b.FontName)
	r := rect(b.frame.Size())

	bg, fg := th.Color("background"), th.Color("text")
	switch {
	case b.Disabled:
		bg, fg = th.Color("disabled.background"), th.Color("disabled.text")
	case b.Primary:
		bg, fg = th.Color("primary"), th.Color("primary.text")
	case b.pressed:
		bg = th.Color("pressed.background")
	}
	b.surface.FillRect(r, bg)
	border := th.Color("border")
	if b.focused {
		border = th.Color("focus.border")
	}
	b.surface.StrokeRect(r, border)

	sz := StringSize(face, b.Text)
	p := image.Pt((r.Dx()-sz.X)/2, (r.Dy()-sz.Y)/2+face.Metrics().Ascent.Ceil())
	if b.pressed {
		p.Y++
	}
	b.surface.DrawString(p, face, fg, b.Text)
}
