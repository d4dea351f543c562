package touchui

import (
	"fmt"
	"image"
	"io"
	"log"

	draw9 "9fans.net/go/draw"
)

// Devdraw is the production Backend: a devdraw window whose mouse and
// keyboard streams are decoded into normalized events, and which accepts the
// composed RGBA frame each tick.
//
// Devdraw reports key presses only, so this backend never produces
// EventKeyUp.
type Devdraw struct {
	display *draw9.Display
	mctl    *draw9.Mousectl
	kctl    *draw9.Keyboardctl
	errch   chan error

	pos     image.Point // last pointer position, window coordinates
	buttons int         // previous button mask, for down/up edges
	frame   *draw9.Image
	pix     []byte // frame pixels in plan9 byte order
	closed  bool
}

var _ Backend = &Devdraw{}

func (b *Devdraw) Init(title string, size image.Point) error {
	b.errch = make(chan error, 1)
	d, err := draw9.Init(b.errch, "", title, fmt.Sprintf("%dx%d", size.X, size.Y))
	if err != nil {
		return fmt.Errorf("devdraw init: %w", err)
	}
	b.display = d
	b.mctl = d.InitMouse()
	b.kctl = d.InitKeyboard()
	return nil
}

// Poll drains the pending device events without blocking.
func (b *Devdraw) Poll() []Event {
	var events []Event
	for {
		select {
		case m := <-b.mctl.C:
			events = b.appendMouse(events, m)
		case r := <-b.kctl.C:
			events = append(events, Event{Kind: EventKeyDown, Key: Key(r), Rune: r})
		case <-b.mctl.Resize:
			if err := b.display.Attach(draw9.RefNone); err != nil {
				log.Printf("touchui: devdraw: attach after resize: %v", err)
			}
			b.frame = nil
		case err := <-b.errch:
			if err == io.EOF {
				// Window was closed.
				return append(events, Event{Kind: EventQuit})
			}
			log.Printf("touchui: devdraw: %v", err)
		default:
			return events
		}
	}
}

// appendMouse turns one devdraw mouse state into motion and button edge
// events, in that order.
func (b *Devdraw) appendMouse(events []Event, m draw9.Mouse) []Event {
	p := m.Point.Sub(b.display.Image.R.Min)
	if p != b.pos {
		events = append(events, Event{Kind: EventMouseMove, Pos: p, Rel: p.Sub(b.pos)})
		b.pos = p
	}
	events = buttonEdges(events, b.buttons, m.Buttons, p)
	b.buttons = m.Buttons
	return events
}

// buttonEdges appends a down or up event for every button whose state
// changed between the prev and cur masks.
func buttonEdges(events []Event, prev, cur int, p image.Point) []Event {
	for bit := Button1; bit <= Button5; bit <<= 1 {
		switch {
		case cur&bit != 0 && prev&bit == 0:
			events = append(events, Event{Kind: EventMouseDown, Button: bit, Pos: p})
		case cur&bit == 0 && prev&bit != 0:
			events = append(events, Event{Kind: EventMouseUp, Button: bit, Pos: p})
		}
	}
	return events
}

func (b *Devdraw) MousePos() image.Point { return b.pos }

// Present uploads the composed frame to the devdraw window.
func (b *Devdraw) Present(frame *Surface) error {
	src := frame.RGBA()
	r := rect(frame.Size())
	if b.frame == nil || b.frame.R != r {
		if b.frame != nil {
			b.frame.Free()
		}
		img, err := b.display.AllocImage(r, draw9.RGBA32, false, draw9.White)
		if err != nil {
			return fmt.Errorf("devdraw: alloc frame: %w", err)
		}
		b.frame = img
		b.pix = make([]byte, 4*r.Dx()*r.Dy())
	}
	// Plan 9 packs r8g8b8a8 pixels as a, b, g, r bytes.
	for i := 0; i+3 < len(src.Pix); i += 4 {
		b.pix[i+0] = src.Pix[i+3]
		b.pix[i+1] = src.Pix[i+2]
		b.pix[i+2] = src.Pix[i+1]
		b.pix[i+3] = src.Pix[i+0]
	}
	if _, err := b.frame.Load(r, b.pix); err != nil {
		return fmt.Errorf("devdraw: load frame: %w", err)
	}
	screen := b.display.Image
	screen.Draw(screen.R, b.frame, nil, image.Point{})
	return b.display.Flush()
}

func (b *Devdraw) Close() error {
	if b.closed || b.display == nil {
		return nil
	}
	b.closed = true
	return b.display.Close()
}
