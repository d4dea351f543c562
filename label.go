package touchui

import (
	"image"
	"image/color"
	"strings"
)

// Align selects horizontal text placement within a widget's frame.
type Align int

const (
	AlignCenter = Align(iota)
	AlignLeft
	AlignRight
)

// Label draws static multiline text in a single theme font, vertically
// centered in its frame.
type Label struct {
	View
	Text     string
	Align    Align
	FontName string      // theme font name; empty is the default face
	Color    color.Color // nil uses the theme text color
}

var _ Viewer = &Label{}

// NewLabel returns a label with the given frame and text.
func NewLabel(frame image.Rectangle, text string) *Label {
	l := &Label{Text: text}
	l.self = l
	l.frame = frame
	return l
}

func (l *Label) Draw() {
	l.View.Draw()
	th := l.theme()
	face := th.Font(l.FontName)
	col := l.Color
	if col == nil {
		col = th.Color("text")
	}
	lines := strings.Split(l.Text, "\n")
	lineH := StringSize(face, "x").Y
	ascent := face.Metrics().Ascent.Ceil()
	size := l.frame.Size()
	y := (size.Y-lineH*len(lines))/2 + ascent
	for _, line := range lines {
		w := StringSize(face, line).X
		x := 0
		switch l.Align {
		case AlignCenter:
			x = (size.X - w) / 2
		case AlignRight:
			x = size.X - w
		}
		l.surface.DrawString(image.Pt(x, y), face, col, line)
		y += lineH
	}
}
