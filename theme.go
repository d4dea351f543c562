package touchui

import (
	"image/color"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Theme is a flat lookup of colors and fonts by name, shared by the widgets
// of one App. There is no cascading; a name either resolves or falls back to
// the default.
type Theme struct {
	// FontName and FontSize select the default widget font, loaded from
	// the App's resources at Init. Empty FontName keeps the built-in face.
	FontName string
	FontSize float64

	colors      map[string]color.RGBA
	fonts       map[string]font.Face
	defaultFace font.Face
}

// NewTheme returns a theme with the default palette.
func NewTheme() *Theme {
	return &Theme{
		FontSize:    13,
		defaultFace: basicfont.Face7x13,
		fonts:       map[string]font.Face{},
		colors: map[string]color.RGBA{
			"background":          rgb(0xfcfcfc),
			"text":                rgb(0x333333),
			"border":              rgb(0xbbbbbb),
			"primary":             rgb(0x007bff),
			"primary.text":        rgb(0xffffff),
			"disabled.text":       rgb(0x888888),
			"disabled.background": rgb(0xf0f0f0),
			"pressed.background":  rgb(0xe8e8e8),
			"focus.border":        rgb(0x3272dc),
		},
	}
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// Init loads theme fonts from res. Must run after display initialization,
// before widgets draw.
func (t *Theme) Init(res *Resources) {
	if t.FontName == "" {
		return
	}
	face, err := res.Font(t.FontName, t.FontSize)
	if err != nil {
		log.Printf("touchui: theme: %v, using fallback font", err)
		return
	}
	t.defaultFace = face
}

// Color returns the named color, or the text color when unknown.
func (t *Theme) Color(name string) color.RGBA {
	if c, ok := t.colors[name]; ok {
		return c
	}
	return t.colors["text"]
}

// SetColor adds or replaces a named color.
func (t *Theme) SetColor(name string, c color.RGBA) {
	t.colors[name] = c
}

// Font returns the named font, or the default face when unknown or empty.
func (t *Theme) Font(name string) font.Face {
	if f, ok := t.fonts[name]; ok {
		return f
	}
	return t.defaultFace
}

// SetFont adds or replaces a named font.
func (t *Theme) SetFont(name string, f font.Face) {
	t.fonts[name] = f
}
