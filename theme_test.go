package touchui

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestThemeColorLookupAndFallback(t *testing.T) {
	th := NewTheme()
	if th.Color("background") != rgb(0xfcfcfc) {
		t.Error("default background color missing")
	}
	if th.Color("no-such-color") != th.Color("text") {
		t.Error("unknown color should fall back to the text color")
	}

	th.SetColor("accent", rgb(0x123456))
	if th.Color("accent") != rgb(0x123456) {
		t.Error("SetColor lookup failed")
	}
}

func TestThemeFontLookupAndFallback(t *testing.T) {
	th := NewTheme()
	if th.Font("") != basicfont.Face7x13 {
		t.Error("default face should be the built-in font")
	}
	th.SetFont("big", basicfont.Face7x13)
	if th.Font("big") == nil {
		t.Error("SetFont lookup failed")
	}
}

func TestThemeInitMissingFontKeepsFallback(t *testing.T) {
	th := NewTheme()
	th.FontName = "missing.ttf"
	th.Init(NewResources(t.TempDir()))
	if th.Font("") != basicfont.Face7x13 {
		t.Error("failed font load should keep the fallback face")
	}
}
