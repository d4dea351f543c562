package touchui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is the CPU pixel buffer backing a view. Every view owns one, sized
// to its frame. Child surfaces are composed onto the parent's surface during
// Draw, and the current scene's surface is composed onto the window buffer
// each tick.
type Surface struct {
	img *image.RGBA
}

// NewSurface returns a transparent surface of the given size.
func NewSurface(size image.Point) *Surface {
	return &Surface{img: image.NewRGBA(rect(size))}
}

// Size returns the surface dimensions.
func (s *Surface) Size() image.Point {
	return s.img.Rect.Size()
}

// RGBA returns the underlying pixel buffer.
func (s *Surface) RGBA() *image.RGBA {
	return s.img
}

// Fill paints the whole surface with c, replacing previous content.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect paints the rectangle r, clipped to the surface, with c.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(s.img, r.Intersect(s.img.Rect), image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeRect draws a 1px border just inside r.
func (s *Surface) StrokeRect(r image.Rectangle, c color.Color) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	s.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	s.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	s.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	s.FillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// Blit composes src onto s with its top-left corner at p, src over dst.
func (s *Surface) Blit(src *Surface, p image.Point) {
	if src == nil {
		return
	}
	r := image.Rectangle{Min: p, Max: p.Add(src.Size())}.Intersect(s.img.Rect)
	draw.Draw(s.img, r, src.img, r.Min.Sub(p), draw.Over)
}

// BlitImage composes an arbitrary image onto s at p.
func (s *Surface) BlitImage(src image.Image, p image.Point) {
	r := image.Rectangle{Min: p, Max: p.Add(src.Bounds().Size())}.Intersect(s.img.Rect)
	draw.Draw(s.img, r, src, src.Bounds().Min.Add(r.Min.Sub(p)), draw.Over)
}

// DrawString draws text with its baseline starting at p.
func (s *Surface) DrawString(p image.Point, face font.Face, c color.Color, text string) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(text)
}

// StringSize measures text in the given face: width and line height.
func StringSize(face font.Face, text string) image.Point {
	m := face.Metrics()
	return image.Pt(font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil())
}
