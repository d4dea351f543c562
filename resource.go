package touchui

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"

	"github.com/xor-gate/goexif2/exif"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ErrNotFound is returned, wrapped, when a named resource does not exist or
// has an unsupported format.
var ErrNotFound = errors.New("resource not found")

var (
	// fastScaler is used when Resources.Fast is set.
	fastScaler xdraw.Scaler = xdraw.BiLinear
	bestScaler xdraw.Scaler = xdraw.CatmullRom
)

// Resources looks up fonts, images and sounds by name, relative to a root
// directory, caching loaded results. Lookups after a miss hit the filesystem
// again, so resources dropped in at runtime are picked up.
type Resources struct {
	Fast bool // trade scaling quality for speed

	root   string
	fonts  map[string]font.Face
	images map[string]image.Image
	sounds map[string][]byte
}

// NewResources returns a resource cache rooted at dir.
func NewResources(dir string) *Resources {
	return &Resources{
		root:   dir,
		fonts:  map[string]font.Face{},
		images: map[string]image.Image{},
		sounds: map[string][]byte{},
	}
}

func (r *Resources) path(name string) string {
	return filepath.Join(r.root, name)
}

// Font returns the named font at the given point size. The empty name is the
// built-in fallback face.
func (r *Resources) Font(name string, size float64) (font.Face, error) {
	if name == "" {
		return basicfont.Face7x13, nil
	}
	key := fmt.Sprintf("%s@%g", name, size)
	if f, ok := r.fonts[key]; ok {
		return f, nil
	}
	data, err := os.ReadFile(r.path(name))
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, ErrNotFound)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: parse: %w", name, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %s: face: %w", name, err)
	}
	r.fonts[key] = face
	return face, nil
}

// Image returns the named image, decoded and, for photos carrying EXIF
// orientation, rotated upright.
func (r *Resources) Image(name string) (image.Image, error) {
	if img, ok := r.images[name]; ok {
		return img, nil
	}
	data, err := os.ReadFile(r.path(name))
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", name, ErrNotFound)
	}
	switch ct := http.DetectContentType(data); ct {
	case "image/gif", "image/jpeg", "image/png":
	default:
		return nil, fmt.Errorf("image %s: cannot handle %s: %w", name, ct, ErrNotFound)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image %s: decode: %w", name, err)
	}
	img = orient(img, data)
	r.images[name] = img
	return img, nil
}

// Sound returns the raw bytes of the named sound file. Playback is the
// application's business.
func (r *Resources) Sound(name string) ([]byte, error) {
	if s, ok := r.sounds[name]; ok {
		return s, nil
	}
	data, err := os.ReadFile(r.path(name))
	if err != nil {
		return nil, fmt.Errorf("sound %s: %w", name, ErrNotFound)
	}
	r.sounds[name] = data
	return data, nil
}

// Scale resizes img to size.
func (r *Resources) Scale(img image.Image, size image.Point) *image.RGBA {
	scaler := bestScaler
	if r.Fast {
		scaler = fastScaler
	}
	dst := image.NewRGBA(rect(size))
	scaler.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// orient applies the EXIF orientation tag, if any. Only the rotation cases
// occur in practice; mirrored orientations pass through.
func orient(img image.Image, data []byte) image.Image {
	ex, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return img
	}
	tag, err := ex.Get(exif.Orientation)
	if err != nil {
		return img
	}
	o, err := tag.Int(0)
	if err != nil {
		return img
	}
	switch o {
	case 3:
		return rotate(img, 2)
	case 6:
		return rotate(img, 1)
	case 8:
		return rotate(img, 3)
	}
	return img
}

// rotate returns img turned clockwise by quarters quarter-turns.
func rotate(img image.Image, quarters int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var dst *image.RGBA
	if quarters%2 == 0 {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			switch quarters % 4 {
			case 1:
				dst.Set(h-1-y, x, c)
			case 2:
				dst.Set(w-1-x, h-1-y, c)
			case 3:
				dst.Set(y, w-1-x, c)
			default:
				dst.Set(x, y, c)
			}
		}
	}
	return dst
}
