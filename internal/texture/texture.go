// Package texture supplies the shared source image for a wall and the
// per-strip UV windows into it.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrUnsupported = errors.New("texture: unsupported image format")

// Texture is one decoded image shared read-only by every strip.
type Texture struct {
	Name        string
	Image       image.Image
	Placeholder bool
}

func (t *Texture) Bounds() image.Rectangle {
	if t == nil || t.Image == nil {
		return image.Rectangle{}
	}
	return t.Image.Bounds()
}

// Aspect is width over height, 1 for an empty texture.
func (t *Texture) Aspect() float64 {
	b := t.Bounds()
	if b.Dy() == 0 {
		return 1
	}
	return float64(b.Dx()) / float64(b.Dy())
}

func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, filepath.Base(path))
}

func Decode(r io.Reader, name string) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
		}
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s (%s): empty image", name, format)
	}
	return &Texture{Name: name, Image: img}, nil
}

// Placeholder generates a banded gradient so strip boundaries stay visible
// before a real image is selected.
func Placeholder(w, h int) *Texture {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w)
			v := float64(y) / float64(h)
			c := color.RGBA{
				R: uint8(40 + 180*u),
				G: uint8(60 + 120*v),
				B: uint8(200 - 140*u),
				A: 255,
			}
			if (y/16)%2 == 0 {
				c.R, c.G, c.B = c.R/2+20, c.G/2+20, c.B/2+20
			}
			img.SetRGBA(x, y, c)
		}
	}
	return &Texture{Name: "placeholder", Image: img, Placeholder: true}
}

// Resample scales img to w x h with bilinear filtering.
func Resample(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// MeanColor averages the pixels of img inside r, sampling at most about
// 32x32 points.
func MeanColor(img image.Image, r image.Rectangle) color.RGBA {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return color.RGBA{}
	}
	sx := max(1, r.Dx()/32)
	sy := max(1, r.Dy()/32)

	var rs, gs, bs, as, n uint64
	for y := r.Min.Y; y < r.Max.Y; y += sy {
		for x := r.Min.X; x < r.Max.X; x += sx {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			rs += uint64(cr >> 8)
			gs += uint64(cg >> 8)
			bs += uint64(cb >> 8)
			as += uint64(ca >> 8)
			n++
		}
	}
	return color.RGBA{R: uint8(rs / n), G: uint8(gs / n), B: uint8(bs / n), A: uint8(as / n)}
}
