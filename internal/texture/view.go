package texture

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/foldwall/internal/wall"
)

// View is a strip's window into the shared texture: no pixels are copied.
type View struct {
	Index   int
	OffsetU float64
	RepeatU float64
}

func Views(layouts []wall.StripLayout) []View {
	views := make([]View, len(layouts))
	for i, l := range layouts {
		views[i] = View{Index: l.Index, OffsetU: l.TextureOffsetU, RepeatU: l.TextureRepeatU}
	}
	return views
}

// Rect maps the U window onto pixel columns of b. Neighbouring views share
// their boundary column, and every view is at least one pixel wide when b
// is non-empty.
func (v View) Rect(b image.Rectangle) image.Rectangle {
	w := float64(b.Dx())
	x0 := b.Min.X + int(math.Round(v.OffsetU*w))
	x1 := b.Min.X + int(math.Round((v.OffsetU+v.RepeatU)*w))
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	if x1 <= x0 && b.Dx() > 0 {
		if x0 >= b.Max.X {
			x0 = b.Max.X - 1
		}
		x1 = x0 + 1
	}
	return image.Rect(x0, b.Min.Y, x1, b.Max.Y)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the view's pixels. Images that support SubImage share
// memory with the source; others are copied once.
func (v View) Crop(img image.Image) image.Image {
	r := v.Rect(img.Bounds())
	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}
	dst := image.NewRGBA(r)
	xdraw.Copy(dst, r.Min, img, r, xdraw.Src, nil)
	return dst
}

// Sheet binds one texture to the current set of strip views. Swapping the
// texture or the layout rebuilds the views; rebuilding is idempotent.
type Sheet struct {
	tex   *Texture
	views []View
}

func NewSheet(tex *Texture, layouts []wall.StripLayout) *Sheet {
	if tex == nil {
		tex = Placeholder(256, 144)
	}
	return &Sheet{tex: tex, views: Views(layouts)}
}

func (s *Sheet) Texture() *Texture { return s.tex }
func (s *Sheet) Views() []View     { return s.views }

// SetTexture swaps the source image; a nil texture restores the placeholder.
func (s *Sheet) SetTexture(tex *Texture) {
	if tex == nil {
		tex = Placeholder(256, 144)
	}
	s.tex = tex
}

func (s *Sheet) Rebuild(layouts []wall.StripLayout) {
	s.views = Views(layouts)
}

// Crops returns every strip's window into the texture.
func (s *Sheet) Crops() []image.Image {
	out := make([]image.Image, len(s.views))
	for i, v := range s.views {
		out[i] = v.Crop(s.tex.Image)
	}
	return out
}

// MeanColors returns the average colour of every strip's window.
func (s *Sheet) MeanColors() []color.RGBA {
	b := s.tex.Bounds()
	out := make([]color.RGBA, len(s.views))
	for i, v := range s.views {
		out[i] = MeanColor(s.tex.Image, v.Rect(b))
	}
	return out
}
