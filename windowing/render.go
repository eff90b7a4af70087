package windowing

import (
	"bytes"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/agiangrant/modal/ui"
)

func init() {
	ui.SetMeasureTextFunc(func(s string, fontSize float32) (float32, float32) {
		w, h := text.Measure(s, fontFace(fontSize), 0)
		return float32(w), float32(h)
	})
}

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource

	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func fontFace(size float32) *text.GoTextFace {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		fontSource = src
	})
	return &text.GoTextFace{Source: fontSource, Size: float64(size)}
}

// fillSource returns the 1x1 white region used as the texture for solid
// triangle fills. A 3x3 image with a centered sub-image avoids bleeding
// at the edges.
func fillSource() *ebiten.Image {
	whiteOnce.Do(func() {
		white := ebiten.NewImage(3, 3)
		white.Fill(image.White.C)
		whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// drawWidget renders a widget subtree onto the window surface.
func drawWidget(dst *ebiten.Image, w *ui.Widget) {
	drawWidgetAlpha(dst, w, 1.0)
}

func drawWidgetAlpha(dst *ebiten.Image, w *ui.Widget, parentAlpha float32) {
	if w == nil || !w.Visible() {
		return
	}

	bounds := w.ComputedBounds()
	alpha := parentAlpha * w.Opacity()

	radii := w.CornerRadii()

	if color, offsetY, spread := w.Shadow(); color&0xFF != 0 && alpha > 0 {
		fillRoundedRect(dst,
			bounds.X-spread, bounds.Y-spread+offsetY,
			bounds.Width+2*spread, bounds.Height+2*spread,
			growRadii(radii, spread), color, alpha)
	}

	if color, ok := w.BackgroundColor(); ok && alpha > 0 {
		fillRoundedRect(dst, bounds.X, bounds.Y, bounds.Width, bounds.Height,
			radii, color, alpha)
	}

	if width, color := w.Border(); width > 0 && alpha > 0 {
		strokeRoundedRect(dst, bounds.X, bounds.Y, bounds.Width, bounds.Height,
			radii, width, color, alpha)
	}

	if s := w.Text(); s != "" && alpha > 0 {
		color, size := w.TextStyle()
		drawText(dst, s, bounds.X, bounds.Y, size, color, alpha)
	}

	for _, child := range w.Children() {
		drawWidgetAlpha(dst, child, alpha)
	}
}

// appendRoundedRect builds a rectangle path with per-corner radii,
// clockwise from top-left. A uniform radius of half the smaller
// dimension produces a capsule; equal width and height give a circle.
// Zero-radius corners stay square.
func appendRoundedRect(p *vector.Path, x, y, w, h float32, r [4]float32) {
	limit := minf(w, h) / 2
	for i := range r {
		if r[i] < 0 {
			r[i] = 0
		}
		if r[i] > limit {
			r[i] = limit
		}
	}
	tl, tr, br, bl := r[0], r[1], r[2], r[3]

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	cornerArc(p, x+w, y, x+w, y+tr, tr)
	p.LineTo(x+w, y+h-br)
	cornerArc(p, x+w, y+h, x+w-br, y+h, br)
	p.LineTo(x+bl, y+h)
	cornerArc(p, x, y+h, x, y+h-bl, bl)
	p.LineTo(x, y+tl)
	cornerArc(p, x, y, x+tl, y, tl)
	p.Close()
}

// cornerArc rounds a corner, or just visits it when the radius is zero.
func cornerArc(p *vector.Path, cornerX, cornerY, endX, endY, r float32) {
	if r > 0 {
		p.ArcTo(cornerX, cornerY, endX, endY, r)
	} else {
		p.LineTo(cornerX, cornerY)
	}
}

// growRadii expands each rounded corner by the shadow spread, leaving
// square corners square.
func growRadii(r [4]float32, spread float32) [4]float32 {
	for i := range r {
		if r[i] > 0 {
			r[i] += spread
		}
	}
	return r
}

func fillRoundedRect(dst *ebiten.Image, x, y, w, h float32, r [4]float32, color uint32, alpha float32) {
	if w <= 0 || h <= 0 {
		return
	}
	var p vector.Path
	appendRoundedRect(&p, x, y, w, h, r)

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	applyVertexColor(vs, color, alpha)
	dst.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

func strokeRoundedRect(dst *ebiten.Image, x, y, w, h float32, r [4]float32, width float32, color uint32, alpha float32) {
	if w <= 0 || h <= 0 {
		return
	}
	var p vector.Path
	appendRoundedRect(&p, x, y, w, h, r)

	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width: width,
	})
	applyVertexColor(vs, color, alpha)
	dst.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

// applyVertexColor sets premultiplied-alpha vertex colors from a packed
// 0xRRGGBBAA value.
func applyVertexColor(vs []ebiten.Vertex, color uint32, alpha float32) {
	r := float32(color>>24&0xFF) / 255
	g := float32(color>>16&0xFF) / 255
	b := float32(color>>8&0xFF) / 255
	a := float32(color&0xFF) / 255 * alpha

	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r * a
		vs[i].ColorG = g * a
		vs[i].ColorB = b * a
		vs[i].ColorA = a
	}
}

func drawText(dst *ebiten.Image, s string, x, y, size float32, color uint32, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(
		float32(color>>24&0xFF)/255,
		float32(color>>16&0xFF)/255,
		float32(color>>8&0xFF)/255,
		float32(color&0xFF)/255*alpha,
	)
	text.Draw(dst, s, fontFace(size), op)
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
