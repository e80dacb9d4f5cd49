package kterm

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageBackend renders the engine's screen onto an in-memory RGBA image
// using a fixed-width bitmap font, one cell per glyph cube. It is grounded
// on the teacher's ScreenshotWithConfig (screenshot.go): same basicfont
// default, same per-cell background fill followed by a font.Drawer glyph
// draw, adapted here to fire on every Backend call instead of being
// computed once on demand from a snapshot.
type ImageBackend struct {
	mu sync.Mutex

	rows, cols           int
	cellWidth            int
	cellHeight           int
	face                 font.Face
	img                  *image.RGBA
	cursorRow, cursorCol int
	cursorOn             bool
}

// NewImageBackend creates an ImageBackend sized rows x cols cells, using
// golang.org/x/image/font/basicfont.Face7x13 as its glyph source.
func NewImageBackend(rows, cols int) *ImageBackend {
	face := basicfont.Face7x13
	adv, _ := face.GlyphAdvance('M')
	cellWidth := adv.Ceil()
	if cellWidth == 0 {
		cellWidth = 7
	}
	cellHeight := face.Metrics().Height.Ceil()

	b := &ImageBackend{
		rows:       rows,
		cols:       cols,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		face:       face,
		img:        image.NewRGBA(image.Rect(0, 0, cols*cellWidth, rows*cellHeight)),
	}
	b.fillBackground(DefaultAttribute.Background())
	return b
}

func (b *ImageBackend) fillBackground(bg Color) {
	rgb := bg.RGB()
	c := color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
	draw.Draw(b.img, b.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (b *ImageBackend) cellRect(row, col int) image.Rectangle {
	x := col * b.cellWidth
	y := row * b.cellHeight
	return image.Rect(x, y, x+b.cellWidth, y+b.cellHeight)
}

func (b *ImageBackend) SetCharAt(glyph byte, attr Attribute, row, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fgRGB := attr.Foreground().RGB()
	bgRGB := attr.Background().RGB()
	fg := color.RGBA{R: fgRGB.R, G: fgRGB.G, B: fgRGB.B, A: 255}
	bg := color.RGBA{R: bgRGB.R, G: bgRGB.G, B: bgRGB.B, A: 255}

	draw.Draw(b.img, b.cellRect(row, col), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	if glyph == 0 || glyph == ' ' {
		return
	}

	baseline := row*b.cellHeight + b.face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  b.img,
		Src:  &image.Uniform{C: fg},
		Face: b.face,
		Dot:  fixed.P(col*b.cellWidth, baseline),
	}
	d.DrawString(string(rune(glyph)))
}

func (b *ImageBackend) ClearRow(row int, attr Attribute) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rgb := attr.Background().RGB()
	bg := color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
	rect := image.Rect(0, row*b.cellHeight, b.cols*b.cellWidth, (row+1)*b.cellHeight)
	draw.Draw(b.img, rect, &image.Uniform{C: bg}, image.Point{}, draw.Src)
}

func (b *ImageBackend) MoveCursor(row, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorRow, b.cursorCol = row, col
}

func (b *ImageBackend) EnableCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorOn = true
}

func (b *ImageBackend) DisableCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorOn = false
}

var _ Backend = (*ImageBackend)(nil)

// Image returns a copy of the rendered screen, with an inverted cell drawn
// at the cursor position if the cursor is currently enabled.
func (b *ImageBackend) Image() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := image.NewRGBA(b.img.Bounds())
	draw.Draw(out, out.Bounds(), b.img, image.Point{}, draw.Src)

	if !b.cursorOn {
		return out
	}

	rect := b.cellRect(b.cursorRow, b.cursorCol)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, bl, a := out.At(x, y).RGBA()
			out.Set(x, y, color.RGBA{
				R: 255 - uint8(r>>8),
				G: 255 - uint8(g>>8),
				B: 255 - uint8(bl>>8),
				A: uint8(a >> 8),
			})
		}
	}
	return out
}
