//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads binary cell data into a single RGBA image.
type GridPainter struct {
	w, h int
	cell int
	gap  int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h grid drawn at cell pixels per
// cell with a gap-pixel separator.
func NewGridPainter(w, h, cell, gap int) *GridPainter {
	if cell <= 0 {
		cell = 1
	}
	gp := &GridPainter{w: w, h: h, cell: cell, gap: gap, buf: make([]byte, 4*w*cell*h*cell)}
	gp.img = ebiten.NewImage(w*cell, h*cell)
	return gp
}

// Blit rasterizes cells and draws the result onto dst at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, pal Palette) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.h, gp.cell, gp.gap, pal)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the painted image.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.cell, gp.h * gp.cell }
