package render

import "image/color"

// Palette holds the colors used to draw a binary grid.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette draws live cells green on black.
var DefaultPalette = Palette{
	On:  color.RGBA{G: 255, A: 255},
	Off: color.Black,
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCellsRGBA rasterizes a w*h grid of binary cells into buf, drawing each
// cell as a cell*cell square. The trailing gap pixels of every square use the
// off color so live neighbors stay visually separate. buf must hold
// 4*(w*cell)*(h*cell) bytes.
func fillCellsRGBA(buf []byte, cells []uint8, w, h, cell, gap int, pal Palette) {
	on, off := rgba8(pal.On), rgba8(pal.Off)
	if gap >= cell {
		gap = cell - 1
	}
	if gap < 0 {
		gap = 0
	}
	stride := w * cell * 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive := cells[y*w+x] != 0
			for py := 0; py < cell; py++ {
				row := (y*cell+py)*stride + x*cell*4
				for px := 0; px < cell; px++ {
					col := off
					if alive && px < cell-gap && py < cell-gap {
						col = on
					}
					copy(buf[row+px*4:row+px*4+4], col[:])
				}
			}
		}
	}
}
