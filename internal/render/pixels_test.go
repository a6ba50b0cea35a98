package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	const w, h, cell, gap = 2, 1, 3, 1
	cells := []uint8{1, 0}
	buf := make([]byte, 4*w*cell*h*cell)
	for i := range buf {
		buf[i] = 0x7f
	}
	pal := Palette{On: color.RGBA{G: 255, A: 255}, Off: color.RGBA{R: 1, G: 2, B: 3, A: 255}}
	fillCellsRGBA(buf, cells, w, h, cell, gap, pal)

	pixel := func(px, py int) [4]byte {
		i := (py*w*cell + px) * 4
		return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
	}
	on := [4]byte{0, 255, 0, 255}
	off := [4]byte{1, 2, 3, 255}

	for py := 0; py < cell; py++ {
		for px := 0; px < w*cell; px++ {
			want := off
			if px < cell-gap && py < cell-gap {
				want = on
			}
			if got := pixel(px, py); got != want {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", px, py, got, want)
			}
		}
	}
}

func TestFillCellsRGBAClampsGap(t *testing.T) {
	buf := make([]byte, 4)
	fillCellsRGBA(buf, []uint8{1}, 1, 1, 1, 4, DefaultPalette)
	if buf[1] != 255 {
		t.Fatalf("single-pixel cell should ignore the gap, got %v", buf)
	}
}
