package tui

// brailleBuf is a 2x4-per-cell micro-pixel canvas. Each pixel carries a "hot"
// flag so features that intersect the query window can be rendered in a
// different color than the rest.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	hot  [][]bool  // cell holds at least one hot pixel
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	hot := make([][]bool, h)
	for i := range m {
		m[i] = make([]uint8, w)
		hot[i] = make([]bool, w)
	}
	return &brailleBuf{w: w, h: h, m: m, hot: hot}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, hot bool) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	if hot {
		b.hot[cy][cx] = true
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, hot bool) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, hot)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the braille rune for a cell (space if empty) and its hot flag.
func (b *brailleBuf) cell(x, y int) (rune, bool) {
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', false
	}
	return rune(0x2800 + int(mask)), b.hot[y][x]
}
