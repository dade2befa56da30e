package tui

import (
	"sort"
	"strings"

	"geowin/internal/geom"
)

// cell classes for styled composition
const (
	classPlain = iota
	classHit
	classWindow
)

func (m Model) span() (float64, float64) {
	sx := m.dataEnv.Width()
	sy := m.dataEnv.Height()
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// screenXY maps a coordinate to screen cell coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	if len(m.features) == 0 {
		return 0, 0, false
	}
	spanX, spanY := m.span()
	nx := (x - m.dataEnv.MinX) / spanX
	ny := (y - m.dataEnv.MinY) / spanY
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// screenXYMicro maps a coordinate into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if len(m.features) == 0 {
		return 0, 0, false
	}
	spanX, spanY := m.span()
	nx := (x - m.dataEnv.MinX) / spanX
	ny := (y - m.dataEnv.MinY) / spanY
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	for i, f := range m.features {
		hot := i < len(m.hits) && m.hits[i]
		m.drawGeometry(br, f.Geom, w, h, hot)
	}

	// composite braille cells into rows with a style class per cell
	rows := make([][]rune, h)
	classes := make([][]int, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]rune, w)
		classes[y] = make([]int, w)
		for x := 0; x < w; x++ {
			r, hot := br.cell(x, y)
			rows[y][x] = r
			if hot {
				classes[y][x] = classHit
			}
		}
	}

	m.drawWindowBox(rows, classes, w, h)

	out := make([]string, h)
	for y := 0; y < h; y++ {
		out[y] = styleRow(rows[y], classes[y])
	}
	return strings.Join(out, "\n")
}

// drawGeometry renders one geometry into the braille canvas: points as single
// pixels, lines as polylines, polygons as scanline-filled outer rings with all
// ring edges drawn on top.
func (m Model) drawGeometry(br *brailleBuf, g *geom.Geometry, w, h int, hot bool) {
	geom.EachAtom(g, func(atom *geom.Geometry) bool {
		switch atom.Kind {
		case geom.Point:
			if mx, my, ok := m.screenXYMicro(atom.Pt.X, atom.Pt.Y, w, h); ok {
				br.setPixel(mx, my, hot)
			}
		case geom.Line:
			m.drawPolyline(br, atom.Coords, w, h, hot, false)
		case geom.Polygon:
			if len(atom.Rings) > 0 {
				m.fillRing(br, atom.Rings[0], w, h, hot)
			}
			for _, ring := range atom.Rings {
				m.drawPolyline(br, ring, w, h, hot, true)
			}
		}
		return true
	})
}

func (m Model) drawPolyline(br *brailleBuf, cs []geom.Coord, w, h int, hot, closed bool) {
	var prev *[2]int
	var first *[2]int
	for _, p := range cs {
		mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
		if !ok {
			continue
		}
		if prev != nil {
			br.drawLineMicro(prev[0], prev[1], mx, my, hot)
		}
		prev = &[2]int{mx, my}
		if first == nil {
			first = prev
		}
	}
	if closed && prev != nil && first != nil && *prev != *first {
		br.drawLineMicro(prev[0], prev[1], first[0], first[1], hot)
	}
}

// fillRing fills a ring using even-odd scanlines on the microgrid. Holes are
// drawn as edges only.
func (m Model) fillRing(br *brailleBuf, ring []geom.Coord, w, h int, hot bool) {
	var mic [][2]int
	for _, p := range ring {
		mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
		if !ok {
			continue
		}
		mic = append(mic, [2]int{mx, my})
	}
	if len(mic) < 3 {
		return
	}
	hMic := h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(mic); i++ {
			a := mic[i]
			b := mic[(i+1)%len(mic)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			if (yMic >= a[1] && yMic < b[1]) || (yMic >= b[1] && yMic < a[1]) {
				t := float64(yMic-a[1]) / float64(b[1]-a[1])
				xs = append(xs, a[0]+int(t*float64(b[0]-a[0])))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				br.setPixel(xMic, yMic, hot)
			}
		}
	}
}

// drawWindowBox overlays the query window outline onto the cell grid.
func (m Model) drawWindowBox(rows [][]rune, classes [][]int, w, h int) {
	if !m.windowSet {
		return
	}
	x0, y1, ok0 := m.screenXY(m.window.MinX, m.window.MinY, w, h)
	x1, y0, ok1 := m.screenXY(m.window.MaxX, m.window.MaxY, w, h)
	if !ok0 || !ok1 {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	set := func(x, y int, r rune) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		rows[y][x] = r
		classes[y][x] = classWindow
	}
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')
}

// styleRow renders a row of cells, batching runs of equal style class to keep
// the ANSI overhead down.
func styleRow(row []rune, classes []int) string {
	var b strings.Builder
	start := 0
	for start < len(row) {
		end := start
		for end < len(row) && classes[end] == classes[start] {
			end++
		}
		seg := string(row[start:end])
		switch classes[start] {
		case classHit:
			b.WriteString(hitStyle.Render(seg))
		case classWindow:
			b.WriteString(windowStyle.Render(seg))
		default:
			b.WriteString(seg)
		}
		start = end
	}
	return b.String()
}
