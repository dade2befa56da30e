package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geowin/internal/geom"
	"geowin/internal/relate"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Loaded features and their union extent
	features []geom.Feature
	dataEnv  geom.Envelope

	// Query window and per-feature results. The query object is rebuilt
	// whenever the window moves and reused across all features.
	window    geom.Envelope
	windowSet bool
	query     *relate.RectangleIntersects
	hits      []bool
	hitCount  int

	// last rendered map size
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// results table
	showResults bool
	tbl         table.Model
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "geowin ready",
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, MULTI*, GEOMETRYCOLLECTION). Enter adds it as a feature; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// results table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's features at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// resetWindow centers the query window on the data extent at half its size.
func (m *Model) resetWindow() {
	if len(m.features) == 0 {
		m.windowSet = false
		m.query = nil
		m.hits = nil
		m.hitCount = 0
		return
	}
	e := m.dataEnv
	w, h := e.Width(), e.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	cx, cy := (e.MinX+e.MaxX)/2, (e.MinY+e.MaxY)/2
	m.window = geom.Envelope{
		MinX: cx - w/4, MinY: cy - h/4,
		MaxX: cx + w/4, MaxY: cy + h/4,
	}
	m.windowSet = true
	m.requery()
}

// requery rebuilds the query object for the current window and reruns it
// against every feature.
func (m *Model) requery() {
	if !m.windowSet {
		return
	}
	m.query = relate.NewRectangleIntersects(geom.Rectangle(m.window))
	m.hits = make([]bool, len(m.features))
	m.hitCount = 0
	for i, f := range m.features {
		if m.query.Intersects(f.Geom) {
			m.hits[i] = true
			m.hitCount++
		}
	}
	if m.showResults {
		m.refreshResults()
	}
}

// moveWindow shifts the query window by the given fraction of its own size.
func (m *Model) moveWindow(fx, fy float64) {
	if !m.windowSet {
		return
	}
	dx := m.window.Width() * fx
	dy := m.window.Height() * fy
	if dx == 0 && fx != 0 {
		dx = fx
	}
	if dy == 0 && fy != 0 {
		dy = fy
	}
	m.window.MinX += dx
	m.window.MaxX += dx
	m.window.MinY += dy
	m.window.MaxY += dy
	m.requery()
}

// scaleWindow grows or shrinks the query window around its center.
func (m *Model) scaleWindow(factor float64) {
	if !m.windowSet {
		return
	}
	cx, cy := (m.window.MinX+m.window.MaxX)/2, (m.window.MinY+m.window.MaxY)/2
	hw := m.window.Width() / 2 * factor
	hh := m.window.Height() / 2 * factor
	m.window = geom.Envelope{MinX: cx - hw, MinY: cy - hh, MaxX: cx + hw, MaxY: cy + hh}
	m.requery()
}
