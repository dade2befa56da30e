package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geowin/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				g, err := geom.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.features = append(m.features, geom.Feature{
					Name: fmt.Sprintf("pasted %d", len(m.features)+1),
					Geom: g,
				})
				m.dataEnv = geom.FeatureEnvelope(m.features)
				if !m.windowSet {
					m.resetWindow()
				} else {
					m.requery()
				}
				m.status = fmt.Sprintf("added WKT feature  total=%d hits=%d", len(m.features), m.hitCount)
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "r":
			m.showResults = !m.showResults
			if m.showResults {
				m.refreshResults()
			}
		case "c":
			m.resetWindow()
			m.status = m.windowStatus()
		// w/a/s/d steer the query window; the predicate reruns on every move
		case "w":
			m.moveWindow(0, 0.1)
			m.status = m.windowStatus()
		case "s":
			m.moveWindow(0, -0.1)
			m.status = m.windowStatus()
		case "a":
			m.moveWindow(-0.1, 0)
			m.status = m.windowStatus()
		case "d":
			m.moveWindow(0.1, 0)
			m.status = m.windowStatus()
		case "[":
			m.scaleWindow(0.8)
			m.status = m.windowStatus()
		case "]":
			m.scaleWindow(1.25)
			m.status = m.windowStatus()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showResults {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) windowStatus() string {
	if !m.windowSet {
		return "no window: load a file or paste WKT first"
	}
	return fmt.Sprintf("window [%.4g, %.4g, %.4g, %.4g]  hits: %d/%d",
		m.window.MinX, m.window.MinY, m.window.MaxX, m.window.MaxY,
		m.hitCount, len(m.features))
}
