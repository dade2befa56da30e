package tui

import (
	table "github.com/charmbracelet/bubbles/table"
)

// refreshResults rebuilds the results table from the current feature set and
// per-feature query outcomes.
func (m *Model) refreshResults() {
	cols := []table.Column{
		{Title: "feature", Width: 24},
		{Title: "kind", Width: 10},
		{Title: "window", Width: 8},
	}
	rows := make([]table.Row, 0, len(m.features))
	for i, f := range m.features {
		hit := "miss"
		if i < len(m.hits) && m.hits[i] {
			hit = "hit"
		}
		name := f.Name
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		rows = append(rows, table.Row{name, f.Geom.Kind.String(), hit})
	}
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
