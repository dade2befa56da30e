package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"geowin/internal/geom"
	"geowin/internal/relate"
	"geowin/internal/tui"
)

func main() {
	rectArg := flag.String("rect", "", "query window as xmin,ymin,xmax,ymax; runs a one-shot batch query instead of the TUI")
	flag.Parse()

	if *rectArg != "" {
		if flag.NArg() == 0 {
			log.Fatal("usage: geowin -rect xmin,ymin,xmax,ymax file...")
		}
		env, err := parseRect(*rectArg)
		if err != nil {
			log.Fatal(err)
		}
		if err := batchQuery(env, flag.Args()); err != nil {
			log.Fatal(err)
		}
		return
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(flag.Arg(0))
	} else {
		m = tui.New()
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

// batchQuery builds one query for the window and runs it against every feature
// of every file, printing one hit/miss line per feature.
func batchQuery(env geom.Envelope, paths []string) error {
	q := relate.NewRectangleIntersects(geom.Rectangle(env))
	for _, path := range paths {
		fs, err := geom.LoadFile(path)
		if err != nil {
			return err
		}
		for _, f := range fs {
			verdict := "miss"
			if q.Intersects(f.Geom) {
				verdict = "hit"
			}
			fmt.Printf("%s\t%s\t%s\n", verdict, f.Geom.Kind, f.Name)
		}
	}
	return nil
}

func parseRect(s string) (geom.Envelope, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Envelope{}, fmt.Errorf("rect: want xmin,ymin,xmax,ymax, got %q", s)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Envelope{}, fmt.Errorf("rect: bad number %q", p)
		}
		vals[i] = v
	}
	if vals[0] > vals[2] || vals[1] > vals[3] {
		return geom.Envelope{}, fmt.Errorf("rect: min exceeds max in %q", s)
	}
	return geom.Envelope{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}, nil
}
