package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadGeoJSON reads a GeoJSON file and returns one Feature per GeoJSON feature
// (or a single Feature for a bare geometry). Supported geometry types: Point,
// MultiPoint, LineString, MultiLineString, Polygon, MultiPolygon,
// GeometryCollection.
func LoadGeoJSON(path string) ([]Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return decodeGeoJSON(data)
}

func decodeGeoJSON(data []byte) ([]Feature, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	parsePoint := func(v any) (Coord, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return Coord{X: x, Y: y}, true
			}
		}
		return Coord{}, false
	}
	parseLine := func(v any) ([]Coord, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var pts []Coord
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts, len(pts) > 0
	}
	parseRings := func(v any) ([][]Coord, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var rings [][]Coord
		for _, el := range arr {
			if ring, ok := parseLine(el); ok {
				rings = append(rings, ring)
			}
		}
		return rings, len(rings) > 0
	}

	var parseGeom func(g map[string]any) (*Geometry, bool)
	parseGeom = func(g map[string]any) (*Geometry, bool) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				return NewPoint(pt), true
			}
		case "MultiPoint":
			if pts, ok := parseLine(g["coordinates"]); ok {
				members := make([]*Geometry, len(pts))
				for i, p := range pts {
					members[i] = NewPoint(p)
				}
				return NewCollection(members...), true
			}
		case "LineString":
			if ls, ok := parseLine(g["coordinates"]); ok {
				return NewLine(ls), true
			}
		case "MultiLineString":
			if mls, ok := parseRings(g["coordinates"]); ok {
				members := make([]*Geometry, len(mls))
				for i, ls := range mls {
					members[i] = NewLine(ls)
				}
				return NewCollection(members...), true
			}
		case "Polygon":
			if rings, ok := parseRings(g["coordinates"]); ok {
				return NewPolygon(rings), true
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				var members []*Geometry
				for _, el := range arr {
					if rings, ok := parseRings(el); ok {
						members = append(members, NewPolygon(rings))
					}
				}
				if len(members) > 0 {
					return NewCollection(members...), true
				}
			}
		case "GeometryCollection":
			if arr, ok := g["geometries"].([]any); ok {
				var members []*Geometry
				for _, el := range arr {
					if gm, ok := el.(map[string]any); ok {
						if sub, ok := parseGeom(gm); ok {
							members = append(members, sub)
						}
					}
				}
				return NewCollection(members...), true
			}
		}
		return nil, false
	}

	featureName := func(fm map[string]any, fallback string) string {
		if props, ok := fm["properties"].(map[string]any); ok {
			for _, key := range []string{"name", "Name", "NAME", "id"} {
				if v, ok := props[key]; ok {
					return fmt.Sprint(v)
				}
			}
		}
		return fallback
	}

	var out []Feature
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			if gm, ok := parseGeom(g); ok {
				out = append(out, Feature{Name: featureName(raw, "feature 1"), Geom: gm})
			}
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for i, f := range fs {
				fm, ok := f.(map[string]any)
				if !ok {
					continue
				}
				g, ok := fm["geometry"].(map[string]any)
				if !ok {
					continue
				}
				if gm, ok := parseGeom(g); ok {
					name := featureName(fm, fmt.Sprintf("feature %d", i+1))
					out = append(out, Feature{Name: name, Geom: gm})
				}
			}
		}
	default:
		if gm, ok := parseGeom(raw); ok {
			out = append(out, Feature{Name: "geometry", Geom: gm})
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no geometries found")
	}
	return out, nil
}
