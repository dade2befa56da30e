package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a WKT string into a Geometry tree.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON (with
// holes), MULTIPOLYGON, GEOMETRYCOLLECTION (nesting allowed).
func ParseWKT(wkt string) (*Geometry, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		if strings.HasSuffix(strings.TrimSpace(up), "EMPTY") {
			return NewCollection(), nil
		}
		return nil, errors.New("wkt: missing coordinate block")
	}
	body := s[i+1 : j]
	switch {
	case strings.HasPrefix(up, "POINT"):
		pts, err := parseTuples(body)
		if err != nil {
			return nil, err
		}
		return NewPoint(pts[0]), nil
	case strings.HasPrefix(up, "MULTIPOINT"):
		var members []*Geometry
		for _, part := range splitTopLevel(body) {
			pts, err := parseTuples(stripOuterParens(part))
			if err != nil {
				return nil, err
			}
			for _, p := range pts {
				members = append(members, NewPoint(p))
			}
		}
		if len(members) == 0 {
			return nil, errors.New("wkt multipoint: no coordinates parsed")
		}
		return NewCollection(members...), nil
	case strings.HasPrefix(up, "MULTILINESTRING"):
		var members []*Geometry
		for _, part := range splitTopLevel(body) {
			pts, err := parseTuples(stripOuterParens(part))
			if err != nil {
				return nil, err
			}
			members = append(members, NewLine(pts))
		}
		return NewCollection(members...), nil
	case strings.HasPrefix(up, "LINESTRING"):
		pts, err := parseTuples(body)
		if err != nil {
			return nil, err
		}
		return NewLine(pts), nil
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		var members []*Geometry
		for _, part := range splitTopLevel(body) {
			poly, err := parsePolygonBody(stripOuterParens(part))
			if err != nil {
				return nil, err
			}
			members = append(members, poly)
		}
		return NewCollection(members...), nil
	case strings.HasPrefix(up, "POLYGON"):
		return parsePolygonBody(body)
	case strings.HasPrefix(up, "GEOMETRYCOLLECTION"):
		var members []*Geometry
		for _, part := range splitTopLevel(body) {
			g, err := ParseWKT(part)
			if err != nil {
				return nil, err
			}
			members = append(members, g)
		}
		return NewCollection(members...), nil
	}
	return nil, errors.New("unsupported wkt type")
}

// parsePolygonBody parses "(ring),(ring),..." into a Polygon, first ring
// exterior, following rings holes.
func parsePolygonBody(body string) (*Geometry, error) {
	var rings [][]Coord
	for _, part := range splitTopLevel(body) {
		pts, err := parseTuples(stripOuterParens(part))
		if err != nil {
			return nil, err
		}
		rings = append(rings, pts)
	}
	if len(rings) == 0 {
		return nil, errors.New("wkt polygon: no rings parsed")
	}
	return NewPolygon(rings), nil
}

// parseTuples parses a flat "x y, x y, ..." block.
func parseTuples(block string) ([]Coord, error) {
	var out []Coord
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Coord{X: x, Y: y})
	}
	if len(out) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return out, nil
}

// splitTopLevel splits s on commas that sit outside any parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// stripOuterParens removes one balanced layer of surrounding parentheses, if present.
func stripOuterParens(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return s[1 : len(s)-1]
	}
	return s
}
