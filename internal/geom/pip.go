package geom

// RingContains reports whether c lies inside the closed ring, by even-odd ray
// crossing. The boundary rule is fixed: a coordinate exactly on a ring edge may
// resolve to either side depending on edge direction, but resolves the same way
// on every call.
func RingContains(ring []Coord, c Coord) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > c.Y) != (b.Y > c.Y) &&
			c.X < (b.X-a.X)*(c.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// PolygonContains reports whether c lies inside polygon g: inside the exterior
// ring and not inside any hole. Returns false for non-polygon geometries.
func PolygonContains(g *Geometry, c Coord) bool {
	if g.Kind != Polygon || len(g.Rings) == 0 {
		return false
	}
	if !RingContains(g.Rings[0], c) {
		return false
	}
	for _, hole := range g.Rings[1:] {
		if RingContains(hole, c) {
			return false
		}
	}
	return true
}
