package geom

// Outcodes for the clipping-style trivial reject below.
const (
	codeLeft = 1 << iota
	codeRight
	codeBelow
	codeAbove
)

func outcode(env Envelope, c Coord) int {
	code := 0
	if c.X < env.MinX {
		code |= codeLeft
	} else if c.X > env.MaxX {
		code |= codeRight
	}
	if c.Y < env.MinY {
		code |= codeBelow
	} else if c.Y > env.MaxY {
		code |= codeAbove
	}
	return code
}

// SegmentIntersectsEnvelope reports whether the segment p0-p1 intersects the
// boundary or interior of the axis-aligned rectangle env. It exploits the
// axis-alignment: an endpoint inside the rectangle is an immediate hit, both
// endpoints sharing an outside half-plane is an immediate miss, and only the
// remaining straddling cases pay for segment/segment arithmetic against the
// rectangle's edges.
func SegmentIntersectsEnvelope(env Envelope, p0, p1 Coord) bool {
	c0 := outcode(env, p0)
	if c0 == 0 {
		return true
	}
	c1 := outcode(env, p1)
	if c1 == 0 {
		return true
	}
	if c0&c1 != 0 {
		// both endpoints on the same outside side
		return false
	}
	ll := Coord{env.MinX, env.MinY}
	lr := Coord{env.MaxX, env.MinY}
	ur := Coord{env.MaxX, env.MaxY}
	ul := Coord{env.MinX, env.MaxY}
	return segmentsCross(p0, p1, ll, lr) ||
		segmentsCross(p0, p1, lr, ur) ||
		segmentsCross(p0, p1, ur, ul) ||
		segmentsCross(p0, p1, ul, ll)
}

// segmentsCross reports whether segments a-b and c-d share at least one point,
// endpoints included. Collinear overlapping segments count.
func segmentsCross(a, b, c, d Coord) bool {
	rx, ry := b.X-a.X, b.Y-a.Y
	sx, sy := d.X-c.X, d.Y-c.Y
	acx, acy := c.X-a.X, c.Y-a.Y
	denom := rx*sy - ry*sx
	numT := acx*sy - acy*sx
	numU := acx*ry - acy*rx
	if denom == 0 {
		if numU != 0 {
			return false // parallel, not collinear
		}
		// collinear: overlap if the 1D projections overlap
		if rx != 0 || ry != 0 {
			return overlap1D(a.X, b.X, c.X, d.X) && overlap1D(a.Y, b.Y, c.Y, d.Y)
		}
		// a-b is a degenerate point; it must lie on the line through c-d
		if sx != 0 || sy != 0 {
			return numT == 0 && overlap1D(c.X, d.X, a.X, b.X) && overlap1D(c.Y, d.Y, a.Y, b.Y)
		}
		return a == c
	}
	if denom < 0 {
		denom, numT, numU = -denom, -numT, -numU
	}
	return numT >= 0 && numT <= denom && numU >= 0 && numU <= denom
}

func overlap1D(a0, a1, b0, b1 float64) bool {
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	return a0 <= b1 && a1 >= b0
}
