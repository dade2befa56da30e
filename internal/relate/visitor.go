package relate

import "geowin/internal/geom"

// The three visitors below share one shape: a walk over the atomic components
// of the target geometry accumulating a single monotone conclusion flag. Once
// the flag is set the walk halts; it is never reset within a traversal. A
// traversal that exhausts all components reports false, which for the first
// two visitors means "inconclusive, try the next stage" and for the segment
// visitor means "definitively no intersection".

// envelopeIntersectsVisitor proves intersection from bounding boxes alone.
// For a connected component whose envelope intersects the rectangle envelope,
// intersection is certain when the rectangle envelope contains the component
// envelope outright, or when the component envelope spans the rectangle's full
// horizontal or vertical extent: the component must then cross one of the
// rectangle's edges (Jordan-curve bisection argument).
//
// The bisection argument requires each tested envelope to belong to a
// connected component, so polygon atoms are decomposed into individual rings
// before testing.
type envelopeIntersectsVisitor struct {
	rectEnv    geom.Envelope
	intersects bool
}

func (v *envelopeIntersectsVisitor) applyTo(g *geom.Geometry) bool {
	geom.EachAtom(g, func(atom *geom.Geometry) bool {
		if atom.Kind == geom.Polygon {
			for _, ring := range atom.Rings {
				v.visitEnvelope(geom.EnvelopeOf(ring))
				if v.intersects {
					break
				}
			}
		} else {
			v.visitEnvelope(atom.Env)
		}
		return !v.intersects
	})
	return v.intersects
}

func (v *envelopeIntersectsVisitor) visitEnvelope(env geom.Envelope) {
	if !v.rectEnv.Intersects(env) {
		return
	}
	if v.rectEnv.Contains(env) {
		v.intersects = true
		return
	}
	// the envelopes overlap but neither contains the other; a full span
	// across either axis forces a boundary crossing
	if env.MinX >= v.rectEnv.MinX && env.MaxX <= v.rectEnv.MaxX {
		v.intersects = true
		return
	}
	if env.MinY >= v.rectEnv.MinY && env.MaxY <= v.rectEnv.MaxY {
		v.intersects = true
	}
}

// containsPointVisitor tests whether any of the rectangle's four corners lies
// inside a polygonal component of the target. This catches the rectangle being
// wholly or partly swallowed by the target when neither bounding box is
// distinctive enough for the envelope test to decide.
type containsPointVisitor struct {
	rectEnv       geom.Envelope
	corners       []geom.Coord
	containsPoint bool
}

func (v *containsPointVisitor) applyTo(g *geom.Geometry) bool {
	geom.EachAtom(g, func(atom *geom.Geometry) bool {
		v.visit(atom)
		return !v.containsPoint
	})
	return v.containsPoint
}

func (v *containsPointVisitor) visit(atom *geom.Geometry) {
	if atom.Kind != geom.Polygon {
		return
	}
	if !v.rectEnv.Intersects(atom.Env) {
		return
	}
	for _, corner := range v.corners {
		if !atom.Env.ContainsCoord(corner) {
			continue
		}
		if geom.PolygonContains(atom, corner) {
			v.containsPoint = true
			return
		}
	}
}

// maxScanSegments is the empirical segment count beyond which this brute-force
// scan loses to an indexed one. No indexed path exists here; the scan is the
// complete, correct behavior at any size.
const maxScanSegments = 200

// segmentIntersectsVisitor is the final, exhaustive test: it scans every
// segment of every line-like component of the target against the rectangle
// using the specialized axis-aligned intersector.
type segmentIntersectsVisitor struct {
	rectEnv    geom.Envelope
	intersects bool
}

func (v *segmentIntersectsVisitor) applyTo(g *geom.Geometry) bool {
	geom.EachAtom(g, func(atom *geom.Geometry) bool {
		v.visit(atom)
		return !v.intersects
	})
	return v.intersects
}

func (v *segmentIntersectsVisitor) visit(atom *geom.Geometry) {
	if !v.rectEnv.Intersects(atom.Env) {
		return
	}
	for _, line := range geom.LinearComponents(atom) {
		for i := 1; i < len(line); i++ {
			if geom.SegmentIntersectsEnvelope(v.rectEnv, line[i-1], line[i]) {
				v.intersects = true
				return
			}
		}
	}
}
