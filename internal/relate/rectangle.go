// Package relate implements the fast rectangle-intersects predicate: does an
// arbitrary geometry intersect a fixed axis-aligned rectangular polygon? It is
// the specialized path for map-window and tile-bounds queries, used instead of
// a general intersection computation when one operand is known rectangular.
package relate

import "geowin/internal/geom"

// RectangleIntersects answers intersection queries against one fixed
// axis-aligned rectangle. Construct once per rectangle and reuse across many
// target geometries; the rectangle envelope is computed once at construction.
// All per-query state is allocated fresh inside Intersects, so a single value
// is safe for concurrent use.
//
// Precondition, not validated: rect is a simple axis-aligned polygon whose
// exterior ring passes through exactly four corners. Violating it yields an
// unspecified result.
//
// The query runs three tests in order of cost, stopping at the first
// conclusive answer:
//
//  1. per-component envelope analysis, which can prove intersection from
//     bounding boxes alone;
//  2. rectangle corners against polygonal components, which catches the
//     rectangle lying inside the target;
//  3. every segment of the target against the rectangle, which is exhaustive.
//
// Together with the up-front envelope rejection the three tests form a
// complete decision procedure: if all are inconclusive, the geometries are
// disjoint.
type RectangleIntersects struct {
	rect *geom.Geometry
	env  geom.Envelope
}

// NewRectangleIntersects builds a reusable query for the given rectangle.
func NewRectangleIntersects(rect *geom.Geometry) *RectangleIntersects {
	return &RectangleIntersects{rect: rect, env: rect.Env}
}

// Intersects is the one-shot form: equivalent to building a query for rect and
// running it once against g.
func Intersects(rect, g *geom.Geometry) bool {
	return NewRectangleIntersects(rect).Intersects(g)
}

// Intersects reports whether g intersects the rectangle.
func (ri *RectangleIntersects) Intersects(g *geom.Geometry) bool {
	if !ri.env.Intersects(g.Env) {
		return false
	}

	ev := &envelopeIntersectsVisitor{rectEnv: ri.env}
	if ev.applyTo(g) {
		return true
	}

	cv := &containsPointVisitor{rectEnv: ri.env, corners: rectangleCorners(ri.rect)}
	if cv.applyTo(g) {
		return true
	}

	sv := &segmentIntersectsVisitor{rectEnv: ri.env}
	return sv.applyTo(g)
}

// rectangleCorners returns the four distinct corner coordinates of the
// rectangle's exterior ring, dropping the closing coordinate.
func rectangleCorners(rect *geom.Geometry) []geom.Coord {
	ring := rect.Rings[0]
	return ring[:4]
}
