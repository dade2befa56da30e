package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func deepNest(depth int, leaf *Geometry) *Geometry {
	g := leaf
	for i := 0; i < depth; i++ {
		g = NewCollection(g)
	}
	return g
}

func TestEachAtomFlattensInOrder(t *testing.T) {
	g := NewCollection(
		NewPoint(Coord{X: 1, Y: 1}),
		NewCollection(
			NewLine([]Coord{{X: 0, Y: 0}, {X: 2, Y: 2}}),
			NewPolygon([][]Coord{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}}),
		),
		NewPoint(Coord{X: 9, Y: 9}),
	)
	var kinds []Kind
	EachAtom(g, func(atom *Geometry) bool {
		kinds = append(kinds, atom.Kind)
		return true
	})
	require.Equal(t, []Kind{Point, Line, Polygon, Point}, kinds)
}

func TestEachAtomStops(t *testing.T) {
	g := NewCollection(
		NewPoint(Coord{X: 1, Y: 1}),
		NewPoint(Coord{X: 2, Y: 2}),
		NewPoint(Coord{X: 3, Y: 3}),
	)
	visited := 0
	EachAtom(g, func(atom *Geometry) bool {
		visited++
		return visited < 2
	})
	require.Equal(t, 2, visited)
}

func TestEachAtomDeepNesting(t *testing.T) {
	g := deepNest(100000, NewPoint(Coord{X: 1, Y: 2}))
	found := 0
	EachAtom(g, func(atom *Geometry) bool {
		found++
		return true
	})
	require.Equal(t, 1, found)
}

func TestLinearComponents(t *testing.T) {
	g := NewCollection(
		NewPoint(Coord{X: 1, Y: 1}),
		NewLine([]Coord{{X: 0, Y: 0}, {X: 2, Y: 2}}),
		NewPolygon([][]Coord{
			{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
			{{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2}, {X: 2, Y: 2}},
		}),
	)
	lines := LinearComponents(g)
	require.Len(t, lines, 3) // the line string plus both polygon rings
}
