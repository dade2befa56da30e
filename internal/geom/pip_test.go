package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func square(minX, minY, maxX, maxY float64) []Coord {
	return []Coord{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
		{X: minX, Y: minY},
	}
}

func TestRingContains(t *testing.T) {
	ring := square(0, 0, 10, 10)
	require.True(t, RingContains(ring, Coord{X: 5, Y: 5}))
	require.True(t, RingContains(ring, Coord{X: 0.001, Y: 9.999}))
	require.False(t, RingContains(ring, Coord{X: -0.001, Y: 5}))
	require.False(t, RingContains(ring, Coord{X: 5, Y: 11}))
	require.False(t, RingContains([]Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, Coord{X: 0.5, Y: 0.5}))
}

func TestRingContainsConcave(t *testing.T) {
	// U shape: the notch between the prongs is outside
	ring := []Coord{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 7, Y: 10},
		{X: 7, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	require.True(t, RingContains(ring, Coord{X: 1, Y: 5}))
	require.True(t, RingContains(ring, Coord{X: 8, Y: 5}))
	require.False(t, RingContains(ring, Coord{X: 5, Y: 5}))
	require.True(t, RingContains(ring, Coord{X: 5, Y: 1}))
}

func TestPolygonContainsWithHole(t *testing.T) {
	poly := NewPolygon([][]Coord{
		square(0, 0, 10, 10),
		square(4, 4, 6, 6),
	})
	require.True(t, PolygonContains(poly, Coord{X: 2, Y: 2}))
	require.False(t, PolygonContains(poly, Coord{X: 5, Y: 5})) // in the hole
	require.False(t, PolygonContains(poly, Coord{X: 11, Y: 5}))
	require.False(t, PolygonContains(NewPoint(Coord{X: 0, Y: 0}), Coord{X: 0, Y: 0}))
}
