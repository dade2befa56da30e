package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelopeIntersects(t *testing.T) {
	testCases := []struct {
		desc     string
		a        Envelope
		b        Envelope
		expected bool
	}{
		{
			desc:     "same envelope intersects",
			a:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			expected: true,
		},
		{
			desc:     "overlapping envelopes intersect",
			a:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:        Envelope{MinX: 0.5, MinY: 0.5, MaxX: 1.5, MaxY: 1.5},
			expected: true,
		},
		{
			desc:     "touching at a corner intersects",
			a:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:        Envelope{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2},
			expected: true,
		},
		{
			desc:     "disjoint to the right does not intersect",
			a:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:        Envelope{MinX: 1.5, MinY: 0, MaxX: 2, MaxY: 1},
			expected: false,
		},
		{
			desc:     "disjoint above does not intersect",
			a:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:        Envelope{MinX: 0, MinY: 2, MaxX: 1, MaxY: 3},
			expected: false,
		},
		{
			desc:     "degenerate point envelope inside intersects",
			a:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:        Envelope{MinX: 0.5, MinY: 0.5, MaxX: 0.5, MaxY: 0.5},
			expected: true,
		},
		{
			desc:     "degenerate zero-width envelope on the edge intersects",
			a:        Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			b:        Envelope{MinX: 1, MinY: 0, MaxX: 1, MaxY: 2},
			expected: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			require.Equal(t, tc.expected, tc.b.Intersects(tc.a))
		})
	}
}

func TestEnvelopeContains(t *testing.T) {
	outer := Envelope{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	require.True(t, outer.Contains(Envelope{MinX: 1, MinY: 1, MaxX: 9, MaxY: 9}))
	require.True(t, outer.Contains(outer))
	require.False(t, outer.Contains(Envelope{MinX: -1, MinY: 1, MaxX: 9, MaxY: 9}))
	require.False(t, outer.Contains(Envelope{MinX: 1, MinY: 1, MaxX: 9, MaxY: 11}))

	require.True(t, outer.ContainsCoord(Coord{X: 10, Y: 10}))
	require.True(t, outer.ContainsCoord(Coord{X: 0, Y: 5}))
	require.False(t, outer.ContainsCoord(Coord{X: 10.0001, Y: 5}))
}

func TestEnvelopeOf(t *testing.T) {
	e := EnvelopeOf([]Coord{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 0, Y: 0}})
	require.Equal(t, Envelope{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}, e)
}

func TestExpandToInclude(t *testing.T) {
	a := Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	b := Envelope{MinX: -3, MinY: 2, MaxX: 0, MaxY: 5}
	require.Equal(t, Envelope{MinX: -3, MinY: 0, MaxX: 1, MaxY: 5}, a.ExpandToInclude(b))
}
