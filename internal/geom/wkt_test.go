package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWKTPoint(t *testing.T) {
	g, err := ParseWKT("POINT(30 10)")
	require.NoError(t, err)
	require.Equal(t, Point, g.Kind)
	require.Equal(t, Coord{X: 30, Y: 10}, g.Pt)
	require.Equal(t, Envelope{MinX: 30, MinY: 10, MaxX: 30, MaxY: 10}, g.Env)
}

func TestParseWKTLineString(t *testing.T) {
	g, err := ParseWKT("LINESTRING (30 10, 10 30, 40 40)")
	require.NoError(t, err)
	require.Equal(t, Line, g.Kind)
	require.Len(t, g.Coords, 3)
	require.Equal(t, Envelope{MinX: 10, MinY: 10, MaxX: 40, MaxY: 40}, g.Env)
}

func TestParseWKTPolygonWithHole(t *testing.T) {
	g, err := ParseWKT("POLYGON ((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30))")
	require.NoError(t, err)
	require.Equal(t, Polygon, g.Kind)
	require.Len(t, g.Rings, 2)
	require.Len(t, g.Rings[0], 5)
	require.Len(t, g.Rings[1], 4)
	// envelope tracks the exterior ring only
	require.Equal(t, Envelope{MinX: 10, MinY: 10, MaxX: 45, MaxY: 45}, g.Env)
}

func TestParseWKTMultiPoint(t *testing.T) {
	for _, s := range []string{
		"MULTIPOINT((10 40), (40 30), (20 20))",
		"MULTIPOINT(10 40, 40 30, 20 20)",
	} {
		g, err := ParseWKT(s)
		require.NoError(t, err, s)
		require.Equal(t, Collection, g.Kind)
		require.Len(t, g.Members, 3)
		require.Equal(t, Point, g.Members[0].Kind)
	}
}

func TestParseWKTMultiPolygon(t *testing.T) {
	g, err := ParseWKT("MULTIPOLYGON(((30 20, 45 40, 10 40, 30 20)), ((15 5, 40 10, 10 20, 5 10, 15 5)))")
	require.NoError(t, err)
	require.Equal(t, Collection, g.Kind)
	require.Len(t, g.Members, 2)
	require.Equal(t, Polygon, g.Members[0].Kind)
	require.Equal(t, Envelope{MinX: 5, MinY: 5, MaxX: 45, MaxY: 40}, g.Env)
}

func TestParseWKTGeometryCollection(t *testing.T) {
	g, err := ParseWKT("GEOMETRYCOLLECTION(POINT(4 6), LINESTRING(4 6, 7 10), GEOMETRYCOLLECTION(POINT(0 0)))")
	require.NoError(t, err)
	require.Equal(t, Collection, g.Kind)
	require.Len(t, g.Members, 3)
	require.Equal(t, Collection, g.Members[2].Kind)
}

func TestParseWKTErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"POINT",
		"POINT()",
		"CIRCLE(0 0, 5)",
		"LINESTRING(a b, c d)",
	} {
		_, err := ParseWKT(s)
		require.Error(t, err, "%q", s)
	}
}

func TestDecodeGeoJSONFeatureCollection(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {"name": "depot"},
			 "geometry": {"type": "Point", "coordinates": [5, 5]}},
			{"type": "Feature", "properties": {},
			 "geometry": {"type": "Polygon", "coordinates":
				[[[0,0],[10,0],[10,10],[0,10],[0,0]], [[4,4],[6,4],[6,6],[4,6],[4,4]]]}}
		]
	}`)
	fs, err := decodeGeoJSON(data)
	require.NoError(t, err)
	require.Len(t, fs, 2)
	require.Equal(t, "depot", fs[0].Name)
	require.Equal(t, Point, fs[0].Geom.Kind)
	require.Equal(t, Polygon, fs[1].Geom.Kind)
	require.Len(t, fs[1].Geom.Rings, 2)
}

func TestDecodeGeoJSONBareGeometry(t *testing.T) {
	fs, err := decodeGeoJSON([]byte(`{"type": "MultiPoint", "coordinates": [[1,2],[3,4]]}`))
	require.NoError(t, err)
	require.Len(t, fs, 1)
	require.Equal(t, Collection, fs[0].Geom.Kind)
	require.Len(t, fs[0].Geom.Members, 2)
}
