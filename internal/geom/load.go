package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile loads any supported file into features, dispatching on extension:
// .geojson/.json, .csv, .kml, .wkt (one geometry per non-empty line).
func LoadFile(path string) ([]Feature, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		return LoadWKT(path)
	}
	return nil, errors.New("unsupported file: " + filepath.Ext(path))
}

// LoadWKT reads a file with one WKT geometry per non-empty line.
func LoadWKT(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []Feature
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := ParseWKT(line)
		if err != nil {
			return nil, err
		}
		out = append(out, Feature{Name: fmt.Sprintf("wkt %d", len(out)+1), Geom: g})
	}
	if len(out) == 0 {
		return nil, errors.New("wkt: empty file")
	}
	return out, nil
}

// FeatureEnvelope returns the union envelope of a feature set.
func FeatureEnvelope(fs []Feature) Envelope {
	var env Envelope
	for i, f := range fs {
		if i == 0 {
			env = f.Geom.Env
		} else {
			env = env.ExpandToInclude(f.Geom.Env)
		}
	}
	return env
}
