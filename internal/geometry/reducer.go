// Package geometry reduces GeoJSON geometries to one representative point.
//
// For anything other than a Point the result is the arithmetic mean of every
// position in the geometry, all rings and parts weighted equally. This is a
// cheap marker position, not an area or length weighted centroid: interior
// rings pull the result towards the hole and a closed ring counts its first
// vertex twice.
package geometry

import (
	"encoding/json"

	"github.com/location-loader/internal/domain"
)

// Reduce returns the representative point of g.
// A Point yields its own position; other types yield the vertex mean.
func Reduce(g *domain.Geometry) (domain.ReducedLocation, error) {
	if g == nil {
		return domain.ReducedLocation{}, malformed("", "missing geometry")
	}

	if g.Type == domain.GeometryPoint {
		pairs, err := decode(g.Type, g.Coordinates, 1, nil)
		if err != nil {
			return domain.ReducedLocation{}, err
		}
		return domain.ReducedLocation{Latitude: pairs[0].Lat, Longitude: pairs[0].Lon}, nil
	}

	pairs, err := Flatten(g)
	if err != nil {
		return domain.ReducedLocation{}, err
	}
	return Mean(g.Type, pairs)
}

// Flatten returns every leaf position of g in document order.
func Flatten(g *domain.Geometry) ([]domain.CoordinatePair, error) {
	if g == nil {
		return nil, malformed("", "missing geometry")
	}
	return flatten(g, nil)
}

func flatten(g *domain.Geometry, dst []domain.CoordinatePair) ([]domain.CoordinatePair, error) {
	switch {
	case g.Type == "":
		return nil, malformed("", "missing geometry type")
	case g.Type == domain.GeometryGeometryCollection:
		var err error
		for i := range g.Geometries {
			if dst, err = flatten(&g.Geometries[i], dst); err != nil {
				return nil, err
			}
		}
		return dst, nil
	}

	depth, ok := depths[g.Type]
	if !ok {
		return nil, malformed(g.Type, "unsupported geometry type")
	}
	return decode(g.Type, g.Coordinates, depth, dst)
}

// Mean averages latitudes and longitudes independently.
func Mean(t domain.GeometryType, pairs []domain.CoordinatePair) (domain.ReducedLocation, error) {
	if len(pairs) == 0 {
		return domain.ReducedLocation{}, malformed(t, "no coordinate pairs")
	}

	var sumLat, sumLon float64
	for _, p := range pairs {
		sumLat += p.Lat
		sumLon += p.Lon
	}
	n := float64(len(pairs))

	return domain.ReducedLocation{
		Latitude:  sumLat / n,
		Longitude: sumLon / n,
	}, nil
}

// decode walks raw exactly depth array levels down and appends each
// position found there to dst.
func decode(t domain.GeometryType, raw json.RawMessage, depth int, dst []domain.CoordinatePair) ([]domain.CoordinatePair, error) {
	if len(raw) == 0 {
		return nil, malformed(t, "missing coordinates")
	}

	if depth == 1 {
		var pos []float64
		if err := json.Unmarshal(raw, &pos); err != nil {
			return nil, malformed(t, "expected a numeric position, got %s", snippet(raw))
		}
		if len(pos) < 2 {
			return nil, malformed(t, "position needs at least 2 values, got %d", len(pos))
		}
		return append(dst, domain.CoordinatePair{Lon: pos[0], Lat: pos[1]}), nil
	}

	var children []json.RawMessage
	if err := json.Unmarshal(raw, &children); err != nil {
		return nil, malformed(t, "expected an array of depth %d, got %s", depth, snippet(raw))
	}

	var err error
	for _, child := range children {
		if dst, err = decode(t, child, depth-1, dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func snippet(raw json.RawMessage) string {
	const limit = 32
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
