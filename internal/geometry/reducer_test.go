package geometry_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/geometry"
)

func geom(t domain.GeometryType, coords string) *domain.Geometry {
	return &domain.Geometry{Type: t, Coordinates: json.RawMessage(coords)}
}

func TestReduce_Point(t *testing.T) {
	loc, err := geometry.Reduce(geom(domain.GeometryPoint, `[-122.4, 37.8]`))
	require.NoError(t, err)
	assert.Equal(t, 37.8, loc.Latitude)
	assert.Equal(t, -122.4, loc.Longitude)
}

func TestReduce_PointIgnoresAltitude(t *testing.T) {
	loc, err := geometry.Reduce(geom(domain.GeometryPoint, `[2.1744, 41.4036, 120.5]`))
	require.NoError(t, err)
	assert.Equal(t, 41.4036, loc.Latitude)
	assert.Equal(t, 2.1744, loc.Longitude)
}

func TestReduce_Averages(t *testing.T) {
	tests := []struct {
		name    string
		geoType domain.GeometryType
		coords  string
		lat     float64
		lon     float64
	}{
		{
			name:    "closed square ring counts the closing vertex",
			geoType: domain.GeometryPolygon,
			coords:  `[[[0,0],[0,2],[2,2],[2,0],[0,0]]]`,
			lat:     0.8,
			lon:     0.8,
		},
		{
			name:    "open square ring",
			geoType: domain.GeometryPolygon,
			coords:  `[[[0,0],[0,2],[2,2],[2,0]]]`,
			lat:     1.0,
			lon:     1.0,
		},
		{
			name:    "duplicate points",
			geoType: domain.GeometryLineString,
			coords:  `[[1,1],[1,1]]`,
			lat:     1.0,
			lon:     1.0,
		},
		{
			name:    "line string axes are independent",
			geoType: domain.GeometryLineString,
			coords:  `[[10,-4],[20,4]]`,
			lat:     0.0,
			lon:     15.0,
		},
		{
			name:    "multi point",
			geoType: domain.GeometryMultiPoint,
			coords:  `[[0,0],[4,8]]`,
			lat:     4.0,
			lon:     2.0,
		},
		{
			name:    "multi line string",
			geoType: domain.GeometryMultiLineString,
			coords:  `[[[0,0],[2,0]],[[0,4],[2,4]]]`,
			lat:     2.0,
			lon:     1.0,
		},
		{
			name:    "interior ring vertices weigh the same as the shell",
			geoType: domain.GeometryPolygon,
			coords:  `[[[0,0],[0,4],[4,4],[4,0]],[[3,3],[3,3.5],[3.5,3.5],[3.5,3]]]`,
			lat:     2.625,
			lon:     2.625,
		},
		{
			name:    "multi polygon",
			geoType: domain.GeometryMultiPolygon,
			coords:  `[[[[0,0],[0,2],[2,2],[2,0]]],[[[10,10],[10,12],[12,12],[12,10]]]]`,
			lat:     6.0,
			lon:     6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := geometry.Reduce(geom(tt.geoType, tt.coords))
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, loc.Latitude, 1e-12)
			assert.InDelta(t, tt.lon, loc.Longitude, 1e-12)
		})
	}
}

func TestFlatten_RecoversEveryLeaf(t *testing.T) {
	pairs, err := geometry.Flatten(geom(domain.GeometryPolygon, `[[[0,0],[0,2],[2,2],[2,0],[0,0]]]`))
	require.NoError(t, err)
	require.Len(t, pairs, 5)
	assert.Equal(t, domain.CoordinatePair{Lon: 0, Lat: 2}, pairs[1])
	assert.Equal(t, domain.CoordinatePair{Lon: 2, Lat: 0}, pairs[3])

	pairs, err = geometry.Flatten(geom(domain.GeometryMultiPolygon, `[[[[1,2],[3,4]],[[5,6]]],[[[7,8]]]]`))
	require.NoError(t, err)
	assert.Equal(t, []domain.CoordinatePair{
		{Lon: 1, Lat: 2},
		{Lon: 3, Lat: 4},
		{Lon: 5, Lat: 6},
		{Lon: 7, Lat: 8},
	}, pairs)
}

func TestReduce_GeometryCollection(t *testing.T) {
	g := &domain.Geometry{
		Type: domain.GeometryGeometryCollection,
		Geometries: []domain.Geometry{
			*geom(domain.GeometryPoint, `[4,4]`),
			*geom(domain.GeometryLineString, `[[0,0],[2,2]]`),
		},
	}

	loc, err := geometry.Reduce(g)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, loc.Latitude, 1e-12)
	assert.InDelta(t, 2.0, loc.Longitude, 1e-12)
}

func TestReduce_PreservesDoublePrecision(t *testing.T) {
	loc, err := geometry.Reduce(geom(domain.GeometryPoint, `[0.1234567890123456, -45.987654321098765]`))
	require.NoError(t, err)
	assert.Equal(t, 0.1234567890123456, loc.Longitude)
	assert.Equal(t, -45.987654321098765, loc.Latitude)
}

func TestReduce_Malformed(t *testing.T) {
	tests := []struct {
		name string
		geom *domain.Geometry
	}{
		{name: "nil geometry", geom: nil},
		{name: "missing type", geom: geom("", `[1,2]`)},
		{name: "unsupported type", geom: geom("Circle", `[1,2]`)},
		{name: "empty polygon", geom: geom(domain.GeometryPolygon, `[]`)},
		{name: "empty rings", geom: geom(domain.GeometryPolygon, `[[],[]]`)},
		{name: "null coordinates", geom: geom(domain.GeometryLineString, `null`)},
		{name: "missing coordinates", geom: geom(domain.GeometryMultiPoint, ``)},
		{name: "empty point", geom: geom(domain.GeometryPoint, `[]`)},
		{name: "short position", geom: geom(domain.GeometryPoint, `[1]`)},
		{name: "point nested too deep", geom: geom(domain.GeometryPoint, `[[1,2]]`)},
		{name: "polygon nested too shallow", geom: geom(domain.GeometryPolygon, `[[1,2],[3,4]]`)},
		{name: "line string nested too deep", geom: geom(domain.GeometryLineString, `[[[1,2]]]`)},
		{name: "non-numeric value", geom: geom(domain.GeometryLineString, `[["a",1],[2,3]]`)},
		{name: "empty collection", geom: &domain.Geometry{Type: domain.GeometryGeometryCollection}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geometry.Reduce(tt.geom)
			require.Error(t, err)

			var malformed *geometry.MalformedGeometryError
			assert.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
		})
	}
}

func TestMalformedGeometryError_Message(t *testing.T) {
	_, err := geometry.Reduce(geom(domain.GeometryPolygon, `[]`))
	require.Error(t, err)
	assert.Equal(t, "malformed Polygon geometry: no coordinate pairs", err.Error())

	_, err = geometry.Reduce(nil)
	require.Error(t, err)
	assert.Equal(t, "malformed geometry: missing geometry", err.Error())
}

func TestSupported(t *testing.T) {
	assert.True(t, geometry.Supported(domain.GeometryMultiPolygon))
	assert.True(t, geometry.Supported(domain.GeometryGeometryCollection))
	assert.False(t, geometry.Supported("Circle"))

	depth, ok := geometry.Depth(domain.GeometryPolygon)
	assert.True(t, ok)
	assert.Equal(t, 3, depth)

	_, ok = geometry.Depth(domain.GeometryGeometryCollection)
	assert.False(t, ok)
}
