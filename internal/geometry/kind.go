package geometry

import "github.com/location-loader/internal/domain"

// depths maps every coordinate-bearing geometry type to the number of array
// levels down to a single position: Point is [lon, lat], a Polygon is a
// list of rings of positions.
var depths = map[domain.GeometryType]int{
	domain.GeometryPoint:           1,
	domain.GeometryMultiPoint:      2,
	domain.GeometryLineString:      2,
	domain.GeometryMultiLineString: 3,
	domain.GeometryPolygon:         3,
	domain.GeometryMultiPolygon:    4,
}

// Depth returns the declared nesting depth of t.
// GeometryCollection has no coordinates of its own and reports false.
func Depth(t domain.GeometryType) (int, bool) {
	d, ok := depths[t]
	return d, ok
}

// Supported reports whether Reduce understands geometries of type t.
func Supported(t domain.GeometryType) bool {
	if t == domain.GeometryGeometryCollection {
		return true
	}
	_, ok := depths[t]
	return ok
}
