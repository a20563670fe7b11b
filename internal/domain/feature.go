package domain

import "encoding/json"

// GeometryType - тип геометрии GeoJSON
type GeometryType string

const (
	GeometryPoint              GeometryType = "Point"
	GeometryMultiPoint         GeometryType = "MultiPoint"
	GeometryLineString         GeometryType = "LineString"
	GeometryMultiLineString    GeometryType = "MultiLineString"
	GeometryPolygon            GeometryType = "Polygon"
	GeometryMultiPolygon       GeometryType = "MultiPolygon"
	GeometryGeometryCollection GeometryType = "GeometryCollection"
)

const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
)

// FeatureCollection - входной GeoJSON документ
type FeatureCollection struct {
	Type     string    `json:"type" validate:"omitempty,eq=FeatureCollection"`
	Features []Feature `json:"features" validate:"required"`
}

// Feature - один именованный географический объект
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   *Geometry      `json:"geometry"`
}

// Geometry хранит координаты в сыром виде: глубина вложенности
// известна только после разбора типа.
type Geometry struct {
	Type        GeometryType    `json:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  []Geometry      `json:"geometries,omitempty"`
}

// Name возвращает properties.name, если это непустая строка
func (f *Feature) Name() (string, bool) {
	if f.Properties == nil {
		return "", false
	}
	name, ok := f.Properties["name"].(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// CoordinatePair - позиция GeoJSON, порядок [lon, lat]
type CoordinatePair struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}
