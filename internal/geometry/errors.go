package geometry

import (
	"fmt"

	"github.com/location-loader/internal/domain"
)

// MalformedGeometryError is returned when a geometry cannot produce a
// representative point: missing geometry, unknown type, coordinates nested
// differently from what the type declares, non-numeric values or no
// positions at all.
type MalformedGeometryError struct {
	GeometryType domain.GeometryType
	Reason       string
}

func (e *MalformedGeometryError) Error() string {
	if e.GeometryType == "" {
		return "malformed geometry: " + e.Reason
	}
	return fmt.Sprintf("malformed %s geometry: %s", e.GeometryType, e.Reason)
}

func malformed(t domain.GeometryType, format string, args ...any) error {
	return &MalformedGeometryError{
		GeometryType: t,
		Reason:       fmt.Sprintf(format, args...),
	}
}
