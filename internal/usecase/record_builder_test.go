package usecase_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/usecase"
)

var testDefaults = domain.RecordDefaults{
	Description:   "description",
	LocationType:  "location_type",
	Status:        "approved",
	ContributorID: uuid.MustParse("31b0bc36-6fc3-4040-9590-fb5d579e77df"),
	AverageRating: 0.0,
	ReviewCount:   0,
}

func namedFeature(name interface{}) *domain.Feature {
	props := map[string]interface{}{}
	if name != nil {
		props["name"] = name
	}
	return &domain.Feature{
		Type:       domain.TypeFeature,
		Properties: props,
		Geometry: &domain.Geometry{
			Type:        domain.GeometryPoint,
			Coordinates: json.RawMessage(`[80.2329, 26.5123]`),
		},
	}
}

func TestRecordBuilder_Build(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("0b7c8a43-5d0e-4f51-9a8c-2f6f2b2f0c11")

	builder := usecase.NewRecordBuilder(testDefaults).
		WithClock(func() time.Time { return fixed }).
		WithIDGenerator(func() uuid.UUID { return id })

	loc := &domain.ReducedLocation{Latitude: 26.5123, Longitude: 80.2329}

	rec, ok, err := builder.Build(namedFeature("Main Gate"), loc)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, id, rec.LocationID)
	assert.Equal(t, "Main Gate", rec.Name)
	assert.Equal(t, "description", rec.Description)
	assert.Equal(t, "location_type", rec.LocationType)
	assert.Equal(t, "approved", rec.Status)
	assert.Equal(t, testDefaults.ContributorID, rec.ContributedBy)
	assert.Equal(t, 0.0, rec.AverageRating)
	assert.Equal(t, 0, rec.ReviewCount)
	assert.Equal(t, fixed, rec.CreatedAt)
	assert.Equal(t, fixed, rec.UpdatedAt)
	assert.Nil(t, rec.DeletedAt)

	// no rounding between the reduced point and the record
	assert.Equal(t, loc.Latitude, rec.Latitude)
	assert.Equal(t, loc.Longitude, rec.Longitude)
}

func TestRecordBuilder_Skip(t *testing.T) {
	builder := usecase.NewRecordBuilder(testDefaults)
	loc := &domain.ReducedLocation{Latitude: 1, Longitude: 1}

	tests := []struct {
		name    string
		feature *domain.Feature
	}{
		{name: "name absent", feature: namedFeature(nil)},
		{name: "name empty", feature: namedFeature("")},
		{name: "name not a string", feature: namedFeature(42.0)},
		{name: "no properties", feature: &domain.Feature{Type: domain.TypeFeature}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok, err := builder.Build(tt.feature, loc)
			assert.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, rec)
		})
	}
}

func TestRecordBuilder_MissingLocation(t *testing.T) {
	builder := usecase.NewRecordBuilder(testDefaults)

	rec, ok, err := builder.Build(namedFeature("Main Gate"), nil)
	assert.True(t, errors.Is(err, usecase.ErrMissingLocation))
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestRecordBuilder_InvalidDefaults(t *testing.T) {
	defaults := testDefaults
	defaults.Status = ""
	builder := usecase.NewRecordBuilder(defaults)

	_, ok, err := builder.Build(namedFeature("Main Gate"), &domain.ReducedLocation{})
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRecordBuilder_UniqueIdentities(t *testing.T) {
	builder := usecase.NewRecordBuilder(testDefaults)
	loc := &domain.ReducedLocation{Latitude: 1, Longitude: 1}

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		rec, ok, err := builder.Build(namedFeature("Same Name"), loc)
		require.NoError(t, err)
		require.True(t, ok)
		assert.False(t, seen[rec.LocationID], "identity reused: %s", rec.LocationID)
		seen[rec.LocationID] = true

		assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
		assert.Equal(t, time.UTC, rec.CreatedAt.Location())
	}
}
