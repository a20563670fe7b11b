package postgres_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/domain/repository"
	apperrors "github.com/location-loader/internal/pkg/errors"
	"github.com/location-loader/internal/repository/postgres/testhelpers"
)

var (
	fixtureMainGate   = uuid.MustParse("8f14e45f-ceea-4e7a-9f0b-3c1f1b0b7a01")
	fixtureOldLibrary = uuid.MustParse("8f14e45f-ceea-4e7a-9f0b-3c1f1b0b7a02")
	contributor       = uuid.MustParse("31b0bc36-6fc3-4040-9590-fb5d579e77df")
)

// LocationRepositorySuite tests the location repository with real database
type LocationRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.LocationRepository
	ctx    context.Context
}

func TestLocationRepositorySuite(t *testing.T) {
	suite.Run(t, new(LocationRepositorySuite))
}

// SetupSuite runs once before all tests
func (s *LocationRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, testhelpers.MigrationsPath)
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewLocationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests
func (s *LocationRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *LocationRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))

	err := testhelpers.LoadFixtures(s.testDB.DB.DB, testhelpers.FixturesPath, []string{"locations.sql"})
	s.Require().NoError(err, "Failed to load fixtures")
}

func (s *LocationRepositorySuite) newRecord(name string, lat, lon float64) *domain.LocationRecord {
	now := time.Now().UTC()
	return &domain.LocationRecord{
		LocationID:    uuid.New(),
		Name:          name,
		Description:   "description",
		Latitude:      lat,
		Longitude:     lon,
		LocationType:  "location_type",
		Status:        "approved",
		ContributedBy: contributor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ============================================================================
// Test GetByID
// ============================================================================

func (s *LocationRepositorySuite) TestGetByID_Fixture() {
	rec, err := s.repo.GetByID(s.ctx, fixtureMainGate)
	s.Require().NoError(err)
	s.Equal("Main Gate", rec.Name)
	s.Equal(26.5123, rec.Latitude)
	s.Equal(80.2329, rec.Longitude)
	s.Equal(contributor, rec.ContributedBy)
	s.Nil(rec.DeletedAt)
}

func (s *LocationRepositorySuite) TestGetByID_SoftDeletedIsHidden() {
	rec, err := s.repo.GetByID(s.ctx, fixtureOldLibrary)
	s.Nil(rec)
	s.True(stderrors.Is(err, apperrors.ErrLocationNotFound))
}

func (s *LocationRepositorySuite) TestGetByID_NotFound() {
	rec, err := s.repo.GetByID(s.ctx, uuid.New())
	s.Nil(rec)
	s.True(stderrors.Is(err, apperrors.ErrLocationNotFound))
}

// ============================================================================
// Test batches
// ============================================================================

func (s *LocationRepositorySuite) TestInsertFinalize_RoundTrip() {
	rec := s.newRecord("Lecture Hall Complex", 26.51234567890123, 80.23456789012345)

	batch, err := s.repo.Begin(s.ctx)
	s.Require().NoError(err)
	defer batch.Close()

	s.Require().NoError(batch.Insert(s.ctx, rec))
	s.Require().NoError(batch.Finalize())

	got, err := s.repo.GetByID(s.ctx, rec.LocationID)
	s.Require().NoError(err)
	s.Equal(rec.Name, got.Name)
	s.Equal(rec.Latitude, got.Latitude)
	s.Equal(rec.Longitude, got.Longitude)
	s.Equal("approved", got.Status)
	s.Equal(0, got.ReviewCount)
	s.Equal(0.0, got.AverageRating)
	s.WithinDuration(rec.CreatedAt, got.CreatedAt, time.Millisecond)
	s.Equal(got.CreatedAt, got.UpdatedAt)
}

func (s *LocationRepositorySuite) TestClose_WithoutFinalizeRollsBack() {
	rec := s.newRecord("Never Committed", 1, 2)

	batch, err := s.repo.Begin(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(batch.Insert(s.ctx, rec))
	s.Require().NoError(batch.Close())

	_, err = s.repo.GetByID(s.ctx, rec.LocationID)
	s.True(stderrors.Is(err, apperrors.ErrLocationNotFound))
}

func (s *LocationRepositorySuite) TestInsert_FailureDoesNotPoisonBatch() {
	first := s.newRecord("Hostel 1", 1, 1)
	duplicate := s.newRecord("Hostel 1 again", 2, 2)
	duplicate.LocationID = first.LocationID
	second := s.newRecord("Hostel 2", 3, 3)

	batch, err := s.repo.Begin(s.ctx)
	s.Require().NoError(err)
	defer batch.Close()

	s.Require().NoError(batch.Insert(s.ctx, first))

	err = batch.Insert(s.ctx, duplicate)
	s.Require().Error(err)
	var pe *apperrors.PersistenceError
	s.Require().True(stderrors.As(err, &pe))
	s.Equal("23505", pe.Code)

	s.Require().NoError(batch.Insert(s.ctx, second))
	s.Require().NoError(batch.Finalize())

	_, err = s.repo.GetByID(s.ctx, first.LocationID)
	s.NoError(err)
	_, err = s.repo.GetByID(s.ctx, second.LocationID)
	s.NoError(err)
}

func (s *LocationRepositorySuite) TestInsert_DuplicateNamesGetDistinctRows() {
	batch, err := s.repo.Begin(s.ctx)
	s.Require().NoError(err)
	defer batch.Close()

	s.Require().NoError(batch.Insert(s.ctx, s.newRecord("Canteen", 1, 1)))
	s.Require().NoError(batch.Insert(s.ctx, s.newRecord("Canteen", 1, 1)))
	s.Require().NoError(batch.Finalize())

	n, err := testhelpers.CountLocationsByName(s.testDB.DB.DB, "Canteen")
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *LocationRepositorySuite) TestFinalize_Twice() {
	batch, err := s.repo.Begin(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(batch.Finalize())
	s.True(apperrors.IsPersistence(batch.Finalize()))
	s.NoError(batch.Close())
	s.True(apperrors.IsPersistence(batch.Insert(s.ctx, s.newRecord("Late", 0, 0))))
}
