package postgres_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/repository/postgres/testhelpers"
)

const missingUser = "00000000-0000-0000-0000-000000000001"

// PlaceRepositorySuite tests place/user repositories and the transactor with a real database
type PlaceRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	places repository.PlaceRepository
	users  repository.UserRepository
	tx     repository.Transactor
	ctx    context.Context
}

func TestPlaceRepositorySuite(t *testing.T) {
	suite.Run(t, new(PlaceRepositorySuite))
}

// SetupSuite runs once before all tests
func (s *PlaceRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	err = testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata/fixtures", []string{"users.sql"})
	s.Require().NoError(err, "Failed to load fixtures")

	s.places = testhelpers.NewPlaceRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.users = testhelpers.NewUserRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.tx = testhelpers.NewTransactorForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests
func (s *PlaceRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *PlaceRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *PlaceRepositorySuite) newPlace(creator string) *domain.Place {
	return &domain.Place{
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers in the world!",
		Address:     "20 W 34th St, New York, NY 10001",
		Location:    domain.Coordinates{Lat: 40.7484474, Lng: -73.9871516},
		Image:       "https://example.com/esb.jpg",
		Creator:     creator,
	}
}

// createCommitted runs the same two writes the place service performs on create
func (s *PlaceRepositorySuite) createCommitted(creator string) *domain.Place {
	place := s.newPlace(creator)
	err := s.tx.WithinTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.places.Create(ctx, place); err != nil {
			return err
		}
		return s.users.AddPlace(ctx, creator, place.ID)
	})
	s.Require().NoError(err)
	return place
}

// ============================================================================
// Create / read
// ============================================================================

func (s *PlaceRepositorySuite) TestCreate_CommitsBothWrites() {
	place := s.createCommitted(testhelpers.UserAlice)

	s.NotEmpty(place.ID)
	s.False(place.CreatedAt.IsZero())

	got, err := s.places.GetByID(s.ctx, place.ID)
	s.Require().NoError(err)
	s.Equal(place.Title, got.Title)
	s.Equal(40.7484474, got.Location.Lat)
	s.Equal(-73.9871516, got.Location.Lng)
	s.Equal(testhelpers.UserAlice, got.Creator)

	user, err := s.users.GetByID(s.ctx, testhelpers.UserAlice)
	s.Require().NoError(err)
	s.True(user.HasPlace(place.ID))
}

func (s *PlaceRepositorySuite) TestGetByID_NotFound() {
	place, err := s.places.GetByID(s.ctx, "5f0c2d8e-0000-4000-8000-000000000000")
	s.Nil(place)
	s.True(stderrors.Is(err, apperrors.ErrPlaceNotFound))
}

func (s *PlaceRepositorySuite) TestGetByID_Idempotent() {
	place := s.createCommitted(testhelpers.UserAlice)

	first, err := s.places.GetByID(s.ctx, place.ID)
	s.Require().NoError(err)
	second, err := s.places.GetByID(s.ctx, place.ID)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *PlaceRepositorySuite) TestListByCreator() {
	s.createCommitted(testhelpers.UserAlice)
	s.createCommitted(testhelpers.UserAlice)
	s.createCommitted(testhelpers.UserBob)

	places, err := s.places.ListByCreator(s.ctx, testhelpers.UserAlice)
	s.Require().NoError(err)
	s.Len(places, 2)

	none, err := s.places.ListByCreator(s.ctx, missingUser)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *PlaceRepositorySuite) TestUserExists() {
	ok, err := s.users.Exists(s.ctx, testhelpers.UserBob)
	s.NoError(err)
	s.True(ok)

	ok, err = s.users.Exists(s.ctx, missingUser)
	s.NoError(err)
	s.False(ok)
}

// ============================================================================
// Update
// ============================================================================

func (s *PlaceRepositorySuite) TestUpdate_OnlyTitleAndDescription() {
	place := s.createCommitted(testhelpers.UserAlice)

	changed := *place
	changed.Title = "ESB"
	changed.Description = "Updated"
	changed.Address = "somewhere else"
	changed.Creator = testhelpers.UserBob
	s.Require().NoError(s.places.Update(s.ctx, &changed))

	got, err := s.places.GetByID(s.ctx, place.ID)
	s.Require().NoError(err)
	s.Equal("ESB", got.Title)
	s.Equal("Updated", got.Description)
	s.Equal(place.Address, got.Address)
	s.Equal(place.Location, got.Location)
	s.Equal(testhelpers.UserAlice, got.Creator)
}

func (s *PlaceRepositorySuite) TestUpdate_NotFound() {
	place := s.newPlace(testhelpers.UserAlice)
	place.ID = "5f0c2d8e-0000-4000-8000-000000000000"

	err := s.places.Update(s.ctx, place)
	s.True(stderrors.Is(err, apperrors.ErrPlaceNotFound))
}

// ============================================================================
// Atomicity
// ============================================================================

func (s *PlaceRepositorySuite) TestCreate_SecondWriteFailureRollsBack() {
	place := s.newPlace(testhelpers.UserAlice)

	err := s.tx.WithinTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.places.Create(ctx, place); err != nil {
			return err
		}
		// user list update targets a user that does not exist
		return s.users.AddPlace(ctx, missingUser, place.ID)
	})
	s.Require().Error(err)
	s.True(stderrors.Is(err, apperrors.ErrUserNotFound))

	n, err := testhelpers.CountPlaces(s.testDB.DB.DB, place.ID)
	s.Require().NoError(err)
	s.Zero(n, "place must not survive a rolled back transaction")

	places, err := testhelpers.GetUserPlaces(s.testDB.DB.DB, testhelpers.UserAlice)
	s.Require().NoError(err)
	s.NotContains(places, place.ID)
}

func (s *PlaceRepositorySuite) TestDelete_CommitsBothWrites() {
	place := s.createCommitted(testhelpers.UserAlice)

	err := s.tx.WithinTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.places.Delete(ctx, place.ID); err != nil {
			return err
		}
		return s.users.RemovePlace(ctx, place.Creator, place.ID)
	})
	s.Require().NoError(err)

	_, err = s.places.GetByID(s.ctx, place.ID)
	s.True(stderrors.Is(err, apperrors.ErrPlaceNotFound))

	places, err := testhelpers.GetUserPlaces(s.testDB.DB.DB, testhelpers.UserAlice)
	s.Require().NoError(err)
	s.NotContains(places, place.ID)
}

func (s *PlaceRepositorySuite) TestDelete_SecondWriteFailureRollsBack() {
	place := s.createCommitted(testhelpers.UserAlice)

	err := s.tx.WithinTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.places.Delete(ctx, place.ID); err != nil {
			return err
		}
		return s.users.RemovePlace(ctx, missingUser, place.ID)
	})
	s.Require().Error(err)

	n, err := testhelpers.CountPlaces(s.testDB.DB.DB, place.ID)
	s.Require().NoError(err)
	s.Equal(1, n)

	places, err := testhelpers.GetUserPlaces(s.testDB.DB.DB, testhelpers.UserAlice)
	s.Require().NoError(err)
	s.Contains(places, place.ID)
}

func (s *PlaceRepositorySuite) TestDelete_NotFound() {
	err := s.places.Delete(s.ctx, "5f0c2d8e-0000-4000-8000-000000000000")
	s.True(stderrors.Is(err, apperrors.ErrPlaceNotFound))
}

func (s *PlaceRepositorySuite) TestWithinTransaction_PanicRollsBack() {
	place := s.newPlace(testhelpers.UserBob)

	s.Panics(func() {
		_ = s.tx.WithinTransaction(s.ctx, func(ctx context.Context) error {
			if err := s.places.Create(ctx, place); err != nil {
				return err
			}
			panic("boom")
		})
	})

	n, err := testhelpers.CountPlaces(s.testDB.DB.DB, place.ID)
	s.Require().NoError(err)
	s.Zero(n)
}
