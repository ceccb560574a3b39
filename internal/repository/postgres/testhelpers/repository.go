package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPlaceRepositoryForTest creates a place repository with test database and logger
func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	return postgres.NewPlaceRepository(NewDBForTest(db, logger))
}

// NewUserRepositoryForTest creates a user repository with test database and logger
func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}

// NewTransactorForTest creates a transactor with test database and logger
func NewTransactorForTest(db *sqlx.DB, logger *zap.Logger) repository.Transactor {
	return postgres.NewTransactor(NewDBForTest(db, logger))
}
