package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormStore implements Store over a GORM handle
type GormStore struct {
	db           *gorm.DB
	teams        *TeamRepository
	users        *UserRepository
	parts        *PartRepository
	assemblies   *AssemblyRepository
	assemblyLogs *AssemblyLogRepository
	aircraft     *AircraftRepository
}

// NewStore creates a store whose repositories share db
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:           db,
		teams:        NewTeamRepository(db),
		users:        NewUserRepository(db),
		parts:        NewPartRepository(db),
		assemblies:   NewAssemblyRepository(db),
		assemblyLogs: NewAssemblyLogRepository(db),
		aircraft:     NewAircraftRepository(db),
	}
}

func (s *GormStore) Teams() TeamRepositoryInterface               { return s.teams }
func (s *GormStore) Users() UserRepositoryInterface               { return s.users }
func (s *GormStore) Parts() PartRepositoryInterface               { return s.parts }
func (s *GormStore) Assemblies() AssemblyRepositoryInterface      { return s.assemblies }
func (s *GormStore) AssemblyLogs() AssemblyLogRepositoryInterface { return s.assemblyLogs }
func (s *GormStore) Aircraft() AircraftRepositoryInterface        { return s.aircraft }

// Transaction runs fn inside a database transaction. When the store is already bound
// to a transaction GORM issues a savepoint, so a failing nested fn only rolls back its own writes.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
