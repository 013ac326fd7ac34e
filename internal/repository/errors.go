package repository

import (
	"errors"

	"aircraft-factory-backend/internal/database/models"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

var (
	// ErrPartAlreadyLinked is returned when a part is already linked to an assembly
	ErrPartAlreadyLinked = errors.New("part is already linked to an assembly")
	// ErrPartTypeAlreadyFilled is returned when the assembly already holds a part of that type
	ErrPartTypeAlreadyFilled = errors.New("assembly already holds a part of this type")
	// ErrDuplicateKey is returned for any other unique constraint violation
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStaleState is returned when a guarded update matched no row
	ErrStaleState = errors.New("row is no longer in the expected state")
)

// translateError maps PostgreSQL unique violations to repository sentinels
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case models.AssemblyPartPartIndex:
		return ErrPartAlreadyLinked
	case models.AssemblyPartAssemblyIndex:
		return ErrPartTypeAlreadyFilled
	}
	return ErrDuplicateKey
}
