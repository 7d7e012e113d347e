package services

import (
	"errors"
	"fmt"

	"movie-catalog/internal/repository"

	"gorm.io/gorm"
)

// Error kinds returned by the services. Handlers map each kind to a status code.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrStorage  = errors.New("storage failure")
)

// classify wraps a repository error in the matching error kind.
func classify(err error, entity string, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return fmt.Errorf("%s with ID %d: %w", entity, id, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w: %v", entity, ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w: %v", entity, ErrStorage, err)
	}
}
