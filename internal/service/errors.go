package service

import (
	"errors"
	"fmt"

	"github.com/Skotchmaster/catalog_admin/internal/repo"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInUse            = errors.New("still referenced")
	ErrUnavailable      = errors.New("store unavailable")
)

// ValidationError carries the message shown to the client. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// fromStore translates a tagged repo error. onFK is the sentinel a foreign
// key violation means for the calling operation.
func fromStore(err, onFK error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, repo.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, repo.ErrForeignKey) && onFK != nil:
		return fmt.Errorf("%w: %w", onFK, err)
	case errors.Is(err, repo.ErrTransient):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
