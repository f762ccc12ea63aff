package service

import (
	"strings"

	"github.com/google/uuid"
)

// parseID returns the canonical form of a client supplied id.
func parseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", invalid("Invalid ID")
	}
	return id.String(), nil
}

// optional trims s and maps blank to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
