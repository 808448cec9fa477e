// Package id generates and validates aggregate identifiers.
package id

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a random (v4) UUID string.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s is a canonical UUID.
func IsValid(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
