package models

import "github.com/google/uuid"

// NewID returns a fresh random (v4) UUID in its canonical string form.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether s parses as a UUID.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
