package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for new records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the
// time-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s parses as a UUID.
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
