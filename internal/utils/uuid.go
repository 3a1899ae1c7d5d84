package utils

import "github.com/google/uuid"

const canonicalUUIDLen = 36

// UUIDGenerator hands out version 7 uuids. They sort by creation time, so
// a note created on the client keeps its place once the server stores it.
type UUIDGenerator struct {
	fallback func() string
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{fallback: uuid.NewString}
}

// Generate falls back to a random uuid when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return g.fallback()
	}
	return id.String()
}

// IsValidUUID accepts only the canonical xxxxxxxx-xxxx-... form. Braced
// and urn: forms that uuid.Validate allows are rejected.
func IsValidUUID(s string) bool {
	return len(s) == canonicalUUIDLen && uuid.Validate(s) == nil
}
