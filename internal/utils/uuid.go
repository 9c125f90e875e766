package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered version 7 identifiers for new records.
// Identifiers generated at least one millisecond apart sort lexicographically
// in generation order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh UUIDv7. Failures of the random source are
// propagated to the caller; there is no fallback to an unordered version.
func (g *UUIDGenerator) Generate() (uuid.UUID, error) {
	return uuid.NewV7()
}
