package utils

import "github.com/google/uuid"

// UUIDGenerator mints string ids for server-assigned identifiers such as
// contact message and invoice ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so ids sort by creation time. If the
// platform entropy source fails it falls back to a random v4.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
