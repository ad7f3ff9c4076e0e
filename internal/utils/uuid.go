package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered ids for the X-Trace-ID header, so the
// client log and the portal log sort the same request the same way.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7, falling back to a random v4 if the clock
// sequence cannot be read.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
