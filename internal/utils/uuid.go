package utils

import "github.com/google/uuid"

// UUIDGenerator allocates deck ids. A UUIDv7 carries a millisecond
// timestamp followed by random bits, so ids created in the same millisecond
// still differ.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
