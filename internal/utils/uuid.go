package utils

import "github.com/google/uuid"

// UUIDGenerator issues record identifiers. Time-ordered v7 UUIDs are
// preferred so new records sort after old ones; v4 is the fallback.
type UUIDGenerator struct{}

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
