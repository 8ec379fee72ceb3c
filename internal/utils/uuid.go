package utils

import (
	"strings"

	"github.com/google/uuid"
)

// OpaqueTokenLength is the length of tokens produced by [NewOpaqueToken].
const OpaqueTokenLength = 32

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

// NewOpaqueToken returns a random 32 character lowercase hex token.
// It is built from a version 4 UUID, so it carries 122 random bits.
func NewOpaqueToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
