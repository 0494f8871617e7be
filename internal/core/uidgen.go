package core

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
)

// UIDLength is the number of leading characters kept from a canonical UUID.
const UIDLength = 14

// UIDGenerator produces short rule identifiers.
type UIDGenerator interface {
	NewUID() (string, error)
}

// uuidGenerator draws version 4 UUIDs from an entropy source and truncates
// their canonical hyphenated form to UIDLength characters.
type uuidGenerator struct {
	rand io.Reader
}

// NewUIDGenerator creates a UIDGenerator backed by crypto/rand.
func NewUIDGenerator() UIDGenerator {
	return &uuidGenerator{}
}

// NewSeededUIDGenerator creates a deterministic UIDGenerator. The same seed
// always yields the same sequence of identifiers.
func NewSeededUIDGenerator(seed int64) UIDGenerator {
	return &uuidGenerator{rand: rand.New(rand.NewSource(seed))}
}

// NewUID returns the first UIDLength characters of a fresh UUID.
func (g *uuidGenerator) NewUID() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand == nil {
		id, err = uuid.NewRandom()
	} else {
		id, err = uuid.NewRandomFromReader(g.rand)
	}
	if err != nil {
		return "", fmt.Errorf("generating uuid: %w", err)
	}
	return id.String()[:UIDLength], nil
}
