package id

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/mixladder/internal/common/id Generator

// Generator produces identifiers for lobbies
type Generator interface {
	NewID() string
}

// UUID generates random (v4) UUIDs
type UUID struct{}

func New() *UUID {
	return &UUID{}
}

// NewID returns a new UUID string
func (u *UUID) NewID() string {
	return uuid.NewString()
}
