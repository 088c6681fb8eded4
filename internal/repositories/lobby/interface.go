package lobby

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mixladder/internal/repositories/lobby Repository

import (
	"context"

	"github.com/KirkDiggler/mixladder/internal/models"
)

// Repository defines the interface for lobby data persistence
type Repository interface {
	// SaveLobby persists a lobby unconditionally
	SaveLobby(ctx context.Context, input *SaveLobbyInput) error

	// GetLobby retrieves a lobby by ID
	GetLobby(ctx context.Context, input *GetLobbyInput) (*models.Lobby, error)

	// GetLobbies retrieves several lobbies in the order requested
	GetLobbies(ctx context.Context, input *GetLobbiesInput) (*GetLobbiesOutput, error)

	// UpdateLobby applies a mutation to a lobby, and optionally its players,
	// as a single writer. Concurrent updates to the same lobby are retried.
	UpdateLobby(ctx context.Context, input *UpdateLobbyInput) (*UpdateLobbyOutput, error)

	// Subscribe streams lobby snapshots published after each committed update
	Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error)
}
