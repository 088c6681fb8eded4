package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mixladder/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/mixladder/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player and indexes it under its tournament
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by tournament and ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayers retrieves a specific set of players of a tournament
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// ListPlayers retrieves every player registered in a tournament
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
}
