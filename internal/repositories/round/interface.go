package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mixladder/internal/repositories/round Repository

import (
	"context"

	"github.com/KirkDiggler/mixladder/internal/models"
)

// Repository defines the interface for round persistence
type Repository interface {
	// CommitRound atomically stores a generated round with its lobbies and
	// the players whose chill zone counters changed, provided no pool player
	// was written after it was read
	CommitRound(ctx context.Context, input *CommitRoundInput) error

	// GetRound retrieves a round by tournament and number
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// UpsertPlayer reads a player together with the current round number
	// and writes the result of Mutate only if neither changed meanwhile
	UpsertPlayer(ctx context.Context, input *UpsertPlayerInput) (*UpsertPlayerOutput, error)

	// GetCurrentRound returns the number of the latest committed round, 0 if none
	GetCurrentRound(ctx context.Context, input *GetCurrentRoundInput) (*GetCurrentRoundOutput, error)
}
