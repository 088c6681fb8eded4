package round

import "github.com/KirkDiggler/mixladder/internal/models"

// CommitRoundInput contains everything written when a round is generated
type CommitRoundInput struct {
	// Round to store; its Number must follow the tournament's current round
	Round *models.Round

	// Lobbies generated for the round
	Lobbies []*models.Lobby

	// Players whose state changed while partitioning
	Players []*models.Player

	// Pool is every player the round was partitioned from, as read. The
	// commit fails if any of them was written since.
	Pool []*models.Player
}

// GetRoundInput contains parameters for retrieving a round
type GetRoundInput struct {
	TournamentID string
	Number       int
}

// GetCurrentRoundInput contains parameters for retrieving the current round number
type GetCurrentRoundInput struct {
	TournamentID string
}

// GetCurrentRoundOutput contains the current round number
type GetCurrentRoundOutput struct {
	Number int
}

// UpsertPlayerFunc receives the stored player, nil when it is not registered
// yet, and the tournament's current round number. It returns the player to
// write. It can run more than once when the commit is retried.
type UpsertPlayerFunc func(existing *models.Player, currentRound int) (*models.Player, error)

// UpsertPlayerInput contains parameters for creating or updating a player
type UpsertPlayerInput struct {
	TournamentID string
	PlayerID     string
	Mutate       UpsertPlayerFunc
}

// UpsertPlayerOutput contains the written player
type UpsertPlayerOutput struct {
	Player  *models.Player
	Created bool
}
