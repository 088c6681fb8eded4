package player

import "github.com/KirkDiggler/mixladder/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	TournamentID string
	PlayerID     string
}

// GetPlayersInput contains parameters for retrieving several players
type GetPlayersInput struct {
	TournamentID string
	PlayerIDs    []string
}

// GetPlayersOutput contains the requested players keyed by ID
type GetPlayersOutput struct {
	Players map[string]*models.Player
}

// ListPlayersInput contains parameters for listing a tournament's players
type ListPlayersInput struct {
	TournamentID string
}

// ListPlayersOutput contains the result of listing a tournament's players
type ListPlayersOutput struct {
	Players []*models.Player
}
