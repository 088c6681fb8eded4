package lobby

import (
	"time"

	"github.com/KirkDiggler/mixladder/internal/models"
)

// MutateFunc changes a lobby in place. Players holds the lobby members when
// UpdateLobbyInput.WithPlayers is set and is nil otherwise. Returning an
// error aborts the update without writing anything.
type MutateFunc func(lobby *models.Lobby, players map[string]*models.Player) error

type SaveLobbyInput struct {
	Lobby *models.Lobby
}

type GetLobbyInput struct {
	LobbyID string
}

type GetLobbiesInput struct {
	LobbyIDs []string
}

type GetLobbiesOutput struct {
	Lobbies []*models.Lobby
}

type UpdateLobbyInput struct {
	LobbyID string

	// WithPlayers loads and persists the lobby members alongside the lobby
	WithPlayers bool

	Mutate MutateFunc

	// Now stamps UpdatedAt on the lobby and any changed players
	Now time.Time
}

type UpdateLobbyOutput struct {
	Lobby   *models.Lobby
	Players map[string]*models.Player
}

type SubscribeInput struct {
	LobbyID string
}

type SubscribeOutput struct {
	// Updates is closed when the subscription context ends
	Updates <-chan *models.Lobby
}
