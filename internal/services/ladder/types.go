package ladder

import (
	"github.com/KirkDiggler/mixladder/internal/common/clock"
	"github.com/KirkDiggler/mixladder/internal/common/id"
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/random"
	lobbyRepo "github.com/KirkDiggler/mixladder/internal/repositories/lobby"
	playerRepo "github.com/KirkDiggler/mixladder/internal/repositories/player"
	roundRepo "github.com/KirkDiggler/mixladder/internal/repositories/round"
	"go.uber.org/zap"
)

// DefaultStartingLives is used when Config.StartingLives is zero
const DefaultStartingLives = 2

// Config holds the dependencies of the ladder service
type Config struct {
	PlayerRepo  playerRepo.Repository
	LobbyRepo   lobbyRepo.Repository
	RoundRepo   roundRepo.Repository
	Random      random.Source
	Clock       clock.Clock
	IDGenerator id.Generator

	// StartingLives is given to newly registered players
	StartingLives int

	// Optional logger, defaults to a no-op logger
	Logger *zap.Logger
}

// RegisterPlayerInput contains parameters for registering a player
type RegisterPlayerInput struct {
	TournamentID string
	PlayerID     string
	Nickname     string
	Rating       int
	Roles        []string
}

// RegisterPlayerOutput contains the result of registering a player
type RegisterPlayerOutput struct {
	Player *models.Player

	// Created is false when an existing player's profile was updated
	Created bool
}

// GenerateRoundInput contains parameters for generating a round
type GenerateRoundInput struct {
	TournamentID string
}

// GenerateRoundOutput contains the generated round
type GenerateRoundOutput struct {
	Round   *models.Round
	Lobbies []*models.Lobby
}

// StartDraftInput contains parameters for starting a lobby's draft
type StartDraftInput struct {
	LobbyID string
}

// StartDraftOutput contains the drafting lobby
type StartDraftOutput struct {
	Lobby *models.Lobby
}

// SetFirstPickerInput contains parameters for choosing the first picker
type SetFirstPickerInput struct {
	LobbyID   string
	CaptainID string

	// Optional; when set it must be the lottery winner
	ActorID string
}

// SetFirstPickerOutput contains the updated lobby
type SetFirstPickerOutput struct {
	Lobby *models.Lobby
}

// PickInput contains parameters for a draft pick. An empty PlayerID undoes
// the pick at Team/Slot.
type PickInput struct {
	LobbyID  string
	Team     models.Team
	Slot     int
	PlayerID string

	// Optional; when set it must be the captain of Team
	ActorID string
}

// PickOutput contains the updated lobby
type PickOutput struct {
	Lobby *models.Lobby

	// NextPicker is the team on the clock, TeamNone once the draft is complete
	NextPicker models.Team
}

// FinishLobbyInput contains parameters for recording a lobby result
type FinishLobbyInput struct {
	LobbyID     string
	WinningTeam models.Team
}

// FinishLobbyOutput contains the finished lobby and the life changes
type FinishLobbyOutput struct {
	Lobby *models.Lobby

	// Losers are the losing players after their life was taken
	Losers []*models.Player

	// Eliminated are the losers who just ran out of lives
	Eliminated []*models.Player
}

// GetLobbyInput contains parameters for retrieving a lobby
type GetLobbyInput struct {
	LobbyID string
}

// GetLobbyOutput contains the lobby
type GetLobbyOutput struct {
	Lobby *models.Lobby
}

// GetRoundInput contains parameters for retrieving a round. A zero Number
// means the current round.
type GetRoundInput struct {
	TournamentID string
	Number       int
}

// GetRoundOutput contains the round and its lobbies in order
type GetRoundOutput struct {
	Round   *models.Round
	Lobbies []*models.Lobby
}

// GetStandingsInput contains parameters for retrieving standings
type GetStandingsInput struct {
	TournamentID string
}

// GetStandingsOutput contains the standings
type GetStandingsOutput struct {
	Standings *models.Standings
}

// WatchLobbyInput contains parameters for watching a lobby
type WatchLobbyInput struct {
	LobbyID string
}

// WatchLobbyOutput contains the lobby as it was when watching began and the
// stream of later snapshots
type WatchLobbyOutput struct {
	Lobby   *models.Lobby
	Updates <-chan *models.Lobby
}
