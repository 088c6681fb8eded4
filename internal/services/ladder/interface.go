package ladder

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mixladder/internal/services/ladder Service

import "context"

// Service defines the tournament operations exposed to the bot and HTTP API
type Service interface {
	// RegisterPlayer adds a player to a tournament or updates their profile
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)

	// GenerateRound partitions the eligible players into lobbies and a chill zone
	GenerateRound(ctx context.Context, input *GenerateRoundInput) (*GenerateRoundOutput, error)

	// StartDraft seeds captains and flips the lottery coin for a pending lobby
	StartDraft(ctx context.Context, input *StartDraftInput) (*StartDraftOutput, error)

	// SetFirstPicker records which captain makes the first pick
	SetFirstPicker(ctx context.Context, input *SetFirstPickerInput) (*SetFirstPickerOutput, error)

	// Pick places a player on a team slot, or undoes the latest pick
	Pick(ctx context.Context, input *PickInput) (*PickOutput, error)

	// FinishLobby records the winner and takes a life from every loser
	FinishLobby(ctx context.Context, input *FinishLobbyInput) (*FinishLobbyOutput, error)

	// GetLobby returns the current state of a lobby
	GetLobby(ctx context.Context, input *GetLobbyInput) (*GetLobbyOutput, error)

	// GetRound returns a round with its lobbies
	GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error)

	// GetStandings returns the tournament ladder
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// WatchLobby streams lobby snapshots until ctx is done
	WatchLobby(ctx context.Context, input *WatchLobbyInput) (*WatchLobbyOutput, error)
}
