package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mixladder/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetChillZoneMessage returns a line announcing who rests this round
	GetChillZoneMessage(ctx context.Context, input *GetChillZoneMessageInput) (*GetChillZoneMessageOutput, error)

	// GetLotteryMessage returns a line announcing the coin flip winner
	GetLotteryMessage(ctx context.Context, input *GetLotteryMessageInput) (*GetLotteryMessageOutput, error)

	// GetVictoryMessage returns a line celebrating a lobby's winners
	GetVictoryMessage(ctx context.Context, input *GetVictoryMessageInput) (*GetVictoryMessageOutput, error)

	// GetEliminationMessage returns a line for players who ran out of lives
	GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error)
}
