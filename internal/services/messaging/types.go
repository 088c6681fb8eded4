package messaging

import (
	"github.com/KirkDiggler/mixladder/internal/random"
)

// Config holds configuration for the messaging service
type Config struct {
	// Optional source used to pick lines, defaults to a randomly seeded one
	Random random.Source
}

// GetChillZoneMessageInput contains parameters for a chill zone announcement
type GetChillZoneMessageInput struct {
	// Nicknames of the resting players
	Nicknames []string
}

// GetChillZoneMessageOutput contains the chill zone announcement
type GetChillZoneMessageOutput struct {
	Message string
}

// GetLotteryMessageInput contains parameters for a lottery announcement
type GetLotteryMessageInput struct {
	// WinnerName is the captain who won the coin flip
	WinnerName string
}

// GetLotteryMessageOutput contains the lottery announcement
type GetLotteryMessageOutput struct {
	Message string
}

// GetVictoryMessageInput contains parameters for a victory line
type GetVictoryMessageInput struct {
	// CaptainName is the winning team's captain
	CaptainName string
}

// GetVictoryMessageOutput contains the victory line
type GetVictoryMessageOutput struct {
	Title   string
	Message string
}

// GetEliminationMessageInput contains parameters for an elimination line
type GetEliminationMessageInput struct {
	// Nicknames of the players who just lost their last life
	Nicknames []string
}

// GetEliminationMessageOutput contains the elimination line
type GetEliminationMessageOutput struct {
	Message string
}
