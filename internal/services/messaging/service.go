package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mixladder/internal/random"
)

// service implements the Service interface
type service struct {
	rand random.Source
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	rng := cfg.Random
	if rng == nil {
		rng = random.New(&random.Config{})
	}

	return &service{
		rand: rng,
	}, nil
}

func (s *service) choose(lines []string) string {
	return lines[s.rand.Intn(len(lines))]
}

// joinNames renders "a", "a and b" or "a, b and c"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// GetChillZoneMessage returns a line announcing who rests this round
func (s *service) GetChillZoneMessage(ctx context.Context, input *GetChillZoneMessageInput) (*GetChillZoneMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Nicknames) == 0 {
		return &GetChillZoneMessageOutput{
			Message: s.choose([]string{
				"Nobody sits out this round. Everyone to the fountain!",
				"Full lobbies, empty bench. Good luck out there.",
				"The chill zone is empty. No excuses this round.",
			}),
		}, nil
	}

	names := joinNames(input.Nicknames)
	return &GetChillZoneMessageOutput{
		Message: s.choose([]string{
			fmt.Sprintf("%s sit this one out. Grab a snack and watch the replays.", names),
			fmt.Sprintf("Chill zone: %s. Your lives are safe until next round.", names),
			fmt.Sprintf("%s head to the bench. Don't forget to stretch.", names),
			fmt.Sprintf("The courier brings %s a chair. See you next round.", names),
		}),
	}, nil
}

// GetLotteryMessage returns a line announcing the coin flip winner
func (s *service) GetLotteryMessage(ctx context.Context, input *GetLotteryMessageInput) (*GetLotteryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.WinnerName == "" {
		return nil, errors.New("winner name is required")
	}

	return &GetLotteryMessageOutput{
		Message: s.choose([]string{
			fmt.Sprintf("The coin lands for %s. First pick or counter pick?", input.WinnerName),
			fmt.Sprintf("%s wins the flip and decides who picks first.", input.WinnerName),
			fmt.Sprintf("Heads! %s calls the draft order.", input.WinnerName),
		}),
	}, nil
}

// GetVictoryMessage returns a line celebrating a lobby's winners
func (s *service) GetVictoryMessage(ctx context.Context, input *GetVictoryMessageInput) (*GetVictoryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{
		"GG WP!",
		"Ancient Destroyed!",
		"Victory!",
		"Throne Down!",
	}

	captain := input.CaptainName
	if captain == "" {
		captain = "the winners"
	}

	messages := []string{
		fmt.Sprintf("%s drafted a winner. Everyone on the other side loses a life.", captain),
		fmt.Sprintf("Team %s takes it! The losers pay a life.", captain),
		fmt.Sprintf("The draft diff was real. Congratulations to %s.", captain),
	}

	return &GetVictoryMessageOutput{
		Title:   s.choose(titles),
		Message: s.choose(messages),
	}, nil
}

// GetEliminationMessage returns a line for players who ran out of lives
func (s *service) GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Nicknames) == 0 {
		return &GetEliminationMessageOutput{}, nil
	}

	names := joinNames(input.Nicknames)
	return &GetEliminationMessageOutput{
		Message: s.choose([]string{
			fmt.Sprintf("%s are out of lives. Thanks for playing!", names),
			fmt.Sprintf("No buyback for %s. The ladder moves on.", names),
			fmt.Sprintf("%s have been eliminated. Rest in pieces.", names),
		}),
	}, nil
}
