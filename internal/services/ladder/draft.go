package ladder

import (
	"context"

	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/models"
	lobbyRepo "github.com/KirkDiggler/mixladder/internal/repositories/lobby"
	"go.uber.org/zap"
)

// StartDraft moves a pending lobby to drafting
func (s *service) StartDraft(ctx context.Context, input *StartDraftInput) (*StartDraftOutput, error) {
	if input == nil || input.LobbyID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "lobby ID is required")
	}

	now := s.clock.Now()
	out, err := s.lobbyRepo.UpdateLobby(ctx, &lobbyRepo.UpdateLobbyInput{
		LobbyID: input.LobbyID,
		Now:     now,
		Mutate: func(l *models.Lobby, _ map[string]*models.Player) error {
			return draft.Start(l, s.random, now)
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info("draft started",
		zap.String("lobby_id", out.Lobby.ID),
		zap.Int("round", out.Lobby.Round),
		zap.String("captain1_id", out.Lobby.Captain1ID),
		zap.String("captain2_id", out.Lobby.Captain2ID),
		zap.String("lottery_winner_id", out.Lobby.LotteryWinnerID),
	)

	return &StartDraftOutput{
		Lobby: out.Lobby,
	}, nil
}

// SetFirstPicker records the lottery winner's choice of first picker
func (s *service) SetFirstPicker(ctx context.Context, input *SetFirstPickerInput) (*SetFirstPickerOutput, error) {
	if input == nil || input.LobbyID == "" || input.CaptainID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "lobby ID and captain ID are required")
	}

	out, err := s.lobbyRepo.UpdateLobby(ctx, &lobbyRepo.UpdateLobbyInput{
		LobbyID: input.LobbyID,
		Now:     s.clock.Now(),
		Mutate: func(l *models.Lobby, _ map[string]*models.Player) error {
			if input.ActorID != "" && l.LotteryWinnerID != "" && input.ActorID != l.LotteryWinnerID {
				return ErrNotCaptain
			}
			return draft.SetFirstPicker(l, input.CaptainID)
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info("first picker chosen",
		zap.String("lobby_id", out.Lobby.ID),
		zap.String("first_picker_id", out.Lobby.FirstPickerID),
	)

	return &SetFirstPickerOutput{
		Lobby: out.Lobby,
	}, nil
}

// Pick applies one draft pick, or an undo when PlayerID is empty
func (s *service) Pick(ctx context.Context, input *PickInput) (*PickOutput, error) {
	if input == nil || input.LobbyID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "lobby ID is required")
	}

	now := s.clock.Now()
	out, err := s.lobbyRepo.UpdateLobby(ctx, &lobbyRepo.UpdateLobbyInput{
		LobbyID: input.LobbyID,
		Now:     now,
		Mutate: func(l *models.Lobby, _ map[string]*models.Player) error {
			if input.ActorID != "" {
				team, ok := l.CaptainTeam(input.ActorID)
				if !ok || team != input.Team {
					return ErrNotCaptain
				}
			}
			return draft.Pick(l, input.Team, input.Slot, input.PlayerID, now)
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	next, _ := draft.CurrentPicker(out.Lobby)

	s.logger.Info("pick recorded",
		zap.String("lobby_id", out.Lobby.ID),
		zap.Stringer("team", input.Team),
		zap.Int("slot", input.Slot),
		zap.String("player_id", input.PlayerID),
		zap.Bool("undo", input.PlayerID == ""),
		zap.String("status", string(out.Lobby.Status)),
	)

	return &PickOutput{
		Lobby:      out.Lobby,
		NextPicker: next,
	}, nil
}

// FinishLobby records the result and applies life loss in the same
// transaction, so a lobby can never cost lives twice
func (s *service) FinishLobby(ctx context.Context, input *FinishLobbyInput) (*FinishLobbyOutput, error) {
	if input == nil || input.LobbyID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "lobby ID is required")
	}

	var losers []string
	var eliminated []*models.Player
	out, err := s.lobbyRepo.UpdateLobby(ctx, &lobbyRepo.UpdateLobbyInput{
		LobbyID:     input.LobbyID,
		WithPlayers: true,
		Now:         s.clock.Now(),
		Mutate: func(l *models.Lobby, players map[string]*models.Player) error {
			var err error
			losers, err = draft.Finish(l, input.WinningTeam)
			if err != nil {
				return err
			}
			eliminated = draft.ApplyLifeLoss(players, losers)
			return nil
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	losing := make([]*models.Player, 0, len(losers))
	for _, id := range losers {
		if p, ok := out.Players[id]; ok {
			losing = append(losing, p)
		}
	}

	logger := s.logger.With(
		zap.String("tournament_id", out.Lobby.TournamentID),
		zap.String("lobby_id", out.Lobby.ID),
		zap.Int("round", out.Lobby.Round),
	)
	logger.Info("lobby finished", zap.Stringer("winning_team", input.WinningTeam))
	for _, p := range eliminated {
		logger.Info("player eliminated", zap.String("player_id", p.ID), zap.String("nickname", p.Nickname))
	}

	return &FinishLobbyOutput{
		Lobby:      out.Lobby,
		Losers:     losing,
		Eliminated: eliminated,
	}, nil
}
