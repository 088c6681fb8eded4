package ladder

import (
	"context"

	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/partition"
	playerRepo "github.com/KirkDiggler/mixladder/internal/repositories/player"
	roundRepo "github.com/KirkDiggler/mixladder/internal/repositories/round"
	"go.uber.org/zap"
)

// GenerateRound partitions the tournament's eligible players into pending
// lobbies and a chill zone, then commits the whole round at once
func (s *service) GenerateRound(ctx context.Context, input *GenerateRoundInput) (*GenerateRoundOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "tournament ID is required")
	}

	logger := s.logger.With(zap.String("tournament_id", input.TournamentID))

	current, err := s.roundRepo.GetCurrentRound(ctx, &roundRepo.GetCurrentRoundInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, err
	}

	if current.Number > 0 {
		previous, err := s.loadRound(ctx, input.TournamentID, current.Number)
		if err != nil {
			return nil, err
		}
		for _, l := range previous.Lobbies {
			if l.Status != models.LobbyStatusFinished {
				return nil, draft.Errorf(draft.KindInvalidTransition, "round %d lobby %d is still %s", current.Number, l.Number, l.Status)
			}
		}
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, err
	}

	eligible := models.EligiblePlayers(players.Players)
	if len(eligible) < models.LobbySize {
		return nil, draft.Errorf(draft.KindDegenerateInput, "%d players remain, a round needs at least %d", len(eligible), models.LobbySize)
	}

	now := s.clock.Now()
	number := current.Number + 1
	result := partition.Partition(eligible, s.random)

	rd := &models.Round{
		TournamentID: input.TournamentID,
		Number:       number,
		LobbyIDs:     make([]string, 0, len(result.Lobbies)),
		ChillZone:    make([]*models.ChillZoneEntry, 0, len(result.ChillZone)),
		CreatedAt:    now,
	}

	lobbies := make([]*models.Lobby, 0, len(result.Lobbies))
	for i, group := range result.Lobbies {
		l := &models.Lobby{
			ID:             s.idGenerator.NewID(),
			TournamentID:   input.TournamentID,
			Round:          number,
			Number:         i + 1,
			Status:         models.LobbyStatusPending,
			Participations: make([]*models.Participation, 0, len(group)),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		for _, p := range group {
			l.Participations = append(l.Participations, &models.Participation{
				PlayerID: p.ID,
				Nickname: p.Nickname,
				Rating:   p.Rating,
			})
		}
		lobbies = append(lobbies, l)
		rd.LobbyIDs = append(rd.LobbyIDs, l.ID)
	}

	for _, p := range result.ChillZone {
		p.UpdatedAt = now
		rd.ChillZone = append(rd.ChillZone, &models.ChillZoneEntry{
			TournamentID: input.TournamentID,
			Round:        number,
			PlayerID:     p.ID,
			Nickname:     p.Nickname,
		})
	}

	err = s.roundRepo.CommitRound(ctx, &roundRepo.CommitRoundInput{
		Round:   rd,
		Lobbies: lobbies,
		Players: result.ChillZone,
		Pool:    eligible,
	})
	if err != nil {
		logger.Warn("round commit failed", zap.Int("round", number), zap.Error(err))
		return nil, translate(err)
	}

	logger.Info("round generated",
		zap.Int("round", number),
		zap.Int("lobbies", len(lobbies)),
		zap.Int("chill_zone", len(rd.ChillZone)),
	)

	return &GenerateRoundOutput{
		Round:   rd,
		Lobbies: lobbies,
	}, nil
}
