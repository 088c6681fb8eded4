package ladder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mixladder/internal/common/clock"
	"github.com/KirkDiggler/mixladder/internal/common/id"
	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/random"
	lobbyRepo "github.com/KirkDiggler/mixladder/internal/repositories/lobby"
	playerRepo "github.com/KirkDiggler/mixladder/internal/repositories/player"
	roundRepo "github.com/KirkDiggler/mixladder/internal/repositories/round"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	playerRepo    playerRepo.Repository
	lobbyRepo     lobbyRepo.Repository
	roundRepo     roundRepo.Repository
	random        random.Source
	clock         clock.Clock
	idGenerator   id.Generator
	startingLives int
	logger        *zap.Logger
}

// New creates a new ladder service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.LobbyRepo == nil {
		return nil, ErrNilLobbyRepo
	}

	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.IDGenerator == nil {
		return nil, ErrNilIDGenerator
	}

	lives := cfg.StartingLives
	if lives == 0 {
		lives = DefaultStartingLives
	}
	if lives < 0 {
		return nil, ErrInvalidLives
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		playerRepo:    cfg.PlayerRepo,
		lobbyRepo:     cfg.LobbyRepo,
		roundRepo:     cfg.RoundRepo,
		random:        cfg.Random,
		clock:         cfg.Clock,
		idGenerator:   cfg.IDGenerator,
		startingLives: lives,
		logger:        logger,
	}, nil
}

// RegisterPlayer creates a player with the starting lives, or updates the
// nickname, rating and roles of an already registered player
func (s *service) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	if input == nil || input.TournamentID == "" || input.PlayerID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "tournament ID and player ID are required")
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "nickname is required")
	}

	if input.Rating < 0 {
		return nil, draft.Errorf(draft.KindInvalidInput, "rating cannot be negative")
	}

	now := s.clock.Now()

	out, err := s.roundRepo.UpsertPlayer(ctx, &roundRepo.UpsertPlayerInput{
		TournamentID: input.TournamentID,
		PlayerID:     input.PlayerID,
		Mutate: func(existing *models.Player, currentRound int) (*models.Player, error) {
			if existing == nil {
				if currentRound > 0 {
					return nil, ErrRegistrationClosed
				}
				existing = &models.Player{
					ID:           input.PlayerID,
					TournamentID: input.TournamentID,
					Lives:        s.startingLives,
					CreatedAt:    now,
				}
			}

			// lives and chill zone counters stay as stored
			existing.Nickname = nickname
			existing.Rating = input.Rating
			existing.Roles = input.Roles
			existing.UpdatedAt = now
			return existing, nil
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info("player registered",
		zap.String("tournament_id", input.TournamentID),
		zap.String("player_id", input.PlayerID),
		zap.Int("rating", input.Rating),
		zap.Bool("created", out.Created),
	)

	return &RegisterPlayerOutput{
		Player:  out.Player,
		Created: out.Created,
	}, nil
}

// GetLobby returns the current state of a lobby
func (s *service) GetLobby(ctx context.Context, input *GetLobbyInput) (*GetLobbyOutput, error) {
	if input == nil || input.LobbyID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "lobby ID is required")
	}

	l, err := s.lobbyRepo.GetLobby(ctx, &lobbyRepo.GetLobbyInput{
		LobbyID: input.LobbyID,
	})
	if err != nil {
		return nil, translate(err)
	}

	return &GetLobbyOutput{
		Lobby: l,
	}, nil
}

// GetRound returns a round and its lobbies
func (s *service) GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "tournament ID is required")
	}

	number := input.Number
	if number == 0 {
		current, err := s.roundRepo.GetCurrentRound(ctx, &roundRepo.GetCurrentRoundInput{
			TournamentID: input.TournamentID,
		})
		if err != nil {
			return nil, err
		}
		if current.Number == 0 {
			return nil, ErrRoundNotFound
		}
		number = current.Number
	}

	return s.loadRound(ctx, input.TournamentID, number)
}

func (s *service) loadRound(ctx context.Context, tournamentID string, number int) (*GetRoundOutput, error) {
	rd, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		TournamentID: tournamentID,
		Number:       number,
	})
	if err != nil {
		return nil, translate(err)
	}

	lobbies, err := s.lobbyRepo.GetLobbies(ctx, &lobbyRepo.GetLobbiesInput{
		LobbyIDs: rd.LobbyIDs,
	})
	if err != nil {
		return nil, translate(err)
	}

	return &GetRoundOutput{
		Round:   rd,
		Lobbies: lobbies.Lobbies,
	}, nil
}

// GetStandings ranks every registered player of a tournament
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "tournament ID is required")
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, err
	}

	return &GetStandingsOutput{
		Standings: models.NewStandings(input.TournamentID, players.Players),
	}, nil
}

// WatchLobby subscribes before reading the lobby so no committed change
// between the read and the first update is lost
func (s *service) WatchLobby(ctx context.Context, input *WatchLobbyInput) (*WatchLobbyOutput, error) {
	if input == nil || input.LobbyID == "" {
		return nil, draft.Errorf(draft.KindInvalidInput, "lobby ID is required")
	}

	ctx, cancel := context.WithCancel(ctx)

	sub, err := s.lobbyRepo.Subscribe(ctx, &lobbyRepo.SubscribeInput{
		LobbyID: input.LobbyID,
	})
	if err != nil {
		cancel()
		return nil, err
	}

	l, err := s.lobbyRepo.GetLobby(ctx, &lobbyRepo.GetLobbyInput{
		LobbyID: input.LobbyID,
	})
	if err != nil {
		cancel()
		return nil, translate(err)
	}

	// drop snapshots older than the one returned and stop once the lobby finishes
	updates := make(chan *models.Lobby)
	go func() {
		defer cancel()
		defer close(updates)

		version := l.Version
		for u := range sub.Updates {
			if u.Version <= version {
				continue
			}
			version = u.Version
			select {
			case updates <- u:
			case <-ctx.Done():
				return
			}
			if u.Status.IsTerminal() {
				return
			}
		}
	}()

	return &WatchLobbyOutput{
		Lobby:   l,
		Updates: updates,
	}, nil
}

// translate maps repository sentinels onto service errors
func translate(err error) error {
	switch {
	case errors.Is(err, lobbyRepo.ErrLobbyNotFound):
		return ErrLobbyNotFound
	case errors.Is(err, playerRepo.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, roundRepo.ErrRoundNotFound):
		return ErrRoundNotFound
	case errors.Is(err, roundRepo.ErrRoundConflict):
		return ErrRoundConflict
	case errors.Is(err, roundRepo.ErrPlayerConflict):
		return ErrPlayerConflict
	case errors.Is(err, lobbyRepo.ErrConcurrentUpdate):
		return fmt.Errorf("%w: %v", draft.ErrSlotConflict, err)
	}
	return err
}
