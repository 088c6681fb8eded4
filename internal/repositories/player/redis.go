package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix            = "player:"
	tournamentPlayersKeyPrefix = "tournament_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Key returns the Redis key holding a player
func Key(tournamentID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", playerKeyPrefix, tournamentID, playerID)
}

// TournamentKey returns the Redis set indexing a tournament's players
func TournamentKey(tournamentID string) string {
	return tournamentPlayersKeyPrefix + tournamentID
}

// Write queues a player write on a pipeline or transaction so other
// repositories can persist players atomically with their own records.
// It bumps the player's Version.
func Write(ctx context.Context, pipe redis.Pipeliner, p *models.Player) error {
	if p.ID == "" || p.TournamentID == "" {
		return errors.New("player ID and tournament ID cannot be empty")
	}

	p.Version++

	playerJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal player %s: %w", p.ID, err)
	}

	pipe.Set(ctx, Key(p.TournamentID, p.ID), playerJSON, 0)
	pipe.SAdd(ctx, TournamentKey(p.TournamentID), p.ID)
	return nil
}

// Decode unmarshals a stored player
func Decode(data string) (*models.Player, error) {
	var p models.Player
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}
	return &p, nil
}

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	pipe := r.client.TxPipeline()
	if err := Write(ctx, pipe, input.Player); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.TournamentID == "" || input.PlayerID == "" {
		return nil, errors.New("input, tournament ID and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, Key(input.TournamentID, input.PlayerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return Decode(playerJSON)
}

// GetPlayers retrieves several players in one round trip. Any missing player
// fails the whole call with ErrPlayerNotFound.
func (r *redisRepository) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	players, err := r.fetch(ctx, input.TournamentID, input.PlayerIDs, false)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	return &GetPlayersOutput{
		Players: byID,
	}, nil
}

// ListPlayers retrieves every player of a tournament ordered by ID
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, TournamentKey(input.TournamentID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for tournament: %w", err)
	}
	sort.Strings(playerIDs)

	players, err := r.fetch(ctx, input.TournamentID, playerIDs, true)
	if err != nil {
		return nil, err
	}

	return &ListPlayersOutput{
		Players: players,
	}, nil
}

func (r *redisRepository) fetch(ctx context.Context, tournamentID string, playerIDs []string, skipMissing bool) ([]*models.Player, error) {
	if len(playerIDs) == 0 {
		return []*models.Player{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		cmds[i] = pipe.Get(ctx, Key(tournamentID, playerID))
	}

	// redis.Nil from a single command is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range cmds {
		playerJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				if skipMissing {
					continue
				}
				return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerIDs[i])
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		p, err := Decode(playerJSON)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, nil
}
