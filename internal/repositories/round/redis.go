package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/repositories/lobby"
	"github.com/KirkDiggler/mixladder/internal/repositories/player"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roundKeyPrefix           = "round:"
	tournamentRoundKeyPrefix = "tournament_round:"

	defaultMaxRetries = 10
)

var (
	// ErrRoundNotFound is returned when a round is not found
	ErrRoundNotFound = errors.New("round not found")

	// ErrRoundConflict is returned when another round was committed, or the
	// tournament's players changed, while a round was being generated
	ErrRoundConflict = errors.New("round was generated concurrently")

	// ErrPlayerConflict is returned when UpsertPlayer keeps losing to
	// concurrent writers
	ErrPlayerConflict = errors.New("player was updated concurrently")
)

// Key returns the Redis key holding a round
func Key(tournamentID string, number int) string {
	return fmt.Sprintf("%s%s:%d", roundKeyPrefix, tournamentID, number)
}

// CurrentKey returns the Redis key holding a tournament's current round number
func CurrentKey(tournamentID string) string {
	return tournamentRoundKeyPrefix + tournamentID
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional number of optimistic retries for UpsertPlayer
	MaxRetries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxRetries int
}

// NewRedis creates a new Redis-backed round repository
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

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxRetries: maxRetries,
	}, nil
}

// CommitRound writes the round, its lobbies, the changed players and the new
// current round number in one MULTI. The tournament's current round key, its
// player index and every pool player are watched, so any concurrent
// generation, registration or result aborts the commit with ErrRoundConflict.
// A pool player already written between the caller's read and the WATCH is
// caught by its Version.
func (r *redisRepository) CommitRound(ctx context.Context, input *CommitRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	rd := input.Round
	if rd.TournamentID == "" || rd.Number < 1 {
		return errors.New("round needs a tournament ID and a positive number")
	}

	roundJSON, err := json.Marshal(rd)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	watched := []string{CurrentKey(rd.TournamentID), player.TournamentKey(rd.TournamentID)}
	for _, p := range input.Players {
		watched = append(watched, player.Key(p.TournamentID, p.ID))
	}
	poolKeys := make([]string, len(input.Pool))
	for i, p := range input.Pool {
		poolKeys[i] = player.Key(rd.TournamentID, p.ID)
	}
	watched = append(watched, poolKeys...)

	txf := func(tx *redis.Tx) error {
		current, err := currentNumber(ctx, tx, rd.TournamentID)
		if err != nil {
			return err
		}
		if current != rd.Number-1 {
			return fmt.Errorf("%w: current round is %d, cannot commit round %d", ErrRoundConflict, current, rd.Number)
		}

		if err := checkPool(ctx, tx, poolKeys, input.Pool); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(rd.TournamentID, rd.Number), roundJSON, 0)
			for _, l := range input.Lobbies {
				if err := lobby.Write(ctx, pipe, l); err != nil {
					return err
				}
			}
			for _, p := range input.Players {
				if err := player.Write(ctx, pipe, p); err != nil {
					return err
				}
			}
			pipe.Set(ctx, CurrentKey(rd.TournamentID), rd.Number, 0)
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, watched...)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrRoundConflict
	}
	if err != nil {
		return err
	}

	return nil
}

func checkPool(ctx context.Context, tx *redis.Tx, keys []string, pool []*models.Player) error {
	if len(keys) == 0 {
		return nil
	}

	values, err := tx.MGet(ctx, keys...).Result()
	if err != nil {
		return fmt.Errorf("failed to get players: %w", err)
	}

	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: player %s is gone", ErrRoundConflict, pool[i].ID)
		}
		stored, err := player.Decode(data)
		if err != nil {
			return err
		}
		if stored.Version != pool[i].Version {
			return fmt.Errorf("%w: player %s changed since it was read", ErrRoundConflict, pool[i].ID)
		}
	}

	return nil
}

// UpsertPlayer watches the tournament's current round key and the player's
// key, hands both to Mutate and writes its result in one MULTI. Lives and
// chill zone counters written by a concurrent result or round are never
// overwritten with a stale copy.
func (r *redisRepository) UpsertPlayer(ctx context.Context, input *UpsertPlayerInput) (*UpsertPlayerOutput, error) {
	if input == nil || input.TournamentID == "" || input.PlayerID == "" {
		return nil, errors.New("input, tournament ID and player ID cannot be empty")
	}

	if input.Mutate == nil {
		return nil, errors.New("mutate function cannot be nil")
	}

	key := player.Key(input.TournamentID, input.PlayerID)

	var output *UpsertPlayerOutput
	txf := func(tx *redis.Tx) error {
		current, err := currentNumber(ctx, tx, input.TournamentID)
		if err != nil {
			return err
		}

		var existing *models.Player
		data, err := tx.Get(ctx, key).Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("failed to get player: %w", err)
		default:
			existing, err = player.Decode(data)
			if err != nil {
				return err
			}
		}

		created := existing == nil
		p, err := input.Mutate(existing, current)
		if err != nil {
			return err
		}
		if p == nil || p.ID != input.PlayerID || p.TournamentID != input.TournamentID {
			return errors.New("mutate must return the requested player")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return player.Write(ctx, pipe, p)
		})
		if err != nil {
			return err
		}

		output = &UpsertPlayerOutput{
			Player:  p,
			Created: created,
		}
		return nil
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, CurrentKey(input.TournamentID), key)
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrPlayerConflict
}

// GetRound retrieves a round from Redis
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	roundJSON, err := r.client.Get(ctx, Key(input.TournamentID, input.Number)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var rd models.Round
	if err := json.Unmarshal([]byte(roundJSON), &rd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &rd, nil
}

// GetCurrentRound returns the latest committed round number of a tournament
func (r *redisRepository) GetCurrentRound(ctx context.Context, input *GetCurrentRoundInput) (*GetCurrentRoundOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	number, err := currentNumber(ctx, r.client, input.TournamentID)
	if err != nil {
		return nil, err
	}

	return &GetCurrentRoundOutput{
		Number: number,
	}, nil
}

func currentNumber(ctx context.Context, c getter, tournamentID string) (int, error) {
	value, err := c.Get(ctx, CurrentKey(tournamentID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get current round: %w", err)
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("corrupt current round %q: %w", value, err)
	}

	return number, nil
}
