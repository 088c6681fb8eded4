package lobby

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/repositories/player"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	lobbyKeyPrefix     = "lobby:"
	lobbyEventsPrefix  = "lobby_events:"
	defaultMaxRetries  = 10
	subscriptionBuffer = 16
)

var (
	// ErrLobbyNotFound is returned when a lobby is not found
	ErrLobbyNotFound = errors.New("lobby not found")

	// ErrConcurrentUpdate is returned when a lobby kept changing underneath an update
	ErrConcurrentUpdate = errors.New("lobby changed concurrently, retries exhausted")
)

// Key returns the Redis key holding a lobby
func Key(lobbyID string) string {
	return lobbyKeyPrefix + lobbyID
}

// EventsChannel returns the Pub/Sub channel lobby snapshots are published on
func EventsChannel(lobbyID string) string {
	return lobbyEventsPrefix + lobbyID
}

// Write queues a lobby write on a pipeline or transaction
func Write(ctx context.Context, pipe redis.Pipeliner, l *models.Lobby) error {
	if l.ID == "" {
		return errors.New("lobby ID cannot be empty")
	}

	lobbyJSON, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal lobby %s: %w", l.ID, err)
	}

	pipe.Set(ctx, Key(l.ID), lobbyJSON, 0)
	return nil
}

func decode(data string) (*models.Lobby, error) {
	var l models.Lobby
	if err := json.Unmarshal([]byte(data), &l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lobby: %w", err)
	}
	return &l, nil
}

// Config holds configuration for the Redis lobby repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional number of optimistic retries for UpdateLobby
	MaxRetries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxRetries int
}

// NewRedis creates a new Redis-backed lobby repository
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

// SaveLobby persists a lobby to Redis
func (r *redisRepository) SaveLobby(ctx context.Context, input *SaveLobbyInput) error {
	if input == nil || input.Lobby == nil {
		return errors.New("input and lobby cannot be nil")
	}

	pipe := r.client.Pipeline()
	if err := Write(ctx, pipe, input.Lobby); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save lobby: %w", err)
	}

	return nil
}

// GetLobby retrieves a lobby by ID from Redis
func (r *redisRepository) GetLobby(ctx context.Context, input *GetLobbyInput) (*models.Lobby, error) {
	if input == nil || input.LobbyID == "" {
		return nil, errors.New("input and lobby ID cannot be empty")
	}

	lobbyJSON, err := r.client.Get(ctx, Key(input.LobbyID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrLobbyNotFound
		}
		return nil, fmt.Errorf("failed to get lobby: %w", err)
	}

	return decode(lobbyJSON)
}

// GetLobbies retrieves lobbies with a single MGET
func (r *redisRepository) GetLobbies(ctx context.Context, input *GetLobbiesInput) (*GetLobbiesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.LobbyIDs) == 0 {
		return &GetLobbiesOutput{
			Lobbies: []*models.Lobby{},
		}, nil
	}

	keys := make([]string, len(input.LobbyIDs))
	for i, id := range input.LobbyIDs {
		keys[i] = Key(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get lobbies: %w", err)
	}

	lobbies := make([]*models.Lobby, 0, len(values))
	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLobbyNotFound, input.LobbyIDs[i])
		}
		l, err := decode(data)
		if err != nil {
			return nil, err
		}
		lobbies = append(lobbies, l)
	}

	return &GetLobbiesOutput{
		Lobbies: lobbies,
	}, nil
}

// UpdateLobby runs Mutate inside a WATCH/MULTI transaction on the lobby key
// and, with WithPlayers, on every member's player key. The committed
// snapshot is published to the lobby's events channel in the same EXEC.
func (r *redisRepository) UpdateLobby(ctx context.Context, input *UpdateLobbyInput) (*UpdateLobbyOutput, error) {
	if input == nil || input.LobbyID == "" {
		return nil, errors.New("input and lobby ID cannot be empty")
	}

	if input.Mutate == nil {
		return nil, errors.New("mutate function cannot be nil")
	}

	var output *UpdateLobbyOutput
	txf := func(tx *redis.Tx) error {
		lobbyJSON, err := tx.Get(ctx, Key(input.LobbyID)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrLobbyNotFound
			}
			return fmt.Errorf("failed to get lobby: %w", err)
		}

		lobby, err := decode(lobbyJSON)
		if err != nil {
			return err
		}

		var players, original map[string]*models.Player
		if input.WithPlayers {
			players, err = r.watchPlayers(ctx, tx, lobby)
			if err != nil {
				return err
			}
			original = clonePlayers(players)
		}

		if err := input.Mutate(lobby, players); err != nil {
			return err
		}

		lobby.Version++
		lobby.UpdatedAt = input.Now

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := Write(ctx, pipe, lobby); err != nil {
				return err
			}
			for id, p := range players {
				if reflect.DeepEqual(p, original[id]) {
					continue
				}
				p.UpdatedAt = input.Now
				if err := player.Write(ctx, pipe, p); err != nil {
					return err
				}
			}

			snapshot, err := json.Marshal(lobby)
			if err != nil {
				return fmt.Errorf("failed to marshal lobby snapshot: %w", err)
			}
			pipe.Publish(ctx, EventsChannel(lobby.ID), snapshot)
			return nil
		})
		if err != nil {
			return err
		}

		output = &UpdateLobbyOutput{
			Lobby:   lobby,
			Players: players,
		}
		return nil
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, Key(input.LobbyID))
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrConcurrentUpdate
}

func (r *redisRepository) watchPlayers(ctx context.Context, tx *redis.Tx, l *models.Lobby) (map[string]*models.Player, error) {
	ids := l.PlayerIDs()
	if len(ids) == 0 {
		return map[string]*models.Player{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = player.Key(l.TournamentID, id)
	}

	if err := tx.Watch(ctx, keys...).Err(); err != nil {
		return nil, fmt.Errorf("failed to watch players: %w", err)
	}

	values, err := tx.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make(map[string]*models.Player, len(values))
	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", player.ErrPlayerNotFound, ids[i])
		}
		p, err := player.Decode(data)
		if err != nil {
			return nil, err
		}
		players[p.ID] = p
	}

	return players, nil
}

// Subscribe listens on the lobby's events channel until ctx is done
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
	if input == nil || input.LobbyID == "" {
		return nil, errors.New("input and lobby ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, EventsChannel(input.LobbyID))

	// Wait for the subscription to be confirmed so no update published after
	// Subscribe returns is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to lobby %s: %w", input.LobbyID, err)
	}

	updates := make(chan *models.Lobby, subscriptionBuffer)
	go func() {
		defer close(updates)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				l, err := decode(msg.Payload)
				if err != nil {
					continue
				}
				select {
				case updates <- l:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return &SubscribeOutput{
		Updates: updates,
	}, nil
}

func clonePlayers(players map[string]*models.Player) map[string]*models.Player {
	out := make(map[string]*models.Player, len(players))
	for id, p := range players {
		c := *p
		c.Roles = append([]string(nil), p.Roles...)
		out[id] = &c
	}
	return out
}
