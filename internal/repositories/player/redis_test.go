package player

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newPlayer(tournamentID, id string, rating int) *models.Player {
	return &models.Player{
		ID:           id,
		TournamentID: tournamentID,
		Nickname:     "nick-" + id,
		Rating:       rating,
		Roles:        []string{"carry"},
		Lives:        2,
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := s.newPlayer("tour-1", "player-1", 3100)
	player.ChillZoneCount = 2

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: player,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		TournamentID: "tour-1",
		PlayerID:     "player-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal(player.Nickname, retrieved.Nickname)
	s.Equal(3100, retrieved.Rating)
	s.Equal([]string{"carry"}, retrieved.Roles)
	s.Equal(2, retrieved.Lives)
	s.Equal(2, retrieved.ChillZoneCount)
	s.True(s.testNow.Equal(retrieved.CreatedAt))
	s.Equal(1, retrieved.Version)

	s.True(s.mr.Exists(Key("tour-1", "player-1")))

	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: retrieved}))
	again, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{TournamentID: "tour-1", PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(2, again.Version)
}

func (s *RedisRepositoryTestSuite) TestGetMissingPlayer() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		TournamentID: "tour-1",
		PlayerID:     "ghost",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestPlayersAreScopedByTournament() {
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: s.newPlayer("tour-1", "a", 1000)}))
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: s.newPlayer("tour-1", "b", 2000)}))
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: s.newPlayer("tour-2", "a", 3000)}))

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{TournamentID: "tour-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 2)
	s.Equal("a", out.Players[0].ID)
	s.Equal(1000, out.Players[0].Rating)
	s.Equal("b", out.Players[1].ID)

	other, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{TournamentID: "tour-2"})
	s.Require().NoError(err)
	s.Require().Len(other.Players, 1)
	s.Equal(3000, other.Players[0].Rating)

	empty, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{TournamentID: "tour-3"})
	s.Require().NoError(err)
	s.Empty(empty.Players)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerOverwrites() {
	player := s.newPlayer("tour-1", "a", 1000)
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: player}))

	player.Lives = 1
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: player}))

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{TournamentID: "tour-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 1)
	s.Equal(1, out.Players[0].Lives)
}

func (s *RedisRepositoryTestSuite) TestGetPlayers() {
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: s.newPlayer("tour-1", "a", 1000)}))
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: s.newPlayer("tour-1", "b", 2000)}))

	out, err := s.repo.GetPlayers(context.Background(), &GetPlayersInput{
		TournamentID: "tour-1",
		PlayerIDs:    []string{"a", "b"},
	})
	s.Require().NoError(err)
	s.Len(out.Players, 2)
	s.Equal(2000, out.Players["b"].Rating)

	_, err = s.repo.GetPlayers(context.Background(), &GetPlayersInput{
		TournamentID: "tour-1",
		PlayerIDs:    []string{"a", "missing"},
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerValidation() {
	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{})
	s.Error(err)

	err = s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: &models.Player{ID: "a"},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}
