package lobby

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/repositories/player"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr         *miniredis.Miniredis
	client     *redis.Client
	repo       Repository
	playerRepo player.Repository
	testNow    time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		MaxRetries:  100,
	})
	s.Require().NoError(err)
	s.repo = repo

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.playerRepo = playerRepo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newLobby(id string, playerIDs ...string) *models.Lobby {
	l := &models.Lobby{
		ID:           id,
		TournamentID: "tour-1",
		Round:        1,
		Number:       1,
		Status:       models.LobbyStatusPending,
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
	for _, pid := range playerIDs {
		l.Participations = append(l.Participations, &models.Participation{
			PlayerID: pid,
			Nickname: "nick-" + pid,
			Rating:   1000,
		})
	}
	return l
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetLobby() {
	l := s.newLobby("lobby-1", "a", "b")

	err := s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: l})
	s.Require().NoError(err)

	got, err := s.repo.GetLobby(context.Background(), &GetLobbyInput{LobbyID: "lobby-1"})
	s.Require().NoError(err)
	s.Equal("tour-1", got.TournamentID)
	s.Equal(models.LobbyStatusPending, got.Status)
	s.Equal([]string{"a", "b"}, got.PlayerIDs())
}

func (s *RedisRepositoryTestSuite) TestGetMissingLobby() {
	_, err := s.repo.GetLobby(context.Background(), &GetLobbyInput{LobbyID: "nope"})
	s.Require().ErrorIs(err, ErrLobbyNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetLobbiesKeepsOrder() {
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("l1")}))
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("l2")}))

	out, err := s.repo.GetLobbies(context.Background(), &GetLobbiesInput{LobbyIDs: []string{"l2", "l1"}})
	s.Require().NoError(err)
	s.Require().Len(out.Lobbies, 2)
	s.Equal("l2", out.Lobbies[0].ID)
	s.Equal("l1", out.Lobbies[1].ID)

	_, err = s.repo.GetLobbies(context.Background(), &GetLobbiesInput{LobbyIDs: []string{"l1", "l3"}})
	s.Require().ErrorIs(err, ErrLobbyNotFound)

	empty, err := s.repo.GetLobbies(context.Background(), &GetLobbiesInput{})
	s.Require().NoError(err)
	s.Empty(empty.Lobbies)
}

func (s *RedisRepositoryTestSuite) TestUpdateLobbyBumpsVersion() {
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("lobby-1", "a")}))
	later := s.testNow.Add(time.Minute)

	out, err := s.repo.UpdateLobby(context.Background(), &UpdateLobbyInput{
		LobbyID: "lobby-1",
		Now:     later,
		Mutate: func(l *models.Lobby, players map[string]*models.Player) error {
			s.Nil(players)
			l.Status = models.LobbyStatusDrafting
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Lobby.Version)

	got, err := s.repo.GetLobby(context.Background(), &GetLobbyInput{LobbyID: "lobby-1"})
	s.Require().NoError(err)
	s.Equal(models.LobbyStatusDrafting, got.Status)
	s.Equal(1, got.Version)
	s.True(later.Equal(got.UpdatedAt))
}

func (s *RedisRepositoryTestSuite) TestUpdateLobbyMutateErrorWritesNothing() {
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("lobby-1", "a")}))
	boom := errors.New("rejected")

	_, err := s.repo.UpdateLobby(context.Background(), &UpdateLobbyInput{
		LobbyID: "lobby-1",
		Now:     s.testNow,
		Mutate: func(l *models.Lobby, _ map[string]*models.Player) error {
			l.Status = models.LobbyStatusFinished
			return boom
		},
	})
	s.Require().ErrorIs(err, boom)

	got, err := s.repo.GetLobby(context.Background(), &GetLobbyInput{LobbyID: "lobby-1"})
	s.Require().NoError(err)
	s.Equal(models.LobbyStatusPending, got.Status)
	s.Equal(0, got.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdateLobbyMissing() {
	_, err := s.repo.UpdateLobby(context.Background(), &UpdateLobbyInput{
		LobbyID: "ghost",
		Mutate:  func(*models.Lobby, map[string]*models.Player) error { return nil },
	})
	s.Require().ErrorIs(err, ErrLobbyNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateLobbyWithPlayers() {
	for _, id := range []string{"a", "b"} {
		s.Require().NoError(s.playerRepo.SavePlayer(context.Background(), &player.SavePlayerInput{
			Player: &models.Player{ID: id, TournamentID: "tour-1", Nickname: id, Lives: 2},
		}))
	}
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("lobby-1", "a", "b")}))

	out, err := s.repo.UpdateLobby(context.Background(), &UpdateLobbyInput{
		LobbyID:     "lobby-1",
		WithPlayers: true,
		Now:         s.testNow,
		Mutate: func(l *models.Lobby, players map[string]*models.Player) error {
			s.Len(players, 2)
			players["b"].LoseLife()
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Players["b"].Lives)

	b, err := s.playerRepo.GetPlayer(context.Background(), &player.GetPlayerInput{TournamentID: "tour-1", PlayerID: "b"})
	s.Require().NoError(err)
	s.Equal(1, b.Lives)

	a, err := s.playerRepo.GetPlayer(context.Background(), &player.GetPlayerInput{TournamentID: "tour-1", PlayerID: "a"})
	s.Require().NoError(err)
	s.Equal(2, a.Lives)
}

func (s *RedisRepositoryTestSuite) TestUpdateLobbyWithMissingPlayer() {
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("lobby-1", "a")}))

	_, err := s.repo.UpdateLobby(context.Background(), &UpdateLobbyInput{
		LobbyID:     "lobby-1",
		WithPlayers: true,
		Mutate:      func(*models.Lobby, map[string]*models.Player) error { return nil },
	})
	s.Require().ErrorIs(err, player.ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestConcurrentUpdatesSerialize() {
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("lobby-1", "a")}))

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.UpdateLobby(context.Background(), &UpdateLobbyInput{
				LobbyID: "lobby-1",
				Now:     s.testNow,
				Mutate:  func(*models.Lobby, map[string]*models.Player) error { return nil },
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}

	got, err := s.repo.GetLobby(context.Background(), &GetLobbyInput{LobbyID: "lobby-1"})
	s.Require().NoError(err)
	s.Equal(writers, got.Version)
}

func (s *RedisRepositoryTestSuite) TestSubscribeReceivesCommittedSnapshots() {
	s.Require().NoError(s.repo.SaveLobby(context.Background(), &SaveLobbyInput{Lobby: s.newLobby("lobby-1", "a")}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := s.repo.Subscribe(ctx, &SubscribeInput{LobbyID: "lobby-1"})
	s.Require().NoError(err)

	_, err = s.repo.UpdateLobby(context.Background(), &UpdateLobbyInput{
		LobbyID: "lobby-1",
		Now:     s.testNow,
		Mutate: func(l *models.Lobby, _ map[string]*models.Player) error {
			l.Status = models.LobbyStatusDrafting
			return nil
		},
	})
	s.Require().NoError(err)

	select {
	case l := <-sub.Updates:
		s.Require().NotNil(l)
		s.Equal(models.LobbyStatusDrafting, l.Status)
		s.Equal(1, l.Version)
	case <-time.After(2 * time.Second):
		s.Fail("no lobby update received")
	}

	cancel()
	s.Eventually(func() bool {
		_, open := <-sub.Updates
		return !open
	}, 2*time.Second, 10*time.Millisecond)
}
