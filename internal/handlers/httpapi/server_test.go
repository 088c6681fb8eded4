package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	ladderMocks "github.com/KirkDiggler/mixladder/internal/services/ladder/mocks"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *ladderMocks.MockService
	server      *httptest.Server

	testTournamentID string
	testLobbyID      string
}

func (s *ServerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = ladderMocks.NewMockService(s.mockCtrl)

	api, err := New(&Config{
		Service:      s.mockService,
		PingInterval: time.Hour,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(api.Routes())
	s.testTournamentID = "test-tournament"
	s.testLobbyID = "test-lobby"
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func (s *ServerTestSuite) do(method, path, body string) *http.Response {
	req, err := http.NewRequest(method, s.server.URL+path, strings.NewReader(body))
	s.Require().NoError(err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	s.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *ServerTestSuite) decode(resp *http.Response, dst any) {
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(dst))
}

func (s *ServerTestSuite) draftingLobby() *models.Lobby {
	l := &models.Lobby{
		ID:              s.testLobbyID,
		TournamentID:    s.testTournamentID,
		Round:           1,
		Number:          1,
		Status:          models.LobbyStatusDrafting,
		Captain1ID:      "p0",
		Captain2ID:      "p1",
		LotteryWinnerID: "p1",
		FirstPickerID:   "p1",
		Version:         3,
	}
	for i := 0; i < models.LobbySize; i++ {
		p := &models.Participation{PlayerID: fmt.Sprintf("p%d", i)}
		switch i {
		case 0:
			p.Team, p.Slot, p.IsCaptain = models.Team1, 0, true
		case 1:
			p.Team, p.Slot, p.IsCaptain = models.Team2, 0, true
		}
		l.Participations = append(l.Participations, p)
	}
	return l
}

func (s *ServerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *ServerTestSuite) TestHealthz() {
	resp := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *ServerTestSuite) TestGetStandings() {
	standings := models.NewStandings(s.testTournamentID, []*models.Player{
		{ID: "a", TournamentID: s.testTournamentID, Nickname: "a", Lives: 2},
	})
	s.mockService.EXPECT().
		GetStandings(gomock.Any(), &ladder.GetStandingsInput{TournamentID: s.testTournamentID}).
		Return(&ladder.GetStandingsOutput{Standings: standings}, nil)

	resp := s.do(http.MethodGet, "/tournaments/"+s.testTournamentID+"/standings", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/json", resp.Header.Get("Content-Type"))

	var got models.Standings
	s.decode(resp, &got)
	s.Equal(s.testTournamentID, got.TournamentID)
	s.Len(got.Entries, 1)
}

func (s *ServerTestSuite) TestGetRound_Current() {
	s.mockService.EXPECT().
		GetRound(gomock.Any(), &ladder.GetRoundInput{TournamentID: s.testTournamentID, Number: 0}).
		Return(&ladder.GetRoundOutput{
			Round:   &models.Round{TournamentID: s.testTournamentID, Number: 2},
			Lobbies: []*models.Lobby{s.draftingLobby()},
		}, nil)

	resp := s.do(http.MethodGet, "/tournaments/"+s.testTournamentID+"/rounds/current", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var got struct {
		Round   models.Round `json:"round"`
		Lobbies []struct {
			ID         string `json:"id"`
			NextPicker string `json:"next_picker"`
		} `json:"lobbies"`
	}
	s.decode(resp, &got)
	s.Equal(2, got.Round.Number)
	s.Require().Len(got.Lobbies, 1)
	s.Equal(s.testLobbyID, got.Lobbies[0].ID)
	s.Equal("team2", got.Lobbies[0].NextPicker)
}

func (s *ServerTestSuite) TestGetRound_BadNumber() {
	for _, n := range []string{"zero", "0", "-1"} {
		resp := s.do(http.MethodGet, "/tournaments/"+s.testTournamentID+"/rounds/"+n, "")
		s.Equal(http.StatusBadRequest, resp.StatusCode, n)
	}
}

func (s *ServerTestSuite) TestGetRound_NotFound() {
	s.mockService.EXPECT().
		GetRound(gomock.Any(), &ladder.GetRoundInput{TournamentID: s.testTournamentID, Number: 4}).
		Return(nil, ladder.ErrRoundNotFound)

	resp := s.do(http.MethodGet, "/tournaments/"+s.testTournamentID+"/rounds/4", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *ServerTestSuite) TestRegisterPlayer() {
	player := &models.Player{ID: "p1", TournamentID: s.testTournamentID, Nickname: "Miracle", Lives: 2}
	s.mockService.EXPECT().
		RegisterPlayer(gomock.Any(), &ladder.RegisterPlayerInput{
			TournamentID: s.testTournamentID,
			PlayerID:     "p1",
			Nickname:     "Miracle",
			Rating:       9000,
			Roles:        []string{"carry"},
		}).
		Return(&ladder.RegisterPlayerOutput{Player: player, Created: true}, nil)

	resp := s.do(http.MethodPost, "/tournaments/"+s.testTournamentID+"/players",
		`{"player_id":"p1","nickname":"Miracle","rating":9000,"roles":["carry"]}`)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var got registerPlayerResponse
	s.decode(resp, &got)
	s.True(got.Created)
	s.Equal("Miracle", got.Player.Nickname)
}

func (s *ServerTestSuite) TestRegisterPlayer_Closed() {
	s.mockService.EXPECT().
		RegisterPlayer(gomock.Any(), gomock.Any()).
		Return(nil, ladder.ErrRegistrationClosed)

	resp := s.do(http.MethodPost, "/tournaments/"+s.testTournamentID+"/players",
		`{"player_id":"late","nickname":"late"}`)
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *ServerTestSuite) TestRegisterPlayer_BadBody() {
	for _, body := range []string{"", "{", `{"unknown":1}`, `{"rating":"high"}`, `{}{}`} {
		resp := s.do(http.MethodPost, "/tournaments/"+s.testTournamentID+"/players", body)
		s.Equal(http.StatusBadRequest, resp.StatusCode, body)
	}
}

func (s *ServerTestSuite) TestGenerateRound_Degenerate() {
	s.mockService.EXPECT().
		GenerateRound(gomock.Any(), &ladder.GenerateRoundInput{TournamentID: s.testTournamentID}).
		Return(nil, draft.Errorf(draft.KindDegenerateInput, "only 7 eligible players"))

	resp := s.do(http.MethodPost, "/tournaments/"+s.testTournamentID+"/rounds", "")
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	var got errorBody
	s.decode(resp, &got)
	s.Equal(string(draft.KindDegenerateInput), got.Kind)
}

func (s *ServerTestSuite) TestGetLobby_NotFound() {
	s.mockService.EXPECT().
		GetLobby(gomock.Any(), &ladder.GetLobbyInput{LobbyID: s.testLobbyID}).
		Return(nil, ladder.ErrLobbyNotFound)

	resp := s.do(http.MethodGet, "/lobbies/"+s.testLobbyID+"/", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *ServerTestSuite) TestStartDraft_InvalidTransition() {
	s.mockService.EXPECT().
		StartDraft(gomock.Any(), &ladder.StartDraftInput{LobbyID: s.testLobbyID}).
		Return(nil, draft.Errorf(draft.KindInvalidTransition, "lobby is drafting"))

	resp := s.do(http.MethodPost, "/lobbies/"+s.testLobbyID+"/draft", "")
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *ServerTestSuite) TestSetFirstPicker_NotCaptain() {
	s.mockService.EXPECT().
		SetFirstPicker(gomock.Any(), &ladder.SetFirstPickerInput{
			LobbyID:   s.testLobbyID,
			CaptainID: "p0",
			ActorID:   "p0",
		}).
		Return(nil, ladder.ErrNotCaptain)

	resp := s.do(http.MethodPost, "/lobbies/"+s.testLobbyID+"/first-picker", `{"captain_id":"p0","actor_id":"p0"}`)
	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *ServerTestSuite) TestPick() {
	l := s.draftingLobby()
	l.Participations[2].Team, l.Participations[2].Slot = models.Team2, 1

	s.mockService.EXPECT().
		Pick(gomock.Any(), &ladder.PickInput{
			LobbyID:  s.testLobbyID,
			Team:     models.Team2,
			Slot:     1,
			PlayerID: "p2",
			ActorID:  "p1",
		}).
		Return(&ladder.PickOutput{Lobby: l, NextPicker: models.Team1}, nil)

	resp := s.do(http.MethodPost, "/lobbies/"+s.testLobbyID+"/picks",
		`{"team":"team2","slot":1,"player_id":"p2","actor_id":"p1"}`)
	s.Equal(http.StatusOK, resp.StatusCode)

	var got struct {
		Version    int    `json:"version"`
		NextPicker string `json:"next_picker"`
	}
	s.decode(resp, &got)
	s.Equal(3, got.Version)
	s.Equal("team1", got.NextPicker)
}

func (s *ServerTestSuite) TestPick_BadTeam() {
	resp := s.do(http.MethodPost, "/lobbies/"+s.testLobbyID+"/picks", `{"team":"radiant","slot":1,"player_id":"p2"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerTestSuite) TestPick_SlotConflict() {
	s.mockService.EXPECT().
		Pick(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("pick: %w", draft.Errorf(draft.KindSlotConflict, "not team1's turn")))

	resp := s.do(http.MethodPost, "/lobbies/"+s.testLobbyID+"/picks", `{"team":"1","slot":1,"player_id":"p2"}`)
	s.Equal(http.StatusConflict, resp.StatusCode)

	var got errorBody
	s.decode(resp, &got)
	s.Equal(string(draft.KindSlotConflict), got.Kind)
	s.Contains(got.Error, "not team1's turn")
}

func (s *ServerTestSuite) TestFinishLobby() {
	l := s.draftingLobby()
	l.Status = models.LobbyStatusFinished
	l.WinningTeam = models.Team1

	loser := &models.Player{ID: "p1", Lives: 0}
	s.mockService.EXPECT().
		FinishLobby(gomock.Any(), &ladder.FinishLobbyInput{LobbyID: s.testLobbyID, WinningTeam: models.Team1}).
		Return(&ladder.FinishLobbyOutput{
			Lobby:      l,
			Losers:     []*models.Player{loser},
			Eliminated: []*models.Player{loser},
		}, nil)

	resp := s.do(http.MethodPost, "/lobbies/"+s.testLobbyID+"/finish", `{"winning_team":"team1"}`)
	s.Equal(http.StatusOK, resp.StatusCode)

	var got struct {
		Lobby struct {
			Status     string `json:"status"`
			NextPicker string `json:"next_picker"`
		} `json:"lobby"`
		Losers     []*models.Player `json:"losers"`
		Eliminated []*models.Player `json:"eliminated"`
	}
	s.decode(resp, &got)
	s.Equal(string(models.LobbyStatusFinished), got.Lobby.Status)
	s.Empty(got.Lobby.NextPicker)
	s.Len(got.Losers, 1)
	s.Len(got.Eliminated, 1)
}

func (s *ServerTestSuite) TestFinishLobby_AlreadyFinished() {
	s.mockService.EXPECT().
		FinishLobby(gomock.Any(), gomock.Any()).
		Return(nil, draft.Errorf(draft.KindAlreadyFinished, "lobby already finished"))

	resp := s.do(http.MethodPost, "/lobbies/"+s.testLobbyID+"/finish", `{"winning_team":"2"}`)
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *ServerTestSuite) TestInternalErrorHidden() {
	s.mockService.EXPECT().
		GetLobby(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp 10.0.0.1:6379: connection refused"))

	resp := s.do(http.MethodGet, "/lobbies/"+s.testLobbyID+"/", "")
	s.Equal(http.StatusInternalServerError, resp.StatusCode)

	var got errorBody
	s.decode(resp, &got)
	s.NotContains(got.Error, "6379")
}

func (s *ServerTestSuite) TestWatchLobby() {
	initial := s.draftingLobby()
	updated := initial.Clone()
	updated.Participations[2].Team, updated.Participations[2].Slot = models.Team2, 1
	updated.Version = 4

	updates := make(chan *models.Lobby, 1)
	updates <- updated
	close(updates)

	s.mockService.EXPECT().
		WatchLobby(gomock.Any(), &ladder.WatchLobbyInput{LobbyID: s.testLobbyID}).
		Return(&ladder.WatchLobbyOutput{Lobby: initial, Updates: updates}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/lobbies/" + s.testLobbyID + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	s.Require().NoError(err)
	defer conn.CloseNow()

	read := func() snapshotMessage {
		_, data, err := conn.Read(ctx)
		s.Require().NoError(err)
		var msg snapshotMessage
		s.Require().NoError(json.Unmarshal(data, &msg))
		return msg
	}

	first := read()
	s.Equal("snapshot", first.Type)
	s.Equal(3, first.Lobby.Version)

	second := read()
	s.Equal("update", second.Type)
	s.Equal(4, second.Lobby.Version)

	_, _, err = conn.Read(ctx)
	s.Equal(websocket.StatusNormalClosure, websocket.CloseStatus(err))
}

func (s *ServerTestSuite) TestWatchLobby_NotFound() {
	s.mockService.EXPECT().
		WatchLobby(gomock.Any(), gomock.Any()).
		Return(nil, ladder.ErrLobbyNotFound)

	resp := s.do(http.MethodGet, "/lobbies/"+s.testLobbyID+"/ws", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
