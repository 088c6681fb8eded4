package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"github.com/go-chi/chi/v5"
)

// lobbyView adds the team on the clock to a lobby snapshot
type lobbyView struct {
	*models.Lobby
	NextPicker string `json:"next_picker,omitempty"`
}

func newLobbyView(l *models.Lobby) *lobbyView {
	v := &lobbyView{Lobby: l}
	if team, ok := draft.CurrentPicker(l); ok {
		v.NextPicker = team.String()
	}
	return v
}

func newLobbyViews(lobbies []*models.Lobby) []*lobbyView {
	views := make([]*lobbyView, 0, len(lobbies))
	for _, l := range lobbies {
		views = append(views, newLobbyView(l))
	}
	return views
}

type registerPlayerRequest struct {
	PlayerID string   `json:"player_id"`
	Nickname string   `json:"nickname"`
	Rating   int      `json:"rating"`
	Roles    []string `json:"roles"`
}

type registerPlayerResponse struct {
	Player  *models.Player `json:"player"`
	Created bool           `json:"created"`
}

type roundResponse struct {
	Round   *models.Round `json:"round"`
	Lobbies []*lobbyView  `json:"lobbies"`
}

type firstPickerRequest struct {
	CaptainID string `json:"captain_id"`
	ActorID   string `json:"actor_id,omitempty"`
}

type pickRequest struct {
	Team string `json:"team"`
	Slot int    `json:"slot"`
	// Empty undoes the pick at Team/Slot
	PlayerID string `json:"player_id"`
	ActorID  string `json:"actor_id,omitempty"`
}

type finishRequest struct {
	WinningTeam string `json:"winning_team"`
}

type finishResponse struct {
	Lobby      *lobbyView       `json:"lobby"`
	Losers     []*models.Player `json:"losers"`
	Eliminated []*models.Player `json:"eliminated"`
}

func (s *Server) getStandings(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.GetStandings(r.Context(), &ladder.GetStandingsInput{
		TournamentID: chi.URLParam(r, "tournamentID"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, out.Standings)
}

func (s *Server) getRound(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "number")

	// "current" resolves to the latest round
	number := 0
	if param != "current" {
		n, err := strconv.Atoi(param)
		if err != nil || n < 1 {
			s.badRequest(w, fmt.Errorf("round number must be a positive integer or \"current\", got %q", param))
			return
		}
		number = n
	}

	out, err := s.service.GetRound(r.Context(), &ladder.GetRoundInput{
		TournamentID: chi.URLParam(r, "tournamentID"),
		Number:       number,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, roundResponse{Round: out.Round, Lobbies: newLobbyViews(out.Lobbies)})
}

func (s *Server) registerPlayer(w http.ResponseWriter, r *http.Request) {
	var req registerPlayerRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, err)
		return
	}

	out, err := s.service.RegisterPlayer(r.Context(), &ladder.RegisterPlayerInput{
		TournamentID: chi.URLParam(r, "tournamentID"),
		PlayerID:     req.PlayerID,
		Nickname:     req.Nickname,
		Rating:       req.Rating,
		Roles:        req.Roles,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, registerPlayerResponse{Player: out.Player, Created: out.Created})
}

func (s *Server) generateRound(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.GenerateRound(r.Context(), &ladder.GenerateRoundInput{
		TournamentID: chi.URLParam(r, "tournamentID"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, roundResponse{Round: out.Round, Lobbies: newLobbyViews(out.Lobbies)})
}

func (s *Server) getLobby(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.GetLobby(r.Context(), &ladder.GetLobbyInput{
		LobbyID: chi.URLParam(r, "lobbyID"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newLobbyView(out.Lobby))
}

func (s *Server) startDraft(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.StartDraft(r.Context(), &ladder.StartDraftInput{
		LobbyID: chi.URLParam(r, "lobbyID"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newLobbyView(out.Lobby))
}

func (s *Server) setFirstPicker(w http.ResponseWriter, r *http.Request) {
	var req firstPickerRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, err)
		return
	}

	out, err := s.service.SetFirstPicker(r.Context(), &ladder.SetFirstPickerInput{
		LobbyID:   chi.URLParam(r, "lobbyID"),
		CaptainID: req.CaptainID,
		ActorID:   req.ActorID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newLobbyView(out.Lobby))
}

func (s *Server) pick(w http.ResponseWriter, r *http.Request) {
	var req pickRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, err)
		return
	}

	team, err := models.ParseTeam(req.Team)
	if err != nil {
		s.badRequest(w, err)
		return
	}

	out, err := s.service.Pick(r.Context(), &ladder.PickInput{
		LobbyID:  chi.URLParam(r, "lobbyID"),
		Team:     team,
		Slot:     req.Slot,
		PlayerID: req.PlayerID,
		ActorID:  req.ActorID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newLobbyView(out.Lobby))
}

func (s *Server) finishLobby(w http.ResponseWriter, r *http.Request) {
	var req finishRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, err)
		return
	}

	team, err := models.ParseTeam(req.WinningTeam)
	if err != nil {
		s.badRequest(w, err)
		return
	}

	out, err := s.service.FinishLobby(r.Context(), &ladder.FinishLobbyInput{
		LobbyID:     chi.URLParam(r, "lobbyID"),
		WinningTeam: team,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, finishResponse{
		Lobby:      newLobbyView(out.Lobby),
		Losers:     out.Losers,
		Eliminated: out.Eliminated,
	})
}
