package models

import (
	"time"
)

const (
	// TeamSize is the number of players on a full team, captain included
	TeamSize = 5

	// LobbySize is the number of players in a full lobby
	LobbySize = 2 * TeamSize
)

// LobbyStatus represents the draft state of a lobby
type LobbyStatus string

const (
	// LobbyStatusPending indicates a generated lobby whose draft has not started
	LobbyStatusPending LobbyStatus = "pending"

	// LobbyStatusDrafting indicates captains are picking players
	LobbyStatusDrafting LobbyStatus = "drafting"

	// LobbyStatusPlaying indicates both teams are full and the match is being played
	LobbyStatusPlaying LobbyStatus = "playing"

	// LobbyStatusFinished indicates the result was recorded; the lobby is immutable
	LobbyStatusFinished LobbyStatus = "finished"
)

// IsTerminal reports whether no further transitions are possible
func (s LobbyStatus) IsTerminal() bool {
	return s == LobbyStatusFinished
}

// Lobby is one round's grouping of players split into two drafted teams
type Lobby struct {
	// ID is the unique identifier for the lobby
	ID string `json:"id"`

	// TournamentID is the tournament the lobby belongs to
	TournamentID string `json:"tournament_id"`

	// Round is the round number the lobby was generated for
	Round int `json:"round"`

	// Number is the 1-based position of the lobby within its round
	Number int `json:"number"`

	// Status is the current draft state
	Status LobbyStatus `json:"status"`

	// Participations holds one entry per lobby member, in generation order
	Participations []*Participation `json:"participations"`

	// Captain1ID is the captain of team 1
	Captain1ID string `json:"captain1_id,omitempty"`

	// Captain2ID is the captain of team 2
	Captain2ID string `json:"captain2_id,omitempty"`

	// LotteryWinnerID is the captain who decides who picks first
	LotteryWinnerID string `json:"lottery_winner_id,omitempty"`

	// FirstPickerID is the captain who makes the first non-captain pick
	FirstPickerID string `json:"first_picker_id,omitempty"`

	// WinningTeam is set once the lobby is finished
	WinningTeam Team `json:"winning_team,omitempty"`

	// Version increments on every committed change
	Version int `json:"version"`

	// CreatedAt is when the lobby was generated
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the lobby was last changed
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerIDs returns the IDs of every lobby member in generation order
func (l *Lobby) PlayerIDs() []string {
	ids := make([]string, 0, len(l.Participations))
	for _, p := range l.Participations {
		ids = append(ids, p.PlayerID)
	}
	return ids
}

// Participation returns the membership of a player, or nil
func (l *Lobby) Participation(playerID string) *Participation {
	for _, p := range l.Participations {
		if p.PlayerID == playerID {
			return p
		}
	}
	return nil
}

// AtSlot returns the participation occupying a team slot, or nil
func (l *Lobby) AtSlot(team Team, slot int) *Participation {
	for _, p := range l.Participations {
		if p.Team == team && p.Slot == slot {
			return p
		}
	}
	return nil
}

// TeamMembers returns the participations assigned to a team ordered by slot
func (l *Lobby) TeamMembers(team Team) []*Participation {
	members := make([]*Participation, 0, TeamSize)
	for slot := 0; slot < TeamSize; slot++ {
		if p := l.AtSlot(team, slot); p != nil {
			members = append(members, p)
		}
	}
	return members
}

// IsTeamFull reports whether exactly TeamSize participations reference the team
func (l *Lobby) IsTeamFull(team Team) bool {
	count := 0
	for _, p := range l.Participations {
		if p.Team == team {
			count++
		}
	}
	return count == TeamSize
}

// Unassigned returns the members not yet drafted onto a team
func (l *Lobby) Unassigned() []*Participation {
	var free []*Participation
	for _, p := range l.Participations {
		if p.Team == TeamNone {
			free = append(free, p)
		}
	}
	return free
}

// PicksMade counts the drafted players; captains hold slot 0
func (l *Lobby) PicksMade() int {
	count := 0
	for _, p := range l.Participations {
		if p.Team != TeamNone && p.Slot > 0 {
			count++
		}
	}
	return count
}

// CaptainTeam returns the team captained by the given player
func (l *Lobby) CaptainTeam(captainID string) (Team, bool) {
	switch captainID {
	case "":
		return TeamNone, false
	case l.Captain1ID:
		return Team1, true
	case l.Captain2ID:
		return Team2, true
	}
	return TeamNone, false
}

// Clone returns a deep copy so callers can validate against a scratch lobby
func (l *Lobby) Clone() *Lobby {
	c := *l
	c.Participations = make([]*Participation, len(l.Participations))
	for i, p := range l.Participations {
		pc := *p
		if p.PickedAt != nil {
			t := *p.PickedAt
			pc.PickedAt = &t
		}
		c.Participations[i] = &pc
	}
	return &c
}
