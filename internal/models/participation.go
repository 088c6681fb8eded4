package models

import (
	"fmt"
	"time"
)

// Team identifies a side within a lobby
type Team int

const (
	// TeamNone marks a member that has not been drafted yet
	TeamNone Team = 0

	// Team1 is captained by the highest seeded player
	Team1 Team = 1

	// Team2 is captained by the second seeded player
	Team2 Team = 2
)

// Valid reports whether the team is one of the two playing sides
func (t Team) Valid() bool {
	return t == Team1 || t == Team2
}

// Opponent returns the other playing side
func (t Team) Opponent() Team {
	switch t {
	case Team1:
		return Team2
	case Team2:
		return Team1
	}
	return TeamNone
}

func (t Team) String() string {
	switch t {
	case Team1:
		return "team1"
	case Team2:
		return "team2"
	}
	return "none"
}

// ParseTeam converts "1", "2", "team1" or "team2" into a Team
func ParseTeam(s string) (Team, error) {
	switch s {
	case "1", "team1":
		return Team1, nil
	case "2", "team2":
		return Team2, nil
	}
	return TeamNone, fmt.Errorf("unknown team %q", s)
}

// MatchResult is the outcome of a lobby for one participation
type MatchResult string

const (
	// MatchResultNone indicates the lobby has not finished
	MatchResultNone MatchResult = ""

	// MatchResultWin indicates the participation was on the winning team
	MatchResultWin MatchResult = "win"

	// MatchResultLoss indicates the participation was on the losing team
	MatchResultLoss MatchResult = "loss"
)

// Participation is a player's membership in a specific lobby
type Participation struct {
	// PlayerID is the member's player ID
	PlayerID string `json:"player_id"`

	// Nickname is copied from the player when the lobby is generated
	Nickname string `json:"nickname"`

	// Rating is copied from the player when the lobby is generated
	Rating int `json:"rating"`

	// Team is the side the member was drafted to
	Team Team `json:"team"`

	// Slot is the position within the team; 0 is the captain.
	// Only meaningful when Team is not TeamNone.
	Slot int `json:"slot"`

	// IsCaptain marks the slot 0 member
	IsCaptain bool `json:"is_captain"`

	// PickNumber is the 1-based order of a non-captain pick, 0 otherwise
	PickNumber int `json:"pick_number,omitempty"`

	// PickedAt is when the member was placed on a team
	PickedAt *time.Time `json:"picked_at,omitempty"`

	// Result is set when the lobby finishes
	Result MatchResult `json:"result,omitempty"`
}

// Assigned reports whether the member has been placed on a team
func (p *Participation) Assigned() bool {
	return p.Team != TeamNone
}

// Unassign clears every draft field of the membership
func (p *Participation) Unassign() {
	p.Team = TeamNone
	p.Slot = 0
	p.IsCaptain = false
	p.PickNumber = 0
	p.PickedAt = nil
}
