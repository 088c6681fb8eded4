package models

import (
	"time"
)

// Round records the outcome of partitioning a tournament's pool once
type Round struct {
	// TournamentID is the tournament the round belongs to
	TournamentID string `json:"tournament_id"`

	// Number is the 1-based round number
	Number int `json:"number"`

	// LobbyIDs lists the generated lobbies in order
	LobbyIDs []string `json:"lobby_ids"`

	// ChillZone lists the players resting this round
	ChillZone []*ChillZoneEntry `json:"chill_zone"`

	// CreatedAt is when the round was generated
	CreatedAt time.Time `json:"created_at"`
}

// ChillZoneEntry is a player excluded from a round's lobbies
type ChillZoneEntry struct {
	TournamentID string `json:"tournament_id"`
	Round        int    `json:"round"`
	PlayerID     string `json:"player_id"`
	Nickname     string `json:"nickname"`
}

// InChillZone reports whether the player rests this round
func (r *Round) InChillZone(playerID string) bool {
	for _, e := range r.ChillZone {
		if e.PlayerID == playerID {
			return true
		}
	}
	return false
}
