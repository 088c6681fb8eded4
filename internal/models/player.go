package models

import (
	"time"
)

// Player represents a registered participant of a mix tournament
type Player struct {
	// ID is the stable identifier of the player (Discord user ID)
	ID string `json:"id"`

	// TournamentID is the tournament the player registered for
	TournamentID string `json:"tournament_id"`

	// Nickname is the display name of the player
	Nickname string `json:"nickname"`

	// Rating is the skill rating used for seeding captains
	Rating int `json:"rating"`

	// Roles are the declared positions of the player
	Roles []string `json:"roles,omitempty"`

	// Lives is the number of losses the player can still afford
	Lives int `json:"lives"`

	// ChillZoneCount is the number of rounds the player spent resting
	ChillZoneCount int `json:"chill_zone_count"`

	// Version increments on every stored write
	Version int `json:"version"`

	// CreatedAt is when the player registered
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the player was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEliminated reports whether the player has run out of lives
func (p *Player) IsEliminated() bool {
	return p.Lives <= 0
}

// LoseLife removes one life, never going below zero
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// EligiblePlayers returns the players that may take part in the next round
func EligiblePlayers(players []*Player) []*Player {
	eligible := make([]*Player, 0, len(players))
	for _, p := range players {
		if p == nil || p.IsEliminated() {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}
