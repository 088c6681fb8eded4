package models

import (
	"sort"
)

// StandingsEntry is one row of a tournament's standings
type StandingsEntry struct {
	// Rank is the 1-based position; players sharing lives and rating share a rank
	Rank int `json:"rank"`

	// Player is the ranked player
	Player *Player `json:"player"`

	// Eliminated is true once the player has no lives left
	Eliminated bool `json:"eliminated"`
}

// Standings represents the current ladder of a tournament
type Standings struct {
	// TournamentID is the tournament the standings belong to
	TournamentID string `json:"tournament_id"`

	// Entries are ordered by lives, then rating, then nickname
	Entries []*StandingsEntry `json:"entries"`

	// Remaining counts players still alive
	Remaining int `json:"remaining"`
}

// NewStandings ranks players by remaining lives, then rating. Nickname only
// orders rows that share a rank.
func NewStandings(tournamentID string, players []*Player) *Standings {
	ranked := make([]*Player, 0, len(players))
	for _, p := range players {
		if p != nil {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Lives != b.Lives {
			return a.Lives > b.Lives
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.Nickname < b.Nickname
	})

	standings := &Standings{
		TournamentID: tournamentID,
		Entries:      make([]*StandingsEntry, 0, len(ranked)),
	}
	for i, p := range ranked {
		rank := i + 1
		if i > 0 {
			prev := standings.Entries[i-1]
			if prev.Player.Lives == p.Lives && prev.Player.Rating == p.Rating {
				rank = prev.Rank
			}
		}
		if !p.IsEliminated() {
			standings.Remaining++
		}
		standings.Entries = append(standings.Entries, &StandingsEntry{
			Rank:       rank,
			Player:     p,
			Eliminated: p.IsEliminated(),
		})
	}
	return standings
}
