// Package partition splits a round's player pool into full lobbies and a
// chill zone for the players left over.
//
// Players sit out in order of fewest previous chill zone rounds, with ties
// broken uniformly at random, so over any sequence of rounds on a stable
// pool no player sits out more than once more than anyone else.
package partition

import (
	"sort"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/random"
)

// Result is the outcome of partitioning one round
type Result struct {
	// Lobbies holds groups of exactly models.LobbySize players
	Lobbies [][]*models.Player

	// ChillZone holds the players sitting out this round
	ChillZone []*models.Player
}

// Size returns the number of players placed across lobbies and chill zone
func (r *Result) Size() int {
	n := len(r.ChillZone)
	for _, l := range r.Lobbies {
		n += len(l)
	}
	return n
}

// ChillZoneSize returns how many players of a pool of n eligible players sit
// out. Pools too small for a single lobby sit out entirely.
func ChillZoneSize(n int) int {
	if n < models.LobbySize {
		return n
	}
	return n % models.LobbySize
}

// Partition shuffles the eligible players of pool into lobbies and chooses the
// chill zone. Eliminated and nil players are skipped. The ChillZoneCount of
// every chill zone player is incremented in place; callers persist the change.
func Partition(pool []*models.Player, rng random.Source) *Result {
	eligible := models.EligiblePlayers(pool)
	result := &Result{}
	if len(eligible) == 0 {
		return result
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	chillCount := ChillZoneSize(len(eligible))

	// the shuffle already randomized order, a stable sort keeps that order
	// inside each ChillZoneCount group
	byCount := make([]*models.Player, len(eligible))
	copy(byCount, eligible)
	sort.SliceStable(byCount, func(i, j int) bool {
		return byCount[i].ChillZoneCount < byCount[j].ChillZoneCount
	})

	chill := make(map[*models.Player]bool, chillCount)
	for _, p := range byCount[:chillCount] {
		chill[p] = true
		result.ChillZone = append(result.ChillZone, p)
	}

	playing := make([]*models.Player, 0, len(eligible)-chillCount)
	for _, p := range eligible {
		if !chill[p] {
			playing = append(playing, p)
		}
	}
	for start := 0; start+models.LobbySize <= len(playing); start += models.LobbySize {
		result.Lobbies = append(result.Lobbies, playing[start:start+models.LobbySize])
	}

	for _, p := range result.ChillZone {
		p.ChillZoneCount++
	}

	return result
}

// Spread returns max minus min ChillZoneCount across the eligible players
func Spread(players []*models.Player) int {
	eligible := models.EligiblePlayers(players)
	if len(eligible) == 0 {
		return 0
	}
	lo, hi := eligible[0].ChillZoneCount, eligible[0].ChillZoneCount
	for _, p := range eligible[1:] {
		if p.ChillZoneCount < lo {
			lo = p.ChillZoneCount
		}
		if p.ChillZoneCount > hi {
			hi = p.ChillZoneCount
		}
	}
	return hi - lo
}
