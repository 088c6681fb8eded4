package draft

import (
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/random"
)

// Captains are the two seeded captains of a lobby
type Captains struct {
	Captain1ID string
	Captain2ID string
}

// SeedCaptains picks captain 1 uniformly among the members tied for the
// highest rating, then captain 2 the same way among the remaining members.
// Lobbies with fewer than two members cannot seed distinct captains.
func SeedCaptains(l *models.Lobby, rng random.Source) (*Captains, error) {
	if len(l.Participations) < 2 {
		return nil, Errorf(KindDegenerateInput, "lobby %s has %d members, need at least 2 to seed captains", l.ID, len(l.Participations))
	}

	pool := make([]*models.Participation, len(l.Participations))
	copy(pool, l.Participations)

	first := drawTopRated(pool, rng)
	pool = removeParticipation(pool, first)
	second := drawTopRated(pool, rng)

	return &Captains{
		Captain1ID: first.PlayerID,
		Captain2ID: second.PlayerID,
	}, nil
}

// ResolveLottery flips a fair coin between the two captains
func ResolveLottery(c *Captains, rng random.Source) string {
	if rng.CoinFlip() {
		return c.Captain1ID
	}
	return c.Captain2ID
}

func drawTopRated(pool []*models.Participation, rng random.Source) *models.Participation {
	best := pool[0].Rating
	for _, p := range pool[1:] {
		if p.Rating > best {
			best = p.Rating
		}
	}

	var tied []*models.Participation
	for _, p := range pool {
		if p.Rating == best {
			tied = append(tied, p)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[rng.Intn(len(tied))]
}

func removeParticipation(pool []*models.Participation, target *models.Participation) []*models.Participation {
	out := make([]*models.Participation, 0, len(pool)-1)
	for _, p := range pool {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
