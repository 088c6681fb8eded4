package partition

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPool(n int) []*models.Player {
	pool := make([]*models.Player, n)
	for i := range pool {
		pool[i] = &models.Player{
			ID:       fmt.Sprintf("p%02d", i),
			Nickname: fmt.Sprintf("Player %d", i),
			Rating:   2000 + i*10,
			Lives:    2,
		}
	}
	return pool
}

func TestPartitionSizes(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		wantLobbies int
		wantChill   int
	}{
		{name: "empty pool", size: 0, wantLobbies: 0, wantChill: 0},
		{name: "too small for a lobby", size: 7, wantLobbies: 0, wantChill: 7},
		{name: "exactly one lobby", size: 10, wantLobbies: 1, wantChill: 0},
		{name: "twenty players", size: 20, wantLobbies: 2, wantChill: 0},
		{name: "twenty three players", size: 23, wantLobbies: 2, wantChill: 3},
		{name: "thirty nine players", size: 39, wantLobbies: 3, wantChill: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newPool(tt.size)
			result := Partition(pool, random.New(&random.Config{Seed: 42}))

			require.Len(t, result.Lobbies, tt.wantLobbies)
			assert.Len(t, result.ChillZone, tt.wantChill)
			assert.Equal(t, tt.wantChill, ChillZoneSize(tt.size))
			for _, l := range result.Lobbies {
				assert.Len(t, l, models.LobbySize)
			}
			assert.Equal(t, tt.size, result.Size())
		})
	}
}

func TestPartitionPlacesEveryPlayerOnce(t *testing.T) {
	pool := newPool(23)
	result := Partition(pool, random.New(&random.Config{Seed: 7}))

	seen := make(map[string]int)
	for _, l := range result.Lobbies {
		for _, p := range l {
			seen[p.ID]++
		}
	}
	for _, p := range result.ChillZone {
		seen[p.ID]++
	}

	require.Len(t, seen, len(pool))
	for id, count := range seen {
		assert.Equal(t, 1, count, "player %s placed %d times", id, count)
	}
}

func TestPartitionSkipsEliminated(t *testing.T) {
	pool := newPool(12)
	pool[0].Lives = 0
	pool[5].Lives = 0
	pool = append(pool, nil)

	result := Partition(pool, random.New(&random.Config{Seed: 1}))

	require.Len(t, result.Lobbies, 1)
	assert.Empty(t, result.ChillZone)
	for _, p := range result.Lobbies[0] {
		assert.False(t, p.IsEliminated())
	}
	assert.Equal(t, 0, pool[0].ChillZoneCount)
}

func TestPartitionIncrementsChillZoneCount(t *testing.T) {
	pool := newPool(13)
	result := Partition(pool, random.New(&random.Config{Seed: 99}))

	chill := make(map[string]bool)
	for _, p := range result.ChillZone {
		chill[p.ID] = true
	}
	for _, p := range pool {
		if chill[p.ID] {
			assert.Equal(t, 1, p.ChillZoneCount)
		} else {
			assert.Equal(t, 0, p.ChillZoneCount)
		}
	}
}

func TestPartitionPrefersLowestCount(t *testing.T) {
	pool := newPool(13)
	// everyone but p03, p07 and p11 has already sat out once
	for _, p := range pool {
		p.ChillZoneCount = 1
	}
	pool[3].ChillZoneCount = 0
	pool[7].ChillZoneCount = 0
	pool[11].ChillZoneCount = 0

	for seed := int64(1); seed <= 20; seed++ {
		snapshot := clonePool(pool)
		result := Partition(snapshot, random.New(&random.Config{Seed: seed}))

		ids := make([]string, 0, len(result.ChillZone))
		for _, p := range result.ChillZone {
			ids = append(ids, p.ID)
		}
		assert.ElementsMatch(t, []string{"p03", "p07", "p11"}, ids, "seed %d", seed)
	}
}

func TestPartitionDoesNotReorderCallerSlice(t *testing.T) {
	pool := newPool(20)
	before := make([]string, len(pool))
	for i, p := range pool {
		before[i] = p.ID
	}

	Partition(pool, random.New(&random.Config{Seed: 5}))

	for i, p := range pool {
		assert.Equal(t, before[i], p.ID)
	}
}

func TestPartitionFairnessOverRounds(t *testing.T) {
	for _, size := range []int{11, 19, 23, 37} {
		t.Run(fmt.Sprintf("pool of %d", size), func(t *testing.T) {
			pool := newPool(size)
			rng := random.New(&random.Config{Seed: int64(size)})

			for round := 0; round < 50; round++ {
				Partition(pool, rng)
				require.LessOrEqual(t, Spread(pool), 1, "round %d", round+1)
			}
		})
	}
}

func TestPartitionTieBreakIsUniform(t *testing.T) {
	const trials = 4000
	counts := make(map[string]int)
	rng := random.New(&random.Config{Seed: 2024})

	for i := 0; i < trials; i++ {
		result := Partition(newPool(23), rng)
		for _, p := range result.ChillZone {
			counts[p.ID]++
		}
	}

	// each of 23 players sits out with probability 3/23
	expected := float64(trials) * 3 / 23
	require.Len(t, counts, 23)
	for id, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.25, "player %s", id)
	}
}

func TestPartitionReplaysWithSameSeed(t *testing.T) {
	first := Partition(newPool(23), random.New(&random.Config{Seed: 77}))
	second := Partition(newPool(23), random.New(&random.Config{Seed: 77}))

	require.Equal(t, len(first.Lobbies), len(second.Lobbies))
	for i := range first.Lobbies {
		for j := range first.Lobbies[i] {
			assert.Equal(t, first.Lobbies[i][j].ID, second.Lobbies[i][j].ID)
		}
	}
	for i := range first.ChillZone {
		assert.Equal(t, first.ChillZone[i].ID, second.ChillZone[i].ID)
	}
}

func TestSpread(t *testing.T) {
	assert.Equal(t, 0, Spread(nil))

	pool := newPool(3)
	pool[0].ChillZoneCount = 4
	pool[1].ChillZoneCount = 1
	pool[2].ChillZoneCount = 9
	pool[2].Lives = 0
	assert.Equal(t, 3, Spread(pool))
}

func clonePool(pool []*models.Player) []*models.Player {
	out := make([]*models.Player, len(pool))
	for i, p := range pool {
		c := *p
		out[i] = &c
	}
	return out
}
