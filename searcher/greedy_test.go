package searcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quoridor/game"
	"quoridor/game/gametest"
	"quoridor/metrics"
)

// openRules reports applicable fences even when the player has none left, so
// the fence-allowance check of the baseline is exercised on its own.
type openRules struct {
	*gametest.Rules
}

func (r openRules) ApplicableFences(p game.Player) []game.Fence {
	return r.Rules.Fences[p]
}

func allFences() []game.Fence {
	return append(
		gametest.FenceGrid(game.Horizontal, 0, 7, 0, 7),
		gametest.FenceGrid(game.Vertical, 0, 7, 0, 7)...,
	)
}

func TestGreedyAdversarialSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returning the only move without fences left", func(t *testing.T) {
		rules := gametest.NewRules()
		rules.Moves[game.White] = []game.Position{{Row: 1, Col: 4}}
		rules.Fences[game.White] = allFences()
		rules.Remaining[game.White] = 0
		board := game.NewBoard(openRules{rules})

		for i := 0; i < 50; i++ {
			got, err := NewGreedy(uint64(i+1)).AdversarialSearch(ctx, game.White, board)
			require.NoError(t, err)
			want, _ := game.NewMove(game.White, game.Position{Row: 1, Col: 4})
			require.Equal(t, want, got, "Single candidate should always be chosen")
		}
	})

	t.Run("keeping only moves at minimal row distance", func(t *testing.T) {
		rules := gametest.NewRules()
		rules.Positions[game.Black] = game.Position{Row: 1, Col: 1}
		rules.Moves[game.Black] = []game.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
		rules.Remaining[game.Black] = 0
		board := game.NewBoard(rules)
		g := NewGreedy(7)

		for i := 0; i < 200; i++ {
			got, err := g.AdversarialSearch(ctx, game.Black, board)
			require.NoError(t, err)
			require.Equal(t, game.Position{Row: 0, Col: 1}, got.(game.Move).To(), "Black should head for row 0")
		}
	})

	t.Run("never picking fences away from the opponent", func(t *testing.T) {
		rules := gametest.NewRules()
		rules.Positions[game.Black] = game.Position{Row: 4, Col: 4}
		rules.Moves[game.White] = []game.Position{{Row: 1, Col: 4}}
		rules.Fences[game.White] = allFences()
		board := game.NewBoard(rules)
		g := NewGreedy(11)

		blocks := 0
		for i := 0; i < 2000; i++ {
			got, err := g.AdversarialSearch(ctx, game.White, board)
			require.NoError(t, err)
			if b, ok := got.(game.Block); ok {
				blocks++
				require.Less(t, abs(b.Edge().Row-4), 2, "Fence %s should be next to the opponent", b)
				require.Less(t, abs(b.Edge().Col-4), 2, "Fence %s should be next to the opponent", b)
			}
		}
		// 18 nearby fences against a single move
		require.Greater(t, blocks, 1600, "Fences should dominate the candidate set")
	})

	t.Run("drawing evenly among equally good moves", func(t *testing.T) {
		rules := gametest.NewRules()
		rules.Positions[game.Black] = game.Position{Row: 4, Col: 4}
		rules.Moves[game.White] = []game.Position{{Row: 1, Col: 4}, {Row: 1, Col: 3}, {Row: 1, Col: 5}, {Row: 0, Col: 3}}
		rules.Remaining[game.White] = 0
		board := game.NewBoard(rules)
		g := NewGreedy(3)

		const trials = 6000
		counts := map[game.Position]int{}
		for i := 0; i < trials; i++ {
			got, err := g.AdversarialSearch(ctx, game.White, board)
			require.NoError(t, err)
			counts[got.(game.Move).To()]++
		}

		require.Len(t, counts, 3, "Only the three row-1 squares should be candidates")
		for square, n := range counts {
			require.InDelta(t, 1.0/3, float64(n)/trials, 0.04, "Square %s should be drawn about a third of the time", square)
		}
	})

	t.Run("failing without legal moves", func(t *testing.T) {
		rules := gametest.NewRules()
		rules.Fences[game.White] = allFences()
		board := game.NewBoard(rules)

		got, err := NewGreedy(1).AdversarialSearch(ctx, game.White, board)

		require.ErrorIs(t, err, ErrNoLegalAction)
		require.Nil(t, got)
	})

	t.Run("reporting candidates to the collector", func(t *testing.T) {
		rules := gametest.NewRules()
		rules.Positions[game.Black] = game.Position{Row: 4, Col: 4}
		rules.Moves[game.White] = []game.Position{{Row: 1, Col: 4}, {Row: 0, Col: 3}}
		rules.Fences[game.White] = []game.Fence{
			{Edge: game.Edge{Row: 3, Col: 4}, Orientation: game.Horizontal},
			{Edge: game.Edge{Row: 0, Col: 0}, Orientation: game.Horizontal},
		}
		board := game.NewBoard(rules)
		c := metrics.NewCollector()
		c.Start(metrics.Adversarial, time.Time{})

		_, err := NewGreedy(5).AdversarialSearch(metrics.WithCollector(ctx, c), game.White, board)

		require.NoError(t, err)
		require.Equal(t, 2, c.Complete(nil).Candidates, "One nearby fence and one closest move")
	})
}
