package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quoridor/game"
	"quoridor/game/gametest"
)

func TestBoardCopy(t *testing.T) {
	fence := game.Fence{Edge: game.Edge{Row: 4, Col: 4}, Orientation: game.Horizontal}
	rules := gametest.NewRules()
	rules.Moves[game.White] = []game.Position{{Row: 1, Col: 4}}
	rules.Fences[game.White] = []game.Fence{fence}
	board := game.NewBoard(rules)

	t.Run("simulating on a copy leaves the original untouched", func(t *testing.T) {
		sim := board.Copy()
		m, _ := game.NewMove(game.White, game.Position{Row: 1, Col: 4})
		b, _ := game.NewBlockFromFence(game.White, fence)

		require.NoError(t, m.Apply(sim, true))
		require.NoError(t, b.Apply(sim, true))

		require.Equal(t, game.Position{Row: 1, Col: 4}, sim.Position(game.White))
		require.Equal(t, []game.Fence{fence}, sim.Fences())
		require.Equal(t, game.Position{Row: 0, Col: 4}, board.Position(game.White), "Original pawn should not move")
		require.Empty(t, board.Fences(), "Original audit trail should not change")
		require.Equal(t, game.FencesMax, board.FencesLeft(game.White))
	})

	t.Run("returning a detached audit trail", func(t *testing.T) {
		sim := board.Copy()
		b, _ := game.NewBlockFromFence(game.White, fence)
		require.NoError(t, b.Apply(sim, true))

		fences := sim.Fences()
		fences[0] = game.Fence{}
		require.Equal(t, []game.Fence{fence}, sim.Fences(), "Callers should not mutate the audit trail")
	})
}

func TestNewBoard(t *testing.T) {
	require.Panics(t, func() {
		game.NewBoard(nil)
	}, "Should panic without a rules engine")
}
