package gametest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quoridor/game"
)

func TestPlaceFence(t *testing.T) {
	placed := game.Fence{Edge: game.Edge{Row: 4, Col: 4}, Orientation: game.Horizontal}
	crossing := game.Fence{Edge: game.Edge{Row: 4, Col: 4}, Orientation: game.Vertical}
	overlapping := game.Fence{Edge: game.Edge{Row: 4, Col: 5}, Orientation: game.Horizontal}
	apart := game.Fence{Edge: game.Edge{Row: 1, Col: 1}, Orientation: game.Horizontal}

	t.Run("handing the turn over on a checked placement", func(t *testing.T) {
		r := NewRules()
		r.Fences[game.White] = []game.Fence{placed}

		require.NoError(t, r.PlaceFence(game.White, placed.Edge, placed.Orientation, true))
		require.Equal(t, game.Black, r.Turn)
	})

	t.Run("keeping the turn while simulating", func(t *testing.T) {
		r := NewRules()
		r.Fences[game.White] = []game.Fence{placed}

		require.NoError(t, r.PlaceFence(game.White, placed.Edge, placed.Orientation, false))
		require.Equal(t, game.White, r.Turn)
	})

	t.Run("playing a full turn sequence", func(t *testing.T) {
		r := NewRules()
		r.Fences[game.White] = []game.Fence{placed}
		r.Moves[game.Black] = []game.Position{{Row: 7, Col: 4}}

		require.NoError(t, r.PlaceFence(game.White, placed.Edge, placed.Orientation, true))
		require.NoError(t, r.MovePawn(game.Black, game.Position{Row: 7, Col: 4}, true, true), "Black should be on turn after white's fence")
		require.Equal(t, game.White, r.Turn)
	})

	t.Run("withdrawing conflicting fences from both sides", func(t *testing.T) {
		r := NewRules()
		r.Fences[game.White] = []game.Fence{placed, crossing, overlapping, apart}
		r.Fences[game.Black] = []game.Fence{placed, crossing, apart}

		require.NoError(t, r.PlaceFence(game.White, placed.Edge, placed.Orientation, false))

		require.Equal(t, []game.Fence{apart}, r.ApplicableFences(game.White))
		require.Equal(t, []game.Fence{apart}, r.ApplicableFences(game.Black))
		require.ErrorIs(t, r.PlaceFence(game.White, crossing.Edge, crossing.Orientation, false), game.ErrIllegalAction)
		require.Equal(t, game.FencesMax-1, r.FencesLeft(game.White))
	})
}
