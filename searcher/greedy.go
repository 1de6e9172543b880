package searcher

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"quoridor/game"
	"quoridor/metrics"
)

// Greedy is the single-ply adversarial baseline. It considers the moves that
// bring the pawn closest to its goal row and, while fences remain, the fences
// right around the opponent, then picks one of them uniformly at random.
type Greedy struct {
	rng *rand.Rand
}

// NewGreedy returns a greedy baseline. A zero seed picks a random one.
func NewGreedy(seed uint64) *Greedy {
	return &Greedy{rng: newRand(seed)}
}

func (g *Greedy) AdversarialSearch(ctx context.Context, player game.Player, board *game.Board) (game.Action, error) {
	candidates, err := greedyCandidates(player, board)
	if err != nil {
		return nil, err
	}
	metrics.FromContext(ctx).AddCandidates(len(candidates))
	return candidates[g.rng.Intn(len(candidates))], nil
}

func greedyCandidates(player game.Player, board *game.Board) ([]game.Action, error) {
	targetRow := game.GoalRow(player)
	opponent := board.Position(player.Opponent())

	fences := lo.Filter(board.ApplicableFences(player), func(f game.Fence, _ int) bool {
		return adjacent(f.Edge, opponent)
	})

	moves := board.ApplicableMoves(player)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%s at %s has no pawn move: %w", player, board.Position(player), ErrNoLegalAction)
	}
	closest := lo.Min(lo.Map(moves, func(m game.Position, _ int) int {
		return rowDistance(m, targetRow)
	}))
	moves = lo.Filter(moves, func(m game.Position, _ int) bool {
		return rowDistance(m, targetRow) == closest
	})

	candidates := make([]game.Action, 0, len(fences)+len(moves))
	if board.FencesLeft(player) > 0 {
		for _, f := range fences {
			b, err := game.NewBlockFromFence(player, f)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, b)
		}
	}
	for _, to := range moves {
		m, err := game.NewMove(player, to)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, m)
	}
	return candidates, nil
}
