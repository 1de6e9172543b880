package searcher

import (
	"context"

	"quoridor/game"
)

// Unimplemented is the placeholder heuristic search: it finds no path.
func Unimplemented(player game.Player, board *game.Board) []game.Action {
	return []game.Action{}
}

var placeholderBeliefEdges = []game.Edge{{Row: 1, Col: 1}, {Row: 7, Col: 7}, {Row: 3, Col: 3}, {Row: 6, Col: 6}}

// FixedBelief is the placeholder belief state search: it answers the same four
// horizontal fences whatever the board.
func FixedBelief(ctx context.Context, player game.Player, board *game.Board) ([]game.Action, error) {
	actions := make([]game.Action, 0, len(placeholderBeliefEdges))
	for _, edge := range placeholderBeliefEdges {
		b, err := game.NewBlock(player, edge, game.Horizontal)
		if err != nil {
			return nil, err
		}
		actions = append(actions, b)
	}
	return actions, nil
}
