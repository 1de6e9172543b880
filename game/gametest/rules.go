// Package gametest provides a scripted rules engine for tests. It computes no
// Quoridor rules: applicable moves and fences are whatever the test sets up.
package gametest

import (
	"fmt"
	"maps"
	"slices"

	"quoridor/game"
)

// Rules is a scripted game.Rules. Moves outside Moves[player] and fences
// outside Fences[player] are rejected as illegal. A placed fence withdraws every
// fence conflicting with it. A move onto the player's goal row wins the game
// when winner checks are enabled, and checked actions hand the turn over.
type Rules struct {
	Positions map[game.Player]game.Position
	Moves     map[game.Player][]game.Position
	Fences    map[game.Player][]game.Fence
	Remaining map[game.Player]int
	Turn      game.Player // Player whose turn it is
	Won       bool

	MoveCalls  int
	FenceCalls int
}

// NewRules returns an engine at the standard opening: white on (0, 4), black on
// (8, 4), both with a full fence allowance and white to play.
func NewRules() *Rules {
	return &Rules{
		Positions: map[game.Player]game.Position{
			game.White: {Row: 0, Col: 4},
			game.Black: {Row: game.BoardSize - 1, Col: 4},
		},
		Moves:  map[game.Player][]game.Position{},
		Fences: map[game.Player][]game.Fence{},
		Remaining: map[game.Player]int{
			game.White: game.FencesMax,
			game.Black: game.FencesMax,
		},
		Turn: game.White,
	}
}

func (r *Rules) MovePawn(player game.Player, to game.Position, checkWinner, checkPlayer bool) error {
	r.MoveCalls++

	if checkWinner && r.Won {
		return fmt.Errorf("moving %s: %w", player, game.ErrGameOver)
	}
	if checkPlayer && player != r.Turn {
		return fmt.Errorf("moving %s out of turn: %w", player, game.ErrIllegalAction)
	}
	if !slices.Contains(r.Moves[player], to) {
		return fmt.Errorf("moving %s to %s: %w", player, to, game.ErrIllegalAction)
	}

	r.Positions[player] = to
	if checkPlayer {
		r.Turn = player.Opponent()
	}
	if checkWinner && to.Row == game.GoalRow(player) {
		r.Won = true
		return fmt.Errorf("%s reached %s: %w", player, to, game.ErrGameOver)
	}
	return nil
}

func (r *Rules) PlaceFence(player game.Player, edge game.Edge, orientation game.Orientation, checkWinner bool) error {
	r.FenceCalls++

	if checkWinner && r.Won {
		return fmt.Errorf("placing fence for %s: %w", player, game.ErrGameOver)
	}
	fence := game.Fence{Edge: edge, Orientation: orientation}
	if !slices.Contains(r.Fences[player], fence) {
		return fmt.Errorf("placing fence %s for %s: %w", fence, player, game.ErrIllegalAction)
	}

	r.Remaining[player]--
	// Neither side may place the fence again, nor one crossing or overlapping it
	for p, fences := range r.Fences {
		r.Fences[p] = slices.DeleteFunc(slices.Clone(fences), fence.Conflicts)
	}
	if checkWinner {
		r.Turn = player.Opponent()
	}
	return nil
}

func (r *Rules) FencesLeft(player game.Player) int {
	return r.Remaining[player]
}

func (r *Rules) ApplicableMoves(player game.Player) []game.Position {
	return slices.Clone(r.Moves[player])
}

func (r *Rules) ApplicableFences(player game.Player) []game.Fence {
	if r.Remaining[player] <= 0 {
		return nil
	}
	return slices.Clone(r.Fences[player])
}

func (r *Rules) Position(player game.Player) game.Position {
	return r.Positions[player]
}

func (r *Rules) Clone() game.Rules {
	c := &Rules{
		Positions:  maps.Clone(r.Positions),
		Moves:      make(map[game.Player][]game.Position, len(r.Moves)),
		Fences:     make(map[game.Player][]game.Fence, len(r.Fences)),
		Remaining:  maps.Clone(r.Remaining),
		Turn:       r.Turn,
		Won:        r.Won,
		MoveCalls:  r.MoveCalls,
		FenceCalls: r.FenceCalls,
	}
	for p, moves := range r.Moves {
		c.Moves[p] = slices.Clone(moves)
	}
	for p, fences := range r.Fences {
		c.Fences[p] = slices.Clone(fences)
	}
	return c
}

// FenceGrid lists every fence of the given orientation whose center edge lies in
// the inclusive rectangle [fromRow, toRow] x [fromCol, toCol].
func FenceGrid(orientation game.Orientation, fromRow, toRow, fromCol, toCol int) []game.Fence {
	fences := []game.Fence{}
	for row := fromRow; row <= toRow; row++ {
		for col := fromCol; col <= toCol; col++ {
			fences = append(fences, game.Fence{Edge: game.Edge{Row: row, Col: col}, Orientation: orientation})
		}
	}
	return fences
}
