package game

import "errors"

var (
	// ErrGameOver is wrapped by engines when the game has already been won, or
	// when the applied action won it.
	ErrGameOver = errors.New("game over")
	// ErrIllegalAction is wrapped by engines for an illegal destination, an
	// overlapping or crossing fence, a fence that cuts off a goal, or an
	// out-of-turn action.
	ErrIllegalAction = errors.New("illegal action")
)

// Rules is the external Quoridor rules engine. Legality, path feasibility and
// win detection all live behind it.
type Rules interface {
	// MovePawn moves the player's pawn. checkWinner enables game-over
	// detection, checkPlayer enables turn ownership validation.
	MovePawn(player Player, to Position, checkWinner, checkPlayer bool) error
	// PlaceFence places a fence for the player and decrements its allowance.
	PlaceFence(player Player, edge Edge, orientation Orientation, checkWinner bool) error
	FencesLeft(player Player) int
	ApplicableMoves(player Player) []Position
	ApplicableFences(player Player) []Fence
	Position(player Player) Position
	// Clone returns an independent copy for simulation.
	Clone() Rules
}
