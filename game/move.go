package game

import (
	"errors"
	"fmt"
)

var ErrNoFencesLeft = errors.New("no fences left")

// Action is a pawn move or a fence placement. Actions are immutable values that
// hold no board; applying one mutates the board it is given.
type Action interface {
	// Apply executes the action on the board. With avoidCheck set, the engine
	// skips win detection and turn validation, which lets a search simulate
	// hypothetical lines without ending the game.
	Apply(board *Board, avoidCheck bool) error
	Player() Player
	String() string
}

// Move moves the player's pawn to a square.
type Move struct {
	player Player
	to     Position
}

func NewMove(player Player, to Position) (Move, error) {
	if !player.Valid() {
		return Move{}, fmt.Errorf("creating move to %s: %w", to, ErrInvalidPlayer)
	}
	return Move{player: player, to: to}, nil
}

func (m Move) Player() Player {
	return m.player
}

func (m Move) To() Position {
	return m.to
}

func (m Move) String() string {
	return fmt.Sprintf("MOVE%s of %s", m.to, m.player)
}

// Apply returns the engine's error unchanged, typically wrapping ErrGameOver
// or ErrIllegalAction.
func (m Move) Apply(board *Board, avoidCheck bool) error {
	board.logger.Debug().
		Stringer("action", m).
		Bool("avoid_check", avoidCheck).
		Msg("applying action")

	return board.rules.MovePawn(m.player, m.to, !avoidCheck, !avoidCheck)
}

// Block places a fence for the player.
type Block struct {
	player Player
	fence  Fence
}

func NewBlock(player Player, edge Edge, orientation Orientation) (Block, error) {
	if !player.Valid() {
		return Block{}, fmt.Errorf("creating fence at %s: %w", edge, ErrInvalidPlayer)
	}
	if !orientation.Valid() {
		return Block{}, fmt.Errorf("creating fence at %s: %w", edge, ErrInvalidOrientation)
	}
	return Block{player: player, fence: Fence{Edge: edge, Orientation: orientation}}, nil
}

// NewBlockFromFence builds a Block from a fence reported by an engine.
func NewBlockFromFence(player Player, f Fence) (Block, error) {
	return NewBlock(player, f.Edge, f.Orientation)
}

func (b Block) Player() Player {
	return b.player
}

func (b Block) Fence() Fence {
	return b.fence
}

func (b Block) Edge() Edge {
	return b.fence.Edge
}

func (b Block) Orientation() Orientation {
	return b.fence.Orientation
}

func (b Block) String() string {
	return fmt.Sprintf("BLOCK_%c%s of %s", b.fence.Orientation.Tag(), b.fence.Edge, b.player)
}

// Apply fails with ErrNoFencesLeft before touching the engine when the player's
// allowance is spent. Engine errors are returned unchanged. On success the fence
// is appended to the board's audit trail.
func (b Block) Apply(board *Board, avoidCheck bool) error {
	board.logger.Debug().
		Stringer("action", b).
		Bool("avoid_check", avoidCheck).
		Msg("applying action")

	if board.rules.FencesLeft(b.player) <= 0 {
		return fmt.Errorf("%s: %w", b.player, ErrNoFencesLeft)
	}

	err := board.rules.PlaceFence(b.player, b.fence.Edge, b.fence.Orientation, !avoidCheck)
	if err != nil {
		return err
	}
	board.recordFence(b.fence)
	return nil
}
