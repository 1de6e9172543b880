// Package searcher defines the strategies an agent delegates its four decisions
// to, along with baseline strategies that perform no real search.
package searcher

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"quoridor/game"
)

var (
	ErrNoLegalAction = errors.New("no legal action")
	ErrMalformedStep = errors.New("local search step must be one move or exactly three compatible fences")
)

// LocalStepFences is the number of fences a final local search step carries.
const LocalStepFences = 3

// HeuristicSearcher finds a path of actions to the player's goal row, ignoring
// the opponent. It has no deadline.
type HeuristicSearcher interface {
	HeuristicSearch(player game.Player, board *game.Board) []game.Action
}

// LocalSearcher is called repeatedly within a turn. Each call either scouts with
// a move, after which the driver calls again on the updated board, or ends the
// turn with three fences. It must return before the context deadline.
type LocalSearcher interface {
	LocalSearch(ctx context.Context, player game.Player, board *game.Board) (LocalStep, error)
}

// BeliefSearcher is called once and must honor the context deadline itself.
type BeliefSearcher interface {
	BeliefStateSearch(ctx context.Context, player game.Player, board *game.Board) ([]game.Action, error)
}

// AdversarialSearcher picks the single action to play this turn before the
// context deadline.
type AdversarialSearcher interface {
	AdversarialSearch(ctx context.Context, player game.Player, board *game.Board) (game.Action, error)
}

type HeuristicFunc func(player game.Player, board *game.Board) []game.Action

func (f HeuristicFunc) HeuristicSearch(player game.Player, board *game.Board) []game.Action {
	return f(player, board)
}

type LocalFunc func(ctx context.Context, player game.Player, board *game.Board) (LocalStep, error)

func (f LocalFunc) LocalSearch(ctx context.Context, player game.Player, board *game.Board) (LocalStep, error) {
	return f(ctx, player, board)
}

type BeliefFunc func(ctx context.Context, player game.Player, board *game.Board) ([]game.Action, error)

func (f BeliefFunc) BeliefStateSearch(ctx context.Context, player game.Player, board *game.Board) ([]game.Action, error) {
	return f(ctx, player, board)
}

type AdversarialFunc func(ctx context.Context, player game.Player, board *game.Board) (game.Action, error)

func (f AdversarialFunc) AdversarialSearch(ctx context.Context, player game.Player, board *game.Board) (game.Action, error) {
	return f(ctx, player, board)
}

// LocalStep is the outcome of one local search call: a scouting move, or the
// final fences.
type LocalStep struct {
	move   *game.Move
	blocks []game.Block
}

func Scouting(m game.Move) LocalStep {
	return LocalStep{move: &m}
}

func Final(blocks ...game.Block) LocalStep {
	return LocalStep{blocks: blocks}
}

func (s LocalStep) IsFinal() bool {
	return s.move == nil
}

func (s LocalStep) Move() (game.Move, bool) {
	if s.move == nil {
		return game.Move{}, false
	}
	return *s.move, true
}

func (s LocalStep) Blocks() []game.Block {
	return s.blocks
}

func (s LocalStep) Actions() []game.Action {
	if s.move != nil {
		return []game.Action{*s.move}
	}
	actions := make([]game.Action, len(s.blocks))
	for i, b := range s.blocks {
		actions[i] = b
	}
	return actions
}

func (s LocalStep) Validate() error {
	if s.move != nil && len(s.blocks) > 0 {
		return fmt.Errorf("move and %d fences: %w", len(s.blocks), ErrMalformedStep)
	}
	if s.move == nil && len(s.blocks) != LocalStepFences {
		return fmt.Errorf("%d fences: %w", len(s.blocks), ErrMalformedStep)
	}
	// The three fences are placed as a set, so none may repeat or cross another
	for i, b := range s.blocks {
		for _, other := range s.blocks[i+1:] {
			if b.Fence().Conflicts(other.Fence()) {
				return fmt.Errorf("%s conflicts with %s: %w", b, other, ErrMalformedStep)
			}
		}
	}
	return nil
}

// newRand returns a generator for the given seed, drawing a random seed when
// seed is 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return rand.New(rand.NewSource(seed))
}
