package game

import "github.com/rs/zerolog"

// Board is the game board handed to agents. It wraps the rules engine and keeps
// the audit trail of fences placed through it.
type Board struct {
	rules  Rules
	fences []Fence // In placement order
	logger zerolog.Logger
}

type BoardOption func(b *Board)

// WithLogger sets the logger that actions trace through. Debug traces only show
// up if the logger's level allows them.
func WithLogger(logger zerolog.Logger) BoardOption {
	return func(b *Board) {
		b.logger = logger
	}
}

func NewBoard(rules Rules, options ...BoardOption) *Board {
	if rules == nil {
		panic("board needs a rules engine")
	}
	b := &Board{
		rules:  rules,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Copy returns a board over a clone of the engine, for lookahead that must not
// touch the authoritative board.
func (b *Board) Copy() *Board {
	fencesCopy := make([]Fence, len(b.fences))
	copy(fencesCopy, b.fences)

	return &Board{
		rules:  b.rules.Clone(),
		fences: fencesCopy,
		logger: b.logger,
	}
}

// Fences returns the fences placed through this board, oldest first.
func (b *Board) Fences() []Fence {
	fencesCopy := make([]Fence, len(b.fences))
	copy(fencesCopy, b.fences)
	return fencesCopy
}

func (b *Board) Position(p Player) Position {
	return b.rules.Position(p)
}

func (b *Board) ApplicableMoves(p Player) []Position {
	return b.rules.ApplicableMoves(p)
}

func (b *Board) ApplicableFences(p Player) []Fence {
	return b.rules.ApplicableFences(p)
}

func (b *Board) FencesLeft(p Player) int {
	return b.rules.FencesLeft(p)
}

func (b *Board) recordFence(f Fence) {
	b.fences = append(b.fences, f)
}
