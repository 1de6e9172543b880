package searcher

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"quoridor/game"
	"quoridor/metrics"
)

// surveyRadius is how far from its pawn, in Chebyshev distance, the scout looks
// at fence placements on each visit.
const surveyRadius = 2

// Scout is the local search baseline. It walks its pawn toward the opponent for
// a fixed number of scouting moves, rating every fence it sees on the way, then
// answers the three best rated fences and starts over on the next call.
//
// A Scout keeps state between calls and belongs to a single agent. A call that
// does not find the pawn where the last scouting move should have taken it
// starts a new phase.
type Scout struct {
	steps  int
	margin time.Duration
	now    func() time.Time

	moved   int
	expect  game.Position // Destination of the last scouting move
	visited []game.Position
	seen    map[game.Fence]int // Fitness by fence
}

// NewScout returns a scout that makes steps scouting moves before committing,
// or commits as soon as the deadline is within margin.
func NewScout(steps int, margin time.Duration) *Scout {
	return &Scout{
		steps:  steps,
		margin: margin,
		now:    time.Now,
		seen:   map[game.Fence]int{},
	}
}

func (s *Scout) LocalSearch(ctx context.Context, player game.Player, board *game.Board) (LocalStep, error) {
	own := board.Position(player)
	opponent := board.Position(player.Opponent())
	goal := game.GoalRow(player.Opponent())

	if s.moved > 0 && own != s.expect {
		zerolog.Ctx(ctx).Debug().Stringer("at", own).Stringer("expected", s.expect).Msg("starting a new phase")
		s.reset()
	}
	if !slices.Contains(s.visited, own) {
		s.visited = append(s.visited, own)
	}
	s.survey(player, board, own, opponent, goal)

	if s.moved < s.steps && !s.pressed(ctx) {
		if to, ok := s.nextSquare(player, board, opponent); ok {
			m, err := game.NewMove(player, to)
			if err != nil {
				return LocalStep{}, err
			}
			s.moved++
			s.expect = to
			zerolog.Ctx(ctx).Debug().Stringer("to", to).Int("moved", s.moved).Msg("scouting")
			return Scouting(m), nil
		}
	}

	defer s.reset()
	return s.commit(ctx, player, board, opponent, goal)
}

// pressed reports whether the deadline leaves no room for another scouting move.
func (s *Scout) pressed(ctx context.Context) bool {
	deadline, ok := ctx.Deadline()
	if !ok {
		return false
	}
	return deadline.Sub(s.now()) <= s.margin
}

func (s *Scout) survey(player game.Player, board *game.Board, own, opponent game.Position, goal int) {
	for _, f := range board.ApplicableFences(player) {
		if chebyshev(f.Edge, own) <= surveyRadius {
			s.seen[f] = fitness(f, opponent, goal)
		}
	}
}

// nextSquare picks the unvisited square closest to the opponent, falling back to
// visited squares, never the opponent's own square.
func (s *Scout) nextSquare(player game.Player, board *game.Board, opponent game.Position) (game.Position, bool) {
	moves := lo.Filter(board.ApplicableMoves(player), func(p game.Position, _ int) bool {
		return p != opponent
	})
	if len(moves) == 0 {
		return game.Position{}, false
	}

	fresh := lo.Filter(moves, func(p game.Position, _ int) bool {
		return !slices.Contains(s.visited, p)
	})
	if len(fresh) > 0 {
		moves = fresh
	}
	return lo.MinBy(moves, func(a, b game.Position) bool {
		return squareDistance(a, opponent) < squareDistance(b, opponent)
	}), true
}

func (s *Scout) commit(ctx context.Context, player game.Player, board *game.Board, opponent game.Position, goal int) (LocalStep, error) {
	applicable := board.ApplicableFences(player)
	rated := make(map[game.Fence]int, len(applicable))
	for _, f := range applicable {
		if score, ok := s.seen[f]; ok {
			rated[f] = score
		}
	}
	if len(rated) < LocalStepFences {
		// Scouting saw too little, rate everything on the board
		for _, f := range applicable {
			rated[f] = fitness(f, opponent, goal)
		}
	}
	metrics.FromContext(ctx).AddCandidates(len(rated))

	ranked := lo.Keys(rated)
	slices.SortFunc(ranked, func(a, b game.Fence) int {
		if c := cmp.Compare(rated[b], rated[a]); c != 0 {
			return c
		}
		return compareFences(a, b)
	})

	blocks, err := placeTogether(ctx, player, board, ranked)
	if err != nil {
		return LocalStep{}, err
	}
	if len(blocks) < LocalStepFences {
		return LocalStep{}, fmt.Errorf("%s can place %d of %d rated fences: %w", player, len(blocks), len(ranked), ErrNoLegalAction)
	}
	zerolog.Ctx(ctx).Debug().Int("rated", len(ranked)).Msg("committing fences")
	return Final(blocks...), nil
}

// placeTogether walks the ranked fences and keeps the first ones that can all
// stand on the board at once, trying each on a copy of the board.
func placeTogether(ctx context.Context, player game.Player, board *game.Board, ranked []game.Fence) ([]game.Block, error) {
	sim := board.Copy()
	blocks := make([]game.Block, 0, LocalStepFences)
	for _, f := range ranked {
		if len(blocks) == LocalStepFences {
			break
		}
		if lo.ContainsBy(blocks, func(b game.Block) bool { return b.Fence().Conflicts(f) }) {
			continue
		}

		b, err := game.NewBlockFromFence(player, f)
		if err != nil {
			return nil, err
		}
		err = b.Apply(sim, true)
		if errors.Is(err, game.ErrNoFencesLeft) {
			break
		}
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Stringer("fence", f).Msg("skipping fence")
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (s *Scout) reset() {
	s.moved = 0
	s.visited = nil
	s.seen = map[game.Fence]int{}
}

func squareDistance(a, b game.Position) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

func compareFences(a, b game.Fence) int {
	if c := cmp.Compare(a.Edge.Row, b.Edge.Row); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Edge.Col, b.Edge.Col); c != 0 {
		return c
	}
	return cmp.Compare(a.Orientation, b.Orientation)
}
