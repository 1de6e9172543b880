// Package agent holds one player's strategies and exposes the four decisions
// the driver asks of it.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"quoridor/config"
	"quoridor/game"
	"quoridor/metrics"
	"quoridor/searcher"
)

var ErrOccupied = errors.New("square occupied by the opponent")

type Option func(a *Agent)

// Agent is a player identity and the strategies it delegates to. It is not safe
// for concurrent use: the driver asks for one decision at a time.
type Agent struct {
	name   string
	player game.Player

	heuristic   searcher.HeuristicSearcher
	local       searcher.LocalSearcher
	belief      searcher.BeliefSearcher
	adversarial searcher.AdversarialSearcher

	cfg       config.Config
	logger    zerolog.Logger
	collector metrics.Collector
	recording bool
	records   []metrics.Record
	step      int
}

func WithName(name string) Option {
	return func(a *Agent) {
		if name != "" {
			a.name = name
		}
	}
}

func WithHeuristic(s searcher.HeuristicSearcher) Option {
	return func(a *Agent) {
		if s != nil {
			a.heuristic = s
		}
	}
}

func WithLocal(s searcher.LocalSearcher) Option {
	return func(a *Agent) {
		if s != nil {
			a.local = s
		}
	}
}

func WithBelief(s searcher.BeliefSearcher) Option {
	return func(a *Agent) {
		if s != nil {
			a.belief = s
		}
	}
}

func WithAdversarial(s searcher.AdversarialSearcher) Option {
	return func(a *Agent) {
		if s != nil {
			a.adversarial = s
		}
	}
}

// WithConfig sets the seed and local search settings the default strategies
// are built from.
func WithConfig(cfg config.Config) Option {
	return func(a *Agent) {
		a.cfg = cfg
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

// WithMetrics keeps a record of every decision, available from Records.
func WithMetrics() Option {
	return func(a *Agent) {
		a.recording = true
	}
}

func New(player game.Player, options ...Option) (*Agent, error) {
	if !player.Valid() {
		return nil, fmt.Errorf("creating agent for %s: %w", player, game.ErrInvalidPlayer)
	}

	a := &Agent{ // Default values
		name:      "default",
		player:    player,
		cfg:       config.Default(),
		logger:    zerolog.Nop(),
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(a)
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating agent %s: %w", a.name, err)
	}

	if a.heuristic == nil {
		a.heuristic = searcher.HeuristicFunc(searcher.Unimplemented)
	}
	if a.local == nil {
		a.local = searcher.NewScout(a.cfg.LocalSearch.Steps, a.cfg.LocalSearch.Margin)
	}
	if a.belief == nil {
		a.belief = searcher.BeliefFunc(searcher.FixedBelief)
	}
	if a.adversarial == nil {
		a.adversarial = searcher.NewGreedy(a.cfg.Seed)
	}
	a.logger = a.logger.With().Str("agent", a.name).Stringer("player", player).Logger()
	return a, nil
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Player() game.Player {
	return a.player
}

// Records returns the decisions recorded so far, oldest first. It is empty
// unless the agent was built WithMetrics.
func (a *Agent) Records() []metrics.Record {
	return append([]metrics.Record(nil), a.records...)
}

// HeuristicSearch returns a path of actions toward the goal row. It has no
// deadline.
func (a *Agent) HeuristicSearch(board *game.Board) []game.Action {
	ctx := a.begin(context.Background(), metrics.Heuristic)
	path := a.heuristic.HeuristicSearch(a.player, board)
	metrics.FromContext(ctx).AddCandidates(len(path))
	a.end(metrics.Heuristic, nil)
	return path
}

// LocalSearch returns one step of a local search turn: a scouting move, after
// which it is called again on the updated board, or the three final fences.
func (a *Agent) LocalSearch(ctx context.Context, board *game.Board) (searcher.LocalStep, error) {
	ctx = a.begin(ctx, metrics.Local)
	step, err := a.local.LocalSearch(ctx, a.player, board)
	if err == nil {
		err = a.checkStep(step, board)
	}
	a.end(metrics.Local, err)
	if err != nil {
		return searcher.LocalStep{}, err
	}
	return step, nil
}

func (a *Agent) checkStep(step searcher.LocalStep, board *game.Board) error {
	if err := step.Validate(); err != nil {
		return err
	}
	foreign := lo.Filter(step.Actions(), func(action game.Action, _ int) bool {
		return action.Player() != a.player
	})
	if len(foreign) > 0 {
		return fmt.Errorf("%s answered %s: %w", a.player, foreign[0], searcher.ErrMalformedStep)
	}
	if m, ok := step.Move(); ok && m.To() == board.Position(a.player.Opponent()) {
		return fmt.Errorf("scouting to %s: %w", m.To(), ErrOccupied)
	}
	return nil
}

// BeliefStateSearch returns the actions to play under partial observability,
// before the context deadline.
func (a *Agent) BeliefStateSearch(ctx context.Context, board *game.Board) ([]game.Action, error) {
	ctx = a.begin(ctx, metrics.Belief)
	actions, err := a.belief.BeliefStateSearch(ctx, a.player, board)
	a.end(metrics.Belief, err)
	return actions, err
}

// AdversarialSearch returns the single action to play this turn, before the
// context deadline.
func (a *Agent) AdversarialSearch(ctx context.Context, board *game.Board) (game.Action, error) {
	ctx = a.begin(ctx, metrics.Adversarial)
	action, err := a.adversarial.AdversarialSearch(ctx, a.player, board)
	if err == nil && action == nil {
		err = fmt.Errorf("%s chose nothing: %w", a.player, searcher.ErrNoLegalAction)
	}
	a.end(metrics.Adversarial, err)
	if err != nil {
		return nil, err
	}
	return action, nil
}

// begin starts measuring a decision and hands the strategy a context carrying
// the collector and the agent's logger.
func (a *Agent) begin(ctx context.Context, kind metrics.Kind) context.Context {
	a.step++
	deadline, _ := ctx.Deadline()
	a.collector.Start(kind, deadline)
	a.logger.Debug().Str("kind", string(kind)).Int("step", a.step).Msg("deciding")

	ctx = metrics.WithCollector(ctx, a.collector)
	return a.logger.WithContext(ctx)
}

func (a *Agent) end(kind metrics.Kind, err error) {
	d := a.collector.Complete(err)
	if a.recording {
		a.records = append(a.records, metrics.Record{
			Agent:    a.name,
			Player:   a.player.String(),
			Step:     a.step,
			Decision: d,
		})
	}

	if d.Overrun {
		a.logger.Warn().Str("kind", string(kind)).Dur("overrun", -d.Slack).Msg("returned after deadline")
	}
	if err != nil {
		a.logger.Debug().Err(err).Str("kind", string(kind)).Msg("decision failed")
		return
	}
	a.logger.Debug().Str("kind", string(kind)).Dur("duration", d.Duration.Round(time.Microsecond)).Msg("decided")
}
