// Package heuristic provides pluggable static evaluation functions for
// Isolation positions. A minimax/alpha-beta driver calls Score to rank
// candidate positions when searching to full depth is infeasible.
//
// Definitions (General Game Playing, Stanford CS227):
//
//	Action mobility: how mobile a player is in a given state, or n
//	states ahead of it.
//	Action focus: the narrowness of the search space in a given state;
//	the inverse of action mobility.
package heuristic

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"isolation/game"
)

// StrategyKind selects one of the registered evaluation strategies.
type StrategyKind int

const (
	// ActionMobility measures one-ply-ahead mobility relative to the
	// player's own current options.
	ActionMobility StrategyKind = iota
	// ActionFocus is the inverse of ActionMobility.
	ActionFocus
	// WeightedDifferential combines the raw mobility differential with
	// board fill, penalizing opponent moves by a configurable weight.
	WeightedDifferential
)

// TODO: state_focus (the inverse of the count of distinct reachable
// states) needs a settled formula before it can join the registry.

var strategyNames = map[StrategyKind]string{
	ActionMobility:       "action_mobility",
	ActionFocus:          "action_focus",
	WeightedDifferential: "weighted_differential",
}

func (k StrategyKind) String() string {
	if name, ok := strategyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(k))
}

// ParseStrategy maps an external identifier, e.g. from the search
// driver's configuration, to its StrategyKind. Unknown identifiers are
// an error, never silently defaulted.
func ParseStrategy(name string) (StrategyKind, error) {
	for kind, known := range strategyNames {
		if known == name {
			return kind, nil
		}
	}
	return 0, &UnknownStrategyError{Name: name, Valid: ValidStrategies()}
}

// ValidStrategies returns the recognized identifiers in sorted order.
func ValidStrategies() []string {
	names := maps.Values(strategyNames)
	slices.Sort(names)
	return names
}

// DefaultOpponentWeight penalizes the opponent's mobility in
// WeightedDifferential.
const DefaultOpponentWeight = 2.5

// Evaluator scores Isolation positions on behalf of one player. The
// originating game and player are retained for strategies that need the
// wider context; the current strategy formulas read the player to move
// through the state's active/inactive accessors instead, so the bound
// player goes unused by them.
type Evaluator struct {
	game   game.State
	player game.Player
	weight float64
}

type Option func(*Evaluator)

// WithOpponentWeight overrides DefaultOpponentWeight for
// WeightedDifferential.
func WithOpponentWeight(weight float64) Option {
	return func(e *Evaluator) {
		if weight > 0 {
			e.weight = weight
		}
	}
}

func New(g game.State, p game.Player, options ...Option) *Evaluator {
	e := &Evaluator{ // Default values
		game:   g,
		player: p,
		weight: DefaultOpponentWeight,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Score computes how desirable state is for player: higher is better.
// Decided positions short-circuit before any strategy runs: a lost
// position scores -Inf and a won position +Inf whatever kind is active,
// so the search driver treats forced outcomes as absolute, and the
// mobility strategies never see a state without legal moves. Non-terminal
// positions dispatch on kind and always score finite (never NaN).
//
// Strategies that need a player reach it through the state's
// active/inactive accessors, not through the player argument; past the
// terminal check, player is deliberately unused.
func (e *Evaluator) Score(state game.State, player game.Player, kind StrategyKind) (float64, error) {
	if state.IsLoser(player) {
		return math.Inf(-1), nil
	}
	if state.IsWinner(player) {
		return math.Inf(1), nil
	}

	switch kind {
	case ActionMobility:
		return actionMobility(state)
	case ActionFocus:
		return actionFocus(state)
	case WeightedDifferential:
		return weightedDifferential(state, e.weight)
	default:
		return 0, &UnknownStrategyError{Name: kind.String(), Valid: ValidStrategies()}
	}
}

// Evaluate binds kind and the evaluator's player into the closure
// signature the search driver plugs in.
func (e *Evaluator) Evaluate(kind StrategyKind) game.Evaluate {
	return func(state game.State) (float64, error) {
		return e.Score(state, e.player, kind)
	}
}

// actionMobility looks one step ahead: for each legal move, forecast the
// resulting state and count the moves the mover would still have there.
// The best such count divided by the current move count is the score.
//
// The ratio is not clamped to [0, 1]: a follow-up count can exceed the
// current move count, and downstream comparisons (ActionFocus among
// them) rely on the raw value.
func actionMobility(state game.State) (float64, error) {
	legalMoves := state.LegalMoves(state.ActivePlayer())
	if len(legalMoves) == 0 {
		return 0, &NoLegalMovesError{Player: state.ActivePlayer()}
	}

	bestMovesAhead := 0
	for _, move := range legalMoves {
		future := state.ForecastMove(move)
		// The player switches after a move, so the mover's follow-up
		// options are the inactive player's moves in the forecast state
		numNewMoves := len(future.LegalMoves(future.InactivePlayer()))
		if numNewMoves > bestMovesAhead {
			bestMovesAhead = numNewMoves
		}
	}

	return float64(bestMovesAhead) / float64(len(legalMoves)), nil
}

// actionFocus is 1 - actionMobility. Because the mobility ratio is
// unbounded above 1, focus can go negative; that is a property of the
// metric, not an error.
func actionFocus(state game.State) (float64, error) {
	mobility, err := actionMobility(state)
	if err != nil {
		return 0, err
	}
	return 1.0 - mobility, nil
}

// weightedDifferential augments the common playerMoves-opponentMoves
// tally: the opponent's moves are penalized by weight and the difference
// is scaled by the number of filled spaces, so the same differential
// counts for more in a crowded endgame. The opponent is resolved through
// Opponent rather than assumed, to stay correct under the state's
// active/inactive bookkeeping. Well-defined even when a side has zero
// moves.
func weightedDifferential(state game.State, weight float64) (float64, error) {
	filledSpaces := state.Width()*state.Height() - state.BlankSpaces()
	playerMoves := len(state.LegalMoves(state.ActivePlayer()))
	opponent := state.Opponent(state.ActivePlayer())
	opponentMoves := len(state.LegalMoves(opponent))

	return (float64(playerMoves) - weight*float64(opponentMoves)) * float64(filledSpaces), nil
}
