package heuristic

import (
	"fmt"
	"strings"

	"isolation/game"
)

// UnknownStrategyError reports a strategy identifier that is not in the
// registry. Selection never falls back to a default.
type UnknownStrategyError struct {
	Name  string
	Valid []string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// NoLegalMovesError reports a mobility strategy invoked on a state whose
// active player has no legal moves. Under the game's rules such a player
// has already lost, so reaching this means the caller skipped the
// terminal shortcut in Score.
type NoLegalMovesError struct {
	Player game.Player
}

func (e *NoLegalMovesError) Error() string {
	return fmt.Sprintf("no legal moves for active player %q", e.Player)
}
