package game

// Player identifies one of the two participants. It is an opaque token:
// the evaluation layer only compares it for equality and passes it back
// into State queries.
type Player string

// Move is an action produced by the board's move generator. The
// evaluation layer never interprets a move's structure; it only counts
// moves and replays them through ForecastMove.
type Move interface{}

// State is an immutable snapshot of an Isolation position. Operations on
// State always return a new copy; ForecastMove in particular must not
// mutate the receiver, so forecasted states are never aliases into the
// original.
type State interface {
	// ActivePlayer is the player to move; InactivePlayer is the other
	// participant.
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(Player) Player

	// At most one of IsWinner/IsLoser holds per player; the game has no
	// draws.
	IsWinner(Player) bool
	IsLoser(Player) bool

	// LegalMoves returns the moves available to the given player under
	// the movement rules.
	LegalMoves(Player) []Move

	// ForecastMove returns the successor state after the active player
	// plays move. The active player switches in the returned state.
	ForecastMove(Move) State

	// BlankSpaces counts the cells not yet blocked or occupied.
	BlankSpaces() int
	Width() int
	Height() int
}

// Evaluate scores how favorable a position is to the player it was bound
// to: higher is better, ±Inf marks decided positions. A non-nil error
// reports a caller-contract violation, never a recoverable runtime
// condition.
type Evaluate func(State) (float64, error)
