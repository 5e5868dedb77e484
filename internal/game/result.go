package game

// Result is the outcome of a game.
type Result int

const (
	Undecided Result = iota
	WhiteWin
	BlackWin
	Draw
	TimedOut
)

// String returns the string representation of a result.
func (r Result) String() string {
	switch r {
	case WhiteWin:
		return "white wins"
	case BlackWin:
		return "black wins"
	case Draw:
		return "draw"
	case TimedOut:
		return "timed out"
	default:
		return "undecided"
	}
}

// PGN returns the result token used in PGN movetext and the Result tag.
// Unfinished and timed-out games are written as "*".
func (r Result) PGN() string {
	switch r {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Points returns White's and Black's share of the point. A timed-out game
// scores like a draw.
func (r Result) Points() (white, black float64) {
	switch r {
	case WhiteWin:
		return 1, 0
	case BlackWin:
		return 0, 1
	case Draw, TimedOut:
		return 0.5, 0.5
	default:
		return 0, 0
	}
}

// Reason explains why a game ended.
type Reason int

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
	PlyLimit
)

// String returns the string representation of a reason.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	case PlyLimit:
		return "ply limit"
	default:
		return ""
	}
}
