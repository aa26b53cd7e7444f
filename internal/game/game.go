package game

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Status is the derived phase of a game.
type Status string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// FirstMark opens every game.
	FirstMark = PlayerX

	// Game statuses
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2
	BoardSize = BorderMax - BorderMin + 1

	// MaxTurns is the number of cells on the board.
	MaxTurns = BoardSize * BoardSize
)

// Marks lists both player marks in enumeration order.
var Marks = [2]PlayerMark{PlayerX, PlayerO}

// Valid reports whether m is one of the two player marks.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark.
func (m PlayerMark) Opponent() PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsOver reports whether the status is terminal.
func (s Status) IsOver() bool {
	return s == StatusWon || s == StatusDraw
}

// DeriveStatus maps a turn log and its outcome to the game phase.
// A draw needs every square filled and no winner.
func DeriveStatus(log TurnLog, outcome Outcome) Status {
	switch {
	case outcome.HasWinner():
		return StatusWon
	case log.Len() == MaxTurns:
		return StatusDraw
	default:
		return StatusInProgress
	}
}
