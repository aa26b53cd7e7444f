package game

import (
	"encoding/json"
	"fmt"
)

// Position identifies one square on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= BorderMin && p.Row <= BorderMax && p.Col >= BorderMin && p.Col <= BorderMax
}

// Turn is one completed move.
type Turn struct {
	Square Position   `json:"square"`
	Player PlayerMark `json:"player"`
}

func (t Turn) String() string {
	return fmt.Sprintf("%s selected %d,%d", t.Player, t.Square.Row, t.Square.Col)
}

// TurnLog is an immutable history of turns, most recent first.
// The zero value is an empty log.
type TurnLog struct {
	turns []Turn
}

// NewTurnLog builds a log from turns given most recent first.
func NewTurnLog(turns ...Turn) TurnLog {
	if len(turns) == 0 {
		return TurnLog{}
	}
	return TurnLog{turns: append([]Turn(nil), turns...)}
}

// Len returns the number of recorded turns.
func (l TurnLog) Len() int {
	return len(l.turns)
}

// Latest returns the most recent turn.
func (l TurnLog) Latest() (Turn, bool) {
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[0], true
}

// Turns returns a copy of the turns, most recent first.
func (l TurnLog) Turns() []Turn {
	return append([]Turn(nil), l.turns...)
}

// Chronological returns a copy of the turns, oldest first.
func (l TurnLog) Chronological() []Turn {
	out := make([]Turn, len(l.turns))
	for i, t := range l.turns {
		out[len(l.turns)-1-i] = t
	}
	return out
}

// Record returns a new log with t in front. The receiver is left untouched.
func (l TurnLog) Record(t Turn) TurnLog {
	turns := make([]Turn, 0, len(l.turns)+1)
	turns = append(turns, t)
	turns = append(turns, l.turns...)
	return TurnLog{turns: turns}
}

// MarshalJSON encodes the log as an array, most recent first.
func (l TurnLog) MarshalJSON() ([]byte, error) {
	if l.turns == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.turns)
}

// UnmarshalJSON decodes an array of turns, most recent first.
func (l *TurnLog) UnmarshalJSON(data []byte) error {
	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return err
	}
	*l = NewTurnLog(turns...)
	return nil
}
