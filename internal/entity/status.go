package entity

import "fmt"

type StatusKind string

const (
	StatusWon      StatusKind = "won"
	StatusNextTurn StatusKind = "next_turn"
)

// Status - is derived from the board at the current step, it is never stored.
type Status struct {
	Kind StatusKind `json:"kind"`
	// Mark is the winner for StatusWon and the player to move for StatusNextTurn.
	Mark Mark    `json:"mark"`
	Line *[3]int `json:"line,omitempty"`
}

func Won(result WinResult) Status {
	return Status{Kind: StatusWon, Mark: result.Winner, Line: result.Line}
}

func NextTurn(mark Mark) Status {
	return Status{Kind: StatusNextTurn, Mark: mark}
}

func (that Status) IsWon() bool {
	return that.Kind == StatusWon
}

func (that Status) String() string {
	if that.IsWon() {
		return fmt.Sprintf("Winner is %s", that.Mark)
	}

	return fmt.Sprintf("Next player: %s", that.Mark)
}
