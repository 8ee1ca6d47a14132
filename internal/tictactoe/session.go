package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// Session - owns the move history of one game and the cursor into it.
// It is not safe for concurrent use.
type Session struct {
	history         []entity.Move
	currentStep     int
	displayReversed bool
}

// HistoryEntry - is a history record paired with its step.
type HistoryEntry struct {
	Step int
	Move entity.Move
}

func NewSession() *Session {
	return &Session{
		history: []entity.Move{{Board: entity.Board{}}},
	}
}

// ApplyMove - places the next player's mark on cell, starting from the current step.
// Moves recorded after the current step are discarded. A rejected move returns an error
// and leaves the session untouched.
func (that *Session) ApplyMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	current := that.history[that.currentStep]

	if Evaluate(current.Board).HasWinner() {
		return apperror.ErrGameFinished
	}

	if !current.Board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	mark := markForStep(that.currentStep)

	that.history = append(that.history[:that.currentStep+1], entity.NewMove(current.Board.With(cell, mark), cell, mark))
	that.currentStep = len(that.history) - 1

	return nil
}

// JumpTo - moves the cursor to step without changing the history.
func (that *Session) JumpTo(step int) error {
	if step < 0 || step >= len(that.history) {
		return fmt.Errorf("%w: step %d, history length %d", apperror.ErrOutOfRange, step, len(that.history))
	}

	that.currentStep = step

	return nil
}

func (that *Session) ToggleHistoryOrder() {
	that.displayReversed = !that.displayReversed
}

func (that *Session) Status() entity.Status {
	result := Evaluate(that.history[that.currentStep].Board)
	if result.HasWinner() {
		return entity.Won(result)
	}

	return entity.NextTurn(markForStep(that.currentStep))
}

// OrderedHistoryView - returns copies of all history records in display order.
func (that *Session) OrderedHistoryView() []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(that.history))
	for step, move := range that.history {
		entries = append(entries, HistoryEntry{Step: step, Move: move.Clone()})
	}

	if that.displayReversed {
		slices.Reverse(entries)
	}

	return entries
}

func (that *Session) Current() entity.Move {
	return that.history[that.currentStep].Clone()
}

func (that *Session) CurrentStep() int {
	return that.currentStep
}

func (that *Session) Len() int {
	return len(that.history)
}

func (that *Session) Reversed() bool {
	return that.displayReversed
}

// markForStep - X moves from even steps, O from odd ones.
func markForStep(step int) entity.Mark {
	if step%2 == 0 {
		return entity.PlayerX
	}

	return entity.PlayerO
}
