package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

var (
	errEmptyHistory   = errors.New("empty history")
	errBadStartRecord = errors.New("step 0 is not an empty start record")
)

// Snapshot - is the serialisable form of a Session.
type Snapshot struct {
	History         []entity.Move `json:"history"`
	CurrentStep     int           `json:"current_step"`
	DisplayReversed bool          `json:"display_reversed"`
}

func (that *Session) Snapshot() Snapshot {
	history := make([]entity.Move, 0, len(that.history))
	for _, move := range that.history {
		history = append(history, move.Clone())
	}

	return Snapshot{
		History:         history,
		CurrentStep:     that.currentStep,
		DisplayReversed: that.displayReversed,
	}
}

// Restore - rebuilds a session from a snapshot, refusing one that breaks the history invariants.
func Restore(snapshot Snapshot) (*Session, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptedSnapshot, err)
	}

	session := &Session{
		history:         make([]entity.Move, 0, len(snapshot.History)),
		currentStep:     snapshot.CurrentStep,
		displayReversed: snapshot.DisplayReversed,
	}

	for _, move := range snapshot.History {
		session.history = append(session.history, move.Clone())
	}

	return session, nil
}

func validateSnapshot(snapshot Snapshot) error {
	if len(snapshot.History) == 0 {
		return errEmptyHistory
	}

	if snapshot.CurrentStep < 0 || snapshot.CurrentStep >= len(snapshot.History) {
		return fmt.Errorf("current step %d outside history of %d", snapshot.CurrentStep, len(snapshot.History))
	}

	start := snapshot.History[0]
	if !start.IsStart() || !start.Player.IsEmpty() || start.Board.Filled() != 0 {
		return errBadStartRecord
	}

	for step := 1; step < len(snapshot.History); step++ {
		move, previous := snapshot.History[step], snapshot.History[step-1]

		if move.IsStart() || !entity.IsValidCell(*move.Position) {
			return fmt.Errorf("step %d has no valid position", step)
		}

		if move.Player != markForStep(step-1) {
			return fmt.Errorf("step %d played by %q", step, move.Player)
		}

		if Evaluate(previous.Board).HasWinner() {
			return fmt.Errorf("step %d follows a won board", step)
		}

		if !previous.Board[*move.Position].IsEmpty() || previous.Board.With(*move.Position, move.Player) != move.Board {
			return fmt.Errorf("step %d board does not follow step %d", step, step-1)
		}
	}

	return nil
}
