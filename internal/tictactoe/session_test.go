package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playMoves(t *testing.T, session *Session, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, session.ApplyMove(cell))
	}
}

func TestNewSession(t *testing.T) {
	// Given: a new session
	session := NewSession()

	// Then: it holds only the empty start record and X moves first
	assert.Equal(t, 1, session.Len())
	assert.Equal(t, 0, session.CurrentStep())
	assert.False(t, session.Reversed())
	assert.True(t, session.Current().IsStart())
	assert.Equal(t, entity.Empty, session.Current().Player)
	assert.Equal(t, entity.Board{}, session.Current().Board)
	assert.Equal(t, entity.NextTurn(x), session.Status())
}

func TestSession_ApplyMove(t *testing.T) {
	t.Run("Marks alternate starting with X", func(t *testing.T) {
		// Given: a new session
		session := NewSession()

		// When: X plays the center
		require.NoError(t, session.ApplyMove(4))

		// Then: the center holds X and O is next
		assert.Equal(t, x, session.Current().Board[4])
		assert.Equal(t, entity.NextTurn(o), session.Status())

		// When: O plays the corner
		require.NoError(t, session.ApplyMove(0))

		// Then: the corner holds O and X is next
		current := session.Current()
		assert.Equal(t, o, current.Board[0])
		assert.Equal(t, o, current.Player)
		require.NotNil(t, current.Position)
		assert.Equal(t, 0, *current.Position)
		assert.Equal(t, entity.NextTurn(x), session.Status())
	})

	t.Run("Applied move grows history by one and moves the cursor to the end", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 4, 0)

		require.NoError(t, session.ApplyMove(8))

		assert.Equal(t, 4, session.Len())
		assert.Equal(t, session.Len()-1, session.CurrentStep())
	})

	t.Run("Double click on the same cell changes state once", func(t *testing.T) {
		// Given: X has played cell 4
		session := NewSession()
		require.NoError(t, session.ApplyMove(4))
		before := session.Snapshot()

		// When: cell 4 is clicked again
		err := session.ApplyMove(4)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.True(t, apperror.IsRejection(err))
		assert.Equal(t, before, session.Snapshot())
		assert.Equal(t, entity.NextTurn(o), session.Status())
	})

	t.Run("Winning move ends the game", func(t *testing.T) {
		// Given: X takes the top row while O plays 3 and 4
		session := NewSession()
		playMoves(t, session, 0, 3, 1, 4, 2)

		// Then: X wins with the top row
		status := session.Status()
		assert.True(t, status.IsWon())
		assert.Equal(t, x, status.Mark)
		require.NotNil(t, status.Line)
		assert.Equal(t, [3]int{0, 1, 2}, *status.Line)
		assert.Equal(t, "Winner is X", status.String())

		// When: O tries to keep playing
		before := session.Snapshot()
		err := session.ApplyMove(5)

		// Then: the move is rejected and the history is untouched
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, before, session.Snapshot())
		assert.Equal(t, 6, session.Len())
	})

	t.Run("Invalid cells are rejected", func(t *testing.T) {
		session := NewSession()

		for _, cell := range []int{-1, 9, 100} {
			err := session.ApplyMove(cell)

			require.ErrorIs(t, err, apperror.ErrInvalidCell)
		}

		assert.Equal(t, 1, session.Len())
	})

	t.Run("Moving after a jump discards the future branch", func(t *testing.T) {
		// Given: three moves played and a jump back to step 1
		session := NewSession()
		playMoves(t, session, 0, 3, 1)
		require.NoError(t, session.JumpTo(1))

		// When: O plays a different cell from step 1
		require.NoError(t, session.ApplyMove(8))

		// Then: steps 2 and 3 were replaced by the new move
		assert.Equal(t, 3, session.Len())
		assert.Equal(t, 2, session.CurrentStep())

		current := session.Current()
		assert.Equal(t, o, current.Player)
		assert.Equal(t, 8, *current.Position)
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, o}, current.Board)
	})

	t.Run("Rewinding before a win allows play to continue", func(t *testing.T) {
		// Given: a game X has won at step 5
		session := NewSession()
		playMoves(t, session, 0, 3, 1, 4, 2)

		// When: jumping back to step 4, before the winning move
		require.NoError(t, session.JumpTo(4))

		// Then: the board at the cursor decides, not the latest record
		assert.Equal(t, entity.NextTurn(x), session.Status())

		// When: X plays elsewhere
		require.NoError(t, session.ApplyMove(8))

		// Then: the won branch is gone and the game goes on
		assert.Equal(t, 6, session.Len())
		assert.Equal(t, 5, session.CurrentStep())
		assert.Equal(t, entity.NextTurn(o), session.Status())
		assert.Equal(t, e, session.Current().Board[2])
	})

	t.Run("Rewinding to the won step still rejects moves", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 0, 3, 1, 4, 2)
		require.NoError(t, session.JumpTo(3))
		require.NoError(t, session.JumpTo(5))

		err := session.ApplyMove(8)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Board at step N holds N alternating marks", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 4, 0, 8, 2, 1, 7, 6, 3, 5)

		for step, move := range session.Snapshot().History {
			assert.Equal(t, step, move.Board.Filled())
			if step == 0 {
				continue
			}
			assert.Equal(t, markForStep(step-1), move.Player)
		}
	})

	t.Run("Full board without a winner keeps reporting the next turn", func(t *testing.T) {
		// Given: nine moves without a line
		session := NewSession()
		playMoves(t, session, 4, 0, 8, 2, 1, 7, 6, 3, 5)
		require.False(t, session.Status().IsWon())

		// When: clicking any cell
		err := session.ApplyMove(0)

		// Then: it is occupied
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.NextTurn(o), session.Status())
	})
}

func TestSession_JumpTo(t *testing.T) {
	t.Run("Valid step moves only the cursor", func(t *testing.T) {
		// Given: a session with two moves
		session := NewSession()
		playMoves(t, session, 4, 0)
		history := session.Snapshot().History

		// When: jumping to step 1
		require.NoError(t, session.JumpTo(1))

		// Then: the cursor moved and history is unchanged
		assert.Equal(t, 1, session.CurrentStep())
		assert.Equal(t, history, session.Snapshot().History)
		assert.Equal(t, entity.NextTurn(o), session.Status())

		// When: jumping to the start
		require.NoError(t, session.JumpTo(0))

		// Then: X is next on an empty board
		assert.Equal(t, entity.NextTurn(x), session.Status())
		assert.Equal(t, entity.Board{}, session.Current().Board)
	})

	t.Run("Out of range steps fail", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 4)

		for _, step := range []int{-1, 2, 10} {
			err := session.JumpTo(step)

			require.ErrorIs(t, err, apperror.ErrOutOfRange)
			assert.False(t, apperror.IsRejection(err))
		}

		assert.Equal(t, 1, session.CurrentStep())
		assert.Equal(t, 2, session.Len())
	})
}

func TestSession_OrderedHistoryView(t *testing.T) {
	t.Run("Original order pairs each record with its step", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 4, 0)

		view := session.OrderedHistoryView()

		require.Len(t, view, 3)
		for i, entry := range view {
			assert.Equal(t, i, entry.Step)
		}
		assert.True(t, view[0].Move.IsStart())
		assert.Equal(t, x, view[1].Move.Player)
		assert.Equal(t, o, view[2].Move.Player)
	})

	t.Run("Reversed order lists the latest step first", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 4, 0)

		session.ToggleHistoryOrder()
		view := session.OrderedHistoryView()

		assert.True(t, session.Reversed())
		require.Len(t, view, 3)
		assert.Equal(t, []int{2, 1, 0}, []int{view[0].Step, view[1].Step, view[2].Step})
	})

	t.Run("Toggling twice restores the original order", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 4, 0, 8)
		original := session.OrderedHistoryView()

		session.ToggleHistoryOrder()
		session.ToggleHistoryOrder()

		assert.False(t, session.Reversed())
		assert.Equal(t, original, session.OrderedHistoryView())
	})

	t.Run("Toggling does not touch the game", func(t *testing.T) {
		session := NewSession()
		playMoves(t, session, 4, 0)
		require.NoError(t, session.JumpTo(1))

		session.ToggleHistoryOrder()

		assert.Equal(t, 1, session.CurrentStep())
		assert.Equal(t, 3, session.Len())
	})

	t.Run("Entries are copies", func(t *testing.T) {
		// Given: a session with one move
		session := NewSession()
		playMoves(t, session, 4)

		// When: the caller edits the returned entry
		view := session.OrderedHistoryView()
		*view[1].Move.Position = 7
		view[1].Move.Board[4] = o

		// Then: the session is unaffected
		current := session.Current()
		assert.Equal(t, 4, *current.Position)
		assert.Equal(t, x, current.Board[4])
	})
}
