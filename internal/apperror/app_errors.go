package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrOutOfRange        = errors.New("step is out of range")
	ErrCorruptedSnapshot = errors.New("corrupted game snapshot")
)

// IsRejection - reports whether err is a move that was refused without changing the game.
func IsRejection(err error) bool {
	return errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidCell)
}
