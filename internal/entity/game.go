package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Mark - is the content of a single cell, and also identifies the player who placed it.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Next - returns the opponent's mark.
func (that Mark) Next() Mark {
	if that == PlayerX {
		return PlayerO
	}

	return PlayerX
}

func (that Mark) IsEmpty() bool {
	return that == Empty
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board - is a 3x3 board stored row-major.
type Board [BoardSize]Mark

// Position - converts a cell index into its (row, column) pair.
func Position(cell int) (int, int) {
	return cell / BoardSide, cell % BoardSide
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Filled - returns the number of non-empty cells.
func (that Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			filled++
		}
	}

	return filled
}

// With - returns a copy of the board with the cell set to mark.
func (that Board) With(cell int, mark Mark) Board {
	that[cell] = mark
	return that
}

// Move - is one history record: the board after the move, where it was made and by whom.
// The initial record has no position and no player.
type Move struct {
	Board    Board `json:"board"`
	Position *int  `json:"position"`
	Player   Mark  `json:"player"`
}

func NewMove(board Board, cell int, player Mark) Move {
	return Move{
		Board:    board,
		Position: &cell,
		Player:   player,
	}
}

func (that Move) IsStart() bool {
	return that.Position == nil
}

// Clone - copies the move so callers can't reach the position pointer of a history record.
func (that Move) Clone() Move {
	if that.Position != nil {
		position := *that.Position
		that.Position = &position
	}

	return that
}

// WinResult - is the outcome of evaluating a board for a completed line.
type WinResult struct {
	Winner Mark    `json:"winner"`
	Line   *[3]int `json:"line"`
}

func (that WinResult) HasWinner() bool {
	return that.Winner.IsPlayer()
}

// Contains - reports whether the cell belongs to the winning line.
func (that WinResult) Contains(cell int) bool {
	if that.Line == nil {
		return false
	}

	for _, index := range that.Line {
		if index == cell {
			return true
		}
	}

	return false
}
