package tictactoe

import "github.com/rocketscienceinc/tictactoe-history/internal/entity"

// WinCombos - rows top to bottom, columns left to right, then both diagonals.
// The order decides which line is reported when a board has more than one.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - returns the first completed line of identical marks, or an empty result.
func Evaluate(board entity.Board) entity.WinResult {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			line := combo
			return entity.WinResult{Winner: a, Line: &line}
		}
	}

	return entity.WinResult{Winner: entity.Empty}
}
