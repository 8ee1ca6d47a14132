// Package view projects a game session into what a front end draws: the status line,
// the board with the winning line highlighted and the labelled move history.
package view

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	startLabel       = "Go to game start"
	reverseLabel     = "Reverse"
	normalOrderLabel = "Normal Moves order"
	moveLabelFormat  = "Go to move #%d, position(%d, %d), player(%s)"
)

type Cell struct {
	Index     int         `json:"index"`
	Row       int         `json:"row"`
	Column    int         `json:"column"`
	Mark      entity.Mark `json:"mark"`
	Highlight bool        `json:"highlight"`
}

type Move struct {
	Step    int    `json:"step"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

type Game struct {
	Status      entity.Status `json:"status"`
	StatusText  string        `json:"status_text"`
	Rows        [][]Cell      `json:"rows"`
	Moves       []Move        `json:"moves"`
	Reversed    bool          `json:"reversed"`
	OrderToggle string        `json:"order_toggle"`
	CurrentStep int           `json:"current_step"`
}

func Render(session *tictactoe.Session) Game {
	status := session.Status()

	return Game{
		Status:      status,
		StatusText:  status.String(),
		Rows:        renderBoard(session.Current().Board, status),
		Moves:       renderMoves(session),
		Reversed:    session.Reversed(),
		OrderToggle: orderToggleLabel(session.Reversed()),
		CurrentStep: session.CurrentStep(),
	}
}

func renderBoard(board entity.Board, status entity.Status) [][]Cell {
	var win entity.WinResult
	if status.IsWon() {
		win = entity.WinResult{Winner: status.Mark, Line: status.Line}
	}

	rows := make([][]Cell, 0, entity.BoardSide)
	for row := range entity.BoardSide {
		cells := make([]Cell, 0, entity.BoardSide)
		for column := range entity.BoardSide {
			index := row*entity.BoardSide + column
			cells = append(cells, Cell{
				Index:     index,
				Row:       row,
				Column:    column,
				Mark:      board[index],
				Highlight: win.Contains(index),
			})
		}
		rows = append(rows, cells)
	}

	return rows
}

func renderMoves(session *tictactoe.Session) []Move {
	entries := session.OrderedHistoryView()

	moves := make([]Move, 0, len(entries))
	for _, entry := range entries {
		moves = append(moves, Move{
			Step:    entry.Step,
			Label:   Label(entry),
			Current: entry.Step == session.CurrentStep(),
		})
	}

	return moves
}

// Label - describes a history entry, e.g. "Go to move #3, position(0, 1), player(X)".
func Label(entry tictactoe.HistoryEntry) string {
	if entry.Move.IsStart() {
		return startLabel
	}

	row, column := entity.Position(*entry.Move.Position)

	return fmt.Sprintf(moveLabelFormat, entry.Step, row, column, entry.Move.Player)
}

func orderToggleLabel(reversed bool) string {
	if reversed {
		return normalOrderLabel
	}

	return reverseLabel
}
