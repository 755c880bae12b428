package tictactoe

import (
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// WinCombos lists the eight winning lines: rows, then columns, then the two diagonals.
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

// Initial - returns the empty starting board.
func Initial() entity.Board {
	return entity.Board{}
}

// CurrentPlayer - returns the mark that moves next. X always opens, so X is to move
// whenever both marks have been placed equally often.
func CurrentPlayer(board entity.Board) entity.Cell {
	if board.Count(entity.PlayerX) == board.Count(entity.PlayerO) {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// LegalActions - returns one action per empty cell in row-major order.
func LegalActions(board entity.Board) []entity.Action {
	actions := make([]entity.Action, 0, entity.BoardSize)
	for i, cell := range board {
		if cell == entity.EmptyCell {
			actions = append(actions, entity.ActionFromIndex(i))
		}
	}

	return actions
}

// ApplyAction - returns the board after the current player marks the cell at action.
func ApplyAction(board entity.Board, action entity.Action) (entity.Board, error) {
	if err := validateAction(board, action); err != nil {
		return board, err
	}

	if IsTerminal(board) {
		return board, fmt.Errorf("%w: board %s is terminal", apperror.ErrNoLegalMoves, board)
	}

	return board.With(action, CurrentPlayer(board)), nil
}

// validateAction - checks that the action is on the board and targets an empty cell.
func validateAction(board entity.Board, action entity.Action) error {
	if !action.InBounds() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidAction, action)
	}

	if board.At(action) != entity.EmptyCell {
		return fmt.Errorf("%w: cell %s is occupied", apperror.ErrInvalidAction, action)
	}

	return nil
}

// Winner - returns the mark holding a full line, if any.
func Winner(board entity.Board) (entity.Cell, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return entity.EmptyCell, false
}

func IsTerminal(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return board.Count(entity.EmptyCell) == 0
}

// Utility - returns +1 if X has won, -1 if O has won and 0 otherwise.
func Utility(board entity.Board) int {
	switch winner, _ := Winner(board); winner {
	case entity.PlayerX:
		return 1
	case entity.PlayerO:
		return -1
	default:
		return 0
	}
}

func Result(board entity.Board) entity.Outcome {
	switch winner, _ := Winner(board); winner {
	case entity.PlayerX:
		return entity.OutcomeWinnerX
	case entity.PlayerO:
		return entity.OutcomeWinnerO
	}

	if board.Count(entity.EmptyCell) == 0 {
		return entity.OutcomeDraw
	}

	return entity.OutcomeInProgress
}

// Successors yields every legal action together with the board it produces, in the
// order of LegalActions. Nothing is yielded for a terminal board.
func Successors(board entity.Board) iter.Seq2[entity.Action, entity.Board] {
	return func(yield func(entity.Action, entity.Board) bool) {
		if IsTerminal(board) {
			return
		}

		mark := CurrentPlayer(board)
		for _, action := range LegalActions(board) {
			if !yield(action, board.With(action, mark)) {
				return
			}
		}
	}
}

// ValidateReachable - checks the move count invariant of boards produced by legal play.
func ValidateReachable(board entity.Board) error {
	diff := board.Count(entity.PlayerX) - board.Count(entity.PlayerO)
	if diff < 0 || diff > 1 {
		return fmt.Errorf("%w: board %s has X-O count difference %d", apperror.ErrUnreachableBoard, board, diff)
	}

	return nil
}
