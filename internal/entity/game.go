package entity

import (
	"fmt"
	"strings"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Cell is the content of one board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other mark. EmptyCell has no opponent and is returned as is.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Action - a move target given as zero-indexed row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func ActionFromIndex(index int) Action {
	return Action{Row: index / BoardSide, Col: index % BoardSide}
}

func (that Action) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSide && that.Col >= 0 && that.Col < BoardSide
}

// Index returns the row-major position of the action. Only meaningful when InBounds.
func (that Action) Index() int {
	return that.Row*BoardSide + that.Col
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is the 3x3 grid stored row-major. It is a value type: every copy is independent,
// so a Board handed to another function can never be changed behind the caller's back.
type Board [BoardSize]Cell

func (that Board) At(action Action) Cell {
	return that[action.Index()]
}

// With returns a copy of the board with the cell at action set to mark.
// It does not check bounds, occupancy or turn order; see tictactoe.ApplyAction.
func (that Board) With(action Action, mark Cell) Board {
	that[action.Index()] = mark
	return that
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

// String renders the board as three slash separated rows, e.g. "XO./.X./..O".
func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if i > 0 && i%BoardSide == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// Outcome is the state of a match derived from its board.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeWinnerX
	OutcomeWinnerO
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWinnerX:
		return "winner X"
	case OutcomeWinnerO:
		return "winner O"
	case OutcomeDraw:
		return "draw"
	default:
		return "in progress"
	}
}

func (that Outcome) IsFinished() bool {
	return that != OutcomeInProgress
}
