package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const ruleLine = "-------------------"

// RenderBoard - draws the board between rule lines, leaving empty cells blank.
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString(ruleLine + "\n")
	for row := range entity.BoardSide {
		sb.WriteString("|")
		for col := range entity.BoardSide {
			mark := " "
			if cell := board.At(entity.Action{Row: row, Col: col}); cell != entity.EmptyCell {
				mark = cell.String()
			}
			sb.WriteString(" " + mark + " |")
		}
		sb.WriteString("\n" + ruleLine + "\n")
	}

	return sb.String()
}
