package apperror

import "errors"

var (
	ErrInvalidAction    = errors.New("invalid action")
	ErrNoLegalMoves     = errors.New("no legal moves")
	ErrGameFinished     = errors.New("game is already finished")
	ErrUnreachableBoard = errors.New("board is not reachable by legal play")
)
