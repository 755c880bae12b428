package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	DifficultyEasy = "easy"
	DifficultyHard = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown bot difficulty")

// BotService picks the action for an engine-controlled seat.
type BotService interface {
	ChooseAction(ctx context.Context, board entity.Board) (entity.Action, error)
}

// NewBotService - returns the bot for the given difficulty. A hard bot searches the whole
// game tree, optionally one goroutine per top-level action; an easy bot plays at random.
func NewBotService(difficulty string, parallel bool) (BotService, error) {
	switch difficulty {
	case DifficultyHard:
		return &minimaxBot{parallel: parallel}, nil
	case DifficultyEasy:
		return &randomBot{intn: rand.Intn}, nil //nolint: gosec // it's ok
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}

type minimaxBot struct {
	parallel bool
}

func (that *minimaxBot) ChooseAction(ctx context.Context, board entity.Board) (entity.Action, error) {
	var (
		action entity.Action
		err    error
	)

	if that.parallel {
		action, err = minimax.OptimalActionParallel(ctx, board)
	} else {
		action, err = minimax.OptimalAction(board)
	}

	if err != nil {
		return entity.Action{}, fmt.Errorf("minimax bot failed to choose action: %w", err)
	}

	return action, nil
}

type randomBot struct {
	intn func(n int) int
}

func (that *randomBot) ChooseAction(_ context.Context, board entity.Board) (entity.Action, error) {
	if tictactoe.IsTerminal(board) {
		return entity.Action{}, fmt.Errorf("%w: board %s is terminal", apperror.ErrNoLegalMoves, board)
	}

	availableActions := tictactoe.LegalActions(board)

	return availableActions[that.intn(len(availableActions))], nil
}
