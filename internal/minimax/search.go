// Package minimax computes game-theoretically optimal tic-tac-toe moves by searching the
// full game tree. X maximizes utility and O minimizes it.
//
// Candidate actions are visited in the row-major order of tictactoe.LegalActions and a
// candidate only replaces the current best when its value is strictly better, so among
// equally good actions the first one in that order is chosen.
package minimax

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// OptimalAction - returns the best action for the player to move.
func OptimalAction(board entity.Board) (entity.Action, error) {
	actions, err := candidates(board)
	if err != nil {
		return entity.Action{}, err
	}

	mark := tictactoe.CurrentPlayer(board)
	maximizing := mark == entity.PlayerX

	values := make([]int, len(actions))
	for i, action := range actions {
		values[i] = childValue(board.With(action, mark), maximizing)
	}

	return pick(actions, values, maximizing), nil
}

// OptimalActionParallel - same result as OptimalAction, but each top-level action is
// searched in its own goroutine.
func OptimalActionParallel(ctx context.Context, board entity.Board) (entity.Action, error) {
	actions, err := candidates(board)
	if err != nil {
		return entity.Action{}, err
	}

	mark := tictactoe.CurrentPlayer(board)
	maximizing := mark == entity.PlayerX

	values := make([]int, len(actions))
	group, ctx := errgroup.WithContext(ctx)
	for i, action := range actions {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			values[i] = childValue(board.With(action, mark), maximizing)
			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return entity.Action{}, fmt.Errorf("parallel search: %w", err)
	}

	return pick(actions, values, maximizing), nil
}

// Value - returns the minimax value of the board from X's point of view.
func Value(board entity.Board) int {
	if tictactoe.CurrentPlayer(board) == entity.PlayerX {
		return maxValue(board)
	}

	return minValue(board)
}

func candidates(board entity.Board) ([]entity.Action, error) {
	if tictactoe.IsTerminal(board) {
		return nil, fmt.Errorf("%w: board %s is terminal", apperror.ErrNoLegalMoves, board)
	}

	actions := tictactoe.LegalActions(board)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: board %s is full", apperror.ErrNoLegalMoves, board)
	}

	return actions, nil
}

// childValue scores a successor: after X moves O replies, so X's children are scored by
// minValue and O's children by maxValue.
func childValue(child entity.Board, maximizing bool) int {
	if maximizing {
		return minValue(child)
	}

	return maxValue(child)
}

func pick(actions []entity.Action, values []int, maximizing bool) entity.Action {
	best := actions[0]
	bestValue := values[0]
	for i := 1; i < len(actions); i++ {
		if (maximizing && values[i] > bestValue) || (!maximizing && values[i] < bestValue) {
			best = actions[i]
			bestValue = values[i]
		}
	}

	return best
}

func maxValue(board entity.Board) int {
	if tictactoe.IsTerminal(board) {
		return tictactoe.Utility(board)
	}

	value := math.MinInt
	for _, next := range tictactoe.Successors(board) {
		value = max(value, minValue(next))
	}

	return value
}

func minValue(board entity.Board) int {
	if tictactoe.IsTerminal(board) {
		return tictactoe.Utility(board)
	}

	value := math.MaxInt
	for _, next := range tictactoe.Successors(board) {
		value = min(value, maxValue(next))
	}

	return value
}
