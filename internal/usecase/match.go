package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type botService interface {
	ChooseAction(ctx context.Context, board entity.Board) (entity.Action, error)
}

// MatchManager drives a single local match. It owns the current board value and the
// seats; a seat without a bot is played by a human through MakeTurn.
type MatchManager struct {
	logger *slog.Logger

	id    string
	board entity.Board
	bots  map[entity.Cell]botService
}

// NewMatchManager - starts a match from board. botX and botO may be nil for human seats.
func NewMatchManager(logger *slog.Logger, board entity.Board, botX, botO botService) (*MatchManager, error) {
	if err := tictactoe.ValidateReachable(board); err != nil {
		return nil, fmt.Errorf("invalid starting board: %w", err)
	}

	bots := make(map[entity.Cell]botService, 2)
	if botX != nil {
		bots[entity.PlayerX] = botX
	}
	if botO != nil {
		bots[entity.PlayerO] = botO
	}

	id := uuid.NewString()

	return &MatchManager{
		logger: logger.With("component", "match", "match", id),
		id:     id,
		board:  board,
		bots:   bots,
	}, nil
}

func (that *MatchManager) ID() string {
	return that.id
}

func (that *MatchManager) Board() entity.Board {
	return that.board
}

func (that *MatchManager) Turn() entity.Cell {
	return tictactoe.CurrentPlayer(that.board)
}

func (that *MatchManager) IsBotTurn() bool {
	if that.IsFinished() {
		return false
	}

	_, ok := that.bots[that.Turn()]
	return ok
}

func (that *MatchManager) IsFinished() bool {
	return tictactoe.IsTerminal(that.board)
}

func (that *MatchManager) Outcome() entity.Outcome {
	return tictactoe.Result(that.board)
}

func (that *MatchManager) Winner() (entity.Cell, bool) {
	return tictactoe.Winner(that.board)
}

// MakeTurn - plays a human move for the player to move. Actions outside LegalActions are
// rejected with apperror.ErrInvalidAction and leave the match unchanged.
func (that *MatchManager) MakeTurn(action entity.Action) error {
	log := that.logger.With("method", "MakeTurn", "player", that.Turn().String(), "action", action.String())

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !slices.Contains(tictactoe.LegalActions(that.board), action) {
		log.Debug("rejected action")
		return fmt.Errorf("%w: %s is not a legal action", apperror.ErrInvalidAction, action)
	}

	if err := that.apply(action); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("turn made", "board", that.board.String())

	return nil
}

// PlayBotTurn - lets the bot on the current seat choose and play its action.
func (that *MatchManager) PlayBotTurn(ctx context.Context) (entity.Action, error) {
	if that.IsFinished() {
		return entity.Action{}, apperror.ErrGameFinished
	}

	mark := that.Turn()
	log := that.logger.With("method", "PlayBotTurn", "player", mark.String())

	bot, ok := that.bots[mark]
	if !ok {
		return entity.Action{}, fmt.Errorf("%w: seat %s is played by a human", apperror.ErrInvalidAction, mark)
	}

	action, err := bot.ChooseAction(ctx, that.board)
	if err != nil {
		return entity.Action{}, fmt.Errorf("bot failed to choose action: %w", err)
	}

	if err = that.apply(action); err != nil {
		return entity.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot turn made", "action", action.String(), "board", that.board.String())

	return action, nil
}

func (that *MatchManager) apply(action entity.Action) error {
	next, err := tictactoe.ApplyAction(that.board, action)
	if err != nil {
		return err
	}

	that.board = next

	if that.IsFinished() {
		that.logger.Info("match finished", "outcome", that.Outcome().String(), "board", that.board.String())
	}

	return nil
}
