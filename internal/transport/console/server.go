package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type match interface {
	ID() string
	Board() entity.Board
	Turn() entity.Cell
	IsBotTurn() bool
	IsFinished() bool
	Winner() (entity.Cell, bool)
	Outcome() entity.Outcome

	MakeTurn(action entity.Action) error
	PlayBotTurn(ctx context.Context) (entity.Action, error)
}

// Server runs one match as a turn-based text dialogue over a reader and a writer.
type Server struct {
	logger *slog.Logger
	match  match

	scanner *bufio.Scanner
	writer  io.Writer
}

func New(logger *slog.Logger, match match, reader io.Reader, writer io.Writer) *Server {
	return &Server{
		logger:  logger.With("component", "console", "match", match.ID()),
		match:   match,
		scanner: bufio.NewScanner(reader),
		writer:  writer,
	}
}

// Start - plays the match until it is over and returns its outcome.
func (that *Server) Start(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "Start")
	log.Info("match started")

	that.println("Welcome to Tic Tac Toe!")
	that.printBoard()

	for !that.match.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.match.Outcome(), fmt.Errorf("match interrupted: %w", err)
		}

		if that.match.IsBotTurn() {
			if err := that.playBotTurn(ctx); err != nil {
				return that.match.Outcome(), err
			}

			continue
		}

		if err := that.playHumanTurn(); err != nil {
			return that.match.Outcome(), err
		}
	}

	that.announceResult()
	log.Info("match over", "outcome", that.match.Outcome().String())

	return that.match.Outcome(), nil
}

func (that *Server) playBotTurn(ctx context.Context) error {
	mark := that.match.Turn()

	action, err := that.match.PlayBotTurn(ctx)
	if err != nil {
		return fmt.Errorf("engine turn failed: %w", err)
	}

	that.printf("Player %s (engine) plays %s.\n", mark, action)
	that.printBoard()

	return nil
}

// playHumanTurn - prompts until the player enters a legal action. Invalid moves are
// reported and asked again; only a closed input ends the turn with an error.
func (that *Server) playHumanTurn() error {
	mark := that.match.Turn()

	for {
		that.printf("Player %s, it's your turn.\n", mark)

		row, err := that.readNumber("Enter the row number (0-2): ")
		if err != nil {
			return err
		}

		col, err := that.readNumber("Enter the column number (0-2): ")
		if err != nil {
			return err
		}

		err = that.match.MakeTurn(entity.Action{Row: row, Col: col})
		if errors.Is(err, apperror.ErrInvalidAction) {
			that.println("Invalid move. Try again.")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		that.printBoard()

		return nil
	}
}

func (that *Server) readNumber(prompt string) (int, error) {
	for {
		that.printf("%s", prompt)

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}

			return 0, ErrInputClosed
		}

		number, err := strconv.Atoi(strings.TrimSpace(that.scanner.Text()))
		if err != nil {
			that.println("Invalid input. Please enter a number.")
			continue
		}

		return number, nil
	}
}

func (that *Server) announceResult() {
	winner, ok := that.match.Winner()
	if !ok {
		that.println("The game ended in a tie.")
		return
	}

	that.printf("Player %s won the game!\n", winner)
}

func (that *Server) printBoard() {
	that.printf("%s", RenderBoard(that.match.Board()))
}

func (that *Server) println(line string) {
	that.printf("%s\n", line)
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.writer, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
