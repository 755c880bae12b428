package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

func newServer(t *testing.T, input string, botX, botO service.BotService) (*Server, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	match, err := usecase.NewMatchManager(logger, tictactoe.Initial(), botX, botO)
	require.NoError(t, err)

	output := &bytes.Buffer{}

	return New(logger, match, strings.NewReader(input), output), output
}

func newHardBot(t *testing.T) service.BotService {
	t.Helper()

	bot, err := service.NewBotService(service.DifficultyHard, false)
	require.NoError(t, err)

	return bot
}

// moves turns "r c" pairs into the line-per-number input the console expects.
func moves(pairs ...string) string {
	var sb strings.Builder
	for _, pair := range pairs {
		for _, field := range strings.Fields(pair) {
			sb.WriteString(field + "\n")
		}
	}

	return sb.String()
}

func TestServer_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Human players, X wins on the top row", func(t *testing.T) {
		// Given: two humans playing X into the top row
		server, output := newServer(t, moves("0 0", "1 0", "0 1", "1 1", "0 2"), nil, nil)

		// When: the match is played
		outcome, err := server.Start(ctx)

		// Then: X wins and it is announced
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinnerX, outcome)
		assert.True(t, strings.HasPrefix(output.String(), "Welcome to Tic Tac Toe!\n"+ruleLine+"\n"))
		assert.Contains(t, output.String(), "Player X, it's your turn.\nEnter the row number (0-2): Enter the column number (0-2): ")
		assert.Contains(t, output.String(), "Player O, it's your turn.")
		assert.True(t, strings.HasSuffix(output.String(), "Player X won the game!\n"))
	})

	t.Run("Human players, full board is a tie", func(t *testing.T) {
		server, output := newServer(t, moves("0 0", "0 1", "0 2", "1 1", "1 0", "1 2", "2 1", "2 0", "2 2"), nil, nil)

		outcome, err := server.Start(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeDraw, outcome)
		assert.True(t, strings.HasSuffix(output.String(), "The game ended in a tie.\n"))
	})

	t.Run("Invalid input and invalid moves are asked again", func(t *testing.T) {
		// Given: non-numeric input, an out of range cell and an occupied cell along the way
		input := moves("x 0", "0", "1 1", "1 1", "5 0", "1 0", "0 1", "2 0", "0 2")
		server, output := newServer(t, input, nil, nil)

		// When: the match is played
		outcome, err := server.Start(ctx)

		// Then: the bad entries are reported and the match still finishes
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinnerX, outcome)
		assert.Equal(t, 1, strings.Count(output.String(), "Invalid input. Please enter a number."))
		assert.Equal(t, 2, strings.Count(output.String(), "Invalid move. Try again."))
	})

	t.Run("Returns ErrInputClosed when input ends mid-match", func(t *testing.T) {
		server, _ := newServer(t, moves("1 1"), nil, nil)

		outcome, err := server.Start(ctx)

		require.ErrorIs(t, err, ErrInputClosed)
		assert.Equal(t, entity.OutcomeInProgress, outcome)
	})

	t.Run("Engine against engine draws", func(t *testing.T) {
		// Given: both seats taken by the hard bot and no human input at all
		server, output := newServer(t, "", newHardBot(t), newHardBot(t))

		// When: the match is played
		outcome, err := server.Start(ctx)

		// Then: it ends in a draw, starting from the corner
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeDraw, outcome)
		assert.Contains(t, output.String(), "Player X (engine) plays (0, 0).")
		assert.Contains(t, output.String(), "Player O (engine) plays (1, 1).")
		assert.NotContains(t, output.String(), "it's your turn")
	})

	t.Run("Human against engine", func(t *testing.T) {
		// Given: X opens in a corner and then keeps trying cells in row-major order
		input := moves("0 0", "0 1", "0 2", "1 0", "1 2", "2 0", "2 1", "2 2")
		server, output := newServer(t, input, nil, newHardBot(t))

		// When: the match is played
		outcome, err := server.Start(ctx)

		// Then: the engine answers every move and never loses
		require.NoError(t, err)
		assert.NotEqual(t, entity.OutcomeWinnerX, outcome)
		assert.Contains(t, output.String(), "Player O (engine) plays (1, 1).")
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		server, _ := newServer(t, moves("1 1"), nil, nil)

		_, err := server.Start(canceled)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRenderBoard(t *testing.T) {
	// Given: X in the top left corner and O in the center
	board := entity.Board{
		entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
	}

	// Then: empty cells are drawn blank
	expected := "-------------------\n" +
		"| X |   |   |\n" +
		"-------------------\n" +
		"|   | O |   |\n" +
		"-------------------\n" +
		"|   |   |   |\n" +
		"-------------------\n"

	assert.Equal(t, expected, RenderBoard(board))
}
