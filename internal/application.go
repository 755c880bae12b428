package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs one match on the standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.With("component", "app").Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	_, err := Play(ctx, logger, conf, os.Stdin, os.Stdout)

	return err
}

// Play - wires the seats described by conf into a match and plays it over reader and writer.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, reader io.Reader, writer io.Writer) (entity.Outcome, error) {
	log := logger.With("component", "app")

	botX, err := newSeat(conf.PlayerX, conf.Engine)
	if err != nil {
		return entity.OutcomeInProgress, fmt.Errorf("could not set up player X: %w", err)
	}

	botO, err := newSeat(conf.PlayerO, conf.Engine)
	if err != nil {
		return entity.OutcomeInProgress, fmt.Errorf("could not set up player O: %w", err)
	}

	match, err := usecase.NewMatchManager(logger, tictactoe.Initial(), botX, botO)
	if err != nil {
		return entity.OutcomeInProgress, fmt.Errorf("could not create match: %w", err)
	}

	server := console.New(logger, match, reader, writer)

	type result struct {
		outcome entity.Outcome
		err     error
	}

	// the console blocks on reads, so it runs beside the context watch
	resultCh := make(chan result, 1)
	go func() {
		log.Info("Starting console match", "match", match.ID(), "player-x", conf.PlayerX, "player-o", conf.PlayerO)
		outcome, playErr := server.Start(ctx)
		resultCh <- result{outcome: outcome, err: playErr}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return res.outcome, fmt.Errorf("console match error: %w", res.err)
		}

		return res.outcome, nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return entity.OutcomeInProgress, nil
	}
}

// newSeat - returns the bot for an engine seat and nil for a human one.
func newSeat(seat string, engine config.Engine) (service.BotService, error) {
	if seat != config.SeatEngine {
		return nil, nil
	}

	bot, err := service.NewBotService(engine.Difficulty, engine.Parallel)
	if err != nil {
		return nil, fmt.Errorf("could not create bot: %w", err)
	}

	return bot, nil
}
