package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, session *tictactoe.Session) error
	GetByID(ctx context.Context, id string) (*tictactoe.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - runs one session operation per call: load, apply, store.
// Calls on the same game ID within the process run one at a time.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	locks    *gameLocks
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		locks:    newGameLocks(),
	}
}

func (that *GameManager) NewGame(ctx context.Context) (string, *tictactoe.Session, error) {
	id := uuid.NewString()
	session := tictactoe.NewSession()

	if err := that.gameRepo.CreateOrUpdate(ctx, id, session); err != nil {
		return "", nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "method", "NewGame", "gameID", id)

	return id, session, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*tictactoe.Session, error) {
	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return session, nil
}

// ApplyMove - a rejected move returns the unchanged session together with the rejection.
func (that *GameManager) ApplyMove(ctx context.Context, id string, cell int) (*tictactoe.Session, error) {
	log := that.logger.With("method", "ApplyMove", "gameID", id, "cell", cell)

	defer that.locks.lock(id)()

	session, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	// Session.ApplyMove fails only with rejections
	if err = session.ApplyMove(cell); err != nil {
		log.Debug("move rejected", "reason", err)
		return session, err
	}

	if err = that.updateGame(ctx, id, session); err != nil {
		return nil, err
	}

	log.Info("move applied", "step", session.CurrentStep(), "status", session.Status().String())

	return session, nil
}

func (that *GameManager) JumpTo(ctx context.Context, id string, step int) (*tictactoe.Session, error) {
	defer that.locks.lock(id)()

	session, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = session.JumpTo(step); err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.updateGame(ctx, id, session); err != nil {
		return nil, err
	}

	that.logger.Debug("jumped to step", "method", "JumpTo", "gameID", id, "step", step)

	return session, nil
}

func (that *GameManager) ToggleHistoryOrder(ctx context.Context, id string) (*tictactoe.Session, error) {
	defer that.locks.lock(id)()

	session, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	session.ToggleHistoryOrder()

	if err = that.updateGame(ctx, id, session); err != nil {
		return nil, err
	}

	return session, nil
}

// ResetGame - discards the game.
func (that *GameManager) ResetGame(ctx context.Context, id string) error {
	defer that.locks.lock(id)()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "method", "ResetGame", "gameID", id)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, id string, session *tictactoe.Session) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, id, session); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
