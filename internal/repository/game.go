package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	gameKeyPrefix = "game:"
	scanBatch     = 100
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, id string, session *tictactoe.Session) error
	GetByID(ctx context.Context, id string) (*tictactoe.Session, error)
	DeleteByID(ctx context.Context, id string) error
	Purge(ctx context.Context) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores sessions as JSON snapshots under "game:<id>", each key expiring after ttl.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, id string, session *tictactoe.Session) error {
	gameJSON, err := json.Marshal(session.Snapshot())
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKeyPrefix+id, gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*tictactoe.Session, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var snapshot tictactoe.Snapshot
	if err = json.Unmarshal(response, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	session, err := tictactoe.Restore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return session, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}

// Purge - removes every stored game, so nothing outlives a restart.
func (that *dbGame) Purge(ctx context.Context) error {
	iter := that.client.Scan(ctx, 0, gameKeyPrefix+"*", scanBatch).Iterator()

	for iter.Next(ctx) {
		if err := that.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan games: %w", err)
	}

	return nil
}
