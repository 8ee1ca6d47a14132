package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type memoryGame struct {
	snapshot  tictactoe.Snapshot
	expiresAt time.Time
}

type memGame struct {
	mu    sync.Mutex
	games map[string]memoryGame
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryGameRepository - keeps sessions in process memory with the same expiry rules as the redis store.
// A zero ttl keeps games until they are deleted.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return newMemoryGameRepository(ttl, time.Now)
}

func newMemoryGameRepository(ttl time.Duration, now func() time.Time) *memGame {
	return &memGame{
		games: make(map[string]memoryGame),
		ttl:   ttl,
		now:   now,
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, id string, session *tictactoe.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sweep()

	game := memoryGame{snapshot: session.Snapshot()}
	if that.ttl > 0 {
		game.expiresAt = that.now().Add(that.ttl)
	}

	that.games[id] = game

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*tictactoe.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.lookup(id)
	if !ok {
		return nil, ErrGameNotFound
	}

	return tictactoe.Restore(game.snapshot)
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func (that *memGame) Purge(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	clear(that.games)

	return nil
}

// sweep - must be called with mu held; drops every expired game.
func (that *memGame) sweep() {
	if that.ttl <= 0 {
		return
	}

	now := that.now()
	for id, game := range that.games {
		if !now.Before(game.expiresAt) {
			delete(that.games, id)
		}
	}
}

// lookup - must be called with mu held; drops the game if it has expired.
func (that *memGame) lookup(id string) (memoryGame, bool) {
	game, ok := that.games[id]
	if !ok {
		return memoryGame{}, false
	}

	if !game.expiresAt.IsZero() && !that.now().Before(game.expiresAt) {
		delete(that.games, id)
		return memoryGame{}, false
	}

	return game, true
}
