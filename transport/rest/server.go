package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	NewGame(ctx context.Context) (string, *tictactoe.Session, error)
	GetGame(ctx context.Context, id string) (*tictactoe.Session, error)
	ApplyMove(ctx context.Context, id string, cell int) (*tictactoe.Session, error)
	JumpTo(ctx context.Context, id string, step int) (*tictactoe.Session, error)
	ToggleHistoryOrder(ctx context.Context, id string) (*tictactoe.Session, error)
	ResetGame(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	games  gameUseCase
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

// Router - builds the HTTP routes of the game.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", that.handleNewGame)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", that.handleGetGame)
			r.Delete("/", that.handleResetGame)
			r.Post("/moves", that.handleMove)
			r.Post("/jump", that.handleJump)
			r.Post("/history/order", that.handleToggleOrder)
		})
	})

	return router
}

// Start - serves until ctx is canceled, then shuts the server down.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}
