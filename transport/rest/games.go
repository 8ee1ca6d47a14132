package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

const maxBodyBytes = 1 << 10

var (
	errCellRequired = errors.New("cell is required")
	errStepRequired = errors.New("step is required")
)

type moveRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Step *int `json:"step"`
}

type gameResponse struct {
	ID    string     `json:"id"`
	Game  *view.Game `json:"game,omitempty"`
	Error string     `json:"error,omitempty"`
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	id, session, err := that.games.NewGame(r.Context())
	if err != nil {
		that.writeError(w, r, "", err)
		return
	}

	that.writeGame(w, http.StatusCreated, id, session, nil)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := that.games.GetGame(r.Context(), id)
	if err != nil {
		that.writeError(w, r, id, err)
		return
	}

	that.writeGame(w, http.StatusOK, id, session, nil)
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req moveRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, gameResponse{ID: id, Error: "invalid request body"})
		return
	}

	if req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, gameResponse{ID: id, Error: errCellRequired.Error()})
		return
	}

	session, err := that.games.ApplyMove(r.Context(), id, *req.Cell)
	if err != nil {
		if apperror.IsRejection(err) && session != nil {
			that.writeGame(w, http.StatusConflict, id, session, err)
			return
		}

		that.writeError(w, r, id, err)
		return
	}

	that.writeGame(w, http.StatusOK, id, session, nil)
}

func (that *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req jumpRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, gameResponse{ID: id, Error: "invalid request body"})
		return
	}

	if req.Step == nil {
		that.writeJSON(w, http.StatusBadRequest, gameResponse{ID: id, Error: errStepRequired.Error()})
		return
	}

	session, err := that.games.JumpTo(r.Context(), id, *req.Step)
	if err != nil {
		that.writeError(w, r, id, err)
		return
	}

	that.writeGame(w, http.StatusOK, id, session, nil)
}

func (that *Server) handleToggleOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := that.games.ToggleHistoryOrder(r.Context(), id)
	if err != nil {
		that.writeError(w, r, id, err)
		return
	}

	that.writeGame(w, http.StatusOK, id, session, nil)
}

func (that *Server) handleResetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := that.games.ResetGame(r.Context(), id); err != nil {
		that.writeError(w, r, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody - reads at most maxBodyBytes of JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	return json.NewDecoder(r.Body).Decode(v)
}

func (that *Server) writeGame(w http.ResponseWriter, code int, id string, session *tictactoe.Session, err error) {
	game := view.Render(session)
	response := gameResponse{ID: id, Game: &game}

	if err != nil {
		response.Error = err.Error()
	}

	that.writeJSON(w, code, response)
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, id string, err error) {
	code := statusCode(err)

	if code == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		that.writeJSON(w, code, gameResponse{ID: id, Error: http.StatusText(code)})
		return
	}

	that.writeJSON(w, code, gameResponse{ID: id, Error: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	case apperror.IsRejection(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, code int, payload gameResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
