package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"uttt/game"
	"uttt/searcher"
)

type FindMoveRequest struct {
	Board game.Board `json:"board"`
}

type FindMoveResponse struct {
	Move  game.Move `json:"move"`
	Row   int       `json:"row"`
	Col   int       `json:"col"`
	Score int       `json:"score"`
	Found bool      `json:"found"`
}

var errGameOver = errors.New("game is already over")

// Server answers move requests with a single agent. Requests are
// serialised because an agent owns one searcher.
type Server struct {
	mu    sync.Mutex
	agent Agent
}

func NewServer(agent Agent) *Server {
	return &Server{agent: agent}
}

// Router returns the HTTP handler of the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/findmove", s.handleFindMove)
	return r
}

// StartAgentServer starts an agent HTTP server on the given address.
func StartAgentServer(addr string, depth int) error {
	log.Info().Str("addr", addr).Int("depth", depth).Msg("starting agent server")

	s := NewServer(NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(depth), searcher.WithMetrics())))
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var payload FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := payload.Board.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Board.IsOver() {
		http.Error(w, errGameOver.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	move, score, metric := s.agent.FindMove(payload.Board)
	s.mu.Unlock()

	log.Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Stringer("move", move).
		Int("score", score).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("found move")

	resp := FindMoveResponse{Move: move, Score: score, Found: move != game.NoMove}
	if resp.Found {
		resp.Row, resp.Col = move.RowCol()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
