package gamemaster

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"uttt/game"
	"uttt/meta"
	"uttt/searcher/agent"
)

// EngineHTTP plays a game between agents reachable over HTTP. Moves are
// refereed by a local engine.
type EngineHTTP struct {
	Board     game.Board
	AgentURLs [2]string
	referee   *localEngine
	client    *http.Client
}

func LocalEngineHTTP(urls [2]string) *EngineHTTP {
	return &EngineHTTP{
		Board:     game.NewBoard(),
		AgentURLs: urls,
		referee:   NewLocalEngine(),
		client:    http.DefaultClient,
	}
}

// Run plays until the game is over and returns the outcome and the moves
// played.
func (e *EngineHTTP) Run() (game.Outcome, []game.Move, error) {
	board, getUpdate := e.referee.Init()
	e.Board = board

	var played []game.Move
	for turn := 0; !e.Board.IsOver() && turn < meta.MAX_TURNS; turn++ {
		player := e.Board.Turn

		move, err := e.requestMoveFromAgent(e.AgentURLs[player])
		if err != nil {
			return game.Ongoing, played, fmt.Errorf("failed to get move for player %v: %w", player, err)
		}
		if err := e.referee.Play(move); err != nil {
			return game.Ongoing, played, fmt.Errorf("agent %s: %w", e.AgentURLs[player], err)
		}

		u, ok := getUpdate()
		if !ok {
			return game.Ongoing, played, fmt.Errorf("no update after move %v", move)
		}
		log.Info().Msgf("player %v chose move %v, state %x", player, u.Move, u.Hash)
		e.Board = u.Board
		played = append(played, move)
	}

	outcome := e.Board.Outcome()
	log.Info().Msgf("game ended after %d moves, winner: %s", len(played), outcome)
	return outcome, played, nil
}

// requestMoveFromAgent encodes the current board in JSON and posts it to
// /findmove on the agent side
func (e *EngineHTTP) requestMoveFromAgent(url string) (game.Move, error) {
	bodyBytes, err := json.Marshal(agent.FindMoveRequest{Board: e.Board})
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to encode board: %w", err)
	}

	resp, err := e.client.Post(url+"/findmove", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to post board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.NoMove, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var answer agent.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return game.NoMove, fmt.Errorf("failed to decode move: %w", err)
	}
	return answer.Move, nil
}
