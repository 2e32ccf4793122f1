package agent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"uttt/game"
	"uttt/searcher"
)

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays the searched move", func(t *testing.T) {
		a := NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(1)))
		move, score, _ := a.FindMove(game.NewBoard())

		require.Equal(t, game.Move(0x44), move)
		require.Equal(t, 16, score)
	})

	t.Run("does not change the caller's board", func(t *testing.T) {
		b := game.NewBoard()
		b.Play(0x44)
		before := b

		NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(2))).FindMove(b)
		require.Equal(t, before, b)
	})
}

func TestExplorationAgent(t *testing.T) {
	t.Run("without exploration it matches the evaluation agent", func(t *testing.T) {
		a := NewExplorationAgent(searcher.NewSearcher(searcher.WithDepth(1)), 0, 1)
		move, _, _ := a.FindMove(game.NewBoard())
		require.Equal(t, game.Move(0x44), move)
	})

	t.Run("always exploring still plays legal moves", func(t *testing.T) {
		a := NewExplorationAgent(searcher.NewSearcher(searcher.WithDepth(1)), 1, 1)
		b := game.NewBoard()
		for i := 0; i < 20 && !b.IsOver(); i++ {
			move, _, _ := a.FindMove(b)
			require.Contains(t, b.LegalMoves(), move)
			b.Play(move)
		}
	})
}

func postBoard(t *testing.T, srv *httptest.Server, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/findmove", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer(t *testing.T) {
	srv := httptest.NewServer(NewServer(NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(1)))).Router())
	defer srv.Close()

	t.Run("answers with the best move and its coordinates", func(t *testing.T) {
		body, err := json.Marshal(FindMoveRequest{Board: game.NewBoard()})
		require.NoError(t, err)

		resp := postBoard(t, srv, body)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got FindMoveResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Equal(t, FindMoveResponse{Move: 0x44, Row: 4, Col: 4, Score: 16, Found: true}, got)
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		resp := postBoard(t, srv, []byte("{"))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects finished games", func(t *testing.T) {
		b := game.NewBoard()
		b.Outer[game.PlayerX] = 0b000000111
		b.Finished = 0b000000111
		b.Playable = 0b111111000
		body, err := json.Marshal(FindMoveRequest{Board: b})
		require.NoError(t, err)

		resp := postBoard(t, srv, body)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("rejects inconsistent boards", func(t *testing.T) {
		b := game.NewBoard()
		b.Cells[game.PlayerX][4] = 0x200
		body, err := json.Marshal(FindMoveRequest{Board: b})
		require.NoError(t, err)

		resp := postBoard(t, srv, body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects a won sub-board that is not finished", func(t *testing.T) {
		b := game.NewBoard()
		b.Cells[game.PlayerX][4] = 0b000000111
		b.Outer[game.PlayerX] = 1 << 4
		b.Playable = 1 << 4
		body, err := json.Marshal(FindMoveRequest{Board: b})
		require.NoError(t, err)

		resp := postBoard(t, srv, body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("answers pings", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
