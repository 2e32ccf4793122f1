package agent

import (
	"golang.org/x/exp/rand"

	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/searcher"
)

type explorationAgent struct {
	searcher *searcher.Searcher
	epsilon  float64
	rng      *rand.Rand
}

// NewExplorationAgent returns an agent that plays a random legal move with
// probability epsilon and the searched best move otherwise. Fixed-depth
// search is deterministic, so self-play needs this to vary its games.
func NewExplorationAgent(s *searcher.Searcher, epsilon float64, seed uint64) Agent {
	return &explorationAgent{
		searcher: s,
		epsilon:  epsilon,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *explorationAgent) FindMove(board game.Board) (game.Move, int, metrics.SearchMetric) {
	if a.rng.Float64() < a.epsilon {
		moves := board.LegalMoves()
		if len(moves) > 0 {
			return moves[a.rng.Intn(len(moves))], 0, metrics.SearchMetric{}
		}
	}
	result, metric := a.searcher.Search(&board)
	return result.Move, result.Score, metric
}
