package agent

import (
	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/searcher"
)

type evaluationAgent struct {
	searcher *searcher.Searcher
}

// NewEvaluationAgent returns a new agent that always plays the searched
// best move.
func NewEvaluationAgent(s *searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(board game.Board) (game.Move, int, metrics.SearchMetric) {
	result, metric := a.searcher.Search(&board)
	return result.Move, result.Score, metric
}
