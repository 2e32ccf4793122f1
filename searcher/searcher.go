package searcher

import (
	"fmt"

	"uttt/experiments/metrics"
	"uttt/game"
)

type Option func(s *Searcher)

// Result is the outcome of a search from the side to move. Found is false
// when the position has no legal move.
type Result struct {
	Move  game.Move
	Score int
	Found bool
}

// Searcher runs fixed-depth negamax with alpha-beta pruning. It owns one
// move buffer per depth and must not be used by two goroutines at once.
type Searcher struct {
	depth   int
	lists   []game.MoveList
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:   MaxDepth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.depth > DepthLimit {
		panic(fmt.Sprintf("search depth %d exceeds limit %d", s.depth, DepthLimit))
	}
	s.lists = make([]game.MoveList, s.depth)
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Search finds the best move for the side to move. The board is mutated
// during the search and restored before returning.
func (s *Searcher) Search(b *game.Board) (Result, metrics.SearchMetric) {
	s.metrics.Start(s.depth)
	move, score, found := s.negamax(b, 0, -Infinity, Infinity)
	return Result{Move: move, Score: score, Found: found}, s.metrics.Complete()
}
