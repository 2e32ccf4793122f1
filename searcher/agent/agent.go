package agent

import (
	"uttt/experiments/metrics"
	"uttt/game"
)

type Agent interface {
	// FindMove returns the move to play from the board and performance
	// metrics (if collected) from the search
	FindMove(board game.Board) (game.Move, int, metrics.SearchMetric)
}
