package engine

import (
	"uttt/experiments/metrics"
	"uttt/game"
)

type Engine interface {
	// Run plays a game till it is decided
	Run() (winner game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
