package engine

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/meta"
	"uttt/searcher/agent"
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	Board  game.Board
	Agents [2]agent.Agent // indexed by player
}

// NewLocalEngine seats agents[0] as X and agents[1] as O, with starter
// moving first.
func NewLocalEngine(agents [2]agent.Agent, starter game.Player) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	board := game.NewBoard()
	board.Turn = starter
	return &LocalEngine{Board: board, Agents: agents}
}

// Run executes the entire game loop until the game is decided.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.Turn,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("player %v is starting", e.Board.Turn)

	var moveMetrics []metrics.MoveMetric
	for step := 1; !e.Board.IsOver() && step <= meta.MAX_TURNS; step++ {
		player := e.Board.Turn
		move, score, searchMetric := e.Agents[player].FindMove(e.Board)

		legal := e.Board.LegalMoves()
		if !lo.Contains(legal, move) {
			log.Warn().Msgf("player %v returned illegal move %v, falling back to %v", player, move, legal[0])
			move = legal[0]
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			Score:        score,
			SearchMetric: searchMetric,
		})
		e.Board.Play(move)
	}

	winner := e.Board.Outcome()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)

	return winner, gameMetric, moveMetrics
}
