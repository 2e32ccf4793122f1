package experiments

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"uttt/engine"
	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/meta"
	"uttt/searcher"
	"uttt/searcher/agent"
)

// OutputDir is the directory experiment results are written under.
const OutputDir = "experiments"

// depthConfigs holds one agent per search depth up to the default depth.
var depthConfigs = lo.Map(lo.RangeFrom(1, meta.DEPTH), func(depth int, i int) metrics.AgentConfig {
	return metrics.AgentConfig{ID: i + 1, Depth: depth}
})

// RunDepthExperiment pairs every depth against a depth-1 baseline.
func RunDepthExperiment(ctx context.Context) error {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1}
	matchUps := lo.Map(depthConfigs, func(config metrics.AgentConfig, _ int) [2]metrics.AgentConfig {
		return [2]metrics.AgentConfig{baseline, config}
	})

	return runExperiment(ctx, OutputDir, "depth_to_strength", append(depthConfigs, baseline), matchUps, meta.NUM_GAMES)
}

// RunThroughputExperiment pairs every depth against itself so that both
// sides search trees of similar size.
func RunThroughputExperiment(ctx context.Context) error {
	matchUps := lo.Map(depthConfigs, func(config metrics.AgentConfig, _ int) [2]metrics.AgentConfig {
		return [2]metrics.AgentConfig{config, config}
	})

	return runExperiment(ctx, OutputDir, "depth_to_throughput", depthConfigs, matchUps, 2)
}

type gameResult struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

func runExperiment(ctx context.Context, root, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, numGames int) error {
	log.Info().Msgf("starting %s experiment...", name)

	results := make([]gameResult, len(matchUps)*numGames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for mi, matchUp := range matchUps {
		mi, matchUp := mi, matchUp
		for i := 0; i < numGames; i++ {
			i := i
			id := mi*numGames + i + 1
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				// Alternate the starting player within a matchup
				starter := game.Player(i % 2)
				winner, gameMetric, moveMetrics, err := runGame(matchUp, starter, uint64(id))
				if err != nil {
					return fmt.Errorf("failed to run game %d: %w", id, err)
				}

				results[id-1] = gameResult{
					game: metrics.GameRecord{
						ID:         id,
						Agent1:     matchUp[0].ID,
						Agent2:     matchUp[1].ID,
						GameMetric: gameMetric,
					},
					moves: lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
						return metrics.MoveRecord{Game: id, MoveMetric: mm}
					}),
				}
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, numGames, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := lo.Map(results, func(r gameResult, _ int) metrics.GameRecord { return r.game })
	moveRecords := lo.FlatMap(results, func(r gameResult, _ int) []metrics.MoveRecord { return r.moves })
	return writeResults(root, name, configs, gameRecords, moveRecords)
}

func writeResults(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays a single game between config1 as X and config2 as O.
func runGame(matchUp [2]metrics.AgentConfig, starter game.Player, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	var agents [2]agent.Agent
	for p, config := range matchUp {
		s, err := createSearcher(config)
		if err != nil {
			return game.Ongoing, metrics.GameMetric{}, nil, err
		}
		agents[p] = agent.NewExplorationAgent(s, meta.EPSILON, seed<<1|uint64(p))
	}
	e := engine.NewLocalEngine(agents, starter)

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func createSearcher(config metrics.AgentConfig) (*searcher.Searcher, error) {
	if config.Depth < 1 || config.Depth > searcher.DepthLimit {
		return nil, fmt.Errorf("agent %d: depth %d outside [1, %d]", config.ID, config.Depth, searcher.DepthLimit)
	}
	return searcher.NewSearcher(searcher.WithDepth(config.Depth), searcher.WithMetrics()), nil
}
