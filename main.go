package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"uttt/engine"
	"uttt/experiments"
	"uttt/game"
	"uttt/gamemaster"
	"uttt/meta"
	"uttt/searcher"
	"uttt/searcher/agent"
)

func main() {
	mode := flag.String("mode", "selfplay", "one of selfplay, agent, master, experiment")
	depth := flag.Int("depth", meta.DEPTH, "search depth in plies")
	addr := flag.String("addr", ":8080", "listen address of the agent server")
	agentX := flag.String("x", "http://localhost:8080", "URL of the agent playing X")
	agentO := flag.String("o", "http://localhost:8081", "URL of the agent playing O")
	experiment := flag.String("experiment", "depth", "one of depth, throughput")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(*mode, *depth, *addr, [2]string{*agentX, *agentO}, *experiment); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func run(mode string, depth int, addr string, agentURLs [2]string, experiment string) error {
	if depth < 1 || depth > searcher.DepthLimit {
		return fmt.Errorf("depth %d outside [1, %d]", depth, searcher.DepthLimit)
	}

	switch mode {
	case "selfplay":
		agents := [2]agent.Agent{
			agent.NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(depth))),
			agent.NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(depth))),
		}
		e := engine.NewLocalEngine(agents, game.PlayerX)
		winner, _, _ := e.Run()
		fmt.Printf("%s\nwinner: %s\n", e.Board.String(), winner)
		return nil
	case "agent":
		return agent.StartAgentServer(addr, depth)
	case "master":
		e := gamemaster.LocalEngineHTTP(agentURLs)
		winner, moves, err := e.Run()
		if err != nil {
			return err
		}
		fmt.Printf("%s\nwinner: %s after %d moves\n", e.Board.String(), winner, len(moves))
		return nil
	case "experiment":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		switch experiment {
		case "depth":
			return experiments.RunDepthExperiment(ctx)
		case "throughput":
			return experiments.RunThroughputExperiment(ctx)
		}
		return fmt.Errorf("unknown experiment %q", experiment)
	}
	return fmt.Errorf("unknown mode %q", mode)
}
