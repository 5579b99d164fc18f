package main

import (
	"flag"
	"time"

	"isolation/tournament"

	"github.com/rs/zerolog/log"
)

func main() {
	matches := flag.Int("matches", tournament.DefaultMatches, "Matches per pairing and seat order")
	budget := flag.Duration("budget", tournament.DefaultBudget, "Time budget per move")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed for openings and baselines")
	chart := flag.String("chart", "", "Optional HTML chart output path")
	records := flag.String("records", "", "Optional name for per-game CSV records")
	flag.Parse()

	// Optional positional argument: destination for the tab-separated
	// results; stdout when omitted.
	output := flag.Arg(0)

	alphas := tournament.DefaultAlphas()
	results, err := tournament.RunSweep(tournament.SweepConfig{
		Alphas:     alphas,
		Matches:    *matches,
		Budget:     *budget,
		Seed:       *seed,
		RecordName: *records,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sweep failed")
	}

	tournament.LogSummary(alphas, results)

	err = tournament.WriteResults(output, alphas, results)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write results")
	}

	if *chart != "" {
		err = tournament.WriteChart(*chart, alphas, results)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to write chart")
		}
	}
}
