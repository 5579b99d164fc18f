package tournament

import (
	"fmt"
	"time"

	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	DefaultMatches = 20 // Per pairing and seat order
	DefaultBudget  = 150 * time.Millisecond
)

// SweepConfig drives one evaluator-parameter sweep: one test agent per alpha
// value, each compared against the reference panel over a full round.
type SweepConfig struct {
	Alphas  []float64
	Matches int
	Budget  time.Duration
	Seed    uint64
	// RecordName, when set, persists per-game and per-move CSV records under
	// results/<RecordName>/<timestamp>/.
	RecordName string
}

// DefaultAlphas spans the mixing coefficient from 0 to 1 in steps of 0.2.
func DefaultAlphas() []float64 {
	alphas := []float64{}
	for i := 0; i < 120; i += 20 {
		alphas = append(alphas, float64(i)*0.01)
	}
	return alphas
}

// ReferencePanel builds the fixed opponents every test agent plays against:
// fixed-depth alphabeta agents over the baseline heuristics.
func ReferencePanel() []Agent {
	heuristics := []struct {
		name     string
		evaluate game.Evaluate
	}{
		{"Null", game.NullScore},
		{"Open", game.OpenMoves},
		{"Improved", game.ImprovedScore},
	}

	panel := []Agent{}
	for _, h := range heuristics {
		panel = append(panel, Agent{
			Name: "AB_" + h.name,
			Player: searcher.NewPlayer(h.evaluate,
				searcher.WithMethod(searcher.AlphaBeta),
				searcher.WithDepth(5),
				searcher.WithIterative(false),
				searcher.WithMetrics()),
		})
	}
	return panel
}

// MinimaxPanel builds the shallower fixed-depth minimax opponents.
func MinimaxPanel() []Agent {
	heuristics := []struct {
		name     string
		evaluate game.Evaluate
	}{
		{"Null", game.NullScore},
		{"Open", game.OpenMoves},
		{"Improved", game.ImprovedScore},
	}

	panel := []Agent{}
	for _, h := range heuristics {
		panel = append(panel, Agent{
			Name: "MM_" + h.name,
			Player: searcher.NewPlayer(h.evaluate,
				searcher.WithMethod(searcher.Minimax),
				searcher.WithDepth(3),
				searcher.WithIterative(false),
				searcher.WithMetrics()),
		})
	}
	return panel
}

// NewTestAgent builds the unit-under-test agent for one alpha value:
// iterative-deepening alphabeta over the MovesCombined mix.
func NewTestAgent(alpha float64) Agent {
	return Agent{
		Name: fmt.Sprintf("Alpha%g", alpha),
		Player: searcher.NewPlayer(game.MovesCombined(alpha),
			searcher.WithMethod(searcher.AlphaBeta),
			searcher.WithIterative(true),
			searcher.WithMetrics()),
	}
}

// RunSweep plays one comparison round per alpha value and returns one
// win-percentage sample per value, in grid order.
func RunSweep(config SweepConfig) ([]float64, error) {
	if len(config.Alphas) == 0 {
		config.Alphas = DefaultAlphas()
	}
	if config.Matches <= 0 {
		config.Matches = DefaultMatches
	}
	if config.Budget <= 0 {
		config.Budget = DefaultBudget
	}

	rng := rand.New(rand.NewSource(config.Seed))
	runner := NewRunner(config.Budget, rng)
	panel := ReferencePanel()

	log.Info().Msgf("starting sweep over %d alpha values, %d matches per pairing...", len(config.Alphas), config.Matches)

	results := []float64{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for i, alpha := range config.Alphas {
		testAgent := NewTestAgent(alpha)
		log.Info().Msgf("starting round %d of %d for %s...", i+1, len(config.Alphas), testAgent.Name)

		winRate, games, moves := runner.PlayRound(testAgent, panel, config.Matches)
		results = append(results, winRate)

		// Re-number this round's records after the ones already collected.
		offset := len(gameRecords)
		for _, g := range games {
			g.ID += offset
			gameRecords = append(gameRecords, g)
		}
		for _, m := range moves {
			m.Game += offset
			moveRecords = append(moveRecords, m)
		}

		log.Info().Msgf("completed round %d of %d: %s won %.1f%%", i+1, len(config.Alphas), testAgent.Name, winRate)
	}

	log.Info().Msg("completed sweep")

	if config.RecordName != "" {
		err := writeRecords(config, gameRecords, moveRecords)
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func writeRecords(config SweepConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(config.RecordName)
	if err != nil {
		return fmt.Errorf("failed to create record writer: %w", err)
	}

	agentRecords := []metrics.AgentRecord{}
	for i, panelAgent := range ReferencePanel() {
		agentRecords = append(agentRecords, metrics.AgentRecord{
			ID:     i + 1,
			Name:   panelAgent.Name,
			Method: string(searcher.AlphaBeta),
			Depth:  5,
		})
	}
	for _, alpha := range config.Alphas {
		agentRecords = append(agentRecords, metrics.AgentRecord{
			ID:        len(agentRecords) + 1,
			Name:      fmt.Sprintf("Alpha%g", alpha),
			Method:    string(searcher.AlphaBeta),
			Iterative: true,
			Alpha:     alpha,
		})
	}

	err = writer.WriteAgentRecords(agentRecords)
	if err != nil {
		return fmt.Errorf("failed to store agent records: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Msgf("stored records under %s", writer.BaseDir())
	return nil
}
