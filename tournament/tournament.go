package tournament

import (
	"time"

	"isolation/game"
	"isolation/searcher/metrics"
	"isolation/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	BoardWidth  = 7
	BoardHeight = 7
	// MaxMoves guards against a runaway game loop
	MaxMoves = 500
)

// Player picks a move for the given side within the time the clock allows.
type Player interface {
	FindMove(board game.Board, player game.PlayerHandle, legalMoves []game.Move, clock game.Clock) (game.Move, metrics.SearchMetric, error)
}

// Agent pairs a configured player with a display name. Agents are built once
// before a round and never change afterwards.
type Agent struct {
	Name   string
	Player Player
}

// RandomPlayer is the trivial baseline: a uniformly random legal move.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{rng: rng}
}

func (p *RandomPlayer) FindMove(board game.Board, player game.PlayerHandle, legalMoves []game.Move, clock game.Clock) (game.Move, metrics.SearchMetric, error) {
	if len(legalMoves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, nil
	}
	return legalMoves[p.rng.Intn(len(legalMoves))], metrics.SearchMetric{}, nil
}

// Runner plays matches strictly sequentially on fresh boards, enforcing a
// per-move time budget and resolving forfeits. Timeouts, illegal moves, and
// player errors all count as a loss for the side that caused them.
type Runner struct {
	budget time.Duration
	rng    *rand.Rand
}

func NewRunner(budget time.Duration, rng *rand.Rand) *Runner {
	return &Runner{budget: budget, rng: rng}
}

// PlayMatch runs one game with first seated to move first and returns the
// winner's name ("" if the move limit was reached) plus its records.
func (r *Runner) PlayMatch(first, second Agent) (string, metrics.GameMetric, []metrics.MoveMetric) {
	seats := map[game.PlayerHandle]Agent{
		game.Player1: first,
		game.Player2: second,
	}

	var board game.Board = game.NewIsolationBoard(BoardWidth, BoardHeight)
	// Each piece enters on a random cell so games differ between matches.
	board = r.randomOpening(board, game.Player1)
	board = r.randomOpening(board, game.Player2)

	start := time.Now()
	winner := ""
	moveMetrics := []metrics.MoveMetric{}
	turn := game.Player1
	step := 0
	for ; step < MaxMoves; step++ {
		agent := seats[turn]
		opponent := seats[board.OpponentOf(turn)]

		legalMoves := board.LegalMoves(turn)
		if len(legalMoves) == 0 { // Isolated: the mover loses
			winner = opponent.Name
			break
		}

		deadline := time.Now().Add(r.budget)
		clock := func() float64 {
			return float64(time.Until(deadline)) / float64(time.Millisecond)
		}

		move, metric, err := agent.Player.FindMove(board, turn, legalMoves, clock)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step + 1,
			Player:       int(turn),
			SearchMetric: metric,
		})

		if err != nil {
			log.Error().Err(err).Msgf("agent %s forfeits: move selection failed", agent.Name)
			winner = opponent.Name
			break
		}
		if clock() < 0 {
			log.Warn().Msgf("agent %s forfeits: out of time", agent.Name)
			winner = opponent.Name
			break
		}
		if !utils.Contains(legalMoves, move) {
			log.Warn().Msgf("agent %s forfeits: illegal move %+v", agent.Name, move)
			winner = opponent.Name
			break
		}

		board = board.Forecast(move)
		turn = board.OpponentOf(turn)
	}

	end := time.Now()
	return winner, metrics.GameMetric{
		StartingAgent: first.Name,
		Winner:        winner,
		TotalMoves:    step,
		StartTime:     start,
		EndTime:       end,
		Duration:      end.Sub(start),
	}, moveMetrics
}

func (r *Runner) randomOpening(board game.Board, player game.PlayerHandle) game.Board {
	moves := board.LegalMoves(player)
	return board.Forecast(moves[r.rng.Intn(len(moves))])
}

// PlayRound pits the unit-under-test agent against every opponent, with both
// agents taking the first move equally often to cancel first-move advantage,
// and returns its win percentage over all games in the round.
func (r *Runner) PlayRound(testAgent Agent, opponents []Agent, numMatches int) (float64, []metrics.GameRecord, []metrics.MoveRecord) {
	wins := 0.0
	total := 0.0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for _, opponent := range opponents {
		log.Info().Msgf("starting pairing %s vs %s...", testAgent.Name, opponent.Name)

		pairings := [][]Agent{
			{testAgent, opponent},
			{opponent, testAgent},
		}
		for _, seats := range pairings {
			for i := 0; i < numMatches; i++ {
				winner, gameMetric, moveMetrics := r.PlayMatch(seats[0], seats[1])
				total++
				if winner == testAgent.Name {
					wins++
				}

				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         len(gameRecords) + 1,
					Agent1:     seats[0].Name,
					Agent2:     seats[1].Name,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       len(gameRecords),
						MoveMetric: mm,
					})
				}
			}
		}

		log.Info().Msgf("completed pairing %s vs %s", testAgent.Name, opponent.Name)
	}

	return 100.0 * wins / total, gameRecords, moveRecords
}
