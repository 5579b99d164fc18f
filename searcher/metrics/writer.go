package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentRecord struct {
	ID        int
	Name      string
	Method    string
	Depth     int
	Iterative bool
	Alpha     float64 // Evaluator mixing coefficient; zero when not applicable
}

type GameRecord struct {
	ID     int
	Agent1 string // AgentRecord.Name
	Agent2 string // AgentRecord.Name
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped results directory for one comparison run.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteAgentRecords(records []AgentRecord) error {
	path := filepath.Join(w.baseDir, "agents.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agents file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "name", "method", "depth", "iterative", "alpha"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agents header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Name,
			record.Method,
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.Iterative),
			strconv.FormatFloat(record.Alpha, 'g', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "starting_agent", "winner", "moves", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Agent1,
			record.Agent2,
			record.StartingAgent,
			record.Winner,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "method", "depth", "nodes", "duration", "aborted"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Method,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Nodes),
			record.Duration.String(),
			strconv.FormatBool(record.Aborted),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move row: %w", err)
		}
	}

	return nil
}

// BaseDir exposes the destination directory for logging.
func (w *Writer) BaseDir() string {
	return w.baseDir
}
