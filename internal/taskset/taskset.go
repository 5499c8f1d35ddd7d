// Package taskset loads grid puzzle tasks from ARC-format JSON: a
// document with train and test lists of input/output grid pairs. Loaded
// grids are validated before anything downstream sees them, so the
// solver and the archive can assume rectangular grids on the 0-9
// palette.
package taskset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridmind/gridil/internal/evaluator"
	"github.com/gridmind/gridil/internal/object"
)

var (
	ErrNoPairs   = errors.New("taskset: task has no training pairs")
	ErrRagged    = errors.New("taskset: grid rows have unequal widths")
	ErrEmptyGrid = errors.New("taskset: grid has no cells")
	ErrCellRange = errors.New("taskset: cell outside the 0-9 palette")
)

// maxColor is the largest color in the puzzle palette.
const maxColor = 9

// Pair is one worked example: an input grid and the output it maps to.
// Test pairs may omit the output when the answer is withheld.
type Pair struct {
	Input  [][]int `json:"input"`
	Output [][]int `json:"output,omitempty"`
}

// Task is one puzzle: demonstration pairs the solver searches against
// and held-out test pairs for verification.
type Task struct {
	ID    string `json:"-"`
	Train []Pair `json:"train"`
	Test  []Pair `json:"test"`
}

// Load reads one task file. The task id is the filename without its
// extension, the ARC convention.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taskset: %w", err)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(id, data)
}

// Parse decodes and validates one task document.
func Parse(id string, data []byte) (*Task, error) {
	var t Task
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("taskset: decoding %s: %w", id, err)
	}
	t.ID = id
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("taskset: %s: %w", id, err)
	}
	return &t, nil
}

// LoadDir loads every .json task directly under dir, in filename order.
func LoadDir(dir string) ([]*Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("taskset: %w", err)
	}
	var tasks []*Task
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		t, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Example converts the pair to solver grids.
func (p Pair) Example() evaluator.Example {
	return evaluator.Example{
		Input:  object.NewGrid(p.Input),
		Output: object.NewGrid(p.Output),
	}
}

// Examples converts the training pairs for the solver.
func (t *Task) Examples() []evaluator.Example {
	out := make([]evaluator.Example, len(t.Train))
	for i, p := range t.Train {
		out[i] = p.Example()
	}
	return out
}

func (t *Task) validate() error {
	if len(t.Train) == 0 {
		return ErrNoPairs
	}
	for i, p := range t.Train {
		if err := validatePair(p, true); err != nil {
			return fmt.Errorf("train[%d]: %w", i, err)
		}
	}
	for i, p := range t.Test {
		if err := validatePair(p, false); err != nil {
			return fmt.Errorf("test[%d]: %w", i, err)
		}
	}
	return nil
}

func validatePair(p Pair, needOutput bool) error {
	if err := validateGrid(p.Input); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if p.Output == nil && !needOutput {
		return nil
	}
	if err := validateGrid(p.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func validateGrid(rows [][]int) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmptyGrid
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return ErrRagged
		}
		for _, cell := range row {
			if cell < 0 || cell > maxColor {
				return fmt.Errorf("%w: %d", ErrCellRange, cell)
			}
		}
	}
	return nil
}
