package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gridmind/gridil/internal/archive"
	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/ctxlog"
	"github.com/gridmind/gridil/internal/evaluator"
	"github.com/gridmind/gridil/internal/search"
	"github.com/gridmind/gridil/internal/taskset"
)

func runSolve(cmd *cobra.Command, args []string) {
	ctx := cmdContext(cmd)
	log := ctxlog.From(ctx)

	task, err := taskset.Load(args[0])
	if err != nil {
		fatal(err)
	}

	lib, closeLib, err := openLibrary(ctx, libraryAddress(cmd))
	if err != nil {
		fatal(err)
	}
	defer closeLib()

	result, err := search.Search(ctx, task.Examples(), task.ID, lib, nil, searchOptions(cmd, log))
	if errors.Is(err, search.ErrNoSolution) {
		fatal(fmt.Errorf("%s: %w", task.ID, err))
	}
	if err != nil {
		fatal(err)
	}

	fmt.Printf("solved %s: depth %d, %d hypotheses, %s\n",
		task.ID, result.Depth, result.Attempts, result.Elapsed.Round(time.Millisecond))
	if passed, total := heldOutScore(result, lib, task); total > 0 {
		fmt.Printf("held-out pairs: %d/%d\n", passed, total)
	}
	fmt.Printf("\n%s\n", result.Code)

	if flagRecord {
		arch, err := archive.Open(ctx, cfg.Archive.Path)
		if err != nil {
			fatal(err)
		}
		defer arch.Close()
		if err := recordSolution(ctx, arch, archive.NewRunID(), task.ID, result); err != nil {
			fatal(err)
		}
	}
}

func runBatch(cmd *cobra.Command, args []string) {
	ctx := cmdContext(cmd)
	log := ctxlog.From(ctx)

	arch, err := archive.Open(ctx, cfg.Archive.Path)
	if err != nil {
		fatal(err)
	}
	defer arch.Close()

	tasks, err := batchTasks(ctx, arch, args)
	if err != nil {
		fatal(err)
	}
	if len(tasks) == 0 {
		fatal(errors.New("no tasks to solve"))
	}

	lib, closeLib, err := openLibrary(ctx, libraryAddress(cmd))
	if err != nil {
		fatal(err)
	}
	defer closeLib()

	runID := archive.NewRunID()
	opts := searchOptions(cmd, log)
	solved := 0
	for _, task := range tasks {
		result, err := search.Search(ctx, task.Examples(), task.ID, lib, nil, opts)
		switch {
		case errors.Is(err, search.ErrNoSolution):
			log.Warn("no solution", "task", task.ID)
			continue
		case errors.Is(err, context.Canceled):
			fatal(fmt.Errorf("interrupted after %d of %d tasks", solved, len(tasks)))
		case err != nil:
			fatal(err)
		}

		if err := recordSolution(ctx, arch, runID, task.ID, result); err != nil {
			fatal(err)
		}
		solved++
		fmt.Printf("%s: depth %d, %d hypotheses, %s\n",
			task.ID, result.Depth, result.Attempts, result.Elapsed.Round(time.Millisecond))
	}
	fmt.Printf("solved %d/%d tasks (run %s)\n", solved, len(tasks), runID)
}

// batchTasks loads the batch input: a directory when given, the imported
// archive set otherwise.
func batchTasks(ctx context.Context, arch *archive.Archive, args []string) ([]*taskset.Task, error) {
	if len(args) == 1 {
		return taskset.LoadDir(args[0])
	}
	ids, err := arch.TaskIDs(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]*taskset.Task, 0, len(ids))
	for _, id := range ids {
		task, err := arch.Task(ctx, id)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func recordSolution(ctx context.Context, arch *archive.Archive, runID uuid.UUID, taskID string, result *search.Result) error {
	return arch.SaveSolution(ctx, archive.Solution{
		TaskID:   taskID,
		RunID:    runID,
		Depth:    result.Depth,
		Attempts: result.Attempts,
		Elapsed:  result.Elapsed,
		Code:     result.Code,
		SolvedAt: time.Now(),
	})
}

// heldOutScore checks the solution against test pairs that carry outputs.
func heldOutScore(result *search.Result, lib catalog.Library, task *taskset.Task) (passed, total int) {
	var examples []evaluator.Example
	for _, p := range task.Test {
		if p.Output == nil {
			continue
		}
		examples = append(examples, p.Example())
	}
	if len(examples) == 0 {
		return 0, 0
	}
	return evaluator.Score(result.Hypothesis, catalog.Extract(lib, nil), examples)
}
