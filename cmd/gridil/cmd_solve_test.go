package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gridmind/gridil/internal/archive"
	"github.com/gridmind/gridil/internal/dsl"
	"github.com/gridmind/gridil/internal/search"
	"github.com/gridmind/gridil/internal/taskset"
)

const mirrorTask = `{
	"train": [
		{"input": [[1, 2]], "output": [[2, 1]]},
		{"input": [[3, 4, 5]], "output": [[5, 4, 3]]}
	],
	"test": [
		{"input": [[6, 7]], "output": [[7, 6]]}
	]
}`

func writeTask(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(mirrorTask), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func tempArchive(t *testing.T, ctx context.Context) *archive.Archive {
	t.Helper()
	arch, err := archive.Open(ctx, filepath.Join(t.TempDir(), "gridil.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { arch.Close() })
	return arch
}

func TestBatchTasksFromDirectory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeTask(t, dir, "b.json")
	writeTask(t, dir, "a.json")

	tasks, err := batchTasks(ctx, tempArchive(t, ctx), []string{dir})
	if err != nil {
		t.Fatalf("batchTasks(dir) error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("loaded %d tasks; want 2", len(tasks))
	}
	if tasks[0].ID != "a" || tasks[1].ID != "b" {
		t.Errorf("task order = [%s, %s]; want [a, b]", tasks[0].ID, tasks[1].ID)
	}
}

func TestBatchTasksFromArchive(t *testing.T) {
	ctx := context.Background()
	arch := tempArchive(t, ctx)

	task, err := taskset.Parse("mirror", []byte(mirrorTask))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := arch.ImportTasks(ctx, "test", []*taskset.Task{task}); err != nil {
		t.Fatalf("ImportTasks() error = %v", err)
	}

	tasks, err := batchTasks(ctx, arch, nil)
	if err != nil {
		t.Fatalf("batchTasks(archive) error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "mirror" {
		t.Fatalf("batchTasks(archive) = %v; want the imported task", tasks)
	}
}

func TestHeldOutScore(t *testing.T) {
	ctx := context.Background()
	task, err := taskset.Parse("mirror", []byte(mirrorTask))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	lib := dsl.New()
	result, err := search.Search(ctx, task.Examples(), task.ID, lib, nil,
		search.Options{MaxDepth: 1, Timeout: time.Minute})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	passed, total := heldOutScore(result, lib, task)
	if passed != 1 || total != 1 {
		t.Errorf("heldOutScore = %d/%d; want 1/1", passed, total)
	}
}

func TestHeldOutScoreSkipsWithheldOutputs(t *testing.T) {
	task, err := taskset.Parse("withheld", []byte(`{
		"train": [{"input": [[1, 2]], "output": [[2, 1]]}],
		"test": [{"input": [[3, 4]]}]
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	lib := dsl.New()
	result, err := search.Search(context.Background(), task.Examples(), task.ID, lib, nil,
		search.Options{MaxDepth: 1, Timeout: time.Minute})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if passed, total := heldOutScore(result, lib, task); total != 0 || passed != 0 {
		t.Errorf("heldOutScore = %d/%d; want 0/0 when outputs are withheld", passed, total)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "pair"); got != "pair" {
		t.Errorf("plural(1) = %q; want %q", got, "pair")
	}
	if got := plural(2, "pair"); got != "pairs" {
		t.Errorf("plural(2) = %q; want %q", got, "pairs")
	}
}
