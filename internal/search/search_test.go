package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/evaluator"
	"github.com/gridmind/gridil/internal/object"
)

type taskLibrary struct {
	sigs      []catalog.Signature
	callables map[string]*object.Callable
}

func (l *taskLibrary) Signatures() []catalog.Signature { return l.sigs }

func (l *taskLibrary) Callable(name string) (*object.Callable, bool) {
	fn, ok := l.callables[name]
	return fn, ok
}

func gridFn(name string, arity int, fn func(args ...object.Value) (object.Value, error)) *object.Callable {
	return &object.Callable{Name: name, Arity: arity, Fn: fn}
}

// libWith assembles a library from the named primitives.
func libWith(names ...string) *taskLibrary {
	sigs := map[string]catalog.Signature{
		"mirror_v": {Name: "mirror_v", Params: []catalog.Param{{Name: "grid", Tag: "Grid"}}, Return: "Grid"},
		"mirror_h": {Name: "mirror_h", Params: []catalog.Param{{Name: "grid", Tag: "Grid"}}, Return: "Grid"},
		"stack_v":  {Name: "stack_v", Params: []catalog.Param{{Name: "a", Tag: "Grid"}, {Name: "b", Tag: "Grid"}}, Return: "Grid"},
		"replace": {Name: "replace", Params: []catalog.Param{
			{Name: "grid", Tag: "Grid"},
			{Name: "replacee", Tag: "Integer"},
			{Name: "replacer", Tag: "Integer"},
		}, Return: "Grid"},
	}
	callables := map[string]*object.Callable{
		"mirror_v": gridFn("mirror_v", 1, func(args ...object.Value) (object.Value, error) {
			g := args[0].(*object.Grid)
			rows := make([][]int, g.Height())
			for i, row := range g.Rows() {
				rows[i] = make([]int, len(row))
				for j, v := range row {
					rows[i][len(row)-1-j] = v
				}
			}
			return object.NewGrid(rows), nil
		}),
		"mirror_h": gridFn("mirror_h", 1, func(args ...object.Value) (object.Value, error) {
			g := args[0].(*object.Grid)
			rows := g.Rows()
			out := make([][]int, len(rows))
			for i, row := range rows {
				out[len(rows)-1-i] = row
			}
			return object.NewGrid(out), nil
		}),
		"stack_v": gridFn("stack_v", 2, func(args ...object.Value) (object.Value, error) {
			a := args[0].(*object.Grid)
			b := args[1].(*object.Grid)
			rows := make([][]int, 0, a.Height()+b.Height())
			rows = append(rows, a.Rows()...)
			rows = append(rows, b.Rows()...)
			return object.NewGrid(rows), nil
		}),
		"replace": gridFn("replace", 3, func(args ...object.Value) (object.Value, error) {
			g := args[0].(*object.Grid)
			from := int(args[1].(object.Integer))
			to := int(args[2].(object.Integer))
			rows := make([][]int, g.Height())
			for i, row := range g.Rows() {
				rows[i] = make([]int, len(row))
				for j, v := range row {
					if v == from {
						v = to
					}
					rows[i][j] = v
				}
			}
			return object.NewGrid(rows), nil
		}),
	}

	l := &taskLibrary{callables: map[string]*object.Callable{}}
	for _, name := range names {
		l.sigs = append(l.sigs, sigs[name])
		l.callables[name] = callables[name]
	}
	return l
}

func task(in, out [][]int) []evaluator.Example {
	return []evaluator.Example{{Input: object.NewGrid(in), Output: object.NewGrid(out)}}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"depth only", Options{MaxDepth: 3}, nil},
		{"timeout only", Options{Timeout: time.Second}, nil},
		{"both", Options{MaxDepth: 3, Timeout: time.Second}, nil},
		{"neither", Options{}, ErrNoBudget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	for _, opts := range []Options{
		{MaxDepth: -1},
		{Timeout: -time.Second},
		{MaxDepth: 1, ProgressInterval: -time.Second},
	} {
		if opts.Validate() == nil {
			t.Errorf("Validate() accepted %+v", opts)
		}
	}
}

func TestSearchMirrorAtDepthOne(t *testing.T) {
	res, err := Search(context.Background(),
		task([][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{3, 2, 1}, {6, 5, 4}}),
		"a", libWith("mirror_v"), nil, Options{MaxDepth: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Depth != 1 || res.Attempts != 1 {
		t.Errorf("Depth = %d, Attempts = %d, want 1 and 1", res.Depth, res.Attempts)
	}
	if got, want := res.Hypothesis.Key(), "O = mirror_v(I)"; got != want {
		t.Errorf("Hypothesis = %q, want %q", got, want)
	}
	if want := "def solve_a(I):\n    O = mirror_v(I)\n    return O"; res.Code != want {
		t.Errorf("Code =\n%s\nwant\n%s", res.Code, want)
	}
}

func TestSearchMirrorStackAtDepthTwo(t *testing.T) {
	res, err := Search(context.Background(),
		task([][]int{{1, 2}, {3, 4}}, [][]int{{3, 4}, {1, 2}, {1, 2}, {3, 4}}),
		"b", libWith("mirror_h", "stack_v"), nil, Options{MaxDepth: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Depth != 2 {
		t.Errorf("Depth = %d, want 2", res.Depth)
	}
	if got, want := res.Hypothesis.Key(), "x1 = mirror_h(I); O = stack_v(x1, I)"; got != want {
		t.Errorf("Hypothesis = %q, want %q", got, want)
	}
}

func TestSearchReplaceWithConstants(t *testing.T) {
	consts := []catalog.Constant{
		{Name: "SIX", Tag: "Integer", Value: object.Integer(6)},
		{Name: "TWO", Tag: "Integer", Value: object.Integer(2)},
	}
	res, err := Search(context.Background(),
		task([][]int{{6, 0, 6}, {0, 6, 0}}, [][]int{{2, 0, 2}, {0, 2, 0}}),
		"c", libWith("replace"), consts, Options{MaxDepth: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got, want := res.Hypothesis.Key(), "O = replace(I, SIX, TWO)"; got != want {
		t.Errorf("Hypothesis = %q, want %q", got, want)
	}
	// replace(I, SIX, SIX) is enumerated and rejected first.
	if res.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", res.Attempts)
	}
}

func TestSearchDepthCeilingExhausted(t *testing.T) {
	res, err := Search(context.Background(),
		task([][]int{{1, 2}, {3, 4}}, [][]int{{3, 4}, {1, 2}, {1, 2}, {3, 4}}),
		"d", libWith("mirror_h", "stack_v"), nil, Options{MaxDepth: 1})
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Search error = %v, want ErrNoSolution", err)
	}
	if res != nil {
		t.Errorf("Search returned %+v alongside ErrNoSolution", res)
	}
}

func TestSearchTimeoutBetweenHypotheses(t *testing.T) {
	// The budget expires before the first check, so even a task solvable
	// by the very first hypothesis returns no result.
	_, err := Search(context.Background(),
		task([][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{3, 2, 1}, {6, 5, 4}}),
		"e", libWith("mirror_v"), nil, Options{Timeout: time.Nanosecond})
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Search error = %v, want ErrNoSolution", err)
	}
}

func TestSearchPrefersShallowestSolution(t *testing.T) {
	res, err := Search(context.Background(),
		task([][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{3, 2, 1}, {6, 5, 4}}),
		"min", libWith("mirror_v"), nil, Options{MaxDepth: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Depth != 1 {
		t.Errorf("Depth = %d, want the depth-1 solution", res.Depth)
	}
}

func TestSearchContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx,
		task([][]int{{1}}, [][]int{{1}}),
		"x", libWith("mirror_v"), nil, Options{MaxDepth: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Search error = %v, want context.Canceled", err)
	}
}

func TestSearchUnsolvable(t *testing.T) {
	_, err := Search(context.Background(),
		task([][]int{{1}}, [][]int{{5}}),
		"u", libWith("mirror_v"), nil, Options{MaxDepth: 2})
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Search error = %v, want ErrNoSolution", err)
	}
}

func TestSearchReportsProgress(t *testing.T) {
	var calls []Progress
	_, err := Search(context.Background(),
		task([][]int{{1}}, [][]int{{5}}),
		"p", libWith("mirror_v"), nil, Options{
			MaxDepth:         2,
			Progress:         func(p Progress) { calls = append(calls, p) },
			ProgressInterval: time.Nanosecond,
		})
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Search error = %v, want ErrNoSolution", err)
	}
	if len(calls) == 0 {
		t.Fatal("progress callback never fired")
	}
	prev := Progress{}
	for i, p := range calls {
		if p.Depth < 1 || p.Depth > 2 {
			t.Errorf("call %d: depth %d out of searched range", i, p.Depth)
		}
		if p.Attempts < prev.Attempts || p.Depth < prev.Depth {
			t.Errorf("call %d: %+v went backwards from %+v", i, p, prev)
		}
		prev = p
	}
}

func TestEnumerateCollectsAcrossDepths(t *testing.T) {
	examples := task([][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{3, 2, 1}, {6, 5, 4}})

	results, err := Enumerate(context.Background(), examples, "enum", libWith("mirror_v"), nil, 2, 5)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Enumerate found %d solutions, want 2", len(results))
	}
	if got, want := results[0].Hypothesis.Key(), "O = mirror_v(I)"; got != want {
		t.Errorf("results[0] = %q, want %q", got, want)
	}
	if got, want := results[1].Hypothesis.Key(), "x1 = mirror_v(I); O = mirror_v(I)"; got != want {
		t.Errorf("results[1] = %q, want %q", got, want)
	}
	if results[0].Depth != 1 || results[1].Depth != 2 {
		t.Errorf("depths = %d, %d, want 1, 2", results[0].Depth, results[1].Depth)
	}
	if results[0].Attempts != 1 || results[1].Attempts != 2 {
		t.Errorf("attempts = %d, %d, want 1, 2", results[0].Attempts, results[1].Attempts)
	}
}

func TestEnumerateStopsAtMaxSolutions(t *testing.T) {
	examples := task([][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{3, 2, 1}, {6, 5, 4}})

	results, err := Enumerate(context.Background(), examples, "enum", libWith("mirror_v"), nil, 2, 1)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Enumerate found %d solutions, want 1", len(results))
	}
}

func TestEnumerateValidation(t *testing.T) {
	examples := task([][]int{{1}}, [][]int{{1}})

	if _, err := Enumerate(context.Background(), examples, "v", libWith("mirror_v"), nil, 0, 1); err == nil {
		t.Error("Enumerate accepted maxDepth 0")
	}
	if _, err := Enumerate(context.Background(), examples, "v", libWith("mirror_v"), nil, 1, 0); err == nil {
		t.Error("Enumerate accepted maxSolutions 0")
	}
}

func TestEnumerateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Enumerate(ctx, task([][]int{{1}}, [][]int{{1}}), "c", libWith("mirror_v"), nil, 2, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Enumerate error = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("Enumerate returned %d results before the first check", len(results))
	}
}
