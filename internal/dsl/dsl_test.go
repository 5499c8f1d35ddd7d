package dsl

import (
	"context"
	"testing"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/evaluator"
	"github.com/gridmind/gridil/internal/hypothesis"
	"github.com/gridmind/gridil/internal/object"
	"github.com/gridmind/gridil/internal/search"
)

func gridOf(rows ...[]int) *object.Grid { return object.NewGrid(rows) }

func tupleOf(ns ...int) *object.Tuple {
	items := make([]object.Value, len(ns))
	for i, n := range ns {
		items[i] = object.Integer(n)
	}
	return object.NewTuple(items...)
}

func wantEqual(t *testing.T, name string, got, want object.Value) {
	t.Helper()
	if !object.Equal(got, want) {
		t.Errorf("%s = %s, want %s", name, got.Inspect(), want.Inspect())
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

func mustCallable(t *testing.T, name string) *object.Callable {
	t.Helper()
	c, ok := New().Callable(name)
	if !ok {
		t.Fatalf("Callable(%q) missing", name)
	}
	return c
}

// subsetLibrary narrows the standard library to the named primitives while
// keeping the full constant pool, so a test can pin down the exact search
// space it runs in.
type subsetLibrary struct {
	names map[string]bool
}

func subset(names ...string) *subsetLibrary {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return &subsetLibrary{names: m}
}

func (l *subsetLibrary) Signatures() []catalog.Signature {
	var out []catalog.Signature
	for _, sig := range signatures {
		if l.names[sig.Name] {
			out = append(out, sig)
		}
	}
	return out
}

func (l *subsetLibrary) Callable(name string) (*object.Callable, bool) {
	if !l.names[name] {
		return nil, false
	}
	c, ok := adapters[name]
	return c, ok
}

func (l *subsetLibrary) Constants() []catalog.Constant { return constantPool }

func TestLibraryShape(t *testing.T) {
	lib := New()

	if got := len(lib.Signatures()); got != 112 {
		t.Errorf("len(Signatures()) = %d, want 112", got)
	}
	if got := len(lib.Constants()); got != 28 {
		t.Errorf("len(Constants()) = %d, want 28", got)
	}
	if len(adapters) != len(signatures) {
		t.Errorf("adapters = %d entries, signatures = %d", len(adapters), len(signatures))
	}

	// Every published signature has an executable form of the same name
	// and arity, and names are unique.
	seen := make(map[string]bool, len(signatures))
	for _, sig := range signatures {
		if seen[sig.Name] {
			t.Errorf("signature %q published twice", sig.Name)
		}
		seen[sig.Name] = true

		c, ok := lib.Callable(sig.Name)
		if !ok {
			t.Errorf("Callable(%q) missing", sig.Name)
			continue
		}
		if c.Name != sig.Name {
			t.Errorf("Callable(%q).Name = %q", sig.Name, c.Name)
		}
		if c.Arity != len(sig.Params) {
			t.Errorf("%s: adapter arity %d, signature has %d params", sig.Name, c.Arity, len(sig.Params))
		}
	}

	if _, ok := lib.Callable("nope"); ok {
		t.Errorf("Callable(\"nope\") should not resolve")
	}
}

func TestLibraryExtracts(t *testing.T) {
	cat := catalog.Extract(New(), nil)

	if cat.Len() != 112 {
		t.Errorf("Len() = %d, want 112", cat.Len())
	}
	if got := len(cat.Constants()); got != 28 {
		t.Errorf("len(Constants()) = %d, want 28", got)
	}

	k, ok := cat.Constant("THREE_BY_THREE")
	if !ok {
		t.Fatal("constant THREE_BY_THREE missing")
	}
	wantEqual(t, "THREE_BY_THREE", k.Value, object.Pair{I: 3, J: 3})

	apply, ok := cat.Primitive("apply")
	if !ok || !apply.HigherOrder {
		t.Errorf("apply should resolve as higher-order, got %+v", apply)
	}
	compose, ok := cat.Primitive("compose")
	if !ok || !compose.ReturnsCallable {
		t.Errorf("compose should resolve as returning a callable, got %+v", compose)
	}
	vmirror, ok := cat.Primitive("vmirror")
	if !ok || vmirror.HigherOrder || vmirror.ReturnsCallable {
		t.Errorf("vmirror should resolve as first-order, got %+v", vmirror)
	}
}

func TestExecuteHypothesisAgainstLibrary(t *testing.T) {
	cat := catalog.Extract(New(), nil)
	h := hypothesis.New(
		hypothesis.Step{
			Kind:   hypothesis.StepPrimitive,
			Callee: "ofcolor",
			Args:   []hypothesis.Argument{hypothesis.Input(), hypothesis.Constant("FIVE")},
			Out:    "x1",
		},
		hypothesis.Step{
			Kind:   hypothesis.StepPrimitive,
			Callee: "fill",
			Args:   []hypothesis.Argument{hypothesis.Input(), hypothesis.Constant("EIGHT"), hypothesis.Variable("x1")},
			Out:    hypothesis.TerminalVar,
		},
	)

	out, err := evaluator.Execute(h, cat, gridOf([]int{5, 0}, []int{0, 5}))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantEqual(t, "Execute", out, gridOf([]int{8, 0}, []int{0, 8}))
}

func TestSearchFindsVerticalMirror(t *testing.T) {
	res, err := search.Search(context.Background(),
		[]evaluator.Example{{
			Input:  gridOf([]int{1, 2}, []int{3, 4}),
			Output: gridOf([]int{2, 1}, []int{4, 3}),
		}},
		"mirror", New(), nil, search.Options{MaxDepth: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Depth != 1 {
		t.Errorf("Depth = %d, want 1", res.Depth)
	}
	if got, want := res.Hypothesis.Key(), "O = vmirror(I)"; got != want {
		t.Errorf("Hypothesis = %q, want %q", got, want)
	}
	if want := "def solve_mirror(I):\n    O = vmirror(I)\n    return O"; res.Code != want {
		t.Errorf("Code =\n%s\nwant\n%s", res.Code, want)
	}
}

func TestSearchComposesMirrorAndConcat(t *testing.T) {
	res, err := search.Search(context.Background(),
		[]evaluator.Example{{
			Input:  gridOf([]int{1, 2}, []int{3, 4}),
			Output: gridOf([]int{3, 4}, []int{1, 2}, []int{1, 2}, []int{3, 4}),
		}},
		"cat", subset("hmirror", "vconcat"), nil, search.Options{MaxDepth: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got, want := res.Hypothesis.Key(), "x1 = hmirror(I); O = vconcat(x1, I)"; got != want {
		t.Errorf("Hypothesis = %q, want %q", got, want)
	}
	if res.Depth != 2 || res.Attempts != 7 {
		t.Errorf("Depth = %d, Attempts = %d, want 2 and 7", res.Depth, res.Attempts)
	}
}

func TestSearchDrawsConstantsFromPool(t *testing.T) {
	res, err := search.Search(context.Background(),
		[]evaluator.Example{{
			Input:  gridOf([]int{6, 6}, []int{0, 6}),
			Output: gridOf([]int{2, 2}, []int{0, 2}),
		}},
		"recolor", subset("replace"), nil, search.Options{MaxDepth: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got, want := res.Hypothesis.Key(), "O = replace(I, SIX, TWO)"; got != want {
		t.Errorf("Hypothesis = %q, want %q", got, want)
	}
	// Thirteen integer constants per slot, replacer cycling fastest:
	// six full rows of misses before SIX lands on its third replacer.
	if res.Attempts != 81 {
		t.Errorf("Attempts = %d, want 81", res.Attempts)
	}
}

func TestSearchPassesPrimitiveByName(t *testing.T) {
	res, err := search.Search(context.Background(),
		[]evaluator.Example{{
			Input:  gridOf([]int{3, 3}, []int{1, 2}),
			Output: tupleOf(3, 3),
		}},
		"pick", subset("argmax", "size"), nil, search.Options{MaxDepth: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got, want := res.Hypothesis.Key(), "O = argmax(I, size)"; got != want {
		t.Errorf("Hypothesis = %q, want %q", got, want)
	}
	if res.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", res.Attempts)
	}
}
