package dsl

import (
	"testing"

	"github.com/gridmind/gridil/internal/object"
)

func TestComposeChain(t *testing.T) {
	inc := mustCallable(t, "increment")
	dbl := mustCallable(t, "double")

	f := compose(dbl, inc)
	if f.Arity != 1 {
		t.Errorf("compose arity = %d, want 1", f.Arity)
	}
	out, err := f.Call(Integer(3))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	wantEqual(t, "double(increment(3))", out, object.Integer(8))

	out, err = chain(inc, dbl, inc).Call(Integer(3))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	wantEqual(t, "increment(double(increment(3)))", out, object.Integer(9))

	// An inner arity mismatch surfaces as an error, not a panic.
	if _, err := compose(dbl, mustCallable(t, "add")).Call(Integer(1)); err == nil {
		t.Errorf("compose over a binary inner should fail on one argument")
	}
}

func TestForkAndBinding(t *testing.T) {
	out, err := fork(mustCallable(t, "add"), mustCallable(t, "identity"), mustCallable(t, "double")).Call(Integer(3))
	if err != nil {
		t.Fatalf("fork: %v", err)
	}
	wantEqual(t, "add(3, double(3))", out, object.Integer(9))

	sub := mustCallable(t, "subtract")
	left := lbind(sub, Integer(10))
	if left.Arity != 1 {
		t.Errorf("lbind arity = %d, want 1", left.Arity)
	}
	out, err = left.Call(Integer(3))
	if err != nil {
		t.Fatalf("lbind: %v", err)
	}
	wantEqual(t, "subtract(10, 3)", out, object.Integer(7))

	out, err = rbind(sub, Integer(10)).Call(Integer(3))
	if err != nil {
		t.Fatalf("rbind: %v", err)
	}
	wantEqual(t, "subtract(3, 10)", out, object.Integer(-7))

	// Binding a ternary leaves a binary.
	pick := rbind(mustCallable(t, "branch"), Integer(9))
	if pick.Arity != 2 {
		t.Errorf("rbind(branch) arity = %d, want 2", pick.Arity)
	}
	out, err = pick.Call(Boolean(true), Integer(1))
	if err != nil {
		t.Fatalf("rbind(branch): %v", err)
	}
	wantEqual(t, "branch(T, 1, 9)", out, object.Integer(1))
}

func TestMatcher(t *testing.T) {
	m := matcher(mustCallable(t, "double"), Integer(6))

	out, err := m.Call(Integer(3))
	if err != nil {
		t.Fatalf("matcher: %v", err)
	}
	wantEqual(t, "matcher hit", out, object.Boolean(true))

	out, err = m.Call(Integer(2))
	if err != nil {
		t.Fatalf("matcher: %v", err)
	}
	wantEqual(t, "matcher miss", out, object.Boolean(false))
}

func TestPower(t *testing.T) {
	inc := mustCallable(t, "increment")

	out, err := power(inc, Integer(3)).Call(Integer(0))
	if err != nil {
		t.Fatalf("power: %v", err)
	}
	wantEqual(t, "increment applied thrice", out, object.Integer(3))

	if !object.Equal(power(inc, Integer(1)), inc) {
		t.Errorf("power to one should return the function itself")
	}
	expectPanic(t, "power(inc, 0)", func() { power(inc, Integer(0)) })
}

func TestIdentityBranch(t *testing.T) {
	g := gridOf([]int{1, 2})
	wantEqual(t, "identity(g)", identity(g), g)
	wantEqual(t, "branch true", branch(Boolean(true), Integer(1), Integer(2)), object.Integer(1))
	wantEqual(t, "branch false", branch(Boolean(false), Integer(1), Integer(2)), object.Integer(2))
}
