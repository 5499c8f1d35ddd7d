package typesystem

import (
	"testing"
)

func TestCompatibleWildcardAndIdentity(t *testing.T) {
	// 1. Any on either side matches everything
	if !Compatible(Any, Grid) {
		t.Errorf("Compatible(Any, Grid) = false, want true")
	}
	if !Compatible(Grid, Any) {
		t.Errorf("Compatible(Grid, Any) = false, want true")
	}
	if !Compatible(Any, NewFunc(Grid, Grid)) {
		t.Errorf("Compatible(Any, fn) = false, want true")
	}

	// 2. Identity on base and function types
	if !Compatible(Integer, Integer) {
		t.Errorf("Compatible(Integer, Integer) = false, want true")
	}
	f := NewFunc(Grid, Grid, Integer)
	if !Compatible(f, f) {
		t.Errorf("identical function types should be compatible")
	}
}

func TestCompatibleFamilies(t *testing.T) {
	tests := []struct {
		name  string
		arg   Type
		param Type
		want  bool
	}{
		{"container accepts grid", Grid, Container, true},
		{"container accepts objects", Objects, Container, true},
		{"container accepts tuple", Tuple, Container, true},
		{"container accepts int set", IntSet, Container, true},
		{"container rejects indices set", IndicesSet, Container, false},
		{"container rejects integer", Integer, Container, false},
		{"container rejects function", NewFunc(Grid, Grid), Container, false},

		{"nested container accepts objects", Objects, ContainerContainer, true},
		{"nested container accepts indices set", IndicesSet, ContainerContainer, true},
		{"nested container accepts tuple tuple", TupleTuple, ContainerContainer, true},
		{"nested container rejects grid", Grid, ContainerContainer, false},
		{"nested container rejects tuple", Tuple, ContainerContainer, false},

		{"set accepts object", Object, AnySet, true},
		{"set accepts indices set", IndicesSet, AnySet, true},
		{"set accepts int set", IntSet, AnySet, true},
		{"set rejects tuple", Tuple, AnySet, false},
		{"set rejects grid", Grid, AnySet, false},

		{"patch accepts indices for object", Indices, Object, true},
		{"patch accepts object for indices", Object, Indices, true},
		{"element accepts grid for object", Grid, Object, true},
		{"element accepts object for grid", Object, Grid, true},
		{"piece accepts grid for indices", Grid, Indices, true},
		{"piece accepts indices for grid", Indices, Grid, true},
		{"object rejects objects", Objects, Object, false},
		{"grid rejects tuple", Tuple, Grid, false},

		{"tuple accepts grid", Grid, Tuple, true},
		{"tuple accepts int pair", IntPair, Tuple, true},
		{"tuple accepts tuple tuple", TupleTuple, Tuple, true},
		{"tuple rejects indices", Indices, Tuple, false},
		{"int pair rejects integer", Integer, IntPair, false},
		{"boolean rejects integer", Integer, Boolean, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.arg, tt.param); got != tt.want {
				t.Errorf("Compatible(%s, %s) = %v, want %v", tt.arg, tt.param, got, tt.want)
			}
		})
	}
}

func TestCompatibleFunctions(t *testing.T) {
	unary := NewFunc(Grid, Grid)
	unaryOther := NewFunc(Integer, Object)
	binary := NewFunc(Grid, Grid, Grid)
	nullary := NewFunc(Integer)

	tests := []struct {
		name  string
		arg   Type
		param Type
		want  bool
	}{
		{"same arity different types", unaryOther, unary, true},
		{"arity mismatch", binary, unary, false},
		{"nullary matches nullary", NewFunc(Grid), nullary, true},
		{"function param rejects base arg", Grid, unary, false},
		{"base param rejects function arg", unary, Grid, false},
		{"container rejects function arg", unary, Container, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.arg, tt.param); got != tt.want {
				t.Errorf("Compatible(%s, %s) = %v, want %v", tt.arg, tt.param, got, tt.want)
			}
		})
	}
}
