package typesystem

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"base grid", Grid, "Grid"},
		{"base int pair", IntPair, "IntPair"},
		{"base any", Any, "Any"},
		{"nullary function", NewFunc(Integer), "() -> Integer"},
		{"unary function", NewFunc(Grid, Grid), "(Grid) -> Grid"},
		{"binary function", NewFunc(Object, Grid, Integer), "(Grid, Integer) -> Object"},
		{"nil return prints any", Func{Params: []Type{Grid}}, "(Grid) -> Any"},
		{
			"higher order function",
			NewFunc(Grid, NewFunc(Any, Any), Container),
			"((Any) -> Any, Container) -> Grid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeEqual(t *testing.T) {
	tests := []struct {
		name string
		a    Type
		b    Type
		want bool
	}{
		{"same base", Grid, Grid, true},
		{"different base", Grid, Object, false},
		{"base vs function", Grid, NewFunc(Grid, Grid), false},
		{"same function", NewFunc(Grid, Grid, Integer), NewFunc(Grid, Grid, Integer), true},
		{"different return", NewFunc(Grid, Grid), NewFunc(Object, Grid), false},
		{"different params", NewFunc(Grid, Grid), NewFunc(Grid, Object), false},
		{"different arity", NewFunc(Grid, Grid), NewFunc(Grid, Grid, Grid), false},
		{"nil return equals any return", Func{Params: []Type{Grid}}, NewFunc(Any, Grid), true},
		{
			"nested functions",
			NewFunc(Grid, NewFunc(Any, Any)),
			NewFunc(Grid, NewFunc(Any, Any)),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsFunc(t *testing.T) {
	if IsFunc(Grid) {
		t.Errorf("IsFunc(Grid) = true, want false")
	}
	if !IsFunc(NewFunc(Grid, Grid)) {
		t.Errorf("IsFunc(fn) = false, want true")
	}
}
