package dsl

import "github.com/gridmind/gridil/internal/object"

func identity(x Any) Any { return x }

func compose(outer Callable, inner Callable) Callable {
	return &object.Callable{
		Name:  "compose(" + outer.Name + ", " + inner.Name + ")",
		Arity: 1,
		Fn: func(args ...object.Value) (object.Value, error) {
			mid, err := inner.Call(args[0])
			if err != nil {
				return nil, err
			}
			return outer.Call(mid)
		},
	}
}

func chain(outer Callable, middle Callable, inner Callable) Callable {
	return compose(outer, compose(middle, inner))
}

// fork feeds one argument through two functions and joins the results
// with a binary outer function.
func fork(outer Callable, a Callable, b Callable) Callable {
	return &object.Callable{
		Name:  "fork(" + outer.Name + ", " + a.Name + ", " + b.Name + ")",
		Arity: 1,
		Fn: func(args ...object.Value) (object.Value, error) {
			left, err := a.Call(args[0])
			if err != nil {
				return nil, err
			}
			right, err := b.Call(args[0])
			if err != nil {
				return nil, err
			}
			return outer.Call(left, right)
		},
	}
}

func lbind(function Callable, fixed Any) Callable {
	return &object.Callable{
		Name:  "lbind(" + function.Name + ")",
		Arity: function.Arity - 1,
		Fn: func(args ...object.Value) (object.Value, error) {
			return function.Call(append([]object.Value{fixed}, args...)...)
		},
	}
}

func rbind(function Callable, fixed Any) Callable {
	return &object.Callable{
		Name:  "rbind(" + function.Name + ")",
		Arity: function.Arity - 1,
		Fn: func(args ...object.Value) (object.Value, error) {
			full := append(append([]object.Value(nil), args...), fixed)
			return function.Call(full...)
		},
	}
}

func matcher(function Callable, target Any) Callable {
	return &object.Callable{
		Name:  "matcher(" + function.Name + ")",
		Arity: 1,
		Fn: func(args ...object.Value) (object.Value, error) {
			out, err := function.Call(args[0])
			if err != nil {
				return nil, err
			}
			return object.Boolean(object.Equal(out, target)), nil
		},
	}
}

func power(function Callable, n Integer) Callable {
	if int(n) < 1 {
		panic("dsl: power wants a positive count")
	}
	out := function
	for k := 1; k < int(n); k++ {
		out = compose(function, out)
	}
	return out
}

func branch(condition Boolean, a Any, b Any) Any {
	if condition {
		return a
	}
	return b
}
