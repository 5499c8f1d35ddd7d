// Package generator enumerates type-valid hypotheses by iterative
// deepening. Enumeration is lazy end to end: nothing is buffered, a
// consumer that stops early stops the whole pipeline, and the order is a
// pure function of the catalog.
package generator

import (
	"iter"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/hypothesis"
	"github.com/gridmind/gridil/internal/typesystem"
)

// CandidateArguments lists every argument that can fill a parameter of the
// given type, in the fixed order: the input grid, constants in declared
// order, bound variables in insertion order, then primitive references in
// catalog order. Primitive references are offered only when allowRefs is
// set or the parameter is function-typed.
func CandidateArguments(
	param typesystem.Type,
	env *hypothesis.TypeEnv,
	cat *catalog.Catalog,
	allowRefs bool,
) []hypothesis.Argument {
	var args []hypothesis.Argument

	if typesystem.Compatible(typesystem.Grid, param) {
		args = append(args, hypothesis.Input())
	}

	for _, k := range cat.Constants() {
		if typesystem.Compatible(k.Type, param) {
			args = append(args, hypothesis.Constant(k.Name))
		}
	}

	for _, name := range env.Names() {
		if name == hypothesis.InputVar {
			continue
		}
		typ, _ := env.Get(name)
		if typesystem.Compatible(typ, param) {
			args = append(args, hypothesis.Variable(name))
		}
	}

	if allowRefs || typesystem.IsFunc(param) {
		prims := cat.Primitives()
		for i := range prims {
			if typesystem.Compatible(prims[i].FuncType(), param) {
				args = append(args, hypothesis.PrimitiveRef(prims[i].Name))
			}
		}
	}

	return args
}

// Bindings lazily enumerates the type-valid argument vectors for one
// primitive in the given environment. A nullary primitive yields a single
// empty binding; a parameter with no candidates prunes the primitive
// entirely.
func Bindings(
	info *catalog.Primitive,
	env *hypothesis.TypeEnv,
	cat *catalog.Catalog,
) iter.Seq[[]hypothesis.Argument] {
	return func(yield func([]hypothesis.Argument) bool) {
		if len(info.ParamTypes) == 0 {
			yield(nil)
			return
		}

		options := make([][]hypothesis.Argument, len(info.ParamTypes))
		for i, paramType := range info.ParamTypes {
			allowRefs := catalog.TakesFunctions(info.Name) && typesystem.IsFunc(paramType)
			opts := CandidateArguments(paramType, env, cat, allowRefs)
			if len(opts) == 0 {
				return
			}
			options[i] = opts
		}

		cartesian(options, yield)
	}
}

// callBindings enumerates argument vectors for calling a function-typed
// variable. Primitive references are offered only to its function-typed
// parameters.
func callBindings(
	fn typesystem.Func,
	env *hypothesis.TypeEnv,
	cat *catalog.Catalog,
) iter.Seq[[]hypothesis.Argument] {
	return func(yield func([]hypothesis.Argument) bool) {
		if len(fn.Params) == 0 {
			yield(nil)
			return
		}

		options := make([][]hypothesis.Argument, len(fn.Params))
		for i, paramType := range fn.Params {
			opts := CandidateArguments(paramType, env, cat, false)
			if len(opts) == 0 {
				return
			}
			options[i] = opts
		}

		cartesian(options, yield)
	}
}

// cartesian walks the product of options with the rightmost position
// advancing fastest. Every emitted vector is freshly allocated; steps hold
// onto their argument slices.
func cartesian(options [][]hypothesis.Argument, yield func([]hypothesis.Argument) bool) {
	idx := make([]int, len(options))
	for {
		row := make([]hypothesis.Argument, len(options))
		for i, opts := range options {
			row[i] = opts[idx[i]]
		}
		if !yield(row) {
			return
		}

		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(options[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// Extend yields every one-step extension of a partial hypothesis. With
// final set, the new step binds the terminal variable and only callees
// whose return type is grid-compatible are considered; otherwise the step
// binds the next intermediate variable with no return filter. Primitive
// calls come first, then calls of function-typed variables.
func Extend(
	partial *hypothesis.Hypothesis,
	cat *catalog.Catalog,
	final bool,
) iter.Seq[*hypothesis.Hypothesis] {
	return func(yield func(*hypothesis.Hypothesis) bool) {
		env := hypothesis.DeriveEnv(partial, cat)
		out := hypothesis.TerminalVar
		if !final {
			out = hypothesis.NextVar(partial)
		}

		prims := cat.Primitives()
		for i := range prims {
			info := &prims[i]
			if final && !typesystem.Compatible(info.Return, typesystem.Grid) {
				continue
			}
			for args := range Bindings(info, env, cat) {
				step := hypothesis.Step{
					Kind:   hypothesis.StepPrimitive,
					Callee: info.Name,
					Args:   args,
					Out:    out,
				}
				if !yield(partial.Extend(step)) {
					return
				}
			}
		}

		for _, name := range env.CallableVars() {
			typ, _ := env.Get(name)
			fn := typ.(typesystem.Func)
			ret := fn.Return
			if ret == nil {
				ret = typesystem.Any
			}
			if final && !typesystem.Compatible(ret, typesystem.Grid) {
				continue
			}
			for args := range callBindings(fn, env, cat) {
				step := hypothesis.Step{
					Kind:   hypothesis.StepVariableCall,
					Callee: name,
					Args:   args,
					Out:    out,
				}
				if !yield(partial.Extend(step)) {
					return
				}
			}
		}
	}
}

// AtDepth yields every complete hypothesis with exactly depth steps:
// partial programs of depth-1 extended with a terminal, grid-compatible
// step. Depth 1 is the base case, primitives applied directly to the
// available arguments.
func AtDepth(depth int, cat *catalog.Catalog) iter.Seq[*hypothesis.Hypothesis] {
	return func(yield func(*hypothesis.Hypothesis) bool) {
		if depth < 1 {
			return
		}
		if depth == 1 {
			root := hypothesis.New()
			for h := range Extend(root, cat, true) {
				if !yield(h) {
					return
				}
			}
			return
		}
		for partial := range Partials(depth-1, cat) {
			for h := range Extend(partial, cat, true) {
				if !yield(h) {
					return
				}
			}
		}
	}
}

// Partials yields every partial hypothesis with exactly depth steps. No
// return filter applies; intermediates may bind any type.
func Partials(depth int, cat *catalog.Catalog) iter.Seq[*hypothesis.Hypothesis] {
	return func(yield func(*hypothesis.Hypothesis) bool) {
		if depth < 1 {
			return
		}
		if depth == 1 {
			root := hypothesis.New()
			for h := range Extend(root, cat, false) {
				if !yield(h) {
					return
				}
			}
			return
		}
		for partial := range Partials(depth-1, cat) {
			for h := range Extend(partial, cat, false) {
				if !yield(h) {
					return
				}
			}
		}
	}
}

// Hypotheses yields all complete hypotheses from depth 1 through maxDepth,
// shallower depths first. A hypothesis therefore appears before any longer
// one, which is what makes the first accepted hypothesis minimal.
func Hypotheses(maxDepth int, cat *catalog.Catalog) iter.Seq[*hypothesis.Hypothesis] {
	return func(yield func(*hypothesis.Hypothesis) bool) {
		for depth := 1; depth <= maxDepth; depth++ {
			for h := range AtDepth(depth, cat) {
				if !yield(h) {
					return
				}
			}
		}
	}
}
